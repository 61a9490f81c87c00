// Package gemini scores sentiment with a Gemini model when the Natural Language API is
// not available.
package gemini

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"google.golang.org/genai"

	"convai/internal/app/speech"
	"convai/internal/config"
)

const prompt = `Analyze the overall sentiment of the text between the markers.
Reply with a JSON object {"score": number, "magnitude": number} where score is in
[-1.0, 1.0] (negative to positive) and magnitude is a non-negative measure of
emotional strength. Reply with JSON only.
<<<
%s
>>>`

func init() {
	speech.RegisterSentimentAnalyzer(config.ProviderGemini, func(ctx context.Context, cfg *config.Config) (speech.SentimentAnalyzer, error) {
		client, err := genai.NewClient(ctx, &genai.ClientConfig{
			APIKey:  cfg.Keys.Gemini,
			Backend: genai.BackendGeminiAPI,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to create Gemini client: %w", err)
		}
		return NewSentimentAnalyzer(client.Models, cfg.Speech.GeminiModel), nil
	})
}

type generator interface {
	GenerateContent(ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error)
}

// SentimentAnalyzer asks a Gemini model for a document level score and magnitude
type SentimentAnalyzer struct {
	models generator
	model  string
}

func NewSentimentAnalyzer(models generator, model string) *SentimentAnalyzer {
	return &SentimentAnalyzer{models: models, model: model}
}

type sentimentReply struct {
	Score     float32 `json:"score"`
	Magnitude float32 `json:"magnitude"`
}

// AnalyzeSentiment implements speech.SentimentAnalyzer
func (a *SentimentAnalyzer) AnalyzeSentiment(ctx context.Context, text string) (speech.Sentiment, error) {
	resp, err := a.models.GenerateContent(ctx, a.model, genai.Text(fmt.Sprintf(prompt, text)), &genai.GenerateContentConfig{
		ResponseMIMEType: "application/json",
		Temperature:      genai.Ptr[float32](0),
	})
	if err != nil {
		return speech.Sentiment{}, fmt.Errorf("gemini sentiment request failed: %w", err)
	}

	raw := strings.TrimSpace(resp.Text())
	raw = strings.TrimSuffix(strings.TrimPrefix(raw, "```json"), "```")

	var reply sentimentReply
	if err := json.Unmarshal([]byte(strings.TrimSpace(raw)), &reply); err != nil {
		return speech.Sentiment{}, fmt.Errorf("failed to parse gemini sentiment %q: %w", raw, err)
	}

	return speech.Sentiment{
		Score:     clamp(reply.Score, -1, 1),
		Magnitude: max(reply.Magnitude, 0),
	}, nil
}

func clamp(v, lo, hi float32) float32 {
	return min(max(v, lo), hi)
}
