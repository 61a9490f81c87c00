package google

import (
	"context"
	"fmt"

	language "cloud.google.com/go/language/apiv1"
	"cloud.google.com/go/language/apiv1/languagepb"
	"github.com/googleapis/gax-go/v2"

	"convai/internal/app/speech"
	"convai/internal/config"
)

func init() {
	speech.RegisterSentimentAnalyzer(config.ProviderGoogle, func(ctx context.Context, cfg *config.Config) (speech.SentimentAnalyzer, error) {
		client, err := language.NewClient(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to create Natural Language client: %w", err)
		}
		return NewSentimentAnalyzer(client), nil
	})
}

type sentimentClient interface {
	AnalyzeSentiment(ctx context.Context, req *languagepb.AnalyzeSentimentRequest, opts ...gax.CallOption) (*languagepb.AnalyzeSentimentResponse, error)
	Close() error
}

// SentimentAnalyzer scores plain text documents with the Natural Language API
type SentimentAnalyzer struct {
	client sentimentClient
}

func NewSentimentAnalyzer(client sentimentClient) *SentimentAnalyzer {
	return &SentimentAnalyzer{client: client}
}

// AnalyzeSentiment implements speech.SentimentAnalyzer using the document level sentiment
func (a *SentimentAnalyzer) AnalyzeSentiment(ctx context.Context, text string) (speech.Sentiment, error) {
	resp, err := a.client.AnalyzeSentiment(ctx, &languagepb.AnalyzeSentimentRequest{
		Document: &languagepb.Document{
			Source: &languagepb.Document_Content{Content: text},
			Type:   languagepb.Document_PLAIN_TEXT,
		},
		EncodingType: languagepb.EncodingType_UTF8,
	})
	if err != nil {
		return speech.Sentiment{}, fmt.Errorf("analyze sentiment failed: %w", err)
	}

	doc := resp.GetDocumentSentiment()
	return speech.Sentiment{Score: doc.GetScore(), Magnitude: doc.GetMagnitude()}, nil
}

// Close releases the underlying gRPC connection
func (a *SentimentAnalyzer) Close() error {
	return a.client.Close()
}
