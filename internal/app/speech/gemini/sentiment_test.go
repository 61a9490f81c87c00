package gemini

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/genai"
)

type fakeModels struct {
	reply string
	err   error
	model string
	text  string
}

func (f *fakeModels) GenerateContent(_ context.Context, model string, contents []*genai.Content, _ *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error) {
	f.model = model
	if len(contents) > 0 && len(contents[0].Parts) > 0 {
		f.text = contents[0].Parts[0].Text
	}
	if f.err != nil {
		return nil, f.err
	}
	return &genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{{
			Content: &genai.Content{Parts: []*genai.Part{{Text: f.reply}}},
		}},
	}, nil
}

func TestSentimentAnalyzer(t *testing.T) {
	testCases := []struct {
		name      string
		reply     string
		score     float32
		magnitude float32
		wantErr   string
	}{
		{name: "plain json", reply: `{"score": 0.3, "magnitude": 0.6}`, score: 0.3, magnitude: 0.6},
		{name: "fenced json", reply: "```json\n{\"score\": -0.8, \"magnitude\": 1.2}\n```", score: -0.8, magnitude: 1.2},
		{name: "out of range is clamped", reply: `{"score": 4, "magnitude": -2}`, score: 1, magnitude: 0},
		{name: "not json", reply: "positive", wantErr: "failed to parse gemini sentiment"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			fake := &fakeModels{reply: tc.reply}
			s, err := NewSentimentAnalyzer(fake, "gemini-2.0-flash").AnalyzeSentiment(context.Background(), "I love it")

			if tc.wantErr != "" {
				assert.ErrorContains(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			assert.InDelta(t, tc.score, s.Score, 1e-6)
			assert.InDelta(t, tc.magnitude, s.Magnitude, 1e-6)
			assert.Equal(t, "gemini-2.0-flash", fake.model)
			assert.Contains(t, fake.text, "I love it")
		})
	}
}

func TestSentimentAnalyzer_RequestError(t *testing.T) {
	_, err := NewSentimentAnalyzer(&fakeModels{err: errors.New("quota")}, "m").AnalyzeSentiment(context.Background(), "x")
	assert.ErrorContains(t, err, "quota")
}
