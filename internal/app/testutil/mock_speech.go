package testutil

import (
	"context"

	"github.com/stretchr/testify/mock"

	"convai/internal/app/speech"
)

// MockTranscriber is a testify mock of speech.Transcriber
type MockTranscriber struct {
	mock.Mock
}

func NewMockTranscriber() *MockTranscriber {
	return &MockTranscriber{}
}

// Transcribe implements speech.Transcriber
func (m *MockTranscriber) Transcribe(ctx context.Context, audio []byte) (string, error) {
	args := m.Called(ctx, audio)
	return args.String(0), args.Error(1)
}

// MockSynthesizer is a testify mock of speech.Synthesizer
type MockSynthesizer struct {
	mock.Mock
}

func NewMockSynthesizer() *MockSynthesizer {
	return &MockSynthesizer{}
}

// Synthesize implements speech.Synthesizer
func (m *MockSynthesizer) Synthesize(ctx context.Context, text string) ([]byte, error) {
	args := m.Called(ctx, text)
	if audio := args.Get(0); audio != nil {
		return audio.([]byte), args.Error(1)
	}
	return nil, args.Error(1)
}

// MockSentimentAnalyzer is a testify mock of speech.SentimentAnalyzer
type MockSentimentAnalyzer struct {
	mock.Mock
}

func NewMockSentimentAnalyzer() *MockSentimentAnalyzer {
	return &MockSentimentAnalyzer{}
}

// AnalyzeSentiment implements speech.SentimentAnalyzer
func (m *MockSentimentAnalyzer) AnalyzeSentiment(ctx context.Context, text string) (speech.Sentiment, error) {
	args := m.Called(ctx, text)
	return args.Get(0).(speech.Sentiment), args.Error(1)
}

var (
	_ speech.Transcriber       = (*MockTranscriber)(nil)
	_ speech.Synthesizer       = (*MockSynthesizer)(nil)
	_ speech.SentimentAnalyzer = (*MockSentimentAnalyzer)(nil)
)
