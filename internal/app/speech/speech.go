// Package speech defines the contracts between the request pipeline and the cloud
// speech services, plus the fixed request settings every adapter shares.
package speech

import (
	"context"

	"convai/internal/config"
)

// Fallback transcripts written to the sidecar instead of a recognised text
const (
	NoTranscription    = "No transcription available."
	TranscriptionError = "Error occurred during transcription."
)

// Transcriber converts an audio payload to text
type Transcriber interface {
	// Transcribe returns the first alternative of the first recognition result,
	// or NoTranscription when the service recognised nothing.
	Transcribe(ctx context.Context, audio []byte) (string, error)
}

// Synthesizer converts text to MP3 audio
type Synthesizer interface {
	Synthesize(ctx context.Context, text string) ([]byte, error)
}

// SentimentAnalyzer scores the overall sentiment of a text
type SentimentAnalyzer interface {
	AnalyzeSentiment(ctx context.Context, text string) (Sentiment, error)
}

// RecognitionSettings are the fixed speech-to-text request parameters
type RecognitionSettings struct {
	Encoding        string
	SampleRateHertz int32
	LanguageCode    string
}

// VoiceSettings are the fixed text-to-speech request parameters
type VoiceSettings struct {
	LanguageCode string
	Gender       string
	// Voice is the provider specific voice name, empty selects the provider default
	Voice string
}

// RecognitionFromConfig extracts the recognition parameters from cfg
func RecognitionFromConfig(cfg *config.Config) RecognitionSettings {
	return RecognitionSettings{
		Encoding:        cfg.Speech.Encoding,
		SampleRateHertz: cfg.Speech.SampleRateHertz,
		LanguageCode:    cfg.Speech.LanguageCode,
	}
}

// VoiceFromConfig extracts the synthesis parameters from cfg
func VoiceFromConfig(cfg *config.Config) VoiceSettings {
	return VoiceSettings{
		LanguageCode: cfg.Speech.LanguageCode,
		Gender:       cfg.Speech.VoiceGender,
		Voice:        cfg.Speech.OpenAIVoice,
	}
}
