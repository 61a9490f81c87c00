// Package openai implements speech-to-text and text-to-speech on the OpenAI audio API.
package openai

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/gabriel-vasile/mimetype"
	"github.com/sashabaranov/go-openai"

	"convai/internal/app/speech"
	"convai/internal/config"
)

func init() {
	speech.RegisterTranscriber(config.ProviderOpenAI, func(_ context.Context, cfg *config.Config) (speech.Transcriber, error) {
		return NewTranscriber(openai.NewClient(cfg.Keys.OpenAI), speech.RecognitionFromConfig(cfg)), nil
	})
	speech.RegisterSynthesizer(config.ProviderOpenAI, func(_ context.Context, cfg *config.Config) (speech.Synthesizer, error) {
		return NewSynthesizer(openai.NewClient(cfg.Keys.OpenAI), speech.VoiceFromConfig(cfg)), nil
	})
}

// Transcriber sends audio to the Whisper transcription endpoint
type Transcriber struct {
	client   *openai.Client
	language string
}

// NewTranscriber creates a Whisper transcriber. The BCP-47 language code is
// reduced to the ISO-639-1 prefix Whisper expects.
func NewTranscriber(client *openai.Client, settings speech.RecognitionSettings) *Transcriber {
	language, _, _ := strings.Cut(settings.LanguageCode, "-")
	return &Transcriber{client: client, language: strings.ToLower(language)}
}

// Transcribe implements speech.Transcriber
func (t *Transcriber) Transcribe(ctx context.Context, audio []byte) (string, error) {
	resp, err := t.client.CreateTranscription(ctx, openai.AudioRequest{
		Model:    openai.Whisper1,
		Reader:   bytes.NewReader(audio),
		FilePath: audioFilename(audio),
		Language: t.language,
	})
	if err != nil {
		return "", fmt.Errorf("transcription error: %w", err)
	}

	text := strings.TrimSpace(resp.Text)
	if text == "" {
		return speech.NoTranscription, nil
	}
	return text, nil
}

// whisperFormats are the container extensions the transcription endpoint accepts
var whisperFormats = map[string]bool{
	".flac": true, ".m4a": true, ".mp3": true, ".mp4": true, ".mpeg": true,
	".mpga": true, ".oga": true, ".ogg": true, ".wav": true, ".webm": true,
}

// audioFilename names the upload after the sniffed container; Whisper takes the
// format from the extension. Unrecognised payloads are sent as WAV.
func audioFilename(audio []byte) string {
	ext := mimetype.Detect(audio).Extension()
	if !whisperFormats[ext] {
		ext = ".wav"
	}
	return "audio" + ext
}
