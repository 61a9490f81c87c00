package openai

import (
	"context"
	"fmt"
	"io"

	"github.com/sashabaranov/go-openai"

	"convai/internal/app/speech"
)

const defaultVoice = openai.VoiceAlloy

// Synthesizer renders text to MP3 with the OpenAI speech endpoint
type Synthesizer struct {
	client *openai.Client
	voice  openai.SpeechVoice
}

func NewSynthesizer(client *openai.Client, settings speech.VoiceSettings) *Synthesizer {
	voice := openai.SpeechVoice(settings.Voice)
	if voice == "" {
		voice = defaultVoice
	}
	return &Synthesizer{client: client, voice: voice}
}

// Synthesize implements speech.Synthesizer
func (s *Synthesizer) Synthesize(ctx context.Context, text string) ([]byte, error) {
	resp, err := s.client.CreateSpeech(ctx, openai.CreateSpeechRequest{
		Model:          openai.TTSModel1,
		Input:          text,
		Voice:          s.voice,
		ResponseFormat: openai.SpeechResponseFormatMp3,
	})
	if err != nil {
		return nil, fmt.Errorf("speech synthesis error: %w", err)
	}
	defer resp.Close()

	audio, err := io.ReadAll(resp)
	if err != nil {
		return nil, fmt.Errorf("failed to read synthesized audio: %w", err)
	}
	return audio, nil
}
