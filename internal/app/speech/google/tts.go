package google

import (
	"context"
	"fmt"
	"strings"

	texttospeech "cloud.google.com/go/texttospeech/apiv1"
	"cloud.google.com/go/texttospeech/apiv1/texttospeechpb"
	"github.com/googleapis/gax-go/v2"

	"convai/internal/app/speech"
	"convai/internal/config"
)

func init() {
	speech.RegisterSynthesizer(config.ProviderGoogle, func(ctx context.Context, cfg *config.Config) (speech.Synthesizer, error) {
		client, err := texttospeech.NewClient(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to create Text-to-Speech client: %w", err)
		}
		s, err := NewSynthesizer(client, speech.VoiceFromConfig(cfg))
		if err != nil {
			client.Close()
			return nil, err
		}
		return s, nil
	})
}

type speechSynthesizer interface {
	SynthesizeSpeech(ctx context.Context, req *texttospeechpb.SynthesizeSpeechRequest, opts ...gax.CallOption) (*texttospeechpb.SynthesizeSpeechResponse, error)
	Close() error
}

// Synthesizer renders text to MP3 with a fixed voice
type Synthesizer struct {
	client speechSynthesizer
	voice  *texttospeechpb.VoiceSelectionParams
}

// NewSynthesizer resolves the voice gender by its enum name (NEUTRAL, FEMALE, MALE)
func NewSynthesizer(client speechSynthesizer, settings speech.VoiceSettings) (*Synthesizer, error) {
	gender, ok := texttospeechpb.SsmlVoiceGender_value[strings.ToUpper(settings.Gender)]
	if !ok {
		return nil, fmt.Errorf("unsupported voice gender %q", settings.Gender)
	}

	return &Synthesizer{
		client: client,
		voice: &texttospeechpb.VoiceSelectionParams{
			LanguageCode: settings.LanguageCode,
			SsmlGender:   texttospeechpb.SsmlVoiceGender(gender),
		},
	}, nil
}

// Synthesize implements speech.Synthesizer
func (s *Synthesizer) Synthesize(ctx context.Context, text string) ([]byte, error) {
	resp, err := s.client.SynthesizeSpeech(ctx, &texttospeechpb.SynthesizeSpeechRequest{
		Input: &texttospeechpb.SynthesisInput{
			InputSource: &texttospeechpb.SynthesisInput_Text{Text: text},
		},
		Voice: s.voice,
		AudioConfig: &texttospeechpb.AudioConfig{
			AudioEncoding: texttospeechpb.AudioEncoding_MP3,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("synthesize speech failed: %w", err)
	}
	return resp.GetAudioContent(), nil
}

// Close releases the underlying gRPC connection
func (s *Synthesizer) Close() error {
	return s.client.Close()
}
