// Package google implements the speech adapters on Google Cloud Speech-to-Text,
// Text-to-Speech and Natural Language.
package google

import (
	"context"
	"fmt"
	"strings"

	speechapi "cloud.google.com/go/speech/apiv1"
	"cloud.google.com/go/speech/apiv1/speechpb"
	"github.com/googleapis/gax-go/v2"

	"convai/internal/app/speech"
	"convai/internal/config"
)

func init() {
	speech.RegisterTranscriber(config.ProviderGoogle, func(ctx context.Context, cfg *config.Config) (speech.Transcriber, error) {
		client, err := speechapi.NewClient(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to create Speech-to-Text client: %w", err)
		}
		t, err := NewTranscriber(client, speech.RecognitionFromConfig(cfg))
		if err != nil {
			client.Close()
			return nil, err
		}
		return t, nil
	})
}

// recognizer is the subset of the Speech-to-Text client the adapter calls
type recognizer interface {
	Recognize(ctx context.Context, req *speechpb.RecognizeRequest, opts ...gax.CallOption) (*speechpb.RecognizeResponse, error)
	Close() error
}

// Transcriber calls the synchronous Recognize endpoint with a fixed configuration
type Transcriber struct {
	client recognizer
	config *speechpb.RecognitionConfig
}

// NewTranscriber builds the recognition config once; the client is shared by all requests
func NewTranscriber(client recognizer, settings speech.RecognitionSettings) (*Transcriber, error) {
	encoding, ok := speechpb.RecognitionConfig_AudioEncoding_value[strings.ToUpper(settings.Encoding)]
	if !ok {
		return nil, fmt.Errorf("unsupported recognition encoding %q", settings.Encoding)
	}

	return &Transcriber{
		client: client,
		config: &speechpb.RecognitionConfig{
			Encoding:        speechpb.RecognitionConfig_AudioEncoding(encoding),
			SampleRateHertz: settings.SampleRateHertz,
			LanguageCode:    settings.LanguageCode,
		},
	}, nil
}

// Transcribe implements speech.Transcriber
func (t *Transcriber) Transcribe(ctx context.Context, audio []byte) (string, error) {
	resp, err := t.client.Recognize(ctx, &speechpb.RecognizeRequest{
		Config: t.config,
		Audio: &speechpb.RecognitionAudio{
			AudioSource: &speechpb.RecognitionAudio_Content{Content: audio},
		},
	})
	if err != nil {
		return "", fmt.Errorf("recognize failed: %w", err)
	}

	results := resp.GetResults()
	if len(results) == 0 || len(results[0].GetAlternatives()) == 0 {
		return speech.NoTranscription, nil
	}
	return results[0].GetAlternatives()[0].GetTranscript(), nil
}

// Close releases the underlying gRPC connection
func (t *Transcriber) Close() error {
	return t.client.Close()
}
