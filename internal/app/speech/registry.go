package speech

import (
	"context"
	"fmt"
	"io"
	"sort"
	"sync"

	"github.com/samber/lo"

	"convai/internal/config"
)

// TranscriberCreator builds a Transcriber from configuration
type TranscriberCreator func(ctx context.Context, cfg *config.Config) (Transcriber, error)

// SynthesizerCreator builds a Synthesizer from configuration
type SynthesizerCreator func(ctx context.Context, cfg *config.Config) (Synthesizer, error)

// SentimentCreator builds a SentimentAnalyzer from configuration
type SentimentCreator func(ctx context.Context, cfg *config.Config) (SentimentAnalyzer, error)

var (
	registryMutex sync.RWMutex
	transcribers  = make(map[string]TranscriberCreator)
	synthesizers  = make(map[string]SynthesizerCreator)
	analyzers     = make(map[string]SentimentCreator)
)

// RegisterTranscriber registers a speech-to-text provider under name
func RegisterTranscriber(name string, creator TranscriberCreator) {
	registryMutex.Lock()
	defer registryMutex.Unlock()
	transcribers[name] = creator
}

// RegisterSynthesizer registers a text-to-speech provider under name
func RegisterSynthesizer(name string, creator SynthesizerCreator) {
	registryMutex.Lock()
	defer registryMutex.Unlock()
	synthesizers[name] = creator
}

// RegisterSentimentAnalyzer registers a sentiment provider under name
func RegisterSentimentAnalyzer(name string, creator SentimentCreator) {
	registryMutex.Lock()
	defer registryMutex.Unlock()
	analyzers[name] = creator
}

// NewTranscriber creates the configured speech-to-text provider
func NewTranscriber(ctx context.Context, cfg *config.Config) (Transcriber, error) {
	registryMutex.RLock()
	creator, ok := transcribers[cfg.Speech.STTProvider]
	registryMutex.RUnlock()
	if !ok {
		return nil, fmt.Errorf("stt provider %s not registered", cfg.Speech.STTProvider)
	}
	t, err := creator(ctx, cfg)
	if err != nil {
		return nil, err
	}
	return Instrument(t, cfg.Speech.STTProvider), nil
}

// NewSynthesizer creates the configured text-to-speech provider
func NewSynthesizer(ctx context.Context, cfg *config.Config) (Synthesizer, error) {
	registryMutex.RLock()
	creator, ok := synthesizers[cfg.Speech.TTSProvider]
	registryMutex.RUnlock()
	if !ok {
		return nil, fmt.Errorf("tts provider %s not registered", cfg.Speech.TTSProvider)
	}
	s, err := creator(ctx, cfg)
	if err != nil {
		return nil, err
	}
	return InstrumentSynthesizer(s, cfg.Speech.TTSProvider), nil
}

// NewSentimentAnalyzer creates the configured sentiment provider, or nil when the
// variant does not score sentiment.
func NewSentimentAnalyzer(ctx context.Context, cfg *config.Config) (SentimentAnalyzer, error) {
	if !cfg.SentimentEnabled() {
		return nil, nil
	}

	registryMutex.RLock()
	creator, ok := analyzers[cfg.Speech.SentimentProvider]
	registryMutex.RUnlock()
	if !ok {
		return nil, fmt.Errorf("sentiment provider %s not registered", cfg.Speech.SentimentProvider)
	}
	a, err := creator(ctx, cfg)
	if err != nil {
		return nil, err
	}
	return InstrumentSentiment(a, cfg.Speech.SentimentProvider), nil
}

// ListRegistered returns the registered provider names per capability
func ListRegistered() map[string][]string {
	registryMutex.RLock()
	defer registryMutex.RUnlock()

	out := map[string][]string{
		"stt":       keys(transcribers),
		"tts":       keys(synthesizers),
		"sentiment": keys(analyzers),
	}
	return out
}

// Close releases an adapter's client connection if it holds one
func Close(adapter any) error {
	if c, ok := adapter.(io.Closer); ok {
		return c.Close()
	}
	return nil
}

func keys[V any](m map[string]V) []string {
	names := lo.Keys(m)
	sort.Strings(names)
	return names
}
