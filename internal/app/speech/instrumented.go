package speech

import (
	"context"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	adapterCalls = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "convai",
		Name:      "speech_adapter_calls_total",
		Help:      "Cloud speech adapter calls by operation, provider and outcome.",
	}, []string{"operation", "provider", "outcome"})

	adapterLatency = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "convai",
		Name:      "speech_adapter_duration_seconds",
		Help:      "Cloud speech adapter call latency.",
		Buckets:   prometheus.ExponentialBuckets(0.05, 2, 10),
	}, []string{"operation", "provider"})
)

func observe(operation, provider string, start time.Time, err error) {
	outcome := "ok"
	if err != nil {
		outcome = "error"
	}
	adapterCalls.WithLabelValues(operation, provider, outcome).Inc()
	adapterLatency.WithLabelValues(operation, provider).Observe(time.Since(start).Seconds())
}

type instrumentedTranscriber struct {
	Transcriber
	provider string
}

// Instrument wraps t so every call is counted and timed under provider
func Instrument(t Transcriber, provider string) Transcriber {
	return &instrumentedTranscriber{Transcriber: t, provider: provider}
}

func (i *instrumentedTranscriber) Transcribe(ctx context.Context, audio []byte) (string, error) {
	start := time.Now()
	text, err := i.Transcriber.Transcribe(ctx, audio)
	observe("transcribe", i.provider, start, err)
	return text, err
}

func (i *instrumentedTranscriber) Close() error { return Close(i.Transcriber) }

type instrumentedSynthesizer struct {
	Synthesizer
	provider string
}

// InstrumentSynthesizer wraps s so every call is counted and timed under provider
func InstrumentSynthesizer(s Synthesizer, provider string) Synthesizer {
	return &instrumentedSynthesizer{Synthesizer: s, provider: provider}
}

func (i *instrumentedSynthesizer) Synthesize(ctx context.Context, text string) ([]byte, error) {
	start := time.Now()
	audio, err := i.Synthesizer.Synthesize(ctx, text)
	observe("synthesize", i.provider, start, err)
	return audio, err
}

func (i *instrumentedSynthesizer) Close() error { return Close(i.Synthesizer) }

type instrumentedSentiment struct {
	SentimentAnalyzer
	provider string
}

// InstrumentSentiment wraps a so every call is counted and timed under provider
func InstrumentSentiment(a SentimentAnalyzer, provider string) SentimentAnalyzer {
	return &instrumentedSentiment{SentimentAnalyzer: a, provider: provider}
}

func (i *instrumentedSentiment) AnalyzeSentiment(ctx context.Context, text string) (Sentiment, error) {
	start := time.Now()
	s, err := i.SentimentAnalyzer.AnalyzeSentiment(ctx, text)
	observe("sentiment", i.provider, start, err)
	return s, err
}

func (i *instrumentedSentiment) Close() error { return Close(i.SentimentAnalyzer) }
