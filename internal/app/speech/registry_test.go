package speech

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"convai/internal/config"
)

type fakeTranscriber struct {
	text   string
	err    error
	closed bool
}

func (f *fakeTranscriber) Transcribe(context.Context, []byte) (string, error) { return f.text, f.err }

func (f *fakeTranscriber) Close() error {
	f.closed = true
	return nil
}

func TestNewTranscriber_UsesRegisteredProvider(t *testing.T) {
	fake := &fakeTranscriber{text: "hello world"}
	RegisterTranscriber("fake-stt", func(context.Context, *config.Config) (Transcriber, error) {
		return fake, nil
	})

	cfg := config.Default(config.VariantClassic)
	cfg.Speech.STTProvider = "fake-stt"

	tr, err := NewTranscriber(context.Background(), cfg)
	require.NoError(t, err)

	text, err := tr.Transcribe(context.Background(), []byte("RIFF"))
	require.NoError(t, err)
	assert.Equal(t, "hello world", text)

	require.NoError(t, Close(tr))
	assert.True(t, fake.closed, "Close reaches the wrapped adapter")
	assert.Contains(t, ListRegistered()["stt"], "fake-stt")
}

func TestNewTranscriber_PropagatesErrors(t *testing.T) {
	boom := errors.New("quota exceeded")
	RegisterTranscriber("failing-stt", func(context.Context, *config.Config) (Transcriber, error) {
		return &fakeTranscriber{err: boom}, nil
	})

	cfg := config.Default(config.VariantClassic)
	cfg.Speech.STTProvider = "failing-stt"

	tr, err := NewTranscriber(context.Background(), cfg)
	require.NoError(t, err)

	_, err = tr.Transcribe(context.Background(), nil)
	assert.ErrorIs(t, err, boom)
}

func TestNewTranscriber_Unregistered(t *testing.T) {
	cfg := config.Default(config.VariantClassic)
	cfg.Speech.STTProvider = "does-not-exist"

	_, err := NewTranscriber(context.Background(), cfg)
	assert.ErrorContains(t, err, "not registered")
}

func TestNewSentimentAnalyzer_DisabledForClassic(t *testing.T) {
	a, err := NewSentimentAnalyzer(context.Background(), config.Default(config.VariantClassic))
	require.NoError(t, err)
	assert.Nil(t, a)
}

func TestClose_NonCloser(t *testing.T) {
	assert.NoError(t, Close(struct{}{}))
}
