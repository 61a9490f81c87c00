// Package pipeline runs the two request flows of the application: an uploaded
// recording is stored and transcribed into a sidecar, typed text is synthesized into
// a stored MP3. In the sentiment variant both flows also score the text.
package pipeline

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"go.uber.org/zap"

	"convai/internal/app/speech"
	"convai/internal/app/storage"
)

// RecordingPrefix and RecordingExt name stored uploads: audio_<timestamp>.wav
const (
	RecordingPrefix = "audio_"
	RecordingExt    = "wav"
	SynthesisExt    = "mp3"
)

var (
	ErrEmptyUpload       = errors.New("no audio file selected")
	ErrUnsupportedFormat = errors.New("unsupported audio format")
	ErrEmptyText         = errors.New("text is required")
)

// Options carry the fixed per-variant settings
type Options struct {
	SynthesisPrefix  string
	NeutralThreshold float32
}

// Pipeline holds the shared adapters and stores. It has no mutable state and is safe
// for concurrent use.
type Pipeline struct {
	uploads   *storage.Store
	audio     *storage.Store
	stt       speech.Transcriber
	tts       speech.Synthesizer
	sentiment speech.SentimentAnalyzer
	opts      Options
	logger    *zap.Logger
}

// UploadResult describes the files written for one upload
type UploadResult struct {
	AudioName      string
	TranscriptName string
	Transcript     string
	// Sentiment is the summary line, empty when sentiment is disabled or skipped
	Sentiment string
}

// SynthesisResult describes the file written for one synthesis
type SynthesisResult struct {
	AudioName string
	Sentiment string
}

// New creates a pipeline. sentiment may be nil, which disables scoring.
func New(uploads, audio *storage.Store, stt speech.Transcriber, tts speech.Synthesizer,
	sentiment speech.SentimentAnalyzer, opts Options, logger *zap.Logger) *Pipeline {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Pipeline{
		uploads:   uploads,
		audio:     audio,
		stt:       stt,
		tts:       tts,
		sentiment: sentiment,
		opts:      opts,
		logger:    logger,
	}
}

// SentimentEnabled reports whether the pipeline scores text
func (p *Pipeline) SentimentEnabled() bool {
	return p.sentiment != nil
}

// Upload stores the recording read from r, transcribes it and writes the sidecar.
// A transcription failure does not fail the upload: the sidecar then holds
// speech.TranscriptionError. filename is the client-side name and only its
// extension is checked; recorder blobs without an extension are accepted.
func (p *Pipeline) Upload(ctx context.Context, filename string, r io.Reader) (*UploadResult, error) {
	if filepath.Ext(filename) != "" && !storage.IsAudio(filename) {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, filename)
	}

	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read upload: %w", err)
	}
	if len(data) == 0 {
		return nil, ErrEmptyUpload
	}

	name, err := p.uploads.Create(RecordingPrefix, RecordingExt, data)
	if err != nil {
		return nil, fmt.Errorf("failed to store recording: %w", err)
	}
	p.logger.Info("recording stored",
		zap.String("file", name),
		zap.Int("bytes", len(data)),
		zap.String("client_filename", filename))

	return p.transcribe(ctx, name, data)
}

// transcribe runs speech-to-text over data and writes the sidecar of name
func (p *Pipeline) transcribe(ctx context.Context, name string, data []byte) (*UploadResult, error) {
	transcript, err := p.stt.Transcribe(ctx, data)
	if err != nil {
		p.logger.Error("transcription failed", zap.String("file", name), zap.Error(err))
		transcript = speech.TranscriptionError
	}
	return p.record(ctx, name, transcript)
}

// record writes transcript as the sidecar of name, followed by the sentiment line
// in the sentiment variant
func (p *Pipeline) record(ctx context.Context, name, transcript string) (*UploadResult, error) {
	sidecar, err := p.uploads.WriteSidecar(name, transcript)
	if err != nil {
		return nil, fmt.Errorf("failed to store transcript: %w", err)
	}

	result := &UploadResult{
		AudioName:      name,
		TranscriptName: sidecar,
		Transcript:     transcript,
	}

	if !p.SentimentEnabled() || isFallback(transcript) {
		return result, nil
	}

	summary, err := p.summarize(ctx, transcript)
	if err != nil {
		return result, err
	}
	if err := p.uploads.AppendLine(sidecar, summary); err != nil {
		return result, fmt.Errorf("failed to store sentiment: %w", err)
	}
	result.Sentiment = summary
	return result, nil
}

// Synthesize renders text to MP3 and stores it in the audio directory. Adapter and
// filesystem failures are returned unchanged in kind.
func (p *Pipeline) Synthesize(ctx context.Context, text string) (*SynthesisResult, error) {
	if strings.TrimSpace(text) == "" {
		return nil, ErrEmptyText
	}

	audio, err := p.tts.Synthesize(ctx, text)
	if err != nil {
		return nil, fmt.Errorf("speech synthesis failed: %w", err)
	}

	name, err := p.audio.Create(p.opts.SynthesisPrefix, SynthesisExt, audio)
	if err != nil {
		return nil, fmt.Errorf("failed to store synthesized audio: %w", err)
	}
	p.logger.Info("synthesized audio stored", zap.String("file", name), zap.Int("bytes", len(audio)))

	result := &SynthesisResult{AudioName: name}
	if !p.SentimentEnabled() {
		return result, nil
	}

	summary, err := p.summarize(ctx, text)
	if err != nil {
		return result, err
	}
	result.Sentiment = summary
	return result, nil
}

func (p *Pipeline) summarize(ctx context.Context, text string) (string, error) {
	s, err := p.sentiment.AnalyzeSentiment(ctx, text)
	if err != nil {
		return "", fmt.Errorf("sentiment analysis failed: %w", err)
	}
	return speech.Summary(s, p.opts.NeutralThreshold), nil
}

func isFallback(transcript string) bool {
	return transcript == speech.NoTranscription || transcript == speech.TranscriptionError
}
