package services

import (
	"context"
	stderrors "errors"
	"io"

	"convai/internal/api/errors"
	"convai/internal/api/v1/dto"
	"convai/internal/app/pipeline"
)

// MediaServiceImpl implements MediaService on the request pipeline
type MediaServiceImpl struct {
	pipeline *pipeline.Pipeline
}

// NewMediaService creates a new media service
func NewMediaService(p *pipeline.Pipeline) MediaService {
	return &MediaServiceImpl{pipeline: p}
}

// Upload stores and transcribes a recording. ErrEmptyUpload and
// ErrUnsupportedFormat are returned unwrapped so the handler can flash them.
func (s *MediaServiceImpl) Upload(ctx context.Context, filename string, r io.Reader) (*dto.UploadResponse, error) {
	result, err := s.pipeline.Upload(ctx, filename, r)
	if err != nil {
		return nil, err
	}
	return &dto.UploadResponse{
		AudioName:      result.AudioName,
		TranscriptName: result.TranscriptName,
		Transcript:     result.Transcript,
		Sentiment:      result.Sentiment,
	}, nil
}

// Synthesize renders text to a stored MP3
func (s *MediaServiceImpl) Synthesize(ctx context.Context, text string) (*dto.SynthesisResponse, error) {
	result, err := s.pipeline.Synthesize(ctx, text)
	if stderrors.Is(err, pipeline.ErrEmptyText) {
		return nil, errors.NewValidationError("Validation failed", map[string]string{"text": "is required"})
	}
	if err != nil {
		return nil, err
	}
	return &dto.SynthesisResponse{
		AudioName: result.AudioName,
		Sentiment: result.Sentiment,
	}, nil
}

// SentimentEnabled reports whether results carry a sentiment summary
func (s *MediaServiceImpl) SentimentEnabled() bool {
	return s.pipeline.SentimentEnabled()
}
