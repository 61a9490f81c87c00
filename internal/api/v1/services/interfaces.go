package services

import (
	"context"
	"io"

	"convai/internal/api/v1/dto"
)

// MediaService runs the upload and synthesis flows
type MediaService interface {
	Upload(ctx context.Context, filename string, r io.Reader) (*dto.UploadResponse, error)
	Synthesize(ctx context.Context, text string) (*dto.SynthesisResponse, error)
	SentimentEnabled() bool
}

// FileService lists and resolves stored files
type FileService interface {
	ListUploads() ([]string, error)
	ListAudio() ([]string, error)
	UploadPath(name string) (string, error)
	AudioPath(name string) (string, error)
}
