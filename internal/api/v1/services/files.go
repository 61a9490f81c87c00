package services

import (
	stderrors "errors"

	"convai/internal/api/errors"
	"convai/internal/app/storage"
)

// FileServiceImpl implements FileService on the two flat-file stores
type FileServiceImpl struct {
	uploads *storage.Store
	audio   *storage.Store
}

// NewFileService creates a new file service
func NewFileService(uploads, audio *storage.Store) FileService {
	return &FileServiceImpl{uploads: uploads, audio: audio}
}

func (s *FileServiceImpl) ListUploads() ([]string, error) {
	return s.uploads.List()
}

func (s *FileServiceImpl) ListAudio() ([]string, error) {
	return s.audio.List()
}

// UploadPath resolves a file in the upload directory
func (s *FileServiceImpl) UploadPath(name string) (string, error) {
	return resolve(s.uploads, name)
}

// AudioPath resolves a file in the audio directory
func (s *FileServiceImpl) AudioPath(name string) (string, error) {
	return resolve(s.audio, name)
}

func resolve(store *storage.Store, name string) (string, error) {
	path, err := store.Path(name)
	if stderrors.Is(err, storage.ErrNotFound) || stderrors.Is(err, storage.ErrInvalidName) {
		return "", errors.NewNotFoundError("File")
	}
	return path, err
}
