package test

import (
	"context"
	"io"

	"github.com/stretchr/testify/mock"

	"convai/internal/api/v1/dto"
	"convai/internal/api/v1/services"
)

// MockMediaService is a testify mock of services.MediaService. Upload drains the
// reader so the mock can be matched on the payload.
type MockMediaService struct {
	mock.Mock
}

func (m *MockMediaService) Upload(ctx context.Context, filename string, r io.Reader) (*dto.UploadResponse, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	args := m.Called(ctx, filename, data)
	if resp := args.Get(0); resp != nil {
		return resp.(*dto.UploadResponse), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockMediaService) Synthesize(ctx context.Context, text string) (*dto.SynthesisResponse, error) {
	args := m.Called(ctx, text)
	if resp := args.Get(0); resp != nil {
		return resp.(*dto.SynthesisResponse), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockMediaService) SentimentEnabled() bool {
	return m.Called().Bool(0)
}

// MockFileService is a testify mock of services.FileService
type MockFileService struct {
	mock.Mock
}

func (m *MockFileService) ListUploads() ([]string, error) {
	args := m.Called()
	return args.Get(0).([]string), args.Error(1)
}

func (m *MockFileService) ListAudio() ([]string, error) {
	args := m.Called()
	return args.Get(0).([]string), args.Error(1)
}

func (m *MockFileService) UploadPath(name string) (string, error) {
	args := m.Called(name)
	return args.String(0), args.Error(1)
}

func (m *MockFileService) AudioPath(name string) (string, error) {
	args := m.Called(name)
	return args.String(0), args.Error(1)
}

// MockServices groups the service mocks used by handler tests
type MockServices struct {
	MediaService *MockMediaService
	FileService  *MockFileService
}

// NewMockServices creates fresh service mocks whose expectations are asserted
// when the test ends
func NewMockServices(t mock.TestingT) *MockServices {
	ms := &MockServices{
		MediaService: &MockMediaService{},
		FileService:  &MockFileService{},
	}
	if c, ok := t.(interface{ Cleanup(func()) }); ok {
		c.Cleanup(func() {
			ms.MediaService.AssertExpectations(t)
			ms.FileService.AssertExpectations(t)
		})
	}
	return ms
}

var (
	_ services.MediaService = (*MockMediaService)(nil)
	_ services.FileService  = (*MockFileService)(nil)
)
