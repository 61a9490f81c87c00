package testutil

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"convai/internal/app/storage"
	"convai/internal/config"
)

// FixedTime is the clock used by stores created with NewTestStores
var FixedTime = time.Date(2024, 3, 9, 15, 4, 5, 0, time.UTC)

// Sample payloads
var (
	SampleWAV = []byte("RIFF\x24\x00\x00\x00WAVEfmt ")
	SampleMP3 = []byte("ID3\x03\x00\x00\x00\x00\x00\x00")
)

// NewTestConfig returns the variant defaults with both directories moved under a
// temporary directory.
func NewTestConfig(t *testing.T, variant config.Variant) *config.Config {
	t.Helper()

	cfg := config.Default(variant)
	root := t.TempDir()
	cfg.Storage.UploadDir = filepath.Join(root, cfg.Storage.UploadDir)
	cfg.Storage.AudioDir = filepath.Join(root, cfg.Storage.AudioDir)
	cfg.Server.Environment = "test"
	require.NoError(t, cfg.Validate())
	return cfg
}

// NewTestStores opens the upload and audio stores of cfg. A non-nil clock pins
// generated names.
func NewTestStores(t *testing.T, cfg *config.Config, clock func() time.Time) (uploads, audio *storage.Store) {
	t.Helper()

	var opts []storage.Option
	if clock != nil {
		opts = append(opts, storage.WithClock(clock))
	}

	uploads, err := storage.NewStore(cfg.Storage.UploadDir, opts...)
	require.NoError(t, err)
	audio, err = storage.NewStore(cfg.Storage.AudioDir, opts...)
	require.NoError(t, err)
	return uploads, audio
}

// Clock returns a clock that always reports at
func Clock(at time.Time) func() time.Time {
	return func() time.Time { return at }
}
