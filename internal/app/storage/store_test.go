package storage

import (
	"os"
	"path/filepath"
	"regexp"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fixedTime = time.Date(2024, 3, 9, 15, 4, 5, 0, time.UTC)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := NewStore(filepath.Join(t.TempDir(), "upload"), WithClock(func() time.Time { return fixedTime }))
	require.NoError(t, err)
	return s
}

func TestNewName(t *testing.T) {
	assert.Equal(t, "audio_20240309-150405.wav", NewName("audio_", "wav", fixedTime))
	assert.Equal(t, "tts_20240309-150405.mp3", NewName("tts_", ".mp3", fixedTime))
	assert.Regexp(t, regexp.MustCompile(`^synth_audio_\d{8}-\d{6}\.mp3$`), NewName("synth_audio_", "mp3", time.Now()))
}

func TestSidecarName(t *testing.T) {
	assert.Equal(t, "audio_20240309-150405.txt", SidecarName("audio_20240309-150405.wav"))
	assert.Equal(t, "audio_20240309-150405_002.txt", SidecarName("audio_20240309-150405_002.wav"))
}

func TestIsAllowed(t *testing.T) {
	for _, name := range []string{"a.wav", "a.txt", "a.mp3", "A.WAV", "b.Mp3"} {
		assert.True(t, IsAllowed(name), name)
	}
	for _, name := range []string{"a.ogg", "a", "wav", "a.wav.exe", ".env"} {
		assert.False(t, IsAllowed(name), name)
	}
}

func TestCreate_CollisionSuffix(t *testing.T) {
	s := newTestStore(t)

	first, err := s.Create("audio_", "wav", []byte("one"))
	require.NoError(t, err)
	second, err := s.Create("audio_", "wav", []byte("two"))
	require.NoError(t, err)
	third, err := s.Create("audio_", "wav", []byte("three"))
	require.NoError(t, err)

	assert.Equal(t, "audio_20240309-150405.wav", first)
	assert.Equal(t, "audio_20240309-150405_002.wav", second)
	assert.Equal(t, "audio_20240309-150405_003.wav", third)

	data, err := s.Read(first)
	require.NoError(t, err)
	assert.Equal(t, []byte("one"), data, "first file is never overwritten")
}

func TestCreate_ConcurrentSameSecond(t *testing.T) {
	s := newTestStore(t)

	const writers = 25
	names := make(chan string, writers)
	var wg sync.WaitGroup
	for i := 0; i < writers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			name, err := s.Create("audio_", "wav", []byte("x"))
			assert.NoError(t, err)
			names <- name
		}()
	}
	wg.Wait()
	close(names)

	seen := map[string]bool{}
	for name := range names {
		assert.False(t, seen[name], "duplicate name %s", name)
		seen[name] = true
	}
	assert.Len(t, seen, writers)

	listed, err := s.List()
	require.NoError(t, err)
	assert.Len(t, listed, writers)
}

func TestList_SameSecondNewestFirst(t *testing.T) {
	s := newTestStore(t)

	var created []string
	for i := 0; i < 12; i++ {
		name, err := s.Create("audio_", "wav", []byte("RIFF"))
		require.NoError(t, err)
		_, err = s.WriteSidecar(name, "text")
		require.NoError(t, err)
		created = append(created, name)
	}

	names, err := s.List()
	require.NoError(t, err)
	require.Len(t, names, 24)

	// two entries per recording: .wav then .txt in descending order
	for i := range created {
		newest := created[len(created)-1-i]
		assert.Equal(t, newest, names[2*i])
		assert.Equal(t, SidecarName(newest), names[2*i+1])
	}
}

func TestSidecarAndAppend(t *testing.T) {
	s := newTestStore(t)

	audio, err := s.Create("audio_", "wav", []byte("RIFF"))
	require.NoError(t, err)

	sidecar, err := s.WriteSidecar(audio, "hello world")
	require.NoError(t, err)
	assert.Equal(t, "audio_20240309-150405.txt", sidecar)

	require.NoError(t, s.AppendLine(sidecar, "Sentiment: positive, Magnitude: 0.6, Score: 0.3"))

	data, err := s.Read(sidecar)
	require.NoError(t, err)
	assert.Equal(t, "hello world\nSentiment: positive, Magnitude: 0.6, Score: 0.3", string(data))

	err = s.AppendLine("missing.txt", "x")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestList(t *testing.T) {
	s := newTestStore(t)

	for _, name := range []string{
		"audio_20240101-000000.wav",
		"audio_20240101-000000.txt",
		"audio_20240305-120000.wav",
		"tts_20240201-101010.MP3",
		"notes.ogg",
		"README",
	} {
		require.NoError(t, os.WriteFile(filepath.Join(s.Dir(), name), []byte("x"), 0o644))
	}
	require.NoError(t, os.Mkdir(filepath.Join(s.Dir(), "nested.wav"), 0o755))

	names, err := s.List()
	require.NoError(t, err)
	assert.Equal(t, []string{
		"tts_20240201-101010.MP3",
		"audio_20240305-120000.wav",
		"audio_20240101-000000.wav",
		"audio_20240101-000000.txt",
	}, names)
}

func TestList_MissingDirectory(t *testing.T) {
	s := newTestStore(t)
	require.NoError(t, os.RemoveAll(s.Dir()))

	names, err := s.List()
	require.NoError(t, err)
	assert.Empty(t, names)
}

func TestPath(t *testing.T) {
	s := newTestStore(t)
	require.NoError(t, os.WriteFile(filepath.Join(s.Dir(), "a.txt"), []byte("x"), 0o644))

	path, err := s.Path("a.txt")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(s.Dir(), "a.txt"), path)
	assert.True(t, s.Exists("a.txt"))

	_, err = s.Path("missing.txt")
	assert.ErrorIs(t, err, ErrNotFound)
	assert.False(t, s.Exists("missing.txt"))

	for _, name := range []string{"", ".", "..", "../secret.txt", `..\secret.txt`, "sub/a.txt"} {
		_, err := s.Path(name)
		assert.ErrorIs(t, err, ErrInvalidName, name)
	}
}
