package export

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tealeg/xlsx"

	"convai/internal/app/storage"
)

func newStores(t *testing.T) (*storage.Store, *storage.Store) {
	t.Helper()
	root := t.TempDir()
	uploads, err := storage.NewStore(filepath.Join(root, "upload"))
	require.NoError(t, err)
	audio, err := storage.NewStore(filepath.Join(root, "audio"))
	require.NoError(t, err)
	return uploads, audio
}

func write(t *testing.T, s *storage.Store, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(s.Dir(), name), []byte(content), 0o644))
}

func TestCollect(t *testing.T) {
	uploads, audio := newStores(t)
	write(t, uploads, "audio_20240101-000000.wav", "RIFF")
	write(t, uploads, "audio_20240101-000000.txt", "hello\nSentiment: positive, Magnitude: 0.6, Score: 0.3")
	write(t, uploads, "audio_20240102-000000.wav", "RIFFRIFF")
	write(t, audio, "tts_20240103-000000.mp3", "ID3")

	catalogue, err := Collect(uploads, audio)
	require.NoError(t, err)

	require.Len(t, catalogue.Recordings, 2)
	assert.Equal(t, "audio_20240102-000000.wav", catalogue.Recordings[0].AudioName)
	assert.Empty(t, catalogue.Recordings[0].Transcript, "no sidecar yet")
	assert.Equal(t, int64(8), catalogue.Recordings[0].SizeBytes)

	assert.Equal(t, "hello", catalogue.Recordings[1].Transcript)
	assert.Equal(t, "Sentiment: positive, Magnitude: 0.6, Score: 0.3", catalogue.Recordings[1].Sentiment)

	require.Len(t, catalogue.Synthesized, 1)
	assert.Equal(t, "tts_20240103-000000.mp3", catalogue.Synthesized[0].AudioName)
}

func TestToExcel(t *testing.T) {
	uploads, audio := newStores(t)
	write(t, uploads, "audio_20240101-000000.wav", "RIFF")
	write(t, uploads, "audio_20240101-000000.txt", "hello world")
	write(t, audio, "tts_20240103-000000.mp3", "ID3")

	catalogue, err := Collect(uploads, audio)
	require.NoError(t, err)

	out := filepath.Join(t.TempDir(), "catalogue.xlsx")
	require.NoError(t, ToExcel(catalogue, out))

	file, err := xlsx.OpenFile(out)
	require.NoError(t, err)
	require.Len(t, file.Sheets, 2)

	recordings := file.Sheet["Recordings"]
	require.NotNil(t, recordings)
	require.Len(t, recordings.Rows, 2)
	assert.Equal(t, "Audio File", recordings.Rows[0].Cells[0].Value)
	assert.Equal(t, "audio_20240101-000000.wav", recordings.Rows[1].Cells[0].Value)
	assert.Equal(t, "hello world", recordings.Rows[1].Cells[3].Value)

	synthesized := file.Sheet["Synthesized"]
	require.NotNil(t, synthesized)
	require.Len(t, synthesized.Rows, 2)
	assert.Equal(t, "tts_20240103-000000.mp3", synthesized.Rows[1].Cells[0].Value)
}

func TestSplitSentiment(t *testing.T) {
	transcript, sentiment := splitSentiment("a\nb")
	assert.Equal(t, "a\nb", transcript)
	assert.Empty(t, sentiment)

	transcript, sentiment = splitSentiment("a\nSentiment: negative, Magnitude: 0, Score: 0")
	assert.Equal(t, "a", transcript)
	assert.Equal(t, "Sentiment: negative, Magnitude: 0, Score: 0", sentiment)
}
