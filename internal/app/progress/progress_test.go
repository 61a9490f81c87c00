package progress

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTracker_Disabled(t *testing.T) {
	tr := NewTracker("Transcribing", Config{Enabled: false})
	tr.Start(3)
	tr.Done("a.wav", nil)
	tr.Done("b.wav", errors.New("boom"))
	tr.Wait()

	assert.Equal(t, 1, tr.Failed())
}

func TestTracker_Enabled(t *testing.T) {
	var buf bytes.Buffer
	tr := NewTracker("Transcribing", Config{Enabled: true, Writer: &buf})
	tr.Start(2)
	tr.Done("a.wav", nil)
	tr.Done("b.wav", nil)
	tr.Wait()

	assert.Equal(t, 0, tr.Failed())
}

func TestTracker_WaitReturnsForUnfinishedBar(t *testing.T) {
	tr := NewTracker("Transcribing", Config{Enabled: true, Writer: &bytes.Buffer{}})
	tr.Start(5)
	tr.Done("a.wav", nil)
	tr.Wait()
}

func TestTracker_EmptyRun(t *testing.T) {
	tr := NewTracker("Transcribing", Config{Enabled: true, Writer: &bytes.Buffer{}})
	tr.Start(0)
	tr.Wait()
}

func TestIsTTY(t *testing.T) {
	assert.False(t, IsTTY(nil))
	assert.False(t, IsTTY(&bytes.Buffer{}))
	assert.True(t, ShouldShow(true))
}
