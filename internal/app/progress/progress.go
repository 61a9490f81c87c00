// Package progress renders mpb progress bars for batch CLI commands.
package progress

import (
	"io"
	"os"
	"sync"
	"time"

	"github.com/vbauerster/mpb/v8"
	"github.com/vbauerster/mpb/v8/decor"
)

type Config struct {
	Enabled bool
	Writer  io.Writer
}

// Tracker drives a single bar. It satisfies pipeline.Progress.
type Tracker struct {
	container   *mpb.Progress
	bar         *mpb.Bar
	description string
	enabled     bool
	failed      int
	mu          sync.Mutex
}

func NewTracker(description string, config Config) *Tracker {
	if !config.Enabled {
		return &Tracker{description: description}
	}

	writer := config.Writer
	if writer == nil {
		writer = os.Stderr
	}

	return &Tracker{
		container: mpb.New(
			mpb.WithOutput(writer),
			mpb.WithRefreshRate(120*time.Millisecond),
		),
		description: description,
		enabled:     true,
	}
}

// Start adds the bar; a zero total adds nothing
func (t *Tracker) Start(total int) {
	if !t.enabled || total == 0 {
		return
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	t.bar = t.container.AddBar(int64(total),
		mpb.PrependDecorators(
			decor.Name(t.description+" ", decor.WC{W: len(t.description) + 1, C: decor.DindentRight}),
			decor.CountersNoUnit("(%d/%d)", decor.WCSyncWidth),
		),
		mpb.AppendDecorators(
			decor.NewPercentage("%.1f", decor.WCSyncSpace),
			decor.OnComplete(
				decor.EwmaETA(decor.ET_STYLE_GO, 30, decor.WCSyncWidth), " ✓ ",
			),
		),
	)
}

// Done advances the bar by one
func (t *Tracker) Done(_ string, err error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if err != nil {
		t.failed++
	}
	if t.bar != nil {
		t.bar.Increment()
	}
}

// Failed returns how many items reported an error
func (t *Tracker) Failed() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.failed
}

// Wait flushes the bar. An unfinished bar (cancelled run) is aborted first so Wait
// never blocks.
func (t *Tracker) Wait() {
	if !t.enabled {
		return
	}

	t.mu.Lock()
	if t.bar != nil && !t.bar.Completed() {
		t.bar.Abort(false)
	}
	t.mu.Unlock()

	t.container.Wait()
}

func IsTTY(writer io.Writer) bool {
	if writer == nil {
		return false
	}

	if file, ok := writer.(*os.File); ok {
		stat, err := file.Stat()
		if err != nil {
			return false
		}
		return (stat.Mode() & os.ModeCharDevice) != 0
	}
	return false
}

// ShouldShow reports whether bars should be drawn on stderr
func ShouldShow(forced bool) bool {
	if forced {
		return true
	}
	return IsTTY(os.Stderr)
}
