// Package storage keeps recordings, transcripts and synthesized audio as flat files
// in a single directory, named by timestamp.
package storage

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/samber/lo"
)

// TimestampLayout is the 24-hour timestamp embedded in generated names, so lexical
// order matches creation order.
const TimestampLayout = "20060102-150405"

// maxCollisions bounds the suffix search for names created within the same second.
// Suffixes are three digits wide so they keep sorting in creation order.
const maxCollisions = 999

var (
	ErrNotFound    = errors.New("file not found")
	ErrInvalidName = errors.New("invalid file name")
)

// allowedExtensions is the set of extensions listed and served back to clients
var allowedExtensions = map[string]struct{}{
	"wav": {},
	"txt": {},
	"mp3": {},
}

// audioExtensions is the subset of allowedExtensions accepted as recordings
var audioExtensions = map[string]struct{}{
	"wav": {},
	"mp3": {},
}

// Store is one flat directory
type Store struct {
	dir string
	now func() time.Time
}

// Option configures a Store
type Option func(*Store)

// WithClock overrides the time source used for generated names
func WithClock(now func() time.Time) Option {
	return func(s *Store) {
		s.now = now
	}
}

// NewStore creates dir if needed
func NewStore(dir string, opts ...Option) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create directory %s: %w", dir, err)
	}

	s := &Store{dir: dir, now: time.Now}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// Dir returns the directory the store writes to
func (s *Store) Dir() string {
	return s.dir
}

// NewName returns <prefix><timestamp>.<ext>
func NewName(prefix, ext string, now time.Time) string {
	return prefix + now.Format(TimestampLayout) + "." + strings.TrimPrefix(ext, ".")
}

// SidecarName returns the transcript name sharing name's base
func SidecarName(name string) string {
	return strings.TrimSuffix(name, filepath.Ext(name)) + ".txt"
}

// IsAllowed reports whether name carries one of the listed extensions (case-insensitive)
func IsAllowed(name string) bool {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(name), "."))
	_, ok := allowedExtensions[ext]
	return ok
}

// IsAudio reports whether name carries a recording extension
func IsAudio(name string) bool {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(name), "."))
	_, ok := audioExtensions[ext]
	return ok
}

// Create writes data under a fresh timestamped name and returns it. The name is
// reserved with O_EXCL; a name already taken in the same second gets a _002, _003, ...
// suffix. '_' sorts after '.', so a suffixed name lists above the bare one.
func (s *Store) Create(prefix, ext string, data []byte) (string, error) {
	first := NewName(prefix, ext, s.now())
	base := strings.TrimSuffix(first, filepath.Ext(first))
	ext = filepath.Ext(first)

	for i := 1; i <= maxCollisions; i++ {
		name := first
		if i > 1 {
			name = fmt.Sprintf("%s_%03d%s", base, i, ext)
		}

		path := filepath.Join(s.dir, name)
		f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
		if errors.Is(err, fs.ErrExist) {
			continue
		}
		if err != nil {
			return "", fmt.Errorf("failed to create %s: %w", name, err)
		}

		if _, err := f.Write(data); err != nil {
			f.Close()
			os.Remove(path)
			return "", fmt.Errorf("failed to write %s: %w", name, err)
		}
		if err := f.Close(); err != nil {
			os.Remove(path)
			return "", fmt.Errorf("failed to close %s: %w", name, err)
		}
		return name, nil
	}

	return "", fmt.Errorf("no free name for %s after %d attempts", first, maxCollisions)
}

// WriteSidecar writes text to the sidecar of audioName, replacing any previous content
func (s *Store) WriteSidecar(audioName, text string) (string, error) {
	name := SidecarName(audioName)
	path, err := s.resolve(name)
	if err != nil {
		return "", err
	}
	if err := os.WriteFile(path, []byte(text), 0o644); err != nil {
		return "", fmt.Errorf("failed to write sidecar %s: %w", name, err)
	}
	return name, nil
}

// AppendLine appends line to the text file name on a line of its own
func (s *Store) AppendLine(name, line string) error {
	path, err := s.resolve(name)
	if err != nil {
		return err
	}

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_APPEND, 0o644)
	if errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("%w: %s", ErrNotFound, name)
	}
	if err != nil {
		return fmt.Errorf("failed to open %s: %w", name, err)
	}
	defer f.Close()

	if _, err := f.WriteString("\n" + line); err != nil {
		return fmt.Errorf("failed to append to %s: %w", name, err)
	}
	return nil
}

// List returns the allowed file names in the directory, most recent first.
// A missing directory lists as empty.
func (s *Store) List() ([]string, error) {
	entries, err := os.ReadDir(s.dir)
	if errors.Is(err, fs.ErrNotExist) {
		return []string{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read directory %s: %w", s.dir, err)
	}

	names := lo.FilterMap(entries, func(e os.DirEntry, _ int) (string, bool) {
		return e.Name(), !e.IsDir() && IsAllowed(e.Name())
	})
	sort.Sort(sort.Reverse(sort.StringSlice(names)))
	return names, nil
}

// Path returns the absolute location of an existing file. Names containing a path
// separator or dot segments fail with ErrInvalidName, missing files with ErrNotFound.
func (s *Store) Path(name string) (string, error) {
	path, err := s.resolve(name)
	if err != nil {
		return "", err
	}

	info, err := os.Stat(path)
	if errors.Is(err, fs.ErrNotExist) || (err == nil && info.IsDir()) {
		return "", fmt.Errorf("%w: %s", ErrNotFound, name)
	}
	if err != nil {
		return "", fmt.Errorf("failed to stat %s: %w", name, err)
	}
	return path, nil
}

// Exists reports whether name is present
func (s *Store) Exists(name string) bool {
	_, err := s.Path(name)
	return err == nil
}

// Read returns the content of name
func (s *Store) Read(name string) ([]byte, error) {
	path, err := s.Path(name)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", name, err)
	}
	return data, nil
}

// Stat returns file info for name
func (s *Store) Stat(name string) (fs.FileInfo, error) {
	path, err := s.Path(name)
	if err != nil {
		return nil, err
	}
	return os.Stat(path)
}

func (s *Store) resolve(name string) (string, error) {
	if name == "" || name == "." || name == ".." ||
		strings.ContainsAny(name, `/\`) || name != filepath.Base(name) {
		return "", fmt.Errorf("%w: %q", ErrInvalidName, name)
	}
	return filepath.Join(s.dir, name), nil
}
