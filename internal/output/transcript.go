package output

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"

	"github.com/charmbracelet/x/ansi"
)

// Transcript is an io.Writer that tees console output into a session
// transcript file. The console receives the raw bytes, the file receives
// them with all ANSI escape sequences stripped so transcripts stay
// grep-friendly regardless of the active theme.
type Transcript struct {
	console io.Writer
	file    io.Writer
	closer  io.Closer

	mu sync.Mutex
}

// NewTranscript opens the transcript file at path, creating parent
// directories as needed, and returns a writer that tees into it.
// The file is opened in append mode so one transcript spans sessions.
func NewTranscript(console io.Writer, path string) (*Transcript, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("failed to create transcript directory: %w", err)
		}
	}

	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("failed to open transcript file: %w", err)
	}

	return &Transcript{console: console, file: file, closer: file}, nil
}

// NewTranscriptWriter tees into an arbitrary writer instead of a file.
func NewTranscriptWriter(console, file io.Writer) *Transcript {
	return &Transcript{console: console, file: file}
}

// Write implements io.Writer. Transcript writes are best effort: a failing
// transcript file never breaks console output.
func (t *Transcript) Write(p []byte) (int, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.file != nil {
		_, _ = t.file.Write([]byte(ansi.Strip(string(p))))
	}
	return t.console.Write(p)
}

// Close closes the underlying transcript file, if any.
func (t *Transcript) Close() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.closer == nil {
		return nil
	}
	err := t.closer.Close()
	t.closer = nil
	t.file = nil
	return err
}
