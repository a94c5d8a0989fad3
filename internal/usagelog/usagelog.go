// Package usagelog persists a journal of dispatched invocations in a local
// SQLite database. The recorder is optional everywhere it appears: a nil
// *Recorder is a no-op, so front-ends run unchanged when no log is
// configured.
package usagelog

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/x/ansi"
	_ "modernc.org/sqlite" // pure Go SQLite driver
)

// Entry is one recorded invocation.
type Entry struct {
	ID        string        // invocation id
	StartedAt time.Time     // dispatch time
	Line      string        // input line, stored ANSI-stripped
	Path      string        // resolved command path, space-joined
	State     string        // terminal state name
	Code      int           // exit code
	Error     string        // terminal error text, empty on success
	Duration  time.Duration // wall time of the invocation
}

// Recorder writes and reads the invocation journal.
type Recorder struct {
	db *sql.DB
}

const schema = `
CREATE TABLE IF NOT EXISTS invocations (
	id          TEXT PRIMARY KEY,
	started_at  INTEGER NOT NULL,
	line        TEXT NOT NULL,
	path        TEXT NOT NULL,
	state       TEXT NOT NULL,
	code        INTEGER NOT NULL,
	error       TEXT NOT NULL,
	duration_ms INTEGER NOT NULL
);
CREATE INDEX IF NOT EXISTS invocations_started_at ON invocations(started_at);
`

// Open creates or opens the usage database at path, creating parent
// directories and the schema as needed.
func Open(path string) (*Recorder, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("failed to create usage log directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open usage log: %w", err)
	}

	// SQLite supports a single writer at a time
	db.SetMaxOpenConns(1)

	for _, pragma := range []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA synchronous=NORMAL",
	} {
		if _, err := db.Exec(pragma); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("failed to set pragma: %w", err)
		}
	}

	if _, err := db.Exec(schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to initialize usage log schema: %w", err)
	}

	return &Recorder{db: db}, nil
}

// Record inserts one entry. Recording on a nil recorder does nothing.
func (r *Recorder) Record(entry Entry) error {
	if r == nil {
		return nil
	}
	_, err := r.db.Exec(`
		INSERT INTO invocations (id, started_at, line, path, state, code, error, duration_ms)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`, entry.ID, entry.StartedAt.Unix(), ansi.Strip(entry.Line), entry.Path,
		entry.State, entry.Code, entry.Error, entry.Duration.Milliseconds())
	if err != nil {
		return fmt.Errorf("failed to record invocation: %w", err)
	}
	return nil
}

// Recent returns up to limit entries, newest first. A nil recorder returns
// no entries.
func (r *Recorder) Recent(limit int) ([]Entry, error) {
	if r == nil {
		return nil, nil
	}
	if limit <= 0 {
		limit = 10
	}
	rows, err := r.db.Query(`
		SELECT id, started_at, line, path, state, code, error, duration_ms
		FROM invocations
		ORDER BY started_at DESC, rowid DESC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query usage log: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var entries []Entry
	for rows.Next() {
		var e Entry
		var startedAt int64
		var durationMS int64
		if err := rows.Scan(&e.ID, &startedAt, &e.Line, &e.Path, &e.State, &e.Code, &e.Error, &durationMS); err != nil {
			return nil, fmt.Errorf("failed to scan usage log row: %w", err)
		}
		e.StartedAt = time.Unix(startedAt, 0)
		e.Duration = time.Duration(durationMS) * time.Millisecond
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read usage log rows: %w", err)
	}
	return entries, nil
}

// Close releases the database handle. Closing a nil recorder does nothing.
func (r *Recorder) Close() error {
	if r == nil || r.db == nil {
		return nil
	}
	return r.db.Close()
}
