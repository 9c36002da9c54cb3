// Package stats persists render session summaries to a local SQLite
// database so `salmon -stats` can show how past runs performed.
package stats

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"
)

const schema = `
CREATE TABLE IF NOT EXISTS sessions (
	id           INTEGER PRIMARY KEY AUTOINCREMENT,
	started_at   INTEGER NOT NULL,
	duration_ms  INTEGER NOT NULL,
	frames       INTEGER NOT NULL,
	avg_fps      REAL    NOT NULL,
	canvas_w     INTEGER NOT NULL,
	canvas_h     INTEGER NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_sessions_started_at ON sessions(started_at DESC);
`

// Session is one completed render run.
type Session struct {
	ID        int64
	StartedAt time.Time
	Duration  time.Duration
	Frames    int64
	AvgFPS    float64
	CanvasW   int
	CanvasH   int
}

// Store wraps the session database.
type Store struct {
	db *sql.DB
}

// DefaultPath returns the default database location,
// ~/.local/share/salmon/stats.db.
func DefaultPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", ".salmon", "stats.db")
	}
	return filepath.Join(home, ".local", "share", "salmon", "stats.db")
}

// Open opens (creating if necessary) the session database at path.
func Open(path string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("create stats dir: %w", err)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open stats db: %w", err)
	}

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("init stats schema: %w", err)
	}

	return &Store{db: db}, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

// Record inserts a completed session.
func (s *Store) Record(sess Session) error {
	_, err := s.db.Exec(
		`INSERT INTO sessions (started_at, duration_ms, frames, avg_fps, canvas_w, canvas_h)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		sess.StartedAt.UnixMilli(),
		sess.Duration.Milliseconds(),
		sess.Frames,
		sess.AvgFPS,
		sess.CanvasW,
		sess.CanvasH,
	)
	if err != nil {
		return fmt.Errorf("record session: %w", err)
	}
	return nil
}

// Recent returns up to n sessions, newest first.
func (s *Store) Recent(n int) ([]Session, error) {
	if n <= 0 {
		n = 10
	}
	rows, err := s.db.Query(
		`SELECT id, started_at, duration_ms, frames, avg_fps, canvas_w, canvas_h
		 FROM sessions ORDER BY started_at DESC, id DESC LIMIT ?`, n)
	if err != nil {
		return nil, fmt.Errorf("query sessions: %w", err)
	}
	defer rows.Close()

	var out []Session
	for rows.Next() {
		var sess Session
		var startedMs, durMs int64
		if err := rows.Scan(&sess.ID, &startedMs, &durMs, &sess.Frames,
			&sess.AvgFPS, &sess.CanvasW, &sess.CanvasH); err != nil {
			return nil, err
		}
		sess.StartedAt = time.UnixMilli(startedMs)
		sess.Duration = time.Duration(durMs) * time.Millisecond
		out = append(out, sess)
	}
	return out, rows.Err()
}
