// Package history persists download outcomes in SQLite so past runs can be
// inspected from the CLI.
package history

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "modernc.org/sqlite"

	"tunegrab/internal/config"
)

const schema = `
CREATE TABLE IF NOT EXISTS downloads (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    url TEXT NOT NULL,
    title TEXT NOT NULL DEFAULT '',
    output_path TEXT NOT NULL DEFAULT '',
    success INTEGER NOT NULL DEFAULT 0,
    message TEXT NOT NULL DEFAULT '',
    completed_at TEXT NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_downloads_completed_at ON downloads(completed_at);
`

// Entry is one recorded download outcome.
type Entry struct {
	ID          int64
	URL         string
	Title       string
	OutputPath  string
	Success     bool
	Message     string
	CompletedAt time.Time
}

// Counts aggregates the stored outcomes.
type Counts struct {
	Total     int
	Succeeded int
	Failed    int
}

// Store manages history persistence backed by SQLite.
type Store struct {
	db   *sql.DB
	path string
}

// Open initializes or connects to the history database.
func Open(cfg *config.Config) (*Store, error) {
	if err := cfg.EnsureDirectories(); err != nil {
		return nil, fmt.Errorf("ensure directories: %w", err)
	}

	dbPath := cfg.HistoryDBPath()
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}

	pragmas := []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA busy_timeout = 5000",
	}
	for _, pragma := range pragmas {
		if _, execErr := db.Exec(pragma); execErr != nil {
			_ = db.Close()
			return nil, fmt.Errorf("apply pragma %q: %w", pragma, execErr)
		}
	}

	if _, err := db.Exec(schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("apply schema: %w", err)
	}

	return &Store{db: db, path: dbPath}, nil
}

// Close closes the underlying database connection.
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

// Path returns the database file location.
func (s *Store) Path() string {
	return s.path
}

// Record inserts a download outcome. A zero CompletedAt is stamped with the
// current time.
func (s *Store) Record(ctx context.Context, entry Entry) error {
	completed := entry.CompletedAt
	if completed.IsZero() {
		completed = time.Now().UTC()
	}

	_, err := s.db.ExecContext(
		ctx,
		`INSERT INTO downloads (url, title, output_path, success, message, completed_at)
         VALUES (?, ?, ?, ?, ?, ?)`,
		entry.URL,
		entry.Title,
		entry.OutputPath,
		boolToInt(entry.Success),
		entry.Message,
		completed.UTC().Format(time.RFC3339Nano),
	)
	if err != nil {
		return fmt.Errorf("insert download: %w", err)
	}
	return nil
}

// Recent returns the most recent entries, newest first.
func (s *Store) Recent(ctx context.Context, limit int) ([]Entry, error) {
	if limit <= 0 {
		limit = 20
	}
	rows, err := s.db.QueryContext(
		ctx,
		`SELECT id, url, title, output_path, success, message, completed_at
         FROM downloads ORDER BY id DESC LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("query downloads: %w", err)
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var entry Entry
		var success int
		var completed string
		if err := rows.Scan(&entry.ID, &entry.URL, &entry.Title, &entry.OutputPath, &success, &entry.Message, &completed); err != nil {
			return nil, fmt.Errorf("scan download: %w", err)
		}
		entry.Success = success != 0
		if parsed, err := time.Parse(time.RFC3339Nano, completed); err == nil {
			entry.CompletedAt = parsed
		}
		entries = append(entries, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate downloads: %w", err)
	}
	return entries, nil
}

// Summary returns aggregate outcome counts.
func (s *Store) Summary(ctx context.Context) (Counts, error) {
	var counts Counts
	row := s.db.QueryRowContext(
		ctx,
		`SELECT COUNT(*), COALESCE(SUM(success), 0) FROM downloads`,
	)
	if err := row.Scan(&counts.Total, &counts.Succeeded); err != nil {
		return Counts{}, fmt.Errorf("scan counts: %w", err)
	}
	counts.Failed = counts.Total - counts.Succeeded
	return counts, nil
}

func boolToInt(value bool) int {
	if value {
		return 1
	}
	return 0
}
