// Package storage provides SQLite-based persistence: finished-session
// records and the literacy marker written by the read action.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// Store manages the SQLite database connection.
type Store struct {
	db *sql.DB
}

// SessionEntry records one finished pet session.
type SessionEntry struct {
	ID           int64
	EndedAt      time.Time
	Cause        string // "death" or "quit"
	Level        int
	Money        float64
	Beers        int
	Cigarettes   int
	DurationSecs int
}

// Session end causes.
const (
	CauseDeath = "death"
	CauseQuit  = "quit"
)

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	// Expand ~ to home directory
	if dbPath != "" && dbPath[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("storage: cannot expand home directory: %w", err)
		}
		dbPath = filepath.Join(home, dbPath[1:])
	}

	// Create parent directories
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	// Open database
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	// Test connection
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db}

	// Run migrations
	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS sessions (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			ended_at DATETIME DEFAULT CURRENT_TIMESTAMP,
			cause TEXT NOT NULL,
			level INTEGER NOT NULL,
			money REAL NOT NULL,
			beers INTEGER NOT NULL DEFAULT 0,
			cigarettes INTEGER NOT NULL DEFAULT 0,
			duration_secs INTEGER NOT NULL DEFAULT 0
		);
		CREATE INDEX IF NOT EXISTS idx_sessions_level ON sessions(level DESC);

		CREATE TABLE IF NOT EXISTS literacy (
			id INTEGER PRIMARY KEY CHECK (id = 1),
			marked_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// SaveSession records a finished session.
// Returns the ID of the inserted record.
func (s *Store) SaveSession(e SessionEntry) (int64, error) {
	result, err := s.db.Exec(
		`INSERT INTO sessions (cause, level, money, beers, cigarettes, duration_secs)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		e.Cause, e.Level, e.Money, e.Beers, e.Cigarettes, e.DurationSecs,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save session: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

// RecentSessions retrieves the most recent finished sessions.
func (s *Store) RecentSessions(limit int) ([]SessionEntry, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT id, ended_at, cause, level, money, beers, cigarettes, duration_secs
		 FROM sessions
		 ORDER BY ended_at DESC, id DESC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query sessions: %w", err)
	}
	defer rows.Close()

	var entries []SessionEntry
	for rows.Next() {
		var e SessionEntry
		var endedAt any
		if err := rows.Scan(&e.ID, &endedAt, &e.Cause, &e.Level, &e.Money, &e.Beers, &e.Cigarettes, &e.DurationSecs); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		e.EndedAt = parseTimestamp(endedAt)
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return entries, nil
}

// BestLevel returns the highest level ever reached across sessions.
// Returns 0 if no sessions exist.
func (s *Store) BestLevel() (int, error) {
	var level sql.NullInt64
	err := s.db.QueryRow("SELECT MAX(level) FROM sessions").Scan(&level)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot query best level: %w", err)
	}

	if !level.Valid {
		return 0, nil
	}

	return int(level.Int64), nil
}

// ClearSessions deletes all session records.
func (s *Store) ClearSessions() error {
	_, err := s.db.Exec("DELETE FROM sessions")
	if err != nil {
		return fmt.Errorf("storage: cannot clear sessions: %w", err)
	}
	return nil
}

// MarkLiteracy persists the literacy marker. Idempotent: re-marking keeps
// the original timestamp.
func (s *Store) MarkLiteracy() error {
	_, err := s.db.Exec("INSERT OR IGNORE INTO literacy (id) VALUES (1)")
	if err != nil {
		return fmt.Errorf("storage: cannot mark literacy: %w", err)
	}
	return nil
}

// HasLiteracy reports whether the literacy marker has ever been written.
func (s *Store) HasLiteracy() (bool, error) {
	var marked int
	err := s.db.QueryRow("SELECT COUNT(*) FROM literacy").Scan(&marked)
	if err != nil {
		return false, fmt.Errorf("storage: cannot query literacy: %w", err)
	}
	return marked > 0, nil
}

// parseTimestamp handles both time.Time and string datetime values coming
// back from the driver.
func parseTimestamp(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		if parsed, err := time.Parse("2006-01-02 15:04:05", t); err == nil {
			return parsed
		}
	}
	return time.Time{}
}
