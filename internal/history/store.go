// ============================================================================
// KisueerOS - Interactive Shell
// ============================================================================
//
// Package:     history
// Description: SQLite-backed record of dispatched command lines
// Created:     2026-10-15
// License:     MIT
// ============================================================================

package history

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"

	"github.com/kisueer/kisueeros/internal/shell"
)

// Status values stored per entry
const (
	StatusOK = "ok"
)

// Entry is one recorded command line
type Entry struct {
	ID        string
	SessionID string
	Timestamp time.Time
	Line      string
	Command   string
	Status    string
	Duration  time.Duration
}

// Config holds configuration for the history store
type Config struct {
	Path string
	// MaxEntries caps the table size; older rows are pruned on open. Zero
	// keeps everything.
	MaxEntries int
}

// DefaultConfig returns the default configuration
func DefaultConfig() Config {
	return Config{
		Path:       "./data/history.db",
		MaxEntries: 1000,
	}
}

// Store persists history in SQLite
type Store struct {
	db *sql.DB
	mu sync.Mutex
}

// Open creates or opens the history database at cfg.Path
func Open(cfg Config) (*Store, error) {
	if cfg.Path == "" {
		cfg.Path = DefaultConfig().Path
	}

	dir := filepath.Dir(cfg.Path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}

	db, err := sql.Open("sqlite3", cfg.Path+"?_journal_mode=WAL&_synchronous=NORMAL")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	store := &Store{db: db}

	if err := store.initSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}

	if cfg.MaxEntries > 0 {
		if _, err := store.Prune(context.Background(), cfg.MaxEntries); err != nil {
			db.Close()
			return nil, err
		}
	}

	return store, nil
}

func (s *Store) initSchema() error {
	schema := `
	CREATE TABLE IF NOT EXISTS history (
		id TEXT PRIMARY KEY,
		session_id TEXT NOT NULL,
		timestamp DATETIME NOT NULL,
		line TEXT NOT NULL,
		command TEXT NOT NULL,
		status TEXT NOT NULL,
		duration_ns INTEGER NOT NULL DEFAULT 0
	);

	CREATE INDEX IF NOT EXISTS idx_history_timestamp ON history(timestamp DESC);
	CREATE INDEX IF NOT EXISTS idx_history_session ON history(session_id);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Add inserts entry, filling ID and Timestamp when unset
func (s *Store) Add(ctx context.Context, entry *Entry) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if entry.ID == "" {
		entry.ID = uuid.NewString()
	}
	if entry.Timestamp.IsZero() {
		entry.Timestamp = time.Now()
	}
	if entry.Status == "" {
		entry.Status = StatusOK
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO history (id, session_id, timestamp, line, command, status, duration_ns)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`, entry.ID, entry.SessionID, entry.Timestamp.UTC(), entry.Line, entry.Command, entry.Status, int64(entry.Duration))

	if err != nil {
		return fmt.Errorf("failed to insert history entry: %w", err)
	}
	return nil
}

// Record stores a dispatched line; it satisfies shell.Recorder
func (s *Store) Record(ctx context.Context, d shell.Dispatched) error {
	status := StatusOK
	if d.Err != nil {
		status = string(shell.KindOf(d.Err))
	}

	return s.Add(ctx, &Entry{
		SessionID: d.SessionID,
		Timestamp: d.StartedAt,
		Line:      d.Line,
		Command:   d.Command,
		Status:    status,
		Duration:  d.Duration,
	})
}

// Recent returns the last n entries, oldest first
func (s *Store) Recent(ctx context.Context, n int) ([]Entry, error) {
	if n <= 0 {
		return nil, nil
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT id, session_id, timestamp, line, command, status, duration_ns
		FROM history
		ORDER BY timestamp DESC, rowid DESC
		LIMIT ?
	`, n)
	if err != nil {
		return nil, fmt.Errorf("failed to query history: %w", err)
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var e Entry
		var durationNS int64
		if err := rows.Scan(&e.ID, &e.SessionID, &e.Timestamp, &e.Line, &e.Command, &e.Status, &durationNS); err != nil {
			return nil, fmt.Errorf("failed to scan history entry: %w", err)
		}
		e.Duration = time.Duration(durationNS)
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read history: %w", err)
	}

	for i, j := 0, len(entries)-1; i < j; i, j = i+1, j-1 {
		entries[i], entries[j] = entries[j], entries[i]
	}
	return entries, nil
}

// Count returns the number of stored entries
func (s *Store) Count(ctx context.Context) (int, error) {
	var n int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM history`).Scan(&n); err != nil {
		return 0, fmt.Errorf("failed to count history: %w", err)
	}
	return n, nil
}

// Prune deletes everything but the newest keep entries
func (s *Store) Prune(ctx context.Context, keep int) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	result, err := s.db.ExecContext(ctx, `
		DELETE FROM history WHERE rowid NOT IN (
			SELECT rowid FROM history ORDER BY timestamp DESC, rowid DESC LIMIT ?
		)
	`, keep)
	if err != nil {
		return 0, fmt.Errorf("failed to prune history: %w", err)
	}
	return result.RowsAffected()
}

// Close closes the database
func (s *Store) Close() error {
	return s.db.Close()
}
