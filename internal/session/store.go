// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package session persists normalized analysis results between CLI
// invocations, standing in for the transient browser storage of the original
// flow while keeping its contract: one serialized JSON blob per well-known
// key, and a hard load-or-fail precondition for the report stage.
package session

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/veriscope/veriscope/pkg/types"
)

const (
	dbFile = "sessions.db"

	// DefaultKey is the well-known key the analyze and report commands share.
	DefaultKey = "current"
)

// ErrNoSession is returned by Load when no result is stored under the key.
// Callers surface it as "run analyze first".
var ErrNoSession = errors.New("no saved analysis session")

// Store is the SQLite-backed session store.
type Store struct {
	db *sql.DB
}

// Open opens or creates the session database under cfg.Dir (default
// ".veriscope"), creating the schema if needed.
func Open(cfg types.SessionConfig) (*Store, error) {
	dir := cfg.Dir
	if dir == "" {
		dir = ".veriscope"
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating session directory: %w", err)
	}

	dbPath := filepath.Join(dir, dbFile)
	db, err := sql.Open("sqlite3", dbPath+"?_journal_mode=WAL")
	if err != nil {
		return nil, fmt.Errorf("opening session database: %w", err)
	}

	schema := `CREATE TABLE IF NOT EXISTS sessions (
		key TEXT PRIMARY KEY,
		payload TEXT NOT NULL,
		saved_at TEXT NOT NULL
	)`
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}

	return &Store{db: db}, nil
}

// Close releases the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// Save serializes the result as a single JSON blob under key, replacing any
// previous session with the same key.
func (s *Store) Save(ctx context.Context, key string, result *types.AnalysisResult) error {
	payload, err := json.Marshal(result)
	if err != nil {
		return fmt.Errorf("encoding session: %w", err)
	}

	_, err = s.db.ExecContext(ctx,
		`INSERT INTO sessions (key, payload, saved_at) VALUES (?, ?, ?)
		 ON CONFLICT(key) DO UPDATE SET payload = excluded.payload, saved_at = excluded.saved_at`,
		key, string(payload), time.Now().UTC().Format(time.RFC3339))
	if err != nil {
		return fmt.Errorf("saving session %q: %w", key, err)
	}
	return nil
}

// Load reconstructs the result stored under key. A missing key is
// ErrNoSession; a blob that no longer parses is an error, not a silent miss.
func (s *Store) Load(ctx context.Context, key string) (*types.AnalysisResult, error) {
	var payload string
	err := s.db.QueryRowContext(ctx,
		`SELECT payload FROM sessions WHERE key = ?`, key).Scan(&payload)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w under key %q", ErrNoSession, key)
	}
	if err != nil {
		return nil, fmt.Errorf("loading session %q: %w", key, err)
	}

	var result types.AnalysisResult
	if err := json.Unmarshal([]byte(payload), &result); err != nil {
		return nil, fmt.Errorf("decoding session %q: %w", key, err)
	}
	return &result, nil
}

// Delete removes the session under key. Deleting a missing key is a no-op.
func (s *Store) Delete(ctx context.Context, key string) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM sessions WHERE key = ?`, key)
	if err != nil {
		return fmt.Errorf("deleting session %q: %w", key, err)
	}
	return nil
}

// Entry describes one stored session.
type Entry struct {
	Key          string
	DocumentName string
	SavedAt      time.Time
}

// List returns stored sessions, newest first.
func (s *Store) List(ctx context.Context) ([]Entry, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT key, payload, saved_at FROM sessions ORDER BY saved_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("listing sessions: %w", err)
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var key, payload, savedAt string
		if err := rows.Scan(&key, &payload, &savedAt); err != nil {
			return nil, fmt.Errorf("scanning session row: %w", err)
		}
		e := Entry{Key: key}
		if t, err := time.Parse(time.RFC3339, savedAt); err == nil {
			e.SavedAt = t
		}
		var result types.AnalysisResult
		if err := json.Unmarshal([]byte(payload), &result); err == nil {
			e.DocumentName = result.Summary.DocumentName
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}
