// Package history persists evaluated rolls in a local SQLite database.
package history

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"
)

const storeSchema = `
CREATE TABLE IF NOT EXISTS rolls (
	id TEXT PRIMARY KEY,
	expression TEXT NOT NULL,
	result INTEGER NOT NULL,
	rolled_at TEXT NOT NULL
);`

const (
	defaultStoreDir = ".dice"
	defaultStoreDB  = "dice.db"
)

// Entry is one recorded roll.
type Entry struct {
	ID         string
	Expression string
	Result     int
	RolledAt   time.Time
}

// Store persists roll history in SQLite.
type Store struct {
	db *sql.DB
}

// DefaultPath returns the default database path, ~/.dice/dice.db.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("history: resolve user home: %w", err)
	}
	return filepath.Join(home, defaultStoreDir, defaultStoreDB), nil
}

// OpenDefault opens the store at DefaultPath, creating the directory as
// needed.
func OpenDefault() (*Store, error) {
	path, err := DefaultPath()
	if err != nil {
		return nil, err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return nil, fmt.Errorf("history: create store directory: %w", err)
	}
	return Open(path)
}

// Open opens (or creates) a roll history store at path.
func Open(path string) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		return nil, errors.New("history: store path is required")
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("history: open store: %w", err)
	}

	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("history: set WAL mode: %w", err)
	}

	if _, err := db.Exec(storeSchema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("history: create schema: %w", err)
	}

	return &Store{db: db}, nil
}

// Append records a roll. A missing ID or timestamp is filled in.
func (s *Store) Append(ctx context.Context, e Entry) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if s == nil || s.db == nil {
		return errors.New("history: store is nil")
	}
	if strings.TrimSpace(e.Expression) == "" {
		return errors.New("history: entry expression is required")
	}

	if e.ID == "" {
		e.ID = uuid.NewString()
	}
	if e.RolledAt.IsZero() {
		e.RolledAt = time.Now().UTC()
	}

	_, err := s.db.ExecContext(ctx, `
INSERT INTO rolls (id, expression, result, rolled_at)
VALUES (?, ?, ?, ?)`,
		e.ID,
		e.Expression,
		e.Result,
		e.RolledAt.UTC().Format(time.RFC3339Nano),
	)
	if err != nil {
		return fmt.Errorf("history: append roll: %w", err)
	}
	return nil
}

// Recent returns up to limit entries, newest first.
func (s *Store) Recent(ctx context.Context, limit int) ([]Entry, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if s == nil || s.db == nil {
		return nil, errors.New("history: store is nil")
	}
	if limit <= 0 {
		return nil, nil
	}

	rows, err := s.db.QueryContext(ctx, `
SELECT id, expression, result, rolled_at
FROM rolls
ORDER BY rolled_at DESC
LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("history: list rolls: %w", err)
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var (
			e   Entry
			raw string
		)
		if err := rows.Scan(&e.ID, &e.Expression, &e.Result, &raw); err != nil {
			return nil, fmt.Errorf("history: scan roll: %w", err)
		}
		rolledAt, err := time.Parse(time.RFC3339Nano, raw)
		if err != nil {
			return nil, fmt.Errorf("history: parse roll timestamp: %w", err)
		}
		e.RolledAt = rolledAt.UTC()
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("history: roll rows: %w", err)
	}

	return entries, nil
}

// Clear removes all recorded rolls.
func (s *Store) Clear(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if s == nil || s.db == nil {
		return errors.New("history: store is nil")
	}

	if _, err := s.db.ExecContext(ctx, `DELETE FROM rolls`); err != nil {
		return fmt.Errorf("history: clear rolls: %w", err)
	}
	return nil
}

// Close closes the underlying database connection.
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}
