// Package storage persists the check state as a single versioned JSON
// blob in SQLite. Writes are synchronous and atomic at the row level;
// there is exactly one row per snapshot key.
package storage

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/NolanFinn/Check-Splitter/internal/domain/check"
)

// Storage provides SQLite-backed snapshot persistence.
// It implements the Repository interface.
type Storage struct {
	db *sql.DB
}

// Compile-time check that Storage implements Repository
var _ Repository = (*Storage)(nil)

// NewStorage opens (or creates) the snapshot database at dbPath.
func NewStorage(dbPath string) (*Storage, error) {
	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, err
	}

	s := &Storage{db: db}
	if err := s.runMigrations(); err != nil {
		_ = db.Close()
		return nil, err
	}

	return s, nil
}

// Close closes the database connection
func (s *Storage) Close() error {
	return s.db.Close()
}

// SaveSnapshot serializes the check and overwrites the snapshot row.
func (s *Storage) SaveSnapshot(c *check.Check) error {
	data, err := json.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to encode snapshot: %w", err)
	}

	query := `
	INSERT INTO snapshots (key, data, updated_at)
	VALUES (?, ?, ?)
	ON CONFLICT(key) DO UPDATE SET data = excluded.data, updated_at = excluded.updated_at
	`
	_, err = s.db.Exec(query, SnapshotKey, string(data), time.Now().UTC())
	return err
}

// LoadSnapshot reads the snapshot row and decodes it over the default
// state, so missing top-level fields keep their defaults (a shallow
// merge). A missing row or malformed blob falls back to the default
// state silently: persisted state is best-effort, never fatal.
func (s *Storage) LoadSnapshot() (*check.Check, error) {
	var data string
	err := s.db.QueryRow(`SELECT data FROM snapshots WHERE key = ?`, SnapshotKey).Scan(&data)
	if errors.Is(err, sql.ErrNoRows) {
		return check.Default(), nil
	}
	if err != nil {
		return nil, err
	}

	c := check.Default()
	if err := json.Unmarshal([]byte(data), c); err != nil {
		return check.Default(), nil
	}
	c.Normalize()
	return c, nil
}
