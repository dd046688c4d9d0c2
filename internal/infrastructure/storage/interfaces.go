package storage

import "github.com/NolanFinn/Check-Splitter/internal/domain/check"

// Repository defines the snapshot storage interface.
// This interface allows swapping implementations (SQLite, in-memory, etc.)
// and makes testing with mocks straightforward.
type Repository interface {
	// LoadSnapshot returns the persisted check state. A missing or
	// unreadable snapshot is not an error: the default state is returned.
	LoadSnapshot() (*check.Check, error)

	// SaveSnapshot overwrites the persisted check state as one blob.
	// Last write wins.
	SaveSnapshot(c *check.Check) error

	Close() error
}

// SnapshotKey versions the persisted blob. Bump the suffix when the
// layout changes incompatibly; old rows are simply ignored.
const SnapshotKey = "check-splitter-state-v1"
