package storage

import "github.com/NolanFinn/Check-Splitter/internal/domain/check"

// MockRepository is an in-memory implementation of Repository for testing.
type MockRepository struct {
	snapshot *check.Check

	// Hooks for test assertions
	SaveCalled   bool
	SaveCount    int
	LastSaved    *check.Check
	LoadCalled   bool

	// Error injection for testing error paths
	SaveErr error
	LoadErr error
}

// Compile-time check that MockRepository implements Repository
var _ Repository = (*MockRepository)(nil)

// NewMockRepository creates a new mock repository for testing
func NewMockRepository() *MockRepository {
	return &MockRepository{}
}

// LoadSnapshot returns the stored snapshot, or the default state if
// nothing has been saved yet.
func (m *MockRepository) LoadSnapshot() (*check.Check, error) {
	m.LoadCalled = true
	if m.LoadErr != nil {
		return nil, m.LoadErr
	}
	if m.snapshot == nil {
		return check.Default(), nil
	}
	return m.snapshot.Clone(), nil
}

// SaveSnapshot stores a deep copy of the check.
func (m *MockRepository) SaveSnapshot(c *check.Check) error {
	m.SaveCalled = true
	m.SaveCount++
	if m.SaveErr != nil {
		return m.SaveErr
	}
	m.snapshot = c.Clone()
	m.LastSaved = m.snapshot
	return nil
}

// Close does nothing for mock
func (m *MockRepository) Close() error {
	return nil
}

// Seed sets the snapshot that the next LoadSnapshot will return.
func (m *MockRepository) Seed(c *check.Check) {
	m.snapshot = c.Clone()
}
