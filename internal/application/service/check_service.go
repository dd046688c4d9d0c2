// Package service owns the live check state and coordinates the domain
// packages: every mutation is validated by the check package, persisted
// as a snapshot, and answered with a freshly computed share result.
package service

import (
	"log/slog"
	"sync"

	"github.com/NolanFinn/Check-Splitter/internal/domain/check"
	"github.com/NolanFinn/Check-Splitter/internal/domain/engine"
	"github.com/NolanFinn/Check-Splitter/internal/infrastructure/storage"
)

// Snapshot is the state plus its computed shares, handed out to callers.
// The check is a deep copy; callers can read it without holding any lock.
type Snapshot struct {
	Check       *check.Check
	Result      *engine.Result
	Settlements []engine.Debt
}

// Options configures check behavior.
type Options struct {
	// AssignNewPeople adds newly created people to every existing item's
	// assignment set.
	AssignNewPeople bool
}

// CheckService is the single mutator of the check state. Access is
// serialized with a mutex; each mutation persists the snapshot before
// returning. Persistence is best-effort: a failed save is logged and the
// in-memory state stays authoritative.
type CheckService struct {
	mu     sync.Mutex
	state  *check.Check
	repo   storage.Repository
	opts   Options
	logger *slog.Logger
}

// NewCheckService loads the persisted snapshot (or the default state)
// and returns a ready service.
func NewCheckService(repo storage.Repository, opts Options, logger *slog.Logger) (*CheckService, error) {
	if logger == nil {
		logger = slog.Default()
	}

	state, err := repo.LoadSnapshot()
	if err != nil {
		return nil, err
	}

	return &CheckService{
		state:  state,
		repo:   repo,
		opts:   opts,
		logger: logger,
	}, nil
}

// Get returns the current state and its computed shares.
func (s *CheckService) Get() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshot()
}

// AddItem adds a validated line item, assigned to all current people.
func (s *CheckService) AddItem(description string, quantity int, price float64) (Snapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := s.state.AddItem(description, quantity, price); err != nil {
		return Snapshot{}, err
	}
	s.persist()
	return s.snapshot(), nil
}

// UpdateItem edits an existing item in place.
func (s *CheckService) UpdateItem(id, description string, quantity int, price float64) (Snapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := s.state.UpdateItem(id, description, quantity, price); err != nil {
		return Snapshot{}, err
	}
	s.persist()
	return s.snapshot(), nil
}

// RemoveItem deletes an item and its assignments.
func (s *CheckService) RemoveItem(id string) (Snapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.state.RemoveItem(id); err != nil {
		return Snapshot{}, err
	}
	s.persist()
	return s.snapshot(), nil
}

// AddPerson adds a person; retroactive item membership follows the
// configured policy.
func (s *CheckService) AddPerson(name string) (Snapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.state.AddPerson(name, s.opts.AssignNewPeople); err != nil {
		return Snapshot{}, err
	}
	s.persist()
	return s.snapshot(), nil
}

// RemovePerson removes a person, except the last one.
func (s *CheckService) RemovePerson(name string) (Snapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.state.RemovePerson(name); err != nil {
		return Snapshot{}, err
	}
	s.persist()
	return s.snapshot(), nil
}

// SetPayer changes who fronted the check.
func (s *CheckService) SetPayer(name string) (Snapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.state.SetPayer(name); err != nil {
		return Snapshot{}, err
	}
	s.persist()
	return s.snapshot(), nil
}

// SetSurcharges sets the aggregate tax, tip and fee amounts.
func (s *CheckService) SetSurcharges(tax, tip, fee float64) (Snapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.state.SetSurcharges(tax, tip, fee); err != nil {
		return Snapshot{}, err
	}
	s.persist()
	return s.snapshot(), nil
}

// ToggleAssignment flips a person's membership on an item.
func (s *CheckService) ToggleAssignment(itemID, person string) (Snapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.state.ToggleAssignment(itemID, person); err != nil {
		return Snapshot{}, err
	}
	s.persist()
	return s.snapshot(), nil
}

// Reset discards the current check and starts a fresh one.
func (s *CheckService) Reset() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.state = check.Default()
	s.persist()
	return s.snapshot()
}

// persist writes the snapshot; callers hold the lock.
func (s *CheckService) persist() {
	if err := s.repo.SaveSnapshot(s.state); err != nil {
		s.logger.Warn("failed to persist snapshot", "error", err)
	}
}

// snapshot computes shares for the current state; callers hold the lock.
func (s *CheckService) snapshot() Snapshot {
	result := engine.Compute(s.state)
	return Snapshot{
		Check:       s.state.Clone(),
		Result:      result,
		Settlements: engine.Settlements(result, s.state.Payer, s.state.People),
	}
}
