// Package memory provides in-process adapters: a StateStore backed by a
// map and the built-in destination catalog. Both are the defaults used by
// the library facade and by tests.
package memory

import (
	"context"
	"sync"

	"github.com/dhwrwm/intergalactic-booking-wizard/pkg/domain"
)

// Store implements ports.StateStore in memory.
// Safe for concurrent use.
type Store struct {
	mu   sync.RWMutex
	data map[string]domain.State
}

// NewStore creates a new in-memory store.
func NewStore() *Store {
	return &Store{data: make(map[string]domain.State)}
}

// Save persists the state in memory. The state is cloned on the way in so
// later caller mutations cannot reach the stored copy.
func (s *Store) Save(ctx context.Context, sessionID string, state domain.State) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[sessionID] = state.Clone()
	return nil
}

// Load retrieves the state, cloned on the way out for the same reason.
func (s *Store) Load(ctx context.Context, sessionID string) (domain.State, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	state, ok := s.data[sessionID]
	if !ok {
		return domain.State{}, domain.ErrSessionNotFound
	}
	return state.Clone(), nil
}

// Delete removes the state.
func (s *Store) Delete(ctx context.Context, sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.data, sessionID)
	return nil
}

// List returns the IDs of sessions currently held.
func (s *Store) List(ctx context.Context) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sessions := make([]string, 0, len(s.data))
	for id := range s.data {
		sessions = append(sessions, id)
	}
	return sessions, nil
}
