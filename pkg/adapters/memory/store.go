package memory

import (
	"context"
	"maps"
	"sync"

	"github.com/akuroiwa/mcts-gen/pkg/domain"
)

// Store implements ports.JournalStore in memory.
// Safe for concurrent use.
type Store struct {
	data map[string]*domain.Record
	mu   sync.RWMutex
}

// NewStore creates a new in-memory journal.
func NewStore() *Store {
	return &Store{
		data: make(map[string]*domain.Record),
	}
}

// clone copies a record so callers cannot reach the stored one through a pointer.
func clone(r *domain.Record) *domain.Record {
	c := *r
	c.Domain.Args = maps.Clone(r.Domain.Args)
	c.Rounds = append([]domain.RoundStats(nil), r.Rounds...)
	return &c
}

// Save persists the record in memory.
func (s *Store) Save(ctx context.Context, sessionID string, record *domain.Record) error {
	c := clone(record)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[sessionID] = c
	return nil
}

// Load retrieves the record from memory.
func (s *Store) Load(ctx context.Context, sessionID string) (*domain.Record, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	record, ok := s.data[sessionID]
	if !ok {
		return nil, domain.ErrSessionNotFound
	}
	return clone(record), nil
}

// Delete removes the record.
func (s *Store) Delete(ctx context.Context, sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.data, sessionID)
	return nil
}

// List returns stored sessions.
func (s *Store) List(ctx context.Context) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sessions := make([]string, 0, len(s.data))
	for id := range s.data {
		sessions = append(sessions, id)
	}
	return sessions, nil
}
