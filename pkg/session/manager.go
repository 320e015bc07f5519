package session

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"sync"

	"github.com/akuroiwa/mcts-gen/pkg/domain"
	"github.com/akuroiwa/mcts-gen/pkg/ports"
	"github.com/akuroiwa/mcts-gen/pkg/registry"
)

// Manager keeps independent sessions by ID and builds their root states
// through a domain registry.
type Manager struct {
	registry *registry.Registry

	mu       sync.RWMutex
	sessions map[string]*Session

	opts    []Option           // Applied to every session the manager creates
	journal ports.JournalStore // Optional, taken from opts
	hooks   domain.Hooks       // Taken from opts; only OnDelete fires here
	logger  *slog.Logger
}

// NewManager creates a new Session Manager. The options are applied to every
// session it creates.
func NewManager(reg *registry.Registry, opts ...Option) *Manager {
	template := New("", opts...)
	return &Manager{
		registry: reg,
		sessions: make(map[string]*Session),
		opts:     opts,
		journal:  template.journal,
		hooks:    template.hooks,
		logger:   template.logger,
	}
}

// Open returns the session with the given ID, creating an uninitialized one
// if needed.
func (m *Manager) Open(sessionID string) *Session {
	m.mu.Lock()
	defer m.mu.Unlock()

	s, ok := m.sessions[sessionID]
	if !ok {
		s = New(sessionID, m.opts...)
		m.sessions[sessionID] = s
	}
	return s
}

// Session returns an existing session. An unknown ID reports
// ErrNotInitialized, since from the caller's side nothing was set up yet.
func (m *Manager) Session(sessionID string) (*Session, error) {
	m.mu.RLock()
	s, ok := m.sessions[sessionID]
	m.mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("%w: session %q", domain.ErrNotInitialized, sessionID)
	}
	return s, nil
}

// Reinitialize builds the root state described by desc and restarts the
// session's search from it.
func (m *Manager) Reinitialize(ctx context.Context, sessionID string, desc domain.Descriptor) error {
	state, err := m.registry.Build(desc)
	if err != nil {
		return err
	}
	return m.Open(sessionID).Reinitialize(ctx, desc, state)
}

// RunRound runs one round on an existing session.
func (m *Manager) RunRound(ctx context.Context, sessionID string, opts RoundOptions) (domain.RoundStats, error) {
	s, err := m.Session(sessionID)
	if err != nil {
		return domain.RoundStats{}, err
	}
	return s.RunRound(ctx, opts)
}

// BestMove delegates to the session.
func (m *Manager) BestMove(sessionID string) (domain.Action, error) {
	s, err := m.Session(sessionID)
	if err != nil {
		return nil, err
	}
	return s.BestMove()
}

// PossibleActions delegates to the session.
func (m *Manager) PossibleActions(sessionID string) ([]domain.Action, error) {
	s, err := m.Session(sessionID)
	if err != nil {
		return nil, err
	}
	return s.PossibleActions()
}

// Stats delegates to the session.
func (m *Manager) Stats(sessionID string) (domain.TreeStats, error) {
	s, err := m.Session(sessionID)
	if err != nil {
		return domain.TreeStats{}, err
	}
	return s.Stats()
}

// Snapshot delegates to the session.
func (m *Manager) Snapshot(sessionID string, maxDepth int) ([]domain.NodeView, error) {
	s, err := m.Session(sessionID)
	if err != nil {
		return nil, err
	}
	return s.Snapshot(maxDepth)
}

// Delete drops a session and its journal record.
func (m *Manager) Delete(ctx context.Context, sessionID string) error {
	m.mu.Lock()
	_, live := m.sessions[sessionID]
	delete(m.sessions, sessionID)
	m.mu.Unlock()

	if m.journal == nil {
		if !live {
			return domain.ErrSessionNotFound
		}
		m.deleted(sessionID)
		return nil
	}

	if !live {
		if _, err := m.journal.Load(ctx, sessionID); err != nil {
			return err
		}
	}
	if err := m.journal.Delete(ctx, sessionID); err != nil && !errors.Is(err, domain.ErrSessionNotFound) {
		return fmt.Errorf("failed to delete journal: %w", err)
	}
	m.deleted(sessionID)
	return nil
}

func (m *Manager) deleted(sessionID string) {
	m.logger.Debug("Session deleted", "session_id", sessionID)
	if m.hooks.OnDelete != nil {
		m.hooks.OnDelete(sessionID)
	}
}

// List returns the IDs of live sessions in sorted order.
func (m *Manager) List() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()

	ids := make([]string, 0, len(m.sessions))
	for id := range m.sessions {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Domains lists the domains sessions can be built from.
func (m *Manager) Domains() []registry.Entry {
	return m.registry.List()
}

// Journal returns the configured journal, or nil.
func (m *Manager) Journal() ports.JournalStore {
	return m.journal
}
