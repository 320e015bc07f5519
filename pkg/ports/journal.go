package ports

import (
	"context"

	"github.com/akuroiwa/mcts-gen/pkg/domain"
)

// JournalStore persists the history of a session: the domain that built it
// and the statistics of every round since the last reinitialize.
type JournalStore interface {
	// Save persists the record for a given session ID, replacing any previous one.
	Save(ctx context.Context, sessionID string, record *domain.Record) error

	// Load retrieves the record for a given session ID.
	// Returns domain.ErrSessionNotFound if the session does not exist.
	Load(ctx context.Context, sessionID string) (*domain.Record, error)

	// Delete removes the record for a given session ID.
	Delete(ctx context.Context, sessionID string) error

	// List returns the IDs of every stored session.
	List(ctx context.Context) ([]string, error)
}
