package ports

import (
	"context"
	"testing"
	"time"

	"github.com/akuroiwa/mcts-gen/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// RunJournalStoreContract runs a suite of tests to verify that a JournalStore
// implementation adheres to the defined interface contract.
func RunJournalStoreContract(t *testing.T, store JournalStore) {
	ctx := context.Background()
	sessionID := "contract-test-session-" + time.Now().Format("20060102150405")

	newRecord := func(id string) *domain.Record {
		return &domain.Record{
			SessionID: id,
			Domain:    domain.Descriptor{Domain: "nim", Args: map[string]any{"stones": 5}},
			Rounds: []domain.RoundStats{
				{Round: 1, Improvement: domain.ImprovementBetter, BestValue: 0.5, RootVisits: 1},
				{Round: 2, Improvement: domain.ImprovementSame, BestValue: 0.5, RootVisits: 2},
			},
			BestMove:  "1",
			UpdatedAt: time.Now().UTC().Truncate(time.Second),
		}
	}

	t.Run("Save and Load", func(t *testing.T) {
		record := newRecord(sessionID)

		err := store.Save(ctx, sessionID, record)
		require.NoError(t, err, "Save should not return error")

		loaded, err := store.Load(ctx, sessionID)
		require.NoError(t, err, "Load should not return error")
		assert.Equal(t, record.SessionID, loaded.SessionID)
		assert.Equal(t, "nim", loaded.Domain.Domain)
		assert.Equal(t, record.Rounds, loaded.Rounds)
		assert.Equal(t, "1", loaded.BestMove)
		assert.True(t, record.UpdatedAt.Equal(loaded.UpdatedAt))
		// JSON backends turn numbers into float64, so only check presence.
		assert.NotNil(t, loaded.Domain.Args["stones"])
	})

	t.Run("Save Overwrites", func(t *testing.T) {
		record := newRecord(sessionID)
		record.Rounds = record.Rounds[:1]
		require.NoError(t, store.Save(ctx, sessionID, record))

		loaded, err := store.Load(ctx, sessionID)
		require.NoError(t, err)
		assert.Len(t, loaded.Rounds, 1)
	})

	t.Run("Load Non-Existent", func(t *testing.T) {
		_, err := store.Load(ctx, "non-existent-"+sessionID)
		assert.ErrorIs(t, err, domain.ErrSessionNotFound)
	})

	t.Run("Delete", func(t *testing.T) {
		err := store.Save(ctx, sessionID, newRecord(sessionID))
		require.NoError(t, err)

		err = store.Delete(ctx, sessionID)
		require.NoError(t, err, "Delete should not return error")

		_, err = store.Load(ctx, sessionID)
		assert.ErrorIs(t, err, domain.ErrSessionNotFound, "Load after Delete should return ErrSessionNotFound")
	})

	t.Run("List", func(t *testing.T) {
		id1 := sessionID + "-1"
		id2 := sessionID + "-2"
		_ = store.Save(ctx, id1, newRecord(id1))
		_ = store.Save(ctx, id2, newRecord(id2))

		defer func() {
			_ = store.Delete(ctx, id1)
			_ = store.Delete(ctx, id2)
		}()

		sessions, err := store.List(ctx)
		require.NoError(t, err)
		assert.Contains(t, sessions, id1)
		assert.Contains(t, sessions, id2)
	})
}
