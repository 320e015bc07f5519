package session_test

import (
	"context"
	"testing"

	"github.com/akuroiwa/mcts-gen/pkg/adapters/memory"
	"github.com/akuroiwa/mcts-gen/pkg/domain"
	"github.com/akuroiwa/mcts-gen/pkg/games"
	"github.com/akuroiwa/mcts-gen/pkg/session"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestManager_Lifecycle(t *testing.T) {
	journal := memory.NewStore()
	m := session.NewManager(games.NewRegistry(), session.WithJournal(journal))
	ctx := context.Background()

	_, err := m.RunRound(ctx, "a", session.RoundOptions{Exploration: 1.4})
	assert.ErrorIs(t, err, domain.ErrNotInitialized)

	err = m.Reinitialize(ctx, "a", domain.Descriptor{Domain: "checkers"})
	assert.ErrorIs(t, err, domain.ErrUnknownDomain)
	assert.Empty(t, m.List())

	require.NoError(t, m.Reinitialize(ctx, "a", domain.Descriptor{Domain: "nim", Args: map[string]any{"stones": 4}}))
	require.NoError(t, m.Reinitialize(ctx, "b", domain.Descriptor{Domain: "tictactoe"}))
	assert.Equal(t, []string{"a", "b"}, m.List())

	actions, err := m.PossibleActions("a")
	require.NoError(t, err)
	assert.Equal(t, []domain.Action{1, 2, 3}, actions)

	stats, err := m.RunRound(ctx, "a", session.RoundOptions{Exploration: 1.4})
	require.NoError(t, err)
	assert.Equal(t, 1, stats.Round)

	move, err := m.BestMove("a")
	require.NoError(t, err)
	assert.Equal(t, 1, move)

	tree, err := m.Stats("b")
	require.NoError(t, err)
	assert.Equal(t, 0, tree.RootVisits, "sessions are independent")

	require.NoError(t, m.Delete(ctx, "a"))
	assert.Equal(t, []string{"b"}, m.List())
	_, err = journal.Load(ctx, "a")
	assert.ErrorIs(t, err, domain.ErrSessionNotFound)

	assert.ErrorIs(t, m.Delete(ctx, "a"), domain.ErrSessionNotFound)
	assert.Same(t, m.Journal(), journal)
	assert.Len(t, m.Domains(), 3)
}

func TestManager_DeleteWithoutJournal(t *testing.T) {
	m := session.NewManager(games.NewRegistry())
	ctx := context.Background()

	require.NoError(t, m.Reinitialize(ctx, "x", domain.Descriptor{Domain: "tictactoe"}))
	require.NoError(t, m.Delete(ctx, "x"))
	assert.ErrorIs(t, m.Delete(ctx, "x"), domain.ErrSessionNotFound)
	assert.Nil(t, m.Journal())
}

func TestManager_DeleteFiresHook(t *testing.T) {
	var deleted []string
	hooks := domain.Hooks{OnDelete: func(id string) { deleted = append(deleted, id) }}
	m := session.NewManager(games.NewRegistry(), session.WithHooks(hooks))
	ctx := context.Background()

	require.NoError(t, m.Reinitialize(ctx, "x", domain.Descriptor{Domain: "nim"}))
	require.NoError(t, m.Delete(ctx, "x"))
	assert.ErrorIs(t, m.Delete(ctx, "x"), domain.ErrSessionNotFound)
	assert.Equal(t, []string{"x"}, deleted)
}
