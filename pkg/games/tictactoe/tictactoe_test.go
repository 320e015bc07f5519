package tictactoe

import (
	"testing"

	"github.com/akuroiwa/mcts-gen/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	s := New()
	assert.Equal(t, X, s.CurrentPlayer())
	assert.Len(t, s.LegalActions(), 9)
	assert.False(t, s.IsTerminal())
}

func TestApply(t *testing.T) {
	s := New()
	next, err := s.Apply(4)
	require.NoError(t, err)

	assert.Equal(t, O, next.CurrentPlayer())
	assert.Len(t, next.LegalActions(), 8)
	assert.Len(t, s.LegalActions(), 9, "apply must not modify the receiver")

	_, err = next.Apply(4)
	assert.ErrorIs(t, err, domain.ErrInvalidAction)
	_, err = next.Apply("4")
	assert.ErrorIs(t, err, domain.ErrInvalidAction)
}

func TestTerminal(t *testing.T) {
	t.Run("win", func(t *testing.T) {
		s, err := FromMoves([]int{0, 3, 1, 4, 2})
		require.NoError(t, err)
		assert.True(t, s.IsTerminal())
		assert.Equal(t, X, s.Winner())
		assert.Equal(t, O, s.CurrentPlayer())
		assert.Equal(t, -1.0, s.Reward())
		assert.Empty(t, s.LegalActions())
	})

	t.Run("draw", func(t *testing.T) {
		s, err := FromMoves([]int{0, 1, 2, 4, 3, 5, 7, 6, 8})
		require.NoError(t, err)
		assert.True(t, s.IsTerminal())
		assert.Equal(t, 0, s.Winner())
		assert.Zero(t, s.Reward())
	})

	t.Run("moves after the end", func(t *testing.T) {
		_, err := FromMoves([]int{0, 3, 1, 4, 2, 5})
		assert.ErrorIs(t, err, domain.ErrInvalidAction)
	})
}

func TestFactory(t *testing.T) {
	s, err := Factory(map[string]any{"moves": []any{4, 0}})
	require.NoError(t, err)
	assert.Equal(t, "O../.X./...", s.(State).String())
	assert.Equal(t, "X", s.(State).Summary()["to_move"])
}
