package nim

import (
	"testing"

	"github.com/akuroiwa/mcts-gen/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestState(t *testing.T) {
	s, err := New(5, 3)
	require.NoError(t, err)
	assert.Equal(t, []domain.Action{1, 2, 3}, s.LegalActions())

	next, err := s.Apply(3)
	require.NoError(t, err)
	assert.Equal(t, 2, next.(State).Stones)
	assert.Equal(t, 1, next.CurrentPlayer())
	assert.Equal(t, []domain.Action{1, 2}, next.LegalActions())

	_, err = next.Apply(3)
	assert.ErrorIs(t, err, domain.ErrInvalidAction)

	end, err := next.Apply(2)
	require.NoError(t, err)
	assert.True(t, end.IsTerminal())
	assert.Equal(t, -1.0, end.Reward())
	assert.Empty(t, end.LegalActions())
}

func TestFactory(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		s, err := Factory(nil)
		require.NoError(t, err)
		assert.Equal(t, State{Stones: DefaultStones, MaxTake: DefaultMaxTake}, s)
	})

	t.Run("explicit", func(t *testing.T) {
		s, err := Factory(map[string]any{"stones": 7, "max_take": "2"})
		require.NoError(t, err)
		assert.Equal(t, State{Stones: 7, MaxTake: 2}, s)
	})

	t.Run("invalid", func(t *testing.T) {
		_, err := Factory(map[string]any{"max_take": 0})
		assert.ErrorIs(t, err, domain.ErrInvalidConfiguration)
	})
}
