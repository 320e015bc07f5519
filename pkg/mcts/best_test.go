package mcts

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBestChild(t *testing.T) {
	tree := NewTree(newLineGame(3, 2))
	for i := 0; i < 3; i++ {
		tree.addChild(0, 0, i, newLineGame(3, 2))
	}
	set := func(i, visits int, total float64) {
		n := tree.Node(tree.Children(0)[i])
		n.Visits, n.TotalReward = visits, total
	}

	t.Run("empty", func(t *testing.T) {
		_, ok := NewTree(newLineGame(3, 2)).BestChild(0, MostVisited)
		assert.False(t, ok)
	})

	t.Run("most visited keeps first on tie", func(t *testing.T) {
		set(0, 4, 0)
		set(1, 4, 4)
		set(2, 1, 1)
		best, ok := tree.BestChild(0, MostVisited)
		require.True(t, ok)
		assert.Equal(t, 0, tree.Node(best).Action)
	})

	t.Run("highest value skips unvisited", func(t *testing.T) {
		set(0, 0, 0)
		set(1, 4, 2)
		set(2, 2, 1)
		best, ok := tree.BestChild(0, HighestValue)
		require.True(t, ok)
		assert.Equal(t, 1, tree.Node(best).Action)
	})

	t.Run("highest value with nothing visited", func(t *testing.T) {
		set(0, 0, 0)
		set(1, 0, 0)
		set(2, 0, 0)
		_, ok := tree.BestChild(0, HighestValue)
		assert.False(t, ok)
	})
}

func TestPrincipalVariation(t *testing.T) {
	game := newLineGame(2, 3)
	game.reward = func(path []int) float64 {
		if path[0] == 1 && path[1] == 0 {
			return 1
		}
		return -1
	}
	tree := NewTree(game)
	runRounds(t, NewEngine(WithSeed(11)), tree, 200, nil)

	pv := tree.PrincipalVariation()
	require.NotEmpty(t, pv)
	assert.Equal(t, 1, pv[0])
	assert.LessOrEqual(t, len(pv), tree.MaxDepth())
}
