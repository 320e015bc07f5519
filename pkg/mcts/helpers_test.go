package mcts

import (
	"errors"

	"github.com/akuroiwa/mcts-gen/pkg/domain"
)

// lineGame is a fixed-width, fixed-depth game. Actions are ints and the
// reward of a leaf is derived from its path.
type lineGame struct {
	width     int
	depth     int
	path      []int
	twoPlayer bool
	reward    func(path []int) float64
	failOn    int
	eval      *float64
}

func newLineGame(width, depth int) *lineGame {
	return &lineGame{
		width:  width,
		depth:  depth,
		failOn: -1,
		reward: func(path []int) float64 {
			sum := 0
			for _, p := range path {
				sum += p
			}
			return float64(sum%3) - 1
		},
	}
}

func (g *lineGame) CurrentPlayer() int {
	if g.twoPlayer && len(g.path)%2 == 1 {
		return -1
	}
	return 1
}

func (g *lineGame) LegalActions() []domain.Action {
	if g.IsTerminal() {
		return nil
	}
	out := make([]domain.Action, g.width)
	for i := range out {
		out[i] = i
	}
	return out
}

func (g *lineGame) Apply(a domain.Action) (domain.State, error) {
	i, ok := a.(int)
	if !ok || i < 0 || i >= g.width || g.IsTerminal() {
		return nil, domain.ErrInvalidAction
	}
	if i == g.failOn {
		return nil, errors.New("boom")
	}
	next := *g
	next.path = append(append([]int(nil), g.path...), i)
	return &next, nil
}

func (g *lineGame) IsTerminal() bool { return len(g.path) >= g.depth }

func (g *lineGame) Reward() float64 { return g.reward(g.path) }

// evalGame adds an Evaluator to lineGame.
type evalGame struct {
	*lineGame
	score float64
}

func (g evalGame) Apply(a domain.Action) (domain.State, error) {
	next, err := g.lineGame.Apply(a)
	if err != nil {
		return nil, err
	}
	return evalGame{lineGame: next.(*lineGame), score: g.score}, nil
}

func (g evalGame) Evaluate() float64 { return g.score }
