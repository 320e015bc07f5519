// Package nim is a single-pile take-away game. Players alternately remove
// between one and MaxTake stones; whoever takes the last stone wins.
package nim

import (
	"fmt"

	"github.com/akuroiwa/mcts-gen/pkg/domain"
	"github.com/akuroiwa/mcts-gen/pkg/registry"
)

// Name is the registry key of this domain.
const Name = "nim"

// Defaults used by Factory.
const (
	DefaultStones  = 10
	DefaultMaxTake = 3
)

// State is the number of stones left and whose turn it is.
type State struct {
	Stones  int
	MaxTake int
	Player  int
}

// New starts a game with player 0 to move.
func New(stones, maxTake int) (State, error) {
	if stones < 0 || maxTake < 1 {
		return State{}, fmt.Errorf("%w: stones=%d max_take=%d", domain.ErrInvalidConfiguration, stones, maxTake)
	}
	return State{Stones: stones, MaxTake: maxTake}, nil
}

type args struct {
	Stones  *int `json:"stones"`
	MaxTake *int `json:"max_take"`
}

// Factory reads "stones" and "max_take".
func Factory(raw map[string]any) (domain.State, error) {
	var a args
	if err := registry.Decode(raw, &a); err != nil {
		return nil, err
	}
	stones, maxTake := DefaultStones, DefaultMaxTake
	if a.Stones != nil {
		stones = *a.Stones
	}
	if a.MaxTake != nil {
		maxTake = *a.MaxTake
	}
	return New(stones, maxTake)
}

func (s State) CurrentPlayer() int { return s.Player }

func (s State) LegalActions() []domain.Action {
	n := min(s.MaxTake, s.Stones)
	out := make([]domain.Action, 0, n)
	for i := 1; i <= n; i++ {
		out = append(out, i)
	}
	return out
}

func (s State) Apply(a domain.Action) (domain.State, error) {
	take, ok := a.(int)
	if !ok || take < 1 || take > s.MaxTake || take > s.Stones {
		return nil, fmt.Errorf("%w: take %v from %d", domain.ErrInvalidAction, a, s.Stones)
	}
	return State{Stones: s.Stones - take, MaxTake: s.MaxTake, Player: 1 - s.Player}, nil
}

func (s State) IsTerminal() bool { return s.Stones == 0 }

// Reward is always -1: the opponent took the last stone.
func (s State) Reward() float64 { return -1 }

func (s State) Summary() map[string]any {
	return map[string]any{"stones": s.Stones, "to_move": s.Player}
}
