// Package tictactoe is a 3x3 noughts and crosses domain.
// Actions are the cell indices 0 to 8, row by row.
package tictactoe

import (
	"fmt"
	"strings"

	"github.com/akuroiwa/mcts-gen/pkg/domain"
	"github.com/akuroiwa/mcts-gen/pkg/registry"
)

// Name is the registry key of this domain.
const Name = "tictactoe"

const (
	// X moves first.
	X = 1
	// O moves second.
	O = -1
)

var lines = [8][3]int{
	{0, 1, 2}, {3, 4, 5}, {6, 7, 8},
	{0, 3, 6}, {1, 4, 7}, {2, 5, 8},
	{0, 4, 8}, {2, 4, 6},
}

// State is an immutable board. Cells hold X, O or 0.
type State struct {
	cells  [9]int
	player int
}

// New returns an empty board with X to move.
func New() State {
	return State{player: X}
}

// FromMoves replays cell indices from the empty board.
func FromMoves(moves []int) (State, error) {
	s := New()
	for _, m := range moves {
		next, err := s.Apply(m)
		if err != nil {
			return State{}, err
		}
		s = next.(State)
	}
	return s, nil
}

type args struct {
	Moves []int `json:"moves"`
}

// Factory builds a board from the optional "moves" argument.
func Factory(raw map[string]any) (domain.State, error) {
	var a args
	if err := registry.Decode(raw, &a); err != nil {
		return nil, err
	}
	return FromMoves(a.Moves)
}

func (s State) CurrentPlayer() int { return s.player }

func (s State) LegalActions() []domain.Action {
	if s.IsTerminal() {
		return nil
	}
	var out []domain.Action
	for i, c := range s.cells {
		if c == 0 {
			out = append(out, i)
		}
	}
	return out
}

func (s State) Apply(a domain.Action) (domain.State, error) {
	i, ok := a.(int)
	if !ok || i < 0 || i > 8 || s.cells[i] != 0 || s.IsTerminal() {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidAction, a)
	}
	next := s
	next.cells[i] = s.player
	next.player = -s.player
	return next, nil
}

// Winner returns X or O for a completed line, or 0.
func (s State) Winner() int {
	for _, l := range lines {
		c := s.cells[l[0]]
		if c != 0 && c == s.cells[l[1]] && c == s.cells[l[2]] {
			return c
		}
	}
	return 0
}

func (s State) IsTerminal() bool {
	if s.Winner() != 0 {
		return true
	}
	for _, c := range s.cells {
		if c == 0 {
			return false
		}
	}
	return true
}

// Reward is -1 when the player to move has lost and 0 for a draw.
func (s State) Reward() float64 {
	switch s.Winner() {
	case 0:
		return 0
	case s.player:
		return 1
	default:
		return -1
	}
}

func (s State) String() string {
	var b strings.Builder
	for i, c := range s.cells {
		switch c {
		case X:
			b.WriteByte('X')
		case O:
			b.WriteByte('O')
		default:
			b.WriteByte('.')
		}
		if i%3 == 2 && i != 8 {
			b.WriteByte('/')
		}
	}
	return b.String()
}

func (s State) Summary() map[string]any {
	toMove := "X"
	if s.player == O {
		toMove = "O"
	}
	return map[string]any{
		"board":   s.String(),
		"to_move": toMove,
	}
}
