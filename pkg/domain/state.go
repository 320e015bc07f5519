package domain

import (
	"fmt"
	"strings"
)

// Action is an opaque move produced by a State.
// Implementations must use comparable values since actions are map keys.
type Action = any

// State is one point in a decision domain's search space.
// The engine treats it as immutable: Apply must return a new value and never
// modify the receiver, so states can be shared freely between tree nodes.
type State interface {
	// CurrentPlayer identifies whose turn it is.
	CurrentPlayer() int

	// LegalActions lists the moves available from this state, in a
	// deterministic order. It may be empty.
	LegalActions() []Action

	// Apply returns the successor state. It fails with ErrInvalidAction
	// when the action is not legal here.
	Apply(action Action) (State, error)

	// IsTerminal reports whether the game is over.
	IsTerminal() bool

	// Reward scores a terminal state from the point of view of
	// CurrentPlayer. It is only called when IsTerminal is true.
	Reward() float64
}

// Evaluator is implemented by states that can score a non-terminal position.
// It is used when a rollout reaches its depth cutoff.
type Evaluator interface {
	Evaluate() float64
}

// Summarizer is implemented by states that can describe themselves for
// humans, for example as a move list or a board diagram.
type Summarizer interface {
	Summary() map[string]any
}

// FormatAction returns the canonical text form of an action.
func FormatAction(a Action) string {
	if s, ok := a.(fmt.Stringer); ok {
		return s.String()
	}
	return fmt.Sprint(a)
}

// FormatActions formats every action in order.
func FormatActions(actions []Action) []string {
	out := make([]string, len(actions))
	for i, a := range actions {
		out[i] = FormatAction(a)
	}
	return out
}

// ParseActions resolves text forms against the legal actions of s.
// Matching is exact on FormatAction output, with surrounding whitespace ignored.
// An unknown name fails with ErrInvalidAction.
func ParseActions(s State, names []string) ([]Action, error) {
	legal := s.LegalActions()
	byName := make(map[string]Action, len(legal))
	for _, a := range legal {
		byName[FormatAction(a)] = a
	}

	out := make([]Action, 0, len(names))
	for _, n := range names {
		a, ok := byName[strings.TrimSpace(n)]
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrInvalidAction, n)
		}
		out = append(out, a)
	}
	return out, nil
}
