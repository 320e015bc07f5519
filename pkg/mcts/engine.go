package mcts

import (
	"fmt"
	"math"
	"time"

	"github.com/akuroiwa/mcts-gen/pkg/domain"
	"golang.org/x/exp/rand"
)

// Engine runs search rounds. It is not safe for concurrent use; callers
// serialize access, as Session does.
type Engine struct {
	policy          RolloutPolicy
	maxRolloutDepth int
	rng             *rand.Rand
}

// Option configures an Engine.
type Option func(*Engine)

// WithRolloutPolicy sets the simulation policy. The default is UniformRandom.
func WithRolloutPolicy(p RolloutPolicy) Option {
	return func(e *Engine) {
		if p != nil {
			e.policy = p
		}
	}
}

// WithMaxRolloutDepth caps the number of plies played per rollout.
// Zero means no cap.
func WithMaxRolloutDepth(depth int) Option {
	return func(e *Engine) {
		e.maxRolloutDepth = depth
	}
}

// WithSeed makes rollouts reproducible.
func WithSeed(seed uint64) Option {
	return func(e *Engine) {
		e.rng = rand.New(rand.NewSource(seed))
	}
}

// NewEngine creates an engine seeded from the clock unless WithSeed is given.
func NewEngine(opts ...Option) *Engine {
	e := &Engine{
		policy: UniformRandom,
		rng:    rand.New(rand.NewSource(uint64(time.Now().UnixNano()))),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// ValidateExploration checks that c is a usable exploration constant.
func ValidateExploration(c float64) error {
	if math.IsNaN(c) || math.IsInf(c, 0) || c <= 0 {
		return fmt.Errorf("%w: exploration constant must be a positive finite number, got %v", domain.ErrInvalidConfiguration, c)
	}
	return nil
}

// Round runs one selection, expansion, simulation and backpropagation cycle.
// An empty allow list leaves expansion unrestricted. When the list excludes
// every untried action of the selected leaf, no child is added and the
// rollout starts from the leaf itself.
func (e *Engine) Round(t *Tree, exploration float64, allow []domain.Action) error {
	if err := ValidateExploration(exploration); err != nil {
		return err
	}

	leaf := t.selectLeaf(exploration)
	start := t.nodes[leaf].State

	untriedIdx, action, ok := pickUntried(&t.nodes[leaf], allow)
	var child domain.State
	if ok {
		next, err := start.Apply(action)
		if err != nil {
			return fmt.Errorf("expand %s: %w", domain.FormatAction(action), err)
		}
		child = next
		start = next
	}

	reward, player, err := e.rollout(start)
	if err != nil {
		return err
	}

	// Commit.
	from := leaf
	if ok {
		from = t.addChild(leaf, untriedIdx, action, child)
	}
	t.backpropagate(from, reward, player)
	return nil
}

// pickUntried returns the first untried action of n that is allowed.
func pickUntried(n *Node, allow []domain.Action) (int, domain.Action, bool) {
	if len(allow) == 0 {
		if len(n.untried) == 0 {
			return 0, nil, false
		}
		return 0, n.untried[0], true
	}

	allowed := make(map[domain.Action]struct{}, len(allow))
	for _, a := range allow {
		allowed[a] = struct{}{}
	}
	for i, a := range n.untried {
		if _, ok := allowed[a]; ok {
			return i, a, true
		}
	}
	return 0, nil, false
}
