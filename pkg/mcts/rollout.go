package mcts

import (
	"fmt"
	"strings"

	"github.com/akuroiwa/mcts-gen/pkg/domain"
	"golang.org/x/exp/rand"
)

// RolloutPolicy picks the next action during simulation. actions is never empty.
type RolloutPolicy func(state domain.State, actions []domain.Action, rng *rand.Rand) domain.Action

// UniformRandom picks any legal action with equal probability.
func UniformRandom(_ domain.State, actions []domain.Action, rng *rand.Rand) domain.Action {
	return actions[rng.Intn(len(actions))]
}

// FirstAction always plays the first legal action. It makes rollouts fully
// deterministic, which is mostly useful for debugging a domain.
func FirstAction(_ domain.State, actions []domain.Action, _ *rand.Rand) domain.Action {
	return actions[0]
}

// PolicyByName resolves a configured rollout policy name.
func PolicyByName(name string) (RolloutPolicy, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "random", "uniform":
		return UniformRandom, nil
	case "first":
		return FirstAction, nil
	default:
		return nil, fmt.Errorf("%w: unknown rollout policy %q", domain.ErrInvalidConfiguration, name)
	}
}

// rollout plays from state until it is terminal or the depth cutoff is hit.
// It returns the reward and the player it is measured for.
func (e *Engine) rollout(state domain.State) (float64, int, error) {
	for depth := 0; !state.IsTerminal(); depth++ {
		actions := state.LegalActions()
		if len(actions) == 0 || (e.maxRolloutDepth > 0 && depth >= e.maxRolloutDepth) {
			return evaluate(state), state.CurrentPlayer(), nil
		}

		action := e.policy(state, actions, e.rng)
		next, err := state.Apply(action)
		if err != nil {
			return 0, 0, fmt.Errorf("rollout apply %s: %w", domain.FormatAction(action), err)
		}
		state = next
	}
	return state.Reward(), state.CurrentPlayer(), nil
}

// evaluate scores a non-terminal state where the rollout had to stop.
func evaluate(state domain.State) float64 {
	if ev, ok := state.(domain.Evaluator); ok {
		return ev.Evaluate()
	}
	return 0
}
