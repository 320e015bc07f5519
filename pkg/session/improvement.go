package session

import "github.com/akuroiwa/mcts-gen/pkg/domain"

// improvementTracker compares each round's best value with the previous one.
type improvementTracker struct {
	prev float64
	set  bool
}

func (t *improvementTracker) observe(v float64) domain.Improvement {
	code := domain.ImprovementBetter
	if t.set {
		switch {
		case v > t.prev:
			code = domain.ImprovementBetter
		case v == t.prev:
			code = domain.ImprovementSame
		default:
			code = domain.ImprovementWorse
		}
	}
	t.prev, t.set = v, true
	return code
}

func (t *improvementTracker) reset() {
	*t = improvementTracker{}
}
