package mcts

import "github.com/akuroiwa/mcts-gen/pkg/domain"

// Criterion selects how BestChild ranks children.
type Criterion int

const (
	// MostVisited picks the child with the highest visit count.
	MostVisited Criterion = iota
	// HighestValue picks the child with the highest mean reward.
	// Unvisited children are ignored.
	HighestValue
)

func (c Criterion) String() string {
	if c == HighestValue {
		return "highest-value"
	}
	return "most-visited"
}

// BestChild returns the index of the best child of node i.
// Ties go to the child expanded first. It reports false when no child qualifies.
func (t *Tree) BestChild(i int, c Criterion) (int, bool) {
	best := noParent
	for _, ci := range t.nodes[i].children {
		child := &t.nodes[ci]
		if c == HighestValue && child.Visits == 0 {
			continue
		}
		if best == noParent {
			best = ci
			continue
		}
		cur := &t.nodes[best]
		switch c {
		case HighestValue:
			if child.Value() > cur.Value() {
				best = ci
			}
		default:
			if child.Visits > cur.Visits {
				best = ci
			}
		}
	}
	return best, best != noParent
}

// PrincipalVariation follows the most visited child from the root and
// returns the actions along the way.
func (t *Tree) PrincipalVariation() []domain.Action {
	var line []domain.Action
	i := 0
	for {
		next, ok := t.BestChild(i, MostVisited)
		if !ok {
			return line
		}
		line = append(line, t.nodes[next].Action)
		i = next
	}
}
