package mcts

import "math"

// uct scores a child for selection. Unvisited children score +Inf so they
// are always tried before the formula applies.
func uct(child *Node, parentVisits int, exploration float64) float64 {
	if child.Visits == 0 {
		return math.Inf(1)
	}
	exploit := child.TotalReward / float64(child.Visits)
	explore := exploration * math.Sqrt(math.Log(float64(parentVisits))/float64(child.Visits))
	return exploit + explore
}

// selectLeaf descends from the root while the current node is fully
// expanded and has children. Ties keep the first child.
func (t *Tree) selectLeaf(exploration float64) int {
	i := 0
	for {
		n := &t.nodes[i]
		if !n.Expanded() || len(n.children) == 0 {
			return i
		}
		best, bestScore := noParent, math.Inf(-1)
		for _, ci := range n.children {
			score := uct(&t.nodes[ci], n.Visits, exploration)
			if best == noParent || score > bestScore {
				best, bestScore = ci, score
			}
			if math.IsInf(score, 1) {
				break
			}
		}
		i = best
	}
}
