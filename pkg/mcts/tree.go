package mcts

import "github.com/akuroiwa/mcts-gen/pkg/domain"

// noParent marks the root node.
const noParent = -1

// Node is one visited state in the tree.
// TotalReward is accumulated from the point of view of the player who moved
// into this node, which is the parent's current player.
type Node struct {
	State       domain.State
	Action      domain.Action
	Parent      int
	Player      int
	Depth       int
	Visits      int
	TotalReward float64

	children []int
	byAction map[domain.Action]int
	untried  []domain.Action
}

// Value is the mean reward, or 0 for an unvisited node.
func (n *Node) Value() float64 {
	if n.Visits == 0 {
		return 0
	}
	return n.TotalReward / float64(n.Visits)
}

// Untried returns a copy of the actions not expanded yet, in domain order.
func (n *Node) Untried() []domain.Action {
	return append([]domain.Action(nil), n.untried...)
}

// Expanded reports whether every legal action already has a child.
func (n *Node) Expanded() bool {
	return len(n.untried) == 0
}

// Tree is an arena of nodes rooted at index 0.
type Tree struct {
	nodes    []Node
	maxDepth int
}

// NewTree builds a tree with a single root for state.
func NewTree(state domain.State) *Tree {
	t := &Tree{}
	t.nodes = append(t.nodes, newNode(state, nil, noParent, 0))
	return t
}

func newNode(state domain.State, action domain.Action, parent, depth int) Node {
	n := Node{
		State:    state,
		Action:   action,
		Parent:   parent,
		Player:   state.CurrentPlayer(),
		Depth:    depth,
		byAction: make(map[domain.Action]int),
	}
	if !state.IsTerminal() {
		n.untried = append(n.untried, state.LegalActions()...)
	}
	return n
}

// Root returns the root node.
func (t *Tree) Root() *Node {
	return &t.nodes[0]
}

// Node returns the node at index i.
// The pointer is only valid until the next expansion.
func (t *Tree) Node(i int) *Node {
	return &t.nodes[i]
}

// Len is the number of nodes in the tree.
func (t *Tree) Len() int {
	return len(t.nodes)
}

// MaxDepth is the depth of the deepest node; the root is at depth 0.
func (t *Tree) MaxDepth() int {
	return t.maxDepth
}

// Children returns the child indices of node i in insertion order.
func (t *Tree) Children(i int) []int {
	return append([]int(nil), t.nodes[i].children...)
}

// Child looks up the child of node i reached by action.
func (t *Tree) Child(i int, action domain.Action) (int, bool) {
	idx, ok := t.nodes[i].byAction[action]
	return idx, ok
}

// addChild attaches state as a child of parent and removes the action at
// untriedIdx from the parent's untried list.
func (t *Tree) addChild(parent, untriedIdx int, action domain.Action, state domain.State) int {
	depth := t.nodes[parent].Depth + 1
	idx := len(t.nodes)
	t.nodes = append(t.nodes, newNode(state, action, parent, depth))

	p := &t.nodes[parent]
	p.untried = append(p.untried[:untriedIdx:untriedIdx], p.untried[untriedIdx+1:]...)
	p.children = append(p.children, idx)
	p.byAction[action] = idx

	if depth > t.maxDepth {
		t.maxDepth = depth
	}
	return idx
}

// backpropagate walks from node i to the root. Each node sees the reward
// with a positive sign when the player who moved into it is the player the
// reward was measured for, and a negative sign otherwise.
func (t *Tree) backpropagate(i int, reward float64, rewardPlayer int) {
	for i != noParent {
		n := &t.nodes[i]
		mover := n.Player
		if n.Parent != noParent {
			mover = t.nodes[n.Parent].Player
		}
		if mover == rewardPlayer {
			n.TotalReward += reward
		} else {
			n.TotalReward -= reward
		}
		n.Visits++
		i = n.Parent
	}
}
