package domain

import "time"

// Improvement compares the best value of a round with the previous round.
type Improvement int

const (
	// ImprovementWorse means the best value dropped.
	ImprovementWorse Improvement = 0
	// ImprovementSame means the best value is exactly unchanged.
	ImprovementSame Improvement = 1
	// ImprovementBetter means the best value rose, or this was the first round.
	ImprovementBetter Improvement = 2
)

func (i Improvement) String() string {
	switch i {
	case ImprovementWorse:
		return "worse"
	case ImprovementSame:
		return "same"
	case ImprovementBetter:
		return "better"
	default:
		return "unknown"
	}
}

// RoundStats is returned after each search round.
type RoundStats struct {
	Round       int         `json:"round_index" yaml:"round_index"`
	Improvement Improvement `json:"improvement" yaml:"improvement"`
	BestValue   float64     `json:"best_value" yaml:"best_value"`
	RootVisits  int         `json:"root_visits" yaml:"root_visits"`
}

// ChildStats summarizes one child of the root.
type ChildStats struct {
	Action string  `json:"action"`
	Visits int     `json:"visits"`
	Value  float64 `json:"value"`
}

// TreeStats is a snapshot of the current search tree.
type TreeStats struct {
	Round              int            `json:"round"`
	RootVisits         int            `json:"root_visits"`
	TreeSize           int            `json:"tree_size"`
	BestValue          float64        `json:"best_value"`
	MaxDepth           int            `json:"max_depth"`
	PrincipalVariation []string       `json:"principal_variation"`
	Children           []ChildStats   `json:"children"`
	Summary            map[string]any `json:"summary,omitempty"`
}

// Descriptor names a registered domain and the arguments used to build its
// initial state.
type Descriptor struct {
	Domain string         `json:"domain" yaml:"domain"`
	Args   map[string]any `json:"args,omitempty" yaml:"args,omitempty"`
}

// Record is the journal entry kept for a session. It holds round summaries
// only; the search tree itself is never persisted.
type Record struct {
	SessionID string       `json:"session_id"`
	Domain    Descriptor   `json:"domain"`
	Rounds    []RoundStats `json:"rounds"`
	BestMove  string       `json:"best_move,omitempty"`
	UpdatedAt time.Time    `json:"updated_at"`
}

// NodeView is a flattened search tree node, used for visualization.
type NodeView struct {
	ID        int     `json:"id"`
	Parent    int     `json:"parent"`
	Action    string  `json:"action,omitempty"`
	Depth     int     `json:"depth"`
	Visits    int     `json:"visits"`
	Value     float64 `json:"value"`
	Principal bool    `json:"principal,omitempty"`
}
