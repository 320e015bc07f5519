package session

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/akuroiwa/mcts-gen/internal/logging"
	"github.com/akuroiwa/mcts-gen/pkg/domain"
	"github.com/akuroiwa/mcts-gen/pkg/mcts"
	"github.com/akuroiwa/mcts-gen/pkg/ports"
)

// RoundOptions are the per-round parameters supplied by the caller.
type RoundOptions struct {
	// Exploration is the UCT constant. It must be positive and finite.
	Exploration float64
	// Allowlist restricts which actions may be expanded this round.
	Allowlist []domain.Action
	// AllowlistNames is resolved against the root's legal actions by their
	// text form and appended to Allowlist.
	AllowlistNames []string
}

// Session is one search over one domain. The zero value is not usable; use New.
type Session struct {
	mu sync.Mutex

	id         string
	engine     *mcts.Engine
	engineOpts []mcts.Option
	tree       *mcts.Tree
	desc       domain.Descriptor
	tracker    improvementTracker
	rounds     []domain.RoundStats

	journal ports.JournalStore
	hooks   domain.Hooks
	logger  *slog.Logger
}

// Option configures a Session.
type Option func(*Session)

// WithLogger configures a logger for the Session.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Session) {
		s.logger = logger
	}
}

// WithHooks registers lifecycle callbacks.
func WithHooks(h domain.Hooks) Option {
	return func(s *Session) {
		s.hooks = h
	}
}

// WithJournal persists a record after every reinitialize and round.
func WithJournal(j ports.JournalStore) Option {
	return func(s *Session) {
		s.journal = j
	}
}

// WithEngineOptions configures the engine each session creates for itself.
func WithEngineOptions(opts ...mcts.Option) Option {
	return func(s *Session) {
		s.engineOpts = append(s.engineOpts, opts...)
	}
}

// New creates an uninitialized session.
func New(id string, opts ...Option) *Session {
	s := &Session{
		id:     id,
		logger: logging.NewNop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.engine = mcts.NewEngine(s.engineOpts...)
	return s
}

// ID returns the session identifier.
func (s *Session) ID() string {
	return s.id
}

// Reinitialize drops the current tree and starts a new one rooted at state.
func (s *Session) Reinitialize(ctx context.Context, desc domain.Descriptor, state domain.State) error {
	if state == nil {
		return fmt.Errorf("%w: nil root state", domain.ErrInvalidConfiguration)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.tree = mcts.NewTree(state)
	s.desc = desc
	s.tracker.reset()
	s.rounds = nil

	actions := len(s.tree.Root().Untried())
	s.logger.Debug("Session reinitialized", "session_id", s.id, "domain", desc.Domain, "actions", actions)
	if s.hooks.OnReinitialize != nil {
		s.hooks.OnReinitialize(domain.ReinitializeEvent{SessionID: s.id, Domain: desc.Domain, Actions: actions})
	}
	s.persist(ctx)
	return nil
}

// RunRound executes exactly one search round and reports how the best value
// moved compared to the previous round.
func (s *Session) RunRound(ctx context.Context, opts RoundOptions) (domain.RoundStats, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	stats, err := s.runRound(opts)
	if err != nil {
		s.logger.Warn("Round failed", "session_id", s.id, "err", err)
		if s.hooks.OnError != nil {
			s.hooks.OnError(s.id, "run_round", err)
		}
		return domain.RoundStats{}, err
	}
	s.persist(ctx)
	return stats, nil
}

func (s *Session) runRound(opts RoundOptions) (domain.RoundStats, error) {
	if s.tree == nil {
		return domain.RoundStats{}, domain.ErrNotInitialized
	}
	if err := mcts.ValidateExploration(opts.Exploration); err != nil {
		return domain.RoundStats{}, err
	}

	allow := opts.Allowlist
	if len(opts.AllowlistNames) > 0 {
		named, err := domain.ParseActions(s.tree.Root().State, opts.AllowlistNames)
		if err != nil {
			return domain.RoundStats{}, err
		}
		allow = append(append([]domain.Action(nil), allow...), named...)
	}

	start := time.Now()
	if err := s.engine.Round(s.tree, opts.Exploration, allow); err != nil {
		return domain.RoundStats{}, err
	}

	best := s.bestValue()
	stats := domain.RoundStats{
		Round:       len(s.rounds) + 1,
		Improvement: s.tracker.observe(best),
		BestValue:   best,
		RootVisits:  s.tree.Root().Visits,
	}
	s.rounds = append(s.rounds, stats)

	elapsed := time.Since(start)
	s.logger.Debug("Round complete",
		"session_id", s.id,
		"round", stats.Round,
		"improvement", stats.Improvement,
		"best_value", stats.BestValue,
		"duration", elapsed,
	)
	if s.hooks.OnRound != nil {
		s.hooks.OnRound(domain.RoundEvent{
			SessionID: s.id,
			Domain:    s.desc.Domain,
			Stats:     stats,
			TreeSize:  s.tree.Len(),
			Duration:  elapsed,
		})
	}
	return stats, nil
}

// bestValue is the mean reward of the highest-value root child, or 0.
func (s *Session) bestValue() float64 {
	i, ok := s.tree.BestChild(0, mcts.HighestValue)
	if !ok {
		return 0
	}
	return s.tree.Node(i).Value()
}

// BestMove returns the action of the most visited root child.
func (s *Session) BestMove() (domain.Action, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.bestMove()
}

func (s *Session) bestMove() (domain.Action, error) {
	if s.tree == nil {
		return nil, domain.ErrNotInitialized
	}
	i, ok := s.tree.BestChild(0, mcts.MostVisited)
	if !ok {
		return nil, domain.ErrNoMovesAvailable
	}
	return s.tree.Node(i).Action, nil
}

// PossibleActions returns the legal actions of the root state.
func (s *Session) PossibleActions() ([]domain.Action, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.tree == nil {
		return nil, domain.ErrNotInitialized
	}
	return s.tree.Root().State.LegalActions(), nil
}

// Stats returns a snapshot of the current tree.
func (s *Session) Stats() (domain.TreeStats, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.tree == nil {
		return domain.TreeStats{}, domain.ErrNotInitialized
	}

	root := s.tree.Root()
	stats := domain.TreeStats{
		Round:              len(s.rounds),
		RootVisits:         root.Visits,
		TreeSize:           s.tree.Len(),
		BestValue:          s.bestValue(),
		MaxDepth:           s.tree.MaxDepth(),
		PrincipalVariation: domain.FormatActions(s.tree.PrincipalVariation()),
		Children:           []domain.ChildStats{},
	}
	for _, ci := range s.tree.Children(0) {
		child := s.tree.Node(ci)
		stats.Children = append(stats.Children, domain.ChildStats{
			Action: domain.FormatAction(child.Action),
			Visits: child.Visits,
			Value:  child.Value(),
		})
	}
	if sum, ok := root.State.(domain.Summarizer); ok {
		stats.Summary = sum.Summary()
	}
	return stats, nil
}

// Snapshot flattens the tree breadth first, down to maxDepth plies below the
// root. A maxDepth of zero or less includes every node. Nodes on the
// principal variation are marked.
func (s *Session) Snapshot(maxDepth int) ([]domain.NodeView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.tree == nil {
		return nil, domain.ErrNotInitialized
	}

	principal := map[int]bool{0: true}
	for i := 0; ; {
		next, ok := s.tree.BestChild(i, mcts.MostVisited)
		if !ok {
			break
		}
		principal[next] = true
		i = next
	}

	var out []domain.NodeView
	queue := []int{0}
	for len(queue) > 0 {
		i := queue[0]
		queue = queue[1:]
		n := s.tree.Node(i)
		view := domain.NodeView{
			ID:        i,
			Parent:    n.Parent,
			Depth:     n.Depth,
			Visits:    n.Visits,
			Value:     n.Value(),
			Principal: principal[i],
		}
		if i != 0 {
			view.Action = domain.FormatAction(n.Action)
		}
		out = append(out, view)
		if maxDepth <= 0 || n.Depth < maxDepth {
			queue = append(queue, s.tree.Children(i)...)
		}
	}
	return out, nil
}

// Descriptor returns the domain the current tree was built from.
func (s *Session) Descriptor() domain.Descriptor {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.desc
}

// Record returns the journal entry describing this session.
func (s *Session) Record() *domain.Record {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.record()
}

func (s *Session) record() *domain.Record {
	r := &domain.Record{
		SessionID: s.id,
		Domain:    s.desc,
		Rounds:    append([]domain.RoundStats(nil), s.rounds...),
		UpdatedAt: time.Now().UTC(),
	}
	if a, err := s.bestMove(); err == nil {
		r.BestMove = domain.FormatAction(a)
	}
	return r
}

// persist writes the journal record. A journal failure never undoes a
// committed round; it is logged and reported through OnError.
func (s *Session) persist(ctx context.Context) {
	if s.journal == nil {
		return
	}
	if err := s.journal.Save(ctx, s.id, s.record()); err != nil {
		s.logger.Warn("Failed to write journal", "session_id", s.id, "err", err)
		if s.hooks.OnError != nil {
			s.hooks.OnError(s.id, "journal", err)
		}
	}
}
