package mctsgen

import (
	"log/slog"

	"github.com/akuroiwa/mcts-gen/internal/logging"
	"github.com/akuroiwa/mcts-gen/pkg/domain"
	"github.com/akuroiwa/mcts-gen/pkg/games"
	"github.com/akuroiwa/mcts-gen/pkg/mcts"
	"github.com/akuroiwa/mcts-gen/pkg/observability"
	"github.com/akuroiwa/mcts-gen/pkg/ports"
	"github.com/akuroiwa/mcts-gen/pkg/registry"
	"github.com/akuroiwa/mcts-gen/pkg/service"
	"github.com/akuroiwa/mcts-gen/pkg/session"
)

// Simulator is the high-level entry point of the library.
// It wires a domain registry, a session manager and the request/response
// service that every transport uses.
type Simulator struct {
	Registry *registry.Registry
	Manager  *session.Manager
	Service  *service.Service
	Metrics  *observability.Metrics

	journal     ports.JournalStore
	hooks       []domain.Hooks
	engineOpts  []mcts.Option
	exploration float64
	logger      *slog.Logger
}

// Option defines a functional option for configuring the Simulator.
type Option func(*Simulator)

// WithLogger sets a custom structured logger.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Simulator) {
		s.logger = logger
	}
}

// WithRegistry replaces the built-in domain registry.
func WithRegistry(r *registry.Registry) Option {
	return func(s *Simulator) {
		s.Registry = r
	}
}

// WithJournal records round history for every session.
func WithJournal(j ports.JournalStore) Option {
	return func(s *Simulator) {
		s.journal = j
	}
}

// WithMetrics records Prometheus metrics for every session.
func WithMetrics(m *observability.Metrics) Option {
	return func(s *Simulator) {
		s.Metrics = m
	}
}

// WithHooks registers additional lifecycle hooks.
func WithHooks(h domain.Hooks) Option {
	return func(s *Simulator) {
		s.hooks = append(s.hooks, h)
	}
}

// WithEngineOptions configures the engine of every session.
func WithEngineOptions(opts ...mcts.Option) Option {
	return func(s *Simulator) {
		s.engineOpts = append(s.engineOpts, opts...)
	}
}

// WithExploration sets the exploration constant used when a round request omits one.
func WithExploration(c float64) Option {
	return func(s *Simulator) {
		s.exploration = c
	}
}

// New creates a Simulator. Without options it serves the built-in domains,
// keeps no journal and logs nothing.
func New(opts ...Option) *Simulator {
	s := &Simulator{exploration: service.DefaultExploration}
	for _, opt := range opts {
		opt(s)
	}
	if s.logger == nil {
		s.logger = logging.NewNop()
	}
	if s.Registry == nil {
		s.Registry = games.NewRegistry()
	}

	hooks := s.hooks
	if s.Metrics != nil {
		hooks = append([]domain.Hooks{s.Metrics.Hooks()}, hooks...)
	}

	sessionOpts := []session.Option{
		session.WithLogger(s.logger),
		session.WithEngineOptions(s.engineOpts...),
		session.WithHooks(observability.ChainHooks(hooks...)),
	}
	if s.journal != nil {
		sessionOpts = append(sessionOpts, session.WithJournal(s.journal))
	}

	s.Manager = session.NewManager(s.Registry, sessionOpts...)
	s.Service = service.New(s.Manager,
		service.WithExploration(s.exploration),
		service.WithLogger(s.logger),
	)
	return s
}
