package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/akuroiwa/mcts-gen/internal/logging"
	"github.com/akuroiwa/mcts-gen/pkg/domain"
	"github.com/akuroiwa/mcts-gen/pkg/session"
)

// DefaultExploration is the UCT constant used when a request omits one.
const DefaultExploration = 1.4

// Service adapts a session.Manager to request/response values.
type Service struct {
	manager     *session.Manager
	exploration float64
	logger      *slog.Logger
}

// Option configures the Service.
type Option func(*Service)

// WithExploration sets the default exploration constant.
func WithExploration(c float64) Option {
	return func(s *Service) {
		s.exploration = c
	}
}

// WithLogger configures a logger for the Service.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) {
		s.logger = logger
	}
}

// New creates a Service over manager.
func New(manager *session.Manager, opts ...Option) *Service {
	s := &Service{
		manager:     manager,
		exploration: DefaultExploration,
		logger:      logging.NewNop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Manager returns the underlying session manager.
func (s *Service) Manager() *session.Manager {
	return s.manager
}

func sessionID(id string) string {
	if id == "" {
		return DefaultSessionID
	}
	return id
}

func (s *Service) fail(op, id string, err error) *domain.ErrorBody {
	s.logger.Debug("Request failed", "op", op, "session_id", id, "err", err)
	return domain.NewErrorBody(err)
}

// Reinitialize builds a fresh tree for the requested domain.
func (s *Service) Reinitialize(ctx context.Context, req ReinitializeRequest) ReinitializeResponse {
	id := sessionID(req.SessionID)
	resp := ReinitializeResponse{SessionID: id, Domain: req.Domain}

	name, err := SanitizeInput(req.Domain)
	if err != nil {
		resp.Error = s.fail("reinitialize", id, fmt.Errorf("%w: domain: %w", domain.ErrInvalidConfiguration, err))
		return resp
	}
	resp.Domain = name

	desc := domain.Descriptor{Domain: name, Args: req.Args}
	if err := s.manager.Reinitialize(ctx, id, desc); err != nil {
		resp.Error = s.fail("reinitialize", id, err)
		return resp
	}

	actions, err := s.manager.PossibleActions(id)
	if err != nil {
		resp.Error = s.fail("reinitialize", id, err)
		return resp
	}
	resp.OK = true
	resp.PossibleActions = domain.FormatActions(actions)
	return resp
}

// RunRound runs exactly one search round.
func (s *Service) RunRound(ctx context.Context, req RoundRequest) RoundResponse {
	id := sessionID(req.SessionID)
	resp := RoundResponse{SessionID: id}

	c := s.exploration
	if req.Exploration != nil {
		c = *req.Exploration
	}
	allow, err := sanitizeAll(req.ActionsToExpand)
	if err != nil {
		resp.Error = s.fail("run_round", id, fmt.Errorf("%w: actions_to_expand: %w", domain.ErrInvalidAction, err))
		return resp
	}
	stats, err := s.manager.RunRound(ctx, id, session.RoundOptions{
		Exploration:    c,
		AllowlistNames: allow,
	})
	if err != nil {
		resp.Error = s.fail("run_round", id, err)
		return resp
	}
	resp.SimulationStats = &stats
	return resp
}

// PossibleActions lists the root's legal actions.
func (s *Service) PossibleActions(id string) ActionsResponse {
	id = sessionID(id)
	resp := ActionsResponse{SessionID: id, PossibleActions: []string{}}

	actions, err := s.manager.PossibleActions(id)
	if err != nil {
		resp.Error = s.fail("possible_actions", id, err)
		return resp
	}
	resp.PossibleActions = domain.FormatActions(actions)
	return resp
}

// BestMove returns the most visited root action.
func (s *Service) BestMove(id string) BestMoveResponse {
	id = sessionID(id)
	resp := BestMoveResponse{SessionID: id}

	move, err := s.manager.BestMove(id)
	if err != nil {
		resp.Error = s.fail("best_move", id, err)
		return resp
	}
	resp.BestMove = domain.FormatAction(move)
	return resp
}

// Stats returns a snapshot of the tree.
func (s *Service) Stats(id string) StatsResponse {
	id = sessionID(id)
	resp := StatsResponse{SessionID: id}

	stats, err := s.manager.Stats(id)
	if err != nil {
		resp.Error = s.fail("stats", id, err)
		return resp
	}
	resp.Stats = &stats
	return resp
}

// Domains lists the registered domains.
func (s *Service) Domains() DomainsResponse {
	return DomainsResponse{Domains: s.manager.Domains()}
}

// Sessions lists live sessions.
func (s *Service) Sessions() SessionsResponse {
	return SessionsResponse{Sessions: s.manager.List()}
}

// Delete drops a session and its journal.
func (s *Service) Delete(ctx context.Context, id string) DeleteResponse {
	id = sessionID(id)
	resp := DeleteResponse{SessionID: id}
	if err := s.manager.Delete(ctx, id); err != nil {
		resp.Error = s.fail("delete", id, err)
		return resp
	}
	resp.OK = true
	return resp
}
