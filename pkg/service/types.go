package service

import (
	"github.com/akuroiwa/mcts-gen/pkg/domain"
	"github.com/akuroiwa/mcts-gen/pkg/registry"
)

// DefaultSessionID is used when a request does not name a session.
const DefaultSessionID = "default"

// ReinitializeRequest selects a domain and builds a fresh tree for a session.
type ReinitializeRequest struct {
	SessionID string         `json:"session_id,omitempty"`
	Domain    string         `json:"domain"`
	Args      map[string]any `json:"args,omitempty"`
}

// ReinitializeResponse reports the new root.
type ReinitializeResponse struct {
	OK              bool              `json:"ok"`
	SessionID       string            `json:"session_id"`
	Domain          string            `json:"domain,omitempty"`
	PossibleActions []string          `json:"possible_actions,omitempty"`
	Error           *domain.ErrorBody `json:"error,omitempty"`
}

// RoundRequest runs one round. A nil Exploration uses the configured default.
type RoundRequest struct {
	SessionID       string   `json:"session_id,omitempty"`
	Exploration     *float64 `json:"exploration_constant,omitempty"`
	ActionsToExpand []string `json:"actions_to_expand,omitempty"`
}

// RoundResponse carries the statistics of the round.
type RoundResponse struct {
	SessionID       string             `json:"session_id"`
	SimulationStats *domain.RoundStats `json:"simulation_stats,omitempty"`
	Error           *domain.ErrorBody  `json:"error,omitempty"`
}

// ActionsResponse lists the legal actions at the root.
type ActionsResponse struct {
	SessionID       string            `json:"session_id"`
	PossibleActions []string          `json:"possible_actions"`
	Error           *domain.ErrorBody `json:"error,omitempty"`
}

// BestMoveResponse names the most visited root action.
type BestMoveResponse struct {
	SessionID string            `json:"session_id"`
	BestMove  string            `json:"best_move,omitempty"`
	Error     *domain.ErrorBody `json:"error,omitempty"`
}

// StatsResponse is a snapshot of the tree.
type StatsResponse struct {
	SessionID string            `json:"session_id"`
	Stats     *domain.TreeStats `json:"stats,omitempty"`
	Error     *domain.ErrorBody `json:"error,omitempty"`
}

// DomainsResponse lists registered domains.
type DomainsResponse struct {
	Domains []registry.Entry `json:"domains"`
}

// SessionsResponse lists live sessions.
type SessionsResponse struct {
	Sessions []string `json:"sessions"`
}

// DeleteResponse acknowledges a deleted session.
type DeleteResponse struct {
	OK        bool              `json:"ok"`
	SessionID string            `json:"session_id"`
	Error     *domain.ErrorBody `json:"error,omitempty"`
}
