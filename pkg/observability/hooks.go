package observability

import (
	"log/slog"

	"github.com/akuroiwa/mcts-gen/pkg/domain"
)

// LogHooks logs every lifecycle event at Info level.
func LogHooks(logger *slog.Logger) domain.Hooks {
	return domain.Hooks{
		OnReinitialize: func(e domain.ReinitializeEvent) {
			logger.Info("session_reinitialized",
				"session_id", e.SessionID,
				"domain", e.Domain,
				"actions", e.Actions,
			)
		},
		OnRound: func(e domain.RoundEvent) {
			logger.Info("round",
				"session_id", e.SessionID,
				"round", e.Stats.Round,
				"improvement", e.Stats.Improvement.String(),
				"best_value", e.Stats.BestValue,
				"root_visits", e.Stats.RootVisits,
				"tree_size", e.TreeSize,
				"duration", e.Duration,
			)
		},
		OnError: func(sessionID, op string, err error) {
			logger.Warn("operation_failed", "session_id", sessionID, "op", op, "err", err)
		},
		OnDelete: func(sessionID string) {
			logger.Info("session_deleted", "session_id", sessionID)
		},
	}
}

// ChainHooks calls each set of hooks in order.
func ChainHooks(all ...domain.Hooks) domain.Hooks {
	return domain.Hooks{
		OnReinitialize: func(e domain.ReinitializeEvent) {
			for _, h := range all {
				if h.OnReinitialize != nil {
					h.OnReinitialize(e)
				}
			}
		},
		OnRound: func(e domain.RoundEvent) {
			for _, h := range all {
				if h.OnRound != nil {
					h.OnRound(e)
				}
			}
		},
		OnError: func(sessionID, op string, err error) {
			for _, h := range all {
				if h.OnError != nil {
					h.OnError(sessionID, op, err)
				}
			}
		},
		OnDelete: func(sessionID string) {
			for _, h := range all {
				if h.OnDelete != nil {
					h.OnDelete(sessionID)
				}
			}
		},
	}
}
