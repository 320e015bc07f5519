package cli

import (
	"fmt"
	"log/slog"

	mctsgen "github.com/akuroiwa/mcts-gen"
	"github.com/akuroiwa/mcts-gen/internal/adapters/file"
	"github.com/akuroiwa/mcts-gen/internal/config"
	"github.com/akuroiwa/mcts-gen/internal/logging"
	"github.com/akuroiwa/mcts-gen/pkg/adapters/memory"
	"github.com/akuroiwa/mcts-gen/pkg/adapters/redis"
	"github.com/akuroiwa/mcts-gen/pkg/observability"
	"github.com/akuroiwa/mcts-gen/pkg/ports"
)

// NewLogger builds the application logger for a level name.
func NewLogger(level string) (*slog.Logger, error) {
	lvl, err := logging.ParseLevel(level)
	if err != nil {
		return nil, err
	}
	return logging.New(lvl), nil
}

// OpenJournal creates the journal store selected by cfg.
// The returned close function releases backend connections.
func OpenJournal(cfg config.JournalConfig) (ports.JournalStore, func() error, error) {
	noop := func() error { return nil }

	switch cfg.Backend {
	case "", config.BackendMemory:
		return memory.NewStore(), noop, nil
	case config.BackendFile:
		return file.New(cfg.Path), noop, nil
	case config.BackendRedis:
		opts := []redis.Option{redis.WithPrefix(cfg.Redis.Prefix)}
		if cfg.Redis.TTL > 0 {
			opts = append(opts, redis.WithTTL(cfg.Redis.TTL))
		}
		store := redis.New(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB, opts...)
		return store, store.Close, nil
	default:
		return nil, noop, fmt.Errorf("unknown journal backend %q", cfg.Backend)
	}
}

// NewSimulator wires a Simulator from cfg with standard CLI conventions:
// a journal, Prometheus metrics and debug logging of every round.
func NewSimulator(cfg config.Config, logger *slog.Logger, extra ...mctsgen.Option) (*mctsgen.Simulator, func() error, error) {
	engineOpts, err := cfg.EngineOptions()
	if err != nil {
		return nil, nil, err
	}

	journal, closeJournal, err := OpenJournal(cfg.Journal)
	if err != nil {
		return nil, nil, err
	}

	opts := []mctsgen.Option{
		mctsgen.WithLogger(logger),
		mctsgen.WithJournal(journal),
		mctsgen.WithMetrics(observability.NewMetrics()),
		mctsgen.WithHooks(observability.LogHooks(logger)),
		mctsgen.WithEngineOptions(engineOpts...),
		mctsgen.WithExploration(cfg.Search.Exploration),
	}
	opts = append(opts, extra...)

	return mctsgen.New(opts...), closeJournal, nil
}
