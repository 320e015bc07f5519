// Package config loads the mcts-gen configuration file.
//
// The file is YAML (or JSON when the extension is .json). Every field has a
// default, so a missing file is not an error.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/akuroiwa/mcts-gen/internal/logging"
	"github.com/akuroiwa/mcts-gen/pkg/domain"
	"github.com/akuroiwa/mcts-gen/pkg/mcts"
	"gopkg.in/yaml.v3"
)

// DefaultPath is the config file read when --config is not given.
const DefaultPath = "mcts-gen.yaml"

// Journal backends.
const (
	BackendMemory = "memory"
	BackendFile   = "file"
	BackendRedis  = "redis"
)

// Config is the root of the configuration file.
type Config struct {
	LogLevel string        `yaml:"log_level" json:"log_level"`
	Search   SearchConfig  `yaml:"search" json:"search"`
	Journal  JournalConfig `yaml:"journal" json:"journal"`
	Server   ServerConfig  `yaml:"server" json:"server"`
}

// SearchConfig configures the engine of every session.
type SearchConfig struct {
	Exploration     float64 `yaml:"exploration" json:"exploration"`
	Rollout         string  `yaml:"rollout" json:"rollout"`
	MaxRolloutDepth int     `yaml:"max_rollout_depth" json:"max_rollout_depth"`
	// Seed fixes the random source. Zero seeds from the clock.
	Seed uint64 `yaml:"seed" json:"seed"`
}

// JournalConfig selects where round history is kept.
type JournalConfig struct {
	Backend string      `yaml:"backend" json:"backend"`
	Path    string      `yaml:"path" json:"path"`
	Redis   RedisConfig `yaml:"redis" json:"redis"`
}

// RedisConfig is used when the journal backend is redis.
type RedisConfig struct {
	Addr     string        `yaml:"addr" json:"addr"`
	Password string        `yaml:"password" json:"password"`
	DB       int           `yaml:"db" json:"db"`
	Prefix   string        `yaml:"prefix" json:"prefix"`
	TTL      time.Duration `yaml:"ttl" json:"ttl"`
}

// UnmarshalJSON reads ttl as a Go duration string such as "1h", the form the
// YAML decoder accepts, and falls back to integer nanoseconds.
func (r *RedisConfig) UnmarshalJSON(data []byte) error {
	type plain RedisConfig
	aux := struct {
		*plain
		TTL json.RawMessage `json:"ttl"`
	}{plain: (*plain)(r)}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	if len(aux.TTL) == 0 || string(aux.TTL) == "null" {
		return nil
	}

	var s string
	if err := json.Unmarshal(aux.TTL, &s); err == nil {
		if s == "" {
			r.TTL = 0
			return nil
		}
		d, err := time.ParseDuration(s)
		if err != nil {
			return fmt.Errorf("%w: journal.redis.ttl: %v", domain.ErrInvalidConfiguration, err)
		}
		r.TTL = d
		return nil
	}

	var ns int64
	if err := json.Unmarshal(aux.TTL, &ns); err != nil {
		return fmt.Errorf("%w: journal.redis.ttl must be a duration string: %s", domain.ErrInvalidConfiguration, aux.TTL)
	}
	r.TTL = time.Duration(ns)
	return nil
}

// ServerConfig configures the mcp and serve commands.
type ServerConfig struct {
	Transport string `yaml:"transport" json:"transport"`
	Port      int    `yaml:"port" json:"port"`
	HTTPPort  int    `yaml:"http_port" json:"http_port"`
}

// Default returns the configuration used when no file is present.
func Default() Config {
	return Config{
		LogLevel: "info",
		Search: SearchConfig{
			Exploration: 1.4,
			Rollout:     "random",
		},
		Journal: JournalConfig{
			Backend: BackendMemory,
			Path:    ".mcts-gen/journal",
			Redis: RedisConfig{
				Addr:   "localhost:6379",
				Prefix: "mcts-gen:journal:",
			},
		},
		Server: ServerConfig{
			Transport: "stdio",
			Port:      8080,
			HTTPPort:  8081,
		},
	}
}

// Load reads path over the defaults and validates the result.
// A missing file yields the defaults.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("failed to read config: %w", err)
	}

	if strings.ToLower(filepath.Ext(path)) == ".json" {
		if err := json.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse %s: %w", path, err)
		}
	} else {
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse %s: %w", path, err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Validate reports the first invalid setting, wrapped in ErrInvalidConfiguration.
func (c Config) Validate() error {
	if _, err := logging.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrInvalidConfiguration, err)
	}
	if err := mcts.ValidateExploration(c.Search.Exploration); err != nil {
		return err
	}
	if _, err := mcts.PolicyByName(c.Search.Rollout); err != nil {
		return err
	}
	if c.Search.MaxRolloutDepth < 0 {
		return fmt.Errorf("%w: max_rollout_depth must not be negative", domain.ErrInvalidConfiguration)
	}

	switch c.Journal.Backend {
	case BackendMemory:
	case BackendFile:
		if c.Journal.Path == "" {
			return fmt.Errorf("%w: journal.path is required for the file backend", domain.ErrInvalidConfiguration)
		}
	case BackendRedis:
		if c.Journal.Redis.Addr == "" {
			return fmt.Errorf("%w: journal.redis.addr is required for the redis backend", domain.ErrInvalidConfiguration)
		}
	default:
		return fmt.Errorf("%w: unknown journal backend %q", domain.ErrInvalidConfiguration, c.Journal.Backend)
	}

	switch c.Server.Transport {
	case "stdio", "sse":
	default:
		return fmt.Errorf("%w: unknown transport %q", domain.ErrInvalidConfiguration, c.Server.Transport)
	}
	return nil
}

// EngineOptions translates the search settings into engine options.
func (c Config) EngineOptions() ([]mcts.Option, error) {
	policy, err := mcts.PolicyByName(c.Search.Rollout)
	if err != nil {
		return nil, err
	}
	opts := []mcts.Option{
		mcts.WithRolloutPolicy(policy),
		mcts.WithMaxRolloutDepth(c.Search.MaxRolloutDepth),
	}
	if c.Search.Seed != 0 {
		opts = append(opts, mcts.WithSeed(c.Search.Seed))
	}
	return opts, nil
}
