package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/akuroiwa/mcts-gen/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoad_YAML(t *testing.T) {
	path := writeFile(t, "mcts-gen.yaml", `
log_level: debug
search:
  exploration: 0.7
  rollout: first
  max_rollout_depth: 40
  seed: 42
journal:
  backend: redis
  redis:
    addr: "redis:6379"
    db: 2
    ttl: 1h
server:
  transport: sse
  port: 9000
`)
	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, 0.7, cfg.Search.Exploration)
	assert.Equal(t, "first", cfg.Search.Rollout)
	assert.Equal(t, 40, cfg.Search.MaxRolloutDepth)
	assert.Equal(t, uint64(42), cfg.Search.Seed)
	assert.Equal(t, BackendRedis, cfg.Journal.Backend)
	assert.Equal(t, "redis:6379", cfg.Journal.Redis.Addr)
	assert.Equal(t, 2, cfg.Journal.Redis.DB)
	assert.Equal(t, time.Hour, cfg.Journal.Redis.TTL)
	// Unset keys keep their defaults.
	assert.Equal(t, "mcts-gen:journal:", cfg.Journal.Redis.Prefix)
	assert.Equal(t, 8081, cfg.Server.HTTPPort)
	assert.Equal(t, 9000, cfg.Server.Port)

	opts, err := cfg.EngineOptions()
	require.NoError(t, err)
	assert.Len(t, opts, 3)
}

func TestLoad_JSON(t *testing.T) {
	path := writeFile(t, "config.json", `{"journal": {"backend": "file", "path": "/tmp/j"}}`)
	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, BackendFile, cfg.Journal.Backend)
	assert.Equal(t, "/tmp/j", cfg.Journal.Path)
}

func TestLoad_JSONRedisTTL(t *testing.T) {
	tests := []struct {
		name string
		ttl  string
		want time.Duration
	}{
		{"duration string", `"1h30m"`, 90 * time.Minute},
		{"empty string", `""`, 0},
		{"nanoseconds", `5000000000`, 5 * time.Second},
		{"null", `null`, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeFile(t, "config.json", `{"journal": {"backend": "redis", "redis": {"addr": "cache:6379", "ttl": `+tt.ttl+`}}}`)
			cfg, err := Load(path)
			require.NoError(t, err)
			assert.Equal(t, tt.want, cfg.Journal.Redis.TTL)
			assert.Equal(t, "cache:6379", cfg.Journal.Redis.Addr)
			assert.Equal(t, "mcts-gen:journal:", cfg.Journal.Redis.Prefix)
		})
	}

	for _, bad := range []string{`"soon"`, `true`} {
		_, err := Load(writeFile(t, "bad.json", `{"journal": {"redis": {"ttl": `+bad+`}}}`))
		assert.ErrorIs(t, err, domain.ErrInvalidConfiguration, bad)
	}
}

func TestLoad_Invalid(t *testing.T) {
	cases := map[string]string{
		"exploration": "search:\n  exploration: -1\n",
		"rollout":     "search:\n  rollout: greedy\n",
		"depth":       "search:\n  max_rollout_depth: -3\n",
		"backend":     "journal:\n  backend: postgres\n",
		"transport":   "server:\n  transport: websocket\n",
		"log level":   "log_level: loud\n",
	}
	for name, content := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := Load(writeFile(t, "bad.yaml", content))
			assert.ErrorIs(t, err, domain.ErrInvalidConfiguration)
		})
	}

	_, err := Load(writeFile(t, "broken.yaml", "search: [unclosed"))
	assert.Error(t, err)
}

func TestEngineOptions_NoSeed(t *testing.T) {
	opts, err := Default().EngineOptions()
	require.NoError(t, err)
	assert.Len(t, opts, 2)
}
