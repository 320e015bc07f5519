package main

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	mctsgen "github.com/akuroiwa/mcts-gen"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, args ...string) string {
	t.Helper()
	var buf bytes.Buffer
	rootCmd.SetOut(&buf)
	rootCmd.SetErr(&buf)
	rootCmd.SetArgs(append(args, "--config", filepath.Join(t.TempDir(), "none.yaml")))
	require.NoError(t, rootCmd.Execute())
	return buf.String()
}

func TestVersionCommand(t *testing.T) {
	out := run(t, "version")
	assert.Equal(t, "mcts-gen version "+strings.TrimSpace(mctsgen.Version)+"\n", out)
}

func TestDomainsCommand(t *testing.T) {
	out := run(t, "domains")
	assert.Contains(t, out, "chess")
	assert.Contains(t, out, "nim")
	assert.Contains(t, out, "tictactoe")
}

func TestPromptCommand(t *testing.T) {
	out := run(t, "prompt", "win", "at", "nim")
	assert.Contains(t, out, "Task: win at nim")
	assert.Contains(t, out, "**Phase 3: Execution**")
}

func TestSearchCommand(t *testing.T) {
	out := run(t, "search", "tictactoe", "--rounds", "5", "--seed", "3", "--allow", "4", "--mermaid", "1", "--log-level", "error")
	assert.Contains(t, out, "round    5")
	assert.Contains(t, out, "best move: 4")
	assert.Contains(t, out, "n0 -- \"4\" --> n1")
}

func TestSearchCommand_EmptySessionUsesDefault(t *testing.T) {
	out := run(t, "search", "tictactoe", "--rounds", "3", "--session", "", "--mermaid", "1", "--log-level", "error")
	assert.Contains(t, out, "n0((\"root <br/> n=3\"))")
}
