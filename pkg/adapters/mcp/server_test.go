package mcp

import (
	"context"
	"encoding/json"
	"strings"
	"testing"

	mctsgen "github.com/akuroiwa/mcts-gen"
	"github.com/akuroiwa/mcts-gen/pkg/domain"
	"github.com/akuroiwa/mcts-gen/pkg/mcts"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer() *Server {
	sim := mctsgen.New(mctsgen.WithEngineOptions(mcts.WithSeed(7)))
	return NewServer(sim.Service)
}

func TestTools_Workflow(t *testing.T) {
	s := newTestServer()
	ctx := context.Background()
	req := mcp.CallToolRequest{}

	round, err := s.handleRunRound(ctx, req, map[string]interface{}{})
	require.NoError(t, err)
	require.NotNil(t, round.Error)
	assert.Equal(t, domain.CodeNotInitialized, round.Error.Code)

	reinit, err := s.handleReinitialize(ctx, req, map[string]interface{}{
		"domain": "nim",
		"args":   `{"stones": 7, "max_take": 2}`,
	})
	require.NoError(t, err)
	require.Nil(t, reinit.Error)
	assert.Equal(t, "default", reinit.SessionID)
	assert.Equal(t, []string{"1", "2"}, reinit.PossibleActions)

	for i := 1; i <= 3; i++ {
		round, err = s.handleRunRound(ctx, req, map[string]interface{}{
			"exploration_constant": 1.0,
			"actions_to_expand":    []interface{}{float64(1)},
		})
		require.NoError(t, err)
		require.Nil(t, round.Error)
		assert.Equal(t, i, round.SimulationStats.Round)
	}

	best, err := s.handleBestMove(ctx, req, map[string]interface{}{})
	require.NoError(t, err)
	assert.Equal(t, "1", best.BestMove)

	stats, err := s.handleStats(ctx, req, map[string]interface{}{})
	require.NoError(t, err)
	assert.Equal(t, 3, stats.Stats.RootVisits)

	actions, err := s.handlePossibleActions(ctx, req, map[string]interface{}{})
	require.NoError(t, err)
	assert.Equal(t, []string{"1", "2"}, actions.PossibleActions)
}

func TestTools_Sessions(t *testing.T) {
	s := newTestServer()
	ctx := context.Background()
	req := mcp.CallToolRequest{}

	_, err := s.handleReinitialize(ctx, req, map[string]interface{}{"domain": "tictactoe", "session_id": "a"})
	require.NoError(t, err)

	round, err := s.handleRunRound(ctx, req, map[string]interface{}{"session_id": "a", "actions_to_expand": `["4"]`})
	require.NoError(t, err)
	require.Nil(t, round.Error)

	other, err := s.handleBestMove(ctx, req, map[string]interface{}{"session_id": "b"})
	require.NoError(t, err)
	assert.Equal(t, domain.CodeNotInitialized, other.Error.Code)

	best, err := s.handleBestMove(ctx, req, map[string]interface{}{"session_id": "a"})
	require.NoError(t, err)
	assert.Equal(t, "4", best.BestMove)
}

func TestTools_InvalidArguments(t *testing.T) {
	s := newTestServer()
	ctx := context.Background()
	req := mcp.CallToolRequest{}

	reinit, err := s.handleReinitialize(ctx, req, map[string]interface{}{"domain": "nim", "args": "{broken"})
	require.NoError(t, err)
	assert.Equal(t, domain.CodeInvalidConfiguration, reinit.Error.Code)

	reinit, err = s.handleReinitialize(ctx, req, map[string]interface{}{"domain": "go"})
	require.NoError(t, err)
	assert.Equal(t, domain.CodeUnknownDomain, reinit.Error.Code)

	_, err = s.handleReinitialize(ctx, req, map[string]interface{}{"domain": "nim"})
	require.NoError(t, err)

	round, err := s.handleRunRound(ctx, req, map[string]interface{}{"actions_to_expand": 42})
	require.NoError(t, err)
	assert.Equal(t, domain.CodeInvalidConfiguration, round.Error.Code)

	round, err = s.handleRunRound(ctx, req, map[string]interface{}{"exploration_constant": 0.0})
	require.NoError(t, err)
	assert.Equal(t, domain.CodeInvalidConfiguration, round.Error.Code)

	round, err = s.handleRunRound(ctx, req, map[string]interface{}{"actions_to_expand": `["9"]`})
	require.NoError(t, err)
	assert.Equal(t, domain.CodeInvalidAction, round.Error.Code)
}

func TestStringListArg(t *testing.T) {
	got, err := stringListArg(`["e2e4", 3]`)
	require.NoError(t, err)
	assert.Equal(t, []string{"e2e4", "3"}, got)

	got, err = stringListArg([]string{"a"})
	require.NoError(t, err)
	assert.Equal(t, []string{"a"}, got)

	got, err = stringListArg("")
	require.NoError(t, err)
	assert.Nil(t, got)

	_, err = stringListArg("not json")
	assert.Error(t, err)
}

func TestPrompt_Workflow(t *testing.T) {
	s := newTestServer()

	req := mcp.GetPromptRequest{}
	req.Params.Arguments = map[string]string{"goal": "test the prompt"}
	result, err := s.handlePrompt(context.Background(), req)
	require.NoError(t, err)
	require.Len(t, result.Messages, 2)

	var full strings.Builder
	for _, msg := range result.Messages {
		assert.Equal(t, mcp.RoleUser, msg.Role)
		text, ok := msg.Content.(mcp.TextContent)
		require.True(t, ok)
		full.WriteString(text.Text)
	}
	content := full.String()
	assert.Contains(t, content, "test the prompt")
	assert.Contains(t, content, "**Phase 1: Investigation**")
	assert.Contains(t, content, "**Phase 2: Initialization**")
	assert.Contains(t, content, "Gather Arguments")
	assert.Contains(t, content, "reinitialize_mcts")
	assert.Contains(t, content, "**Phase 3: Execution**")
	assert.Contains(t, content, "one round at a time")
	assert.Contains(t, content, "get_best_move")

	_, err = s.handlePrompt(context.Background(), mcp.GetPromptRequest{})
	assert.Error(t, err)
}

func TestResource_Domains(t *testing.T) {
	s := newTestServer()

	contents, err := s.readDomains(context.Background(), mcp.ReadResourceRequest{})
	require.NoError(t, err)
	require.Len(t, contents, 1)

	text := contents[0].(mcp.TextResourceContents)
	assert.Equal(t, "mcts://domains", text.URI)

	var body struct {
		Domains []struct {
			Name string `json:"name"`
		} `json:"domains"`
	}
	require.NoError(t, json.Unmarshal([]byte(text.Text), &body))
	names := make([]string, 0, len(body.Domains))
	for _, d := range body.Domains {
		names = append(names, d.Name)
	}
	assert.Equal(t, []string{"chess", "nim", "tictactoe"}, names)
}
