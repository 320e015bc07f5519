package mcp

import (
	"context"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
)

// PromptName is the name of the built-in agent workflow prompt.
const PromptName = "mcts_autonomous_search"

var workflow = []string{
	"**Phase 1: Investigation**",
	"1. **Identify the Domain**: Based on the user's request (e.g. 'chess', 'nim'), call `list_domains` and pick the matching domain name.",
	"2. **Inspect the Domain Arguments**: Read the description of the chosen domain to learn which arguments it accepts and their defaults.",
	"3. **Plan the Starting Position**: Decide whether the search starts from the initial position or from a sequence of moves.",
	"\n**Phase 2: Initialization**",
	"4. **Gather Arguments**: If the domain needs arguments the user has not given (like `moves` for `chess`), ask for them. Otherwise proceed directly.",
	"5. **Initialize Simulation**: Call the `reinitialize_mcts` tool with `domain` and, when needed, `args` as a JSON object (e.g. `{\"stones\": 12, \"max_take\": 3}`). Check `possible_actions` in the result.",
	"\n**Phase 3: Execution**",
	"6. **Execute Search Rounds**: Call the `run_mcts_round` tool **one round at a time**. Use `actions_to_expand` to focus the search on the moves you consider promising.",
	"7. **Analyze and Repeat**: After each round, examine the `simulation_stats` output. Continue until the `improvement` value is consistently low or zero, or until you have run a sufficient number of rounds (e.g. 10-20). **Do not call the tool multiple times in a single turn.**",
	"8. **Get Final Result**: Call `get_best_move` to retrieve the best move found, and `get_stats` for the principal variation.",
}

// WorkflowPrompt returns the two prompt messages for goal: the role
// statement and the step by step workflow.
func WorkflowPrompt(goal string) (intro, detail string) {
	intro = fmt.Sprintf("You are an autonomous MCTS strategist. Your goal is to find the optimal move. Task: %s", goal)
	return intro, strings.Join(workflow, "\n")
}

func (s *Server) registerPrompts() {
	s.mcpServer.AddPrompt(mcp.NewPrompt(PromptName,
		mcp.WithPromptDescription("Autonomous MCTS strategist workflow"),
		mcp.WithArgument("goal",
			mcp.ArgumentDescription("What the search should achieve"),
			mcp.RequiredArgument(),
		),
	), s.handlePrompt)
}

func (s *Server) handlePrompt(ctx context.Context, request mcp.GetPromptRequest) (*mcp.GetPromptResult, error) {
	goal := request.Params.Arguments["goal"]
	if goal == "" {
		return nil, fmt.Errorf("missing required argument: goal")
	}
	intro, detail := WorkflowPrompt(goal)
	return mcp.NewGetPromptResult("Autonomous MCTS strategist workflow", []mcp.PromptMessage{
		mcp.NewPromptMessage(mcp.RoleUser, mcp.NewTextContent(intro)),
		mcp.NewPromptMessage(mcp.RoleUser, mcp.NewTextContent(detail)),
	}), nil
}
