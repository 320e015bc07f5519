package main

import (
	"fmt"
	"strings"

	"github.com/akuroiwa/mcts-gen/internal/presentation/tui"
	"github.com/akuroiwa/mcts-gen/pkg/adapters/mcp"
	"github.com/spf13/cobra"
)

var promptCmd = &cobra.Command{
	Use:   "prompt [goal]",
	Short: "Print the agent workflow prompt",
	Long: `Renders the ` + mcp.PromptName + ` prompt served over MCP, so it can be
reviewed or pasted into agents that do not support MCP prompts.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		goal := strings.Join(args, " ")
		if goal == "" {
			goal = "find the best move"
		}
		intro, detail := mcp.WorkflowPrompt(goal)
		markdown := intro + "\n\n" + detail + "\n"

		out := cmd.OutOrStdout()
		if raw, _ := cmd.Flags().GetBool("raw"); raw || !tui.IsTerminal(out) {
			fmt.Fprint(out, markdown)
			return nil
		}

		rendered, err := tui.NewRenderer()(markdown)
		if err != nil {
			return err
		}
		fmt.Fprint(out, rendered)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(promptCmd)
	promptCmd.Flags().Bool("raw", false, "Print markdown without rendering")
}
