package main

import (
	"encoding/json"
	"fmt"

	"github.com/akuroiwa/mcts-gen/internal/cli"
	"github.com/akuroiwa/mcts-gen/internal/presentation/graph"
	"github.com/akuroiwa/mcts-gen/internal/presentation/tui"
	"github.com/akuroiwa/mcts-gen/pkg/domain"
	"github.com/spf13/cobra"
)

var searchCmd = &cobra.Command{
	Use:   "search <domain>",
	Short: "Run a local search and print the best move",
	Long: `Builds the named domain, runs the requested number of rounds and prints
one line of statistics per round, followed by a summary and the best move.`,
	Example: `  mcts-gen search tictactoe --rounds 500
  mcts-gen search nim --args '{"stones": 15, "max_take": 4}' --seed 7
  mcts-gen search chess --args '{"moves": ["e2e4", "e7e5"]}' --allow g1f3,f1c4`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, logger, err := loadConfig(cmd)
		if err != nil {
			return err
		}

		if cmd.Flags().Changed("seed") {
			cfg.Search.Seed, _ = cmd.Flags().GetUint64("seed")
		}
		if cmd.Flags().Changed("exploration") {
			cfg.Search.Exploration, _ = cmd.Flags().GetFloat64("exploration")
		}

		var domainArgs map[string]any
		if raw, _ := cmd.Flags().GetString("args"); raw != "" {
			if err := json.Unmarshal([]byte(raw), &domainArgs); err != nil {
				return fmt.Errorf("invalid --args: %w", err)
			}
		}

		sim, closeJournal, err := cli.NewSimulator(cfg, logger)
		if err != nil {
			return err
		}
		defer closeJournal()

		rounds, _ := cmd.Flags().GetInt("rounds")
		allow, _ := cmd.Flags().GetStringSlice("allow")
		session, _ := cmd.Flags().GetString("session")
		quiet, _ := cmd.Flags().GetBool("quiet")
		mermaid, _ := cmd.Flags().GetInt("mermaid")

		out := cmd.OutOrStdout()
		if !quiet && tui.IsTerminal(out) {
			tui.PrintBanner(out)
		}

		sc := cli.NewSignalContext(cmd.Context())
		defer sc.Cancel()

		result, err := cli.RunSearch(sc, sim, cli.SearchOptions{
			SessionID:   session,
			Domain:      domain.Descriptor{Domain: args[0], Args: domainArgs},
			Rounds:      rounds,
			Exploration: cfg.Search.Exploration,
			Allow:       allow,
			Quiet:       quiet,
		}, out)
		if err != nil {
			return err
		}

		o := tui.NewOutput(out)
		if !quiet {
			fmt.Fprintln(out)
			fmt.Fprint(out, tui.FormatTree(o, result.Stats))
		}
		if result.BestMove == "" {
			fmt.Fprintln(out, "best move: none")
		} else {
			fmt.Fprintf(out, "best move: %s\n", result.BestMove)
		}

		if mermaid > 0 {
			nodes, err := sim.Manager.Snapshot(result.SessionID, mermaid)
			if err != nil {
				return err
			}
			fmt.Fprintln(out)
			fmt.Fprint(out, graph.GenerateMermaid(nodes))
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(searchCmd)

	searchCmd.Flags().String("args", "", "JSON object of domain arguments")
	searchCmd.Flags().IntP("rounds", "n", 200, "Number of rounds to run")
	searchCmd.Flags().Float64P("exploration", "c", 1.4, "UCT exploration constant")
	searchCmd.Flags().StringSlice("allow", nil, "Actions allowed for expansion (default: all)")
	searchCmd.Flags().Uint64("seed", 0, "Random seed (0 seeds from the clock)")
	searchCmd.Flags().String("session", "search", "Session ID used for the journal")
	searchCmd.Flags().BoolP("quiet", "q", false, "Only print the best move")
	searchCmd.Flags().Int("mermaid", 0, "Print a Mermaid diagram of the tree down to this depth")
}
