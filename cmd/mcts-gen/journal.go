package main

import (
	"encoding/json"
	"fmt"
	"text/tabwriter"

	"github.com/akuroiwa/mcts-gen/internal/cli"
	"github.com/akuroiwa/mcts-gen/internal/presentation/tui"
	"github.com/spf13/cobra"
)

var journalCmd = &cobra.Command{
	Use:   "journal",
	Short: "Inspect recorded search sessions",
	Long:  `Lists, inspects and deletes the round history kept by the configured journal backend.`,
}

var journalListCmd = &cobra.Command{
	Use:     "ls",
	Aliases: []string{"list"},
	Short:   "List journaled sessions",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, _, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		store, closeStore, err := cli.OpenJournal(cfg.Journal)
		if err != nil {
			return err
		}
		defer closeStore()

		ids, err := store.List(cmd.Context())
		if err != nil {
			return err
		}

		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "SESSION\tDOMAIN\tROUNDS\tBEST\tUPDATED")
		for _, id := range ids {
			rec, err := store.Load(cmd.Context(), id)
			if err != nil {
				fmt.Fprintf(w, "%s\t?\t?\t?\t%v\n", id, err)
				continue
			}
			fmt.Fprintf(w, "%s\t%s\t%d\t%s\t%s\n", id, rec.Domain.Domain, len(rec.Rounds), rec.BestMove, rec.UpdatedAt.Format("2006-01-02 15:04:05"))
		}
		return w.Flush()
	},
}

var journalInspectCmd = &cobra.Command{
	Use:   "inspect <session-id>",
	Short: "Show the rounds recorded for a session",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, _, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		store, closeStore, err := cli.OpenJournal(cfg.Journal)
		if err != nil {
			return err
		}
		defer closeStore()

		rec, err := store.Load(cmd.Context(), args[0])
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
			enc := json.NewEncoder(out)
			enc.SetIndent("", "  ")
			return enc.Encode(rec)
		}

		o := tui.NewOutput(out)
		fmt.Fprintf(out, "session %s (%s), best move %q\n", rec.SessionID, rec.Domain.Domain, rec.BestMove)
		for _, r := range rec.Rounds {
			fmt.Fprintln(out, tui.FormatRound(o, r))
		}
		return nil
	},
}

var journalRemoveCmd = &cobra.Command{
	Use:     "rm <session-id>...",
	Aliases: []string{"delete"},
	Short:   "Delete journaled sessions",
	Args:    cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, _, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		store, closeStore, err := cli.OpenJournal(cfg.Journal)
		if err != nil {
			return err
		}
		defer closeStore()

		for _, id := range args {
			if err := store.Delete(cmd.Context(), id); err != nil {
				return fmt.Errorf("delete %s: %w", id, err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "deleted %s\n", id)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(journalCmd)
	journalCmd.AddCommand(journalListCmd, journalInspectCmd, journalRemoveCmd)
	journalInspectCmd.Flags().Bool("json", false, "Print the raw record as JSON")
}
