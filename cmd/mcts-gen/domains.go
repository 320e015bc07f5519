package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/akuroiwa/mcts-gen/pkg/games"
	"github.com/spf13/cobra"
)

var domainsCmd = &cobra.Command{
	Use:   "domains",
	Short: "List the built-in search domains",
	RunE: func(cmd *cobra.Command, args []string) error {
		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "NAME\tDESCRIPTION")
		for _, e := range games.NewRegistry().List() {
			fmt.Fprintf(w, "%s\t%s\n", e.Name, e.Description)
		}
		return w.Flush()
	},
}

func init() {
	rootCmd.AddCommand(domainsCmd)
}
