package main

import (
	"fmt"
	"strings"

	mctsgen "github.com/akuroiwa/mcts-gen"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of mcts-gen",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "mcts-gen version %s\n", strings.TrimSpace(mctsgen.Version))
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
