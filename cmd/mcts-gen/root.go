package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/akuroiwa/mcts-gen/internal/cli"
	"github.com/akuroiwa/mcts-gen/internal/config"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "mcts-gen",
	Short: "mcts-gen is a Monte Carlo Tree Search engine driven one round at a time",
	Long: `mcts-gen runs Monte Carlo Tree Search over pluggable game domains.
An external driver, usually an AI agent over MCP, runs the search one round
at a time and can restrict which moves are expanded.`,
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	// Persistent flags (available to all commands)
	rootCmd.PersistentFlags().String("config", config.DefaultPath, "Path to the configuration file")
	rootCmd.PersistentFlags().String("log-level", "", "Log level (debug, info, warn, error); overrides the config file")
}

// loadConfig reads the config file and applies persistent flag overrides.
func loadConfig(cmd *cobra.Command) (config.Config, *slog.Logger, error) {
	path, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(path)
	if err != nil {
		return cfg, nil, err
	}
	if level, _ := cmd.Flags().GetString("log-level"); level != "" {
		cfg.LogLevel = level
	}
	logger, err := cli.NewLogger(cfg.LogLevel)
	if err != nil {
		return cfg, nil, err
	}
	slog.SetDefault(logger)
	return cfg, logger, nil
}
