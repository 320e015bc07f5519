package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	mctsgen "github.com/akuroiwa/mcts-gen"
	"github.com/akuroiwa/mcts-gen/internal/cli"
	httpAdapter "github.com/akuroiwa/mcts-gen/pkg/adapters/http"
	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API server",
	Long: `Starts the search engine behind a JSON API over HTTP.
Sessions are addressed by ID under /sessions, round events stream over SSE
and Prometheus metrics are served on /metrics.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, logger, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		if cmd.Flags().Changed("port") {
			cfg.Server.HTTPPort, _ = cmd.Flags().GetInt("port")
		}

		streams := httpAdapter.NewStreamManager()
		sim, closeJournal, err := cli.NewSimulator(cfg, logger, mctsgen.WithHooks(streams.Hooks()))
		if err != nil {
			return err
		}
		defer closeJournal()

		handler := httpAdapter.NewHandler(sim.Service,
			httpAdapter.WithStreams(streams),
			httpAdapter.WithMetricsHandler(sim.Metrics.Handler()),
		)

		srv := &http.Server{
			Addr:    fmt.Sprintf(":%d", cfg.Server.HTTPPort),
			Handler: handler,
		}

		// Channel to listen for errors coming from the listener.
		serverErrors := make(chan error, 1)

		go func() {
			logger.Info("Starting mcts-gen HTTP Server", "address", srv.Addr, "journal", cfg.Journal.Backend)
			serverErrors <- srv.ListenAndServe()
		}()

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		// Blocking main and waiting for shutdown.
		select {
		case err := <-serverErrors:
			if errors.Is(err, http.ErrServerClosed) {
				return nil
			}
			return fmt.Errorf("server error: %w", err)

		case <-ctx.Done():
			logger.Info("Shutdown signal received")

			// Give outstanding requests a deadline for completion.
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()

			if err := srv.Shutdown(shutdownCtx); err != nil {
				logger.Warn("Graceful shutdown did not complete", "timeout", 5*time.Second, "err", err)
				if err := srv.Close(); err != nil {
					return fmt.Errorf("error killing server: %w", err)
				}
			}
			logger.Info("HTTP Server stopped gracefully")
			return nil
		}
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().IntP("port", "p", 8081, "Port to listen on")
}
