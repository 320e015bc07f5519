package cli

import (
	"context"
	"errors"
	"fmt"
	"io"

	mctsgen "github.com/akuroiwa/mcts-gen"
	"github.com/akuroiwa/mcts-gen/internal/presentation/tui"
	"github.com/akuroiwa/mcts-gen/pkg/domain"
	"github.com/akuroiwa/mcts-gen/pkg/session"
)

// SearchOptions configures a local search run.
type SearchOptions struct {
	SessionID   string
	Domain      domain.Descriptor
	Rounds      int
	Exploration float64
	Allow       []string
	// Quiet suppresses the per round lines.
	Quiet bool
}

// SearchResult is the outcome of RunSearch.
type SearchResult struct {
	// SessionID is the session the search ran in, after defaults.
	SessionID string
	BestMove  string
	Stats     domain.TreeStats
}

// RunSearch drives sim through opts.Rounds rounds, printing a line per round
// to w. Cancelling ctx stops the loop early and still reports the best move.
func RunSearch(ctx context.Context, sim *mctsgen.Simulator, opts SearchOptions, w io.Writer) (SearchResult, error) {
	if opts.Rounds <= 0 {
		return SearchResult{}, fmt.Errorf("%w: rounds must be positive", domain.ErrInvalidConfiguration)
	}
	if opts.SessionID == "" {
		opts.SessionID = "search"
	}

	m := sim.Manager
	if err := m.Reinitialize(ctx, opts.SessionID, opts.Domain); err != nil {
		return SearchResult{}, err
	}

	out := tui.NewOutput(w)
	if !opts.Quiet {
		printSystemMessage(w, "Searching %s for %d rounds (session '%s')", opts.Domain.Domain, opts.Rounds, opts.SessionID)
	}

	for i := 0; i < opts.Rounds; i++ {
		if ctx.Err() != nil {
			if !opts.Quiet {
				printSystemMessage(w, "%s after %d rounds", stopReason(ctx), i)
			}
			break
		}
		stats, err := m.RunRound(ctx, opts.SessionID, session.RoundOptions{
			Exploration:    opts.Exploration,
			AllowlistNames: opts.Allow,
		})
		if err != nil {
			return SearchResult{}, err
		}
		if !opts.Quiet {
			fmt.Fprintln(w, tui.FormatRound(out, stats))
		}
	}

	result := SearchResult{SessionID: opts.SessionID}
	stats, err := m.Stats(opts.SessionID)
	if err != nil {
		return result, err
	}
	result.Stats = stats

	best, err := m.BestMove(opts.SessionID)
	switch {
	case errors.Is(err, domain.ErrNoMovesAvailable):
	case err != nil:
		return result, err
	default:
		result.BestMove = domain.FormatAction(best)
	}
	return result, nil
}
