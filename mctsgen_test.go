package mctsgen_test

import (
	"context"
	"strings"
	"testing"

	mctsgen "github.com/akuroiwa/mcts-gen"
	"github.com/akuroiwa/mcts-gen/pkg/adapters/memory"
	"github.com/akuroiwa/mcts-gen/pkg/domain"
	"github.com/akuroiwa/mcts-gen/pkg/observability"
	"github.com/akuroiwa/mcts-gen/pkg/service"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVersion(t *testing.T) {
	assert.NotEmpty(t, strings.TrimSpace(mctsgen.Version))
}

func TestNew_WiresJournalMetricsAndHooks(t *testing.T) {
	journal := memory.NewStore()
	metrics := observability.NewMetrics()
	var rounds int

	sim := mctsgen.New(
		mctsgen.WithJournal(journal),
		mctsgen.WithMetrics(metrics),
		mctsgen.WithHooks(domain.Hooks{OnRound: func(domain.RoundEvent) { rounds++ }}),
		mctsgen.WithExploration(2.0),
	)
	ctx := context.Background()

	require.Nil(t, sim.Service.Reinitialize(ctx, service.ReinitializeRequest{SessionID: "s", Domain: "nim"}).Error)
	for i := 0; i < 5; i++ {
		require.Nil(t, sim.Service.RunRound(ctx, service.RoundRequest{SessionID: "s"}).Error)
	}

	assert.Equal(t, 5, rounds)
	assert.Equal(t, 5.0, testutil.ToFloat64(metrics.Rounds.WithLabelValues("nim")))

	record, err := journal.Load(ctx, "s")
	require.NoError(t, err)
	assert.Len(t, record.Rounds, 5)
}
