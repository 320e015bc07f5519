package observability

import (
	"net/http"
	"strconv"

	"github.com/akuroiwa/mcts-gen/pkg/domain"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds the search collectors.
type Metrics struct {
	registry *prometheus.Registry

	Rounds        *prometheus.CounterVec
	RoundDuration *prometheus.HistogramVec
	Improvements  *prometheus.CounterVec
	TreeSize      *prometheus.GaugeVec
	BestValue     *prometheus.GaugeVec
	Reinitialized *prometheus.CounterVec
	Errors        *prometheus.CounterVec
}

// NewMetrics creates and registers the collectors, plus the standard Go and
// process collectors.
func NewMetrics() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		Rounds: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "mctsgen_rounds_total",
				Help: "Total number of completed search rounds",
			},
			[]string{"domain"},
		),
		RoundDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "mctsgen_round_duration_seconds",
				Help:    "Duration of a single search round",
				Buckets: prometheus.ExponentialBuckets(0.00001, 4, 10),
			},
			[]string{"domain"},
		),
		Improvements: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "mctsgen_round_improvements_total",
				Help: "Rounds by improvement code",
			},
			[]string{"domain", "code"},
		),
		TreeSize: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "mctsgen_tree_nodes",
				Help: "Number of nodes in the session tree",
			},
			[]string{"session_id"},
		),
		BestValue: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "mctsgen_best_value",
				Help: "Best root child value after the last round",
			},
			[]string{"session_id"},
		),
		Reinitialized: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "mctsgen_reinitializations_total",
				Help: "Total number of session reinitializations",
			},
			[]string{"domain"},
		),
		Errors: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "mctsgen_errors_total",
				Help: "Failed operations by error code",
			},
			[]string{"op", "code"},
		),
	}
	m.registry.MustRegister(
		m.Rounds, m.RoundDuration, m.Improvements, m.TreeSize,
		m.BestValue, m.Reinitialized, m.Errors,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return m
}

// Registry exposes the underlying registry.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// Handler serves the metrics in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// Hooks returns session hooks that record into m.
func (m *Metrics) Hooks() domain.Hooks {
	return domain.Hooks{
		OnReinitialize: func(e domain.ReinitializeEvent) {
			m.Reinitialized.WithLabelValues(e.Domain).Inc()
			m.TreeSize.WithLabelValues(e.SessionID).Set(1)
			m.BestValue.WithLabelValues(e.SessionID).Set(0)
		},
		OnRound: func(e domain.RoundEvent) {
			m.Rounds.WithLabelValues(e.Domain).Inc()
			m.RoundDuration.WithLabelValues(e.Domain).Observe(e.Duration.Seconds())
			m.Improvements.WithLabelValues(e.Domain, strconv.Itoa(int(e.Stats.Improvement))).Inc()
			m.TreeSize.WithLabelValues(e.SessionID).Set(float64(e.TreeSize))
			m.BestValue.WithLabelValues(e.SessionID).Set(e.Stats.BestValue)
		},
		OnError: func(_ string, op string, err error) {
			m.Errors.WithLabelValues(op, domain.ErrorCode(err)).Inc()
		},
		OnDelete: func(sessionID string) {
			m.TreeSize.DeleteLabelValues(sessionID)
			m.BestValue.DeleteLabelValues(sessionID)
		},
	}
}
