// Package metrics holds the Prometheus collectors of the simulation engine.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"campaign-sim/internal/core/domain"
)

var (
	// TrialsTotal counts folded trials by outcome.
	TrialsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "campaign_sim_trials_total",
		Help: "Simulated trials by outcome",
	}, []string{"outcome"})

	// DegradedChunksTotal counts sub-batches recorded as ignore after an
	// oracle failure.
	DegradedChunksTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "campaign_sim_degraded_chunks_total",
		Help: "Sub-batches degraded to ignore by failure reason",
	}, []string{"reason"})

	// OracleDuration tracks sub-batch latency of the response oracle.
	OracleDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "campaign_sim_oracle_duration_seconds",
		Help:    "Response oracle sub-batch duration in seconds",
		Buckets: prometheus.ExponentialBuckets(0.001, 2, 16), // 1ms to ~33s
	}, []string{"result"})

	// RunsTotal counts simulation runs by result.
	RunsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "campaign_sim_runs_total",
		Help: "Simulation runs by result",
	}, []string{"result"})
)

// ObserveTally adds a folded tally to TrialsTotal.
func ObserveTally(t domain.Tally) {
	for _, o := range domain.Outcomes {
		if n := t.Count(o); n > 0 {
			TrialsTotal.WithLabelValues(string(o)).Add(float64(n))
		}
	}
}

// Handler serves the default registry.
func Handler() http.Handler {
	return promhttp.Handler()
}
