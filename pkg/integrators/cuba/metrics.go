package cuba

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Outcome labels recorded by Metrics.
const (
	OutcomeConverged    = "converged"
	OutcomeNotConverged = "not_converged"
	OutcomeAborted      = "aborted"
	OutcomeBadDim       = "bad_dim"
	OutcomeBadComp      = "bad_comp"
	OutcomeError        = "error"
)

// Metrics holds Prometheus metrics for integration calls.
//
// Metrics:
//   - integrators_cuba_integrations_total{algorithm,outcome}
//   - integrators_cuba_evaluations_total{algorithm}
//   - integrators_cuba_duration_seconds{algorithm}
type Metrics struct {
	Integrations *prometheus.CounterVec
	Evaluations  *prometheus.CounterVec
	Duration     *prometheus.HistogramVec
}

// NewMetrics creates the metrics and registers them with reg. A nil reg
// leaves them unregistered.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)
	return &Metrics{
		Integrations: f.NewCounterVec(
			prometheus.CounterOpts{
				Name: "integrators_cuba_integrations_total",
				Help: "Total number of integration calls by outcome",
			},
			[]string{"algorithm", "outcome"},
		),
		Evaluations: f.NewCounterVec(
			prometheus.CounterOpts{
				Name: "integrators_cuba_evaluations_total",
				Help: "Total number of integrand evaluations reported by the routine",
			},
			[]string{"algorithm"},
		),
		Duration: f.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "integrators_cuba_duration_seconds",
				Help:    "Duration of integration calls in seconds",
				Buckets: prometheus.ExponentialBuckets(0.001, 4, 10),
			},
			[]string{"algorithm"},
		),
	}
}

func (m *Metrics) observe(algorithm, outcome string, neval int64, elapsed time.Duration) {
	if m == nil {
		return
	}
	m.Integrations.WithLabelValues(algorithm, outcome).Inc()
	if neval > 0 {
		m.Evaluations.WithLabelValues(algorithm).Add(float64(neval))
	}
	if elapsed > 0 {
		m.Duration.WithLabelValues(algorithm).Observe(elapsed.Seconds())
	}
}
