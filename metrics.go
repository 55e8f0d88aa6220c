package reattempt

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Terminal outcome labels.
const (
	outcomeSuccess          = "success"
	outcomeRetriesExhausted = "retries_exhausted"
	outcomeTimeExhausted    = "time_exhausted"
	outcomeUnallowed        = "unallowed"
)

var (
	// attemptsTotal counts operation invocations.
	attemptsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "reattempt_attempts_total",
			Help: "Total number of operation invocations",
		},
		[]string{"operation"},
	)

	// outcomesTotal counts terminal outcomes by kind.
	outcomesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "reattempt_outcomes_total",
			Help: "Terminal execution outcomes by kind",
		},
		[]string{"operation", "outcome"},
	)

	// waitDuration measures the waits applied between attempts.
	waitDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "reattempt_wait_duration_seconds",
			Help:    "Duration of waits applied before attempts",
			Buckets: []float64{0.01, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		},
		[]string{"operation"},
	)
)

// WithMetrics enables prometheus instrumentation for this execution,
// labeled by operation. Without this option nothing is recorded.
func WithMetrics(operation string) Option {
	return func(c *config) {
		c.operation = operation
	}
}

func recordAttempt(operation string) {
	if operation == "" {
		return
	}
	attemptsTotal.WithLabelValues(operation).Inc()
}

func recordOutcome(operation, outcome string) {
	if operation == "" {
		return
	}
	outcomesTotal.WithLabelValues(operation, outcome).Inc()
}

func recordWait(operation string, d time.Duration) {
	if operation == "" {
		return
	}
	waitDuration.WithLabelValues(operation).Observe(d.Seconds())
}
