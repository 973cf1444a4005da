// Package metrics defines Prometheus instruments for the API client.
// Registration happens on the default registry; exposing /metrics is the
// consumer's concern.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// RequestsTotal tracks API requests by method, resource, and status
	// code ("error" when no response was received).
	RequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "fixit_api_requests_total",
			Help: "Total API requests by method, resource, and status",
		},
		[]string{"method", "resource", "status"},
	)

	// RequestDuration tracks API request latency in seconds.
	RequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "fixit_api_request_duration_seconds",
			Help:    "API request duration in seconds",
			Buckets: []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5},
		},
		[]string{"method", "resource"},
	)

	// SessionInvalidations counts forced logouts triggered by 401 responses.
	SessionInvalidations = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "fixit_session_invalidations_total",
			Help: "Total forced session teardowns triggered by 401 responses",
		},
	)

	// BreakerStateChanges tracks circuit breaker state transitions.
	BreakerStateChanges = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "fixit_circuit_breaker_state_changes_total",
			Help: "Circuit breaker state transitions by new state",
		},
		[]string{"state"},
	)

	// BreakerState tracks the current circuit breaker state
	// (0=closed, 1=half-open, 2=open).
	BreakerState = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "fixit_circuit_breaker_state",
			Help: "Current circuit breaker state (0=closed, 1=half-open, 2=open)",
		},
	)
)
