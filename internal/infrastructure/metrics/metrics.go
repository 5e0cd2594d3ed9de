package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Outcome labels for RequestsTotal.
const (
	OutcomeSuccess    = "success"
	OutcomeResponse   = "response_error"
	OutcomeNoResponse = "no_response"
	OutcomeRequest    = "request_error"
)

// Hotel client metrics
var (
	// Backend call counters
	RequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "hotel",
			Subsystem: "client",
			Name:      "requests_total",
			Help:      "Total number of backend API calls",
		},
		[]string{"service", "operation", "outcome"},
	)

	// Backend call duration histogram
	RequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "hotel",
			Subsystem: "client",
			Name:      "request_duration_seconds",
			Help:      "Backend API call duration in seconds",
			Buckets:   []float64{0.05, 0.1, 0.25, 0.5, 1, 2, 5, 10},
		},
		[]string{"service", "operation"},
	)

	// Envelopes that arrived without the expected data or message
	EnvelopeFailuresTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "hotel",
			Subsystem: "client",
			Name:      "envelope_failures_total",
			Help:      "Total number of response envelopes missing their payload",
		},
		[]string{"service", "operation", "kind"},
	)

	CacheLookupsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "hotel",
			Subsystem: "client",
			Name:      "cache_lookups_total",
			Help:      "Total number of lookup cache reads",
		},
		[]string{"cache", "result"},
	)
)

// RecordRequest records one backend call
func RecordRequest(service, operation, outcome string, elapsed time.Duration) {
	RequestsTotal.WithLabelValues(service, operation, outcome).Inc()
	RequestDuration.WithLabelValues(service, operation).Observe(elapsed.Seconds())
}

// RecordEnvelopeFailure records an envelope that could not be unwrapped
func RecordEnvelopeFailure(service, operation, kind string) {
	EnvelopeFailuresTotal.WithLabelValues(service, operation, kind).Inc()
}

// RecordCacheLookup records a cache hit or miss
func RecordCacheLookup(cache string, hit bool) {
	result := "miss"
	if hit {
		result = "hit"
	}
	CacheLookupsTotal.WithLabelValues(cache, result).Inc()
}
