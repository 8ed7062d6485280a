// Package observer holds the Prometheus collectors of both binaries.
package observer

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTPRequestsTotal counts backend requests by route pattern and status.
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests served, labeled by route pattern and status code.",
		},
		[]string{"route", "status"},
	)

	// EdgeUpstreamRequestsTotal counts forwarded requests by outcome.
	EdgeUpstreamRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "edge_upstream_requests_total",
			Help: "Total number of requests forwarded to the backend, labeled by route and outcome.",
		},
		[]string{"route", "outcome"},
	)

	EdgeUpstreamDurationSeconds = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "edge_upstream_duration_seconds",
			Help:    "Histogram of backend round-trip durations seen by the edge.",
			Buckets: prometheus.ExponentialBuckets(0.005, 2, 12), // 5ms to ~10s
		},
		[]string{"route"},
	)

	AssistantSyncsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "assistant_syncs_total",
			Help: "Total number of assistant sync jobs, labeled by outcome.",
		},
		[]string{"outcome"},
	)

	VoiceIntentsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "voice_intents_total",
			Help: "Total number of processed utterances, labeled by detected intent.",
		},
		[]string{"intent"},
	)
)

// ObserveHTTPRequest records one served backend request.
func ObserveHTTPRequest(route string, status int) {
	if route == "" {
		route = "unmatched"
	}
	HTTPRequestsTotal.WithLabelValues(route, strconv.Itoa(status)).Inc()
}

// ObserveUpstream records one forwarded request.
func ObserveUpstream(route, outcome string, took time.Duration) {
	EdgeUpstreamRequestsTotal.WithLabelValues(route, outcome).Inc()
	EdgeUpstreamDurationSeconds.WithLabelValues(route).Observe(took.Seconds())
}

// IncAssistantSync records the outcome of one sync job.
func IncAssistantSync(outcome string) {
	AssistantSyncsTotal.WithLabelValues(outcome).Inc()
}

// IncVoiceIntent records one classified utterance.
func IncVoiceIntent(intent string) {
	VoiceIntentsTotal.WithLabelValues(intent).Inc()
}
