// Package metrics provides Prometheus metrics instrumentation.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// RequestDuration tracks HTTP request duration.
	RequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "api_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10},
		},
		[]string{"method", "path", "status"},
	)

	// RequestsTotal tracks total HTTP requests.
	RequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "api_requests_total",
			Help: "Total HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	// SessionsTotal tracks total chat sessions created.
	SessionsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "chat_sessions_total",
			Help: "Total chat sessions created",
		},
	)

	// MessagesTotal tracks total conversation messages appended.
	MessagesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "chat_messages_total",
			Help: "Total conversation messages appended",
		},
		[]string{"author"},
	)

	// ResolutionsTotal tracks product resolutions by topic.
	ResolutionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "catalog_resolutions_total",
			Help: "Total catalog resolutions",
		},
		[]string{"topic", "match"},
	)

	// ResolutionDuration tracks catalog resolution duration.
	ResolutionDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "catalog_resolution_duration_seconds",
			Help:    "Catalog resolution duration including simulated latency",
			Buckets: []float64{.1, .25, .5, 1, 1.5, 2, 3, 5},
		},
	)

	// EnrichmentDuration tracks image enrichment batch duration.
	EnrichmentDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "image_enrichment_duration_seconds",
			Help:    "Image enrichment batch duration",
			Buckets: []float64{.25, .5, 1, 2, 3, 5, 10, 20},
		},
		[]string{"status"},
	)

	// ImageFailuresTotal tracks per-item image resolution failures.
	ImageFailuresTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "image_failures_total",
			Help: "Per-item image resolution failures absorbed as placeholders",
		},
	)

	// StaleBatchesDropped tracks enrichment batches discarded because the
	// query was superseded before they completed.
	StaleBatchesDropped = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "enrichment_stale_batches_dropped_total",
			Help: "Enrichment batches dropped for superseded queries",
		},
	)

	// SSEConnectionsActive tracks active SSE connections.
	SSEConnectionsActive = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "sse_connections_active",
			Help: "Number of active SSE connections",
		},
	)
)

// RecordRequest records metrics for an HTTP request.
func RecordRequest(method, path, status string, duration float64) {
	RequestDuration.WithLabelValues(method, path, status).Observe(duration)
	RequestsTotal.WithLabelValues(method, path, status).Inc()
}

// RecordResolution records metrics for a catalog resolution.
func RecordResolution(topic, match string, duration float64) {
	ResolutionsTotal.WithLabelValues(topic, match).Inc()
	ResolutionDuration.Observe(duration)
}

// RecordEnrichment records metrics for an image enrichment batch.
func RecordEnrichment(status string, duration float64, failed int) {
	EnrichmentDuration.WithLabelValues(status).Observe(duration)
	if failed > 0 {
		ImageFailuresTotal.Add(float64(failed))
	}
}

// IncrementSSEConnections increments the active SSE connection count.
func IncrementSSEConnections() {
	SSEConnectionsActive.Inc()
}

// DecrementSSEConnections decrements the active SSE connection count.
func DecrementSSEConnections() {
	SSEConnectionsActive.Dec()
}
