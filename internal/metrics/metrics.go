// Package metrics exposes the client's Prometheus instrumentation.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// EventsReceived counts decoded events delivered per topic.
	EventsReceived = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "pubsub",
		Subsystem: "client",
		Name:      "events_received_total",
		Help:      "Decoded events delivered to consumers.",
	}, []string{"topic"})

	// DecodeFailures counts per-event decode failures per topic.
	DecodeFailures = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "pubsub",
		Subsystem: "client",
		Name:      "decode_failures_total",
		Help:      "Events that could not be decoded.",
	}, []string{"topic"})

	// Keepalives counts empty server batches per topic.
	Keepalives = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "pubsub",
		Subsystem: "client",
		Name:      "keepalives_total",
		Help:      "Empty server batches carrying only the latest replay position.",
	}, []string{"topic"})

	// BatchesRequested counts flow-control batch requests per topic,
	// initial, automatic and manual.
	BatchesRequested = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "pubsub",
		Subsystem: "client",
		Name:      "batches_requested_total",
		Help:      "Flow-control batch requests written to the stream.",
	}, []string{"topic"})

	// EventsPublished counts successfully published events per topic.
	EventsPublished = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "pubsub",
		Subsystem: "client",
		Name:      "events_published_total",
		Help:      "Events accepted by the bus on the publish path.",
	}, []string{"topic"})

	// SchemasCached tracks the schema cache size.
	SchemasCached = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: "pubsub",
		Subsystem: "client",
		Name:      "schemas_cached",
		Help:      "Schemas currently held by the cache.",
	})
)

// Handler returns the exposition handler for the default registry.
func Handler() http.Handler { return promhttp.Handler() }
