// Package metrics provides Prometheus instrumentation for the lost-and-found
// services. It exposes counters for match creation and notification
// delivery, histograms for scoring behaviour, and gauges for gateway
// connection counts.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// ItemsProcessed counts items run through the matching engine,
	// labeled by type: "lost" or "found".
	ItemsProcessed = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "lostfound_items_processed_total",
		Help: "Total number of items run through the matching engine",
	}, []string{"type"})

	// MatchesCreated counts persisted match records.
	MatchesCreated = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "lostfound_matches_created_total",
		Help: "Total number of match records persisted",
	})

	// MatchConfidence records the confidence of persisted matches.
	MatchConfidence = prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "lostfound_match_confidence",
		Help:    "Confidence score of persisted matches",
		Buckets: []float64{0.6, 0.65, 0.7, 0.75, 0.8, 0.85, 0.9, 0.95, 1},
	})

	// CandidatesScanned records the candidate set size per engine run.
	CandidatesScanned = prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "lostfound_candidates_scanned",
		Help:    "Number of candidate items scored per submission",
		Buckets: []float64{0, 1, 2, 5, 10, 25, 50, 100, 250},
	})

	// NotificationsTotal counts match notifications, labeled by outcome:
	// "published" or "failed".
	NotificationsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "lostfound_notifications_total",
		Help: "Total number of match notifications by outcome",
	}, []string{"outcome"})

	// TagsIndexed counts tags written to the search index.
	TagsIndexed = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "lostfound_tags_indexed_total",
		Help: "Total number of tags written to the search index",
	})

	// GatewayConnections tracks the current number of live WebSocket
	// connections on the gateway.
	GatewayConnections = prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "lostfound_gateway_connections",
		Help: "Current number of live gateway WebSocket connections",
	})
)

func init() {
	prometheus.MustRegister(
		ItemsProcessed,
		MatchesCreated,
		MatchConfidence,
		CandidatesScanned,
		NotificationsTotal,
		TagsIndexed,
		GatewayConnections,
	)
}

// Handler returns the Prometheus metrics HTTP handler.
func Handler() http.Handler {
	return promhttp.Handler()
}
