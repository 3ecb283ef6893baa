// MatchBox - Compatibility Matching and Match Circles
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/matchbox

package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// API Metrics
	APIRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "matchbox_api_requests_total",
			Help: "Total number of API requests",
		},
		[]string{"method", "endpoint", "status_code"},
	)

	APIRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "matchbox_api_request_duration_seconds",
			Help:    "Duration of API requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "endpoint"},
	)

	APIActiveRequests = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "matchbox_api_active_requests",
			Help: "Number of API requests currently being served",
		},
	)

	// Matching Metrics
	PairsScored = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "matchbox_pairs_scored_total",
			Help: "Total number of directional profile pairs scored",
		},
		[]string{"operation"}, // "find_matches", "form_circles"
	)

	CompositeScores = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "matchbox_composite_score",
			Help:    "Distribution of composite compatibility scores",
			Buckets: prometheus.LinearBuckets(0.1, 0.1, 10),
		},
	)

	FindMatchesDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "matchbox_find_matches_duration_seconds",
			Help:    "Duration of find-matches runs in seconds",
			Buckets: prometheus.ExponentialBuckets(0.0005, 2, 14),
		},
	)

	MatchesReturned = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "matchbox_matches_returned",
			Help:    "Number of matches returned per find-matches run",
			Buckets: []float64{0, 1, 2, 3, 5, 8, 10, 25},
		},
	)

	CirclesFormed = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "matchbox_circles_formed_total",
			Help: "Total number of match circles formed",
		},
	)

	CircleFormationDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "matchbox_circle_formation_duration_seconds",
			Help:    "Duration of circle formation runs in seconds",
			Buckets: prometheus.ExponentialBuckets(0.0005, 2, 14),
		},
		[]string{"circle_size"},
	)

	ProfilesUnassigned = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "matchbox_profiles_unassigned",
			Help: "Profiles left without a circle by the most recent formation run",
		},
	)

	MatchCacheLookups = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "matchbox_match_cache_lookups_total",
			Help: "Find-matches cache lookups by result",
		},
		[]string{"result"}, // "hit", "miss"
	)

	// Profile Store Metrics
	StoreOperationDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "matchbox_store_operation_duration_seconds",
			Help:    "Duration of profile store operations in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"driver", "operation"},
	)

	StoreErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "matchbox_store_errors_total",
			Help: "Total number of failed profile store operations",
		},
		[]string{"driver", "operation"},
	)

	// Circuit Breaker Metrics
	CircuitBreakerState = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "matchbox_circuit_breaker_state",
			Help: "Circuit breaker state (0=closed, 1=half-open, 2=open)",
		},
		[]string{"name"},
	)

	CircuitBreakerTransitions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "matchbox_circuit_breaker_transitions_total",
			Help: "Total number of circuit breaker state transitions",
		},
		[]string{"name", "from", "to"},
	)

	// Event Sink Metrics
	EventsPublished = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "matchbox_events_published_total",
			Help: "Total number of events published to the sink",
		},
		[]string{"topic"},
	)

	EventsFailed = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "matchbox_events_failed_total",
			Help: "Total number of events that could not be published",
		},
		[]string{"topic"},
	)
)

// RecordAPIRequest records an API request metric
func RecordAPIRequest(method, endpoint, statusCode string, duration time.Duration) {
	APIRequestsTotal.WithLabelValues(method, endpoint, statusCode).Inc()
	APIRequestDuration.WithLabelValues(method, endpoint).Observe(duration.Seconds())
}

// TrackActiveRequest tracks active API requests
func TrackActiveRequest(inc bool) {
	if inc {
		APIActiveRequests.Inc()
	} else {
		APIActiveRequests.Dec()
	}
}

// RecordFindMatches records one find-matches run.
func RecordFindMatches(duration time.Duration, pairs, returned int) {
	FindMatchesDuration.Observe(duration.Seconds())
	PairsScored.WithLabelValues("find_matches").Add(float64(pairs))
	MatchesReturned.Observe(float64(returned))
}

// RecordCompositeScore records a composite score in the score histogram.
func RecordCompositeScore(score float64) {
	CompositeScores.Observe(score)
}

// RecordCircleFormation records one circle formation run.
func RecordCircleFormation(circleSize string, duration time.Duration, population, circles, unassigned int) {
	CircleFormationDuration.WithLabelValues(circleSize).Observe(duration.Seconds())
	// Upper bound: every anchor scores every other profile once.
	PairsScored.WithLabelValues("form_circles").Add(float64(population * max(population-1, 0)))
	CirclesFormed.Add(float64(circles))
	ProfilesUnassigned.Set(float64(unassigned))
}

// RecordCacheLookup records a find-matches cache hit or miss.
func RecordCacheLookup(hit bool) {
	if hit {
		MatchCacheLookups.WithLabelValues("hit").Inc()
		return
	}
	MatchCacheLookups.WithLabelValues("miss").Inc()
}

// RecordStoreOperation records a profile store call. notFound errors are
// passed as nil by callers that treat them as normal results.
func RecordStoreOperation(driver, operation string, duration time.Duration, err error) {
	StoreOperationDuration.WithLabelValues(driver, operation).Observe(duration.Seconds())
	if err != nil {
		StoreErrors.WithLabelValues(driver, operation).Inc()
	}
}

// SetCircuitBreakerState records the current state of a named breaker.
func SetCircuitBreakerState(name string, state float64) {
	CircuitBreakerState.WithLabelValues(name).Set(state)
}

// RecordCircuitBreakerTransition records a breaker state change.
func RecordCircuitBreakerTransition(name, from, to string) {
	CircuitBreakerTransitions.WithLabelValues(name, from, to).Inc()
}

// RecordEventPublish records the outcome of publishing an event.
func RecordEventPublish(topic string, err error) {
	if err != nil {
		EventsFailed.WithLabelValues(topic).Inc()
		return
	}
	EventsPublished.WithLabelValues(topic).Inc()
}
