// Wanderlust - Travel Destination Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wanderlust

// Package metrics defines the Prometheus collectors exported on /metrics.
//
// Collectors are registered with the default registry through promauto.
// Callers use the Record* helpers rather than touching label values directly.
package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Recommendation kinds.
const (
	KindContent       = "content"
	KindCollaborative = "collaborative"
)

// Recommendation outcomes.
const (
	OutcomeSuccess = "success"
	OutcomeInvalid = "invalid"
	OutcomeError   = "error"
)

var (
	// API Endpoint Metrics
	APIRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "api_requests_total",
			Help: "Total number of API requests",
		},
		[]string{"method", "endpoint", "status_code"},
	)

	APIRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "api_request_duration_seconds",
			Help:    "API request duration in seconds",
			Buckets: []float64{0.001, 0.0025, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1},
		},
		[]string{"method", "endpoint"},
	)

	APIActiveRequests = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "api_active_requests",
			Help: "Current number of active API requests",
		},
	)

	APIRateLimitHits = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "api_rate_limit_hits_total",
			Help: "Total number of rate limit rejections",
		},
		[]string{"endpoint"},
	)

	// Recommendation Metrics
	RecommendationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "recommendations_total",
			Help: "Total number of recommendation requests by kind and outcome",
		},
		[]string{"kind", "outcome"},
	)

	RecommendationDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "recommendation_duration_seconds",
			Help:    "Time spent computing recommendations",
			Buckets: []float64{0.0001, 0.00025, 0.0005, 0.001, 0.0025, 0.005, 0.01, 0.05, 0.1},
		},
		[]string{"kind"},
	)

	RecommendationResults = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "recommendation_results",
			Help:    "Number of destinations returned per recommendation request",
			Buckets: []float64{0, 1, 2, 3, 4, 5, 10, 20},
		},
		[]string{"kind"},
	)

	RecommendCacheHits = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "recommend_cache_hits_total",
			Help: "Total number of content ranking cache hits",
		},
	)

	RecommendCacheMisses = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "recommend_cache_misses_total",
			Help: "Total number of content ranking cache misses",
		},
	)

	CatalogItems = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "catalog_items",
			Help: "Number of destinations in the loaded catalog",
		},
	)

	ReferenceProfiles = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "reference_profiles",
			Help: "Number of reference traveller profiles loaded",
		},
	)

	// Feedback Metrics
	FeedbackEventsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "feedback_events_total",
			Help: "Total number of feedback events recorded",
		},
		[]string{"liked"},
	)

	FeedbackUsers = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "feedback_users",
			Help: "Number of users with recorded feedback",
		},
	)

	// Event Bus Metrics
	EventsPublishedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "events_published_total",
			Help: "Total number of feedback events published",
		},
	)

	EventsPublishFailuresTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "events_publish_failures_total",
			Help: "Total number of feedback event publish failures",
		},
		[]string{"reason"}, // "breaker_open", "rate_limited", "publish"
	)

	EventsConsumedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "events_consumed_total",
			Help: "Total number of feedback events consumed",
		},
		[]string{"result"}, // "processed", "malformed"
	)

	EventsCircuitBreakerState = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "events_circuit_breaker_state",
			Help: "Event publisher circuit breaker state (0=closed, 1=half-open, 2=open)",
		},
	)

	EventsCircuitBreakerTransitions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "events_circuit_breaker_transitions_total",
			Help: "Total number of event publisher circuit breaker state transitions",
		},
		[]string{"from_state", "to_state"},
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

// RecordRateLimitHit counts a request rejected by the rate limiter.
func RecordRateLimitHit(endpoint string) {
	APIRateLimitHits.WithLabelValues(endpoint).Inc()
}

// RecordRecommendation records the outcome, latency and result count of a
// recommendation request. Results are only observed on success.
func RecordRecommendation(kind, outcome string, duration time.Duration, results int) {
	RecommendationsTotal.WithLabelValues(kind, outcome).Inc()
	RecommendationDuration.WithLabelValues(kind).Observe(duration.Seconds())
	if outcome == OutcomeSuccess {
		RecommendationResults.WithLabelValues(kind).Observe(float64(results))
	}
}

// RecordCacheLookup counts a content cache hit or miss.
func RecordCacheLookup(hit bool) {
	if hit {
		RecommendCacheHits.Inc()
	} else {
		RecommendCacheMisses.Inc()
	}
}

// SetDatasetSizes publishes the catalog and profile set sizes.
func SetDatasetSizes(items, profiles int) {
	CatalogItems.Set(float64(items))
	ReferenceProfiles.Set(float64(profiles))
}

// RecordFeedback counts a feedback event and updates the user gauge.
func RecordFeedback(liked bool, users int) {
	FeedbackEventsTotal.WithLabelValues(strconv.FormatBool(liked)).Inc()
	FeedbackUsers.Set(float64(users))
}

// SetFeedbackUsers publishes the number of users with recorded feedback.
func SetFeedbackUsers(users int) {
	FeedbackUsers.Set(float64(users))
}

// RecordEventPublished counts a successful publish.
func RecordEventPublished() {
	EventsPublishedTotal.Inc()
}

// RecordEventPublishFailure counts a failed publish by reason.
func RecordEventPublishFailure(reason string) {
	EventsPublishFailuresTotal.WithLabelValues(reason).Inc()
}

// RecordEventConsumed counts a consumed event by result.
func RecordEventConsumed(result string) {
	EventsConsumedTotal.WithLabelValues(result).Inc()
}

// RecordBreakerTransition updates the breaker state gauge. States use the
// gauge encoding 0=closed, 1=half-open, 2=open.
func RecordBreakerTransition(from, to string, state float64) {
	EventsCircuitBreakerState.Set(state)
	EventsCircuitBreakerTransitions.WithLabelValues(from, to).Inc()
}
