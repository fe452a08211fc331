// Visit Counter - Dynamic SVG Visit Counter Badges
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/visitcounter

package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Prometheus instrumentation for:
// - API endpoint latency and throughput
// - Counter mutations and persistence health
// - Badge rendering
// - Authentication failures

var (
	// API Endpoint Metrics
	APIRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "visitcounter_api_requests_total",
			Help: "Total number of API requests",
		},
		[]string{"method", "endpoint", "status_code"},
	)

	APIRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "visitcounter_api_request_duration_seconds",
			Help:    "API request duration in seconds",
			Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5},
		},
		[]string{"method", "endpoint"},
	)

	APIActiveRequests = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "visitcounter_api_active_requests",
			Help: "Current number of active API requests",
		},
	)

	// Counter Store Metrics
	CounterMutations = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "visitcounter_counter_mutations_total",
			Help: "Total number of counter mutations by operation",
		},
		[]string{"operation"}, // "increment", "set", "create", "delete"
	)

	CounterBadges = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "visitcounter_badges",
			Help: "Current number of counters held in memory",
		},
	)

	PersistDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "visitcounter_persist_duration_seconds",
			Help:    "Duration of counter persistence writes in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"backend"},
	)

	PersistFailures = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "visitcounter_persist_failures_total",
			Help: "Total number of failed counter persistence writes",
		},
		[]string{"backend"},
	)

	// Badge Rendering Metrics
	BadgeRenders = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "visitcounter_badge_renders_total",
			Help: "Total number of SVG badges rendered",
		},
	)

	BadgeRenderErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "visitcounter_badge_render_errors_total",
			Help: "Total number of rejected badge requests",
		},
		[]string{"reason"}, // "query", "validation"
	)

	// Authentication Metrics
	AuthFailures = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "visitcounter_auth_failures_total",
			Help: "Total number of failed authentication attempts",
		},
		[]string{"method"}, // "login", "jwt", "api_key"
	)

	AuthThrottled = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "visitcounter_auth_throttled_total",
			Help: "Total number of requests rejected after repeated API key failures",
		},
	)

	// Storage Maintenance Metrics
	StorageGCRuns = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "visitcounter_storage_gc_runs_total",
			Help: "Total number of storage value-log GC cycles",
		},
		[]string{"result"}, // "rewritten", "noop", "error"
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

// RecordCounterMutation records a counter store mutation
func RecordCounterMutation(operation string) {
	CounterMutations.WithLabelValues(operation).Inc()
}

// SetBadgeCount updates the in-memory counter gauge
func SetBadgeCount(n int) {
	CounterBadges.Set(float64(n))
}

// RecordPersist records a persistence write and its outcome
func RecordPersist(backend string, duration time.Duration, err error) {
	PersistDuration.WithLabelValues(backend).Observe(duration.Seconds())
	if err != nil {
		PersistFailures.WithLabelValues(backend).Inc()
	}
}

// RecordBadgeRender records a successful SVG render
func RecordBadgeRender() {
	BadgeRenders.Inc()
}

// RecordBadgeRenderError records a rejected badge request
func RecordBadgeRenderError(reason string) {
	BadgeRenderErrors.WithLabelValues(reason).Inc()
}

// RecordAuthFailure records a failed authentication attempt
func RecordAuthFailure(method string) {
	AuthFailures.WithLabelValues(method).Inc()
}

// RecordAuthThrottled records a request rejected by the failure throttle
func RecordAuthThrottled() {
	AuthThrottled.Inc()
}

// RecordStorageGC records one value-log GC cycle
func RecordStorageGC(result string) {
	StorageGCRuns.WithLabelValues(result).Inc()
}
