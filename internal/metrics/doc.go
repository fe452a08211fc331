// Visit Counter - Dynamic SVG Visit Counter Badges
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/visitcounter

/*
Package metrics provides Prometheus metrics for the visit counter service.

All collectors are registered with the default registry through promauto and
exposed at /metrics:

	curl http://localhost:8000/metrics

# Available Metrics

API Metrics:
  - visitcounter_api_requests_total: Total API requests (counter)
    Labels: method, endpoint, status_code
  - visitcounter_api_request_duration_seconds: Request latency (histogram)
    Labels: method, endpoint
  - visitcounter_api_active_requests: In-flight requests (gauge)

Counter Store Metrics:
  - visitcounter_counter_mutations_total: Mutations by operation (counter)
  - visitcounter_badges: Counters held in memory (gauge)
  - visitcounter_persist_duration_seconds: Persistence write latency (histogram)
  - visitcounter_persist_failures_total: Failed persistence writes (counter)

A non-zero rate of visitcounter_persist_failures_total means the in-memory
counts are ahead of what is on disk. The readiness endpoint reports the same
condition as persistence_degraded.

Rendering and Auth Metrics:
  - visitcounter_badge_renders_total
  - visitcounter_badge_render_errors_total (reason)
  - visitcounter_auth_failures_total (method)
  - visitcounter_auth_throttled_total
  - visitcounter_storage_gc_runs_total (result)

# Example Alert

	- alert: VisitCounterPersistenceFailing
	  expr: rate(visitcounter_persist_failures_total[5m]) > 0
	  for: 5m
*/
package metrics
