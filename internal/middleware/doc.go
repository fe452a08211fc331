// Visit Counter - Dynamic SVG Visit Counter Badges
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/visitcounter

/*
Package middleware provides infrastructure HTTP middleware shared by every
route: request IDs, Prometheus instrumentation and gzip compression.

All middleware uses the standard func(http.Handler) http.Handler shape so it
can be installed with chi's Use:

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.PrometheusMetrics)
	r.Use(middleware.Compression)

Request ID:

RequestID accepts an upstream X-Request-ID (up to 128 bytes) or generates a
UUID, echoes it in the response and stores it in the request context for
both GetRequestID and the logging package's context helpers.

Prometheus Metrics:

PrometheusMetrics labels requests with the matched chi route pattern rather
than the URL path. A badge named "home" and one named "about" are both
recorded as /counter/{name}/svg, keeping series cardinality fixed.

Compression:

Compression gzips responses when the client sends Accept-Encoding: gzip.
Writers come from a sync.Pool. HEAD requests are passed through untouched.
*/
package middleware
