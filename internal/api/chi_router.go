// Visit Counter - Dynamic SVG Visit Counter Badges
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/visitcounter

package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/tomtom215/visitcounter/internal/middleware"
)

// SetupChi configures all HTTP routes using Chi router.
func (router *Router) SetupChi() http.Handler {
	r := chi.NewRouter()

	// ========================
	// Global Middleware Stack
	// ========================
	r.Use(middleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Recoverer)
	r.Use(router.chiMiddleware.CORS()) // CORS must be global to handle OPTIONS preflight
	r.Use(middleware.PrometheusMetrics)

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		NewResponseWriter(w, r).NotFound("Not found")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		NewResponseWriter(w, r).Error(http.StatusMethodNotAllowed, ErrCodeMethodNotAllowed, "Method not allowed")
	})

	// ========================
	// Health Endpoints
	// ========================
	r.Route("/api/v1/health", func(r chi.Router) {
		r.Use(router.chiMiddleware.RateLimitHealth())
		r.Use(APISecurityHeaders())
		r.Get("/live", router.handler.HealthLive)
		r.Get("/ready", router.handler.HealthReady)
	})

	// ========================
	// Badge SVG
	// ========================
	r.Group(func(r chi.Router) {
		r.Use(router.chiMiddleware.RateLimitBadge())
		r.Use(middleware.Compression)
		r.Get("/counter/{name}/svg", router.handler.CounterSVG)
	})

	// ========================
	// Authentication
	// ========================
	r.Route("/api/auth", func(r chi.Router) {
		r.Use(APISecurityHeaders())
		r.With(router.chiMiddleware.RateLimitLogin()).Post("/login", router.handler.Login)
	})

	// ========================
	// Public Counter API
	// ========================
	r.Route("/api/counter/{name}", func(r chi.Router) {
		r.Use(router.chiMiddleware.RateLimit())
		r.Use(APISecurityHeaders())
		r.Use(middleware.Compression)

		r.Get("/", router.handler.GetCounter)
		r.Post("/increment", router.handler.IncrementCounter)
		r.With(router.middleware.RequireAPIKey).Put("/", router.handler.SetCounter)
	})

	// ========================
	// Admin Badge Management
	// ========================
	r.Route("/api/admin/badges", func(r chi.Router) {
		r.Use(router.chiMiddleware.RateLimit())
		r.Use(APISecurityHeaders())
		r.Use(middleware.Compression)
		r.Use(router.middleware.RequireAdmin)

		r.Get("/", router.handler.ListBadges)
		r.Post("/", router.handler.CreateBadge)
		r.Get("/{name}", router.handler.GetBadge)
		r.Put("/{name}", router.handler.UpdateBadge)
		r.Delete("/{name}", router.handler.DeleteBadge)
	})

	// ========================
	// Observability
	// ========================
	r.Handle("/metrics", promhttp.Handler())

	// ========================
	// Static Files & SPA
	// ========================
	// Must be last - catches all unmatched GET routes
	r.Get("/*", router.serveStaticOrIndex)

	return r
}
