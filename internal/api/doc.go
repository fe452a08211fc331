// Visit Counter - Dynamic SVG Visit Counter Badges
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/visitcounter

/*
Package api provides the HTTP layer of the visit counter.

Key Components:

  - Router: chi route configuration and middleware stack
  - Handler: request handlers for counters, badges, admin and health
  - ResponseWriter: bare JSON resources and the {success, data, error, meta}
    envelope used for errors and health
  - ChiMiddleware: go-chi/cors and go-chi/httprate factories

Routes:

	GET    /counter/{name}/svg             count a visit and render the badge
	GET    /api/counter/{name}             read a count
	POST   /api/counter/{name}/increment   count a visit
	PUT    /api/counter/{name}             set a count (x-api-key)
	POST   /api/auth/login                 obtain an admin bearer token
	GET    /api/admin/badges               list badges (admin)
	POST   /api/admin/badges               create a badge (admin)
	GET    /api/admin/badges/{name}        read a badge (admin)
	PUT    /api/admin/badges/{name}        set a badge count (admin)
	DELETE /api/admin/badges/{name}        delete a badge (admin)
	GET    /api/v1/health/live             liveness
	GET    /api/v1/health/ready            readiness, reports persistence_degraded
	GET    /metrics                        Prometheus exposition
	GET    /*                              static web UI with index.html fallback

Badge responses are never cached (Cache-Control: max-age=0, no-cache,
no-store, must-revalidate) so that every view reaches the server and is
counted. They also carry a restrictive Content-Security-Policy because style
and logo options are embedded in the SVG as given.

Usage Example:

	store := counter.New(backend)
	renderer := badge.NewRenderer(badge.DefaultStylesheet(), badge.DefaultDefaults())
	handler := api.NewHandler(store, renderer, cfg, jwtManager, credentials)

	authMw := auth.NewMiddleware(jwtManager, apiKeyGuard, cfg.Security.AuthMode, api.WriteError)
	chiMw := api.NewChiMiddleware(api.ChiMiddlewareConfigFromSecurity(cfg))
	router := api.NewRouter(handler, authMw, chiMw, cfg.Server.StaticDir)

	srv := &http.Server{Addr: cfg.Server.Addr(), Handler: router.SetupChi()}
*/
package api
