// Visit Counter - Dynamic SVG Visit Counter Badges
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/visitcounter

package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/tomtom215/visitcounter/internal/api"
	"github.com/tomtom215/visitcounter/internal/auth"
	"github.com/tomtom215/visitcounter/internal/badge"
	"github.com/tomtom215/visitcounter/internal/config"
	"github.com/tomtom215/visitcounter/internal/counter"
	"github.com/tomtom215/visitcounter/internal/logging"
	"github.com/tomtom215/visitcounter/internal/supervisor"
	"github.com/tomtom215/visitcounter/internal/supervisor/services"
)

// apiKeyCleanupInterval is how often idle API key failure buckets are dropped.
const apiKeyCleanupInterval = 5 * time.Minute

func main() {
	cfg, err := config.Load()
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to load configuration")
	}

	logging.Init(logging.Config{
		Level:     cfg.Logging.Level,
		Format:    cfg.Logging.Format,
		Caller:    cfg.Logging.Caller,
		Timestamp: true,
	})

	logging.Info().
		Str("environment", cfg.Server.Environment).
		Str("storage", cfg.Storage.Backend).
		Str("auth_mode", cfg.Security.AuthMode).
		Msg("Starting visit counter")

	a, err := newApp(cfg)
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to initialize")
	}
	defer a.Close()

	if err := run(cfg, a); err != nil {
		logging.Error().Err(err).Msg("Supervisor tree error")
	}
	logging.Info().Msg("Visit counter stopped")
}

// app holds the components shared by the HTTP server and the supervisor.
type app struct {
	store   *counter.Store
	guard   *auth.APIKeyGuard
	handler http.Handler
}

// newApp opens storage and builds the HTTP handler.
func newApp(cfg *config.Config) (*app, error) {
	backend, err := counter.OpenBackend(counter.BackendConfig{
		Kind:       cfg.Storage.Backend,
		Path:       cfg.Storage.Path,
		BadgerPath: cfg.Storage.BadgerPath,
	})
	if err != nil {
		return nil, fmt.Errorf("open storage: %w", err)
	}
	store := counter.New(backend, counter.WithLogger(logging.WithComponent("counter")))
	logging.Info().Str("backend", backend.Name()).Int("counters", store.Len()).Msg("Counter store loaded")

	renderer, err := newRenderer(&cfg.Badge)
	if err != nil {
		_ = store.Close()
		return nil, err
	}

	jwtManager, credentials, err := newAdminAuth(cfg)
	if err != nil {
		_ = store.Close()
		return nil, err
	}

	guard := auth.NewAPIKeyGuard(
		cfg.Security.APIKey,
		cfg.Security.APIKeyMaxFailures,
		cfg.Security.APIKeyFailureWindow,
		apiKeyCleanupInterval,
	)
	if !guard.Enabled() {
		logging.Warn().Msg("API_KEY is not set, PUT /api/counter/{name} will answer 503")
	}

	logSecurityWarnings(cfg)

	middleware := auth.NewMiddleware(jwtManager, guard, cfg.Security.AuthMode, api.WriteError)
	chiMiddleware := api.NewChiMiddleware(api.ChiMiddlewareConfigFromSecurity(cfg))
	handler := api.NewHandler(store, renderer, cfg, jwtManager, credentials)
	router := api.NewRouter(handler, middleware, chiMiddleware, cfg.Server.StaticDir)

	return &app{
		store:   store,
		guard:   guard,
		handler: router.SetupChi(),
	}, nil
}

// Close stops background work and flushes storage.
func (a *app) Close() {
	a.guard.Stop()
	if err := a.store.Close(); err != nil {
		logging.Error().Err(err).Msg("Error closing counter store")
	}
}

func newRenderer(cfg *config.BadgeConfig) (*badge.Renderer, error) {
	stylesheet := badge.DefaultStylesheet()
	if cfg.StylesheetPath != "" {
		css, err := badge.LoadStylesheet(cfg.StylesheetPath)
		if err != nil {
			return nil, fmt.Errorf("load stylesheet: %w", err)
		}
		stylesheet = css
		logging.Info().Str("path", cfg.StylesheetPath).Msg("Custom badge stylesheet loaded")
	}

	defaults := badge.DefaultDefaults()
	if cfg.DefaultLabel != "" {
		defaults.Label = cfg.DefaultLabel
	}
	if cfg.DefaultWidth > 0 {
		defaults.Width = cfg.DefaultWidth
	}
	if cfg.DefaultHeight > 0 {
		defaults.Height = cfg.DefaultHeight
	}
	return badge.NewRenderer(stylesheet, defaults), nil
}

// newAdminAuth returns nil managers when AUTH_MODE=none.
func newAdminAuth(cfg *config.Config) (*auth.JWTManager, *auth.AdminCredentials, error) {
	if cfg.Security.AuthMode != "jwt" {
		logging.Warn().Msg("Admin authentication is DISABLED (AUTH_MODE=none). Badge management is open to anyone.")
		return nil, nil, nil
	}

	jwtManager, err := auth.NewJWTManager(&cfg.Security)
	if err != nil {
		return nil, nil, fmt.Errorf("initialize JWT manager: %w", err)
	}
	credentials, err := auth.NewAdminCredentials(cfg.Security.AdminUsername, cfg.Security.AdminPassword)
	if err != nil {
		return nil, nil, fmt.Errorf("initialize admin credentials: %w", err)
	}
	logging.Info().Str("admin", logging.SanitizeUsername(credentials.Username())).Msg("JWT authentication enabled")
	return jwtManager, credentials, nil
}

func logSecurityWarnings(cfg *config.Config) {
	if cfg.Security.RateLimitDisabled {
		logging.Warn().Msg("Rate limiting is DISABLED (RATE_LIMIT_DISABLED=true)")
	}
	if cfg.ShouldWarnAboutCORS() {
		logging.Warn().Msg("CORS allows any origin while admin authentication is enabled. Set CORS_ORIGINS to explicit origins in production.")
	}
}

// run serves until SIGINT or SIGTERM.
func run(cfg *config.Config, a *app) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	tree, err := supervisor.NewSupervisorTree(logging.NewSlogLogger(), supervisor.DefaultTreeConfig())
	if err != nil {
		return fmt.Errorf("create supervisor tree: %w", err)
	}

	server := &http.Server{
		Addr:              cfg.Server.Addr(),
		Handler:           a.handler,
		ReadTimeout:       cfg.Server.Timeout,
		ReadHeaderTimeout: 10 * time.Second,
		WriteTimeout:      cfg.Server.Timeout,
		IdleTimeout:       60 * time.Second,
	}
	tree.AddAPIService(services.NewHTTPServerService(server, tree.Config().ShutdownTimeout))
	logging.Info().Str("addr", server.Addr).Msg("HTTP server service added")

	if gc, ok := a.store.Backend().(*counter.BadgerBackend); ok {
		tree.AddDataService(services.NewStorageGCService(
			gc,
			cfg.Storage.GCInterval,
			cfg.Storage.GCDiscardRatio,
			counter.ErrBackendClosed,
		))
		logging.Info().Dur("interval", cfg.Storage.GCInterval).Msg("Value-log GC service added")
	}

	errCh := tree.ServeBackground(ctx)
	var serveErr error
	select {
	case <-ctx.Done():
		logging.Info().Msg("Shutdown signal received, stopping services")
		serveErr = <-errCh
	case serveErr = <-errCh:
	}

	if unstopped, _ := tree.UnstoppedServiceReport(); len(unstopped) > 0 {
		for _, svc := range unstopped {
			logging.Warn().Str("service", svc.Name).Msg("Service failed to stop within timeout")
		}
	}

	if serveErr != nil && !errors.Is(serveErr, context.Canceled) {
		return serveErr
	}
	return nil
}
