// Visit Counter - Dynamic SVG Visit Counter Badges
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/visitcounter

/*
Package config provides centralized configuration management for the visit
counter service.

# Configuration Sources

Configuration is layered with koanf, later sources overriding earlier ones:
  - Built-in defaults (defaultConfig)
  - Optional YAML file: CONFIG_PATH, config.yaml, config.yml,
    /etc/visitcounter/config.yaml
  - Environment variables

# Environment Variables

Server:
  - HTTP_HOST: Bind address (default: 0.0.0.0)
  - HTTP_PORT: Listen port (default: 8000)
  - HTTP_TIMEOUT: Read/write timeout (default: 30s)
  - ENVIRONMENT: development or production (default: development)
  - STATIC_DIR: Frontend directory served at / (default: /app/frontend)

Storage:
  - STORAGE_BACKEND: file, badger or memory (default: file)
  - DATA_PATH: Counters JSON file (default: /data/counters.json)
  - BADGER_PATH: Badger directory (default: /data/badger)
  - BADGER_GC_INTERVAL: Value-log GC interval (default: 10m)
  - BADGER_GC_DISCARD_RATIO: Value-log GC discard ratio (default: 0.5)

Badges:
  - BADGE_DEFAULT_LABEL: Label when none is requested (default: Visits)
  - BADGE_DEFAULT_WIDTH, BADGE_DEFAULT_HEIGHT: (default: 150x20)
  - BADGE_STYLESHEET: Replaces the embedded base stylesheet

Security:
  - AUTH_MODE: jwt or none (default: jwt)
  - JWT_SECRET: Token signing secret, at least 32 characters
  - SESSION_TIMEOUT: Token lifetime (default: 24h)
  - ADMIN_USERNAME, ADMIN_PASSWORD: Admin login
  - API_KEY: Key for PUT /api/counter/{name}; empty disables the endpoint
  - API_KEY_MAX_FAILURES, API_KEY_FAILURE_WINDOW: Wrong-key throttle (default: 5 per 15m)
  - RATE_LIMIT_REQUESTS, RATE_LIMIT_WINDOW: Per-IP limit (default: 100 per 1m)
  - DISABLE_RATE_LIMIT: Disables the per-IP limit
  - CORS_ORIGINS: Comma-separated allowed origins (default: *)

Logging:
  - LOG_LEVEL: trace, debug, info, warn, error (default: info)
  - LOG_FORMAT: json or console (default: json)
  - LOG_CALLER: Include file:line (default: false)

# Usage

	cfg, err := config.Load()
	if err != nil {
	    log.Fatal(err)
	}
	srv := &http.Server{Addr: cfg.Server.Addr()}

# Validation

Load rejects invalid combinations before the server starts. In production
AUTH_MODE=none and wildcard CORS with authentication are refused, and the
admin password must satisfy DefaultPasswordPolicy.
*/
package config
