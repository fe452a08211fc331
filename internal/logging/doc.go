// Visit Counter - Dynamic SVG Visit Counter Badges
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/visitcounter

// Package logging provides zerolog-based structured logging for the visit
// counter.
//
// JSON output is the default; console output is meant for development.
// The package also carries request and correlation IDs through
// context.Context, an slog adapter for suture's event hook and a security
// logger that masks credentials.
//
// # Quick Start
//
//	logging.Init(logging.Config{
//	    Level:     "info",
//	    Format:    "json",
//	    Timestamp: true,
//	})
//
//	logging.Info().Str("badge", name).Uint64("count", n).Msg("Counter incremented")
//	logging.Error().Err(err).Msg("Persist failed")
//
// # Request Context
//
// The request ID middleware stores IDs in the context; Ctx returns a logger
// that includes them:
//
//	logging.Ctx(r.Context()).Warn().Msg("Rejected badge options")
//
// # Environment Variables
//
//   - LOG_LEVEL: trace, debug, info, warn, error (default: info)
//   - LOG_FORMAT: json or console (default: json)
//   - LOG_CALLER: add file:line to entries (default: false)
//
// # Security Logging
//
// SecurityLogger records logins, rejected tokens and rejected API keys.
// Usernames are truncated and tokens masked before they reach the log.
package logging
