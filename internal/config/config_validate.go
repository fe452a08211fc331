// Visit Counter - Dynamic SVG Visit Counter Badges
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/visitcounter

package config

import (
	"fmt"
	"strings"
	"time"
)

// Validate checks that required configuration is present and valid
func (c *Config) Validate() error {
	validators := []func() error{
		c.validateServer,
		c.validateStorage,
		c.validateBadge,
		c.validateSecurity,
		c.validateLogging,
	}

	for _, validator := range validators {
		if err := validator(); err != nil {
			return err
		}
	}
	return nil
}

// validateServer validates server configuration
func (c *Config) validateServer() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("HTTP_PORT must be between 1 and 65535")
	}
	if c.Server.Timeout <= 0 {
		return fmt.Errorf("HTTP_TIMEOUT must be positive")
	}
	return nil
}

// validStorageBackends defines the allowed storage backends
var validStorageBackends = map[string]bool{
	"file":   true,
	"badger": true,
	"memory": true,
}

// validateStorage validates the selected backend and its paths
func (c *Config) validateStorage() error {
	if !validStorageBackends[c.Storage.Backend] {
		return fmt.Errorf("STORAGE_BACKEND must be one of: file, badger, memory")
	}

	switch c.Storage.Backend {
	case "file":
		if c.Storage.Path == "" {
			return fmt.Errorf("DATA_PATH is required when STORAGE_BACKEND is file")
		}
	case "badger":
		if c.Storage.BadgerPath == "" {
			return fmt.Errorf("BADGER_PATH is required when STORAGE_BACKEND is badger")
		}
		if c.Storage.GCInterval < time.Second {
			return fmt.Errorf("BADGER_GC_INTERVAL must be at least 1s")
		}
		if c.Storage.GCDiscardRatio <= 0 || c.Storage.GCDiscardRatio >= 1 {
			return fmt.Errorf("BADGER_GC_DISCARD_RATIO must be between 0 and 1 (exclusive)")
		}
	}
	return nil
}

// validateBadge validates rendering defaults
func (c *Config) validateBadge() error {
	if c.Badge.DefaultWidth == 0 || c.Badge.DefaultHeight == 0 {
		return fmt.Errorf("BADGE_DEFAULT_WIDTH and BADGE_DEFAULT_HEIGHT must be greater than 0")
	}
	if c.Badge.DefaultWidth > 10000 || c.Badge.DefaultHeight > 10000 {
		return fmt.Errorf("BADGE_DEFAULT_WIDTH and BADGE_DEFAULT_HEIGHT must not exceed 10000")
	}
	return nil
}

// validateSecurity validates security configuration
func (c *Config) validateSecurity() error {
	if err := c.validateAuthMode(); err != nil {
		return err
	}
	if err := c.validateCORS(); err != nil {
		return err
	}
	if err := c.validateRateLimits(); err != nil {
		return err
	}
	if err := c.validateAPIKey(); err != nil {
		return err
	}
	return c.validateAuthModeConfig()
}

// validAuthModes defines the allowed authentication modes
var validAuthModes = map[string]bool{
	"none": true,
	"jwt":  true,
}

// validateAuthMode checks if auth mode is valid
func (c *Config) validateAuthMode() error {
	if !validAuthModes[c.Security.AuthMode] {
		return fmt.Errorf("AUTH_MODE must be one of: none, jwt")
	}

	if c.Security.AuthMode == "none" && c.IsProduction() {
		return fmt.Errorf("AUTH_MODE=none is not allowed when ENVIRONMENT=production. " +
			"Either set AUTH_MODE=jwt or use ENVIRONMENT=development for testing purposes")
	}
	return nil
}

// validateAuthModeConfig validates configuration for the selected auth mode
func (c *Config) validateAuthModeConfig() error {
	if c.Security.AuthMode != "jwt" {
		return nil
	}
	if err := c.validateJWTSecret(); err != nil {
		return err
	}
	if c.Security.SessionTimeout < time.Minute {
		return fmt.Errorf("SESSION_TIMEOUT must be at least 1m")
	}
	return c.validateAdminCredentials()
}

// validateJWTSecret validates the JWT secret configuration
func (c *Config) validateJWTSecret() error {
	if c.Security.JWTSecret == "" {
		return fmt.Errorf("JWT_SECRET is required when AUTH_MODE is jwt")
	}
	if len(c.Security.JWTSecret) < 32 {
		return fmt.Errorf("JWT_SECRET must be at least 32 characters for security")
	}
	if containsPlaceholder(c.Security.JWTSecret) {
		return fmt.Errorf("JWT_SECRET contains a placeholder value - generate a secure secret with: openssl rand -base64 32")
	}
	return nil
}

// validateAdminCredentials validates admin username and password
func (c *Config) validateAdminCredentials() error {
	if c.Security.AdminUsername == "" {
		return fmt.Errorf("ADMIN_USERNAME is required when AUTH_MODE is jwt")
	}
	if c.Security.AdminPassword == "" {
		return fmt.Errorf("ADMIN_PASSWORD is required when AUTH_MODE is jwt")
	}
	if containsPlaceholder(c.Security.AdminPassword) {
		return fmt.Errorf("ADMIN_PASSWORD contains a placeholder value - set a secure password")
	}

	policy := DefaultPasswordPolicy()
	if !c.IsProduction() {
		policy = RelaxedPasswordPolicy()
	}
	if err := policy.Validate(c.Security.AdminPassword, c.Security.AdminUsername); err != nil {
		return fmt.Errorf("ADMIN_PASSWORD: %w", err)
	}
	return nil
}

// API key constants
const (
	minAPIKeyLength        = 16
	maxAPIKeyFailures      = 1000
	minAPIKeyFailureWindow = time.Second
)

// validateAPIKey validates the counter write key and its failure throttle.
// An empty key is allowed and disables PUT /api/counter/{name}.
func (c *Config) validateAPIKey() error {
	if c.Security.APIKey != "" {
		if len(c.Security.APIKey) < minAPIKeyLength {
			return fmt.Errorf("API_KEY must be at least %d characters", minAPIKeyLength)
		}
		if containsPlaceholder(c.Security.APIKey) {
			return fmt.Errorf("API_KEY contains a placeholder value - generate one with: openssl rand -hex 24")
		}
	}
	if c.Security.APIKeyMaxFailures < 1 || c.Security.APIKeyMaxFailures > maxAPIKeyFailures {
		return fmt.Errorf("API_KEY_MAX_FAILURES must be between 1 and %d", maxAPIKeyFailures)
	}
	if c.Security.APIKeyFailureWindow < minAPIKeyFailureWindow {
		return fmt.Errorf("API_KEY_FAILURE_WINDOW must be at least %v", minAPIKeyFailureWindow)
	}
	return nil
}

// validateCORS rejects wildcard origins in production when authentication is
// enabled: any site could then drive the admin API with a stolen token.
func (c *Config) validateCORS() error {
	if c.Security.AuthMode != "none" && c.hasWildcardCORS() && c.IsProduction() {
		return fmt.Errorf("CORS_ORIGINS=* (wildcard) is not allowed in production with authentication enabled. " +
			"Either set specific origins: CORS_ORIGINS=https://yourdomain.com,https://app.yourdomain.com " +
			"or use ENVIRONMENT=development for testing purposes")
	}
	return nil
}

// hasWildcardCORS checks if CORS is configured with wildcard origins
func (c *Config) hasWildcardCORS() bool {
	for _, origin := range c.Security.CORSOrigins {
		if origin == "*" {
			return true
		}
	}
	return false
}

// HasWildcardCORS reports whether any configured origin is "*".
func (c *Config) HasWildcardCORS() bool {
	return c.hasWildcardCORS()
}

// ShouldWarnAboutCORS returns true if CORS configuration has security concerns
// that should be logged at startup
func (c *Config) ShouldWarnAboutCORS() bool {
	return c.Security.AuthMode != "none" && c.hasWildcardCORS()
}

// Rate limit constants
const (
	minRateLimitRequests = 1
	maxRateLimitRequests = 100000
	minRateLimitWindow   = time.Second
	maxRateLimitWindow   = time.Hour
)

// validateRateLimits validates rate limiting configuration bounds.
func (c *Config) validateRateLimits() error {
	if c.Security.RateLimitDisabled {
		return nil
	}

	if c.Security.RateLimitReqs < minRateLimitRequests || c.Security.RateLimitReqs > maxRateLimitRequests {
		return fmt.Errorf("RATE_LIMIT_REQUESTS must be between %d and %d", minRateLimitRequests, maxRateLimitRequests)
	}
	if c.Security.RateLimitWindow < minRateLimitWindow || c.Security.RateLimitWindow > maxRateLimitWindow {
		return fmt.Errorf("RATE_LIMIT_WINDOW must be between %v and %v", minRateLimitWindow, maxRateLimitWindow)
	}
	return nil
}

// IsProduction returns true if the application is running in production mode.
func (c *Config) IsProduction() bool {
	env := strings.ToLower(c.Server.Environment)
	return env == "production" || env == "prod"
}

// IsDevelopment returns true if the application is running in development mode.
func (c *Config) IsDevelopment() bool {
	env := strings.ToLower(c.Server.Environment)
	return env == "" || env == "development" || env == "dev"
}

// validLogLevels defines the allowed log levels
var validLogLevels = map[string]bool{
	"trace": true,
	"debug": true,
	"info":  true,
	"warn":  true,
	"error": true,
}

// validLogFormats defines the allowed log formats
var validLogFormats = map[string]bool{
	"json":    true,
	"console": true,
}

// validateLogging validates logging configuration
func (c *Config) validateLogging() error {
	if !validLogLevels[c.Logging.Level] {
		return fmt.Errorf("LOG_LEVEL must be one of: trace, debug, info, warn, error")
	}
	if c.Logging.Format != "" && !validLogFormats[c.Logging.Format] {
		return fmt.Errorf("LOG_FORMAT must be one of: json, console")
	}
	return nil
}

// placeholderPatterns are fragments that indicate a value was copied from an
// example file and never replaced.
var placeholderPatterns = []string{
	"REPLACE",
	"CHANGEME",
	"CHANGE_ME",
	"YOUR_SECRET",
	"YOUR_PASSWORD",
	"YOUR_API_KEY",
	"PLACEHOLDER",
	"TODO",
	"FIXME",
	"XXX",
	"EXAMPLE",
}

// containsPlaceholder checks if a value contains common placeholder patterns
func containsPlaceholder(value string) bool {
	upperValue := strings.ToUpper(value)
	for _, pattern := range placeholderPatterns {
		if strings.Contains(upperValue, pattern) {
			return true
		}
	}
	return false
}
