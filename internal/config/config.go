// Visit Counter - Dynamic SVG Visit Counter Badges
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/visitcounter

package config

import (
	"net"
	"strconv"
	"time"
)

// Config holds all application configuration
type Config struct {
	Server   ServerConfig   `koanf:"server"`
	Storage  StorageConfig  `koanf:"storage"`
	Badge    BadgeConfig    `koanf:"badge"`
	Security SecurityConfig `koanf:"security"`
	Logging  LoggingConfig  `koanf:"logging"`
}

// ServerConfig holds HTTP server settings
type ServerConfig struct {
	Port        int           `koanf:"port"`
	Host        string        `koanf:"host"`
	Timeout     time.Duration `koanf:"timeout"`
	Environment string        `koanf:"environment"` // "development", "staging", "production" (default: "development")

	// StaticDir is served at / when it exists. Empty disables static serving.
	StaticDir string `koanf:"static_dir"`
}

// StorageConfig selects where counters are persisted
type StorageConfig struct {
	// Backend is "file" (default), "badger" or "memory".
	Backend string `koanf:"backend"`

	// Path is the counters JSON file for the file backend. Badge metadata is
	// written next to it with a "_badges" suffix.
	Path string `koanf:"path"`

	// BadgerPath is the database directory for the badger backend.
	BadgerPath string `koanf:"badger_path"`

	// GCInterval is how often badger value-log GC runs.
	GCInterval time.Duration `koanf:"gc_interval"`

	// GCDiscardRatio is passed to badger's RunValueLogGC.
	GCDiscardRatio float64 `koanf:"gc_discard_ratio"`
}

// BadgeConfig holds rendering defaults
type BadgeConfig struct {
	DefaultLabel  string `koanf:"default_label"`
	DefaultWidth  uint32 `koanf:"default_width"`
	DefaultHeight uint32 `koanf:"default_height"`

	// StylesheetPath replaces the embedded base stylesheet when set.
	StylesheetPath string `koanf:"stylesheet_path"`
}

// SecurityConfig holds authentication and request limiting settings
type SecurityConfig struct {
	AuthMode       string        `koanf:"auth_mode"`
	JWTSecret      string        `koanf:"jwt_secret"`
	SessionTimeout time.Duration `koanf:"session_timeout"`
	AdminUsername  string        `koanf:"admin_username"`
	AdminPassword  string        `koanf:"admin_password"`

	// APIKey protects PUT /api/counter/{name}. Empty disables the endpoint.
	APIKey string `koanf:"api_key"`

	// APIKeyMaxFailures wrong keys per client IP are tolerated within
	// APIKeyFailureWindow before requests are rejected with 429.
	APIKeyMaxFailures   int           `koanf:"api_key_max_failures"`
	APIKeyFailureWindow time.Duration `koanf:"api_key_failure_window"`

	RateLimitReqs     int           `koanf:"rate_limit_reqs"`
	RateLimitWindow   time.Duration `koanf:"rate_limit_window"`
	RateLimitDisabled bool          `koanf:"rate_limit_disabled"`
	CORSOrigins       []string      `koanf:"cors_origins"`
}

// LoggingConfig holds logging configuration
type LoggingConfig struct {
	// Level is the minimum log level: trace, debug, info, warn, error.
	// Default: info
	Level string `koanf:"level"`

	// Format is the output format: json or console.
	// Default: json
	Format string `koanf:"format"`

	// Caller includes file:line in log output.
	// Default: false
	Caller bool `koanf:"caller"`
}

// Load reads configuration from, in increasing priority:
//  1. Built-in defaults
//  2. Config file (config.yaml if exists, or path specified in CONFIG_PATH env var)
//  3. Environment variables
//
// See LoadWithKoanf() for the underlying implementation.
func Load() (*Config, error) {
	return LoadWithKoanf()
}

// Addr returns the host:port the HTTP server listens on.
func (s ServerConfig) Addr() string {
	return net.JoinHostPort(s.Host, strconv.Itoa(s.Port))
}
