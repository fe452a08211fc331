// Visit Counter - Dynamic SVG Visit Counter Badges
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/visitcounter

package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
)

// DefaultConfigPaths lists the paths where config files are searched in order of priority.
// The first file found will be used.
var DefaultConfigPaths = []string{
	"config.yaml",
	"config.yml",
	"/etc/visitcounter/config.yaml",
	"/etc/visitcounter/config.yml",
}

// ConfigPathEnvVar is the environment variable that can override the config file path.
const ConfigPathEnvVar = "CONFIG_PATH"

// defaultConfig returns a Config struct with all default values.
// These defaults are applied first, then overridden by config file and env vars.
func defaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Port:        8000,
			Host:        "0.0.0.0",
			Timeout:     30 * time.Second,
			Environment: "development",
			StaticDir:   "/app/frontend",
		},
		Storage: StorageConfig{
			Backend:        "file",
			Path:           "/data/counters.json",
			BadgerPath:     "/data/badger",
			GCInterval:     10 * time.Minute,
			GCDiscardRatio: 0.5,
		},
		Badge: BadgeConfig{
			DefaultLabel:   "Visits",
			DefaultWidth:   150,
			DefaultHeight:  20,
			StylesheetPath: "",
		},
		Security: SecurityConfig{
			AuthMode:            "jwt",
			JWTSecret:           "",
			SessionTimeout:      24 * time.Hour,
			AdminUsername:       "admin",
			AdminPassword:       "",
			APIKey:              "",
			APIKeyMaxFailures:   5,
			APIKeyFailureWindow: 15 * time.Minute,
			RateLimitReqs:       100,
			RateLimitWindow:     time.Minute,
			RateLimitDisabled:   false,
			CORSOrigins:         []string{"*"},
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
			Caller: false,
		},
	}
}

// LoadWithKoanf loads configuration using Koanf v2 with layered sources:
//  1. Defaults: Built-in defaults
//  2. Config File: Optional YAML config file (if exists)
//  3. Environment Variables: Override any setting
func LoadWithKoanf() (*Config, error) {
	k := koanf.New(".")

	// Layer 1: defaults
	if err := k.Load(structs.Provider(defaultConfig(), "koanf"), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	// Layer 2: config file (optional)
	if configPath := findConfigFile(); configPath != "" {
		if err := k.Load(file.Provider(configPath), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("failed to load config file %s: %w", configPath, err)
		}
	}

	// Layer 3: environment variables
	// DATA_PATH -> storage.path
	// HTTP_PORT -> server.port
	if err := k.Load(env.Provider("", ".", envTransformFunc), nil); err != nil {
		return nil, fmt.Errorf("failed to load environment variables: %w", err)
	}

	if err := processSliceFields(k); err != nil {
		return nil, fmt.Errorf("failed to process slice fields: %w", err)
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal configuration: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

// findConfigFile returns the first existing config file, or "" if none.
func findConfigFile() string {
	if envPath := os.Getenv(ConfigPathEnvVar); envPath != "" {
		if _, err := os.Stat(envPath); err == nil {
			return envPath
		}
	}

	for _, path := range DefaultConfigPaths {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}

	return ""
}

// sliceConfigPaths defines which config paths should be parsed as comma-separated slices
var sliceConfigPaths = []string{
	"security.cors_origins",
}

// processSliceFields converts comma-separated string values to slices for known slice fields.
// Env vars arrive as strings; YAML lists are left alone.
func processSliceFields(k *koanf.Koanf) error {
	for _, path := range sliceConfigPaths {
		strVal, ok := k.Get(path).(string)
		if !ok || strVal == "" {
			continue
		}

		parts := strings.Split(strVal, ",")
		trimmed := make([]string, 0, len(parts))
		for _, p := range parts {
			if p = strings.TrimSpace(p); p != "" {
				trimmed = append(trimmed, p)
			}
		}
		if len(trimmed) == 0 {
			continue
		}
		if err := k.Set(path, trimmed); err != nil {
			return fmt.Errorf("failed to set %s: %w", path, err)
		}
	}
	return nil
}

// envMappings maps lower-cased environment variable names to koanf paths.
var envMappings = map[string]string{
	// Server
	"http_host":    "server.host",
	"http_port":    "server.port",
	"http_timeout": "server.timeout",
	"environment":  "server.environment",
	"static_dir":   "server.static_dir",

	// Storage
	"storage_backend":         "storage.backend",
	"data_path":               "storage.path",
	"badger_path":             "storage.badger_path",
	"badger_gc_interval":      "storage.gc_interval",
	"badger_gc_discard_ratio": "storage.gc_discard_ratio",

	// Badge rendering
	"badge_default_label":  "badge.default_label",
	"badge_default_width":  "badge.default_width",
	"badge_default_height": "badge.default_height",
	"badge_stylesheet":     "badge.stylesheet_path",

	// Security
	"auth_mode":              "security.auth_mode",
	"jwt_secret":             "security.jwt_secret",
	"session_timeout":        "security.session_timeout",
	"admin_username":         "security.admin_username",
	"admin_password":         "security.admin_password",
	"api_key":                "security.api_key",
	"api_key_max_failures":   "security.api_key_max_failures",
	"api_key_failure_window": "security.api_key_failure_window",
	"rate_limit_requests":    "security.rate_limit_reqs",
	"rate_limit_window":      "security.rate_limit_window",
	"disable_rate_limit":     "security.rate_limit_disabled",
	"cors_origins":           "security.cors_origins",

	// Logging
	"log_level":  "logging.level",
	"log_format": "logging.format",
	"log_caller": "logging.caller",
}

// envTransformFunc transforms environment variable names to koanf config paths.
//
// Examples:
//   - HTTP_PORT -> server.port
//   - DATA_PATH -> storage.path
//   - API_KEY -> security.api_key
func envTransformFunc(key string) string {
	if mapped, ok := envMappings[strings.ToLower(key)]; ok {
		return mapped
	}

	// Unmapped variables are skipped so unrelated environment does not leak
	// into the configuration.
	return ""
}
