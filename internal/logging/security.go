// Visit Counter - Dynamic SVG Visit Counter Badges
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/visitcounter

package logging

import (
	"strings"

	"github.com/rs/zerolog"
)

// SecurityEvent represents a security-relevant event for audit logging.
type SecurityEvent struct {
	// Event is the type of event (e.g., "login_success", "api_key_rejected").
	Event string
	// Username is the user's username (if known).
	Username string
	// Method is the credential type involved (password, jwt, api_key).
	Method string
	// IPAddress is the client's IP address.
	IPAddress string
	// UserAgent is the client's user agent (truncated).
	UserAgent string
	// Success indicates if the operation was successful.
	Success bool
	// Error is the error message if the operation failed.
	Error string
	// Details contains additional details, sanitized by key.
	Details map[string]string
}

// SecurityLogger logs authentication events with sensitive values masked.
type SecurityLogger struct {
	logger zerolog.Logger
}

// NewSecurityLogger creates a new security logger.
func NewSecurityLogger() *SecurityLogger {
	return &SecurityLogger{
		logger: With().Str("component", "auth").Logger(),
	}
}

// NewSecurityLoggerWithLogger creates a security logger with a custom zerolog logger.
//
//nolint:gocritic // zerolog.Logger is designed to be passed by value
func NewSecurityLoggerWithLogger(logger zerolog.Logger) *SecurityLogger {
	return &SecurityLogger{
		logger: logger.With().Str("component", "auth").Logger(),
	}
}

// LogEvent logs a security event. Failures are logged at warn level.
func (l *SecurityLogger) LogEvent(event *SecurityEvent) {
	e := l.logger.Info()
	status := "success"
	if !event.Success {
		e = l.logger.Warn()
		status = "failed"
	}
	e = e.Str("event", event.Event).Str("status", status)

	if event.Username != "" {
		e = e.Str("username", SanitizeUsername(event.Username))
	}
	if event.Method != "" {
		e = e.Str("method", event.Method)
	}
	if event.IPAddress != "" {
		e = e.Str("ip", event.IPAddress)
	}
	if event.UserAgent != "" {
		e = e.Str("user_agent", truncateString(event.UserAgent, 100))
	}
	if event.Error != "" && !event.Success {
		e = e.Str("error", SanitizeError(event.Error))
	}
	for k, v := range event.Details {
		e = e.Str(k, SanitizeValue(k, v))
	}

	e.Msg("")
}

// LogLoginSuccess logs a successful admin login.
func (l *SecurityLogger) LogLoginSuccess(username, ip, userAgent string) {
	l.LogEvent(&SecurityEvent{
		Event:     "login_success",
		Username:  username,
		Method:    "password",
		IPAddress: ip,
		UserAgent: userAgent,
		Success:   true,
	})
}

// LogLoginFailure logs a failed admin login.
func (l *SecurityLogger) LogLoginFailure(username, ip, userAgent, reason string) {
	l.LogEvent(&SecurityEvent{
		Event:     "login_failed",
		Username:  username,
		Method:    "password",
		IPAddress: ip,
		UserAgent: userAgent,
		Error:     reason,
	})
}

// LogTokenRejected logs a bearer token that failed validation.
func (l *SecurityLogger) LogTokenRejected(ip, path, reason string) {
	l.LogEvent(&SecurityEvent{
		Event:     "token_rejected",
		Method:    "jwt",
		IPAddress: ip,
		Error:     reason,
		Details:   map[string]string{"path": path},
	})
}

// LogAPIKeyRejected logs a missing or wrong x-api-key. throttled is true when
// the request was refused without checking the key.
func (l *SecurityLogger) LogAPIKeyRejected(ip, path string, throttled bool) {
	event := "api_key_rejected"
	if throttled {
		event = "api_key_throttled"
	}
	l.LogEvent(&SecurityEvent{
		Event:     event,
		Method:    "api_key",
		IPAddress: ip,
		Details:   map[string]string{"path": path},
	})
}

// SanitizeToken masks a token, showing only first and last 4 characters.
// Example: "eyJhbGciOiJIUzI1NiIsInR5cCI6IkpXVCJ9..." -> "eyJh...kpXV"
func SanitizeToken(token string) string {
	if token == "" {
		return ""
	}
	if len(token) <= 12 {
		return "***"
	}
	return token[:4] + "..." + token[len(token)-4:]
}

// SanitizeUsername masks a username, keeping first 2 characters.
// Example: "johndoe" -> "jo***"
func SanitizeUsername(username string) string {
	if username == "" {
		return ""
	}
	if len(username) <= 2 {
		return "***"
	}
	return username[:2] + "***"
}

// SanitizeError replaces error messages that mention credentials with a
// generic message and truncates the rest.
func SanitizeError(err string) string {
	sensitivePatterns := []string{
		"password",
		"secret",
		"token",
		"key",
		"bearer",
		"authorization",
		"cookie",
	}

	lowerErr := strings.ToLower(err)
	for _, pattern := range sensitivePatterns {
		if strings.Contains(lowerErr, pattern) {
			return "authentication error"
		}
	}

	return truncateString(err, 200)
}

var sensitiveKeys = map[string]bool{
	"token":         true,
	"password":      true,
	"secret":        true,
	"api_key":       true,
	"apikey":        true,
	"x-api-key":     true,
	"authorization": true,
	"bearer":        true,
	"cookie":        true,
}

// SanitizeValue masks value when key names a credential.
func SanitizeValue(key, value string) string {
	if sensitiveKeys[strings.ToLower(key)] {
		return SanitizeToken(value)
	}
	return value
}

// truncateString truncates a string to a maximum length.
func truncateString(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen] + "..."
}
