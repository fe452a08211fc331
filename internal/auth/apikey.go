// Visit Counter - Dynamic SVG Visit Counter Badges
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/visitcounter

package auth

import (
	"crypto/subtle"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// APIKeyHeader carries the key for counter writes.
const APIKeyHeader = "x-api-key"

// APIKeyResult is the outcome of an API key check.
type APIKeyResult int

const (
	// APIKeyValid means the presented key matched.
	APIKeyValid APIKeyResult = iota
	// APIKeyMissing means no key was presented.
	APIKeyMissing
	// APIKeyInvalid means a wrong key was presented.
	APIKeyInvalid
	// APIKeyThrottled means the client exhausted its failure budget and the
	// key was not compared.
	APIKeyThrottled
	// APIKeyDisabled means no key is configured, so writes are unavailable.
	APIKeyDisabled
)

// String returns the result name used in logs and metrics.
func (r APIKeyResult) String() string {
	switch r {
	case APIKeyValid:
		return "valid"
	case APIKeyMissing:
		return "missing"
	case APIKeyInvalid:
		return "invalid"
	case APIKeyThrottled:
		return "throttled"
	case APIKeyDisabled:
		return "disabled"
	default:
		return "unknown"
	}
}

// failureEntry tracks wrong-key attempts from one client.
type failureEntry struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// APIKeyGuard compares presented keys in constant time and throttles clients
// that keep presenting wrong ones. Each client IP gets a token bucket holding
// maxFailures tokens that refills over window; every failure spends a token
// and an empty bucket rejects requests without comparing the key.
type APIKeyGuard struct {
	key         []byte
	maxFailures int
	window      time.Duration

	mu       sync.Mutex
	failures map[string]*failureEntry
	now      func() time.Time

	stopOnce sync.Once
	stopCh   chan struct{}
}

// NewAPIKeyGuard creates a guard for key. An empty key disables the guarded
// endpoints. cleanupInterval > 0 starts a goroutine that forgets idle
// clients; call Stop to end it.
func NewAPIKeyGuard(key string, maxFailures int, window, cleanupInterval time.Duration) *APIKeyGuard {
	if maxFailures < 1 {
		maxFailures = 1
	}
	if window <= 0 {
		window = 15 * time.Minute
	}

	g := &APIKeyGuard{
		key:         []byte(key),
		maxFailures: maxFailures,
		window:      window,
		failures:    make(map[string]*failureEntry),
		now:         time.Now,
		stopCh:      make(chan struct{}),
	}

	if cleanupInterval > 0 {
		go g.startCleanup(cleanupInterval)
	}
	return g
}

// Enabled reports whether a key is configured.
func (g *APIKeyGuard) Enabled() bool {
	return len(g.key) > 0
}

// Check validates presented for the client at ip.
func (g *APIKeyGuard) Check(ip, presented string) APIKeyResult {
	if !g.Enabled() {
		return APIKeyDisabled
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	now := g.now()
	if entry, ok := g.failures[ip]; ok && entry.limiter.TokensAt(now) < 1 {
		return APIKeyThrottled
	}

	if presented != "" && subtle.ConstantTimeCompare([]byte(presented), g.key) == 1 {
		return APIKeyValid
	}

	g.recordFailureLocked(ip, now)
	if presented == "" {
		return APIKeyMissing
	}
	return APIKeyInvalid
}

func (g *APIKeyGuard) recordFailureLocked(ip string, now time.Time) {
	entry, ok := g.failures[ip]
	if !ok {
		every := g.window / time.Duration(g.maxFailures)
		entry = &failureEntry{limiter: rate.NewLimiter(rate.Every(every), g.maxFailures)}
		g.failures[ip] = entry
	}
	entry.limiter.AllowN(now, 1)
	entry.lastSeen = now
}

// startCleanup periodically removes clients whose bucket has refilled.
func (g *APIKeyGuard) startCleanup(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			g.cleanup()
		case <-g.stopCh:
			return
		}
	}
}

func (g *APIKeyGuard) cleanup() {
	g.mu.Lock()
	defer g.mu.Unlock()

	cutoff := g.now().Add(-g.window)
	for ip, entry := range g.failures {
		if entry.lastSeen.Before(cutoff) {
			delete(g.failures, ip)
		}
	}
}

// TrackedClients returns the number of clients with recorded failures.
func (g *APIKeyGuard) TrackedClients() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return len(g.failures)
}

// Stop ends the cleanup goroutine. It is safe to call more than once.
func (g *APIKeyGuard) Stop() {
	g.stopOnce.Do(func() {
		close(g.stopCh)
	})
}
