// Visit Counter - Dynamic SVG Visit Counter Badges
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/visitcounter

package counter

import (
	"math"
	"sort"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/tomtom215/visitcounter/internal/logging"
	"github.com/tomtom215/visitcounter/internal/metrics"
)

// Store holds every counter in memory and writes through to a Backend.
//
// One RWMutex guards the record map. Mutations keep the write lock while the
// backend saves, so the persisted state always matches the order in which
// mutations were applied. Persistence failures never reach callers: they are
// logged, counted and reported by PersistHealth, and the in-memory value
// stays authoritative.
type Store struct {
	mu         sync.RWMutex
	records    map[string]Record
	backend    Backend
	now        func() time.Time
	logger     zerolog.Logger
	persistErr error
}

// Option configures a Store.
type Option func(*Store)

// WithClock overrides the time source. Tests use it to control timestamps.
func WithClock(now func() time.Time) Option {
	return func(s *Store) {
		s.now = now
	}
}

// WithLogger overrides the store logger.
//
//nolint:gocritic // zerolog.Logger is designed to be passed by value
func WithLogger(logger zerolog.Logger) Option {
	return func(s *Store) {
		s.logger = logger
	}
}

// New creates a store and loads existing records from backend. A load error
// is logged and whatever could be read is kept; it never prevents startup.
func New(backend Backend, opts ...Option) *Store {
	s := &Store{
		backend: backend,
		now:     func() time.Time { return time.Now().UTC() },
		logger:  logging.WithComponent("counter"),
	}
	for _, opt := range opts {
		opt(s)
	}

	records, err := backend.Load()
	if err != nil {
		s.logger.Warn().Err(err).Str("backend", backend.Name()).Msg("Failed to load counters, continuing with readable records")
	}
	if records == nil {
		records = make(map[string]Record)
	}
	s.records = records
	metrics.SetBadgeCount(len(records))

	s.logger.Info().
		Str("backend", backend.Name()).
		Int("counters", len(records)).
		Msg("Counter store ready")

	return s
}

// Get returns the count for name, or 0 if it does not exist.
func (s *Store) Get(name string) uint64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.records[name].Count
}

// Increment adds one to name, creating it if needed, and returns the new count.
// The count saturates at math.MaxUint64 instead of wrapping.
func (s *Store) Increment(name string) uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec, ok := s.records[name]
	if !ok {
		rec = Record{Badge: Badge{Name: name}}
	}
	next := rec.Count
	if next < math.MaxUint64 {
		next++
	}
	rec.touch(next, s.now())
	s.records[name] = rec

	s.persistLocked(Change{Name: name}, "increment")
	return rec.Count
}

// Set overwrites the count for name. The value may be lower than before.
func (s *Store) Set(name string, value uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec, ok := s.records[name]
	if !ok {
		rec = Record{Badge: Badge{Name: name}}
	}
	rec.touch(value, s.now())
	s.records[name] = rec

	s.persistLocked(Change{Name: name}, "set")
}

// UpdateBadge sets the count of an existing badge and returns it. It reports
// false, and changes nothing, when name is not a badge.
func (s *Store) UpdateBadge(name string, value uint64) (Badge, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec, ok := s.records[name]
	if !ok || rec.Untracked {
		return Badge{}, false
	}
	rec.touch(value, s.now())
	s.records[name] = rec

	s.persistLocked(Change{Name: name}, "set")
	return rec.Badge, true
}

// CreateBadge creates or replaces name with initial (0 when nil). Both
// timestamps are reset. Callers that must not overwrite check GetBadge first.
func (s *Store) CreateBadge(name string, initial *uint64) Badge {
	s.mu.Lock()
	defer s.mu.Unlock()

	var count uint64
	if initial != nil {
		count = *initial
	}
	now := s.now()
	rec := Record{Badge: Badge{
		Name:         name,
		Count:        count,
		CreatedAt:    now,
		LastAccessed: now,
	}}
	s.records[name] = rec

	s.persistLocked(Change{Name: name}, "create")
	return rec.Badge
}

// GetBadge returns the badge for name.
func (s *Store) GetBadge(name string) (Badge, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rec, ok := s.records[name]
	if !ok || rec.Untracked {
		return Badge{}, false
	}
	return rec.Badge, true
}

// GetAllBadges returns a snapshot of every badge sorted by name.
func (s *Store) GetAllBadges() []Badge {
	s.mu.RLock()
	badges := make([]Badge, 0, len(s.records))
	for _, rec := range s.records {
		if rec.Untracked {
			continue
		}
		badges = append(badges, rec.Badge)
	}
	s.mu.RUnlock()

	sort.Slice(badges, func(i, j int) bool {
		return badges[i].Name < badges[j].Name
	})
	return badges
}

// DeleteBadge removes name and reports whether it existed.
func (s *Store) DeleteBadge(name string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.records[name]; !ok {
		return false
	}
	delete(s.records, name)

	s.persistLocked(Change{Name: name, Deleted: true}, "delete")
	return true
}

// Len returns the number of counters held in memory.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.records)
}

// PersistHealth returns the error from the most recent save, or nil if it
// succeeded.
func (s *Store) PersistHealth() error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.persistErr
}

// Backend returns the backend the store writes to.
func (s *Store) Backend() Backend {
	return s.backend
}

// Close closes the backend.
func (s *Store) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.backend.Close()
}

// persistLocked must be called with s.mu held for writing.
func (s *Store) persistLocked(change Change, operation string) {
	metrics.RecordCounterMutation(operation)
	metrics.SetBadgeCount(len(s.records))

	start := time.Now()
	err := s.backend.Save(s.records, change)
	metrics.RecordPersist(s.backend.Name(), time.Since(start), err)

	if err != nil {
		s.logger.Error().
			Err(err).
			Str("badge", change.Name).
			Str("operation", operation).
			Msg("Failed to persist counters")
	}
	s.persistErr = err
}
