// Visit Counter - Dynamic SVG Visit Counter Badges
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/visitcounter

package counter

import "sync"

// MemoryBackend keeps the last saved snapshot in memory. Nothing survives a
// restart. A MemoryBackend can seed a store through Preload.
type MemoryBackend struct {
	mu      sync.Mutex
	records map[string]Record
	saves   int
	failErr error
}

// NewMemoryBackend returns an empty in-memory backend.
func NewMemoryBackend() *MemoryBackend {
	return &MemoryBackend{records: make(map[string]Record)}
}

// Name implements Backend.
func (m *MemoryBackend) Name() string { return BackendMemory }

// Preload replaces the records returned by the next Load.
func (m *MemoryBackend) Preload(records map[string]Record) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.records = copyRecords(records)
}

// FailWith makes every following Save return err. Pass nil to recover.
func (m *MemoryBackend) FailWith(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.failErr = err
}

// Saves reports how many Save calls succeeded.
func (m *MemoryBackend) Saves() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.saves
}

// Load implements Backend.
func (m *MemoryBackend) Load() (map[string]Record, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return copyRecords(m.records), nil
}

// Save implements Backend.
func (m *MemoryBackend) Save(snapshot map[string]Record, _ Change) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failErr != nil {
		return m.failErr
	}
	m.records = copyRecords(snapshot)
	m.saves++
	return nil
}

// Close implements Backend.
func (m *MemoryBackend) Close() error { return nil }

func copyRecords(src map[string]Record) map[string]Record {
	dst := make(map[string]Record, len(src))
	for k, v := range src {
		dst[k] = v
	}
	return dst
}
