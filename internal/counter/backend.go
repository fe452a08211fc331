// Visit Counter - Dynamic SVG Visit Counter Badges
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/visitcounter

package counter

import (
	"errors"
	"fmt"
)

// Backend kinds accepted by OpenBackend.
const (
	BackendFile   = "file"
	BackendBadger = "badger"
	BackendMemory = "memory"
)

var (
	// ErrUnknownBackend is returned by OpenBackend for an unsupported kind.
	ErrUnknownBackend = errors.New("unknown storage backend")

	// ErrBackendClosed is returned by operations on a closed backend.
	ErrBackendClosed = errors.New("storage backend closed")
)

// Backend persists counter records.
//
// Save is called with the store's write lock held, once per mutation. The
// snapshot map is owned by the store and must not be retained or modified.
// Implementations choose whether to rewrite the whole snapshot or only the
// changed record.
type Backend interface {
	Name() string
	Load() (map[string]Record, error)
	Save(snapshot map[string]Record, change Change) error
	Close() error
}

// BackendConfig selects and locates a backend.
type BackendConfig struct {
	Kind string

	// Path is the counters JSON file for the file backend.
	Path string

	// BadgerPath is the database directory for the badger backend.
	BadgerPath string
}

// OpenBackend creates the backend described by cfg.
func OpenBackend(cfg BackendConfig) (Backend, error) {
	switch cfg.Kind {
	case "", BackendFile:
		return NewFileBackend(cfg.Path), nil
	case BackendBadger:
		b, err := NewBadgerBackend(cfg.BadgerPath)
		if err != nil {
			return nil, fmt.Errorf("open badger backend: %w", err)
		}
		return b, nil
	case BackendMemory:
		return NewMemoryBackend(), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownBackend, cfg.Kind)
	}
}
