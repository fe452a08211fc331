// Visit Counter - Dynamic SVG Visit Counter Badges
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/visitcounter

package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/thejerf/suture/v4"

	"github.com/tomtom215/visitcounter/internal/logging"
	"github.com/tomtom215/visitcounter/internal/metrics"
)

// GarbageCollector is satisfied by *counter.BadgerBackend.
type GarbageCollector interface {
	RunGC(discardRatio float64) (bool, error)
}

// StorageGCService periodically reclaims space in the badger value log.
// Every counter write appends a new value, so without GC the log grows with
// traffic rather than with the number of badges.
type StorageGCService struct {
	gc           GarbageCollector
	interval     time.Duration
	discardRatio float64
	name         string

	// errBackendClosed stops the loop for good instead of restarting it.
	errBackendClosed error
}

// NewStorageGCService creates the service. closedErr is the error the backend
// returns once closed; seeing it ends the service without a restart.
func NewStorageGCService(gc GarbageCollector, interval time.Duration, discardRatio float64, closedErr error) *StorageGCService {
	if interval <= 0 {
		interval = 10 * time.Minute
	}
	if discardRatio <= 0 || discardRatio >= 1 {
		discardRatio = 0.5
	}
	return &StorageGCService{
		gc:               gc,
		interval:         interval,
		discardRatio:     discardRatio,
		name:             "storage-gc",
		errBackendClosed: closedErr,
	}
}

// Serve implements suture.Service.
func (s *StorageGCService) Serve(ctx context.Context) error {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			if err := s.runOnce(); err != nil {
				if s.errBackendClosed != nil && errors.Is(err, s.errBackendClosed) {
					logging.Info().Msg("Storage closed, stopping value-log GC")
					return suture.ErrDoNotRestart
				}
				return fmt.Errorf("value-log GC failed: %w", err)
			}
		}
	}
}

// runOnce runs one GC pass and records its outcome.
func (s *StorageGCService) runOnce() error {
	start := time.Now()
	rewritten, err := s.gc.RunGC(s.discardRatio)
	switch {
	case err != nil:
		metrics.RecordStorageGC("error")
		return err
	case rewritten:
		metrics.RecordStorageGC("rewritten")
		logging.Info().Dur("duration", time.Since(start)).Msg("Value-log GC reclaimed space")
	default:
		metrics.RecordStorageGC("noop")
	}
	return nil
}

// String implements fmt.Stringer for suture's log messages.
func (s *StorageGCService) String() string {
	return s.name
}
