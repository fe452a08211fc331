// Visit Counter - Dynamic SVG Visit Counter Badges
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/visitcounter

package counter

import "time"

// Badge is the public view of a named counter.
type Badge struct {
	Name         string    `json:"name"`
	Count        uint64    `json:"count"`
	CreatedAt    time.Time `json:"created_at"`
	LastAccessed time.Time `json:"last_accessed"`
}

// Record is a counter together with its badge metadata. Backends load and
// save records; the store never lets the count and metadata drift apart.
type Record struct {
	Badge

	// Untracked marks a count that was loaded without badge metadata. It is
	// reported by Get but hidden from GetBadge and GetAllBadges until the next
	// Increment or Set stamps it.
	Untracked bool `json:"-"`
}

// Change describes the mutation a Save call persists.
type Change struct {
	Name    string
	Deleted bool
}

// touch applies a count update at now. last_accessed never moves backwards
// even if the wall clock does.
func (r *Record) touch(count uint64, now time.Time) {
	r.Count = count
	if r.Untracked || r.CreatedAt.IsZero() {
		r.CreatedAt = now
	}
	if now.After(r.LastAccessed) {
		r.LastAccessed = now
	}
	r.Untracked = false
}
