// Visit Counter - Dynamic SVG Visit Counter Badges
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/visitcounter

/*
Package counter provides the durable, concurrency-safe store of named visit
counters and their badge metadata.

A counter and its badge are a single Record: the count, when it was created
and when it was last incremented or set. The Store keeps all records in
memory and writes every mutation through to a Backend before returning.

# Backends

  - FileBackend (default): two JSON files side by side, counts in
    counters.json and metadata in counters_badges.json. Both are rewritten on
    every mutation via temp file and rename.
  - BadgerBackend: one key per counter ("badge:<name>"), written in a single
    transaction. Value-log GC is driven by a supervised service.
  - MemoryBackend: no persistence.

# Usage

	backend, err := counter.OpenBackend(counter.BackendConfig{
	    Kind: cfg.Storage.Backend,
	    Path: cfg.Storage.Path,
	})
	if err != nil {
	    return err
	}
	store := counter.New(backend)
	defer store.Close()

	n := store.Increment("home")

# Failure Semantics

Load errors start the store with whatever records were readable. Save errors
are logged and exported as visitcounter_persist_failures_total; the caller
still sees the in-memory result. PersistHealth exposes the most recent save
error for readiness checks.

A count loaded without matching badge metadata (possible after a partial
write of the file pair) is reported by Get but hidden from GetBadge and
GetAllBadges until the next Increment or Set.
*/
package counter
