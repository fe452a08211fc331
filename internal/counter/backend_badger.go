// Visit Counter - Dynamic SVG Visit Counter Badges
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/visitcounter

package counter

import (
	"errors"
	"fmt"
	"strings"
	"sync/atomic"

	"github.com/dgraph-io/badger/v4"
	"github.com/goccy/go-json"
)

// badgeKeyPrefix namespaces counter records in BadgerDB.
const badgeKeyPrefix = "badge:"

// BadgerBackend stores one JSON record per counter under "badge:<name>".
// Save writes only the changed key in a single transaction, so a counter and
// its metadata are always persisted together.
type BadgerBackend struct {
	db     *badger.DB
	closed atomic.Bool
}

// NewBadgerBackend opens (or creates) a BadgerDB database at path.
func NewBadgerBackend(path string) (*BadgerBackend, error) {
	if path == "" {
		return nil, errors.New("badger path cannot be empty")
	}

	opts := badger.DefaultOptions(path)
	opts.Logger = nil
	opts.ValueLogFileSize = 16 << 20
	opts.SyncWrites = true

	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("open badger db: %w", err)
	}
	return &BadgerBackend{db: db}, nil
}

// NewBadgerBackendFromDB wraps an already open database. Close still closes db.
func NewBadgerBackendFromDB(db *badger.DB) *BadgerBackend {
	return &BadgerBackend{db: db}
}

// Name implements Backend.
func (b *BadgerBackend) Name() string { return BackendBadger }

// Load implements Backend.
func (b *BadgerBackend) Load() (map[string]Record, error) {
	if b.closed.Load() {
		return nil, ErrBackendClosed
	}

	records := make(map[string]Record)
	var corrupt int

	err := b.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.PrefetchValues = true
		it := txn.NewIterator(opts)
		defer it.Close()

		prefix := []byte(badgeKeyPrefix)
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			item := it.Item()
			name := strings.TrimPrefix(string(item.Key()), badgeKeyPrefix)

			var badge Badge
			err := item.Value(func(val []byte) error {
				return json.Unmarshal(val, &badge)
			})
			if err != nil {
				corrupt++
				continue
			}
			badge.Name = name
			records[name] = Record{Badge: badge}
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("scan badges: %w", err)
	}
	if corrupt > 0 {
		return records, fmt.Errorf("skipped %d unreadable badge records", corrupt)
	}
	return records, nil
}

// Save implements Backend. Only change.Name is written.
func (b *BadgerBackend) Save(snapshot map[string]Record, change Change) error {
	if b.closed.Load() {
		return ErrBackendClosed
	}

	key := []byte(badgeKeyPrefix + change.Name)

	if change.Deleted {
		return b.db.Update(func(txn *badger.Txn) error {
			err := txn.Delete(key)
			if errors.Is(err, badger.ErrKeyNotFound) {
				return nil
			}
			return err
		})
	}

	rec, ok := snapshot[change.Name]
	if !ok {
		return fmt.Errorf("record %q missing from snapshot", change.Name)
	}
	data, err := json.Marshal(rec.Badge)
	if err != nil {
		return fmt.Errorf("marshal badge: %w", err)
	}

	return b.db.Update(func(txn *badger.Txn) error {
		return txn.Set(key, data)
	})
}

// RunGC runs value-log garbage collection until nothing is left to rewrite.
// It reports whether at least one file was rewritten.
func (b *BadgerBackend) RunGC(discardRatio float64) (bool, error) {
	if b.closed.Load() {
		return false, ErrBackendClosed
	}

	rewritten := false
	for {
		err := b.db.RunValueLogGC(discardRatio)
		if errors.Is(err, badger.ErrNoRewrite) {
			break
		}
		if err != nil {
			return rewritten, fmt.Errorf("run GC: %w", err)
		}
		rewritten = true
	}
	return rewritten, nil
}

// Close implements Backend.
func (b *BadgerBackend) Close() error {
	if !b.closed.CompareAndSwap(false, true) {
		return nil
	}
	return b.db.Close()
}
