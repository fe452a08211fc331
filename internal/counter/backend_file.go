// Visit Counter - Dynamic SVG Visit Counter Badges
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/visitcounter

package counter

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/goccy/go-json"
)

// FileBackend stores counters as a pair of pretty-printed JSON files:
//
//	counters.json         {"home": 42}
//	counters_badges.json  {"home": {"name": "home", "count": 42, ...}}
//
// Every Save rewrites both files. Each file is written to a temporary file
// in the same directory and renamed over the target, so readers see either
// the old or the new content.
type FileBackend struct {
	path       string
	badgesPath string
}

// NewFileBackend returns a backend for the counters file at path. The badge
// file lives next to it (see BadgesPath).
func NewFileBackend(path string) *FileBackend {
	return &FileBackend{path: path, badgesPath: BadgesPath(path)}
}

// BadgesPath derives the badge metadata path from the counters path:
// "/data/counters.json" becomes "/data/counters_badges.json" and a path
// without an extension gets "_badges.json" appended.
func BadgesPath(path string) string {
	ext := filepath.Ext(path)
	if ext == "" {
		return path + "_badges.json"
	}
	return strings.TrimSuffix(path, ext) + "_badges" + ext
}

// Name implements Backend.
func (f *FileBackend) Name() string { return BackendFile }

// Path returns the counters file path.
func (f *FileBackend) Path() string { return f.path }

// Load reads both files. Each file is treated as empty when it is missing
// or cannot be parsed; the first such problem is returned alongside the
// records that could be read.
func (f *FileBackend) Load() (map[string]Record, error) {
	var errs []error

	counts := make(map[string]uint64)
	if err := readJSONFile(f.path, &counts); err != nil {
		errs = append(errs, err)
		counts = make(map[string]uint64)
	}

	badges := make(map[string]Badge)
	if err := readJSONFile(f.badgesPath, &badges); err != nil {
		errs = append(errs, err)
		badges = make(map[string]Badge)
	}

	records := make(map[string]Record, len(counts)+len(badges))
	for name, b := range badges {
		b.Name = name
		records[name] = Record{Badge: b}
	}
	for name, count := range counts {
		rec, ok := records[name]
		if !ok {
			records[name] = Record{Badge: Badge{Name: name, Count: count}, Untracked: true}
			continue
		}
		rec.Count = count
		records[name] = rec
	}

	return records, errors.Join(errs...)
}

// Save rewrites both files from snapshot.
func (f *FileBackend) Save(snapshot map[string]Record, _ Change) error {
	counts := make(map[string]uint64, len(snapshot))
	badges := make(map[string]Badge, len(snapshot))
	for name, rec := range snapshot {
		counts[name] = rec.Count
		if !rec.Untracked {
			badges[name] = rec.Badge
		}
	}

	if err := writeJSONFile(f.path, counts); err != nil {
		return fmt.Errorf("write counters: %w", err)
	}
	if err := writeJSONFile(f.badgesPath, badges); err != nil {
		return fmt.Errorf("write badges: %w", err)
	}
	return nil
}

// Close implements Backend.
func (f *FileBackend) Close() error { return nil }

// readJSONFile decodes path into v. A missing file is not an error.
func readJSONFile(path string, v any) error {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("read %s: %w", path, err)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("parse %s: %w", path, err)
	}
	return nil
}

func writeJSONFile(path string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal: %w", err)
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return fmt.Errorf("create directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("write temp file: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("sync temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("close temp file: %w", err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("rename temp file: %w", err)
	}
	return nil
}
