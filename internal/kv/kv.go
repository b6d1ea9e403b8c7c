// Package kv provides the flat key/value store Marquee persists user state in.
//
// Values are opaque strings. Callers own their encoding (the watchlist stores
// a JSON array, the theme a bare word). Two backends exist: a TOML file that
// is rewritten in full on every Set, and a single-table SQLite database.
package kv

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Store is a flat string key/value store.
type Store interface {
	// Get returns the value for key. ok is false when the key has never been set.
	Get(key string) (value string, ok bool, err error)
	Set(key, value string) error
	Close() error
}

// Supported backend names.
const (
	BackendFile   = "file"
	BackendSQLite = "sqlite"
)

const (
	fileStoreName   = "store.toml"
	sqliteStoreName = "marquee.db"
)

// Open creates dir if needed and opens the named backend inside it.
func Open(backend, dir string) (Store, error) {
	if strings.TrimSpace(dir) == "" {
		return nil, fmt.Errorf("store dir is empty")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create store dir: %w", err)
	}

	switch strings.ToLower(strings.TrimSpace(backend)) {
	case "", BackendFile:
		store, err := OpenFile(filepath.Join(dir, fileStoreName))
		if err != nil {
			return nil, err
		}
		return store, nil
	case BackendSQLite:
		store, err := OpenSQLite(filepath.Join(dir, sqliteStoreName))
		if err != nil {
			return nil, err
		}
		return store, nil
	default:
		return nil, fmt.Errorf("unknown store backend %q", backend)
	}
}
