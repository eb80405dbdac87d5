// Package storage provides shelf store backend selection.
package storage

import (
	"fmt"
	"strings"

	"poemlens/internal/colors"
	"poemlens/internal/config"
	"poemlens/internal/gallery"
	"poemlens/internal/storage/sqlite"
)

const (
	// BackendMemory selects the sorted-slice in-memory store.
	BackendMemory = "memory"
	// BackendSQLite selects the SQLite-backed store (in-memory database).
	BackendSQLite = "sqlite"
)

var _ gallery.Store = (*sqlite.Store)(nil)
var _ gallery.Store = (*gallery.MemoryStore)(nil)

// NewFromConfig creates a shelf store based on the loaded configuration.
func NewFromConfig() gallery.Store {
	backend := config.Get("store_backend", BackendMemory)
	return NewForBackend(backend)
}

// NewForBackend creates a shelf store for the provided backend name.
// An unknown backend or a failed SQLite open falls back to the memory store.
func NewForBackend(backend string) gallery.Store {
	switch strings.ToLower(strings.TrimSpace(backend)) {
	case BackendSQLite:
		store, err := sqlite.New("")
		if err != nil {
			colors.Warning(fmt.Sprintf("failed to initialize sqlite backend, falling back to memory: %v", err))
			return gallery.NewMemoryStore()
		}
		return store
	case "", BackendMemory:
		return gallery.NewMemoryStore()
	default:
		colors.Warning(fmt.Sprintf("unknown store backend %q, falling back to memory", backend))
		return gallery.NewMemoryStore()
	}
}
