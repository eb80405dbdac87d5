// Package gallery provides the shelf item store and the deferred-deletion
// mechanism: a long-press detector and a single-slot pending-deletion
// controller with an undo countdown.
package gallery

import (
	"sort"

	"poemlens/internal/domain"
)

// Store is an ordered collection of entries keyed by identity.
// Entries are kept sorted by ID; there are no duplicate keys.
type Store interface {
	// Insert adds an entry at the position consistent with the ID ordering.
	// Inserting an ID that is already present replaces the existing entry.
	Insert(e domain.Entry)
	// Remove removes the entry with the given ID and returns it.
	// Returns false if the ID is absent.
	Remove(id domain.EntryID) (domain.Entry, bool)
	// Get returns the entry with the given ID.
	Get(id domain.EntryID) (domain.Entry, bool)
	// All returns the entries in ID order.
	All() []domain.Entry
	// Len returns the number of entries.
	Len() int
}

// MemoryStore is the in-memory Store implementation backed by a sorted slice.
type MemoryStore struct {
	entries []domain.Entry
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

// search returns the insertion index for id and whether id is present there.
func (s *MemoryStore) search(id domain.EntryID) (int, bool) {
	i := sort.Search(len(s.entries), func(i int) bool {
		return s.entries[i].ID >= id
	})
	return i, i < len(s.entries) && s.entries[i].ID == id
}

// Insert adds an entry preserving ID order. Re-inserting an existing ID
// replaces the stored entry instead of duplicating the key.
func (s *MemoryStore) Insert(e domain.Entry) {
	i, found := s.search(e.ID)
	if found {
		s.entries[i] = e
		return
	}
	s.entries = append(s.entries, domain.Entry{})
	copy(s.entries[i+1:], s.entries[i:])
	s.entries[i] = e
}

// Remove removes the entry with the given ID and returns it.
func (s *MemoryStore) Remove(id domain.EntryID) (domain.Entry, bool) {
	i, found := s.search(id)
	if !found {
		return domain.Entry{}, false
	}
	e := s.entries[i]
	s.entries = append(s.entries[:i], s.entries[i+1:]...)
	return e, true
}

// Get returns the entry with the given ID.
func (s *MemoryStore) Get(id domain.EntryID) (domain.Entry, bool) {
	i, found := s.search(id)
	if !found {
		return domain.Entry{}, false
	}
	return s.entries[i], true
}

// All returns a copy of the entries in ID order.
func (s *MemoryStore) All() []domain.Entry {
	out := make([]domain.Entry, len(s.entries))
	copy(out, s.entries)
	return out
}

// Len returns the number of entries.
func (s *MemoryStore) Len() int {
	return len(s.entries)
}
