package gallery

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"poemlens/internal/domain"
)

func TestMemoryStore_InsertKeepsIDOrder(t *testing.T) {
	s := NewMemoryStore()

	s.Insert(domain.Entry{ID: "c"})
	s.Insert(domain.Entry{ID: "a"})
	s.Insert(domain.Entry{ID: "b"})

	assert.Equal(t, []domain.EntryID{"a", "b", "c"}, storeIDs(s))
	assert.Equal(t, 3, s.Len())
}

func TestMemoryStore_InsertExistingIDReplaces(t *testing.T) {
	s := NewMemoryStore()
	s.Insert(domain.Entry{ID: "a", Title: "old"})

	s.Insert(domain.Entry{ID: "a", Title: "new"})

	require.Equal(t, 1, s.Len())
	e, ok := s.Get("a")
	require.True(t, ok)
	assert.Equal(t, "new", e.Title)
}

func TestMemoryStore_Remove(t *testing.T) {
	tests := []struct {
		name      string
		id        domain.EntryID
		wantOK    bool
		remaining []domain.EntryID
	}{
		{"first", "a", true, []domain.EntryID{"b", "c"}},
		{"middle", "b", true, []domain.EntryID{"a", "c"}},
		{"last", "c", true, []domain.EntryID{"a", "b"}},
		{"absent", "zzz", false, []domain.EntryID{"a", "b", "c"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := seededStore("a", "b", "c")

			e, ok := s.Remove(tt.id)

			assert.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.Equal(t, tt.id, e.ID)
			}
			assert.Equal(t, tt.remaining, storeIDs(s))
		})
	}
}

func TestMemoryStore_Get(t *testing.T) {
	s := seededStore("a", "b")

	e, ok := s.Get("b")
	require.True(t, ok)
	assert.Equal(t, domain.EntryID("b"), e.ID)

	_, ok = s.Get("zzz")
	assert.False(t, ok)
}

func TestMemoryStore_AllReturnsCopy(t *testing.T) {
	s := seededStore("a", "b")

	all := s.All()
	all[0].Title = "mutated"

	e, ok := s.Get("a")
	require.True(t, ok)
	assert.NotEqual(t, "mutated", e.Title)
}

func TestMemoryStore_RemoveThenInsertRestoresPosition(t *testing.T) {
	s := seededStore("a", "b", "c", "d")

	e, ok := s.Remove("b")
	require.True(t, ok)
	s.Insert(e)

	assert.Equal(t, []domain.EntryID{"a", "b", "c", "d"}, storeIDs(s))
}
