// Package domain provides the domain layer for journal entries.
// It contains business logic, value objects, and domain services.
package domain

import (
	"fmt"
	"time"
)

// EntryID is the opaque identity of an entry. IDs are comparable for
// equality and ordered lexicographically; generated IDs are time-prefixed
// so the lexicographic order matches capture order.
type EntryID string

// String returns the string representation of the ID.
func (id EntryID) String() string {
	return string(id)
}

// Less reports whether id orders before other.
func (id EntryID) Less(other EntryID) bool {
	return id < other
}

// NewEntryID builds an entry ID from a capture time and a per-process
// sequence number that disambiguates entries captured in the same second.
func NewEntryID(capturedAt time.Time, seq int) EntryID {
	return EntryID(fmt.Sprintf("%s-%04d", capturedAt.UTC().Format("20060102T150405"), seq))
}

// Mood represents the mood tag attached to an entry.
type Mood string

const (
	MoodCalm  Mood = "calm"
	MoodEmber Mood = "ember"
	MoodDrift Mood = "drift"
	MoodNeon  Mood = "neon"
)

// IsValid checks if the mood is valid.
func (m Mood) IsValid() bool {
	switch m {
	case MoodCalm, MoodEmber, MoodDrift, MoodNeon:
		return true
	default:
		return false
	}
}

// String returns the string representation of the mood.
func (m Mood) String() string {
	return string(m)
}

// Entry represents a single photo/poem card on the shelf.
type Entry struct {
	ID         EntryID
	Title      string
	Verse      string
	Mood       Mood
	CapturedAt string
}

// Validate validates the entry and returns an error if invalid.
func (e *Entry) Validate() error {
	if e.ID == "" {
		return fmt.Errorf("entry ID cannot be empty")
	}

	if e.Title == "" {
		return fmt.Errorf("entry title cannot be empty")
	}

	if !e.Mood.IsValid() {
		return fmt.Errorf("invalid entry mood: %s", e.Mood)
	}

	if e.CapturedAt == "" {
		return fmt.Errorf("entry capture timestamp cannot be empty")
	}

	// Validate RFC3339 timestamp format
	if _, err := time.Parse(time.RFC3339, e.CapturedAt); err != nil {
		return fmt.Errorf("invalid capture timestamp format: %w", err)
	}

	return nil
}
