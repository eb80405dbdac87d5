package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestMood_IsValid(t *testing.T) {
	tests := []struct {
		name string
		mood Mood
		want bool
	}{
		{"valid calm", MoodCalm, true},
		{"valid ember", MoodEmber, true},
		{"valid drift", MoodDrift, true},
		{"valid neon", MoodNeon, true},
		{"invalid", Mood("stormy"), false},
		{"invalid empty", Mood(""), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.mood.IsValid())
		})
	}
}

func TestMood_String(t *testing.T) {
	assert.Equal(t, "calm", MoodCalm.String())
	assert.Equal(t, "ember", MoodEmber.String())
	assert.Equal(t, "drift", MoodDrift.String())
	assert.Equal(t, "neon", MoodNeon.String())
}

func TestNewEntryID_OrderFollowsCaptureTime(t *testing.T) {
	earlier := NewEntryID(time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC), 1)
	sameSecond := NewEntryID(time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC), 2)
	later := NewEntryID(time.Date(2026, 3, 1, 10, 0, 1, 0, time.UTC), 1)

	assert.True(t, earlier.Less(sameSecond))
	assert.True(t, sameSecond.Less(later))
	assert.False(t, later.Less(earlier))
}

func TestNewEntryID_Format(t *testing.T) {
	id := NewEntryID(time.Date(2026, 8, 30, 14, 5, 9, 0, time.UTC), 12)
	assert.Equal(t, "20260830T140509-0012", id.String())
}

func TestEntry_Validate(t *testing.T) {
	valid := Entry{
		ID:         "20260830T140509-0001",
		Title:      "Fog over the harbor",
		Verse:      "Grey silk on the water",
		Mood:       MoodDrift,
		CapturedAt: "2026-08-30T14:05:09Z",
	}

	tests := []struct {
		name    string
		modify  func(e *Entry)
		wantErr string
	}{
		{"valid entry", func(e *Entry) {}, ""},
		{"empty verse is allowed", func(e *Entry) { e.Verse = "" }, ""},
		{"missing ID", func(e *Entry) { e.ID = "" }, "entry ID cannot be empty"},
		{"missing title", func(e *Entry) { e.Title = "" }, "entry title cannot be empty"},
		{"invalid mood", func(e *Entry) { e.Mood = "stormy" }, "invalid entry mood"},
		{"missing timestamp", func(e *Entry) { e.CapturedAt = "" }, "entry capture timestamp cannot be empty"},
		{"malformed timestamp", func(e *Entry) { e.CapturedAt = "yesterday" }, "invalid capture timestamp format"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := valid
			tt.modify(&e)

			err := e.Validate()

			if tt.wantErr == "" {
				assert.NoError(t, err)
			} else {
				assert.ErrorContains(t, err, tt.wantErr)
			}
		})
	}
}

func TestSeedEntries_ValidAndOrdered(t *testing.T) {
	seed := SeedEntries()
	assert.NotEmpty(t, seed)

	for i, e := range seed {
		assert.NoError(t, e.Validate(), "seed entry %d", i)
		if i > 0 {
			assert.True(t, seed[i-1].ID.Less(e.ID), "seed entries must be ID-ordered")
		}
	}
}
