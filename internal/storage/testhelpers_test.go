package storage

import "poemlens/internal/domain"

func testEntries() []domain.Entry {
	return []domain.Entry{
		{ID: "a", Title: "a", Mood: domain.MoodCalm, CapturedAt: "2026-01-01T00:00:00Z"},
		{ID: "b", Title: "b", Mood: domain.MoodDrift, CapturedAt: "2026-01-02T00:00:00Z"},
	}
}
