package domain

// SeedEntries returns the sample shelf content loaded at startup.
// Nothing is persisted between runs, so the shelf always opens with these.
func SeedEntries() []Entry {
	return []Entry{
		{
			ID:         "20260112T081500-0001",
			Title:      "Fog over the harbor",
			Verse:      "Grey silk on the water,\nthe gulls write their slow letters\nnobody will read.",
			Mood:       MoodDrift,
			CapturedAt: "2026-01-12T08:15:00Z",
		},
		{
			ID:         "20260203T174200-0001",
			Title:      "Streetlight, first snow",
			Verse:      "One cone of amber,\na thousand small parachutes\nlanding without sound.",
			Mood:       MoodCalm,
			CapturedAt: "2026-02-03T17:42:00Z",
		},
		{
			ID:         "20260314T231100-0001",
			Title:      "Kitchen window, midnight",
			Verse:      "The kettle exhales.\nAcross the alley one lamp\nkeeps another watch.",
			Mood:       MoodEmber,
			CapturedAt: "2026-03-14T23:11:00Z",
		},
		{
			ID:         "20260422T061900-0001",
			Title:      "Transit platform",
			Verse:      "Announcements dissolve\ninto the hum of the rails.\nEveryone elsewhere.",
			Mood:       MoodNeon,
			CapturedAt: "2026-04-22T06:19:00Z",
		},
		{
			ID:         "20260508T191800-0001",
			Title:      "Balcony tomatoes",
			Verse:      "Five green fists unclench\none knuckle at a time, all\nsummer in no hurry.",
			Mood:       MoodCalm,
			CapturedAt: "2026-05-08T19:18:00Z",
		},
	}
}
