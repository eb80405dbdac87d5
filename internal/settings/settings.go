// Package settings provides TUI user preferences.
//
// Preferences are held in memory for the lifetime of the program; defaults
// come from the global configuration. Nothing is written back to disk.
package settings

import (
	"poemlens/internal/config"
	"poemlens/internal/domain"
)

// Theme constants.
const (
	ThemeDusk  = "dusk"
	ThemePaper = "paper"
	ThemeNeon  = "neon"
)

// Themes lists the valid themes in display order.
var Themes = []string{ThemeDusk, ThemePaper, ThemeNeon}

// Settings holds the user-editable preferences shown on the settings form.
type Settings struct {
	// Author is the name stamped on new entries.
	Author string
	// Theme selects the color theme.
	Theme string
	// DefaultMood is the mood assigned to newly captured entries.
	DefaultMood string
	// ShowVerse toggles verse lines on shelf cards.
	ShowVerse bool
}

// Default returns settings populated from the global configuration.
func Default() *Settings {
	return &Settings{
		Author:      config.Get("author", ""),
		Theme:       config.Get("theme", ThemeDusk),
		DefaultMood: config.Get("default_mood", domain.MoodCalm.String()),
		ShowVerse:   config.GetBool("show_verse", true),
	}
}

// Mood returns the default mood as a domain value.
func (s *Settings) Mood() domain.Mood {
	m := domain.Mood(s.DefaultMood)
	if !m.IsValid() {
		return domain.MoodCalm
	}
	return m
}
