package settings

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"poemlens/internal/domain"
)

func validSettings() *Settings {
	return &Settings{
		Author:      "morgan",
		Theme:       ThemeDusk,
		DefaultMood: "calm",
		ShowVerse:   true,
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		modify  func(s *Settings)
		wantErr string
	}{
		{"valid", func(s *Settings) {}, ""},
		{"empty author is allowed", func(s *Settings) { s.Author = "" }, ""},
		{"author too long", func(s *Settings) { s.Author = strings.Repeat("x", 65) }, "author name too long"},
		{"paper theme", func(s *Settings) { s.Theme = ThemePaper }, ""},
		{"neon theme", func(s *Settings) { s.Theme = ThemeNeon }, ""},
		{"invalid theme", func(s *Settings) { s.Theme = "sepia" }, "invalid theme"},
		{"invalid mood", func(s *Settings) { s.DefaultMood = "stormy" }, "invalid default mood"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := validSettings()
			tt.modify(s)

			err := Validate(s)

			if tt.wantErr == "" {
				assert.NoError(t, err)
			} else {
				assert.ErrorContains(t, err, tt.wantErr)
			}
		})
	}
}

func TestValidate_NilSettings(t *testing.T) {
	assert.ErrorContains(t, Validate(nil), "settings cannot be nil")
}

func TestSettings_Mood(t *testing.T) {
	tests := []struct {
		name string
		mood string
		want domain.Mood
	}{
		{"valid mood", "ember", domain.MoodEmber},
		{"invalid mood falls back to calm", "stormy", domain.MoodCalm},
		{"empty mood falls back to calm", "", domain.MoodCalm},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := validSettings()
			s.DefaultMood = tt.mood
			assert.Equal(t, tt.want, s.Mood())
		})
	}
}
