package settings

import (
	"fmt"

	"poemlens/internal/domain"
)

// maxAuthorLen bounds the author field so shelf cards stay renderable.
const maxAuthorLen = 64

// Validate checks that settings values are valid.
// Preconditions: settings must be non-nil.
func Validate(settings *Settings) error {
	if settings == nil {
		return fmt.Errorf("settings cannot be nil")
	}

	if err := validateAuthor(settings.Author); err != nil {
		return err
	}
	if err := validateTheme(settings.Theme); err != nil {
		return err
	}
	if err := validateMood(settings.DefaultMood); err != nil {
		return err
	}

	return nil
}

func validateAuthor(author string) error {
	if len(author) > maxAuthorLen {
		return fmt.Errorf("author name too long: %d characters (max %d)", len(author), maxAuthorLen)
	}
	return nil
}

func validateTheme(theme string) error {
	for _, t := range Themes {
		if theme == t {
			return nil
		}
	}
	return fmt.Errorf("invalid theme: %s", theme)
}

func validateMood(mood string) error {
	if !domain.Mood(mood).IsValid() {
		return fmt.Errorf("invalid default mood: %s", mood)
	}
	return nil
}
