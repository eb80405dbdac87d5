package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"poemlens/internal/domain"
	"poemlens/internal/logging"
	"poemlens/internal/settings"
)

// Settings form fields, in display order.
const (
	fieldAuthor = iota
	fieldTheme
	fieldMood
	fieldShowVerse
	fieldCount
)

var moods = []domain.Mood{domain.MoodCalm, domain.MoodEmber, domain.MoodDrift, domain.MoodNeon}

// settingsForm is the in-memory edit buffer for the settings view.
// Values are copied back into the live preferences only on apply.
type settingsForm struct {
	focus     int
	author    textinput.Model
	theme     string
	mood      string
	showVerse bool
}

func newSettingsForm(prefs *settings.Settings) settingsForm {
	ti := textinput.New()
	ti.Placeholder = "anonymous"
	ti.CharLimit = 64
	ti.Width = 32
	ti.SetValue(prefs.Author)
	return settingsForm{
		author:    ti,
		theme:     prefs.Theme,
		mood:      prefs.DefaultMood,
		showVerse: prefs.ShowVerse,
	}
}

// editing reports whether the author field is capturing keystrokes.
func (f *settingsForm) editing() bool {
	return f.author.Focused()
}

func cycle(values []string, current string, delta int) string {
	for i, v := range values {
		if v == current {
			return values[(i+delta+len(values))%len(values)]
		}
	}
	return values[0]
}

func moodNames() []string {
	names := make([]string, len(moods))
	for i, mo := range moods {
		names[i] = mo.String()
	}
	return names
}

func (m *Model) handleSettingsKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	f := &m.form

	if f.editing() {
		switch msg.String() {
		case "enter", "esc":
			f.author.Blur()
			return m, nil
		}
		var cmd tea.Cmd
		f.author, cmd = f.author.Update(msg)
		return m, cmd
	}

	switch msg.String() {
	case "j", "down":
		if f.focus < fieldCount-1 {
			f.focus++
		}
	case "k", "up":
		if f.focus > 0 {
			f.focus--
		}
	case "h", "left":
		m.adjustField(-1)
	case "l", "right":
		m.adjustField(1)
	case "enter", " ":
		if f.focus == fieldAuthor {
			f.author.Focus()
			return m, nil
		}
		if f.focus == fieldShowVerse {
			f.showVerse = !f.showVerse
			return m, nil
		}
		m.adjustField(1)
	case "s":
		return m, m.applySettings()
	}
	return m, nil
}

func (m *Model) adjustField(delta int) {
	f := &m.form
	switch f.focus {
	case fieldTheme:
		f.theme = cycle(settings.Themes, f.theme, delta)
	case fieldMood:
		f.mood = cycle(moodNames(), f.mood, delta)
	case fieldShowVerse:
		f.showVerse = !f.showVerse
	}
}

// applySettings validates the form and copies it into the live preferences.
func (m *Model) applySettings() tea.Cmd {
	candidate := &settings.Settings{
		Author:      strings.TrimSpace(m.form.author.Value()),
		Theme:       m.form.theme,
		DefaultMood: m.form.mood,
		ShowVerse:   m.form.showVerse,
	}
	if err := settings.Validate(candidate); err != nil {
		logging.Warn("settings rejected", "error", err)
		return m.setStatus(err.Error(), true)
	}

	*m.prefs = *candidate
	m.styles = themeStyles(m.prefs.Theme)
	logging.Info("settings applied", "theme", m.prefs.Theme, "mood", m.prefs.DefaultMood)
	return m.setStatus("settings applied", false)
}

// viewSettings renders the settings form.
func (m *Model) viewSettings() string {
	f := &m.form

	label := func(i int, text string) string {
		if i == f.focus {
			return m.styles.FieldFocused.Render("> " + text)
		}
		return m.styles.FieldLabel.Render("  " + text)
	}

	onOff := "off"
	if f.showVerse {
		onOff = "on"
	}

	var b strings.Builder
	b.WriteString(label(fieldAuthor, fmt.Sprintf("%-14s", "author")) + f.author.View())
	b.WriteString("\n")
	b.WriteString(label(fieldTheme, fmt.Sprintf("%-14s", "theme")) + f.theme)
	b.WriteString("\n")
	b.WriteString(label(fieldMood, fmt.Sprintf("%-14s", "default mood")) + f.mood)
	b.WriteString("\n")
	b.WriteString(label(fieldShowVerse, fmt.Sprintf("%-14s", "show verse")) + onOff)
	b.WriteString("\n\n")
	b.WriteString(m.styles.FooterHelp.Render("j/k: move  h/l: change  enter: edit/toggle  s: apply"))
	return b.String()
}
