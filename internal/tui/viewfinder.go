package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"poemlens/internal/domain"
	"poemlens/internal/logging"
	"poemlens/internal/settings"
)

// placeholderVerse is stamped on captured entries. Verse writing happens
// elsewhere; the viewfinder only frames and files the moment.
const placeholderVerse = "( verse to follow )"

// viewfinderState holds the capture view: a title line and a shutter.
type viewfinderState struct {
	input textinput.Model
	// captureSeq disambiguates entries captured within the same second.
	captureSeq int
	now        func() time.Time
}

func newViewfinderState(prefs *settings.Settings) viewfinderState {
	ti := textinput.New()
	ti.Placeholder = "title this moment"
	ti.CharLimit = 64
	ti.Width = 40
	return viewfinderState{input: ti, now: time.Now}
}

func (m *Model) handleViewfinderKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.viewfinder.input.Focused() {
		switch msg.String() {
		case "enter":
			return m, m.capture()
		case "esc":
			m.viewfinder.input.Blur()
			return m, nil
		}
		var cmd tea.Cmd
		m.viewfinder.input, cmd = m.viewfinder.input.Update(msg)
		return m, cmd
	}

	switch msg.String() {
	case "i", "enter":
		m.viewfinder.input.Focus()
	case " ":
		return m, m.capture()
	}
	return m, nil
}

// capture files a new entry from the viewfinder. No image is captured and
// no verse is generated; this is a plain store insert.
func (m *Model) capture() tea.Cmd {
	title := strings.TrimSpace(m.viewfinder.input.Value())
	if title == "" {
		return m.setStatus("give the moment a title first", true)
	}

	now := m.viewfinder.now()
	m.viewfinder.captureSeq++
	e := domain.Entry{
		ID:         domain.NewEntryID(now, m.viewfinder.captureSeq),
		Title:      title,
		Verse:      placeholderVerse,
		Mood:       m.prefs.Mood(),
		CapturedAt: now.UTC().Format(time.RFC3339),
	}
	if err := e.Validate(); err != nil {
		return m.setStatus(err.Error(), true)
	}

	m.store.Insert(e)
	m.viewfinder.input.SetValue("")
	m.viewfinder.input.Blur()
	logging.Info("entry captured", "id", e.ID.String(), "title", e.Title)
	return m.setStatus(fmt.Sprintf("filed %q to the shelf", title), false)
}

// viewViewfinder renders the camera placeholder and the title line.
func (m *Model) viewViewfinder() string {
	frame := []string{
		"┌───────────────────────────────┐",
		"│ ◻                          ▣  │",
		"│                               │",
		"│                               │",
		"│              ┼                │",
		"│                               │",
		"│                               │",
		"│ " + fmt.Sprintf("%-7s", m.prefs.Mood()) + "              ○ ○ ○   │",
		"└───────────────────────────────┘",
	}

	var b strings.Builder
	b.WriteString(m.styles.Viewfinder.Render(strings.Join(frame, "\n")))
	b.WriteString("\n\n")
	b.WriteString(m.viewfinder.input.View())
	b.WriteString("\n")
	if m.viewfinder.input.Focused() {
		b.WriteString(m.styles.FooterHelp.Render("enter: capture  esc: done"))
	} else {
		b.WriteString(m.styles.FooterHelp.Render("i: edit title  space: capture"))
	}
	return b.String()
}
