package tui

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"poemlens/internal/domain"
	"poemlens/internal/gallery"
	"poemlens/internal/settings"
)

func testEntry(id domain.EntryID, title string) domain.Entry {
	return domain.Entry{
		ID:         id,
		Title:      title,
		Verse:      "a first line\na second line",
		Mood:       domain.MoodCalm,
		CapturedAt: "2026-01-01T00:00:00Z",
	}
}

// newTestModel builds a model over a memory store seeded with a, b, c.
func newTestModel(t *testing.T) *Model {
	t.Helper()
	m := NewModel(Options{
		Prefs: &settings.Settings{
			Theme:       settings.ThemeDusk,
			DefaultMood: "calm",
			ShowVerse:   true,
		},
	})
	m.Seed([]domain.Entry{
		testEntry("a", "alpha"),
		testEntry("b", "beta"),
		testEntry("c", "gamma"),
	})
	return m
}

func keyMsg(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case " ":
		return tea.KeyMsg{Type: tea.KeySpace}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
}

func pressAt(y int) tea.MouseMsg {
	return tea.MouseMsg{Y: y, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft}
}

func release() tea.MouseMsg {
	return tea.MouseMsg{Action: tea.MouseActionRelease}
}

func shelfIDs(m *Model) []domain.EntryID {
	var ids []domain.EntryID
	for _, e := range m.store.All() {
		ids = append(ids, e.ID)
	}
	return ids
}

func TestModel_TabSwitching(t *testing.T) {
	m := newTestModel(t)
	assert.Equal(t, tabShelf, m.tab)

	m.Update(keyMsg("tab"))
	assert.Equal(t, tabViewfinder, m.tab)
	m.Update(keyMsg("tab"))
	assert.Equal(t, tabSettings, m.tab)
	m.Update(keyMsg("tab"))
	assert.Equal(t, tabShelf, m.tab)

	m.Update(keyMsg("3"))
	assert.Equal(t, tabSettings, m.tab)
	m.Update(keyMsg("1"))
	assert.Equal(t, tabShelf, m.tab)
}

func TestModel_ShelfNavigation(t *testing.T) {
	m := newTestModel(t)

	m.Update(keyMsg("j"))
	m.Update(keyMsg("j"))
	id, ok := m.SelectedID()
	require.True(t, ok)
	assert.Equal(t, domain.EntryID("c"), id)

	// Cursor stops at the last row.
	m.Update(keyMsg("j"))
	id, _ = m.SelectedID()
	assert.Equal(t, domain.EntryID("c"), id)

	m.Update(keyMsg("g"))
	id, _ = m.SelectedID()
	assert.Equal(t, domain.EntryID("a"), id)

	m.Update(keyMsg("G"))
	id, _ = m.SelectedID()
	assert.Equal(t, domain.EntryID("c"), id)
}

func TestModel_MousePressReleaseBeforeThresholdDeletesNothing(t *testing.T) {
	m := newTestModel(t)

	m.Update(pressAt(headerLines)) // row 0: "a"
	assert.Equal(t, domain.EntryID("a"), m.pressedID)

	m.Update(release())
	assert.Equal(t, domain.EntryID(""), m.pressedID)

	// The armed timer still fires, but the session was cancelled.
	m.Update(longPressFiredMsg{ID: "a", Seq: 1})

	assert.Equal(t, []domain.EntryID{"a", "b", "c"}, shelfIDs(m))
	_, pending := m.Pending()
	assert.False(t, pending)
}

func TestModel_LongPressDeletesWithUndoWindow(t *testing.T) {
	m := newTestModel(t)

	m.Update(pressAt(headerLines + 1)) // row 1: "b"
	// First session on this entry's detector.
	m.Update(longPressFiredMsg{ID: "b", Seq: 1})

	assert.Equal(t, []domain.EntryID{"a", "c"}, shelfIDs(m))
	snap, pending := m.Pending()
	require.True(t, pending)
	assert.Equal(t, domain.EntryID("b"), snap.ID)
	assert.Equal(t, gallery.DefaultUndoWindow, snap.SecondsLeft)
}

func TestModel_LongPressFireIsConsumedOnce(t *testing.T) {
	m := newTestModel(t)

	m.Update(pressAt(headerLines))
	m.Update(longPressFiredMsg{ID: "a", Seq: 1})
	// Duplicate delivery of the same session is inert.
	m.Update(longPressFiredMsg{ID: "a", Seq: 1})

	assert.Equal(t, []domain.EntryID{"b", "c"}, shelfIDs(m))
}

func TestModel_CountdownExpiryFinalizesDeletion(t *testing.T) {
	m := newTestModel(t)

	m.Update(keyMsg("d")) // delete "a" via accelerator
	snap, pending := m.Pending()
	require.True(t, pending)
	assert.Equal(t, domain.EntryID("a"), snap.ID)
	epoch := m.controller.Epoch()

	for i := 0; i < gallery.DefaultUndoWindow; i++ {
		m.Update(undoTickMsg{Epoch: epoch})
	}

	_, pending = m.Pending()
	assert.False(t, pending)
	assert.Equal(t, []domain.EntryID{"b", "c"}, shelfIDs(m))

	// A leftover tick after expiry changes nothing.
	m.Update(undoTickMsg{Epoch: epoch})
	assert.Equal(t, []domain.EntryID{"b", "c"}, shelfIDs(m))
}

func TestModel_UndoRestoresEntryAndCursor(t *testing.T) {
	m := newTestModel(t)

	m.Update(keyMsg("j")) // select "b"
	m.Update(keyMsg("d"))
	assert.Equal(t, []domain.EntryID{"a", "c"}, shelfIDs(m))
	epoch := m.controller.Epoch()
	m.Update(undoTickMsg{Epoch: epoch})
	m.Update(undoTickMsg{Epoch: epoch})

	m.Update(keyMsg("u"))

	assert.Equal(t, []domain.EntryID{"a", "b", "c"}, shelfIDs(m))
	id, ok := m.SelectedID()
	require.True(t, ok)
	assert.Equal(t, domain.EntryID("b"), id)
	_, pending := m.Pending()
	assert.False(t, pending)

	// The old tick chain is dead.
	m.Update(undoTickMsg{Epoch: epoch})
	assert.Equal(t, []domain.EntryID{"a", "b", "c"}, shelfIDs(m))
}

func TestModel_SecondDeleteWhilePendingIsRejected(t *testing.T) {
	m := newTestModel(t)

	m.Update(keyMsg("d")) // pending: "a"
	m.Update(keyMsg("d")) // cursor now on "b": rejected

	assert.Equal(t, []domain.EntryID{"b", "c"}, shelfIDs(m))
	snap, pending := m.Pending()
	require.True(t, pending)
	assert.Equal(t, domain.EntryID("a"), snap.ID)
	assert.Equal(t, gallery.DefaultUndoWindow, snap.SecondsLeft)
}

func TestModel_UndoWithNothingPendingIsNoop(t *testing.T) {
	m := newTestModel(t)

	m.Update(keyMsg("u"))

	assert.Equal(t, []domain.EntryID{"a", "b", "c"}, shelfIDs(m))
}

func TestModel_MousePressOutsideRowsIsIgnored(t *testing.T) {
	m := newTestModel(t)

	m.Update(pressAt(0)) // title bar
	assert.Equal(t, domain.EntryID(""), m.pressedID)

	m.Update(pressAt(headerLines + 40)) // below the list
	assert.Equal(t, domain.EntryID(""), m.pressedID)
}

func TestModel_ViewfinderCaptureInsertsEntry(t *testing.T) {
	m := newTestModel(t)
	m.viewfinder.now = func() time.Time {
		return time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)
	}

	m.Update(keyMsg("2"))
	require.Equal(t, tabViewfinder, m.tab)

	m.Update(keyMsg("i"))
	require.True(t, m.viewfinder.input.Focused())
	for _, r := range "rooftop rain" {
		m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
	m.Update(keyMsg("enter"))

	assert.Equal(t, 4, m.store.Len())
	e, ok := m.store.Get("20260830T120000-0001")
	require.True(t, ok)
	assert.Equal(t, "rooftop rain", e.Title)
	assert.Equal(t, domain.MoodCalm, e.Mood)
	assert.Equal(t, placeholderVerse, e.Verse)
}

func TestModel_ViewfinderEmptyTitleIsRejected(t *testing.T) {
	m := newTestModel(t)
	m.Update(keyMsg("2"))

	m.Update(keyMsg(" "))

	assert.Equal(t, 3, m.store.Len())
	assert.True(t, m.statusIsErr)
}

func TestModel_SettingsApply(t *testing.T) {
	m := newTestModel(t)
	m.Update(keyMsg("3"))
	require.Equal(t, tabSettings, m.tab)

	// Move to theme and cycle it.
	m.Update(keyMsg("j"))
	m.Update(keyMsg("l"))
	m.Update(keyMsg("s"))

	assert.Equal(t, settings.ThemePaper, m.prefs.Theme)
	assert.False(t, m.statusIsErr)
}

func TestModel_SettingsToggleShowVerse(t *testing.T) {
	m := newTestModel(t)
	m.Update(keyMsg("3"))

	m.Update(keyMsg("j"))
	m.Update(keyMsg("j"))
	m.Update(keyMsg("j")) // show verse
	m.Update(keyMsg("enter"))
	m.Update(keyMsg("s"))

	assert.False(t, m.prefs.ShowVerse)
}

func TestModel_StatusClearHonorsLatestMessage(t *testing.T) {
	m := newTestModel(t)

	m.setStatus("first", false)
	firstID := m.statusID
	m.setStatus("second", false)

	m.Update(statusClearMsg{ID: firstID})
	assert.Equal(t, "second", m.status)

	m.Update(statusClearMsg{ID: m.statusID})
	assert.Equal(t, "", m.status)
}

func TestModel_ViewShowsUndoBannerWhilePending(t *testing.T) {
	m := newTestModel(t)
	m.Update(keyMsg("d"))

	out := m.View()

	assert.Contains(t, out, "alpha")
	assert.Contains(t, out, "undo: u")
}

func TestModel_ViewShowsTabsAndRows(t *testing.T) {
	m := newTestModel(t)

	out := m.View()

	assert.Contains(t, out, "poemlens")
	assert.Contains(t, out, "1:shelf")
	assert.Contains(t, out, "alpha")
	assert.Contains(t, out, "beta")
	assert.Contains(t, out, "gamma")
	assert.Contains(t, out, "a first line")
}

func TestModel_SwitchingTabsCancelsPressSession(t *testing.T) {
	m := newTestModel(t)

	m.Update(pressAt(headerLines))
	require.Equal(t, domain.EntryID("a"), m.pressedID)

	m.Update(keyMsg("2"))
	assert.Equal(t, domain.EntryID(""), m.pressedID)

	// The stale fire is inert.
	m.Update(longPressFiredMsg{ID: "a", Seq: 1})
	assert.Equal(t, []domain.EntryID{"a", "b", "c"}, shelfIDs(m))
}
