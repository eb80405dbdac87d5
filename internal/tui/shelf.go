package tui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-runewidth"

	"poemlens/internal/domain"
	"poemlens/internal/gallery"
	"poemlens/internal/logging"
)

// detectorFor returns the press detector owned by the given entry,
// creating it on first use.
func (m *Model) detectorFor(id domain.EntryID) *gallery.PressDetector {
	d, ok := m.detectors[id]
	if !ok {
		d = gallery.NewPressDetector(m.threshold)
		m.detectors[id] = d
	}
	return d
}

// cancelPress ends the active press session, if any.
func (m *Model) cancelPress() {
	if m.pressedID == "" {
		return
	}
	m.detectorFor(m.pressedID).PressCancel()
	m.pressedID = ""
}

// shelfHeight returns the number of content rows available to the shelf.
func (m *Model) shelfHeight() int {
	h := m.height - headerLines - 3 // undo banner, status, help
	if h < 1 {
		h = 1
	}
	return h
}

// clampShelfView keeps the cursor on an existing row and scrolled into view.
func (m *Model) clampShelfView() {
	n := m.store.Len()
	if m.cursor >= n {
		m.cursor = n - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
	height := m.shelfHeight()
	if m.cursor < m.offset {
		m.offset = m.cursor
	}
	if m.cursor >= m.offset+height {
		m.offset = m.cursor - height + 1
	}
	if m.offset < 0 {
		m.offset = 0
	}
}

// rowAt maps a terminal row to a shelf entry index.
func (m *Model) rowAt(y int) (int, bool) {
	idx := y - headerLines + m.offset
	if idx < 0 || idx >= m.store.Len() {
		return 0, false
	}
	if idx-m.offset >= m.shelfHeight() {
		return 0, false
	}
	return idx, true
}

func (m *Model) handleShelfKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "j", "down":
		if m.cursor < m.store.Len()-1 {
			m.cursor++
		}
		m.clampShelfView()
	case "k", "up":
		if m.cursor > 0 {
			m.cursor--
		}
		m.clampShelfView()
	case "g", "home":
		m.cursor = 0
		m.clampShelfView()
	case "G", "end":
		m.cursor = m.store.Len() - 1
		m.clampShelfView()
	case "d":
		// Keyboard accelerator: request deletion without the hold gesture.
		if id, ok := m.SelectedID(); ok {
			return m, m.requestDelete(id)
		}
	case "u":
		return m, m.undo()
	}
	return m, nil
}

// handleShelfMouse drives the per-entry press detectors from pointer
// press/release events over shelf rows.
func (m *Model) handleShelfMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft {
			return m, nil
		}
		// A new press anywhere supersedes the active session.
		m.cancelPress()
		idx, ok := m.rowAt(msg.Y)
		if !ok {
			return m, nil
		}
		entries := m.store.All()
		id := entries[idx].ID
		m.cursor = idx
		m.clampShelfView()
		m.pressedID = id
		seq := m.detectorFor(id).PressStart()
		return m, pressFireCmd(m.threshold, id, seq)

	case tea.MouseActionRelease:
		m.cancelPress()
	}
	return m, nil
}

// handleLongPressFired consumes a press session's hold timer. Sessions
// released before the threshold are stale here and fall through silently.
func (m *Model) handleLongPressFired(msg longPressFiredMsg) (tea.Model, tea.Cmd) {
	if !m.detectorFor(msg.ID).Fire(msg.Seq) {
		return m, nil
	}
	if m.pressedID == msg.ID {
		m.pressedID = ""
	}
	logging.Debug("long-press fired", "id", msg.ID.String())
	return m, m.requestDelete(msg.ID)
}

// requestDelete forwards a delete intent to the controller and starts the
// countdown tick chain when the request is accepted.
func (m *Model) requestDelete(id domain.EntryID) tea.Cmd {
	title := ""
	if e, ok := m.store.Get(id); ok {
		title = e.Title
	}
	if !m.controller.RequestDelete(id) {
		// Either the id is already gone or the single undo slot is taken.
		// Both are defined no-ops; only hint at the latter.
		if _, pending := m.controller.Snapshot(); pending {
			return m.setStatus("one deletion at a time - undo or wait", false)
		}
		return nil
	}
	m.pendingTitle = title
	m.clampShelfView()
	logging.Info("deletion pending", "id", id.String(), "window_s", m.controller.Window())
	return tea.Batch(
		undoTickCmd(m.controller.Epoch()),
		m.setStatus(fmt.Sprintf("removed %q - press u to undo", title), false),
	)
}

// undo restores the pending entry, if any.
func (m *Model) undo() tea.Cmd {
	snap, ok := m.controller.Snapshot()
	if !ok {
		return nil
	}
	if !m.controller.Undo() {
		return nil
	}
	m.pendingTitle = ""
	// Put the cursor back on the restored entry.
	for i, e := range m.store.All() {
		if e.ID == snap.ID {
			m.cursor = i
			break
		}
	}
	m.clampShelfView()
	logging.Info("deletion undone", "id", snap.ID.String())
	return m.setStatus("restored", false)
}

// handleUndoTick advances the pending-deletion countdown.
func (m *Model) handleUndoTick(msg undoTickMsg) (tea.Model, tea.Cmd) {
	res := m.controller.Tick(msg.Epoch)
	switch {
	case res.Live:
		return m, undoTickCmd(msg.Epoch)
	case res.Expired:
		logging.Info("deletion finalized")
		m.pendingTitle = ""
		return m, m.setStatus("deleted", false)
	}
	// Stale tick from a finished cycle: nothing to do, nothing rescheduled.
	return m, nil
}

// viewShelf renders the card list.
func (m *Model) viewShelf() string {
	entries := m.store.All()
	if len(entries) == 0 {
		return m.styles.RowMeta.Render("The shelf is empty. Capture something in the viewfinder.")
	}

	height := m.shelfHeight()
	end := m.offset + height
	if end > len(entries) {
		end = len(entries)
	}

	var b strings.Builder
	for i := m.offset; i < end; i++ {
		if i > m.offset {
			b.WriteString("\n")
		}
		b.WriteString(m.renderShelfRow(entries[i], i == m.cursor))
	}
	return b.String()
}

func (m *Model) renderShelfRow(e domain.Entry, selected bool) string {
	marker := "  "
	if selected {
		marker = m.styles.RowCursor.Render("> ")
	}

	title := runewidth.Truncate(e.Title, 32, "…")
	if e.ID == m.pressedID {
		title = m.styles.RowPressed.Render(title)
	} else {
		title = m.styles.RowTitle.Render(title)
	}

	meta := m.styles.RowMeta.Render(fmt.Sprintf("[%s] %s", e.Mood, formatCapturedAt(e.CapturedAt)))

	row := marker + title + "  " + meta
	if m.prefs.ShowVerse {
		first := e.Verse
		if i := strings.IndexByte(first, '\n'); i >= 0 {
			first = first[:i]
		}
		if first != "" {
			row += "  " + m.styles.RowVerse.Render(runewidth.Truncate(first, 40, "…"))
		}
	}
	return row
}

func formatCapturedAt(capturedAt string) string {
	t, err := time.Parse(time.RFC3339, capturedAt)
	if err != nil {
		return capturedAt
	}
	return t.Format("2006-01-02 15:04")
}

// viewUndoBanner renders the undo affordance while a deletion is pending.
func (m *Model) viewUndoBanner() string {
	snap, ok := m.controller.Snapshot()
	if !ok {
		return ""
	}
	title := m.pendingTitle
	if title == "" {
		title = snap.ID.String()
	}
	bar := strings.Repeat("■", snap.SecondsLeft) + strings.Repeat("·", m.controller.Window()-snap.SecondsLeft)
	return m.styles.UndoBanner.Render(fmt.Sprintf("deleted %q", runewidth.Truncate(title, 24, "…"))) +
		"  " + m.styles.UndoCount.Render(fmt.Sprintf("%s undo: u (%ds)", bar, snap.SecondsLeft))
}
