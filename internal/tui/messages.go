// Package tui implements the poemlens terminal interface: the shelf of
// photo/poem cards, the viewfinder, the settings form, and the navigation
// chrome around them.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"poemlens/internal/domain"
	"poemlens/internal/gallery"
)

// longPressFiredMsg is delivered when a press session's hold timer elapses.
// Seq identifies the session; the detector ignores stale deliveries.
type longPressFiredMsg struct {
	ID  domain.EntryID
	Seq int
}

// undoTickMsg is delivered once per second while a deletion is pending.
// Epoch identifies the pending cycle; the controller ignores stale ticks.
type undoTickMsg struct {
	Epoch int
}

// statusClearMsg clears the transient footer status message.
type statusClearMsg struct {
	ID int
}

// pressFireCmd schedules the long-press threshold callback for a session.
func pressFireCmd(threshold time.Duration, id domain.EntryID, seq int) tea.Cmd {
	return tea.Tick(threshold, func(time.Time) tea.Msg {
		return longPressFiredMsg{ID: id, Seq: seq}
	})
}

// undoTickCmd schedules the next countdown tick for a pending cycle.
func undoTickCmd(epoch int) tea.Cmd {
	return tea.Tick(gallery.TickInterval, func(time.Time) tea.Msg {
		return undoTickMsg{Epoch: epoch}
	})
}

// statusClearCmd schedules clearing of the footer status message.
func statusClearCmd(id int, after time.Duration) tea.Cmd {
	return tea.Tick(after, func(time.Time) tea.Msg {
		return statusClearMsg{ID: id}
	})
}
