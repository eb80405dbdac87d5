package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// View renders the TUI: title bar, tab bar, the active view, and the
// footer with the undo affordance, status line, and key help.
func (m *Model) View() string {
	var s strings.Builder

	// Header chrome; keep in sync with headerLines.
	s.WriteString(m.viewTitleBar())
	s.WriteString("\n")
	s.WriteString(m.viewTabBar())
	s.WriteString("\n\n")

	var content string
	switch m.tab {
	case tabShelf:
		content = m.viewShelf()
	case tabViewfinder:
		content = m.viewViewfinder()
	case tabSettings:
		content = m.viewSettings()
	}
	s.WriteString(content)

	// Pad so the footer sits at the bottom of the window.
	contentLines := strings.Count(content, "\n") + 1
	pad := m.height - headerLines - contentLines - 3
	for i := 0; i < pad; i++ {
		s.WriteString("\n")
	}

	s.WriteString("\n")
	s.WriteString(m.viewUndoBanner())
	s.WriteString("\n")
	s.WriteString(m.viewStatus())
	s.WriteString("\n")
	s.WriteString(m.viewHelp())

	return s.String()
}

func (m *Model) viewTitleBar() string {
	title := m.styles.TitleBar.Render("poemlens")
	sub := m.styles.FooterHelp.Render("a pocket photo/poem journal")
	return title + "  " + sub
}

func (m *Model) viewTabBar() string {
	tabs := make([]string, 0, 3)
	for i, name := range []string{"1:shelf", "2:viewfinder", "3:settings"} {
		style := m.styles.TabInactive
		if tab(i) == m.tab {
			style = m.styles.TabActive
		}
		tabs = append(tabs, style.Render(name))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs[0], "  ", tabs[1], "  ", tabs[2])
}

func (m *Model) viewStatus() string {
	if m.status == "" {
		return ""
	}
	if m.statusIsErr {
		return m.styles.StatusError.Render(m.status)
	}
	return m.styles.StatusInfo.Render(m.status)
}

func (m *Model) viewHelp() string {
	switch m.tab {
	case tabShelf:
		return m.styles.FooterHelp.Render("hold click 3s or d: delete  u: undo  j/k: move  tab: next view  q: quit")
	case tabViewfinder:
		return m.styles.FooterHelp.Render("tab: next view  q: quit")
	case tabSettings:
		return m.styles.FooterHelp.Render("s: apply  tab: next view  q: quit")
	}
	return ""
}
