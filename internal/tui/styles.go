package tui

import (
	"github.com/charmbracelet/lipgloss"

	"poemlens/internal/settings"
)

// Styles holds the lipgloss styles for one theme.
type Styles struct {
	TitleBar     lipgloss.Style
	TabActive    lipgloss.Style
	TabInactive  lipgloss.Style
	RowCursor    lipgloss.Style
	RowTitle     lipgloss.Style
	RowMeta      lipgloss.Style
	RowVerse     lipgloss.Style
	RowPressed   lipgloss.Style
	UndoBanner   lipgloss.Style
	UndoCount    lipgloss.Style
	Viewfinder   lipgloss.Style
	FieldLabel   lipgloss.Style
	FieldFocused lipgloss.Style
	StatusInfo   lipgloss.Style
	StatusError  lipgloss.Style
	FooterHelp   lipgloss.Style
}

// themeStyles returns the styles for the named theme.
func themeStyles(theme string) Styles {
	accent, dim, warn := lipgloss.Color("63"), lipgloss.Color("241"), lipgloss.Color("214")
	switch theme {
	case settings.ThemePaper:
		accent, dim, warn = lipgloss.Color("94"), lipgloss.Color("245"), lipgloss.Color("130")
	case settings.ThemeNeon:
		accent, dim, warn = lipgloss.Color("201"), lipgloss.Color("240"), lipgloss.Color("226")
	}

	return Styles{
		TitleBar:     lipgloss.NewStyle().Bold(true).Foreground(accent),
		TabActive:    lipgloss.NewStyle().Bold(true).Foreground(accent).Underline(true),
		TabInactive:  lipgloss.NewStyle().Foreground(dim),
		RowCursor:    lipgloss.NewStyle().Bold(true).Foreground(accent),
		RowTitle:     lipgloss.NewStyle(),
		RowMeta:      lipgloss.NewStyle().Foreground(dim),
		RowVerse:     lipgloss.NewStyle().Foreground(dim).Italic(true),
		RowPressed:   lipgloss.NewStyle().Foreground(warn),
		UndoBanner:   lipgloss.NewStyle().Foreground(warn).Bold(true),
		UndoCount:    lipgloss.NewStyle().Foreground(warn),
		Viewfinder:   lipgloss.NewStyle().Foreground(dim),
		FieldLabel:   lipgloss.NewStyle().Foreground(dim),
		FieldFocused: lipgloss.NewStyle().Bold(true).Foreground(accent),
		StatusInfo:   lipgloss.NewStyle().Foreground(dim),
		StatusError:  lipgloss.NewStyle().Foreground(lipgloss.Color("196")),
		FooterHelp:   lipgloss.NewStyle().Foreground(dim),
	}
}
