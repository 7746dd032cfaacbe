package tui

import "github.com/charmbracelet/lipgloss"

type styles struct {
	Tab       lipgloss.Style
	ActiveTab lipgloss.Style
	Sidebar   lipgloss.Style
	Item      lipgloss.Style
	Cursor    lipgloss.Style
	Selected  lipgloss.Style
	Main      lipgloss.Style
	Title     lipgloss.Style
	Muted     lipgloss.Style
	Assistant lipgloss.Style
	Status    lipgloss.Style
}

func newStyles(dark bool) styles {
	fg := lipgloss.Color("236")
	accent := lipgloss.Color("97")
	if dark {
		fg = lipgloss.Color("252")
		accent = lipgloss.Color("183")
	}
	border := lipgloss.Color("245")

	return styles{
		Tab:       lipgloss.NewStyle().Padding(0, 1).Foreground(fg),
		ActiveTab: lipgloss.NewStyle().Padding(0, 1).Bold(true).Underline(true).Foreground(accent),
		Sidebar:   lipgloss.NewStyle().Width(24).Padding(0, 1).Border(lipgloss.NormalBorder(), false, true, false, false).BorderForeground(border),
		Item:      lipgloss.NewStyle().Foreground(fg),
		Cursor:    lipgloss.NewStyle().Foreground(accent),
		Selected:  lipgloss.NewStyle().Bold(true).Foreground(accent),
		Main:      lipgloss.NewStyle().Padding(0, 2),
		Title:     lipgloss.NewStyle().Bold(true).Foreground(accent),
		Muted:     lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
		Assistant: lipgloss.NewStyle().Width(28).Padding(0, 1).Border(lipgloss.NormalBorder(), false, false, false, true).BorderForeground(accent),
		Status:    lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
	}
}
