package tui

import "github.com/charmbracelet/lipgloss"

var (
	colorPrimary = lipgloss.Color("#E91E63")
	colorAccent  = lipgloss.Color("#9C27B0")
	colorMuted   = lipgloss.Color("#9E9E9E")
	colorError   = lipgloss.Color("#E53935")
	colorBorder  = lipgloss.Color("#424242")
)

// Styles groups every lipgloss style the wizard renders with.
type Styles struct {
	Title    lipgloss.Style
	Subtitle lipgloss.Style
	Progress lipgloss.Style
	Option   lipgloss.Style
	Cursor   lipgloss.Style
	Selected lipgloss.Style
	Hint     lipgloss.Style
	Error    lipgloss.Style
	Card     lipgloss.Style
	LogPanel lipgloss.Style
	LogLine  lipgloss.Style
}

// DefaultStyles returns the standard palette.
func DefaultStyles() Styles {
	return Styles{
		Title:    lipgloss.NewStyle().Bold(true).Foreground(colorPrimary).MarginBottom(1),
		Subtitle: lipgloss.NewStyle().Foreground(colorMuted).MarginBottom(1),
		Progress: lipgloss.NewStyle().Foreground(colorAccent),
		Option:   lipgloss.NewStyle().PaddingLeft(2),
		Cursor:   lipgloss.NewStyle().Foreground(colorPrimary).Bold(true),
		Selected: lipgloss.NewStyle().Foreground(colorAccent).Bold(true),
		Hint:     lipgloss.NewStyle().Foreground(colorMuted).Italic(true).MarginTop(1),
		Error:    lipgloss.NewStyle().Foreground(colorError).Bold(true),
		Card: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorBorder).
			Padding(0, 1).
			MarginBottom(1),
		LogPanel: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder(), true, false, false, false).
			BorderForeground(colorBorder).
			MarginTop(1),
		LogLine: lipgloss.NewStyle().Foreground(colorMuted),
	}
}
