// Package theme centralizes Lip Gloss styles for the calendar widget.
package theme

import "github.com/charmbracelet/lipgloss/v2"

// Theme groups the styles used by the month list.
type Theme struct {
	MonthHeader lipgloss.Style
	WeekdayRow  lipgloss.Style
	Day         lipgloss.Style
	Today       lipgloss.Style
	Selected    lipgloss.Style
	Error       lipgloss.Style
	Spinner     lipgloss.Style
}

// PanelTheme groups styles used by overlay panels.
type PanelTheme struct {
	Frame lipgloss.Style
	Title lipgloss.Style
	Body  lipgloss.Style
}

// DefaultPanel returns the built-in overlay panel styling.
func DefaultPanel() PanelTheme {
	return PanelTheme{
		Frame: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1),
		Title: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("212")),
		Body:  lipgloss.NewStyle().Foreground(lipgloss.Color("250")),
	}
}

// Default returns the built-in theme used across the UI.
func Default() Theme {
	return Theme{
		MonthHeader: lipgloss.NewStyle().
			Foreground(lipgloss.Color("212")).
			Bold(true),
		WeekdayRow: lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		Day:        lipgloss.NewStyle(),
		Today: lipgloss.NewStyle().
			Foreground(lipgloss.Color("212")).
			Bold(true),
		Selected: lipgloss.NewStyle().Reverse(true),
		Error:    lipgloss.NewStyle().Foreground(lipgloss.Color("203")),
		Spinner:  lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
	}
}
