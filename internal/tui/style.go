package tui

import "github.com/charmbracelet/lipgloss"

var (
	Primary = lipgloss.Color("#F15869")
	Accent  = lipgloss.Color("#00D7B6")
	Fg      = lipgloss.Color("#E5E7EB")
	Muted   = lipgloss.Color("#6B7280")
	Dim     = lipgloss.Color("#374151")
)

var (
	Title = lipgloss.NewStyle().
		Foreground(Primary).
		Bold(true)

	Row = lipgloss.NewStyle().
		Width(colWidth).
		Align(lipgloss.Center).
		Foreground(Muted)
	FocusedRow = Row.
			Foreground(Fg).
			Bold(true)
	ActiveFocusedRow = FocusedRow.
				Foreground(lipgloss.Color("#101014")).
				Background(Accent)

	Separator = lipgloss.NewStyle().
			Width(sepWidth).
			Align(lipgloss.Center).
			Foreground(Fg)

	Label = lipgloss.NewStyle().
		Foreground(Fg)
)
