package styles

import (
	"charm.land/lipgloss/v2"
)

// Palette
const (
	Accent       = "#874BFD"
	ColumnBorder = "#5F87D7"
	TaskBorder   = "#585858"
	Title        = "#D75FD7"
	Subtle       = "#585858"
	Normal       = "#D0D0D0"
	SuccessFg    = "#5FD75F"
	ErrorFg      = "#FF0000"
)

// ColumnWidth is the outer width of one rendered column
var ColumnWidth = 32

var (
	// Board layout
	BoardTitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(Title)).
			MarginBottom(1)

	ColumnStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(ColumnBorder)).
			Padding(0, 1).
			Width(ColumnWidth)

	ColumnTitleStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color(Accent))

	TaskStyle = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color(TaskBorder)).
			Width(ColumnWidth - 4)

	// Text styles
	ValueStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color(Normal))
	SubtitleStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(Subtle)).Italic(true)

	// Status styles
	SuccessStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(SuccessFg))
	ErrorStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(ErrorFg))
)
