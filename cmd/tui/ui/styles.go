package ui

import (
	"github.com/charmbracelet/lipgloss"
)

var (
	Primary   = lipgloss.Color("#7C6FF0") // Violet
	Secondary = lipgloss.Color("#A89BFF") // Light violet
	Accent    = lipgloss.Color("#F0A35E") // Amber
	Success   = lipgloss.Color("#4ED99B") // Mint green
	Warning   = lipgloss.Color("#FFC86B") // Warm yellow
	Error     = lipgloss.Color("#F25E7A") // Rose
	Muted     = lipgloss.Color("#7A8194") // Gray-blue
	Text      = lipgloss.Color("#ECEFF7") // Off-white
	BgDark    = lipgloss.Color("#141625") // Deep indigo
	BgLight   = lipgloss.Color("#242842") // Indigo

	TitleStyle = lipgloss.NewStyle().
			Foreground(Primary).
			Bold(true).
			Padding(0, 1)

	SubtitleStyle = lipgloss.NewStyle().
			Foreground(Secondary).
			Padding(0, 1)

	BoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Primary).
			Padding(1, 2).
			MarginTop(1)

	SelectedItemStyle = lipgloss.NewStyle().
				Foreground(Accent).
				Bold(true).
				PaddingLeft(2)

	ItemStyle = lipgloss.NewStyle().
			Foreground(Text).
			PaddingLeft(2)

	InfoStyle = lipgloss.NewStyle().
			Foreground(Muted).
			Italic(true)

	SuccessStyle = lipgloss.NewStyle().
			Foreground(Success).
			Bold(true)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(Error).
			Bold(true)

	InputStyle = lipgloss.NewStyle().
			Foreground(Text).
			Border(lipgloss.NormalBorder()).
			BorderForeground(Secondary).
			Padding(0, 1)

	FocusedInputStyle = lipgloss.NewStyle().
				Foreground(Text).
				Border(lipgloss.NormalBorder()).
				BorderForeground(Accent).
				Padding(0, 1)

	LabelStyle = lipgloss.NewStyle().
			Foreground(Secondary).
			Width(20)

	ValueStyle = lipgloss.NewStyle().
			Foreground(Text).
			Bold(true)
)

// priorityColor maps a task priority to its accent color.
func priorityColor(priority string) lipgloss.Color {
	switch priority {
	case "high":
		return Error
	case "low":
		return Muted
	default:
		return Warning
	}
}
