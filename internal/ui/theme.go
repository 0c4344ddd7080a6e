package ui

import "github.com/charmbracelet/lipgloss"

var (
	accent = lipgloss.Color("#F0821E")

	HelpBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(accent).
			Padding(1, 2)

	HelpTitleStyle = lipgloss.NewStyle().
			Foreground(accent).
			Bold(true)

	HelpSectionStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#FFFFFF")).
				Bold(true).
				MarginTop(1)

	HelpKeyStyle = lipgloss.NewStyle().
			Foreground(accent).
			Width(12)

	HelpDescStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#CCCCCC")).
			Width(14)

	DimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))
)
