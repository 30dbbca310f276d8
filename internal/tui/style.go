package tui

import "github.com/charmbracelet/lipgloss"

var (
	docStyle = lipgloss.NewStyle().
			Margin(1, 2)

	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("62")).
			Padding(1, 0)

	listItemStyle = lipgloss.NewStyle().
			PaddingLeft(2)

	selectedListItemStyle = lipgloss.NewStyle().
				PaddingLeft(1).
				Foreground(lipgloss.Color("62")).
				SetString("> ")

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "#A49FA5", Dark: "#777777"})

	statusMessageStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#04B575"))

	errorMessageStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#FF5F87"))
)
