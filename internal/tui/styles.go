package tui

import "github.com/charmbracelet/lipgloss"

var (
	activeTabStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("205")).
			Background(lipgloss.Color("236")).
			Padding(0, 1).
			Bold(true)

	inactiveTabStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("240")).
				Padding(0, 1)

	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("205"))

	fadedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))

	statusMsgStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("42"))

	dangerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("196"))

	docStyle = lipgloss.NewStyle().
			Padding(1, 2)

	cellCompletedStyle = lipgloss.NewStyle().
				Background(lipgloss.Color("42")).
				Foreground(lipgloss.Color("0"))

	cellTodayStyle = lipgloss.NewStyle().
			Background(lipgloss.Color("33")).
			Foreground(lipgloss.Color("255")).
			Bold(true)

	cellMissedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196"))

	cellUpcomingStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("240"))
)
