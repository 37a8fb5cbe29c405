package main

import "github.com/charmbracelet/lipgloss"

var (
	errorBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("9")).
			Padding(0, 1)

	errorTitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("9"))
)

// errorBox renders a titled message box for fatal startup errors.
func errorBox(title, msg string) string {
	return errorBoxStyle.Render(errorTitleStyle.Render(title) + "\n\n" + msg)
}
