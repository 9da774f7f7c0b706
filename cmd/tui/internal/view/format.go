package view

import (
	"github.com/charmbracelet/lipgloss"
)

var (
	faintStyle = lipgloss.NewStyle().Faint(true)
	errorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205"))
	boxStyle   = lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1)
)

func activeStyle(s string) string {
	return lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Render(s)
}

// statusLine renders a status message, in red when it reports an error.
func statusLine(status string, isErr bool) string {
	if status == "" {
		return ""
	}

	if isErr {
		return errorStyle.Render(status) + "\n"
	}

	return faintStyle.Render(status) + "\n"
}
