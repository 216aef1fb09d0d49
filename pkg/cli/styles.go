package cli

import "github.com/charmbracelet/lipgloss"

var (
	colorGreen  = lipgloss.Color("42")
	colorYellow = lipgloss.Color("220")
	colorRed    = lipgloss.Color("196")
	colorGray   = lipgloss.Color("245")

	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Underline(true)

	warnBoxStyle = lipgloss.NewStyle().
			Foreground(colorYellow).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorYellow).
			Padding(0, 1)

	successStyle = lipgloss.NewStyle().Foreground(colorGreen)
	partialStyle = lipgloss.NewStyle().Foreground(colorYellow)
	failedStyle  = lipgloss.NewStyle().Foreground(colorRed)
	skippedStyle = lipgloss.NewStyle().Foreground(colorGray)
)

func renderBanner(msg string) string {
	return warnBoxStyle.Render(msg)
}
