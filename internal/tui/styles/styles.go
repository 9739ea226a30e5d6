package styles

import "github.com/charmbracelet/lipgloss"

// Styles defines the core UI styles
var (
	App = lipgloss.NewStyle().
		Padding(1, 2).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("#7B61FF"))

	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("#7B61FF")).
		MarginBottom(1)

	// Key renders one held key as a chip.
	Key = lipgloss.NewStyle().
		Foreground(lipgloss.Color("#FFFFFF")).
		Background(lipgloss.Color("#4F4FB7")).
		Padding(0, 1)

	Idle = lipgloss.NewStyle().
		Foreground(lipgloss.Color("#666666"))

	Success = lipgloss.NewStyle().
		Foreground(lipgloss.Color("#73F59F")).
		Bold(true)

	Error = lipgloss.NewStyle().
		Foreground(lipgloss.Color("#FF0000"))

	Help = lipgloss.NewStyle().
		Foreground(lipgloss.Color("#5A9"))
)
