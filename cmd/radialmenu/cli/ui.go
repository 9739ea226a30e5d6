package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// ColorTheme is the set of colors used for terminal messages.
type ColorTheme struct {
	Name    string
	Success lipgloss.Color
	Error   lipgloss.Color
	Warning lipgloss.Color
	Info    lipgloss.Color
	Header  lipgloss.Color
}

var (
	// BlackRedTheme matches the default overlay theme.
	BlackRedTheme = ColorTheme{
		Name:    "black_red",
		Success: lipgloss.Color("#73F59F"),
		Error:   lipgloss.Color("#FF3B3B"),
		Warning: lipgloss.Color("#F5C542"),
		Info:    lipgloss.Color("#BBBBBB"),
		Header:  lipgloss.Color("#E03030"),
	}

	AvailableThemes = []ColorTheme{BlackRedTheme}
)

// CurrentTheme is the active theme.
var CurrentTheme = BlackRedTheme

// Output is where the Print helpers write.
var Output io.Writer = os.Stdout

// SetTheme sets the current theme by name. Unknown names keep the
// current theme.
func SetTheme(name string) bool {
	for _, theme := range AvailableThemes {
		if theme.Name == name {
			CurrentTheme = theme
			return true
		}
	}
	return false
}

func printLine(color lipgloss.Color, prefix, message string) {
	fmt.Fprintln(Output, lipgloss.NewStyle().Foreground(color).Render(prefix+message))
}

// PrintSuccess prints a success message
func PrintSuccess(message string) {
	printLine(CurrentTheme.Success, "✓ ", message)
}

// PrintError prints an error message
func PrintError(message string) {
	printLine(CurrentTheme.Error, "✗ ", message)
}

// PrintWarning prints a warning message
func PrintWarning(message string) {
	printLine(CurrentTheme.Warning, "! ", message)
}

// PrintInfo prints an informational message
func PrintInfo(message string) {
	printLine(CurrentTheme.Info, "ℹ ", message)
}

// PrintHeader prints a section header
func PrintHeader(message string) {
	header := lipgloss.NewStyle().Foreground(CurrentTheme.Header).Bold(true)
	fmt.Fprintln(Output, "\n"+header.Render(message))
	fmt.Fprintln(Output, strings.Repeat("─", lipgloss.Width(message)))
}
