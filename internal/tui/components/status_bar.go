package components

import (
	"radialmenu/internal/tui/styles"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// StatusBar shows one line of status, with a spinner while waiting.
type StatusBar struct {
	text    string
	style   lipgloss.Style
	spinner spinner.Model
	waiting bool
}

func NewStatusBar() *StatusBar {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = styles.Help

	return &StatusBar{
		style:   styles.Help,
		spinner: s,
	}
}

// Tick starts the spinner animation.
func (s *StatusBar) Tick() tea.Cmd {
	return s.spinner.Tick
}

func (s *StatusBar) SetWaiting(waiting bool) {
	s.waiting = waiting
}

func (s *StatusBar) SetText(text string, style lipgloss.Style) {
	s.text = text
	s.style = style
}

func (s *StatusBar) Update(msg tea.Msg) tea.Cmd {
	if !s.waiting {
		return nil
	}
	var cmd tea.Cmd
	s.spinner, cmd = s.spinner.Update(msg)
	return cmd
}

func (s *StatusBar) View() string {
	if s.text == "" && !s.waiting {
		return ""
	}
	if s.waiting {
		return s.style.Render(s.spinner.View() + " " + s.text)
	}
	return s.style.Render(s.text)
}
