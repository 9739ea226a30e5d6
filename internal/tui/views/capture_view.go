package views

import (
	"strings"

	"radialmenu/internal/tui/common"
	"radialmenu/internal/tui/components"
	"radialmenu/internal/tui/styles"
)

// RenderCaptureView draws the capture dialog.
func RenderCaptureView(m common.ModelReader) string {
	var sb strings.Builder

	sb.WriteString(styles.Title.Render(m.Title()))
	sb.WriteString("\n")

	switch m.Phase() {
	case common.Capturing:
		sb.WriteString("Press the combination anywhere on screen.\n\n")
		sb.WriteString("Held: " + components.RenderHeldKeys(m.Held()) + "\n")
	case common.Captured:
		sb.WriteString("Captured: " + styles.Success.Render(m.Result()) + "\n")
	case common.Cancelled:
		sb.WriteString(styles.Idle.Render("Capture cancelled") + "\n")
	case common.Failed:
		msg := "Capture failed"
		if err := m.Err(); err != nil {
			msg += ": " + err.Error()
		}
		sb.WriteString(styles.Error.Render(msg) + "\n")
	}

	if status := m.StatusLine(); status != "" {
		sb.WriteString("\n" + status + "\n")
	}
	if m.ShowHelp() {
		sb.WriteString("\n" + RenderHelp())
	}
	if m.Phase() == common.Capturing {
		sb.WriteString("\n" + RenderKeyCommands())
	}

	return styles.App.Render(sb.String())
}

func RenderKeyCommands() string {
	return styles.Help.Render("[Esc] Cancel")
}

func RenderHelp() string {
	return styles.Help.Render(`Modifiers alone never finish a chord.
Release every key to finish; the keys are listed in press order.
A mouse click with nothing held captures the button.`)
}
