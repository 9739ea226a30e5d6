// Package tui is the terminal capture dialog: it runs one chord capture and
// shows the held keys until the capture finishes.
package tui

import (
	"context"
	"time"

	"radialmenu/internal/errors"
	"radialmenu/internal/tui/common"
	"radialmenu/internal/tui/components"
	"radialmenu/internal/tui/messages"
	"radialmenu/internal/tui/styles"
	"radialmenu/internal/tui/views"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// HeldRefresh is how often the held keys are resampled.
const HeldRefresh = 50 * time.Millisecond

// Runner performs the capture. It must return once ctx is done.
type Runner func(ctx context.Context) (string, error)

// HeldFunc samples the keys currently held.
type HeldFunc func() []string

type Model struct {
	title string
	run   Runner
	held  HeldFunc

	ctx    context.Context
	cancel context.CancelFunc
	keys   keyMap
	status *components.StatusBar

	phase     common.Phase
	heldKeys  []string
	result    string
	err       error
	cancelled bool
}

// New returns a dialog that runs run under ctx. held may be nil.
func New(ctx context.Context, title string, run Runner, held HeldFunc) *Model {
	ctx, cancel := context.WithCancel(ctx)
	status := components.NewStatusBar()
	status.SetWaiting(true)
	status.SetText("listening", styles.Help)

	return &Model{
		title:  title,
		run:    run,
		held:   held,
		ctx:    ctx,
		cancel: cancel,
		keys:   defaultKeyMap(),
		status: status,
		phase:  common.Capturing,
	}
}

// Init implements tea.Model
func (m *Model) Init() tea.Cmd {
	return tea.Batch(m.status.Tick(), m.capture(), m.sampleHeld())
}

// View implements tea.Model
func (m *Model) View() string {
	return views.RenderCaptureView(m)
}

// Update implements tea.Model
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case messages.CaptureDoneMsg:
		m.finish(msg.Chord, msg.Err)
		return m, tea.Quit

	case messages.HeldKeysMsg:
		if m.phase != common.Capturing {
			return m, nil
		}
		m.heldKeys = msg.Keys
		return m, m.sampleHeld()

	case tea.KeyMsg:
		if m.phase == common.Capturing && key.Matches(msg, m.keys.Cancel) {
			m.cancelled = true
			m.cancel()
		}
		return m, nil
	}
	return m, m.status.Update(msg)
}

func (m *Model) capture() tea.Cmd {
	return func() tea.Msg {
		c, err := m.run(m.ctx)
		return messages.CaptureDoneMsg{Chord: c, Err: err}
	}
}

func (m *Model) sampleHeld() tea.Cmd {
	if m.held == nil {
		return nil
	}
	return tea.Tick(HeldRefresh, func(time.Time) tea.Msg {
		return messages.HeldKeysMsg{Keys: m.held()}
	})
}

func (m *Model) finish(c string, err error) {
	defer m.cancel()
	m.status.SetWaiting(false)
	m.status.SetText("", styles.Help)
	m.heldKeys = nil

	switch {
	case err == nil:
		m.phase = common.Captured
		m.result = c
	case m.cancelled || errors.IsCaptureCancelled(err):
		m.phase = common.Cancelled
		m.err = errors.ErrCaptureCancelled
	default:
		m.phase = common.Failed
		m.err = err
	}
}

// Title returns the dialog title.
func (m *Model) Title() string { return m.title }

// Phase returns where the dialog is.
func (m *Model) Phase() common.Phase { return m.phase }

// Held returns the last sample of held keys.
func (m *Model) Held() []string { return m.heldKeys }

// Result returns the captured chord.
func (m *Model) Result() string { return m.result }

// Err returns why the capture produced no chord.
func (m *Model) Err() error { return m.err }

// ShowHelp is true while capturing.
func (m *Model) ShowHelp() bool { return m.phase == common.Capturing }

// StatusLine returns the rendered status bar.
func (m *Model) StatusLine() string { return m.status.View() }

// Run shows the dialog until the capture finishes and returns its outcome.
func Run(ctx context.Context, title string, run Runner, held HeldFunc, opts ...tea.ProgramOption) (string, error) {
	m := New(ctx, title, run, held)
	final, err := tea.NewProgram(m, opts...).Run()
	m.cancel()
	if err != nil {
		return "", errors.Wrap(err, "capture dialog failed")
	}
	fm := final.(*Model)
	return fm.Result(), fm.Err()
}
