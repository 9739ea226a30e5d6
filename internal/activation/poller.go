package activation

import (
	"radialmenu/internal/geometry"
	"radialmenu/internal/log"
)

// DefaultDebounce is the number of polls a released combo is still
// treated as held.
const DefaultDebounce = 3

// EventKind is what a poll produced.
type EventKind int

const (
	None EventKind = iota
	Start
	End
)

func (k EventKind) String() string {
	switch k {
	case Start:
		return "start"
	case End:
		return "end"
	}
	return "none"
}

// Event is a poll outcome. Pos is the cursor position for Start.
type Event struct {
	Kind EventKind
	Pos  geometry.Point
}

// Cursor reports the global pointer position.
type Cursor interface {
	CursorPos() geometry.Point
}

// Settings configure a Poller.
type Settings struct {
	Combo            string
	KeyboardDebounce int
	MouseDebounce    int
}

// Poller turns periodic held-state samples into ActivationStart and
// ActivationEnd. It is driven from a single goroutine.
type Poller struct {
	probe   Probe
	cursor  Cursor
	combo   Combo
	depth   int
	counter int
	active  bool
}

// NewPoller returns an inactive poller.
func NewPoller(probe Probe, cursor Cursor, s Settings) *Poller {
	p := &Poller{probe: probe, cursor: cursor}
	p.Configure(s)
	p.counter = p.depth
	return p
}

// Configure applies new settings. The debounce counter and active state
// survive so an in-flight activation is not cut short.
func (p *Poller) Configure(s Settings) {
	p.combo = ParseCombo(s.Combo)
	depth := s.KeyboardDebounce
	if p.combo.Kind == Mouse {
		depth = s.MouseDebounce
	}
	if depth < 0 {
		depth = 0
	}
	p.depth = depth
	log.Debugf("Activation combo %q (%s), debounce %d", p.combo.Raw, p.combo.Kind, depth)
}

// Combo returns the classified combo being watched.
func (p *Poller) Combo() Combo {
	return p.combo
}

// Active reports whether an activation is in progress.
func (p *Poller) Active() bool {
	return p.active
}

// Poll samples the combo once.
func (p *Poller) Poll() Event {
	if p.combo.Held(p.probe) {
		p.counter = p.depth
		if !p.active {
			p.active = true
			return Event{Kind: Start, Pos: p.cursor.CursorPos()}
		}
		return Event{}
	}

	if p.counter > 0 {
		p.counter--
		return Event{}
	}
	if p.active {
		p.active = false
		return Event{Kind: End}
	}
	return Event{}
}
