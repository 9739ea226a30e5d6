package chord

import "fmt"

// EventKind classifies raw input events fed to a Reducer.
type EventKind int

const (
	KeyDown EventKind = iota
	KeyUp
	MouseDown
	MouseUp
	Wheel
)

func (k EventKind) String() string {
	switch k {
	case KeyDown:
		return "key_down"
	case KeyUp:
		return "key_up"
	case MouseDown:
		return "mouse_down"
	case MouseUp:
		return "mouse_up"
	case Wheel:
		return "wheel"
	}
	return fmt.Sprintf("event_kind(%d)", int(k))
}

// Event is a raw input event. Name holds the key identifier for key events
// and the button name ("left", "x1", ...) for mouse events. Rotation is the
// wheel delta, positive away from the user.
type Event struct {
	Kind     EventKind
	Name     string
	Rotation int
}

// Mode selects how a Reducer completes.
type Mode int

const (
	// ChordMode completes once every held key is released, yielding the keys
	// in press order. A lone modifier tap is discarded.
	ChordMode Mode = iota
	// SingleKeyMode completes on the first non-ignored key down.
	SingleKeyMode
)

// State is the lifecycle of a Reducer.
type State int

const (
	Idle State = iota
	Capturing
	Done
	Cancelled
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Capturing:
		return "capturing"
	case Done:
		return "done"
	case Cancelled:
		return "cancelled"
	}
	return fmt.Sprintf("state(%d)", int(s))
}

// Reducer turns a stream of raw events into one chord string. It is not
// safe for concurrent use; a capture session owns it from a single
// goroutine.
type Reducer struct {
	mode   Mode
	state  State
	held   map[string]bool
	order  []string
	result string
}

// NewReducer returns an idle reducer.
func NewReducer(mode Mode) *Reducer {
	return &Reducer{mode: mode, held: make(map[string]bool)}
}

// Start clears any previous capture and begins a new one.
func (r *Reducer) Start() {
	r.state = Capturing
	r.held = make(map[string]bool)
	r.order = r.order[:0]
	r.result = ""
}

// State returns the current lifecycle state.
func (r *Reducer) State() State {
	return r.state
}

// Result returns the captured chord once the reducer is Done.
func (r *Reducer) Result() (string, bool) {
	return r.result, r.state == Done
}

// Cancel abandons the capture.
func (r *Reducer) Cancel() {
	if r.state == Capturing {
		r.state = Cancelled
	}
}

// Feed advances the reducer by one event and returns the resulting state.
// Events arriving outside Capturing are ignored.
func (r *Reducer) Feed(ev Event) State {
	if r.state != Capturing {
		return r.state
	}

	switch ev.Kind {
	case KeyDown:
		r.keyDown(ev.Name)
	case KeyUp:
		if name, ok := Normalize(ev.Name); ok {
			r.release(name)
		}
	case MouseDown:
		// Mouse buttons only bind on their own, never inside a key chord.
		if len(r.held) == 0 && ev.Name != "" {
			r.finish(MouseToken(ev.Name))
		}
	}
	return r.state
}

func (r *Reducer) keyDown(raw string) {
	name, ok := Normalize(raw)
	if !ok {
		return
	}
	if name == Esc {
		r.state = Cancelled
		return
	}

	if r.mode == SingleKeyMode {
		r.finish(name)
		return
	}

	if r.held[name] {
		return
	}
	r.held[name] = true
	for _, k := range r.order {
		if k == name {
			return
		}
	}
	r.order = append(r.order, name)
}

func (r *Reducer) release(name string) {
	if !r.held[name] {
		return
	}
	delete(r.held, name)
	if len(r.held) > 0 || len(r.order) == 0 || r.mode != ChordMode {
		return
	}

	if len(r.order) == 1 && IsModifier(r.order[0]) {
		r.order = r.order[:0]
		return
	}
	r.finish(Join(r.order))
}

// Held returns the keys currently composing the chord, in press order.
func (r *Reducer) Held() []string {
	out := make([]string, 0, len(r.order))
	for _, k := range r.order {
		if r.held[k] {
			out = append(out, k)
		}
	}
	return out
}

func (r *Reducer) finish(chord string) {
	r.result = chord
	r.state = Done
}
