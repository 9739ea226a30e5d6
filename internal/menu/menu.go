// Package menu implements the two-level radial menu state machine: a root
// wheel that picks one of four directions by crossing the main radius, and a
// sub-wheel whose highlighted action is committed on release.
package menu

import (
	"fmt"

	"radialmenu/internal/config"
	"radialmenu/internal/geometry"
	"radialmenu/internal/log"
	"radialmenu/internal/overlay"

	"github.com/google/uuid"
)

// Snapshot is the read-only configuration a session runs against.
type Snapshot interface {
	MainRadius() int
	Direction(d geometry.Direction) config.DirectionConfig
	SubRadius(d geometry.Direction) int
}

// Level is the variant the machine is in.
type Level int

const (
	Closed Level = iota
	Root
	Sub
)

func (l Level) String() string {
	switch l {
	case Closed:
		return "closed"
	case Root:
		return "root"
	case Sub:
		return "sub"
	}
	return fmt.Sprintf("level(%d)", int(l))
}

type state interface {
	level() Level
}

type closedState struct{}

type rootState struct {
	origin   geometry.Point
	selected *geometry.Direction
	preview  *geometry.Direction
}

type subState struct {
	origin    geometry.Point
	direction geometry.Direction
	items     []config.Action
	subRadius int
	itemSize  int
	highlight int // -1 when nothing is highlighted
}

func (closedState) level() Level { return Closed }
func (*rootState) level() Level { return Root }
func (*subState) level() Level { return Sub }

// Selection is a committed action.
type Selection struct {
	Session   uuid.UUID
	Direction geometry.Direction
	Index     int
	Action    config.Action
}

// Machine is the menu state machine. It is owned by a single goroutine.
type Machine struct {
	surface overlay.Surface
	state   state
	cfg     Snapshot
	session uuid.UUID
	log     *log.Logger
}

// New returns a closed machine drawing on surface.
func New(surface overlay.Surface) *Machine {
	return &Machine{surface: surface, state: closedState{}}
}

// Level returns the current variant.
func (m *Machine) Level() Level {
	return m.state.level()
}

// Session returns the current session ID, uuid.Nil when closed.
func (m *Machine) Session() uuid.UUID {
	if m.Level() == Closed {
		return uuid.Nil
	}
	return m.session
}

// Origin returns the interaction origin of the open wheel.
func (m *Machine) Origin() (geometry.Point, bool) {
	switch s := m.state.(type) {
	case *rootState:
		return s.origin, true
	case *subState:
		return s.origin, true
	}
	return geometry.Point{}, false
}

// Highlight returns the highlighted item of the sub-wheel.
func (m *Machine) Highlight() (int, bool) {
	if s, ok := m.state.(*subState); ok && s.highlight >= 0 {
		return s.highlight, true
	}
	return 0, false
}

// Start opens the root wheel at pos. cfg stays in force until End.
func (m *Machine) Start(pos geometry.Point, cfg Snapshot) {
	if m.Level() != Closed {
		m.End()
	}
	m.cfg = cfg
	m.session = uuid.New()
	m.log = log.LogWithFields(log.F("session", m.session.String()))
	m.state = &rootState{origin: pos}
	m.surface.OpenRoot(pos, cfg.MainRadius())
	m.log.With(log.F("origin", pos.String())).Debug("Session started")
}

// Tick samples the cursor on the root wheel. It reports a direction once
// each time the cursor crosses the main radius toward a new direction.
func (m *Machine) Tick(cursor geometry.Point) (geometry.Direction, bool) {
	s, ok := m.state.(*rootState)
	if !ok {
		return 0, false
	}

	radius := m.cfg.MainRadius()
	d, theta := geometry.DistanceAndAngle(cursor, s.origin)

	preview, hasPreview := geometry.PreviewDirection(d, theta, radius)
	if !sameDirection(s.preview, preview, hasPreview) {
		s.preview = directionPtr(preview, hasPreview)
		m.surface.Preview(preview, hasPreview)
	}

	if !geometry.CrossedThreshold(d, radius) {
		s.selected = nil
		return 0, false
	}
	dir, ok := geometry.NearestDirection(theta)
	if !ok || (s.selected != nil && *s.selected == dir) {
		return 0, false
	}
	s.selected = &dir
	m.log.With(log.F("direction", dir.String())).Debug("Direction selected")
	return dir, true
}

// EnterSub opens the sub-wheel of d, recentered on the point where the
// direction's axis meets the main circle.
func (m *Machine) EnterSub(d geometry.Direction) {
	s, ok := m.state.(*rootState)
	if !ok {
		return
	}

	dc := m.cfg.Direction(d)
	items := make([]config.Action, 0, len(dc.Items))
	for _, it := range dc.Items {
		if it.Selectable() {
			items = append(items, it)
		}
	}

	sub := &subState{
		origin:    geometry.Offset(s.origin, d, m.cfg.MainRadius()),
		direction: d,
		items:     items,
		subRadius: m.cfg.SubRadius(d),
		itemSize:  dc.ItemSize,
		highlight: -1,
	}
	m.state = sub
	m.surface.OpenSub(sub.origin, d, items, sub.subRadius, sub.itemSize)
	if len(items) > 0 {
		m.setHighlight(sub, 0)
	}
	m.log.With(log.F("direction", d.String()), log.F("items", len(items))).Debug("Sub wheel entered")
}

// PointerMove updates the sub-wheel highlight from the cursor. Hovering an
// item wins; otherwise an unset highlight defaults to the first item.
func (m *Machine) PointerMove(cursor geometry.Point) {
	s, ok := m.state.(*subState)
	if !ok {
		return
	}
	n := len(s.items)
	if idx, hit := geometry.NearestItem(cursor, s.origin, s.subRadius, n, s.itemSize); hit {
		m.setHighlight(s, idx)
		return
	}
	if s.highlight < 0 && n > 0 {
		m.setHighlight(s, 0)
	}
}

// Wheel steps the highlight by the sign of delta, wrapping around.
func (m *Machine) Wheel(delta int) {
	s, ok := m.state.(*subState)
	if !ok || delta == 0 || s.highlight < 0 {
		return
	}
	n := len(s.items)
	if n == 0 {
		return
	}
	step := 1
	if delta < 0 {
		step = -1
	}
	m.setHighlight(s, (s.highlight+step+n)%n)
}

// End closes the menu and returns the committed selection, if any. Only a
// highlighted sub-wheel item is committed.
func (m *Machine) End() (Selection, bool) {
	var sel Selection
	committed := false
	if s, ok := m.state.(*subState); ok && s.highlight >= 0 && s.highlight < len(s.items) {
		sel = Selection{
			Session:   m.session,
			Direction: s.direction,
			Index:     s.highlight,
			Action:    s.items[s.highlight],
		}
		committed = true
	}

	if m.Level() != Closed {
		m.surface.Close()
		if committed {
			m.log.With(log.F("direction", sel.Direction.String()), log.F("index", sel.Index)).Info("Session ended with a selection")
		} else {
			m.log.Debug("Session ended without a selection")
		}
	}
	m.state = closedState{}
	m.cfg = nil
	return sel, committed
}

func (m *Machine) setHighlight(s *subState, idx int) {
	if s.highlight == idx {
		return
	}
	s.highlight = idx
	m.surface.Highlight(idx)
}

func sameDirection(cur *geometry.Direction, d geometry.Direction, ok bool) bool {
	if cur == nil {
		return !ok
	}
	return ok && *cur == d
}

func directionPtr(d geometry.Direction, ok bool) *geometry.Direction {
	if !ok {
		return nil
	}
	return &d
}
