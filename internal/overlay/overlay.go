// Package overlay describes the surface the radial menu is drawn on and
// provides a headless implementation that tracks what would be painted.
package overlay

import (
	"strings"
	"sync"

	"radialmenu/internal/config"
	"radialmenu/internal/geometry"
	"radialmenu/internal/log"
)

// LabelLimit is how many runes of a non-highlighted item label are shown.
const LabelLimit = 5

// Surface receives the menu's visual transitions. Calls come from the
// launcher goroutine only.
type Surface interface {
	OpenRoot(origin geometry.Point, mainRadius int)
	Preview(d geometry.Direction, ok bool)
	OpenSub(origin geometry.Point, d geometry.Direction, items []config.Action, subRadius, itemSize int)
	Highlight(index int)
	CurrentHighlight() (int, bool)
	Close()
}

// Tooltip renders the hover text of an action.
func Tooltip(a config.Action) string {
	var b strings.Builder
	b.WriteString("**" + a.Label + "**")
	if a.Keys != "" && a.Type != config.Text {
		b.WriteString("\nHotkey: " + a.Keys)
	}
	if a.Type == config.Text || a.Type == config.HotkeyAndText {
		if value := strings.TrimSpace(a.Value); value != "" {
			b.WriteString("\nText Action:\n" + value)
		}
	}
	return b.String()
}

// Abbreviate shortens labels longer than LabelLimit runes.
func Abbreviate(label string) string {
	runes := []rune(label)
	if len(runes) <= LabelLimit {
		return label
	}
	return string(runes[:LabelLimit]) + "..."
}

// Level is what the surface currently shows.
type Level int

const (
	Hidden Level = iota
	RootWheel
	SubWheel
)

// View is a copy of the surface state.
type View struct {
	Level      Level
	Origin     geometry.Point
	MainRadius int
	Preview    *geometry.Direction
	Direction  geometry.Direction
	Labels     []string
	SubRadius  int
	ItemSize   int
	Highlight  int
	Tooltip    string
}

// LogSurface is a headless Surface. It keeps the state a painter would need
// and logs transitions at debug level.
type LogSurface struct {
	mu    sync.Mutex
	view  View
	items []config.Action
}

// NewLogSurface returns a hidden surface.
func NewLogSurface() *LogSurface {
	return &LogSurface{view: View{Highlight: -1}}
}

func (s *LogSurface) OpenRoot(origin geometry.Point, mainRadius int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = nil
	s.view = View{Level: RootWheel, Origin: origin, MainRadius: mainRadius, Highlight: -1}
	log.LogWithFields(log.F("origin", origin.String()), log.F("radius", mainRadius)).Debug("Root wheel opened")
}

func (s *LogSurface) Preview(d geometry.Direction, ok bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.view.Level != RootWheel {
		return
	}
	if !ok {
		s.view.Preview = nil
		return
	}
	s.view.Preview = &d
}

func (s *LogSurface) OpenSub(origin geometry.Point, d geometry.Direction, items []config.Action, subRadius, itemSize int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = append([]config.Action(nil), items...)
	s.view = View{
		Level:     SubWheel,
		Origin:    origin,
		Direction: d,
		SubRadius: subRadius,
		ItemSize:  itemSize,
		Highlight: -1,
	}
	s.relabel()
	log.LogWithFields(
		log.F("direction", d.String()),
		log.F("origin", origin.String()),
		log.F("items", len(items)),
	).Debug("Sub wheel opened")
}

func (s *LogSurface) Highlight(index int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.view.Level != SubWheel || index == s.view.Highlight {
		return
	}
	if index < 0 || index >= len(s.items) {
		index = -1
	}
	s.view.Highlight = index
	s.relabel()
	if index >= 0 {
		log.LogWithFields(log.F("index", index), log.F("label", s.items[index].Label)).Debug("Item highlighted")
	}
}

func (s *LogSurface) CurrentHighlight() (int, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.view.Highlight, s.view.Level == SubWheel && s.view.Highlight >= 0
}

func (s *LogSurface) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.view.Level == Hidden {
		return
	}
	s.items = nil
	s.view = View{Highlight: -1}
	log.Debug("Menu closed")
}

// View returns a copy of what the surface shows.
func (s *LogSurface) View() View {
	s.mu.Lock()
	defer s.mu.Unlock()
	v := s.view
	v.Labels = append([]string(nil), s.view.Labels...)
	return v
}

// relabel recomputes labels and tooltip; the highlighted label is shown in
// full.
func (s *LogSurface) relabel() {
	s.view.Labels = make([]string, len(s.items))
	for i, it := range s.items {
		if i == s.view.Highlight {
			s.view.Labels[i] = it.Label
		} else {
			s.view.Labels[i] = Abbreviate(it.Label)
		}
	}
	s.view.Tooltip = ""
	if s.view.Highlight >= 0 {
		s.view.Tooltip = Tooltip(s.items[s.view.Highlight])
	}
}
