// Package activation watches the configured activation combo and turns its
// held state into debounced start and end events.
package activation

import (
	"strings"

	"github.com/gobwas/glob"
)

// Kind is the input device an activation combo lives on.
type Kind int

const (
	Keyboard Kind = iota
	Mouse
)

func (k Kind) String() string {
	if k == Mouse {
		return "mouse"
	}
	return "keyboard"
}

// Combo is a classified activation combo.
type Combo struct {
	Raw    string
	Kind   Kind
	Button string // set for Mouse combos
}

var (
	x1Pattern    = glob.MustCompile("{mouse x1,x1,mouse_x1}")
	x2Pattern    = glob.MustCompile("{mouse x2,x2,mouse_x2}")
	mousePattern = glob.MustCompile("mouse *")
)

// ParseCombo classifies the textual form of a combo. Anything that is not a
// recognised mouse form is a keyboard chord.
func ParseCombo(raw string) Combo {
	text := strings.ToLower(strings.TrimSpace(raw))
	switch {
	case x1Pattern.Match(text):
		return Combo{Raw: text, Kind: Mouse, Button: "x1"}
	case x2Pattern.Match(text):
		return Combo{Raw: text, Kind: Mouse, Button: "x2"}
	case mousePattern.Match(text):
		return Combo{Raw: text, Kind: Mouse, Button: strings.TrimSpace(strings.TrimPrefix(text, "mouse "))}
	}
	return Combo{Raw: text, Kind: Keyboard}
}

// Probe answers whether inputs are currently held.
type Probe interface {
	IsChordHeld(chord string) bool
	IsButtonHeld(button string) bool
}

// Held reports whether the combo is down according to p.
func (c Combo) Held(p Probe) bool {
	if c.Raw == "" {
		return false
	}
	if c.Kind == Mouse {
		return c.Button != "" && p.IsButtonHeld(c.Button)
	}
	return p.IsChordHeld(c.Raw)
}
