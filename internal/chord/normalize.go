// Package chord reduces raw key and mouse-button events into normalized
// chord strings such as "ctrl+shift+k" or "mouse x1".
package chord

import (
	"strings"
)

// Separator joins the keys of a chord.
const Separator = "+"

// MousePrefix starts every mouse-button token.
const MousePrefix = "mouse "

// Modifier names after normalization.
const (
	Shift = "shift"
	Ctrl  = "ctrl"
	Alt   = "alt"
	Esc   = "esc"
)

// ignored keys never take part in a chord.
var ignored = map[string]bool{
	"caps lock":     true,
	"capslock":      true,
	"caps_lock":     true,
	"scroll lock":   true,
	"scrolllock":    true,
	"scroll_lock":   true,
	"num lock":      true,
	"numlock":       true,
	"num_lock":      true,
	"win":           true,
	"lwin":          true,
	"rwin":          true,
	"left windows":  true,
	"right windows": true,
	"cmd":           true,
	"lcmd":          true,
	"rcmd":          true,
	"command":       true,
	"super":         true,
	"meta":          true,
}

var aliases = map[string]string{
	"control":  Ctrl,
	"lcontrol": Ctrl,
	"rcontrol": Ctrl,
	"lctrl":    Ctrl,
	"rctrl":    Ctrl,
	"lshift":   Shift,
	"rshift":   Shift,
	"lmenu":    Alt,
	"rmenu":    Alt,
	"lalt":     Alt,
	"ralt":     Alt,
	"option":   Alt,
	"escape":   Esc,
	"return":   "enter",
	"spacebar": "space",
	"+":        "plus",
}

// Normalize converts a raw key identifier into its canonical name. Left and
// right variants of shift, ctrl and alt merge; lock keys and the OS key
// report ok=false and must be ignored.
func Normalize(raw string) (string, bool) {
	name := strings.ToLower(strings.TrimSpace(raw))
	if name == "" || ignored[name] {
		return "", false
	}

	switch {
	case name == Shift || strings.HasSuffix(name, " shift"):
		return Shift, true
	case name == Ctrl || strings.HasSuffix(name, " control") || strings.HasSuffix(name, " ctrl"):
		return Ctrl, true
	case name == Alt || strings.HasSuffix(name, " alt"):
		return Alt, true
	}

	if alias, ok := aliases[name]; ok {
		return alias, true
	}
	return name, true
}

// IsModifier reports whether name is one of the bare modifiers.
func IsModifier(name string) bool {
	return name == Shift || name == Ctrl || name == Alt
}

// MouseToken returns the chord token for a mouse button name such as
// "left" or "x1".
func MouseToken(button string) string {
	return MousePrefix + strings.ToLower(strings.TrimSpace(button))
}

// Split breaks a chord string into its normalized keys. Empty parts are
// dropped.
func Split(chord string) []string {
	var keys []string
	for _, part := range strings.Split(chord, Separator) {
		if part = strings.TrimSpace(part); part == "" {
			continue
		}
		if name, ok := Normalize(part); ok {
			keys = append(keys, name)
		}
	}
	return keys
}

// Join serializes keys in the given order.
func Join(keys []string) string {
	return strings.Join(keys, Separator)
}
