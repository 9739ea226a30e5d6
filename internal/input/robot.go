package input

import (
	"strings"

	"github.com/go-vgo/robotgo"

	"radialmenu/internal/chord"
	"radialmenu/internal/errors"
	"radialmenu/internal/geometry"
)

// robotKeys translates normalized names robotgo spells differently.
var robotKeys = map[string]string{
	"esc":       "escape",
	"plus":      "+",
	"page up":   "pageup",
	"page down": "pagedown",
	"del":       "delete",
	"ins":       "insert",

	"print screen": "printscreen",
	"num plus":     "num+",
	"num enter":    "num_enter",
	"num=":         "num_equal",
	"clear":        "num_clear",
}

// Robot injects synthetic input and reads the cursor through robotgo.
type Robot struct{}

// NewRobot returns the system injector.
func NewRobot() *Robot {
	return &Robot{}
}

// SendKeyChord taps the last key of c while holding the others.
func (r *Robot) SendKeyChord(c string) error {
	key, mods, err := splitForTap(c)
	if err != nil {
		return errors.NewInjectionError("hotkey", c, err)
	}

	args := make([]interface{}, len(mods))
	for i, m := range mods {
		args[i] = m
	}
	if err := robotgo.KeyTap(key, args...); err != nil {
		return errors.NewInjectionError("hotkey", c, err)
	}
	return nil
}

// TypeText types text into the focused window.
func (r *Robot) TypeText(text string) error {
	robotgo.TypeStr(text)
	return nil
}

// CursorPos returns the global cursor position.
func (r *Robot) CursorPos() geometry.Point {
	x, y := robotgo.Location()
	return geometry.Point{X: x, Y: y}
}

// splitForTap turns a chord into robotgo's key plus modifier list.
func splitForTap(c string) (string, []string, error) {
	keys := chord.Split(c)
	if len(keys) == 0 {
		return "", nil, errors.ErrEmptyChord
	}
	for _, k := range keys {
		if strings.HasPrefix(k, chord.MousePrefix) {
			return "", nil, errors.Newf("mouse button %q cannot be sent as a key", k)
		}
	}

	out := make([]string, len(keys))
	for i, k := range keys {
		if alias, ok := robotKeys[k]; ok {
			k = alias
		}
		out[i] = k
	}
	return out[len(out)-1], out[:len(out)-1], nil
}
