package input

import (
	"context"
	"fmt"
	"unicode"

	hook "github.com/robotn/gohook"

	"radialmenu/internal/chord"
)

// mouseButtons maps libuiohook button numbers to chord button names.
var mouseButtons = map[uint16]string{
	1: "left",
	2: "right",
	3: "middle",
	4: "x1",
	5: "x2",
}

// GlobalHook is the gohook-backed Source. Only one may run per process.
type GlobalHook struct{}

// NewGlobalHook returns the system hook source.
func NewGlobalHook() *GlobalHook {
	return &GlobalHook{}
}

// Run starts the hook and translates its events until ctx is done.
func (g *GlobalHook) Run(ctx context.Context, publish func(chord.Event)) error {
	events := hook.Start()
	defer hook.End()

	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-events:
			if !ok {
				return fmt.Errorf("hook event channel closed")
			}
			if out, ok := translate(ev); ok {
				publish(out)
			}
		}
	}
}

// translate maps a gohook event onto a chord event. gohook's kind names
// are shifted against libuiohook's: KeyHold and MouseHold are the physical
// presses, KeyUp and MouseDown the releases. KeyDown (typed) and MouseUp
// (clicked, never sent after a drag) are skipped.
func translate(ev hook.Event) (chord.Event, bool) {
	switch ev.Kind {
	case hook.KeyHold:
		return chord.Event{Kind: chord.KeyDown, Name: keyName(ev)}, true
	case hook.KeyUp:
		return chord.Event{Kind: chord.KeyUp, Name: keyName(ev)}, true
	case hook.MouseHold:
		if name, ok := mouseButtons[ev.Button]; ok {
			return chord.Event{Kind: chord.MouseDown, Name: name}, true
		}
	case hook.MouseDown:
		if name, ok := mouseButtons[ev.Button]; ok {
			return chord.Event{Kind: chord.MouseUp, Name: name}, true
		}
	case hook.MouseWheel:
		if ev.Rotation != 0 {
			// libuiohook rotation is positive toward the user.
			return chord.Event{Kind: chord.Wheel, Rotation: -int(ev.Rotation)}, true
		}
	}
	return chord.Event{}, false
}

func keyName(ev hook.Event) string {
	if name, ok := keyNames[ev.Keycode]; ok {
		return name
	}
	if ev.Keychar > 0 && unicode.IsPrint(ev.Keychar) {
		return string(unicode.ToLower(ev.Keychar))
	}
	return fmt.Sprintf("key%d", ev.Keycode)
}
