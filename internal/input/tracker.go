package input

import (
	"sort"
	"strings"
	"sync"

	"radialmenu/internal/chord"
)

// Tracker keeps the set of keys and mouse buttons currently held, fed from
// hook events. Queries never block on the hook goroutine for long.
type Tracker struct {
	mu      sync.RWMutex
	keys    map[string]string // raw name -> normalized name
	buttons map[string]bool
}

// NewTracker returns an empty tracker.
func NewTracker() *Tracker {
	return &Tracker{
		keys:    make(map[string]string),
		buttons: make(map[string]bool),
	}
}

// Apply records one raw event.
func (t *Tracker) Apply(ev chord.Event) {
	t.mu.Lock()
	defer t.mu.Unlock()

	switch ev.Kind {
	case chord.KeyDown:
		if name, ok := chord.Normalize(ev.Name); ok {
			t.keys[rawKey(ev.Name)] = name
		}
	case chord.KeyUp:
		delete(t.keys, rawKey(ev.Name))
	case chord.MouseDown:
		t.buttons[buttonKey(ev.Name)] = true
	case chord.MouseUp:
		delete(t.buttons, buttonKey(ev.Name))
	}
}

// Reset forgets everything, used when the hook restarts and key-up events
// may have been lost.
func (t *Tracker) Reset() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.keys = make(map[string]string)
	t.buttons = make(map[string]bool)
}

// IsChordHeld reports whether every key of a "key(+key)*" chord is down.
// An empty chord is never held.
func (t *Tracker) IsChordHeld(c string) bool {
	keys := chord.Split(c)
	if len(keys) == 0 {
		return false
	}

	t.mu.RLock()
	defer t.mu.RUnlock()
	for _, want := range keys {
		if !t.heldLocked(want) {
			return false
		}
	}
	return true
}

// IsButtonHeld reports whether the named mouse button is down.
func (t *Tracker) IsButtonHeld(button string) bool {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.buttons[buttonKey(button)]
}

// Held returns the normalized names of the held keys, modifiers first,
// followed by "mouse <button>" tokens.
func (t *Tracker) Held() []string {
	t.mu.RLock()
	defer t.mu.RUnlock()

	seen := make(map[string]bool, len(t.keys))
	keys := make([]string, 0, len(t.keys)+len(t.buttons))
	for _, name := range t.keys {
		if !seen[name] {
			seen[name] = true
			keys = append(keys, name)
		}
	}
	sort.Slice(keys, func(i, j int) bool {
		mi, mj := chord.IsModifier(keys[i]), chord.IsModifier(keys[j])
		if mi != mj {
			return mi
		}
		return keys[i] < keys[j]
	})

	buttons := make([]string, 0, len(t.buttons))
	for b := range t.buttons {
		buttons = append(buttons, chord.MouseToken(b))
	}
	sort.Strings(buttons)
	return append(keys, buttons...)
}

func (t *Tracker) heldLocked(name string) bool {
	for _, held := range t.keys {
		if held == name {
			return true
		}
	}
	return false
}

func rawKey(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// buttonKey accepts "x1", "mouse x1" and "mouse_x1".
func buttonKey(name string) string {
	key := rawKey(name)
	key = strings.TrimPrefix(key, chord.MousePrefix)
	key = strings.TrimPrefix(key, "mouse_")
	return strings.TrimSpace(key)
}
