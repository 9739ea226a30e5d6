package activation

import (
	"testing"

	"radialmenu/internal/geometry"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeProbe struct {
	chords  map[string]bool
	buttons map[string]bool
}

func newFakeProbe() *fakeProbe {
	return &fakeProbe{chords: map[string]bool{}, buttons: map[string]bool{}}
}

func (f *fakeProbe) IsChordHeld(c string) bool { return f.chords[c] }
func (f *fakeProbe) IsButtonHeld(b string) bool { return f.buttons[b] }
func (f *fakeProbe) CursorPos() geometry.Point { return geometry.Point{X: 100, Y: 100} }

func TestParseCombo(t *testing.T) {
	tests := []struct {
		raw    string
		kind   Kind
		button string
	}{
		{"alt+x", Keyboard, ""},
		{"Mouse X1", Mouse, "x1"},
		{"x1", Mouse, "x1"},
		{"mouse_x1", Mouse, "x1"},
		{"mouse x2", Mouse, "x2"},
		{"x2", Mouse, "x2"},
		{"mouse_x2", Mouse, "x2"},
		{"mouse middle", Mouse, "middle"},
		{"ctrl+shift+space", Keyboard, ""},
	}

	for _, tt := range tests {
		c := ParseCombo(tt.raw)
		assert.Equal(t, tt.kind, c.Kind, tt.raw)
		assert.Equal(t, tt.button, c.Button, tt.raw)
	}
}

func TestPollerStartAndDebouncedEnd(t *testing.T) {
	probe := newFakeProbe()
	p := NewPoller(probe, probe, Settings{Combo: "alt+x", KeyboardDebounce: 3, MouseDebounce: 3})

	assert.Equal(t, None, p.Poll().Kind)

	probe.chords["alt+x"] = true
	ev := p.Poll()
	require.Equal(t, Start, ev.Kind)
	assert.Equal(t, geometry.Point{X: 100, Y: 100}, ev.Pos)
	assert.Equal(t, None, p.Poll().Kind, "start fires once")

	probe.chords["alt+x"] = false
	for i := 0; i < 3; i++ {
		assert.Equal(t, None, p.Poll().Kind, "debounce poll %d", i)
		assert.True(t, p.Active())
	}
	assert.Equal(t, End, p.Poll().Kind)
	assert.False(t, p.Active())
	assert.Equal(t, None, p.Poll().Kind)
}

func TestPollerFlickerStaysActive(t *testing.T) {
	probe := newFakeProbe()
	p := NewPoller(probe, probe, Settings{Combo: "alt+x", KeyboardDebounce: 2})

	probe.chords["alt+x"] = true
	require.Equal(t, Start, p.Poll().Kind)

	probe.chords["alt+x"] = false
	assert.Equal(t, None, p.Poll().Kind)
	probe.chords["alt+x"] = true
	assert.Equal(t, None, p.Poll().Kind, "re-press inside the window is not a new start")
	assert.True(t, p.Active())
}

func TestPollerMouseDebounceIsSeparate(t *testing.T) {
	probe := newFakeProbe()
	p := NewPoller(probe, probe, Settings{Combo: "mouse x1", KeyboardDebounce: 5, MouseDebounce: 1})

	probe.buttons["x1"] = true
	require.Equal(t, Start, p.Poll().Kind)
	probe.buttons["x1"] = false
	assert.Equal(t, None, p.Poll().Kind)
	assert.Equal(t, End, p.Poll().Kind)
}

func TestConfigureKeepsCounter(t *testing.T) {
	probe := newFakeProbe()
	p := NewPoller(probe, probe, Settings{Combo: "alt+x", KeyboardDebounce: 3})

	probe.chords["alt+x"] = true
	require.Equal(t, Start, p.Poll().Kind)
	probe.chords["alt+x"] = false
	p.Poll()

	p.Configure(Settings{Combo: "alt+x", KeyboardDebounce: 3})
	assert.True(t, p.Active())
	assert.Equal(t, None, p.Poll().Kind)
	assert.Equal(t, None, p.Poll().Kind)
	assert.Equal(t, End, p.Poll().Kind, "counter carried over the reconfigure")
}

func TestEmptyComboNeverHeld(t *testing.T) {
	probe := newFakeProbe()
	probe.chords[""] = true
	p := NewPoller(probe, probe, Settings{})
	assert.Equal(t, None, p.Poll().Kind)
}
