package input

import (
	"context"
	"sync"
	"testing"
	"time"

	"radialmenu/internal/chord"
	"radialmenu/internal/errors"

	hook "github.com/robotn/gohook"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTrackerChordHeld(t *testing.T) {
	tr := NewTracker()
	assert.False(t, tr.IsChordHeld("alt+x"))
	assert.False(t, tr.IsChordHeld(""))

	tr.Apply(chord.Event{Kind: chord.KeyDown, Name: "ralt"})
	assert.False(t, tr.IsChordHeld("alt+x"))

	tr.Apply(chord.Event{Kind: chord.KeyDown, Name: "x"})
	assert.True(t, tr.IsChordHeld("alt+x"))
	assert.True(t, tr.IsChordHeld("Right Alt + X"))

	tr.Apply(chord.Event{Kind: chord.KeyUp, Name: "ralt"})
	assert.False(t, tr.IsChordHeld("alt+x"))
}

func TestTrackerMergedModifierSides(t *testing.T) {
	tr := NewTracker()
	tr.Apply(chord.Event{Kind: chord.KeyDown, Name: "ctrl"})
	tr.Apply(chord.Event{Kind: chord.KeyDown, Name: "rctrl"})
	tr.Apply(chord.Event{Kind: chord.KeyUp, Name: "ctrl"})
	assert.True(t, tr.IsChordHeld("ctrl"), "right ctrl still down")

	tr.Apply(chord.Event{Kind: chord.KeyUp, Name: "rctrl"})
	assert.False(t, tr.IsChordHeld("ctrl"))
}

func TestTrackerButtons(t *testing.T) {
	tr := NewTracker()
	tr.Apply(chord.Event{Kind: chord.MouseDown, Name: "x1"})
	assert.True(t, tr.IsButtonHeld("x1"))
	assert.True(t, tr.IsButtonHeld("mouse x1"))
	assert.True(t, tr.IsButtonHeld("mouse_x1"))
	assert.False(t, tr.IsButtonHeld("x2"))

	tr.Apply(chord.Event{Kind: chord.MouseUp, Name: "x1"})
	assert.False(t, tr.IsButtonHeld("x1"))

	tr.Apply(chord.Event{Kind: chord.MouseDown, Name: "middle"})
	tr.Reset()
	assert.False(t, tr.IsButtonHeld("middle"))
}

func TestTrackerHeldListsModifiersFirst(t *testing.T) {
	tr := NewTracker()
	assert.Empty(t, tr.Held())

	tr.Apply(chord.Event{Kind: chord.KeyDown, Name: "a"})
	tr.Apply(chord.Event{Kind: chord.KeyDown, Name: "lshift"})
	tr.Apply(chord.Event{Kind: chord.KeyDown, Name: "rshift"})
	tr.Apply(chord.Event{Kind: chord.KeyDown, Name: "ctrl"})
	tr.Apply(chord.Event{Kind: chord.MouseDown, Name: "left"})
	assert.Equal(t, []string{"ctrl", "shift", "a", "mouse left"}, tr.Held())
}

func TestHubSingleCaptureSlot(t *testing.T) {
	hub := NewHub(NewTracker())

	events, release, err := hub.SubscribeCapture()
	require.NoError(t, err)

	_, _, err = hub.SubscribeCapture()
	require.Error(t, err)
	assert.True(t, errors.IsHookRegistrationFailure(err))

	hub.Publish(chord.Event{Kind: chord.KeyDown, Name: "a"})
	select {
	case ev := <-events:
		assert.Equal(t, "a", ev.Name)
	default:
		t.Fatal("capture subscriber did not receive the event")
	}

	release()
	release()
	_, release2, err := hub.SubscribeCapture()
	require.NoError(t, err, "slot is free again after release")
	release2()
}

func TestHubUpdatesTrackerAndWheel(t *testing.T) {
	hub := NewHub(NewTracker())
	wheel, stop := hub.SubscribeWheel()
	defer stop()

	hub.Publish(chord.Event{Kind: chord.KeyDown, Name: "alt"})
	hub.Publish(chord.Event{Kind: chord.Wheel, Rotation: -1})

	assert.True(t, hub.Tracker().IsChordHeld("alt"))
	select {
	case delta := <-wheel:
		assert.Equal(t, -1, delta)
	default:
		t.Fatal("wheel listener did not receive the delta")
	}
}

func TestHubCloseEndsCapture(t *testing.T) {
	hub := NewHub(NewTracker())
	events, release, err := hub.SubscribeCapture()
	require.NoError(t, err)
	defer release()

	hub.Close()
	_, ok := <-events
	assert.False(t, ok)

	_, _, err = hub.SubscribeCapture()
	assert.ErrorIs(t, err, errors.ErrHookClosed)

	hub.Publish(chord.Event{Kind: chord.KeyDown, Name: "a"})
}

type scriptedSource struct {
	events []chord.Event
}

func (s *scriptedSource) Run(ctx context.Context, publish func(chord.Event)) error {
	for _, ev := range s.events {
		publish(ev)
	}
	<-ctx.Done()
	return nil
}

func TestHubRunFeedsCaptureSession(t *testing.T) {
	hub := NewHub(NewTracker())
	session, err := chord.Start(context.Background(), hub, chord.ChordMode)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		assert.NoError(t, hub.Run(ctx, &scriptedSource{events: []chord.Event{
			{Kind: chord.KeyDown, Name: "ctrl"},
			{Kind: chord.KeyDown, Name: "k"},
			{Kind: chord.KeyUp, Name: "k"},
			{Kind: chord.KeyUp, Name: "ctrl"},
		}}))
	}()

	select {
	case res := <-session.Done():
		require.NoError(t, res.Err)
		assert.Equal(t, "ctrl+k", res.Chord)
	case <-time.After(2 * time.Second):
		t.Fatal("capture did not finish")
	}

	cancel()
	wg.Wait()
}

func TestSplitForTap(t *testing.T) {
	key, mods, err := splitForTap("ctrl+shift+esc")
	require.NoError(t, err)
	assert.Equal(t, "escape", key)
	assert.Equal(t, []string{"ctrl", "shift"}, mods)

	_, _, err = splitForTap("")
	assert.ErrorIs(t, err, errors.ErrEmptyChord)

	_, _, err = splitForTap("mouse x1")
	assert.Error(t, err)
}

func TestTranslateHookKinds(t *testing.T) {
	tests := []struct {
		name string
		ev   hook.Event
		want chord.Event
		ok   bool
	}{
		{"hook enabled", hook.Event{Kind: hook.HookEnabled}, chord.Event{}, false},
		{"key typed", hook.Event{Kind: hook.KeyDown, Keycode: vcA, Keychar: 'a'}, chord.Event{}, false},
		{"key pressed", hook.Event{Kind: hook.KeyHold, Keycode: vcA}, chord.Event{Kind: chord.KeyDown, Name: "a"}, true},
		{"key released", hook.Event{Kind: hook.KeyUp, Keycode: vcA}, chord.Event{Kind: chord.KeyUp, Name: "a"}, true},
		{"mouse clicked", hook.Event{Kind: hook.MouseUp, Button: 4}, chord.Event{}, false},
		{"mouse pressed", hook.Event{Kind: hook.MouseHold, Button: 4}, chord.Event{Kind: chord.MouseDown, Name: "x1"}, true},
		{"mouse released", hook.Event{Kind: hook.MouseDown, Button: 4}, chord.Event{Kind: chord.MouseUp, Name: "x1"}, true},
		{"unknown button", hook.Event{Kind: hook.MouseHold, Button: 9}, chord.Event{}, false},
		{"mouse move", hook.Event{Kind: hook.MouseMove, X: 10, Y: 10}, chord.Event{}, false},
		{"mouse drag", hook.Event{Kind: hook.MouseDrag, X: 10, Y: 10}, chord.Event{}, false},
		{"wheel toward user", hook.Event{Kind: hook.MouseWheel, Rotation: 1}, chord.Event{Kind: chord.Wheel, Rotation: -1}, true},
		{"wheel away", hook.Event{Kind: hook.MouseWheel, Rotation: -2}, chord.Event{Kind: chord.Wheel, Rotation: 2}, true},
		{"wheel zero", hook.Event{Kind: hook.MouseWheel}, chord.Event{}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := translate(tt.ev)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDraggedButtonReleases(t *testing.T) {
	tr := NewTracker()
	for _, ev := range []hook.Event{
		{Kind: hook.MouseHold, Button: 4},
		{Kind: hook.MouseDrag, Button: 4, X: 40, Y: 40},
		{Kind: hook.MouseDown, Button: 4},
	} {
		if out, ok := translate(ev); ok {
			tr.Apply(out)
		}
		if ev.Kind == hook.MouseDrag {
			assert.True(t, tr.IsButtonHeld("x1"), "held while dragging")
		}
	}
	assert.False(t, tr.IsButtonHeld("x1"))
}

func TestKeyNamesNormalize(t *testing.T) {
	tests := []struct {
		code    uint16
		want    string
		ignored bool
	}{
		{vcShiftL, "shift", false},
		{vcShiftR, "shift", false},
		{vcControlL, "ctrl", false},
		{vcControlR, "ctrl", false},
		{vcAltL, "alt", false},
		{vcAltR, "alt", false},
		{vcMetaL, "", true},
		{vcMetaR, "", true},
		{vcCapsLock, "", true},
		{vcNumLock, "", true},
		{vcScrollLock, "", true},
		{vcEscape, "esc", false},
		{vcBackspace, "backspace", false},
		{vcDelete, "delete", false},
		{vcF11, "f11", false},
		{vcF12, "f12", false},
		{vcSemicolon, ";", false},
		{vcEquals, "=", false},
		{vcMinus, "-", false},
		{vcComma, ",", false},
		{vcPeriod, ".", false},
		{vcSlash, "/", false},
		{vcQuote, "'", false},
		{vcBackquote, "`", false},
		{vcOpenBracket, "[", false},
		{vcCloseBracket, "]", false},
		{vcBackSlash, "\\", false},
		{vcPageUp, "page up", false},
		{vcKpAdd, "num plus", false},
	}
	for _, tt := range tests {
		raw := keyName(hook.Event{Keycode: tt.code})
		got, ok := chord.Normalize(raw)
		if tt.ignored {
			assert.False(t, ok, "%q should be ignored", raw)
			continue
		}
		require.True(t, ok, "%q", raw)
		assert.Equal(t, tt.want, got, "keycode %#x", tt.code)
	}
}

func TestKeyNameFallbacks(t *testing.T) {
	assert.Equal(t, "é", keyName(hook.Event{Keycode: 0x7F00, Keychar: 'É'}))
	assert.Equal(t, "key32512", keyName(hook.Event{Keycode: 0x7F00}))
}
