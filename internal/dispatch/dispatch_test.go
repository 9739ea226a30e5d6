package dispatch

import (
	"fmt"
	"testing"
	"time"

	"radialmenu/internal/config"
	"radialmenu/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// scriptInjector records every step into a shared script.
type scriptInjector struct {
	script   *[]string
	failKeys bool
	failText bool
}

func (s *scriptInjector) SendKeyChord(chord string) error {
	*s.script = append(*s.script, "send "+chord)
	if s.failKeys {
		return fmt.Errorf("no focus")
	}
	return nil
}

func (s *scriptInjector) TypeText(text string) error {
	*s.script = append(*s.script, "type "+text)
	if s.failText {
		return fmt.Errorf("no focus")
	}
	return nil
}

func newTestDispatcher() (*Dispatcher, *scriptInjector, *[]string) {
	var script []string
	inj := &scriptInjector{script: &script}
	d := New(inj, WithSleeper(func(dur time.Duration) {
		script = append(script, fmt.Sprintf("wait %s", dur))
	}))
	return d, inj, &script
}

func TestDispatch(t *testing.T) {
	tests := []struct {
		name   string
		action config.Action
		want   []string
	}{
		{
			"hotkey",
			config.Action{Type: config.Hotkey, Keys: "ctrl+c"},
			[]string{"send ctrl+c"},
		},
		{
			"hotkey without keys is a no-op",
			config.Action{Type: config.Hotkey, Value: "ignored"},
			nil,
		},
		{
			"text",
			config.Action{Type: config.Text, Keys: "ctrl+v", Value: "hello"},
			[]string{"type hello"},
		},
		{
			"empty text is a no-op",
			config.Action{Type: config.Text},
			nil,
		},
		{
			"hotkey and text waits between steps",
			config.Action{Type: config.HotkeyAndText, Keys: "ctrl+v", Value: "hello"},
			[]string{"send ctrl+v", "wait 50ms", "type hello"},
		},
		{
			"hotkey and text without keys types immediately",
			config.Action{Type: config.HotkeyAndText, Value: "hello"},
			[]string{"type hello"},
		},
		{
			"hotkey and text without value only sends",
			config.Action{Type: config.HotkeyAndText, Keys: "f5"},
			[]string{"send f5"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, _, script := newTestDispatcher()
			require.NoError(t, d.Dispatch(tt.action))
			assert.Equal(t, tt.want, *script)
		})
	}
}

func TestFailedHotkeyDoesNotStopText(t *testing.T) {
	d, inj, script := newTestDispatcher()
	inj.failKeys = true

	err := d.Dispatch(config.Action{Type: config.HotkeyAndText, Keys: "ctrl+v", Value: "hello"})
	require.Error(t, err)
	assert.True(t, errors.IsInjectionFailure(err))
	assert.Equal(t, []string{"send ctrl+v", "wait 50ms", "type hello"}, *script)

	var injErr *errors.InjectionError
	require.True(t, errors.As(err, &injErr))
	assert.Equal(t, "hotkey", injErr.Step())
}

func TestFailedTextIsReported(t *testing.T) {
	d, inj, _ := newTestDispatcher()
	inj.failText = true

	err := d.Dispatch(config.Action{Type: config.Text, Value: "hello"})
	var injErr *errors.InjectionError
	require.True(t, errors.As(err, &injErr))
	assert.Equal(t, "text", injErr.Step())
}

func TestBothStepsFailing(t *testing.T) {
	d, inj, script := newTestDispatcher()
	inj.failKeys = true
	inj.failText = true

	err := d.Dispatch(config.Action{Type: config.HotkeyAndText, Keys: "a", Value: "b"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), `hotkey "a"`)
	assert.Contains(t, err.Error(), `text "b"`)
	assert.Len(t, *script, 3, "no retries")
}

func TestDefaultSleeperIsTimeSleep(t *testing.T) {
	d := New(&scriptInjector{script: &[]string{}})
	start := time.Now()
	require.NoError(t, d.Dispatch(config.Action{Type: config.HotkeyAndText, Keys: "a", Value: "b"}))
	assert.GreaterOrEqual(t, time.Since(start), TextDelay)
}
