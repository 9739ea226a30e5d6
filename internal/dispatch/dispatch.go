// Package dispatch performs committed menu actions by injecting synthetic
// key chords and text.
package dispatch

import (
	"time"

	"radialmenu/internal/config"
	"radialmenu/internal/errors"
	"radialmenu/internal/log"
)

// TextDelay separates a hotkey from the text typed after it, giving the
// target window time to react to the keys.
const TextDelay = 50 * time.Millisecond

// Injector sends synthetic input to the focused window.
type Injector interface {
	SendKeyChord(chord string) error
	TypeText(text string) error
}

// Sleeper pauses the dispatching goroutine.
type Sleeper func(time.Duration)

// Option configures a Dispatcher.
type Option func(*Dispatcher)

// WithSleeper replaces time.Sleep, for tests.
func WithSleeper(s Sleeper) Option {
	return func(d *Dispatcher) {
		d.sleep = s
	}
}

// Dispatcher runs actions against an Injector.
type Dispatcher struct {
	inj   Injector
	sleep Sleeper
}

// New returns a dispatcher injecting through inj.
func New(inj Injector, opts ...Option) *Dispatcher {
	d := &Dispatcher{inj: inj, sleep: time.Sleep}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Dispatch performs a. A failing step is logged and does not stop the
// steps after it; the failures are returned joined.
func (d *Dispatcher) Dispatch(a config.Action) error {
	var errs []error
	keys := a.Keys
	text := a.Value

	switch a.Type {
	case config.Text:
		if text != "" {
			errs = append(errs, d.typeText(text))
		}

	case config.HotkeyAndText:
		if keys != "" {
			errs = append(errs, d.send(keys))
		}
		if keys != "" && text != "" {
			d.sleep(TextDelay)
		}
		if text != "" {
			errs = append(errs, d.typeText(text))
		}

	default:
		if keys != "" {
			errs = append(errs, d.send(keys))
		}
	}
	return errors.Join(errs...)
}

func (d *Dispatcher) send(keys string) error {
	if err := d.inj.SendKeyChord(keys); err != nil {
		err = ensureInjection("hotkey", keys, err)
		log.LogWithError(err).Error("Failed sending key chord")
		return err
	}
	log.LogWithFields(log.F("keys", keys)).Debug("Key chord sent")
	return nil
}

func (d *Dispatcher) typeText(text string) error {
	if err := d.inj.TypeText(text); err != nil {
		err = ensureInjection("text", text, err)
		log.LogWithError(err).Error("Failed typing text")
		return err
	}
	log.LogWithFields(log.F("length", len([]rune(text)))).Debug("Text typed")
	return nil
}

// ensureInjection classifies err as an injection failure unless the
// injector already did.
func ensureInjection(step, payload string, err error) error {
	if errors.IsInjectionFailure(err) {
		return err
	}
	return errors.NewInjectionError(step, payload, err)
}
