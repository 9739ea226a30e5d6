// Package launcher runs the scheduling loop that turns held activation
// combos into radial menu sessions and committed actions.
package launcher

import (
	"context"
	"sync"
	"time"

	"radialmenu/internal/activation"
	"radialmenu/internal/config"
	"radialmenu/internal/dispatch"
	"radialmenu/internal/errors"
	"radialmenu/internal/log"
	"radialmenu/internal/menu"
	"radialmenu/internal/overlay"
)

// FrameInterval is the cursor sampling period while a menu is open.
const FrameInterval = 16 * time.Millisecond

// Ticker is the part of time.Ticker the loop uses.
type Ticker interface {
	C() <-chan time.Time
	Reset(d time.Duration)
	Stop()
}

// TickerFunc creates tickers.
type TickerFunc func(d time.Duration) Ticker

type timeTicker struct{ *time.Ticker }

func (t timeTicker) C() <-chan time.Time { return t.Ticker.C }

// NewTimeTicker wraps time.NewTicker.
func NewTimeTicker(d time.Duration) Ticker {
	return timeTicker{time.NewTicker(d)}
}

// Deps are the collaborators the loop drives.
type Deps struct {
	Probe    activation.Probe
	Cursor   activation.Cursor
	Surface  overlay.Surface
	Injector dispatch.Injector
}

// Option configures a Launcher.
type Option func(*Launcher)

// WithWheel feeds wheel rotation deltas into the open sub-wheel.
func WithWheel(wheel <-chan int) Option {
	return func(l *Launcher) { l.wheel = wheel }
}

// WithChanges subscribes the loop to configuration swaps.
func WithChanges(changes <-chan *config.Config) Option {
	return func(l *Launcher) { l.changes = changes }
}

// WithDispatcher replaces the dispatcher built from Deps.Injector.
func WithDispatcher(d *dispatch.Dispatcher) Option {
	return func(l *Launcher) { l.dispatcher = d }
}

// WithTickers replaces time.NewTicker, for tests.
func WithTickers(fn TickerFunc) Option {
	return func(l *Launcher) { l.newTicker = fn }
}

// Status is a point-in-time view of the launcher.
type Status struct {
	Running      bool
	Combo        string
	Level        menu.Level
	Sessions     int
	Committed    int
	Failed       int
	LastActivity time.Time
}

// Launcher owns the poller, the menu machine and the dispatcher. Everything
// except Status runs on the goroutine that called Run.
type Launcher struct {
	store      *config.Store
	cursor     activation.Cursor
	poller     *activation.Poller
	machine    *menu.Machine
	dispatcher *dispatch.Dispatcher
	newTicker  TickerFunc

	wheel   <-chan int
	changes <-chan *config.Config

	interval time.Duration
	frame    Ticker

	mu     sync.RWMutex
	status Status
}

// New builds a launcher around the current snapshot of store.
func New(store *config.Store, deps Deps, opts ...Option) *Launcher {
	cfg := store.Snapshot()
	l := &Launcher{
		store:     store,
		cursor:    deps.Cursor,
		poller:    activation.NewPoller(deps.Probe, deps.Cursor, settings(cfg)),
		machine:   menu.New(deps.Surface),
		newTicker: NewTimeTicker,
		interval:  cfg.PollInterval(),
	}
	for _, opt := range opts {
		opt(l)
	}
	if l.dispatcher == nil {
		l.dispatcher = dispatch.New(deps.Injector)
	}
	l.status.Combo = l.poller.Combo().Raw
	return l
}

func settings(cfg *config.Config) activation.Settings {
	return activation.Settings{
		Combo:            cfg.ActivationCombo(),
		KeyboardDebounce: cfg.Activation.Debounce.Keyboard,
		MouseDebounce:    cfg.Activation.Debounce.Mouse,
	}
}

// Status returns a copy of the current status. Safe from any goroutine.
func (l *Launcher) Status() Status {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.status
}

func (l *Launcher) update(fn func(*Status)) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fn(&l.status)
}

// Run drives the loop until ctx is done. An open menu is closed without
// committing on the way out.
func (l *Launcher) Run(ctx context.Context) error {
	l.mu.Lock()
	if l.status.Running {
		l.mu.Unlock()
		return errors.New("launcher is already running")
	}
	l.status.Running = true
	l.mu.Unlock()
	defer l.update(func(s *Status) { s.Running = false })

	poll := l.newTicker(l.interval)
	defer poll.Stop()
	defer l.stopFrames()

	log.LogWithFields(
		log.F("combo", l.poller.Combo().Raw),
		log.F("interval", l.interval.String()),
	).Info("Launcher started")

	for {
		select {
		case <-ctx.Done():
			l.abort()
			log.Info("Launcher stopped")
			return nil

		case <-poll.C():
			l.poll()

		case <-l.frames():
			l.frameTick()

		case delta, ok := <-l.wheel:
			if !ok {
				l.wheel = nil
				continue
			}
			l.machine.Wheel(delta)

		case cfg, ok := <-l.changes:
			if !ok {
				l.changes = nil
				continue
			}
			if l.apply(cfg) {
				poll.Reset(l.interval)
			}
		}
	}
}

// poll samples the activation combo once.
func (l *Launcher) poll() {
	ev := l.poller.Poll()
	switch ev.Kind {
	case activation.Start:
		l.machine.Start(ev.Pos, l.store.Snapshot())
		l.startFrames()
		l.update(func(s *Status) {
			s.Sessions++
			s.Level = l.machine.Level()
			s.LastActivity = time.Now()
		})

	case activation.End:
		l.stopFrames()
		sel, ok := l.machine.End()
		l.update(func(s *Status) { s.Level = menu.Closed })
		if ok {
			l.commit(sel)
		}
	}
}

// frameTick samples the cursor for the open wheel.
func (l *Launcher) frameTick() {
	pos := l.cursor.CursorPos()
	switch l.machine.Level() {
	case menu.Root:
		if d, ok := l.machine.Tick(pos); ok {
			l.machine.EnterSub(d)
			l.update(func(s *Status) { s.Level = menu.Sub })
		}
	case menu.Sub:
		l.machine.PointerMove(pos)
	}
}

func (l *Launcher) commit(sel menu.Selection) {
	err := l.dispatcher.Dispatch(sel.Action)
	l.update(func(s *Status) {
		s.Committed++
		if err != nil {
			s.Failed++
		}
		s.LastActivity = time.Now()
	})
	if err != nil {
		log.LogWithError(err).With(log.F("session", sel.Session.String())).Warn("Action dispatched with failures")
	}
}

// apply installs a reloaded configuration. The open session keeps its
// snapshot; the poller keeps its debounce counter. It reports whether the
// poll interval changed.
func (l *Launcher) apply(cfg *config.Config) bool {
	if cfg == nil {
		return false
	}
	l.poller.Configure(settings(cfg))
	l.update(func(s *Status) { s.Combo = l.poller.Combo().Raw })

	interval := cfg.PollInterval()
	if interval == l.interval {
		log.Debug("Configuration reloaded")
		return false
	}
	log.LogWithFields(
		log.F("from", l.interval.String()),
		log.F("to", interval.String()),
	).Info("Poll interval changed")
	l.interval = interval
	return true
}

func (l *Launcher) abort() {
	l.stopFrames()
	if l.machine.Level() != menu.Closed {
		l.machine.End()
	}
}

func (l *Launcher) startFrames() {
	if l.frame == nil {
		l.frame = l.newTicker(FrameInterval)
	}
}

func (l *Launcher) stopFrames() {
	if l.frame != nil {
		l.frame.Stop()
		l.frame = nil
	}
}

// frames is nil while no menu is open so the select never fires on it.
func (l *Launcher) frames() <-chan time.Time {
	if l.frame == nil {
		return nil
	}
	return l.frame.C()
}
