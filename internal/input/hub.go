// Package input connects the global OS input hook to the rest of the
// launcher. A single hook source publishes into a Hub, which keeps the
// held-state Tracker current and fans events out to at most one capture
// session and any number of wheel listeners.
package input

import (
	"context"
	"sync"

	"radialmenu/internal/chord"
	"radialmenu/internal/errors"
	"radialmenu/internal/log"
)

// Source produces raw input events until ctx is done.
type Source interface {
	Run(ctx context.Context, publish func(chord.Event)) error
}

// Hub is the process-wide fan-out of hook events.
type Hub struct {
	tracker *Tracker

	mu      sync.Mutex
	capture chan chord.Event
	wheels  map[int]chan int
	nextID  int
	closed  bool
}

// NewHub returns a hub feeding tracker.
func NewHub(tracker *Tracker) *Hub {
	return &Hub{
		tracker: tracker,
		wheels:  make(map[int]chan int),
	}
}

// Tracker returns the held-state tracker.
func (h *Hub) Tracker() *Tracker {
	return h.tracker
}

// Run drives src until ctx is done, then closes the hub.
func (h *Hub) Run(ctx context.Context, src Source) error {
	defer h.Close()
	h.tracker.Reset()
	log.Debug("Input hook started")
	err := src.Run(ctx, h.Publish)
	if err != nil && ctx.Err() == nil {
		return errors.NewHookError("input hook stopped", "hub", err)
	}
	return nil
}

// Publish delivers one event. Slow subscribers lose events rather than
// stalling the hook.
func (h *Hub) Publish(ev chord.Event) {
	h.tracker.Apply(ev)

	h.mu.Lock()
	defer h.mu.Unlock()
	if h.closed {
		return
	}

	if ev.Kind == chord.Wheel {
		for _, ch := range h.wheels {
			select {
			case ch <- ev.Rotation:
			default:
			}
		}
	}
	if h.capture != nil {
		select {
		case h.capture <- ev:
		default:
			log.Warn("Capture subscriber is not keeping up, event dropped")
		}
	}
}

// SubscribeCapture claims the single capture slot. The returned func
// releases it and may be called any number of times.
func (h *Hub) SubscribeCapture() (<-chan chord.Event, func(), error) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.closed {
		return nil, nil, errors.ErrHookClosed
	}
	if h.capture != nil {
		return nil, nil, errors.ErrHookBusy
	}

	ch := make(chan chord.Event, 64)
	h.capture = ch
	var once sync.Once
	return ch, func() {
		once.Do(func() {
			h.mu.Lock()
			defer h.mu.Unlock()
			if h.capture == ch {
				h.capture = nil
			}
		})
	}, nil
}

// SubscribeWheel registers a wheel listener receiving rotation deltas.
func (h *Hub) SubscribeWheel() (<-chan int, func()) {
	h.mu.Lock()
	defer h.mu.Unlock()

	ch := make(chan int, 16)
	if h.closed {
		close(ch)
		return ch, func() {}
	}
	id := h.nextID
	h.nextID++
	h.wheels[id] = ch

	var once sync.Once
	return ch, func() {
		once.Do(func() {
			h.mu.Lock()
			defer h.mu.Unlock()
			delete(h.wheels, id)
		})
	}
}

// Close ends every subscription. Capture sessions observe a closed channel.
func (h *Hub) Close() {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.closed {
		return
	}
	h.closed = true
	if h.capture != nil {
		close(h.capture)
		h.capture = nil
	}
	for id, ch := range h.wheels {
		close(ch)
		delete(h.wheels, id)
	}
}
