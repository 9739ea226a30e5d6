package chord

import (
	"context"
	"sync"

	"radialmenu/internal/errors"
	"radialmenu/internal/log"
)

// Source hands out exclusive hook subscriptions. The returned cancel func
// removes the subscription; a second subscription while one is held fails
// with a HookRegistrationFailure.
type Source interface {
	SubscribeCapture() (<-chan Event, func(), error)
}

// Result is the terminal outcome of a capture session.
type Result struct {
	Chord string
	Err   error
}

// Session is one running capture. Its result is delivered exactly once on
// Done.
type Session struct {
	cancel context.CancelFunc
	done   chan Result
	unsub  func()
	once   sync.Once
}

// Start subscribes to src and runs a reducer in mode on a worker goroutine.
// The subscription is removed before the result is published, whatever way
// the session ends.
func Start(ctx context.Context, src Source, mode Mode) (*Session, error) {
	events, unsub, err := src.SubscribeCapture()
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithCancel(ctx)
	s := &Session{
		cancel: cancel,
		done:   make(chan Result, 1),
		unsub:  unsub,
	}
	go s.run(ctx, events, NewReducer(mode))
	return s, nil
}

// Done returns the one-shot result channel. It is closed after the result.
func (s *Session) Done() <-chan Result {
	return s.done
}

// Close forces the session to end. It is safe to call more than once and
// after the session has finished.
func (s *Session) Close() {
	s.cancel()
}

func (s *Session) release() {
	s.once.Do(s.unsub)
}

func (s *Session) run(ctx context.Context, events <-chan Event, r *Reducer) {
	defer close(s.done)
	defer s.cancel()

	res := s.loop(ctx, events, r)
	s.release()
	s.done <- res
}

func (s *Session) loop(ctx context.Context, events <-chan Event, r *Reducer) Result {
	r.Start()
	for {
		select {
		case <-ctx.Done():
			r.Cancel()
			return Result{Err: errors.Wrap(ctx.Err(), "capture closed")}
		case ev, ok := <-events:
			if !ok {
				return Result{Err: errors.ErrHookClosed}
			}
			switch r.Feed(ev) {
			case Done:
				chord, _ := r.Result()
				log.Debugf("Captured %q", chord)
				return Result{Chord: chord}
			case Cancelled:
				return Result{Err: errors.ErrCaptureCancelled}
			}
		}
	}
}

// Capture runs one session to completion.
func Capture(ctx context.Context, src Source, mode Mode) (string, error) {
	s, err := Start(ctx, src, mode)
	if err != nil {
		return "", err
	}
	defer s.Close()

	res := <-s.Done()
	return res.Chord, res.Err
}

// CaptureTwoPart captures two single keys in a row and joins them. The first
// key is required; cancelling the second yields just the first.
func CaptureTwoPart(ctx context.Context, src Source) (string, error) {
	first, err := Capture(ctx, src, SingleKeyMode)
	if err != nil {
		return "", err
	}

	second, err := Capture(ctx, src, SingleKeyMode)
	switch {
	case errors.IsCaptureCancelled(err):
		return first, nil
	case err != nil:
		return "", err
	}
	return Join([]string{first, second}), nil
}
