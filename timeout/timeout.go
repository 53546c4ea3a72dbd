// Package timeout bounds the latency of a wrapped service call.
package timeout

import (
	"errors"
	"fmt"
	"time"

	"github.com/benbjohnson/clock"

	"github.com/l-vitaly/layerkit/service"
)

// ErrDeadlineExceeded is returned when the configured duration elapses
// before the wrapped call completes.
var ErrDeadlineExceeded = errors.New("service timed out")

// Timeout wraps a service with an optional bound on call duration.
//
// With no duration configured it is transparent. With a duration it races
// the inner call against a timer: whichever settles first decides the
// outcome. If the timer wins, ErrDeadlineExceeded is returned and the
// inner call is abandoned — it finishes on its own goroutine with nobody
// reading the result, so the wrapped service must be safe to abandon
// mid-flight and must not touch the call context after that. No partial
// results are ever returned.
type Timeout[Cx, Req, Resp any] struct {
	inner    service.Service[Cx, Req, Resp]
	duration *time.Duration
	clock    clock.Clock
}

// Option configures a Timeout.
type Option[Cx, Req, Resp any] func(*Timeout[Cx, Req, Resp])

// WithClock substitutes the timer source, typically with a mock in tests.
func WithClock[Cx, Req, Resp any](c clock.Clock) Option[Cx, Req, Resp] {
	return func(t *Timeout[Cx, Req, Resp]) {
		t.clock = c
	}
}

// New wraps inner with a duration bound. A nil duration disables the
// bound entirely.
func New[Cx, Req, Resp any](inner service.Service[Cx, Req, Resp], duration *time.Duration, options ...Option[Cx, Req, Resp]) *Timeout[Cx, Req, Resp] {
	t := &Timeout[Cx, Req, Resp]{inner: inner, duration: duration, clock: clock.New()}
	for _, option := range options {
		option(t)
	}
	return t
}

type result[Resp any] struct {
	resp Resp
	err  error
}

func (t *Timeout[Cx, Req, Resp]) Call(cx Cx, req Req) (Resp, error) {
	if t.duration == nil {
		return t.inner.Call(cx, req)
	}

	// Buffered so an abandoned call can deliver its result and let its
	// goroutine exit.
	done := make(chan result[Resp], 1)
	go func() {
		resp, err := t.inner.Call(cx, req)
		done <- result[Resp]{resp: resp, err: err}
	}()

	timer := t.clock.Timer(*t.duration)
	defer timer.Stop()

	select {
	case r := <-done:
		return r.resp, r.err
	case <-timer.C:
		var zero Resp
		return zero, fmt.Errorf("%w after %s", ErrDeadlineExceeded, *t.duration)
	}
}

// Layer applies Timeout with a shared configuration.
type Layer[Cx, Req, Resp any] struct {
	duration *time.Duration
	options  []Option[Cx, Req, Resp]
}

// NewLayer returns a layer wrapping services with a Timeout of the given
// duration.
func NewLayer[Cx, Req, Resp any](duration *time.Duration, options ...Option[Cx, Req, Resp]) Layer[Cx, Req, Resp] {
	return Layer[Cx, Req, Resp]{duration: duration, options: options}
}

func (l Layer[Cx, Req, Resp]) Layer(inner service.Service[Cx, Req, Resp]) service.Service[Cx, Req, Resp] {
	return New(inner, l.duration, l.options...)
}
