// Package retry provides generic retry with exponential backoff for calls
// to external backends.
package retry

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jonboulle/clockwork"
)

type Policy struct {
	MaxAttempts    int
	InitialBackoff time.Duration
	OnRetry        func(attempt int, err error, backoff time.Duration)
}

// Permanent is returned by operations to abort retrying immediately.
type Permanent struct {
	Err error
}

func (e *Permanent) Error() string { return e.Err.Error() }
func (e *Permanent) Unwrap() error { return e.Err }

type Operation[T any] func() (T, error)

// Do runs op until it succeeds, returns a *Permanent error, the attempt
// budget is exhausted, or ctx is cancelled. Backoff doubles between
// attempts; the clock is injectable for tests.
func Do[T any](ctx context.Context, clock clockwork.Clock, p Policy, op Operation[T]) (T, error) {
	var zero T
	backoff := p.InitialBackoff

	for attempt := 1; ; attempt++ {
		val, err := op()
		if err == nil {
			return val, nil
		}

		var perm *Permanent
		if errors.As(err, &perm) {
			return zero, perm.Err
		}

		if attempt >= p.MaxAttempts {
			return zero, fmt.Errorf("failed after %d attempts: %w", p.MaxAttempts, err)
		}

		if p.OnRetry != nil {
			p.OnRetry(attempt, err, backoff)
		}

		select {
		case <-clock.After(backoff):
			backoff *= 2
		case <-ctx.Done():
			return zero, fmt.Errorf("retry cancelled: %w", ctx.Err())
		}
	}
}
