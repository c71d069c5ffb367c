package pool

import (
	"context"
	"time"
)

// Result represents the outcome of a single task: either a value or an
// error, never both meaningfully at once.
//
// Type parameters:
//   - R: The type of the result value
type Result[R any] struct {
	Value R
	Err   error
}

// Future is a one-shot handle to the eventual outcome of a submitted task.
// It is resolved exactly once, by the worker that executes the task, and
// can then be read any number of times: Get and friends return the same
// cached outcome on every call after the first.
//
// The zero value is not usable; futures are created by Submit.
type Future[R any] struct {
	// done is closed after value/err are written. The close is what makes
	// the writes visible to readers, so value and err need no further
	// locking: single writer before close, readers only after it.
	done  chan struct{}
	value R
	err   error
}

func newFuture[R any]() *Future[R] {
	return &Future[R]{done: make(chan struct{})}
}

// complete resolves the future. Called exactly once, from the task wrapper.
func (f *Future[R]) complete(value R, err error) {
	f.value = value
	f.err = err
	close(f.done)
}

// Get blocks until the task has executed, then returns its value or the
// failure it produced. Calling Get again after resolution is safe and
// returns the same outcome.
func (f *Future[R]) Get() (R, error) {
	<-f.done
	return f.value, f.err
}

// GetWithContext is like Get but gives up when ctx is cancelled, returning
// ctx.Err(). Giving up does not consume or cancel the task's result; a
// later Get still succeeds once the task finishes.
func (f *Future[R]) GetWithContext(ctx context.Context) (R, error) {
	select {
	case <-f.done:
		return f.value, f.err
	case <-ctx.Done():
		var zero R
		return zero, ctx.Err()
	}
}

// GetWithTimeout is like Get but returns ErrFutureTimeout if the result is
// not ready within the given duration.
func (f *Future[R]) GetWithTimeout(timeout time.Duration) (R, error) {
	select {
	case <-f.done:
		return f.value, f.err
	case <-time.After(timeout):
		var zero R
		return zero, ErrFutureTimeout
	}
}

// IsReady reports whether the task has finished, without blocking.
func (f *Future[R]) IsReady() bool {
	select {
	case <-f.done:
		return true
	default:
		return false
	}
}
