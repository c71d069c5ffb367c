package pool

import (
	"errors"
	"fmt"
)

var (
	// ErrPoolShutdown is returned by Submit once shutdown has begun.
	// It is a definitive rejection: the pool never reopens.
	ErrPoolShutdown = errors.New("pool: shut down")

	// ErrInvalidWorkerCount is returned by New when workerCount < 1.
	ErrInvalidWorkerCount = errors.New("pool: worker count must be at least 1")

	// ErrNilTask is returned by Submit when the task closure is nil.
	ErrNilTask = errors.New("pool: nil task submitted")

	// ErrShutdownTimeout is returned by Shutdown when the drain does not
	// finish within the given timeout. The drain keeps going in the
	// background; a later Shutdown call can wait for it again.
	ErrShutdownTimeout = errors.New("pool: shutdown timeout reached")

	// ErrFutureTimeout is returned by Future.GetWithTimeout when the result
	// is not ready in time. The task itself still runs to completion.
	ErrFutureTimeout = errors.New("pool: timed out waiting for result")
)

// PanicError is the failure recorded in a Future when a task panics.
// The panic is recovered at the task-wrapper boundary so it never
// terminates the worker that ran it.
type PanicError struct {
	Value any    // the recovered panic value
	Stack []byte // stack trace captured at recovery
}

func (e *PanicError) Error() string {
	return fmt.Sprintf("task panic: %v\nstack trace:\n%s", e.Value, e.Stack)
}
