package pool

import (
	"context"
	"runtime"
	"time"
)

// worker is the run loop of a single pool worker. It pops tasks and
// executes them outside the queue lock, so a long-running task never
// blocks submissions or other workers. The loop ends only when shutdown
// has been requested AND the queue is empty.
func (p *Pool) worker(ctx context.Context, id int64) error {
	for {
		t, done := p.queue.pop()
		if done {
			return nil
		}
		if t == nil {
			p.queue.wait()
			continue
		}
		p.execute(ctx, t)
	}
}

// execute runs one task with the configured rate limit and hooks around it.
// Task failures are already captured inside t.run; the returned error is
// only reported to the onTaskEnd hook and the stats counters.
func (p *Pool) execute(ctx context.Context, t *task) {
	if p.limiter != nil {
		// ctx lives until all workers have exited, so a drain is still
		// paced rather than aborted.
		_ = p.limiter.Wait(ctx)
	}

	if p.onTaskStart != nil {
		p.onTaskStart(t.id)
	}

	start := time.Now()
	err := t.run()

	if err != nil {
		p.stats.failed.Add(1)
	} else {
		p.stats.completed.Add(1)
	}

	if p.onTaskEnd != nil {
		p.onTaskEnd(t.id, time.Since(start), err)
	}
}

// runTask invokes the submitted closure with panic recovery and resolves
// its future exactly once. A panic is converted to a *PanicError with the
// stack trace, stored in the future like any other failure, so it never
// escapes the worker loop or takes the worker down with it.
func runTask[R any](fn func() (R, error), f *Future[R]) (err error) {
	defer func() {
		if r := recover(); r != nil {
			buf := make([]byte, 4096)
			n := runtime.Stack(buf, false)
			err = &PanicError{Value: r, Stack: buf[:n]}

			var zero R
			f.complete(zero, err)
		}
	}()

	value, err := fn()
	f.complete(value, err)
	return err
}
