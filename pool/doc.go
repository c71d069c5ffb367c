// Package pool provides a small, generic worker pool: a fixed set of
// long-lived workers executing tasks from a shared FIFO queue, with
// results delivered asynchronously through one-shot futures.
//
// The primary type is Pool. Workers start when the pool is created and
// keep pulling tasks until shutdown. Each submission returns a Future
// paired with that task; reading the future blocks until the task has
// executed and then yields its value or failure.
//
// # Basic Usage
//
//	p, err := pool.New(4)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer p.Shutdown(0)
//
//	future, err := pool.Submit(p, func() (string, error) {
//	    return fetchReport(), nil
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	report, err := future.Get() // blocks until the task has run
//
// Submit is a top-level generic function, so tasks with different result
// types can share one pool:
//
//	nums, _ := pool.Submit(p, func() (int, error) { return 42, nil })
//	text, _ := pool.Submit(p, func() (string, error) { return "hi", nil })
//
// # Lifecycle
//
// A pool moves through three states: running, draining, stopped.
// Shutdown flips the pool to draining: new submissions fail with
// ErrPoolShutdown, but every task already accepted still runs to
// completion before the workers exit. Shutdown blocks until the drain
// finishes (or a timeout you choose elapses) and is safe to call more
// than once.
//
// # Failure Handling
//
// A task failure, whether a returned error or a panic, is captured at the
// task boundary and stored in that task's future. It never crashes a
// worker and never affects other tasks. Panics surface as *PanicError
// with the recovered value and stack trace.
//
// # Options
//
//   - WithQueueCapacity(n): pre-allocate the queue's backing storage
//   - WithRateLimit(tasksPerSecond, burst): throttle task execution
//   - WithOnTaskStart / WithOnTaskEnd: per-task observation hooks
//
// The queue is unbounded and Submit never blocks waiting for space; the
// rate limiter paces execution, it never drops accepted work.
//
// The package is designed to be small and idiomatic for Go 1.18+ (generics).
package pool
