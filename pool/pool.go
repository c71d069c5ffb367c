package pool

import (
	"context"
	"sync/atomic"
	"time"

	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"
)

// PoolState describes where the pool is in its lifecycle. Transitions are
// monotonic: Running -> Draining -> Stopped, never back.
type PoolState int32

const (
	// StateRunning: the pool accepts submissions and executes tasks.
	StateRunning PoolState = iota
	// StateDraining: shutdown has been requested; submissions are rejected
	// but already-queued tasks still run to completion.
	StateDraining
	// StateStopped: terminal; every worker has exited.
	StateStopped
)

func (s PoolState) String() string {
	switch s {
	case StateRunning:
		return "running"
	case StateDraining:
		return "draining"
	case StateStopped:
		return "stopped"
	default:
		return "unknown"
	}
}

// PoolStats is a point-in-time snapshot of the pool's counters.
type PoolStats struct {
	Workers   int   // fixed worker count
	Pending   int   // tasks currently queued, not yet picked up
	Submitted int64 // tasks accepted by Submit
	Completed int64 // tasks that executed and returned nil error
	Failed    int64 // tasks that executed and returned an error or panicked
	Rejected  int64 // submissions refused after shutdown
}

type poolStats struct {
	submitted atomic.Int64
	completed atomic.Int64
	failed    atomic.Int64
	rejected  atomic.Int64
}

// Pool is a fixed-size worker pool over an unbounded FIFO task queue.
// Tasks of any result type are submitted with Submit and deliver their
// outcome through a one-shot Future. Once Shutdown begins, new submissions
// are rejected, but everything already accepted still runs: the queue is
// drained, never discarded.
//
// A Pool must be created with New; the zero value is not usable.
type Pool struct {
	workerCount int
	queue       *taskQueue
	limiter     *rate.Limiter
	onTaskStart func(id int64)
	onTaskEnd   func(id int64, d time.Duration, err error)

	state      atomic.Int32
	nextTaskID atomic.Int64
	stats      poolStats

	cancel context.CancelFunc
	done   chan struct{} // closed when all workers have exited
}

// New creates a pool and starts workerCount workers immediately.
// workerCount < 1 is an invalid configuration and is rejected with
// ErrInvalidWorkerCount rather than clamped.
//
// Example:
//
//	p, err := pool.New(4, pool.WithRateLimit(100, 10))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer p.Shutdown(0)
//
//	future, _ := pool.Submit(p, func() (int, error) { return 6 * 7, nil })
//	answer, err := future.Get()
func New(workerCount int, opts ...Option) (*Pool, error) {
	if workerCount < 1 {
		return nil, ErrInvalidWorkerCount
	}

	cfg := &config{}
	for _, opt := range opts {
		opt(cfg)
	}
	if cfg.queueCapacity == 0 {
		cfg.queueCapacity = workerCount
	}

	ctx, cancel := context.WithCancel(context.Background())
	p := &Pool{
		workerCount: workerCount,
		queue:       newTaskQueue(cfg.queueCapacity),
		limiter:     cfg.limiter,
		onTaskStart: cfg.onTaskStart,
		onTaskEnd:   cfg.onTaskEnd,
		cancel:      cancel,
		done:        make(chan struct{}),
	}
	p.state.Store(int32(StateRunning))

	var g errgroup.Group
	for i := range workerCount {
		g.Go(func() error {
			return p.worker(ctx, int64(i))
		})
	}

	go func() {
		_ = g.Wait()
		cancel()
		p.state.Store(int32(StateStopped))
		close(p.done)
	}()

	return p, nil
}

// Submit hands a task to the pool and returns a Future that will hold its
// outcome. It never blocks beyond the queue's brief critical section.
//
// The task is wrapped so that executing it writes its value or failure
// into the returned Future; the queue itself stores only the uniform
// wrapped shape, which is how tasks with different result types share one
// pool. A failure inside the task (error or panic) surfaces exclusively
// through the Future, never anywhere else.
//
// Submit is a function rather than a method because Go methods cannot
// introduce their own type parameters.
//
// Errors:
//   - ErrNilTask if fn is nil.
//   - ErrPoolShutdown once shutdown has begun. The task is not enqueued
//     and will never execute; this is not retryable.
func Submit[R any](p *Pool, fn func() (R, error)) (*Future[R], error) {
	if fn == nil {
		return nil, ErrNilTask
	}

	future := newFuture[R]()
	t := &task{
		id: p.nextTaskID.Add(1),
		run: func() error {
			return runTask(fn, future)
		},
	}

	if !p.queue.push(t) {
		p.stats.rejected.Add(1)
		return nil, ErrPoolShutdown
	}

	p.stats.submitted.Add(1)
	return future, nil
}

// Go submits a task that produces no value, only a possible error.
// It is a convenience wrapper around Submit.
func (p *Pool) Go(fn func() error) (*Future[struct{}], error) {
	if fn == nil {
		return nil, ErrNilTask
	}
	return Submit(p, func() (struct{}, error) {
		return struct{}{}, fn()
	})
}

// Shutdown stops the pool: it rejects further submissions, wakes every
// worker, and blocks until all queued and running tasks have completed and
// all workers have exited. timeout <= 0 waits forever; otherwise
// ErrShutdownTimeout is returned if the drain takes longer (the drain
// itself keeps going in the background).
//
// Shutdown is idempotent: concurrent and repeated calls all wait for the
// same drain and return once it finishes.
func (p *Pool) Shutdown(timeout time.Duration) error {
	p.state.CompareAndSwap(int32(StateRunning), int32(StateDraining))
	p.queue.close()
	return waitUntil(p.done, timeout)
}

// State returns the pool's current lifecycle state.
func (p *Pool) State() PoolState {
	return PoolState(p.state.Load())
}

// Stats returns a snapshot of the pool's counters. Counters are updated
// with atomics, so the snapshot is internally consistent enough for
// monitoring but not a linearizable view.
func (p *Pool) Stats() PoolStats {
	return PoolStats{
		Workers:   p.workerCount,
		Pending:   p.queue.len(),
		Submitted: p.stats.submitted.Load(),
		Completed: p.stats.completed.Load(),
		Failed:    p.stats.failed.Load(),
		Rejected:  p.stats.rejected.Load(),
	}
}
