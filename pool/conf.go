package pool

import (
	"time"

	"golang.org/x/time/rate"
)

// Option is a functional option for configuring the pool.
type Option func(*config)

type config struct {
	queueCapacity int
	limiter       *rate.Limiter
	onTaskStart   func(id int64)
	onTaskEnd     func(id int64, d time.Duration, err error)
}

// WithQueueCapacity sets the initial backing capacity of the task queue.
// This only pre-allocates; the queue itself is unbounded and Submit never
// blocks waiting for space. If not specified, defaults to the worker count.
func WithQueueCapacity(capacity int) Option {
	return func(cfg *config) {
		if capacity > 0 {
			cfg.queueCapacity = capacity
		}
	}
}

// WithRateLimit sets a rate limiter for task execution.
// tasksPerSecond specifies the maximum number of tasks to start per second.
// burst specifies how many tasks may start in a burst.
// This is useful for preventing overwhelming external services or APIs.
// If not specified, no rate limiting is applied.
//
// Example:
//
//	WithRateLimit(10, 5) // Allow 10 tasks/sec with burst of 5
func WithRateLimit(tasksPerSecond float64, burst int) Option {
	return func(cfg *config) {
		if tasksPerSecond > 0 && burst > 0 {
			cfg.limiter = rate.NewLimiter(rate.Limit(tasksPerSecond), burst)
		}
	}
}

// WithOnTaskStart installs a hook called by the worker just before it
// executes a task. The id is the one assigned at submission time.
// The hook runs on the worker goroutine; keep it cheap.
func WithOnTaskStart(hook func(id int64)) Option {
	return func(cfg *config) {
		cfg.onTaskStart = hook
	}
}

// WithOnTaskEnd installs a hook called after each task finishes, with the
// task id, the execution duration, and the task's failure if it had one.
// The hook runs on the worker goroutine; keep it cheap.
func WithOnTaskEnd(hook func(id int64, d time.Duration, err error)) Option {
	return func(cfg *config) {
		cfg.onTaskEnd = hook
	}
}
