package pool

import "sync"

// task is the uniform shape stored in the queue. Whatever result type a
// submitted closure has, Submit wraps it into a no-argument run function
// that writes its outcome into its own Future, so the queue only ever
// holds one task shape.
type task struct {
	id  int64
	run func() error
}

// taskQueue is the shared FIFO of pending tasks. A single mutex guards the
// slice and the closed flag, so a task is removed by exactly one worker and
// enqueues are atomic with respect to shutdown.
//
// Wakeups use two channels:
//   - notifyC (buffered, capacity 1, never closed) gets one non-blocking
//     send per push: one submission wakes one waiting worker. A dropped
//     send means a wake is already pending, and every woken worker
//     re-checks the queue before waiting again.
//   - closeC is closed exactly once on shutdown so every waiting worker
//     observes it, since all of them must see the flag and re-check.
type taskQueue struct {
	mu     sync.Mutex
	tasks  []*task
	closed bool

	notifyC chan struct{}
	closeC  chan struct{}
}

func newTaskQueue(capacity int) *taskQueue {
	return &taskQueue{
		tasks:   make([]*task, 0, capacity),
		notifyC: make(chan struct{}, 1),
		closeC:  make(chan struct{}),
	}
}

// push appends t and signals one waiting worker. It reports false once the
// queue is closed, without enqueueing.
func (q *taskQueue) push(t *task) bool {
	q.mu.Lock()
	if q.closed {
		q.mu.Unlock()
		return false
	}
	q.tasks = append(q.tasks, t)
	q.mu.Unlock()

	select {
	case q.notifyC <- struct{}{}:
	default:
	}
	return true
}

// pop removes and returns the head task. done reports that the queue is
// closed and fully drained, i.e. the calling worker should exit. A closed
// queue keeps handing out queued tasks until it is empty: shutdown drains,
// it never discards.
func (q *taskQueue) pop() (t *task, done bool) {
	q.mu.Lock()
	defer q.mu.Unlock()

	if len(q.tasks) == 0 {
		return nil, q.closed
	}

	t = q.tasks[0]
	q.tasks[0] = nil
	q.tasks = q.tasks[1:]

	// Wake signals coalesce in notifyC, so after taking a task the wake is
	// forwarded while work remains. Otherwise two back-to-back pushes could
	// wake a single worker and leave the second task waiting on a sleeping
	// sibling.
	if len(q.tasks) > 0 {
		select {
		case q.notifyC <- struct{}{}:
		default:
		}
	}
	return t, false
}

// wait blocks until there may be more work: a push signal or shutdown.
// Callers must re-check the queue after waking; the signal is a hint, not
// a handoff.
func (q *taskQueue) wait() {
	select {
	case <-q.notifyC:
	case <-q.closeC:
	}
}

// close marks the queue closed and wakes every waiting worker. It reports
// whether this call performed the transition; later calls are no-ops.
func (q *taskQueue) close() bool {
	q.mu.Lock()
	defer q.mu.Unlock()

	if q.closed {
		return false
	}
	q.closed = true
	close(q.closeC)
	return true
}

// len returns the number of pending tasks.
func (q *taskQueue) len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.tasks)
}
