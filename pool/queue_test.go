package pool

import (
	"testing"
	"time"
)

func newTestTask(id int64) *task {
	return &task{id: id, run: func() error { return nil }}
}

func TestTaskQueue_FIFO(t *testing.T) {
	q := newTaskQueue(4)

	for i := int64(1); i <= 5; i++ {
		if !q.push(newTestTask(i)) {
			t.Fatalf("push %d rejected on open queue", i)
		}
	}
	if got := q.len(); got != 5 {
		t.Fatalf("expected 5 pending, got %d", got)
	}

	for i := int64(1); i <= 5; i++ {
		popped, done := q.pop()
		if done {
			t.Fatal("queue reported done while tasks remain")
		}
		if popped == nil {
			t.Fatal("expected a task")
		}
		if popped.id != i {
			t.Errorf("expected task %d, got %d", i, popped.id)
		}
	}

	if popped, done := q.pop(); popped != nil || done {
		t.Errorf("empty open queue should return (nil, false), got (%v, %v)", popped, done)
	}
}

func TestTaskQueue_Close(t *testing.T) {
	t.Run("push after close is rejected", func(t *testing.T) {
		q := newTaskQueue(1)
		if !q.close() {
			t.Fatal("first close should perform the transition")
		}
		if q.close() {
			t.Error("second close should be a no-op")
		}
		if q.push(newTestTask(1)) {
			t.Error("push after close should be rejected")
		}
	})

	t.Run("closed queue drains before reporting done", func(t *testing.T) {
		q := newTaskQueue(1)
		q.push(newTestTask(1))
		q.push(newTestTask(2))
		q.close()

		for i := int64(1); i <= 2; i++ {
			popped, done := q.pop()
			if done || popped == nil {
				t.Fatalf("expected queued task %d after close, got (%v, %v)", i, popped, done)
			}
			if popped.id != i {
				t.Errorf("expected task %d, got %d", i, popped.id)
			}
		}

		if popped, done := q.pop(); popped != nil || !done {
			t.Errorf("drained closed queue should report done, got (%v, %v)", popped, done)
		}
	})
}

func TestTaskQueue_Wait(t *testing.T) {
	t.Run("push wakes a waiter", func(t *testing.T) {
		q := newTaskQueue(1)
		woke := make(chan struct{})

		go func() {
			q.wait()
			close(woke)
		}()

		time.Sleep(10 * time.Millisecond)
		q.push(newTestTask(1))

		select {
		case <-woke:
		case <-time.After(time.Second):
			t.Fatal("waiter was not woken by push")
		}
	})

	t.Run("close wakes every waiter", func(t *testing.T) {
		q := newTaskQueue(1)
		const waiters = 4
		woke := make(chan struct{}, waiters)

		for i := 0; i < waiters; i++ {
			go func() {
				q.wait()
				woke <- struct{}{}
			}()
		}

		time.Sleep(10 * time.Millisecond)
		q.close()

		for i := 0; i < waiters; i++ {
			select {
			case <-woke:
			case <-time.After(time.Second):
				t.Fatalf("waiter %d was not woken by close", i)
			}
		}
	})

	t.Run("wake is forwarded while work remains", func(t *testing.T) {
		q := newTaskQueue(4)
		// Two pushes coalesce into one pending wake token.
		q.push(newTestTask(1))
		q.push(newTestTask(2))

		q.wait() // consume the token like a woken worker
		if popped, _ := q.pop(); popped == nil {
			t.Fatal("expected first task")
		}

		// pop saw a remaining task and must have re-armed the wake, so a
		// second waiter cannot sleep through it.
		done := make(chan struct{})
		go func() {
			q.wait()
			close(done)
		}()

		select {
		case <-done:
		case <-time.After(time.Second):
			t.Fatal("second waiter slept through a non-empty queue")
		}
	})
}
