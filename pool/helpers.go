package pool

import "time"

// waitUntil blocks until either the done channel is closed or the timeout
// is reached. It is used during graceful shutdown to wait for workers to
// finish draining the queue.
func waitUntil(done <-chan struct{}, timeout time.Duration) error {
	if timeout <= 0 {
		<-done
		return nil
	}

	select {
	case <-done:
		return nil
	case <-time.After(timeout):
		return ErrShutdownTimeout
	}
}
