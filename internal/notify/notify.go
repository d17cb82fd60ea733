package notify

import "context"

// Notifier is a coalescing wake primitive. Any number of Signal calls made
// before the next Wait collapse into a single pending wake, so a consumer
// that is slow to get scheduled neither misses its wake nor replays a
// backlog of stale ones.
type Notifier struct {
	// ch holds at most one pending wake.
	ch chan struct{}
}

// NewNotifier creates a notifier with no pending wake.
func NewNotifier() *Notifier {
	return &Notifier{ch: make(chan struct{}, 1)}
}

// Signal posts a wake without blocking. Safe to call from the timer callback
// path: if a wake is already pending the call is a no-op.
func (n *Notifier) Signal() {
	select {
	case n.ch <- struct{}{}:
	default:
	}
}

// Wait blocks until a wake is pending or the context is canceled.
// It returns false only on cancellation.
func (n *Notifier) Wait(ctx context.Context) bool {
	select {
	case <-n.ch:
		return true
	case <-ctx.Done():
		return false
	}
}
