package notify

import (
	"context"
	"time"
)

// Timer invokes a callback at a fixed period, standing in for a periodic
// hardware timer interrupt. The callback runs on the timer goroutine and
// must only signal waiting tasks; it must not perform I/O or block.
//
// Callers must start the timer only after the consumer task is already
// waiting, otherwise early fires are dropped on the floor.
type Timer struct {
	// period is the fixed firing interval.
	period time.Duration
	// fire is the callback invoked on every tick.
	fire func()
}

// NewTimer creates a timer with the given period and callback.
func NewTimer(period time.Duration, fire func()) *Timer {
	return &Timer{period: period, fire: fire}
}

// Run ticks until the context is canceled.
func (t *Timer) Run(ctx context.Context) {
	ticker := time.NewTicker(t.period)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			t.fire()
		}
	}
}
