package ranger

import (
	"context"
	"time"

	"github.com/amontanana/safety-sentinel/internal/domain/proximity"
	"github.com/amontanana/safety-sentinel/internal/driver"
	"github.com/amontanana/safety-sentinel/internal/logger"
	"github.com/amontanana/safety-sentinel/internal/state"
)

// Task periodically acquires a distance measurement and publishes it to the
// shared state. It is the only writer of the distance sample.
type Task struct {
	// finder is the distance sensor collaborator.
	finder driver.RangeFinder
	// shared receives every measurement.
	shared *state.Shared
	// period is the delay between measurements, taken regardless of the
	// enable state.
	period time.Duration
}

// New creates the ranging task.
func New(finder driver.RangeFinder, shared *state.Shared, period time.Duration) *Task {
	return &Task{
		finder: finder,
		shared: shared,
		period: period,
	}
}

// Run measures until the context is canceled. Each cycle the measurement is
// skipped while the controller is disabled, but the period delay still
// applies so re-enabling never causes a burst of catch-up measurements.
func (t *Task) Run(ctx context.Context) {
	ctx = logger.WithName(ctx, "ranger")
	logger.InfoKV(ctx, "Ranging task started", "period", t.period.String())

	ticker := time.NewTicker(t.period)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			logger.Info(ctx, "Ranging task stopped")
			return
		case <-ticker.C:
			t.measure(ctx)
		}
	}
}

// measure performs one gated measurement cycle.
func (t *Task) measure(ctx context.Context) {
	if !t.shared.Enabled() {
		return
	}

	distance, err := t.finder.MeasureDistance(ctx)
	if err != nil {
		// Degraded, not fatal: the alarm task consumes the sentinel as safe.
		logger.WarnKV(ctx, "Distance measurement failed", "error", err)
		t.shared.SetDistance(proximity.DistanceNone)

		return
	}

	t.shared.SetDistance(distance)
	logger.DebugKV(ctx, "Distance sampled", "distance_cm", distance)
}
