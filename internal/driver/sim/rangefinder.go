package sim

import (
	"context"
	"sync"
)

// RangeFinder replays a fixed sequence of distances, cycling forever.
// It stands in for an ultrasonic sensor watching a target that approaches
// and retreats.
type RangeFinder struct {
	// distances is the measurement sequence to replay.
	distances []float64
	// next is the index of the next measurement.
	next int
	// mu guards the cursor.
	mu sync.Mutex
}

// DefaultSweep is an approach/retreat pass crossing both tier boundaries.
//
//nolint:gochecknoglobals // Shared read-only scenario data.
var DefaultSweep = []float64{650, 600, 550, 480, 420, 360, 290, 220, 180, 220, 290, 360, 420, 480, 550, 600}

// NewRangeFinder creates a simulated range finder replaying the provided
// sequence. An empty sequence falls back to DefaultSweep.
func NewRangeFinder(distances []float64) *RangeFinder {
	if len(distances) == 0 {
		distances = DefaultSweep
	}

	return &RangeFinder{distances: distances}
}

// MeasureDistance returns the next distance in the sequence.
func (r *RangeFinder) MeasureDistance(_ context.Context) (float64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	d := r.distances[r.next]
	r.next = (r.next + 1) % len(r.distances)

	return d, nil
}
