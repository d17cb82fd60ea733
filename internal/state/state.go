package state

import (
	"math"
	"sync/atomic"
)

// Shared is the process-lifetime state exchanged between the tasks. A single
// handle is created at startup and passed to every task; there are no free
// floating globals.
//
// Field ownership is deliberately narrow:
//   - the distance sample has exactly one writer (the ranging task) and one
//     reader (the alarm task);
//   - the enable flag has one writer (the command listener) and two readers
//     (the ranging and alarm tasks).
//
// Atomic word access is all the synchronization these invariants need; reads
// may be stale by up to one task period, which is an accepted property.
type Shared struct {
	// enabled gates the ranging and alarm tasks.
	enabled atomic.Bool
	// distanceBits holds the last distance sample as float64 bits.
	distanceBits atomic.Uint64
}

// New creates the shared state: enabled, with no distance sample yet.
func New() *Shared {
	s := new(Shared)
	s.enabled.Store(true)

	return s
}

// Enabled reports whether the controller is active.
func (s *Shared) Enabled() bool {
	return s.enabled.Load()
}

// SetEnabled sets the enable flag.
func (s *Shared) SetEnabled(on bool) {
	s.enabled.Store(on)
}

// ToggleEnabled flips the enable flag and returns the new value.
func (s *Shared) ToggleEnabled() bool {
	for {
		old := s.enabled.Load()
		if s.enabled.CompareAndSwap(old, !old) {
			return !old
		}
	}
}

// Distance returns the last distance sample in centimeters.
// Zero means no valid reading yet.
func (s *Shared) Distance() float64 {
	return math.Float64frombits(s.distanceBits.Load())
}

// SetDistance stores a distance sample. Called only by the ranging task.
func (s *Shared) SetDistance(cm float64) {
	s.distanceBits.Store(math.Float64bits(cm))
}
