package sim

import (
	"context"
	"sync"

	"github.com/amontanana/safety-sentinel/internal/driver"
)

// Resting raw channel values: zero g on X and Y, one g on Z.
const (
	restingRawXY = 1650
	restingRawZ  = 1950
	// fallRaw is the spiked per-axis value during an injected fall,
	// summing to an indicator of roughly 8 with default calibration.
	fallRaw = 2450
)

// Accelerometer simulates the three analog acceleration channels.
// It reports resting values until a fall is injected, then spikes all three
// axes for exactly one full sampling round.
type Accelerometer struct {
	// pendingReads counts spiked channel reads left before returning to rest.
	pendingReads int
	// mu guards pendingReads.
	mu sync.Mutex
}

// NewAccelerometer creates a simulated accelerometer at rest.
func NewAccelerometer() *Accelerometer {
	return new(Accelerometer)
}

// InjectFall spikes the next full three-channel sampling round.
func (a *Accelerometer) InjectFall() {
	a.mu.Lock()
	a.pendingReads = 3
	a.mu.Unlock()
}

// ReadChannel returns the raw value for one axis.
func (a *Accelerometer) ReadChannel(_ context.Context, ch driver.Channel) (uint16, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.pendingReads > 0 {
		a.pendingReads--

		return fallRaw, nil
	}

	if ch == driver.ChannelZ {
		return restingRawZ, nil
	}

	return restingRawXY, nil
}
