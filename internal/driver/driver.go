package driver

import "context"

// Channel identifies one analog input of the acceleration sampler.
type Channel int

const (
	// ChannelX is the accelerometer X axis input.
	ChannelX Channel = iota + 1
	// ChannelY is the accelerometer Y axis input.
	ChannelY
	// ChannelZ is the accelerometer Z axis input.
	ChannelZ
)

// Pin identifies one discrete output driven by the alarm task.
type Pin int

const (
	// PinSafe is the indicator lit in every enabled tier.
	PinSafe Pin = iota
	// PinCaution is the secondary indicator lit in caution and danger.
	PinCaution
	// PinDanger is the tertiary indicator lit only in danger.
	PinDanger
	// PinBuzzer is the pulsed audible output.
	PinBuzzer
)

// RangeFinder produces a distance measurement on demand.
// MeasureDistance blocks for a bounded, driver-defined time (the echo
// round-trip); an internal timeout is not an error, it yields the sentinel
// distance of zero.
type RangeFinder interface {
	MeasureDistance(ctx context.Context) (float64, error)
}

// AnalogReader reads one raw channel sample on demand, in bounded time.
type AnalogReader interface {
	ReadChannel(ctx context.Context, ch Channel) (uint16, error)
}

// DigitalOutput sets or clears a discrete output. Non-blocking.
type DigitalOutput interface {
	Set(pin Pin, on bool) error
}

// SerialPort sends a byte sequence over the status/alert side channel.
// Delivery is best effort; lines are terminated with "\r\n" by callers.
type SerialPort interface {
	Send(line []byte) error
}
