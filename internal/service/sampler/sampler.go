package sampler

import (
	"context"

	"github.com/amontanana/safety-sentinel/internal/domain/proximity"
	"github.com/amontanana/safety-sentinel/internal/driver"
	"github.com/amontanana/safety-sentinel/internal/logger"
	"github.com/amontanana/safety-sentinel/internal/notify"
)

// fallAlertLine is the one-shot alert sent when the fall indicator exceeds
// the trigger threshold.
const fallAlertLine = "fall detected\r\n"

// Task samples the three acceleration channels on every timer wake and emits
// a fall alert when the indicator exceeds the trigger. The timer signal is
// its sole wake source; it has no polling loop of its own and never touches
// the distance sample or the outputs.
type Task struct {
	// reader is the analog sampling collaborator.
	reader driver.AnalogReader
	// serial carries the alert lines.
	serial driver.SerialPort
	// notifier delivers coalesced timer wakes.
	notifier *notify.Notifier
	// cal holds the accelerometer transform and trigger constants.
	cal proximity.Calibration
}

// New creates the sampling task.
func New(reader driver.AnalogReader, serial driver.SerialPort, notifier *notify.Notifier, cal proximity.Calibration) *Task {
	return &Task{
		reader:   reader,
		serial:   serial,
		notifier: notifier,
		cal:      cal,
	}
}

// Run waits for timer wakes until the context is canceled.
func (t *Task) Run(ctx context.Context) {
	ctx = logger.WithName(ctx, "sampler")
	logger.InfoKV(ctx, "Sampling task started", "trigger", t.cal.Trigger)

	for t.notifier.Wait(ctx) {
		t.sample(ctx)
	}

	logger.Info(ctx, "Sampling task stopped")
}

// sample reads the three channels, derives the fall indicator and emits an
// alert on a strict threshold crossing. Every qualifying wake emits a fresh
// alert; there is deliberately no debounce or cooldown.
func (t *Task) sample(ctx context.Context) {
	x := t.readChannel(ctx, driver.ChannelX)
	y := t.readChannel(ctx, driver.ChannelY)
	z := t.readChannel(ctx, driver.ChannelZ)

	indicator := t.cal.FallIndicator(x, y, z)
	if !t.cal.FallDetected(indicator) {
		return
	}

	logger.WarnKV(ctx, "Fall detected", "indicator", indicator)

	if err := t.serial.Send([]byte(fallAlertLine)); err != nil {
		// Best-effort side channel.
		logger.ErrorKV(ctx, "Failed to send fall alert", "error", err)
	}
}

// readChannel reads one axis, substituting the neutral zero-g value when the
// driver fails so a single bad read biases the indicator toward rest instead
// of toward a spurious alert.
func (t *Task) readChannel(ctx context.Context, ch driver.Channel) uint16 {
	raw, err := t.reader.ReadChannel(ctx, ch)
	if err != nil {
		logger.WarnKV(ctx, "Channel read failed", "channel", int(ch), "error", err)

		return uint16(t.cal.Offset * 1000)
	}

	return raw
}
