package alarm

import (
	"context"
	"fmt"
	"time"

	"github.com/amontanana/safety-sentinel/internal/domain/proximity"
	"github.com/amontanana/safety-sentinel/internal/driver"
	"github.com/amontanana/safety-sentinel/internal/logger"
	"github.com/amontanana/safety-sentinel/internal/state"
)

// Task classifies the last distance sample into a tier every poll cycle and
// drives the indicators, the buzzer cadence and the serial status line
// accordingly. The tier is re-derived fresh each cycle; nothing is latched.
type Task struct {
	// shared supplies the enable flag and the distance sample.
	shared *state.Shared
	// outputs drives the indicator and buzzer pins.
	outputs driver.DigitalOutput
	// serial carries the per-cycle status lines.
	serial driver.SerialPort
	// thresholds are the tier boundaries.
	thresholds proximity.Thresholds
	// pollPeriod is the base delay between cycles. In the pulsing tiers the
	// in-cycle cadence stretches the effective cycle well beyond it, so it
	// is a floor on cycle time, not a ceiling.
	pollPeriod time.Duration
	// cautionPulse is the buzzer on and off duration in the caution tier.
	cautionPulse time.Duration
	// dangerPulse is the buzzer on and off duration in the danger tier.
	dangerPulse time.Duration
}

// New creates the alarm task.
func New(
	shared *state.Shared,
	outputs driver.DigitalOutput,
	serial driver.SerialPort,
	thresholds proximity.Thresholds,
	pollPeriod, cautionPulse, dangerPulse time.Duration,
) *Task {
	return &Task{
		shared:       shared,
		outputs:      outputs,
		serial:       serial,
		thresholds:   thresholds,
		pollPeriod:   pollPeriod,
		cautionPulse: cautionPulse,
		dangerPulse:  dangerPulse,
	}
}

// Run cycles until the context is canceled, clearing every output on the
// way out so the actuators are never left latched after shutdown.
func (t *Task) Run(ctx context.Context) {
	ctx = logger.WithName(ctx, "alarm")
	logger.InfoKV(ctx, "Alarm task started",
		"upper_cm", t.thresholds.UpperCM,
		"lower_cm", t.thresholds.LowerCM,
		"poll_period", t.pollPeriod.String())

	for {
		t.cycle(ctx)

		if !sleep(ctx, t.pollPeriod) {
			t.allOff(ctx)
			logger.Info(ctx, "Alarm task stopped")

			return
		}
	}
}

// cycle performs one classify-and-actuate pass.
func (t *Task) cycle(ctx context.Context) {
	// Read the sample once so classification and the status line agree.
	distance := t.shared.Distance()
	tier := proximity.Classify(t.shared.Enabled(), distance, t.thresholds)

	switch tier {
	case proximity.TierOff:
		t.allOff(ctx)
	case proximity.TierSafe:
		t.setPins(ctx, true, false, false)
		t.setPin(ctx, driver.PinBuzzer, false)
	case proximity.TierCaution:
		t.setPins(ctx, true, true, false)
		t.pulse(ctx, t.cautionPulse)
		t.sendStatus(ctx, tier, distance)
	case proximity.TierDanger:
		t.setPins(ctx, true, true, true)
		t.pulse(ctx, t.dangerPulse)
		t.sendStatus(ctx, tier, distance)
	}
}

// pulse drives one buzzer on/off sequence with in-task blocking delays.
// The alarm task intentionally owns this cadence: there is a single buzzer,
// so no separate scheduler is warranted.
func (t *Task) pulse(ctx context.Context, d time.Duration) {
	t.setPin(ctx, driver.PinBuzzer, true)

	if !sleep(ctx, d) {
		t.setPin(ctx, driver.PinBuzzer, false)
		return
	}

	t.setPin(ctx, driver.PinBuzzer, false)
	sleep(ctx, d)
}

// sendStatus emits the per-cycle "<tier> <distance> cm" status line.
func (t *Task) sendStatus(ctx context.Context, tier proximity.Tier, distance float64) {
	line := fmt.Sprintf("%s %.0f cm\r\n", tier, distance)
	if err := t.serial.Send([]byte(line)); err != nil {
		// Best-effort side channel.
		logger.ErrorKV(ctx, "Failed to send status line", "error", err)
	}
}

// setPins sets the three tier indicators.
func (t *Task) setPins(ctx context.Context, safe, caution, danger bool) {
	t.setPin(ctx, driver.PinSafe, safe)
	t.setPin(ctx, driver.PinCaution, caution)
	t.setPin(ctx, driver.PinDanger, danger)
}

// allOff clears every output.
func (t *Task) allOff(ctx context.Context) {
	t.setPins(ctx, false, false, false)
	t.setPin(ctx, driver.PinBuzzer, false)
}

// setPin sets one output, logging failures without escalating them.
func (t *Task) setPin(ctx context.Context, pin driver.Pin, on bool) {
	if err := t.outputs.Set(pin, on); err != nil {
		logger.WarnKV(ctx, "Failed to set output", "pin", int(pin), "on", on, "error", err)
	}
}

// sleep blocks for d or until the context is canceled, reporting whether the
// full duration elapsed.
func sleep(ctx context.Context, d time.Duration) bool {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return false
	case <-timer.C:
		return true
	}
}
