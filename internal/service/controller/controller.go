package controller

import (
	"context"
	"errors"
	"fmt"
	"os"
	"sync"

	"github.com/amontanana/safety-sentinel/internal/config"
	"github.com/amontanana/safety-sentinel/internal/domain/proximity"
	"github.com/amontanana/safety-sentinel/internal/driver"
	"github.com/amontanana/safety-sentinel/internal/driver/sim"
	"github.com/amontanana/safety-sentinel/internal/logger"
	"github.com/amontanana/safety-sentinel/internal/notify"
	"github.com/amontanana/safety-sentinel/internal/service/alarm"
	"github.com/amontanana/safety-sentinel/internal/service/command"
	"github.com/amontanana/safety-sentinel/internal/service/ranger"
	"github.com/amontanana/safety-sentinel/internal/service/sampler"
	"github.com/amontanana/safety-sentinel/internal/state"
)

// Options controls the sentinel process and configuration.
type Options struct {
	// ConfigPath specifies the path to the settings YAML file.
	ConfigPath string
}

// Drivers bundles the hardware collaborators handed to the controller.
type Drivers struct {
	// RangeFinder is the distance sensor.
	RangeFinder driver.RangeFinder
	// AnalogReader is the acceleration sampler.
	AnalogReader driver.AnalogReader
	// Outputs drives the indicator and buzzer pins.
	Outputs driver.DigitalOutput
	// Serial carries status and alert lines.
	Serial driver.SerialPort
	// Commands delivers control bytes from the external input path.
	// May be nil when no control channel is attached.
	Commands <-chan byte
}

// errDriversIncomplete is returned when a required collaborator is missing.
var errDriversIncomplete = errors.New("range finder, analog reader, outputs and serial port are all required")

// Run loads the configuration, wires the simulated drivers and runs the
// controller until the context is canceled.
func Run(ctx context.Context, opts *Options) error {
	ctx = logger.WithName(ctx, "sentinel")

	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return fmt.Errorf("load settings: %w", err)
	}

	drivers := Drivers{
		RangeFinder:  sim.NewRangeFinder(nil),
		AnalogReader: sim.NewAccelerometer(),
		Outputs:      sim.NewBoard(),
		Serial:       sim.NewSerial(os.Stdout),
		Commands:     sim.Commands(ctx, os.Stdin),
	}

	return RunWith(ctx, cfg, drivers)
}

// RunWith runs the controller against the provided configuration and
// collaborators, blocking until the context is canceled and every task has
// drained. The sampling task is started before the timer so no timer fire
// can be dropped during startup.
func RunWith(ctx context.Context, cfg *config.Config, drivers Drivers) error {
	if drivers.RangeFinder == nil || drivers.AnalogReader == nil ||
		drivers.Outputs == nil || drivers.Serial == nil {
		return errDriversIncomplete
	}

	if err := config.Validate(cfg); err != nil {
		return fmt.Errorf("validate settings: %w", err)
	}

	logger.InfoKV(ctx, "Controller starting",
		"upper_cm", cfg.UpperThresholdCM,
		"lower_cm", cfg.LowerThresholdCM,
		"ranging_period", cfg.RangingPeriod.String(),
		"alarm_poll_period", cfg.AlarmPollPeriod.String(),
		"sampling_period", cfg.SamplingPeriod.String())

	shared := state.New()
	notifier := notify.NewNotifier()

	calibration := proximity.Calibration{
		Offset:  cfg.AccelOffset,
		Scale:   cfg.AccelScale,
		Trigger: cfg.FallTrigger,
	}
	thresholds := proximity.Thresholds{
		UpperCM: cfg.UpperThresholdCM,
		LowerCM: cfg.LowerThresholdCM,
	}

	samplingTask := sampler.New(drivers.AnalogReader, drivers.Serial, notifier, calibration)
	rangingTask := ranger.New(drivers.RangeFinder, shared, cfg.RangingPeriod)
	alarmTask := alarm.New(shared, drivers.Outputs, drivers.Serial, thresholds,
		cfg.AlarmPollPeriod, cfg.CautionPulse, cfg.DangerPulse)
	samplingTimer := notify.NewTimer(cfg.SamplingPeriod, notifier.Signal)

	var wg sync.WaitGroup

	start := func(run func(context.Context)) {
		wg.Add(1)

		go func() {
			defer wg.Done()
			run(ctx)
		}()
	}

	// The sampling task must exist before the timer starts firing; the
	// coalescing notifier then makes early fires harmless either way.
	start(samplingTask.Run)
	start(samplingTimer.Run)
	start(rangingTask.Run)
	start(alarmTask.Run)

	if drivers.Commands != nil {
		start(command.NewListener(shared, drivers.Commands).Run)
	}

	<-ctx.Done()
	wg.Wait()

	logger.Info(ctx, "Controller stopped")

	return nil
}
