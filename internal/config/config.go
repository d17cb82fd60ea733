package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds the controller tuning shared by every task.
// All values are fixed at startup and never change afterwards.
type Config struct {
	// UpperThresholdCM is the distance above which the target is safe.
	UpperThresholdCM float64 `yaml:"upper_threshold_cm"`
	// LowerThresholdCM is the distance at or below which the target is in danger.
	LowerThresholdCM float64 `yaml:"lower_threshold_cm"`
	// RangingPeriod is the delay between distance measurements.
	RangingPeriod time.Duration `yaml:"ranging_period"`
	// AlarmPollPeriod is the base delay between alarm classification cycles.
	// Pulse cadences stretch the effective cycle beyond this floor.
	AlarmPollPeriod time.Duration `yaml:"alarm_poll_period"`
	// SamplingPeriod is the fixed period of the acceleration sampling timer.
	SamplingPeriod time.Duration `yaml:"sampling_period"`
	// CautionPulse is the buzzer on and off duration in the caution tier.
	CautionPulse time.Duration `yaml:"caution_pulse"`
	// DangerPulse is the buzzer on and off duration in the danger tier.
	// Must be strictly shorter than CautionPulse.
	DangerPulse time.Duration `yaml:"danger_pulse"`
	// AccelOffset is the zero-g offset of the accelerometer transform, in volts.
	AccelOffset float64 `yaml:"accel_offset"`
	// AccelScale is the volts-per-g scale of the accelerometer transform.
	AccelScale float64 `yaml:"accel_scale"`
	// FallTrigger is the fall-indicator value above which an alert is emitted.
	FallTrigger float64 `yaml:"fall_trigger"`
}

const (
	// DefaultConfigFilename is the default filename for controller settings.
	DefaultConfigFilename = "sentinel-settings.yaml"

	// DefaultUpperThresholdCM is the default safe/caution boundary.
	DefaultUpperThresholdCM = 500.0
	// DefaultLowerThresholdCM is the default caution/danger boundary.
	DefaultLowerThresholdCM = 300.0
	// DefaultRangingPeriod is the default delay between distance measurements.
	DefaultRangingPeriod = 500 * time.Millisecond
	// DefaultAlarmPollPeriod is the default base alarm cycle delay.
	DefaultAlarmPollPeriod = 100 * time.Millisecond
	// DefaultSamplingPeriod is the default acceleration sampling timer period.
	DefaultSamplingPeriod = 10 * time.Millisecond
	// DefaultCautionPulse is the default caution buzzer cadence.
	DefaultCautionPulse = 500 * time.Millisecond
	// DefaultDangerPulse is the default danger buzzer cadence.
	DefaultDangerPulse = 250 * time.Millisecond
	// DefaultAccelOffset is the default zero-g offset in volts.
	DefaultAccelOffset = 1.65
	// DefaultAccelScale is the default volts-per-g scale.
	DefaultAccelScale = 0.3
	// DefaultFallTrigger is the default fall-indicator alert threshold.
	DefaultFallTrigger = 4.0

	// DefaultFilePermissions is the default file permission for config files.
	DefaultFilePermissions = 0o600
)

var (
	// errConfigIsNotSet is returned when a nil configuration is provided.
	errConfigIsNotSet = errors.New("configuration is not set")
	// errThresholdOrder is returned when the tier boundaries are not strictly ordered.
	errThresholdOrder = errors.New("upper threshold must be greater than lower threshold, both positive")
	// errPulseOrder is returned when the danger cadence is not faster than caution.
	errPulseOrder = errors.New("danger pulse must be strictly shorter than caution pulse")
	// errAccelScaleZero is returned when the accelerometer scale is zero.
	errAccelScaleZero = errors.New("accelerometer scale must not be zero")
)

// Default returns a configuration filled with the documented defaults.
func Default() *Config {
	return &Config{
		UpperThresholdCM: DefaultUpperThresholdCM,
		LowerThresholdCM: DefaultLowerThresholdCM,
		RangingPeriod:    DefaultRangingPeriod,
		AlarmPollPeriod:  DefaultAlarmPollPeriod,
		SamplingPeriod:   DefaultSamplingPeriod,
		CautionPulse:     DefaultCautionPulse,
		DangerPulse:      DefaultDangerPulse,
		AccelOffset:      DefaultAccelOffset,
		AccelScale:       DefaultAccelScale,
		FallTrigger:      DefaultFallTrigger,
	}
}

// Load reads configuration from the provided path and validates essential fields.
// A missing path falls back to the default filename; a missing file falls back
// to the default configuration so the controller can run without any setup.
func Load(path string) (*Config, error) {
	if path == "" {
		path = DefaultConfigFilename
	}

	contents, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Default(), nil
		}

		return nil, fmt.Errorf("read settings: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(contents, &cfg); err != nil {
		return nil, fmt.Errorf("unmarshal settings: %w", err)
	}

	if err := Validate(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Save writes the configuration to the provided path.
func Save(path string, cfg *Config) error {
	if cfg == nil {
		return errConfigIsNotSet
	}

	if path == "" {
		path = DefaultConfigFilename
	}

	if err := Validate(cfg); err != nil {
		return err
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshal settings: %w", err)
	}

	// Restrict permissions.
	if err := os.WriteFile(filepath.Clean(path), data, DefaultFilePermissions); err != nil {
		return fmt.Errorf("write settings: %w", err)
	}

	return nil
}

// Validate checks the provided settings, filling defaults for unset fields.
func Validate(cfg *Config) error {
	if cfg == nil {
		return errConfigIsNotSet
	}

	applyDefaults(cfg)

	if cfg.LowerThresholdCM <= 0 || cfg.UpperThresholdCM <= cfg.LowerThresholdCM {
		return errThresholdOrder
	}

	if cfg.DangerPulse >= cfg.CautionPulse {
		return errPulseOrder
	}

	if cfg.AccelScale == 0 {
		return errAccelScaleZero
	}

	return nil
}

// applyDefaults fills zero-valued fields with the documented defaults.
// Thresholds and calibration are only defaulted when both related fields are
// unset, so a half-specified pair still fails validation instead of silently
// mixing defaults with user values.
func applyDefaults(cfg *Config) {
	if cfg.UpperThresholdCM == 0 && cfg.LowerThresholdCM == 0 {
		cfg.UpperThresholdCM = DefaultUpperThresholdCM
		cfg.LowerThresholdCM = DefaultLowerThresholdCM
	}

	if cfg.RangingPeriod <= 0 {
		cfg.RangingPeriod = DefaultRangingPeriod
	}

	if cfg.AlarmPollPeriod <= 0 {
		cfg.AlarmPollPeriod = DefaultAlarmPollPeriod
	}

	if cfg.SamplingPeriod <= 0 {
		cfg.SamplingPeriod = DefaultSamplingPeriod
	}

	if cfg.CautionPulse <= 0 && cfg.DangerPulse <= 0 {
		cfg.CautionPulse = DefaultCautionPulse
		cfg.DangerPulse = DefaultDangerPulse
	}

	if cfg.AccelOffset == 0 && cfg.AccelScale == 0 {
		cfg.AccelOffset = DefaultAccelOffset
		cfg.AccelScale = DefaultAccelScale
	}

	if cfg.FallTrigger == 0 {
		cfg.FallTrigger = DefaultFallTrigger
	}
}
