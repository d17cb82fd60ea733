// Package config loads, saves and validates the controller settings.
//
// Settings are stored as YAML and cover the tier thresholds, task periods,
// buzzer cadences and accelerometer calibration. Every field has a documented
// default so the controller runs without a settings file at all.
package config
