// Package alarm implements the actuation task: a fixed-period loop that
// re-classifies the last distance sample into a tier, drives the indicator
// pins, pulses the buzzer with tier-specific in-task cadences and reports
// over the serial side channel.
package alarm
