package proximity

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// defaultCalibration mirrors the documented accelerometer constants.
func defaultCalibration() Calibration {
	return Calibration{Offset: 1.65, Scale: 0.3, Trigger: 4}
}

// TestAcceleration verifies the affine transform on a known sample.
func TestAcceleration(t *testing.T) {
	t.Parallel()

	cal := defaultCalibration()

	// 2450 raw units -> 2.45 V -> (2.45 - 1.65) / 0.3 = 2.666...
	require.InDelta(t, 2.6667, cal.Acceleration(2450), 0.001)

	// Zero-g output maps to zero acceleration.
	require.InDelta(t, 0, cal.Acceleration(1650), 1e-9)
}

// TestFallIndicator checks purity and the documented end-to-end scenario:
// three axes at 2450 raw sum to roughly 8, well above the trigger of 4.
func TestFallIndicator(t *testing.T) {
	t.Parallel()

	cal := defaultCalibration()

	indicator := cal.FallIndicator(2450, 2450, 2450)
	require.InDelta(t, 8.0, indicator, 0.001)
	require.True(t, cal.FallDetected(indicator))

	// Identical inputs always produce the identical indicator.
	require.Equal(t, indicator, cal.FallIndicator(2450, 2450, 2450)) //nolint:testifylint // Purity check wants exact equality.
}

// TestFallDetectedStrictThreshold ensures an indicator exactly at the trigger
// does not fire.
func TestFallDetectedStrictThreshold(t *testing.T) {
	t.Parallel()

	cal := defaultCalibration()

	require.False(t, cal.FallDetected(cal.Trigger))
	require.False(t, cal.FallDetected(cal.Trigger-0.001))
	require.True(t, cal.FallDetected(cal.Trigger+0.001))
}

// TestFallIndicatorRestingBelowTrigger ensures a device at rest (1 g on one
// axis, zero on the others) stays below the trigger.
func TestFallIndicatorRestingBelowTrigger(t *testing.T) {
	t.Parallel()

	cal := defaultCalibration()

	// z at 1 g: 1.65 V + 0.3 V = 1950 raw units.
	indicator := cal.FallIndicator(1650, 1650, 1950)
	require.InDelta(t, 1.0, indicator, 0.001)
	require.False(t, cal.FallDetected(indicator))
}
