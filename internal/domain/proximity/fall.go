package proximity

// rawUnitsPerVolt converts raw ADC sample units (millivolts) into volts
// before the calibration transform is applied.
const rawUnitsPerVolt = 1000.0

// Calibration holds the accelerometer transform constants.
// They are documented hardware properties, never derived at runtime.
type Calibration struct {
	// Offset is the zero-g output of the accelerometer, in volts.
	Offset float64
	// Scale is the output change per g of acceleration, in volts.
	Scale float64
	// Trigger is the fall-indicator value above which an alert fires.
	Trigger float64
}

// Acceleration converts one raw channel sample into a normalized acceleration
// using the fixed affine transform (raw/1000 − offset) / scale.
func (c Calibration) Acceleration(raw uint16) float64 {
	return (float64(raw)/rawUnitsPerVolt - c.Offset) / c.Scale
}

// FallIndicator is the sum of the three normalized per-axis accelerations.
// It is a pure function of the raw samples: identical inputs always produce
// an identical indicator.
func (c Calibration) FallIndicator(x, y, z uint16) float64 {
	return c.Acceleration(x) + c.Acceleration(y) + c.Acceleration(z)
}

// FallDetected reports whether the indicator exceeds the trigger threshold.
// The comparison is strict: an indicator exactly at the trigger does not fire.
func (c Calibration) FallDetected(indicator float64) bool {
	return indicator > c.Trigger
}
