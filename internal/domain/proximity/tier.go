package proximity

// DistanceNone is the sentinel stored before the first valid measurement and
// after a failed one. It classifies as safe, never as danger.
const DistanceNone = 0.0

// Tier is the proximity classification of the last distance sample.
type Tier int

const (
	// TierOff means the controller is disabled and all outputs are cleared.
	TierOff Tier = iota
	// TierSafe means the target is beyond the upper threshold.
	TierSafe
	// TierCaution means the target is between the thresholds.
	TierCaution
	// TierDanger means the target is at or below the lower threshold.
	TierDanger
)

// String returns the lowercase tier name used in status messages and logs.
func (t Tier) String() string {
	switch t {
	case TierOff:
		return "off"
	case TierSafe:
		return "safe"
	case TierCaution:
		return "caution"
	case TierDanger:
		return "danger"
	default:
		return "unknown"
	}
}

// Thresholds are the tier boundaries in centimeters.
type Thresholds struct {
	// UpperCM is the safe/caution boundary.
	UpperCM float64
	// LowerCM is the caution/danger boundary.
	LowerCM float64
}

// Classify derives the tier from the enable flag and the last distance sample.
// It is a pure function re-evaluated every alarm cycle; there is no stored
// previous tier and no hysteresis, so a distance oscillating around a boundary
// oscillates tier on every cycle. That is a documented property of the
// controller, not a defect.
//
// The sentinel DistanceNone classifies as safe: a sensor that has not produced
// a reading yet must fail open, not fail alarming.
func Classify(enabled bool, distanceCM float64, th Thresholds) Tier {
	switch {
	case !enabled:
		return TierOff
	case distanceCM == DistanceNone:
		return TierSafe
	case distanceCM > th.UpperCM:
		return TierSafe
	case distanceCM > th.LowerCM:
		return TierCaution
	default:
		return TierDanger
	}
}
