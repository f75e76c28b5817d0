package risk

// Tier is the discrete risk level derived from a model probability.
type Tier string

const (
	TierLow      Tier = "LOW"
	TierModerate Tier = "MODERATE"
	TierHigh     Tier = "HIGH"
)

// Probability thresholds for tier classification. The step function is
// half-open on the left: exactly 0.40 is MODERATE, exactly 0.70 is HIGH.
const (
	ModerateThreshold = 0.40
	HighThreshold     = 0.70
)

// TierFor classifies a positive-class probability into a risk tier.
func TierFor(probability float64) Tier {
	switch {
	case probability < ModerateThreshold:
		return TierLow
	case probability < HighThreshold:
		return TierModerate
	default:
		return TierHigh
	}
}

// Color returns the display color for the tier's gauge and label.
func (t Tier) Color() string {
	switch t {
	case TierLow:
		return "#22c55e"
	case TierModerate:
		return "#facc15"
	default:
		return "#ef4444"
	}
}

// Pulses reports whether the gauge should carry the pulse animation.
// Only HIGH risk pulses.
func (t Tier) Pulses() bool {
	return t == TierHigh
}

func (t Tier) String() string {
	return string(t)
}
