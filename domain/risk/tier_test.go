package risk

import "testing"

func TestTierFor_StepFunction(t *testing.T) {
	tests := []struct {
		probability float64
		want        Tier
	}{
		{0.0, TierLow},
		{0.39, TierLow},
		{0.40, TierModerate},
		{0.55, TierModerate},
		{0.69, TierModerate},
		{0.70, TierHigh},
		{1.0, TierHigh},
	}
	for _, tt := range tests {
		if got := TierFor(tt.probability); got != tt.want {
			t.Errorf("TierFor(%.2f) = %s, want %s", tt.probability, got, tt.want)
		}
	}
}

func TestTierColors(t *testing.T) {
	if TierLow.Color() != "#22c55e" {
		t.Errorf("LOW color = %s", TierLow.Color())
	}
	if TierModerate.Color() != "#facc15" {
		t.Errorf("MODERATE color = %s", TierModerate.Color())
	}
	if TierHigh.Color() != "#ef4444" {
		t.Errorf("HIGH color = %s", TierHigh.Color())
	}
}

func TestTierPulses(t *testing.T) {
	if TierLow.Pulses() || TierModerate.Pulses() {
		t.Error("only HIGH risk should pulse")
	}
	if !TierHigh.Pulses() {
		t.Error("HIGH risk should pulse")
	}
}
