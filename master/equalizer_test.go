package master

import (
	"math"
	"testing"
)

func TestApplyEqualizerZeroGainIsNearIdentity(t *testing.T) {
	left := []float64{0.3, -0.2, 0.9, -0.4, 0.1}
	right := []float64{0.1, 0.4, -0.6, 0.2, -0.3}

	origLeft := append([]float64(nil), left...)
	origRight := append([]float64(nil), right...)

	applyEqualizer(left, right, 48000, EqualizerSettings{
		Enabled:         true,
		LowShelfFreqHz:  120,
		LowShelfQ:       0.707,
		MidFreqHz:       1500,
		MidQ:            1.0,
		HighShelfFreqHz: 8000,
		HighShelfQ:      0.707,
	})

	for i := range left {
		if math.Abs(left[i]-origLeft[i]) > 1e-9 {
			t.Errorf("left[%d]: got %v, want %v (0 dB EQ should be unity)", i, left[i], origLeft[i])
		}
		if math.Abs(right[i]-origRight[i]) > 1e-9 {
			t.Errorf("right[%d]: got %v, want %v (0 dB EQ should be unity)", i, right[i], origRight[i])
		}
	}
}

func TestApplyEqualizerDisabledIsNoOp(t *testing.T) {
	left := []float64{0.3, -0.2}
	right := []float64{0.1, 0.4}
	origLeft := append([]float64(nil), left...)
	origRight := append([]float64(nil), right...)

	applyEqualizer(left, right, 48000, EqualizerSettings{Enabled: false, LowShelfGainDb: 6})

	for i := range left {
		if left[i] != origLeft[i] || right[i] != origRight[i] {
			t.Fatal("disabled equalizer must not modify the signal")
		}
	}
}
