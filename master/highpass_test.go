package master

import (
	"math"
	"testing"
)

func TestApplyHighPassDisabledIsNoOp(t *testing.T) {
	left := []float64{0.3, -0.2, 0.9}
	right := []float64{0.1, 0.4, -0.6}
	origLeft := append([]float64(nil), left...)
	origRight := append([]float64(nil), right...)

	applyHighPass(left, right, 48000, HighPassSettings{Enabled: false, CutoffHz: 40})

	for i := range left {
		if left[i] != origLeft[i] || right[i] != origRight[i] {
			t.Fatal("disabled high-pass must not modify the signal")
		}
	}
}

func TestApplyHighPassAttenuatesDC(t *testing.T) {
	n := 4000
	left := make([]float64, n)
	right := make([]float64, n)
	for i := range left {
		left[i] = 1
		right[i] = 1
	}

	applyHighPass(left, right, 48000, HighPassSettings{Enabled: true, CutoffHz: 60})

	if math.Abs(left[n-1]) > 0.05 {
		t.Errorf("DC offset should be attenuated by the high-pass, got %v", left[n-1])
	}
}

func TestApplyHighPassClampsCutoff(t *testing.T) {
	left := []float64{0.5, 0.4, 0.3, 0.2}
	right := append([]float64(nil), left...)

	extreme := append([]float64(nil), left...)
	extremeR := append([]float64(nil), right...)
	applyHighPass(extreme, extremeR, 48000, HighPassSettings{Enabled: true, CutoffHz: 9000})

	clamped := append([]float64(nil), left...)
	clampedR := append([]float64(nil), right...)
	applyHighPass(clamped, clampedR, 48000, HighPassSettings{Enabled: true, CutoffHz: highPassMaxHz})

	for i := range extreme {
		if math.Abs(extreme[i]-clamped[i]) > 1e-12 {
			t.Errorf("index %d: cutoff above max should clamp identically", i)
		}
	}
}
