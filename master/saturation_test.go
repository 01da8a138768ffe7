package master

import (
	"math"
	"testing"
)

func TestApplySaturationUnityAtZeroDrive(t *testing.T) {
	left := []float64{0.1, -0.4, 0.9, -0.9, 0}
	right := []float64{0.2, -0.3, 0.5, -0.5, 0}

	origLeft := append([]float64(nil), left...)
	origRight := append([]float64(nil), right...)

	applySaturation(left, right, SaturationSettings{Enabled: true, Drive: 0})

	for i := range left {
		if math.Abs(left[i]-origLeft[i]) > 1e-9 {
			t.Errorf("left[%d]: got %v, want %v (drive 0 should be unity)", i, left[i], origLeft[i])
		}
		if math.Abs(right[i]-origRight[i]) > 1e-9 {
			t.Errorf("right[%d]: got %v, want %v (drive 0 should be unity)", i, right[i], origRight[i])
		}
	}
}

func TestApplySaturationDisabledIsNoOp(t *testing.T) {
	left := []float64{0.1, -0.4, 0.9}
	right := []float64{0.2, -0.3, 0.5}
	origLeft := append([]float64(nil), left...)
	origRight := append([]float64(nil), right...)

	applySaturation(left, right, SaturationSettings{Enabled: false, Drive: 0.9})

	for i := range left {
		if left[i] != origLeft[i] || right[i] != origRight[i] {
			t.Fatal("disabled saturation must not modify the signal")
		}
	}
}

func TestApplySaturationKeepsOutputBounded(t *testing.T) {
	left := []float64{10, -10, 1e6, -1e6}
	right := []float64{10, -10, 1e6, -1e6}

	applySaturation(left, right, SaturationSettings{Enabled: true, Drive: 1})

	for i := range left {
		if math.Abs(left[i]) > 1+1e-9 {
			t.Errorf("saturation should bound output to [-1, 1], got %v", left[i])
		}
		if math.Abs(right[i]) > 1+1e-9 {
			t.Errorf("saturation should bound output to [-1, 1], got %v", right[i])
		}
	}
}
