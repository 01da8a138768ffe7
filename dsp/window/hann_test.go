package window

import (
	"math"
	"testing"
)

func TestHannEndpointsAreZero(t *testing.T) {
	w := Hann(16)

	if math.Abs(w[0]) > 1e-12 {
		t.Errorf("first sample should be 0, got %v", w[0])
	}

	if math.Abs(w[len(w)-1]) > 1e-12 {
		t.Errorf("last sample should be 0, got %v", w[len(w)-1])
	}
}

func TestHannPeakAtCenter(t *testing.T) {
	w := Hann(17)
	center := w[8]

	if math.Abs(center-1.0) > 1e-12 {
		t.Errorf("center sample should be 1.0, got %v", center)
	}

	for i, v := range w {
		if v > center+1e-12 {
			t.Errorf("index %d exceeds center value: %v > %v", i, v, center)
		}
	}
}

func TestHannSinglePoint(t *testing.T) {
	w := Hann(1)
	if len(w) != 1 || w[0] != 1 {
		t.Fatalf("single-point window should be [1], got %v", w)
	}
}

func TestApplyInPlaceMultipliesElementwise(t *testing.T) {
	buf := []float64{1, 1, 1, 1}
	coeffs := []float64{0.5, 1, 0.25, 0}

	ApplyInPlace(buf, coeffs)

	want := []float64{0.5, 1, 0.25, 0}
	for i := range buf {
		if buf[i] != want[i] {
			t.Errorf("index %d: got %v, want %v", i, buf[i], want[i])
		}
	}
}
