package loudness

import (
	"math"
	"testing"
)

func TestIntegratedSilenceReturnsFloor(t *testing.T) {
	n := 48000 * 2
	left := make([]float64, n)
	right := make([]float64, n)

	got := Integrated(left, right, 48000)
	if got != floorLUFS {
		t.Errorf("silent input should return the floor %v, got %v", floorLUFS, got)
	}
}

func TestIntegratedEmptyInputReturnsFloor(t *testing.T) {
	if got := Integrated(nil, nil, 48000); got != floorLUFS {
		t.Errorf("empty input should return the floor %v, got %v", floorLUFS, got)
	}
}

func TestIntegratedFullScaleToneIsLouderThanHalfScale(t *testing.T) {
	fs := 48000.0
	n := int(fs * 2)

	full := make([]float64, n)
	half := make([]float64, n)
	for i := range full {
		v := math.Sin(2 * math.Pi * 997 * float64(i) / fs)
		full[i] = v
		half[i] = 0.5 * v
	}

	fullLoud := Integrated(full, full, fs)
	halfLoud := Integrated(half, half, fs)

	if fullLoud <= halfLoud {
		t.Errorf("full-scale tone (%v LUFS) should be louder than half-scale (%v LUFS)", fullLoud, halfLoud)
	}
}

func TestIntegratedTooShortReturnsFloor(t *testing.T) {
	left := make([]float64, 100)
	right := make([]float64, 100)

	if got := Integrated(left, right, 48000); got != floorLUFS {
		t.Errorf("input shorter than one analysis block should return the floor, got %v", got)
	}
}
