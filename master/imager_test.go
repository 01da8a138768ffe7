package master

import (
	"math"
	"testing"
)

func TestApplyImagerUnityWidthIsIdentity(t *testing.T) {
	left := []float64{0.3, -0.2, 0.9}
	right := []float64{0.1, 0.4, -0.6}

	origLeft := append([]float64(nil), left...)
	origRight := append([]float64(nil), right...)

	applyImager(left, right, ImagerSettings{Enabled: true, Width: 1.0})

	for i := range left {
		if math.Abs(left[i]-origLeft[i]) > 1e-9 || math.Abs(right[i]-origRight[i]) > 1e-9 {
			t.Fatalf("index %d: width 1.0 should be an identity transform, got L=%v R=%v", i, left[i], right[i])
		}
	}
}

func TestApplyImagerZeroWidthClampsToMinimum(t *testing.T) {
	left := []float64{0.3, -0.2, 0.9}
	right := []float64{0.1, 0.4, -0.6}

	origLeft := append([]float64(nil), left...)
	origRight := append([]float64(nil), right...)

	applyImager(left, right, ImagerSettings{Enabled: true, Width: 0})

	for i := range left {
		want := (origLeft[i] - origRight[i]) * imagerWidthMin
		if math.Abs(left[i]-right[i]-want) > 1e-9 {
			t.Errorf("index %d: width 0 should clamp to %v, got L-R=%v want %v", i, imagerWidthMin, left[i]-right[i], want)
		}
	}
}

func TestApplyImagerWidthIsClampedToRange(t *testing.T) {
	left := []float64{0.3, -0.2}
	right := []float64{0.1, 0.4}

	wide := append([]float64(nil), left...)
	wideR := append([]float64(nil), right...)
	applyImager(wide, wideR, ImagerSettings{Enabled: true, Width: 5.0})

	clamped := append([]float64(nil), left...)
	clampedR := append([]float64(nil), right...)
	applyImager(clamped, clampedR, ImagerSettings{Enabled: true, Width: imagerWidthMax})

	for i := range wide {
		if math.Abs(wide[i]-clamped[i]) > 1e-9 || math.Abs(wideR[i]-clampedR[i]) > 1e-9 {
			t.Errorf("index %d: width above max should clamp to %v", i, imagerWidthMax)
		}
	}
}

func TestApplyImagerWidthScalesStereoDifferenceExactly(t *testing.T) {
	for _, width := range []float64{0.7, 1.3} {
		left := []float64{0.4, -0.1, 0.2, 0.9}
		right := []float64{0.1, 0.3, -0.2, -0.4}

		diffBefore := make([]float64, len(left))
		for i := range left {
			diffBefore[i] = left[i] - right[i]
		}

		applyImager(left, right, ImagerSettings{Enabled: true, Width: width})

		for i := range left {
			gotDiff := left[i] - right[i]
			want := diffBefore[i] * width
			if math.Abs(gotDiff-want) > 1e-9 {
				t.Errorf("width=%v index %d: L-R = %v, want %v", width, i, gotDiff, want)
			}
		}
	}
}

func TestApplyImagerDisabledIsNoOp(t *testing.T) {
	left := []float64{0.3, -0.2}
	right := []float64{0.1, 0.4}
	origLeft := append([]float64(nil), left...)
	origRight := append([]float64(nil), right...)

	applyImager(left, right, ImagerSettings{Enabled: false, Width: 1.3})

	for i := range left {
		if left[i] != origLeft[i] || right[i] != origRight[i] {
			t.Fatal("disabled imager must not modify the signal")
		}
	}
}
