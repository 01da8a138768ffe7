package loudness

import (
	"math"
	"testing"
)

func TestLinearResampleIdentityRate(t *testing.T) {
	in := []float64{1, 2, 3, 4}
	out := linearResample(in, 48000, 48000)

	for i := range in {
		if out[i] != in[i] {
			t.Errorf("index %d: expected identity resample, got %v want %v", i, out[i], in[i])
		}
	}
}

func TestLinearResampleUpsampleLength(t *testing.T) {
	in := make([]float64, 44100)
	out := linearResample(in, 44100, 48000)

	wantLen := 48000
	if math.Abs(float64(len(out)-wantLen)) > 10 {
		t.Errorf("resampled length = %d, want approximately %d", len(out), wantLen)
	}
}

func TestLinearResampleEmptyInput(t *testing.T) {
	out := linearResample(nil, 44100, 48000)
	if len(out) != 0 {
		t.Errorf("expected empty output for empty input, got length %d", len(out))
	}
}

func TestLinearResamplePreservesConstantSignal(t *testing.T) {
	in := make([]float64, 1000)
	for i := range in {
		in[i] = 0.5
	}

	out := linearResample(in, 44100, 48000)
	for i, v := range out {
		if math.Abs(v-0.5) > 1e-9 {
			t.Fatalf("index %d: constant signal should resample to the same constant, got %v", i, v)
		}
	}
}
