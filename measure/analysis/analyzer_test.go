package analysis

import (
	"math"
	"testing"

	"github.com/cwbudde/algo-master/dsp/audio"
)

func TestAnalyzeDegenerateInput(t *testing.T) {
	buf, err := audio.NewBuffer([]float64{0}, []float64{0}, 48000)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got := Analyze(buf)

	if got.IntegratedLUFS != degenerateLUFS {
		t.Errorf("IntegratedLUFS = %v, want %v", got.IntegratedLUFS, degenerateLUFS)
	}

	if got.TruePeakDBTP != degenerateTruePeak {
		t.Errorf("TruePeakDBTP = %v, want %v", got.TruePeakDBTP, degenerateTruePeak)
	}
}

func TestAnalyzeSilence(t *testing.T) {
	n := 48000 * 2
	buf, err := audio.NewBuffer(make([]float64, n), make([]float64, n), 48000)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got := Analyze(buf)

	if got.IntegratedLUFS != -70.0 {
		t.Errorf("silent signal should report the loudness floor, got %v", got.IntegratedLUFS)
	}
}

func TestAnalyzeSpectrumNormalizedToUnity(t *testing.T) {
	n := 4096
	left := make([]float64, n)
	right := make([]float64, n)
	fs := 48000.0

	for i := range left {
		v := math.Sin(2 * math.Pi * 1000 * float64(i) / fs)
		left[i] = v
		right[i] = v
	}

	buf, err := audio.NewBuffer(left, right, 48000)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got := Analyze(buf)

	maxMag := 0.0
	for _, v := range got.Spectrum {
		maxMag = math.Max(maxMag, v)
		if v < -1e-9 {
			t.Fatalf("spectrum magnitude must not be negative, got %v", v)
		}
	}

	if math.Abs(maxMag-1.0) > 1e-9 {
		t.Errorf("normalized spectrum should peak at 1.0, got %v", maxMag)
	}
}

func TestAnalyzeFullScaleTruePeakNearZeroDbTp(t *testing.T) {
	n := 48000
	fs := 48000.0
	left := make([]float64, n)
	right := make([]float64, n)

	for i := range left {
		v := math.Sin(2 * math.Pi * 1000 * float64(i) / fs)
		left[i] = v
		right[i] = v
	}

	buf, err := audio.NewBuffer(left, right, 48000)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got := Analyze(buf)

	if got.TruePeakDBTP < -1 || got.TruePeakDBTP > 1 {
		t.Errorf("full-scale sine true peak should be close to 0 dBTP, got %v", got.TruePeakDBTP)
	}
}
