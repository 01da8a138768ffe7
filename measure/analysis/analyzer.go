package analysis

import (
	"math"

	vecmath "github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-master/dsp/audio"
	"github.com/cwbudde/algo-master/dsp/core"
	"github.com/cwbudde/algo-master/dsp/fft"
	"github.com/cwbudde/algo-master/dsp/truepeak"
	"github.com/cwbudde/algo-master/dsp/window"
	"github.com/cwbudde/algo-master/measure/loudness"
)

const (
	spectrumWindowLen = 2048
	spectrumBinsUsed  = spectrumWindowLen / 2

	minLinearFloor = 1e-9

	degenerateLUFS      = -70.0
	degenerateTruePeak  = -90.0
	degenerateRMS       = -90.0
	degenerateCrestFact = 0.0
)

// Analyze runs the full metric suite over buf: integrated loudness,
// true-peak estimate, RMS, crest factor, and a normalized spectrum
// snapshot (spec §4.5). Buffers with fewer than 2 samples return the
// degenerate sentinel metrics rather than dividing by zero.
func Analyze(buf *audio.Buffer) Metrics {
	if buf.Len() < 2 {
		return Metrics{
			IntegratedLUFS: degenerateLUFS,
			TruePeakDBTP:   degenerateTruePeak,
			RMSDBFS:        degenerateRMS,
			CrestFactorDB:  degenerateCrestFact,
		}
	}

	integrated := loudness.Integrated(buf.Left, buf.Right, buf.SampleRate)
	peakLinear := truepeak.Estimate(buf.Left, buf.Right)

	rmsLinear := rms(buf.Left, buf.Right)
	samplePeak := maxAbsSample(buf.Left, buf.Right)

	crest := 0.0
	if rmsLinear > 0 {
		crest = core.LinearToDB(samplePeak/rmsLinear, minLinearFloor)
	}

	return Metrics{
		IntegratedLUFS: integrated,
		TruePeakDBTP:   core.LinearToDB(peakLinear, minLinearFloor),
		RMSDBFS:        core.LinearToDB(rmsLinear, minLinearFloor),
		CrestFactorDB:  crest,
		Spectrum:       spectrumSnapshot(buf.Left, buf.Right),
	}
}

func rms(left, right []float64) float64 {
	sum := vecmath.DotProduct(left, left) + vecmath.DotProduct(right, right)

	return math.Sqrt(sum / (2 * float64(len(left))))
}

func maxAbsSample(left, right []float64) float64 {
	return math.Max(vecmath.MaxAbs(left), vecmath.MaxAbs(right))
}

// spectrumSnapshot builds the 128-bin normalized magnitude spectrum of a
// center-aligned, Hann-windowed 2048-sample mono-downmix window.
func spectrumSnapshot(left, right []float64) [SpectrumBins]float64 {
	mono := centeredMonoWindow(left, right, spectrumWindowLen)

	win := window.Hann(spectrumWindowLen)
	window.ApplyInPlace(mono, win)

	cplx := make([]complex128, spectrumWindowLen)
	for i, v := range mono {
		cplx[i] = complex(v, 0)
	}

	if err := fft.Forward(cplx); err != nil {
		return [SpectrumBins]float64{}
	}

	re := make([]float64, spectrumBinsUsed)
	im := make([]float64, spectrumBinsUsed)
	for i := range re {
		re[i] = real(cplx[i])
		im[i] = imag(cplx[i])
	}

	mags := make([]float64, spectrumBinsUsed)
	vecmath.Magnitude(mags, re, im)

	var out [SpectrumBins]float64
	for i := range out {
		srcIdx := int(math.Round(float64(i) * float64(spectrumBinsUsed-1) / float64(SpectrumBins-1)))
		out[i] = mags[srcIdx]
	}

	maxMag := 0.0
	for _, v := range out {
		maxMag = math.Max(maxMag, v)
	}

	if maxMag > 0 {
		for i := range out {
			out[i] /= maxMag
		}
	}

	return out
}

// centeredMonoWindow extracts a windowLen mono-downmix slice centered on
// the buffer midpoint, zero-padding if the buffer is shorter than
// windowLen.
func centeredMonoWindow(left, right []float64, windowLen int) []float64 {
	n := len(left)
	out := make([]float64, windowLen)

	if n <= windowLen {
		offset := (windowLen - n) / 2
		for i := range n {
			out[offset+i] = (left[i] + right[i]) / 2
		}

		return out
	}

	start := n/2 - windowLen/2
	if start < 0 {
		start = 0
	}
	if start > n-windowLen {
		start = n - windowLen
	}

	for i := range windowLen {
		out[i] = (left[start+i] + right[start+i]) / 2
	}

	return out
}
