package loudness

import (
	"github.com/cwbudde/algo-master/dsp/filter/biquad"
	"github.com/cwbudde/algo-master/dsp/filter/design"
)

// K-weighting filter parameters (broadcast loudness pre-filter).
const (
	kHighPassFreq  = 38.0
	kHighShelfFreq = 1500.0
	kHighShelfGain = 4.0
	kFilterQ       = design.DefaultQ
)

// kWeight applies the cascaded high-pass and high-shelf K-weighting
// filter pair to one channel, returning a freshly allocated slice. The
// input is not mutated.
func kWeight(in []float64, sampleRate float64) []float64 {
	hp := biquad.NewSection(design.HighPass(sampleRate, kHighPassFreq, kFilterQ))
	shelf := biquad.NewSection(design.HighShelf(sampleRate, kHighShelfFreq, kHighShelfGain, kFilterQ))

	out := make([]float64, len(in))
	for i, x := range in {
		out[i] = shelf.ProcessSample(hp.ProcessSample(x))
	}

	return out
}
