package master

import (
	"github.com/cwbudde/algo-master/dsp/core"
	"github.com/cwbudde/algo-master/dsp/filter/biquad"
	"github.com/cwbudde/algo-master/dsp/filter/design"
)

const (
	highPassMinHz = 20.0
	highPassMaxHz = 120.0
	highPassQ     = 0.707
)

// applyHighPass filters left/right in place with a stereo pair of 2nd
// order high-pass biquads (spec §4.6).
func applyHighPass(left, right []float64, sampleRate float64, s HighPassSettings) {
	if !s.Enabled {
		return
	}

	cutoff := core.Clamp(s.CutoffHz, highPassMinHz, highPassMaxHz)
	coeffs := design.HighPass(sampleRate, cutoff, highPassQ)

	biquad.NewSection(coeffs).ProcessBlock(left)
	biquad.NewSection(coeffs).ProcessBlock(right)
}
