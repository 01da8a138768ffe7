package master

import (
	vecmath "github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-master/dsp/core"
	"github.com/cwbudde/algo-master/measure/loudness"
)

// applyNormalizer applies a single global linear gain so the buffer's
// integrated loudness matches the target (spec §4.14).
//
// The limiter's post-normalization safety pass is not optional in
// practice (spec §9): a quiet buffer with loud transients can have its
// peaks pushed above the ceiling by this stage's gain, and only the
// chain's second limiter pass restores the ceiling guarantee.
func applyNormalizer(left, right []float64, sampleRate float64, s NormalizerSettings) {
	if !s.Enabled {
		return
	}

	current := loudness.Integrated(left, right, sampleRate)
	gainDb := s.TargetLufs - current
	gain := core.DBToLinear(gainDb)

	vecmath.ScaleBlockInPlace(left, gain)
	vecmath.ScaleBlockInPlace(right, gain)
}
