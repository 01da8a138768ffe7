package master

import (
	"math"

	"github.com/cwbudde/algo-master/dsp/core"
	"github.com/cwbudde/algo-master/dsp/truepeak"
)

const (
	limiterLookaheadMinMs = 0.5
	limiterLookaheadMaxMs = 10.0
	limiterReleaseSeconds = 0.05
)

// applyLimiter runs the lookahead brick-wall limiter in place (spec
// §4.13): a forward peak scan drives a smoothed gain curve, followed by
// a single constant safety gain if the oversampled true peak still
// exceeds the ceiling after the main pass.
func applyLimiter(left, right []float64, sampleRate float64, s LimiterSettings) {
	if !s.Enabled {
		return
	}

	ceiling := core.DBToLinear(s.CeilingDbTp)
	lookaheadMs := core.Clamp(s.LookaheadMs, limiterLookaheadMinMs, limiterLookaheadMaxMs)
	lookahead := int(math.Round(lookaheadMs * 1e-3 * sampleRate))
	if lookahead < 1 {
		lookahead = 1
	}

	release := math.Exp(-1 / (limiterReleaseSeconds * sampleRate))

	n := len(left)
	gain := 1.0

	for i := range n {
		end := i + lookahead
		if end > n-1 {
			end = n - 1
		}

		peak := 0.0
		for j := i; j <= end; j++ {
			peak = math.Max(peak, math.Max(math.Abs(left[j]), math.Abs(right[j])))
		}

		desired := 1.0
		if peak > ceiling {
			desired = ceiling / peak
		}

		if desired < gain {
			gain = desired
		} else {
			gain = release*gain + (1-release)*desired
		}

		left[i] *= gain
		right[i] *= gain
	}

	finalPeak := truepeak.Estimate(left, right)
	if finalPeak > ceiling {
		safety := ceiling / finalPeak
		for i := range left {
			left[i] *= safety
			right[i] *= safety
		}
	}
}
