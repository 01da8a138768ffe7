// Package truepeak estimates inter-sample peak by 4x linear oversampling,
// shared by the analyzer (spec §4.5) and the brick-wall limiter's
// post-pass safety check (spec §4.13).
package truepeak

import (
	"math"

	vecmath "github.com/cwbudde/algo-vecmath"
)

const oversample = 4

// Estimate returns the maximum absolute value across both channels after
// 4x linear interpolation between each pair of adjacent samples.
func Estimate(left, right []float64) float64 {
	peak := 0.0
	peak = math.Max(peak, channelPeak(left))
	peak = math.Max(peak, channelPeak(right))

	return peak
}

func channelPeak(ch []float64) float64 {
	peak := vecmath.MaxAbs(ch)
	n := len(ch)

	for i := range n {
		if i+1 >= n {
			continue
		}

		a, b := ch[i], ch[i+1]
		for step := 1; step < oversample; step++ {
			frac := float64(step) / float64(oversample)
			interp := a + frac*(b-a)
			peak = math.Max(peak, math.Abs(interp))
		}
	}

	return peak
}
