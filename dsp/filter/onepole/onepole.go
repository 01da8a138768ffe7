// Package onepole provides a single-sample one-pole low-pass smoothing
// filter, used by the multiband crossover to split a signal into bands
// without the ringing a biquad crossover would introduce.
package onepole

import "math"

// LowPass is a one-pole smoothing filter: y[n] = y[n-1] + a*(x[n] - y[n-1])
// with a = 1 - exp(-2*pi*fc/fs).
type LowPass struct {
	alpha float64
	state float64
}

// NewLowPass returns a LowPass configured for cutoff fc at sample rate fs.
func NewLowPass(fs, fc float64) *LowPass {
	return &LowPass{alpha: 1 - math.Exp(-2*math.Pi*fc/fs)}
}

// Process filters one sample and returns the smoothed output.
func (f *LowPass) Process(x float64) float64 {
	f.state += f.alpha * (x - f.state)

	return f.state
}

// Reset clears the filter state to zero.
func (f *LowPass) Reset() {
	f.state = 0
}
