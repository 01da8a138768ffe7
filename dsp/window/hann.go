// Package window provides the Hann window applied before spectrum
// analysis FFTs.
package window

import (
	"math"

	vecmath "github.com/cwbudde/algo-vecmath"
)

// Hann returns an n-point Hann window: 0.5*(1 - cos(2*pi*i/(n-1))).
func Hann(n int) []float64 {
	w := make([]float64, n)
	if n == 1 {
		w[0] = 1
		return w
	}

	for i := range w {
		w[i] = 0.5 * (1 - math.Cos(2*math.Pi*float64(i)/float64(n-1)))
	}

	return w
}

// ApplyInPlace multiplies buf by coeffs element-wise, in place. Both
// slices must have the same length.
func ApplyInPlace(buf, coeffs []float64) {
	vecmath.MulBlockInPlace(buf, coeffs)
}
