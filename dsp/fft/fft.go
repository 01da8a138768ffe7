package fft

import (
	"fmt"
	"math"
	"math/bits"
	"math/cmplx"
)

// Forward computes the in-place forward FFT of data. len(data) must be a
// power of two, or Forward returns an error and leaves data untouched.
func Forward(data []complex128) error {
	n := len(data)
	if n == 0 || n&(n-1) != 0 {
		return fmt.Errorf("fft: length %d is not a power of two", n)
	}

	bitReverse(data)

	for size := 2; size <= n; size <<= 1 {
		half := size / 2
		angleStep := -2 * math.Pi / float64(size)

		for start := 0; start < n; start += size {
			for k := range half {
				twiddle := cmplx.Rect(1, angleStep*float64(k))
				even := data[start+k]
				odd := data[start+k+half] * twiddle

				data[start+k] = even + odd
				data[start+k+half] = even - odd
			}
		}
	}

	return nil
}

// bitReverse permutes data into bit-reversed index order in place.
func bitReverse(data []complex128) {
	n := len(data)
	logN := bits.TrailingZeros(uint(n))

	for i := range n {
		j := int(bits.Reverse(uint(i)) >> (bits.UintSize - logN))
		if j > i {
			data[i], data[j] = data[j], data[i]
		}
	}
}
