package master

import "github.com/cwbudde/algo-master/dsp/core"

const (
	imagerWidthMin = 0.7
	imagerWidthMax = 1.3
)

// applyImager scales the mid/side width of the stereo image (spec §4.12).
func applyImager(left, right []float64, s ImagerSettings) {
	if !s.Enabled {
		return
	}

	width := core.Clamp(s.Width, imagerWidthMin, imagerWidthMax)

	for i := range left {
		mid := (left[i] + right[i]) / 2
		side := (left[i] - right[i]) / 2 * width

		left[i] = mid + side
		right[i] = mid - side
	}
}
