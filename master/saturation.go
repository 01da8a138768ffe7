package master

import (
	"math"

	vecmath "github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-master/dsp/core"
)

const (
	saturationDriveMin   = 0.0
	saturationDriveMax   = 1.0
	saturationDriveScale = 6.0
)

// applySaturation runs a stateless tanh soft-clip over each channel
// independently (spec §4.11).
func applySaturation(left, right []float64, s SaturationSettings) {
	if !s.Enabled {
		return
	}

	clampedDrive := core.Clamp(s.Drive, saturationDriveMin, saturationDriveMax)
	if clampedDrive <= saturationDriveMin {
		return
	}

	drive := 1 + clampedDrive*saturationDriveScale
	norm := math.Tanh(drive)

	for _, ch := range [][]float64{left, right} {
		for i, x := range ch {
			ch[i] = math.Tanh(x * drive)
		}

		vecmath.ScaleBlockInPlace(ch, 1/norm)
	}
}
