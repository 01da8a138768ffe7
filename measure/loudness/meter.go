// Package loudness implements the block-gated K-weighted integrated
// loudness measurement (spec §4.4): a broadcast-standard loudness meter
// built from two cascaded biquad K-weighting sections, 400 ms analysis
// blocks with 100 ms hop, and a two-stage (absolute then relative) gate.
package loudness

import (
	"math"

	"github.com/cwbudde/algo-master/dsp/core"
)

const (
	targetRate    = 48000.0
	blockSeconds  = 0.4
	hopSeconds    = 0.1
	absoluteGate  = -70.0
	relativeDelta = -10.0
	floorLUFS     = -70.0
	powerFloor    = 1e-12
)

// Integrated computes the K-weighted, block-gated integrated loudness of
// a stereo signal (spec §4.4). Returns -70 LUFS if no block survives the
// absolute gate (including empty or too-short input).
func Integrated(left, right []float64, sampleRate float64) float64 {
	if len(left) == 0 || len(right) == 0 {
		return floorLUFS
	}

	kL := kWeight(left, sampleRate)
	kR := kWeight(right, sampleRate)

	if sampleRate != targetRate {
		kL = linearResample(kL, sampleRate, targetRate)
		kR = linearResample(kR, sampleRate, targetRate)
	}

	blockSamples := int(math.Round(blockSeconds * targetRate))
	hopSamples := int(math.Round(hopSeconds * targetRate))

	n := len(kL)
	if n < blockSamples {
		return floorLUFS
	}

	var blocks []float64
	for start := 0; start+blockSamples <= n; start += hopSamples {
		blocks = append(blocks, blockMeanSquare(kL[start:start+blockSamples], kR[start:start+blockSamples]))
	}

	var absGated []float64
	for _, ms := range blocks {
		if core.PowerToLUFS(ms, powerFloor) > absoluteGate {
			absGated = append(absGated, ms)
		}
	}

	if len(absGated) == 0 {
		return floorLUFS
	}

	absIntegrated := core.PowerToLUFS(meanOf(absGated), powerFloor)

	relativeThreshold := absIntegrated + relativeDelta

	var relGated []float64
	for _, ms := range absGated {
		if core.PowerToLUFS(ms, powerFloor) > relativeThreshold {
			relGated = append(relGated, ms)
		}
	}

	if len(relGated) == 0 {
		return absIntegrated
	}

	return core.PowerToLUFS(meanOf(relGated), powerFloor)
}

func blockMeanSquare(l, r []float64) float64 {
	sum := 0.0
	for i := range l {
		sum += (l[i]*l[i] + r[i]*r[i]) / 2
	}

	return sum / float64(len(l))
}

func meanOf(values []float64) float64 {
	sum := 0.0
	for _, v := range values {
		sum += v
	}

	return sum / float64(len(values))
}
