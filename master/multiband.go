package master

import (
	"github.com/cwbudde/algo-master/dsp/core"
	"github.com/cwbudde/algo-master/dsp/filter/onepole"
)

const (
	multibandLowCutMin  = 80.0
	multibandLowCutMax  = 400.0
	multibandHighCutMin = 1500.0
	multibandHighCutMax = 8000.0
)

// MultibandResult reports the gain reduction each band applied during
// the most recent applyMultiband call (spec §4.10).
type MultibandResult struct {
	LowGainReductionDb  float64
	MidGainReductionDb  float64
	HighGainReductionDb float64
}

// applyMultiband splits left/right into low/mid/high bands with one-pole
// crossovers, compresses each band, and sums the result back in place.
//
// Per spec §4.9/§9, each band's compressor is a single shared instance
// that both channels' samples flow through sequentially -- this is a
// faithful port of the source's (likely unintentional) channel-coupled
// behavior, kept as the default per the open question in spec §9.
func applyMultiband(left, right []float64, sampleRate float64, s MultibandSettings) MultibandResult {
	if !s.Enabled {
		return MultibandResult{}
	}

	lowCut := core.Clamp(s.LowCutHz, multibandLowCutMin, multibandLowCutMax)
	highCut := core.Clamp(s.HighCutHz, multibandHighCutMin, multibandHighCutMax)

	lpLowL := onepole.NewLowPass(sampleRate, lowCut)
	lpHighL := onepole.NewLowPass(sampleRate, highCut)
	lpLowR := onepole.NewLowPass(sampleRate, lowCut)
	lpHighR := onepole.NewLowPass(sampleRate, highCut)

	lowComp := newBandCompressor(sampleRate, s.Low)
	midComp := newBandCompressor(sampleRate, s.Mid)
	highComp := newBandCompressor(sampleRate, s.High)

	for i := range left {
		left[i], right[i] = processMultibandSample(
			left[i], right[i], lpLowL, lpHighL, lpLowR, lpHighR, lowComp, midComp, highComp)
	}

	return MultibandResult{
		LowGainReductionDb:  lowComp.lastGainReductionDb,
		MidGainReductionDb:  midComp.lastGainReductionDb,
		HighGainReductionDb: highComp.lastGainReductionDb,
	}
}

func processMultibandSample(
	l, r float64,
	lpLowL, lpHighL, lpLowR, lpHighR *onepole.LowPass,
	lowComp, midComp, highComp *bandCompressor,
) (float64, float64) {
	lowL := lpLowL.Process(l)
	highL := l - lpHighL.Process(l)
	midL := l - lowL - highL

	lowR := lpLowR.Process(r)
	highR := r - lpHighR.Process(r)
	midR := r - lowR - highR

	lowL = lowComp.process(lowL)
	lowR = lowComp.process(lowR)

	midL = midComp.process(midL)
	midR = midComp.process(midR)

	highL = highComp.process(highL)
	highR = highComp.process(highR)

	return lowL + midL + highL, lowR + midR + highR
}
