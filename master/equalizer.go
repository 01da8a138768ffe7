package master

import (
	"github.com/cwbudde/algo-master/dsp/core"
	"github.com/cwbudde/algo-master/dsp/filter/biquad"
	"github.com/cwbudde/algo-master/dsp/filter/design"
)

const (
	eqShelfQMin = 0.3
	eqShelfQMax = 3.0
	eqBellQMin  = 0.3
	eqBellQMax  = 6.0
)

// applyEqualizer filters left/right in place through a per-channel
// low-shelf -> peaking -> high-shelf cascade (spec §4.7). Center
// frequencies and gains pass through unchanged; only Q is clamped.
func applyEqualizer(left, right []float64, sampleRate float64, s EqualizerSettings) {
	if !s.Enabled {
		return
	}

	lowQ := core.Clamp(s.LowShelfQ, eqShelfQMin, eqShelfQMax)
	midQ := core.Clamp(s.MidQ, eqBellQMin, eqBellQMax)
	highQ := core.Clamp(s.HighShelfQ, eqShelfQMin, eqShelfQMax)

	low := design.LowShelf(sampleRate, s.LowShelfFreqHz, s.LowShelfGainDb, lowQ)
	mid := design.Peaking(sampleRate, s.MidFreqHz, s.MidGainDb, midQ)
	high := design.HighShelf(sampleRate, s.HighShelfFreqHz, s.HighShelfGainDb, highQ)

	for _, ch := range [][]float64{left, right} {
		biquad.NewSection(low).ProcessBlock(ch)
		biquad.NewSection(mid).ProcessBlock(ch)
		biquad.NewSection(high).ProcessBlock(ch)
	}
}
