package master

import (
	"github.com/cwbudde/algo-master/dsp/core"
	"github.com/cwbudde/algo-master/dsp/filter/biquad"
	"github.com/cwbudde/algo-master/dsp/filter/design"
)

const (
	rebalanceGainMin    = -6.0
	rebalanceGainMax    = 6.0
	rebalanceNoOpDb     = 0.01
	rebalanceVocalQ     = 1.0
	rebalanceDrumQ      = 1.0
	rebalanceInstrumQ   = 1.0
	vocalFreqA, vocalFreqB           = 2800.0, 1200.0
	vocalWeightA, vocalWeightB       = 0.70, 0.35
	drumFreqA, drumFreqB             = 95.0, 4200.0
	drumWeightA, drumWeightB         = 0.70, 0.35
	instrumentFreqA, instrumentFreqB = 650.0, 5200.0
	instrumentWeightA, instrumentWeightB = 0.60, 0.30
)

// applyRebalance emulates a three-stem weighting (vocal/drum/instrument)
// using six fixed-frequency peaking biquads per channel (spec §4.8). If
// all three gains are below the no-op threshold, the stage does nothing.
func applyRebalance(left, right []float64, sampleRate float64, s RebalanceSettings) {
	if !s.Enabled {
		return
	}

	vocalDb := core.Clamp(s.VocalGainDb, rebalanceGainMin, rebalanceGainMax)
	drumDb := core.Clamp(s.DrumGainDb, rebalanceGainMin, rebalanceGainMax)
	instrumentDb := core.Clamp(s.InstrumentGainDb, rebalanceGainMin, rebalanceGainMax)

	if absLess(vocalDb, rebalanceNoOpDb) && absLess(drumDb, rebalanceNoOpDb) && absLess(instrumentDb, rebalanceNoOpDb) {
		return
	}

	coeffs := []struct {
		freq, q, gainDb float64
	}{
		{vocalFreqA, rebalanceVocalQ, vocalDb * vocalWeightA},
		{vocalFreqB, rebalanceVocalQ, vocalDb * vocalWeightB},
		{drumFreqA, rebalanceDrumQ, drumDb * drumWeightA},
		{drumFreqB, rebalanceDrumQ, drumDb * drumWeightB},
		{instrumentFreqA, rebalanceInstrumQ, instrumentDb * instrumentWeightA},
		{instrumentFreqB, rebalanceInstrumQ, instrumentDb * instrumentWeightB},
	}

	for _, ch := range [][]float64{left, right} {
		for _, c := range coeffs {
			biquad.NewSection(design.Peaking(sampleRate, c.freq, c.gainDb, c.q)).ProcessBlock(ch)
		}
	}
}

func absLess(v, threshold float64) bool {
	if v < 0 {
		v = -v
	}

	return v < threshold
}
