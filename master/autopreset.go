package master

import (
	"math"

	"github.com/cwbudde/algo-master/dsp/core"
	"github.com/cwbudde/algo-master/measure/analysis"
)

// AutoPresetSnapshot is the flattened set of every numeric parameter the
// auto engine derives from [analysis.Metrics] (spec §4.16). A single
// [AutoPresetSnapshot.ApplyTo] call copies it into a [Settings] tree.
type AutoPresetSnapshot struct {
	HighPassCutoffHz float64

	LowShelfFreqHz float64
	LowShelfGainDb float64
	LowShelfQ      float64

	MidBellFreqHz float64
	MidBellGainDb float64
	MidBellQ      float64

	HighShelfFreqHz float64
	HighShelfGainDb float64
	HighShelfQ      float64

	LowThresholdDb, LowRatio, LowAttackMs, LowReleaseMs     float64
	MidThresholdDb, MidRatio, MidAttackMs, MidReleaseMs     float64
	HighThresholdDb, HighRatio, HighAttackMs, HighReleaseMs float64

	SaturationDrive  float64
	StereoWidth      float64
	LimiterCeiling   float64
	LimiterLookahead float64
	TargetLufs       float64
}

// Auto-preset parameter ranges (spec §4.16).
const (
	hpCutoffMin, hpCutoffMax = 20.0, 40.0

	lowShelfFreqMin, lowShelfFreqMax   = 80.0, 180.0
	midBellFreqMin, midBellFreqMax     = 700.0, 2800.0
	highShelfFreqMin, highShelfFreqMax = 6500.0, 12000.0

	shelfGainRange   = 2.8
	midBellGainMin   = -1.2
	midBellGainMax   = 2.2
	highShelfGainMin = -2.4
	highShelfGainMax = 2.6

	shelfQMin, shelfQMax     = 0.55, 1.20
	midBellQMin, midBellQMax = 1.0, 2.2

	thresholdMin, thresholdMax = -30.0, -12.0
	thresholdLowOffset         = -1.5
	thresholdHighOffset        = 1.5

	lowRatioMin, lowRatioMax   = 1.2, 3.2
	midRatioMin, midRatioMax   = 1.2, 3.0
	highRatioMin, highRatioMax = 1.1, 2.8

	attackBase                            = 18.0
	attackLowOffsetMs, attackHighOffsetMs = 6.0, -4.0
	attackFloorMs, attackCeilMs           = 1.0, 40.0

	releaseBase                             = 150.0
	releaseLowOffsetMs, releaseHighOffsetMs = 35.0, -20.0
	releaseFloorMs, releaseCeilMs           = 30.0, 260.0

	saturationDriveMinAuto, saturationDriveMaxAuto = 0.0, 0.35
	stereoWidthMinAuto, stereoWidthMaxAuto         = 0.90, 1.14
	limiterCeilingMinAuto, limiterCeilingMaxAuto    = -1.8, -0.8
	limiterLookaheadMinAuto, limiterLookaheadMaxAuto = 1.2, 8.0
)

var targetLufsOptions = [...]float64{-16, -14, -12, -9}

// DeriveAutoPreset maps analysis metrics and a user strength knob
// (clamped to [0.5, 2.0]) to a complete, bit-for-bit deterministic
// parameter snapshot (spec §4.16). Every field is clamped to its
// declared range regardless of how extreme the input metrics are.
func DeriveAutoPreset(metrics analysis.Metrics, strength float64) AutoPresetSnapshot {
	s := core.Clamp(strength, 0.5, 2.0)

	lowEnergy, midEnergy, highEnergy := spectrumBandEnergies(metrics.Spectrum)

	lowToMid := safeRatio(lowEnergy, midEnergy)
	highToMid := safeRatio(highEnergy, midEnergy)
	avgEnergy := (lowEnergy + midEnergy + highEnergy) / 3
	midToAvg := safeRatio(midEnergy, avgEnergy)

	dynamics := unitClamp((metrics.CrestFactorDB - 8) / 8)
	loudnessLift := unitClamp((-12 - metrics.IntegratedLUFS) / 12)
	compressionIntensity := unitClamp(0.35*dynamics+0.40*loudnessLift) * (0.8 + 0.35*(s-1))

	bassHeavy := unitClamp((lowToMid - 1.10) / 0.70)
	bassLight := unitClamp((0.92 - lowToMid) / 0.50)
	bright := unitClamp((highToMid - 1.08) / 0.55)
	dark := unitClamp((0.90 - highToMid) / 0.45)
	midHole := unitClamp((0.95 - midToAvg) / 0.35)
	peakRisk := unitClamp((metrics.TruePeakDBTP + 0.5) / 0.8)

	highPassCutoffHz := core.Clamp(24+bassLight*9*s+peakRisk*4*s-bassHeavy*6, hpCutoffMin, hpCutoffMax)

	lowShelfFreqHz := core.Clamp(120+(bassHeavy-bassLight)*40, lowShelfFreqMin, lowShelfFreqMax)
	midBellFreqHz := core.Clamp(1500+midHole*800-(bright-dark)*300, midBellFreqMin, midBellFreqMax)
	highShelfFreqHz := core.Clamp(9000+(bright-dark)*1500, highShelfFreqMin, highShelfFreqMax)

	lowShelfGainDb := core.Clamp((bassLight*1.4-bassHeavy*1.0)*s, -shelfGainRange, shelfGainRange)
	midBellGainDb := core.Clamp(midHole*1.2*s, midBellGainMin, midBellGainMax)
	highShelfGainDb := core.Clamp((dark*1.3-bright*0.9)*s, highShelfGainMin, highShelfGainMax)

	lowShelfQ := core.Clamp(0.85-bassHeavy*0.30+bassLight*0.20, shelfQMin, shelfQMax)
	highShelfQ := core.Clamp(0.85-bright*0.30+dark*0.20, shelfQMin, shelfQMax)
	midBellQ := core.Clamp(midBellQMin+midHole*(midBellQMax-midBellQMin), midBellQMin, midBellQMax)

	base := core.Clamp(metrics.RMSDBFS+8.5-compressionIntensity*2.3*s, thresholdMin, thresholdMax)

	lowRatio := core.Clamp(lowRatioMin+compressionIntensity*s*1.0, lowRatioMin, lowRatioMax)
	midRatio := core.Clamp(midRatioMin+compressionIntensity*s*0.9, midRatioMin, midRatioMax)
	highRatio := core.Clamp(highRatioMin+compressionIntensity*s*0.85, highRatioMin, highRatioMax)

	attackBaseMs := core.Clamp(attackBase-dynamics*10, attackFloorMs, attackCeilMs)
	releaseBaseMs := core.Clamp(releaseBase-dynamics*80, releaseFloorMs, releaseCeilMs)

	saturationDrive := core.Clamp(0.15+compressionIntensity*0.30-peakRisk*0.10, saturationDriveMinAuto, saturationDriveMaxAuto)
	stereoWidth := core.Clamp(1.0+(bright-dark)*0.12+(bassLight-bassHeavy)*0.05, stereoWidthMinAuto, stereoWidthMaxAuto)
	limiterCeiling := core.Clamp(-1.0-peakRisk*0.60, limiterCeilingMinAuto, limiterCeilingMaxAuto)
	limiterLookahead := core.Clamp(3.0+compressionIntensity*3.0, limiterLookaheadMinAuto, limiterLookaheadMaxAuto)

	return AutoPresetSnapshot{
		HighPassCutoffHz: highPassCutoffHz,

		LowShelfFreqHz: lowShelfFreqHz,
		LowShelfGainDb: lowShelfGainDb,
		LowShelfQ:      lowShelfQ,

		MidBellFreqHz: midBellFreqHz,
		MidBellGainDb: midBellGainDb,
		MidBellQ:      midBellQ,

		HighShelfFreqHz: highShelfFreqHz,
		HighShelfGainDb: highShelfGainDb,
		HighShelfQ:      highShelfQ,

		LowThresholdDb: base + thresholdLowOffset, LowRatio: lowRatio,
		LowAttackMs: attackBaseMs + attackLowOffsetMs, LowReleaseMs: releaseBaseMs + releaseLowOffsetMs,

		MidThresholdDb: base, MidRatio: midRatio,
		MidAttackMs: attackBaseMs, MidReleaseMs: releaseBaseMs,

		HighThresholdDb: base + thresholdHighOffset, HighRatio: highRatio,
		HighAttackMs: attackBaseMs + attackHighOffsetMs, HighReleaseMs: releaseBaseMs + releaseHighOffsetMs,

		SaturationDrive:  saturationDrive,
		StereoWidth:      stereoWidth,
		LimiterCeiling:   limiterCeiling,
		LimiterLookahead: limiterLookahead,
		TargetLufs:       nearestTargetLufs(metrics.IntegratedLUFS),
	}
}

// ApplyTo copies the snapshot into settings and force-enables every
// stage (spec §4.16).
func (snap AutoPresetSnapshot) ApplyTo(settings *Settings) {
	settings.HighPass = HighPassSettings{Enabled: true, CutoffHz: snap.HighPassCutoffHz}

	settings.Equalizer = EqualizerSettings{
		Enabled:         true,
		LowShelfFreqHz:  snap.LowShelfFreqHz,
		LowShelfGainDb:  snap.LowShelfGainDb,
		LowShelfQ:       snap.LowShelfQ,
		MidFreqHz:       snap.MidBellFreqHz,
		MidGainDb:       snap.MidBellGainDb,
		MidQ:            snap.MidBellQ,
		HighShelfFreqHz: snap.HighShelfFreqHz,
		HighShelfGainDb: snap.HighShelfGainDb,
		HighShelfQ:      snap.HighShelfQ,
	}

	settings.Multiband.Enabled = true
	settings.Multiband.Low = BandCompressorSettings{
		ThresholdDb: snap.LowThresholdDb, Ratio: snap.LowRatio,
		AttackMs: snap.LowAttackMs, ReleaseMs: snap.LowReleaseMs,
	}
	settings.Multiband.Mid = BandCompressorSettings{
		ThresholdDb: snap.MidThresholdDb, Ratio: snap.MidRatio,
		AttackMs: snap.MidAttackMs, ReleaseMs: snap.MidReleaseMs,
	}
	settings.Multiband.High = BandCompressorSettings{
		ThresholdDb: snap.HighThresholdDb, Ratio: snap.HighRatio,
		AttackMs: snap.HighAttackMs, ReleaseMs: snap.HighReleaseMs,
	}

	settings.Saturation = SaturationSettings{Enabled: true, Drive: snap.SaturationDrive}
	settings.Imager = ImagerSettings{Enabled: true, Width: snap.StereoWidth}
	settings.Limiter = LimiterSettings{Enabled: true, CeilingDbTp: snap.LimiterCeiling, LookaheadMs: snap.LimiterLookahead}
	settings.Normalizer = NormalizerSettings{Enabled: true, TargetLufs: snap.TargetLufs}

	settings.Rebalance.Enabled = true
}

func spectrumBandEnergies(spectrum [analysis.SpectrumBins]float64) (low, mid, high float64) {
	n := len(spectrum)
	lowEnd := int(math.Round(0.20 * float64(n)))
	midEnd := int(math.Round(0.70 * float64(n)))

	low = meanRange(spectrum[:], 0, lowEnd)
	mid = meanRange(spectrum[:], lowEnd, midEnd)
	high = meanRange(spectrum[:], midEnd, n)

	return low, mid, high
}

func meanRange(values []float64, start, end int) float64 {
	if end <= start {
		return 0
	}

	sum := 0.0
	for i := start; i < end; i++ {
		sum += values[i]
	}

	return sum / float64(end-start)
}

func safeRatio(a, b float64) float64 {
	if b <= 1e-12 {
		return 1
	}

	return a / b
}

func unitClamp(v float64) float64 {
	return core.Clamp(v, 0, 1)
}

func nearestTargetLufs(integrated float64) float64 {
	best := targetLufsOptions[0]
	bestDist := math.Abs(integrated - best)

	for _, candidate := range targetLufsOptions[1:] {
		d := math.Abs(integrated - candidate)
		if d < bestDist {
			best = candidate
			bestDist = d
		}
	}

	return best
}
