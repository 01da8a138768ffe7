// Package master implements the mastering chain (spec §4.6–§4.15): a
// fixed-order sequence of DSP stages driven by a [Settings] tree, plus
// the auto-preset engine (spec §4.16) that derives stage parameters from
// analysis metrics.
package master

// HighPassSettings configures the high-pass cleanup stage (spec §4.6).
type HighPassSettings struct {
	Enabled  bool
	CutoffHz float64
}

// EqualizerSettings configures the three-band low-shelf/peak/high-shelf
// cascade (spec §4.7).
type EqualizerSettings struct {
	Enabled bool

	LowShelfFreqHz float64
	LowShelfGainDb float64
	LowShelfQ      float64

	MidFreqHz float64
	MidGainDb float64
	MidQ      float64

	HighShelfFreqHz float64
	HighShelfGainDb float64
	HighShelfQ      float64
}

// RebalanceSettings configures the pseudo-stem rebalance stage (spec §4.8).
type RebalanceSettings struct {
	Enabled bool

	VocalGainDb      float64
	DrumGainDb       float64
	InstrumentGainDb float64
}

// BandCompressorSettings configures a single band of the multiband
// compressor (spec §4.9).
type BandCompressorSettings struct {
	ThresholdDb float64
	Ratio       float64
	AttackMs    float64
	ReleaseMs   float64
}

// MultibandSettings configures the three-way split compressor (spec §4.10).
type MultibandSettings struct {
	Enabled bool

	LowCutHz  float64
	HighCutHz float64

	Low  BandCompressorSettings
	Mid  BandCompressorSettings
	High BandCompressorSettings
}

// SaturationSettings configures the tanh soft-clip stage (spec §4.11).
type SaturationSettings struct {
	Enabled bool
	Drive   float64
}

// ImagerSettings configures the mid/side stereo width stage (spec §4.12).
type ImagerSettings struct {
	Enabled bool
	Width   float64
}

// LimiterSettings configures the lookahead brick-wall limiter (spec §4.13).
type LimiterSettings struct {
	Enabled     bool
	CeilingDbTp float64
	LookaheadMs float64
}

// NormalizerSettings configures the global loudness normalizer (spec §4.14).
type NormalizerSettings struct {
	Enabled    bool
	TargetLufs float64
}

// Settings is the full mastering-chain configuration tree (spec §3,
// MasteringSettings). Every numeric field carries explicit units in its
// name.
type Settings struct {
	HighPass   HighPassSettings
	Equalizer  EqualizerSettings
	Rebalance  RebalanceSettings
	Multiband  MultibandSettings
	Saturation SaturationSettings
	Imager     ImagerSettings
	Limiter    LimiterSettings
	Normalizer NormalizerSettings
}

// DefaultSettings returns the conservative default configuration: EQ
// gains 0 dB, compressor ratios 1.6-2.0, limiter ceiling -1.0 dBTP,
// loudness target -14 LUFS, stereo width 1.0, saturation drive 0.15.
// Every stage is enabled.
func DefaultSettings() Settings {
	return Settings{
		HighPass: HighPassSettings{Enabled: true, CutoffHz: 30},
		Equalizer: EqualizerSettings{
			Enabled:         true,
			LowShelfFreqHz:  120,
			LowShelfGainDb:  0,
			LowShelfQ:       0.707,
			MidFreqHz:       1500,
			MidGainDb:       0,
			MidQ:            1.0,
			HighShelfFreqHz: 8000,
			HighShelfGainDb: 0,
			HighShelfQ:      0.707,
		},
		Rebalance: RebalanceSettings{Enabled: true},
		Multiband: MultibandSettings{
			Enabled:   true,
			LowCutHz:  200,
			HighCutHz: 3000,
			Low:       BandCompressorSettings{ThresholdDb: -20, Ratio: 1.6, AttackMs: 20, ReleaseMs: 150},
			Mid:       BandCompressorSettings{ThresholdDb: -18, Ratio: 1.8, AttackMs: 12, ReleaseMs: 120},
			High:      BandCompressorSettings{ThresholdDb: -16, Ratio: 2.0, AttackMs: 6, ReleaseMs: 90},
		},
		Saturation: SaturationSettings{Enabled: true, Drive: 0.15},
		Imager:     ImagerSettings{Enabled: true, Width: 1.0},
		Limiter:    LimiterSettings{Enabled: true, CeilingDbTp: -1.0, LookaheadMs: 3.0},
		Normalizer: NormalizerSettings{Enabled: true, TargetLufs: -14.0},
	}
}
