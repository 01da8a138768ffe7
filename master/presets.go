package master

import (
	"strings"

	"github.com/cwbudde/algo-master/measure/analysis"
)

// GenrePreset names a fixed mastering recipe (spec §3). Auto is the
// only preset that consults [analysis.Metrics]; every other preset
// applies a fixed set of deltas on top of [DefaultSettings].
type GenrePreset struct {
	Name        string
	Description string
	apply       func(settings *Settings, metrics analysis.Metrics, strength float64)
}

// IsAuto reports whether name matches the auto-preset engine,
// case-insensitively (spec §6).
func IsAuto(name string) bool {
	return strings.EqualFold(strings.TrimSpace(name), "Auto")
}

// Apply runs the preset's recipe against settings in place. strength is
// only meaningful for Auto; non-auto presets ignore it.
func (p GenrePreset) Apply(settings *Settings, metrics analysis.Metrics, strength float64) {
	p.apply(settings, metrics, strength)
}

// Presets lists every built-in [GenrePreset], keyed by name.
var Presets = map[string]GenrePreset{
	"Auto":     autoPreset,
	"Pop":      popPreset,
	"Hip-Hop":  hipHopPreset,
	"EDM":      edmPreset,
	"Rock":     rockPreset,
	"Acoustic": acousticPreset,
}

// LookupPreset finds a built-in preset by case-insensitive name.
func LookupPreset(name string) (GenrePreset, bool) {
	name = strings.TrimSpace(name)
	for key, preset := range Presets {
		if strings.EqualFold(key, name) {
			return preset, true
		}
	}

	return GenrePreset{}, false
}

var autoPreset = GenrePreset{
	Name:        "Auto",
	Description: "Derives every stage parameter from the source's own loudness, true-peak, crest-factor and spectrum readings.",
	apply: func(settings *Settings, metrics analysis.Metrics, strength float64) {
		DeriveAutoPreset(metrics, strength).ApplyTo(settings)
	},
}

var popPreset = GenrePreset{
	Name:        "Pop",
	Description: "Bright vocal presence with moderate, fast-reacting bus compression.",
	apply: func(settings *Settings, _ analysis.Metrics, _ float64) {
		*settings = DefaultSettings()
		settings.Equalizer.HighShelfGainDb = 1.5
		settings.Equalizer.MidGainDb = 0.8
		settings.Rebalance.VocalGainDb = 2.0
		settings.Multiband.Low.Ratio = 1.8
		settings.Multiband.Mid.Ratio = 2.0
		settings.Multiband.High.Ratio = 2.2
		settings.Imager.Width = 1.08
		settings.Normalizer.TargetLufs = -12.0
	},
}

var hipHopPreset = GenrePreset{
	Name:        "Hip-Hop",
	Description: "Heavy low end and drum presence with a high compression ceiling.",
	apply: func(settings *Settings, _ analysis.Metrics, _ float64) {
		*settings = DefaultSettings()
		settings.HighPass.CutoffHz = 24
		settings.Equalizer.LowShelfGainDb = 2.2
		settings.Rebalance.DrumGainDb = 2.5
		settings.Multiband.LowCutHz = 150
		settings.Multiband.Low.ThresholdDb = -22
		settings.Multiband.Low.Ratio = 2.4
		settings.Multiband.Low.AttackMs = 25
		settings.Saturation.Drive = 0.22
		settings.Normalizer.TargetLufs = -9.0
	},
}

var edmPreset = GenrePreset{
	Name:        "EDM",
	Description: "Wide, saturated and loud with aggressive multiband limiting.",
	apply: func(settings *Settings, _ analysis.Metrics, _ float64) {
		*settings = DefaultSettings()
		settings.Equalizer.LowShelfGainDb = 1.2
		settings.Equalizer.HighShelfGainDb = 2.0
		settings.Multiband.Low.Ratio = 2.6
		settings.Multiband.Mid.Ratio = 2.4
		settings.Multiband.High.Ratio = 2.6
		settings.Saturation.Drive = 0.28
		settings.Imager.Width = 1.18
		settings.Limiter.CeilingDbTp = -0.8
		settings.Normalizer.TargetLufs = -9.0
	},
}

var rockPreset = GenrePreset{
	Name:        "Rock",
	Description: "Forward mids and controlled low end for guitar-driven mixes.",
	apply: func(settings *Settings, _ analysis.Metrics, _ float64) {
		*settings = DefaultSettings()
		settings.Equalizer.MidFreqHz = 900
		settings.Equalizer.MidGainDb = 1.2
		settings.Equalizer.LowShelfGainDb = -0.8
		settings.Multiband.Mid.ThresholdDb = -16
		settings.Multiband.Mid.Ratio = 2.1
		settings.Saturation.Drive = 0.20
		settings.Normalizer.TargetLufs = -12.0
	},
}

var acousticPreset = GenrePreset{
	Name:        "Acoustic",
	Description: "Gentle, low-coloration mastering that preserves dynamics.",
	apply: func(settings *Settings, _ analysis.Metrics, _ float64) {
		*settings = DefaultSettings()
		settings.Equalizer.LowShelfGainDb = 0
		settings.Equalizer.HighShelfGainDb = 0.5
		settings.Multiband.Low.Ratio = 1.3
		settings.Multiband.Mid.Ratio = 1.4
		settings.Multiband.High.Ratio = 1.5
		settings.Multiband.Low.ReleaseMs = 220
		settings.Saturation.Drive = 0.05
		settings.Imager.Width = 1.0
		settings.Normalizer.TargetLufs = -16.0
	},
}
