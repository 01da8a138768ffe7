package master

import "github.com/cwbudde/algo-master/dsp/audio"

// ProgressFunc receives stage-completion updates from [Process]. percent
// is in [0,100] and is called with strictly non-decreasing values within
// a single Process invocation. A ProgressFunc must never fail -- it has
// no error return and panics are the caller's responsibility, not the
// chain's.
type ProgressFunc func(percent float64, message string)

type chainStage struct {
	name    string
	percent float64
	enabled bool
	run     func(left, right []float64, sampleRate float64)
}

// Result carries per-invocation readouts produced alongside the
// processed buffer -- currently just the multiband compressor's gain
// reduction per band (spec §4.10).
type Result struct {
	Multiband MultibandResult
}

// Process runs the fixed-order mastering chain over buf and returns a
// freshly cloned, processed buffer plus its [Result]. buf is never
// mutated (spec §4.15).
//
// Stage order: HighPass -> Equalizer -> PseudoRebalance ->
// MultibandCompressor -> Saturation -> StereoImager -> Limiter ->
// LoudnessNormalizer, with an optional second Limiter safety pass when
// both the limiter and the normalizer are enabled.
func Process(buf *audio.Buffer, settings Settings, onProgress ProgressFunc) (*audio.Buffer, Result) {
	out := buf.Clone()
	sampleRate := out.SampleRate

	var result Result

	stages := []chainStage{
		{
			name: "High-pass", percent: 10, enabled: settings.HighPass.Enabled,
			run: func(l, r []float64, sr float64) { applyHighPass(l, r, sr, settings.HighPass) },
		},
		{
			name: "Equalizer", percent: 25, enabled: settings.Equalizer.Enabled,
			run: func(l, r []float64, sr float64) { applyEqualizer(l, r, sr, settings.Equalizer) },
		},
		{
			name: "Pseudo-stem rebalance", percent: 35, enabled: settings.Rebalance.Enabled,
			run: func(l, r []float64, sr float64) { applyRebalance(l, r, sr, settings.Rebalance) },
		},
		{
			name: "Multiband compressor", percent: 55, enabled: settings.Multiband.Enabled,
			run: func(l, r []float64, sr float64) { result.Multiband = applyMultiband(l, r, sr, settings.Multiband) },
		},
		{
			name: "Saturation", percent: 65, enabled: settings.Saturation.Enabled,
			run: func(l, r []float64, _ float64) { applySaturation(l, r, settings.Saturation) },
		},
		{
			name: "Stereo imager", percent: 75, enabled: settings.Imager.Enabled,
			run: func(l, r []float64, _ float64) { applyImager(l, r, settings.Imager) },
		},
		{
			name: "Limiter", percent: 85, enabled: settings.Limiter.Enabled,
			run: func(l, r []float64, sr float64) { applyLimiter(l, r, sr, settings.Limiter) },
		},
		{
			name: "Loudness normalizer", percent: 95, enabled: settings.Normalizer.Enabled,
			run: func(l, r []float64, sr float64) { applyNormalizer(l, r, sr, settings.Normalizer) },
		},
	}

	for _, stage := range stages {
		if !stage.enabled {
			continue
		}

		stage.run(out.Left, out.Right, sampleRate)
		reportProgress(onProgress, stage.percent, stage.name+" complete")
	}

	if settings.Limiter.Enabled && settings.Normalizer.Enabled {
		applyLimiter(out.Left, out.Right, sampleRate, settings.Limiter)
		reportProgress(onProgress, 100, "Limiter safety pass complete")
	} else {
		reportProgress(onProgress, 100, "Mastering chain complete")
	}

	return out, result
}

func reportProgress(fn ProgressFunc, percent float64, message string) {
	if fn == nil {
		return
	}

	fn(percent, message)
}
