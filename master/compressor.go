package master

import "math"

const (
	minAttackMs     = 0.1
	minReleaseMs    = 1.0
	envelopeFloor   = 1e-9
	minCompressRatio = 1.0
)

// bandCompressor is a per-sample envelope-follower compressor with a
// gain smoother (spec §4.9). New instances are constructed per Process
// call; state is never reused across calls.
type bandCompressor struct {
	sampleRate float64

	thresholdDb float64
	ratio       float64
	attackMs    float64
	releaseMs   float64

	envelope float64
	gain     float64

	lastGainReductionDb float64
}

// newBandCompressor returns a bandCompressor with envelope 0 and gain 1.
func newBandCompressor(sampleRate float64, s BandCompressorSettings) *bandCompressor {
	return &bandCompressor{
		sampleRate:  sampleRate,
		thresholdDb: s.ThresholdDb,
		ratio:       s.Ratio,
		attackMs:    s.AttackMs,
		releaseMs:   s.ReleaseMs,
		gain:        1,
	}
}

// process compresses one sample and returns the gain-adjusted output.
func (c *bandCompressor) process(x float64) float64 {
	attack := math.Exp(-1 / (math.Max(c.attackMs, minAttackMs) * 1e-3 * c.sampleRate))
	release := math.Exp(-1 / (math.Max(c.releaseMs, minReleaseMs) * 1e-3 * c.sampleRate))

	absX := math.Abs(x)
	if absX > c.envelope {
		c.envelope = attack*c.envelope + (1-attack)*absX
	} else {
		c.envelope = release*c.envelope + (1-release)*absX
	}

	inDb := 20 * math.Log10(math.Max(c.envelope, envelopeFloor))

	outDb := inDb
	if inDb > c.thresholdDb {
		outDb = c.thresholdDb + (inDb-c.thresholdDb)/math.Max(c.ratio, minCompressRatio)
	}

	target := math.Pow(10, (outDb-inDb)/20)

	if target < c.gain {
		c.gain = attack*c.gain + (1-attack)*target
	} else {
		c.gain = release*c.gain + (1-release)*target
	}

	c.lastGainReductionDb = -20 * math.Log10(math.Max(c.gain, envelopeFloor))

	return x * c.gain
}
