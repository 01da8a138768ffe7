package loudness

// linearResample maps in (sampled at fromRate) onto a buffer sampled at
// toRate using linear interpolation. The output has
// len(in)*toRate/fromRate samples (truncated), and source positions are
// clamped to the last input index. Used to bring K-weighted 44.1 kHz channels to the
// 48 kHz rate the block-gating window durations assume.
func linearResample(in []float64, fromRate, toRate float64) []float64 {
	if fromRate == toRate || len(in) == 0 {
		out := make([]float64, len(in))
		copy(out, in)
		return out
	}

	n := len(in)
	outN := int(float64(n) * toRate / fromRate)
	out := make([]float64, outN)

	ratio := fromRate / toRate
	lastIdx := float64(n - 1)

	for i := range out {
		srcPos := float64(i) * ratio
		if srcPos < 0 {
			srcPos = 0
		}
		if srcPos > lastIdx {
			srcPos = lastIdx
		}

		i0 := int(srcPos)
		i1 := i0 + 1
		if i1 > n-1 {
			i1 = n - 1
		}

		frac := srcPos - float64(i0)
		out[i] = in[i0] + frac*(in[i1]-in[i0])
	}

	return out
}
