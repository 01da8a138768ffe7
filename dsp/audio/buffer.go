// Package audio defines the stereo sample container shared by the
// analysis and mastering packages. A [Buffer] is immutable after
// construction: stages that transform a buffer always produce a new one
// and never write back into the one they were given.
package audio

import (
	"errors"
	"fmt"
)

// ErrUnsupportedSampleRate is returned by [NewBuffer] when the sample rate
// is not one of the two rates the core supports.
var ErrUnsupportedSampleRate = errors.New("audio: unsupported sample rate")

// Buffer is a deinterleaved stereo sample container. Left and Right
// always have equal length; Buffer is safe to read concurrently but a
// single instance must not be mutated once constructed except through
// [Buffer.Clone]'s result.
type Buffer struct {
	Left, Right []float64
	SampleRate  float64
}

// NewBuffer constructs a Buffer from deinterleaved channel slices. A
// shorter side truncates both, per the length invariant. The sample rate
// must be 44100 or 48000; any other value is a constructor-time
// rejection (spec §6, §7 input-shape violation).
func NewBuffer(left, right []float64, sampleRate float64) (*Buffer, error) {
	if sampleRate != 44100 && sampleRate != 48000 {
		return nil, fmt.Errorf("%w: %g", ErrUnsupportedSampleRate, sampleRate)
	}

	n := len(left)
	if len(right) < n {
		n = len(right)
	}

	return &Buffer{
		Left:       left[:n],
		Right:      right[:n],
		SampleRate: sampleRate,
	}, nil
}

// Len returns the number of stereo frames.
func (b *Buffer) Len() int {
	if b == nil {
		return 0
	}

	return len(b.Left)
}

// Clone returns a deep copy with freshly owned channel slices.
func (b *Buffer) Clone() *Buffer {
	left := make([]float64, len(b.Left))
	right := make([]float64, len(b.Right))
	copy(left, b.Left)
	copy(right, b.Right)

	return &Buffer{Left: left, Right: right, SampleRate: b.SampleRate}
}

// Equal reports whether two buffers have identical sample rate and
// bit-exact channel content. Used by pass-through tests (spec §8).
func (b *Buffer) Equal(other *Buffer) bool {
	if b == nil || other == nil {
		return b == other
	}

	if b.SampleRate != other.SampleRate || len(b.Left) != len(other.Left) {
		return false
	}

	for i := range b.Left {
		if b.Left[i] != other.Left[i] || b.Right[i] != other.Right[i] {
			return false
		}
	}

	return true
}
