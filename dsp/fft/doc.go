// Package fft provides an in-place radix-2 Cooley-Tukey FFT. It is the
// hand-rolled core transform used by measure/analysis for spectrum
// estimation: bit-reversal permutation followed by butterflies with
// twiddle factor e^(-2*pi*i*j/size). Callers are responsible for any
// windowing before calling Forward; this package applies none.
package fft
