package algofft

import (
	"fmt"
	"math"
)

// FromReal widens a real sequence into a zero-imaginary complex buffer.
func FromReal[T Complex](reals []float64) []T {
	out := make([]T, len(reals))
	for i, r := range reals {
		out[i] = complexFromFloat64[T](r, 0)
	}
	return out
}

// RealParts extracts the real component of every element of buf.
func RealParts[T Complex](buf []T) []float64 {
	out := make([]float64, len(buf))
	for i, v := range buf {
		out[i] = realOf(v)
	}
	return out
}

// SquaredMagnitudes returns |buf[i]|^2 for every element, avoiding the
// square root Magnitudes needs.
func SquaredMagnitudes[T Complex](buf []T) []float64 {
	out := make([]float64, len(buf))
	for i, v := range buf {
		re, im := realOf(v), imagOf(v)
		out[i] = re*re + im*im
	}
	return out
}

// Magnitudes returns |buf[i]| for every element.
func Magnitudes[T Complex](buf []T) []float64 {
	out := SquaredMagnitudes(buf)
	for i, v := range out {
		out[i] = math.Sqrt(v)
	}
	return out
}

// Multiply multiplies a and b element-wise into a freshly allocated
// buffer. a and b must have the same length.
func Multiply[T Complex](a, b []T) ([]T, error) {
	if len(a) != len(b) {
		return nil, wrapLengthMismatch(len(b), len(a))
	}
	out := make([]T, len(a))
	for i := range a {
		out[i] = a[i] * b[i]
	}
	return out, nil
}

// DiscardConjugates returns the first floor(N/2)+1 bins of a spectrum
// produced by transforming a real sequence: the DC term, the positive
// frequencies, and (for even N) the Nyquist bin, discarding the conjugate-mirrored
// negative-frequency half that a real input always produces.
func DiscardConjugates[T Complex](spectrum []T) []T {
	n := len(spectrum) / 2
	out := make([]T, n+1)
	copy(out, spectrum[:n+1])
	return out
}

// CreateConjugates is the inverse of DiscardConjugates: given the first
// floor(N/2)+1 bins of a real-input spectrum and the original length
// n, it rebuilds the full length-n spectrum by conjugate-mirroring the
// missing half.
func CreateConjugates[T Complex](half []T, n int) ([]T, error) {
	want := n/2 + 1
	if len(half) != want {
		return nil, wrapLengthMismatch(len(half), want)
	}
	out := make([]T, n)
	copy(out, half)
	for k := n/2 + 1; k < n; k++ {
		out[k] = conjOf(half[n-k])
	}
	return out, nil
}

func wrapLengthMismatch(got, want int) error {
	return fmt.Errorf("%w: got %d, want %d", ErrLengthMismatch, got, want)
}
