// Package fftcore implements the algorithm dispatch engine: given a
// transform size N, it selects and builds one of a small set of FFT
// kernels (fixed-size, naive, radix-2, mixed-radix composite, or prime)
// and exposes them behind a single generic contract.
package fftcore

import (
	"fmt"
	"math"

	"github.com/cwbudde/algofft/internal/apperrors"
)

// Complex is the type constraint satisfied by Go's two built-in complex
// types; every kernel in this package is generic over it.
type Complex interface {
	complex64 | complex128
}

// Sentinel errors shared with the matrix-fixture codec and the public
// package; see internal/apperrors for the canonical definitions.
var (
	ErrSizeInvalid        = apperrors.ErrSizeInvalid
	ErrPowerOfTwoRequired = apperrors.ErrPowerOfTwoRequired
	ErrLengthMismatch     = apperrors.ErrLengthMismatch
)

// Kernel is the contract every FFT kernel exposes publicly: construct
// once, then call repeatedly against caller-owned buffers without
// allocating.
type Kernel[T Complex] interface {
	// Size returns N.
	Size() int
	// InPlaceForward computes the DFT of buf in place. len(buf) must
	// equal Size().
	InPlaceForward(buf []T) error
	// InPlaceInverse computes the inverse DFT of buf in place.
	InPlaceInverse(buf []T) error
	// RealForward widens reals to a zero-imaginary complex buffer and
	// runs the forward transform on it.
	RealForward(reals []float64) ([]T, error)
	// RealInverse runs the forward transform on buf (mutating it) and
	// returns the length-N real sequence implied by the canonical
	// inverse symmetry.
	RealInverse(buf []T) ([]float64, error)
	// FrequencyOfIndex converts a bin index to a frequency in Hz, given
	// a sample rate.
	FrequencyOfIndex(k int, sampleRate float64) float64
	// IndexOfFrequency is the inverse of FrequencyOfIndex.
	IndexOfFrequency(freq, sampleRate float64) int
	fmt.Stringer
}

// stridedKernel is the internal-only capability CompositeKernel uses to
// invoke a sub-kernel against a strided region of a shared pair of
// buffers, optionally pre-multiplying inputs by an outer twiddle vector.
// It is never exposed on the public Kernel contract.
type stridedKernel[T Complex] interface {
	// transform reads its own size's worth of elements from src at
	// off, off+stride, off+2*stride, ..., optionally multiplying input
	// index k by w[(k*wStride) mod len(w)] first, and writes the
	// result into dst at the same strided positions.
	transform(dst, src []T, off, stride int, w []T, wStride int)
}

// forwardFunc is the shape of a kernel's own InPlaceForward, injected
// into base so it can implement the derived operations (inverse, real
// forward/inverse, frequency mapping) in terms of it.
type forwardFunc[T Complex] func(buf []T) error

// base supplies every derived operation in the Kernel contract in terms
// of the concrete kernel's own InPlaceForward. Every concrete kernel
// embeds a base and wires base.forward to its own InPlaceForward method
// right after allocation.
type base[T Complex] struct {
	n       int
	forward forwardFunc[T]
}

func newBase[T Complex](n int, forward forwardFunc[T]) base[T] {
	return base[T]{n: n, forward: forward}
}

func (b base[T]) Size() int { return b.n }

func (b base[T]) FrequencyOfIndex(k int, sampleRate float64) float64 {
	return float64(k) * sampleRate / float64(b.n)
}

func (b base[T]) IndexOfFrequency(freq, sampleRate float64) int {
	return int(math.Round(freq * float64(b.n) / sampleRate))
}

func (b base[T]) InPlaceInverse(buf []T) error {
	if len(buf) != b.n {
		return fmt.Errorf("%w: got %d, want %d", ErrLengthMismatch, len(buf), b.n)
	}
	if err := b.forward(buf); err != nil {
		return err
	}
	scale := 1 / float64(b.n)
	for i := 0; i <= b.n/2; i++ {
		j := (b.n - i) % b.n
		bi := scaleComplex(buf[i], scale)
		bj := scaleComplex(buf[j], scale)
		buf[i] = bj
		buf[j] = bi
	}
	return nil
}

func (b base[T]) RealForward(reals []float64) ([]T, error) {
	if len(reals) != b.n {
		return nil, fmt.Errorf("%w: got %d, want %d", ErrLengthMismatch, len(reals), b.n)
	}
	buf := make([]T, b.n)
	for i, r := range reals {
		buf[i] = complexFromFloat64[T](r, 0)
	}
	if err := b.forward(buf); err != nil {
		return nil, err
	}
	return buf, nil
}

func (b base[T]) RealInverse(buf []T) ([]float64, error) {
	if len(buf) != b.n {
		return nil, fmt.Errorf("%w: got %d, want %d", ErrLengthMismatch, len(buf), b.n)
	}
	if err := b.forward(buf); err != nil {
		return nil, err
	}
	out := make([]float64, b.n)
	out[0] = realOf(buf[0]) / float64(b.n)
	for i := 1; i < b.n; i++ {
		out[i] = realOf(buf[b.n-i]) / float64(b.n)
	}
	return out, nil
}

func wrapLengthMismatch(got, want int) error {
	return fmt.Errorf("%w: got %d, want %d", ErrLengthMismatch, got, want)
}

// outerTwiddle looks up the outer twiddle factor for a sub-kernel's
// local input index k, per the NaiveKernel contract: W[(k*wStride) mod
// len(w)].
func outerTwiddle[T Complex](w []T, k, wStride int) T {
	idx := (k * wStride) % len(w)
	if idx < 0 {
		idx += len(w)
	}
	return w[idx]
}
