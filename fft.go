// Package algofft is a dependency-free-at-the-call-site FFT library:
// construct one FFT per size and reuse it across any number of
// in-place transforms, real-sequence transforms, windowing, streaming
// STFT, and convolution operations.
package algofft

import "github.com/cwbudde/algofft/internal/fftcore"

// FFT is a transform built for one fixed size. It is not safe for
// concurrent use: most kernels reuse internal scratch buffers on every
// call, and MakeFFT hands out the same cached kernel for the same
// (n, T).
type FFT[T Complex] struct {
	kernel fftcore.Kernel[T]
}

// MakeFFT builds (or reuses a cached) FFT for size n. Construction
// picks one of several internal kernels depending on n's
// factorization: fixed kernels for 2 and 3, a naive DFT below 16,
// radix-2 for powers of two, a naive DFT below 24, Rader's algorithm
// for primes, and mixed-radix Cooley-Tukey otherwise. The result is
// memoized process-wide, so repeated calls for
// the same (n, T) are cheap after the first.
func MakeFFT[T Complex](n int) (*FFT[T], error) {
	k, err := fftcore.New[T](n)
	if err != nil {
		return nil, err
	}
	return &FFT[T]{kernel: k}, nil
}

// Size returns the transform size this FFT was built for.
func (f *FFT[T]) Size() int { return f.kernel.Size() }

// String returns the name of the underlying kernel, e.g. "Radix2FFT(1024)".
func (f *FFT[T]) String() string { return f.kernel.String() }

// InPlaceForward computes the DFT of buf in place. len(buf) must equal
// Size().
func (f *FFT[T]) InPlaceForward(buf []T) error {
	return f.kernel.InPlaceForward(buf)
}

// InPlaceInverse computes the inverse DFT of buf in place.
func (f *FFT[T]) InPlaceInverse(buf []T) error {
	return f.kernel.InPlaceInverse(buf)
}

// RealForward widens a length-N real sequence into a complex buffer and
// runs the forward transform on it.
func (f *FFT[T]) RealForward(reals []float64) ([]T, error) {
	return f.kernel.RealForward(reals)
}

// RealInverse treats buf as a spectrum with real-sequence (conjugate)
// symmetry, runs the forward transform as the inverse step, and
// returns the resulting length-N real sequence.
func (f *FFT[T]) RealInverse(buf []T) ([]float64, error) {
	return f.kernel.RealInverse(buf)
}

// FrequencyOfIndex converts bin index k to a frequency in Hz, given a
// sample rate.
func (f *FFT[T]) FrequencyOfIndex(k int, sampleRate float64) float64 {
	return f.kernel.FrequencyOfIndex(k, sampleRate)
}

// IndexOfFrequency is the inverse of FrequencyOfIndex, rounding to the
// nearest bin.
func (f *FFT[T]) IndexOfFrequency(freq, sampleRate float64) int {
	return f.kernel.IndexOfFrequency(freq, sampleRate)
}
