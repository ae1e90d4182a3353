package fftcore

import "fmt"

// naiveKernel is the O(N^2) base-case DFT, used directly by the
// Dispatcher for small N and as a CompositeKernel sub-kernel for small
// prime factors.
type naiveKernel[T Complex] struct {
	base[T]
	n       int
	twiddle []T
	scratch []T
}

func newNaive[T Complex](n int) *naiveKernel[T] {
	k := &naiveKernel[T]{n: n, twiddle: twiddleTable[T](n), scratch: make([]T, n)}
	k.base = newBase[T](n, k.InPlaceForward)
	return k
}

func (k *naiveKernel[T]) String() string { return fmt.Sprintf("NaiveFFT(%d)", k.n) }

func (k *naiveKernel[T]) InPlaceForward(buf []T) error {
	if len(buf) != k.n {
		return wrapLengthMismatch(len(buf), k.n)
	}
	copy(k.scratch, buf)
	k.transform(buf, k.scratch, 0, 1, nil, 0)
	return nil
}

// transform implements the strided, outer-twiddle contract used by
// CompositeKernel: straight O(N^2) DFT with an optional outer twiddle
// vector applied to each input before summation. src and dst must be
// distinct buffers.
func (k *naiveKernel[T]) transform(dst, src []T, off, stride int, w []T, wStride int) {
	n := k.n
	for q := 0; q < n; q++ {
		var sum T
		for j := 0; j < n; j++ {
			v := src[off+j*stride]
			if w != nil {
				v = v * outerTwiddle(w, j, wStride)
			}
			sum += v * k.twiddle[(j*q)%n]
		}
		dst[off+q*stride] = sum
	}
}
