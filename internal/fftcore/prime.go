package fftcore

import (
	"fmt"

	"github.com/cwbudde/algofft/internal/numtheory"
)

// primeKernel implements Rader's algorithm: for a prime N it rewrites
// the DFT as a length-(N-1) cyclic convolution driven by a primitive
// root permutation, evaluated via an inner sub-FFT of size pn (either
// N-1 directly, or the next power of two at or above 2*(N-1) when the
// padding heuristic prefers a cheaper inner transform).
type primeKernel[T Complex] struct {
	base[T]
	n      int
	g      int64
	pn     int
	padded bool

	gPow    []int64 // gPow[q] = g^q mod n, q = 0..n-2
	gInvPow []int64 // gInvPow[q] = g^-q mod n, the negated-index permutation

	b   []T // filter spectrum, forward-FFT'd once at construction
	sub Kernel[T]

	a       []T // scratch: permuted/padded input to the inner sub-FFT
	scratch []T
}

func newPrime[T Complex](n int) (*primeKernel[T], error) {
	g := numtheory.PrimitiveRootOfPrime(int64(n))
	if g < 0 {
		return nil, fmt.Errorf("%w: %d is not prime", ErrSizeInvalid, n)
	}
	padded := numtheory.PrimePaddingHeuristic(int64(n))
	m := n - 1
	pn := m
	if padded {
		pn = int(numtheory.NextPowerOfTwo(int64(2 * m)))
	}
	sub, err := New[T](pn)
	if err != nil {
		return nil, err
	}

	gPow := make([]int64, m)
	gInvPow := make([]int64, m)
	gInv := numtheory.MultiplicativeInverseOfPrime(g, int64(n))
	gPow[0] = 1
	gInvPow[0] = 1
	for q := 1; q < m; q++ {
		gPow[q] = (gPow[q-1] * g) % int64(n)
		gInvPow[q] = (gInvPow[q-1] * gInv) % int64(n)
	}

	k := &primeKernel[T]{
		n:       n,
		g:       g,
		pn:      pn,
		padded:  padded,
		gPow:    gPow,
		gInvPow: gInvPow,
		sub:     sub,
		a:       make([]T, pn),
		scratch: make([]T, n),
	}

	// Filter spectrum b[q] = W_n^(g^q), forward-FFT'd once so every
	// later InPlaceForward reuses it as a pointwise multiplier.
	b := make([]T, pn)
	twiddle := twiddleTable[T](n)
	for q := 0; q < m; q++ {
		b[q] = twiddle[gPow[q]]
	}
	if err := sub.InPlaceForward(b); err != nil {
		return nil, err
	}
	k.b = b
	k.base = newBase[T](n, k.InPlaceForward)
	return k, nil
}

func (k *primeKernel[T]) String() string {
	if k.padded {
		return fmt.Sprintf("PrimeFFT(%d,padded=%d)", k.n, k.pn)
	}
	return fmt.Sprintf("PrimeFFT(%d)", k.n)
}

func (k *primeKernel[T]) InPlaceForward(buf []T) error {
	if len(buf) != k.n {
		return wrapLengthMismatch(len(buf), k.n)
	}
	copy(k.scratch, buf)
	k.transform(buf, k.scratch, 0, 1, nil, 0)
	return nil
}

// transform implements Rader's algorithm against a strided region of
// src, optionally pre-multiplying every raw input read by the outer
// twiddle vector before it enters either the DC-term sum or the
// convolution input, per the generalized outer-twiddle contract shared
// with NaiveKernel and FixedKernels.
//
// X[g^q] = x0 + sum_p x[g^p] * W_n^(g^(p+q)), a correlation of
// a[p]=x[g^p] and b[j]=W_n^(g^j). Reindexing p -> -p mod m turns the
// correlation into the standard circular convolution c = a_rev (*) b,
// so the sub-FFT input is loaded via the negated-index permutation
// (gInvPow) and the result maps straight back onto gPow[q] with no
// further reindexing.
func (k *primeKernel[T]) transform(dst, src []T, off, stride int, w []T, wStride int) {
	n := k.n
	m := n - 1

	read := func(localIdx int) T {
		v := src[off+localIdx*stride]
		if w != nil {
			v = v * outerTwiddle(w, localIdx, wStride)
		}
		return v
	}

	x0 := read(0)
	var dc T
	for q := 0; q < m; q++ {
		dc += read(int(k.gPow[q]))
	}
	dc += x0

	for i := range k.a {
		k.a[i] = 0
	}
	for p := 0; p < m; p++ {
		k.a[p] = read(int(k.gInvPow[p]))
	}

	k.sub.InPlaceForward(k.a)
	for i := range k.a {
		k.a[i] = k.a[i] * k.b[i]
	}
	k.sub.InPlaceInverse(k.a)

	// When the sub-FFT is zero-padded beyond m, k.a now holds the
	// linear convolution of the two length-m sequences (no wraparound,
	// since pn >= 2m-1). Fold it back into the circular-mod-m result
	// the algorithm needs: circ[q] = lin[q] + lin[q+m]. When pn == m
	// (unpadded) q+m never lands inside the buffer and this is a no-op.
	dst[off] = dc
	for q := 0; q < m; q++ {
		c := k.a[q]
		if q+m < k.pn {
			c += k.a[q+m]
		}
		dst[off+int(k.gPow[q])*stride] = x0 + c
	}
}
