package fftcore

// sqrt3Over2 is sin(2*pi/3) = cos(pi/6) = sqrt(3)/2.
const sqrt3Over2 = 0.8660254037844386

// fixed2Kernel is the hand-unrolled size-2 DFT used directly for N=2
// and as a CompositeKernel sub-kernel wherever a factor of 2 appears in
// the decomposition.
type fixed2Kernel[T Complex] struct {
	base[T]
	scratch []T
}

func newFixed2[T Complex]() *fixed2Kernel[T] {
	k := &fixed2Kernel[T]{scratch: make([]T, 2)}
	k.base = newBase[T](2, k.InPlaceForward)
	return k
}

func (k *fixed2Kernel[T]) String() string { return "Fixed2FFT()" }

func (k *fixed2Kernel[T]) InPlaceForward(buf []T) error {
	if len(buf) != 2 {
		return wrapLengthMismatch(len(buf), 2)
	}
	copy(k.scratch, buf)
	k.transform(buf, k.scratch, 0, 1, nil, 0)
	return nil
}

func (k *fixed2Kernel[T]) transform(dst, src []T, off, stride int, w []T, wStride int) {
	x0, x1 := src[off], src[off+stride]
	if w != nil {
		x0 = x0 * outerTwiddle(w, 0, wStride)
		x1 = x1 * outerTwiddle(w, 1, wStride)
	}
	dst[off] = x0 + x1
	dst[off+stride] = x0 - x1
}

// fixed3Kernel is the hand-unrolled size-3 DFT, using the exact
// constants cos(2*pi/3) = -1/2, sin(2*pi/3) = sqrt(3)/2.
type fixed3Kernel[T Complex] struct {
	base[T]
	scratch []T
}

func newFixed3[T Complex]() *fixed3Kernel[T] {
	k := &fixed3Kernel[T]{scratch: make([]T, 3)}
	k.base = newBase[T](3, k.InPlaceForward)
	return k
}

func (k *fixed3Kernel[T]) String() string { return "Fixed3FFT()" }

func (k *fixed3Kernel[T]) InPlaceForward(buf []T) error {
	if len(buf) != 3 {
		return wrapLengthMismatch(len(buf), 3)
	}
	copy(k.scratch, buf)
	k.transform(buf, k.scratch, 0, 1, nil, 0)
	return nil
}

func (k *fixed3Kernel[T]) transform(dst, src []T, off, stride int, w []T, wStride int) {
	x0, x1, x2 := src[off], src[off+stride], src[off+2*stride]
	if w != nil {
		x0 = x0 * outerTwiddle(w, 0, wStride)
		x1 = x1 * outerTwiddle(w, 1, wStride)
		x2 = x2 * outerTwiddle(w, 2, wStride)
	}
	x12 := x1 + x2
	dz := x1 - x2
	tx := complexFromFloat64[T](-0.5, 0)
	ity := complexFromFloat64[T](0, sqrt3Over2)
	centered := x0 + tx*x12
	dst[off] = x0 + x12
	dst[off+stride] = centered - ity*dz
	dst[off+2*stride] = centered + ity*dz
}
