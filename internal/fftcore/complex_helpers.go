package fftcore

// complexFromFloat64 constructs a T from its real and imaginary parts,
// narrowing to float32 lanes when T is complex64.
func complexFromFloat64[T Complex](re, im float64) T {
	var zero T
	switch any(zero).(type) {
	case complex64:
		return any(complex(float32(re), float32(im))).(T)
	case complex128:
		return any(complex(re, im)).(T)
	default:
		panic("fftcore: unsupported complex type")
	}
}

// realOf extracts the real part of v as a float64.
func realOf[T Complex](v T) float64 {
	switch x := any(v).(type) {
	case complex64:
		return float64(real(x))
	case complex128:
		return real(x)
	default:
		panic("fftcore: unsupported complex type")
	}
}

// imagOf extracts the imaginary part of v as a float64.
func imagOf[T Complex](v T) float64 {
	switch x := any(v).(type) {
	case complex64:
		return float64(imag(x))
	case complex128:
		return imag(x)
	default:
		panic("fftcore: unsupported complex type")
	}
}

// conjOf returns the complex conjugate of v.
func conjOf[T Complex](v T) T {
	return complexFromFloat64[T](realOf(v), -imagOf(v))
}

// scaleComplex multiplies v by the real scalar s.
func scaleComplex[T Complex](v T, s float64) T {
	return complexFromFloat64[T](s, 0) * v
}
