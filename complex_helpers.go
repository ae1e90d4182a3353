package algofft

// complexFromFloat64 builds a T (complex64 or complex128) from a real
// and imaginary part given as float64.
func complexFromFloat64[T Complex](re, im float64) T {
	var zero T
	switch any(zero).(type) {
	case complex64:
		return T(complex(float32(re), float32(im)))
	case complex128:
		return T(complex(re, im))
	default:
		panic("algofft: unsupported Complex type")
	}
}

func realOf[T Complex](v T) float64 {
	switch c := any(v).(type) {
	case complex64:
		return float64(real(c))
	case complex128:
		return real(c)
	default:
		panic("algofft: unsupported Complex type")
	}
}

func imagOf[T Complex](v T) float64 {
	switch c := any(v).(type) {
	case complex64:
		return float64(imag(c))
	case complex128:
		return imag(c)
	default:
		panic("algofft: unsupported Complex type")
	}
}

func conjOf[T Complex](v T) T {
	switch c := any(v).(type) {
	case complex64:
		return T(complex(real(c), -imag(c)))
	case complex128:
		return T(complex(real(c), -imag(c)))
	default:
		panic("algofft: unsupported Complex type")
	}
}
