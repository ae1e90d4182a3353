package algofft

// ConvolveCircular computes the length-n circular convolution of a and
// b: c[i] = sum_j a[j]*b[(i-j) mod n]. If n is 0, it defaults to
// max(len(a), len(b)); both inputs are zero-padded (or truncated) to
// length n before convolving, via an FFT of size n.
func ConvolveCircular(a, b []float64, n int) ([]float64, error) {
	if n == 0 {
		n = len(a)
		if len(b) > n {
			n = len(b)
		}
	}
	fft, err := MakeFFT[complex128](n)
	if err != nil {
		return nil, err
	}
	ca := padReal(a, n)
	cb := padReal(b, n)
	if err := fft.InPlaceForward(ca); err != nil {
		return nil, err
	}
	if err := fft.InPlaceForward(cb); err != nil {
		return nil, err
	}
	prod, err := Multiply(ca, cb)
	if err != nil {
		return nil, err
	}
	if err := fft.InPlaceInverse(prod); err != nil {
		return nil, err
	}
	return RealParts(prod), nil
}

// ConvolveLinear computes the full linear convolution of a and b,
// length len(a)+len(b)-1, via circular convolution at a size large
// enough to avoid wraparound aliasing.
func ConvolveLinear(a, b []float64) ([]float64, error) {
	want := len(a) + len(b) - 1
	if want <= 0 {
		return nil, nil
	}
	circ, err := ConvolveCircular(a, b, want)
	if err != nil {
		return nil, err
	}
	return circ[:want], nil
}

func padReal(x []float64, n int) []complex128 {
	out := make([]complex128, n)
	for i, v := range x {
		if i >= n {
			break
		}
		out[i] = complex(v, 0)
	}
	return out
}
