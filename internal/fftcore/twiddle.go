package fftcore

import "math"

// TwiddleFactors returns the length-n twiddle table W[k] =
// exp(-2*pi*i*k/n), the same table every kernel in this package builds
// internally, exposed for callers that want to inspect or reuse it
// directly.
func TwiddleFactors[T Complex](n int) []T {
	return twiddleTable[T](n)
}

// twiddleTable precomputes W[k] = exp(-2*pi*i*k/n) for k = 0..n-1,
// computing the first half directly and filling the second half by
// conjugate symmetry: W[n-k] = conj(W[k]).
func twiddleTable[T Complex](n int) []T {
	tw := make([]T, n)
	if n == 0 {
		return tw
	}
	tw[0] = complexFromFloat64[T](1, 0)
	half := n / 2
	for k := 1; k <= half; k++ {
		angle := -2 * math.Pi * float64(k) / float64(n)
		tw[k] = complexFromFloat64[T](math.Cos(angle), math.Sin(angle))
	}
	for k := half + 1; k < n; k++ {
		tw[k] = conjOf(tw[n-k])
	}
	return tw
}
