// Package numtheory provides the primality, factorization, and modular
// arithmetic machinery the dispatch engine needs to pick and build FFT
// kernels for an arbitrary size N.
package numtheory

import "math/bits"

// IsPowerOfTwo reports whether x is a positive power of two.
func IsPowerOfTwo(x int64) bool {
	return x > 0 && x&(x-1) == 0
}

// NextPowerOfTwo returns the smallest power of two that is >= x.
func NextPowerOfTwo(x int64) int64 {
	if x <= 1 {
		return 1
	}
	return 1 << uint(bits.Len64(uint64(x-1)))
}

// HighestBit returns the index of the single set bit in x, which must be
// a power of two.
func HighestBit(x int64) int {
	return bits.Len64(uint64(x)) - 1
}

// TrailingZeros returns the number of trailing zero bits in x, which must
// be positive.
func TrailingZeros(x int64) int {
	if x <= 0 {
		panic("numtheory: TrailingZeros requires a positive value")
	}
	return bits.TrailingZeros64(uint64(x))
}
