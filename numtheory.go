package algofft

import (
	"github.com/cwbudde/algofft/internal/fftcore"
	"github.com/cwbudde/algofft/internal/numtheory"
)

// IsPowerOfTwo reports whether x is a positive power of two.
func IsPowerOfTwo(x int64) bool { return numtheory.IsPowerOfTwo(x) }

// NextPowerOfTwo returns the smallest power of two that is >= x.
func NextPowerOfTwo(x int64) int64 { return numtheory.NextPowerOfTwo(x) }

// HighestBit returns the index of the single set bit in x, which must
// be a power of two.
func HighestBit(x int64) int { return numtheory.HighestBit(x) }

// IsPrime reports whether n is prime.
func IsPrime(n int64) bool { return numtheory.IsPrime(n) }

// PrimeDecomp returns the prime factors of n, with multiplicity, in
// ascending order.
func PrimeDecomp(n int64) []int64 { return numtheory.PrimeDecomp(n) }

// PrimeFactors returns the unique prime factors of n, in ascending
// order.
func PrimeFactors(n int64) []int64 { return numtheory.PrimeFactors(n) }

// LargestPrimeFactor returns the largest prime factor of n.
func LargestPrimeFactor(n int64) int64 { return numtheory.LargestPrimeFactor(n) }

// PrimePaddingHeuristic reports whether Rader's algorithm should
// zero-pad the (p-1)-size internal convolution up to the next power of
// two, for an odd prime p.
func PrimePaddingHeuristic(p int64) bool { return numtheory.PrimePaddingHeuristic(p) }

// PrimitiveRootOfPrime returns the smallest primitive root of p.
func PrimitiveRootOfPrime(p int64) int64 { return numtheory.PrimitiveRootOfPrime(p) }

// ExpMod computes g^k mod n.
func ExpMod(g, k, n int64) int64 { return numtheory.ExpMod(g, k, n) }

// MultiplicativeInverseOfPrime returns x^-1 mod p.
func MultiplicativeInverseOfPrime(x, p int64) int64 {
	return numtheory.MultiplicativeInverseOfPrime(x, p)
}

// TwiddleFactors returns the length-n twiddle table W[k] =
// exp(-2*pi*i*k/n) for the given Complex type.
func TwiddleFactors[T Complex](n int) []T { return fftcore.TwiddleFactors[T](n) }
