package numtheory

// PrimeDecomp returns the prime factors of n, with multiplicity, in
// ascending order. Trial-divides up to sqrt(n) using the shared primes
// cache; if a residue greater than 1 remains after the loop, it is
// appended as a (possibly large) prime factor.
func PrimeDecomp(n int64) []int64 {
	if n < 2 {
		return nil
	}
	var out []int64
	remaining := n
	for i := 0; ; i++ {
		p := Prime(i)
		if p*p > remaining {
			break
		}
		for remaining%p == 0 {
			out = append(out, p)
			remaining /= p
		}
	}
	if remaining > 1 {
		out = append(out, remaining)
	}
	return out
}

// PrimeFactors returns the unique prime factors of n, in ascending
// order.
func PrimeFactors(n int64) []int64 {
	decomp := PrimeDecomp(n)
	out := make([]int64, 0, len(decomp))
	for i, p := range decomp {
		if i == 0 || p != decomp[i-1] {
			out = append(out, p)
		}
	}
	return out
}

// LargestPrimeFactor returns the largest prime factor of n.
func LargestPrimeFactor(n int64) int64 {
	decomp := PrimeDecomp(n)
	if len(decomp) == 0 {
		return n
	}
	return decomp[len(decomp)-1]
}

// LargestPrimeFactorIsAbove reports whether n's largest prime factor
// exceeds k, returning true as soon as a prime factor above k divides
// n, and false as soon as the residual after removing small factors
// drops to k or below (at which point no remaining factor can exceed k).
func LargestPrimeFactorIsAbove(n, k int64) bool {
	remaining := n
	for i := 0; remaining > k; i++ {
		p := Prime(i)
		if p*p > remaining {
			return remaining > k
		}
		for remaining%p == 0 {
			if p > k {
				return true
			}
			remaining /= p
		}
	}
	return remaining > k
}

// PrimePaddingHeuristic reports whether Rader's algorithm should
// zero-pad the (p-1)-size internal convolution up to the next power of
// two, for an odd prime p.
func PrimePaddingHeuristic(p int64) bool {
	switch p {
	case 31, 61, 101, 241, 251:
		return true
	}
	return LargestPrimeFactorIsAbove(p-1, 5)
}
