package numtheory

import "math/bits"

// smallPrimes are used as both a fast-path primality check and the
// initial trial-division ladder before falling through to square-root
// trial division; values at or above smallFastPathLimit skip both and
// go straight to Miller-Rabin.
var smallPrimes = []int64{
	2, 3, 5, 7, 11, 13, 17, 19, 23, 29, 31, 37, 41, 43, 47, 53, 59, 61, 67,
	71, 73, 79, 83, 89, 97,
}

// mrWitnesses is the fixed witness set that makes Miller-Rabin
// deterministic up to 3,825,123,056,546,413,051.
var mrWitnesses = []int64{2, 3, 5, 7, 11, 13, 17, 19, 23, 29, 31, 37}

const smallFastPathLimit = 1e7

// IsPrime reports whether n is prime. Uses a hard-coded small-prime and
// trial-division fast path below smallFastPathLimit, then deterministic
// Miller-Rabin with mrWitnesses above it.
func IsPrime(n int64) bool {
	if n < 2 {
		return false
	}
	if n == 2 {
		return true
	}
	if n%2 == 0 {
		return false
	}
	if n < smallFastPathLimit {
		return isPrimeSmall(n)
	}
	return millerRabin(n)
}

func isPrimeSmall(n int64) bool {
	for _, p := range smallPrimes {
		if n == p {
			return true
		}
		if n%p == 0 {
			return false
		}
	}
	for d := int64(101); d*d <= n; d += 2 {
		if n%d == 0 {
			return false
		}
	}
	return true
}

func millerRabin(n int64) bool {
	d := n - 1
	r := 0
	for d%2 == 0 {
		d /= 2
		r++
	}
	for _, a := range mrWitnesses {
		if a >= n {
			continue
		}
		if !millerRabinWitness(n, d, r, a) {
			return false
		}
	}
	return true
}

func millerRabinWitness(n, d int64, r int, a int64) bool {
	x := expModUint(a, d, n)
	if x == 1 || x == n-1 {
		return true
	}
	for i := 0; i < r-1; i++ {
		x = mulMod(x, x, n)
		if x == n-1 {
			return true
		}
	}
	return false
}

func expModUint(base, exp, n int64) int64 {
	result := int64(1) % n
	base %= n
	for exp > 0 {
		if exp&1 == 1 {
			result = mulMod(result, base, n)
		}
		base = mulMod(base, base, n)
		exp >>= 1
	}
	return result
}

// mulMod computes (a*b) mod n without overflowing int64, using a 128-bit
// intermediate product via math/bits. Safe for any 0 <= a, b < n < 2^63.
func mulMod(a, b, n int64) int64 {
	hi, lo := bits.Mul64(uint64(a), uint64(b))
	_, rem := bits.Div64(hi, lo, uint64(n))
	return int64(rem)
}
