package numtheory

import "math/big"

// nativeExpModLimit is roughly 2^31.5: below it, g*g and result*g never
// overflow int64, so ExpMod can use the native square-and-multiply loop.
// Above it, the arbitrary-precision fallback is required.
const nativeExpModLimit = 3_037_000_000

// ExpMod computes g^k mod n. Uses a native 64-bit square-and-multiply
// loop when n is small enough to guarantee no overflow, and an
// arbitrary-precision fallback via math/big otherwise.
func ExpMod(g, k, n int64) int64 {
	if n < nativeExpModLimit {
		return expModNative(g, k, n)
	}
	return expModBig(g, k, n)
}

func expModNative(g, k, n int64) int64 {
	result := int64(1) % n
	g %= n
	if g < 0 {
		g += n
	}
	for k > 0 {
		if k&1 == 1 {
			result = (result * g) % n
		}
		g = (g * g) % n
		k >>= 1
	}
	return result
}

func expModBig(g, k, n int64) int64 {
	var r big.Int
	r.Exp(big.NewInt(g), big.NewInt(k), big.NewInt(n))
	return r.Int64()
}

// PrimitiveRootOfPrime returns the smallest g >= 2 such that for every
// prime factor q of p-1, g^((p-1)/q) mod p != 1. The result is
// unspecified if p is not an odd prime.
func PrimitiveRootOfPrime(p int64) int64 {
	if p == 2 {
		return 1
	}
	factors := PrimeFactors(p - 1)
	for g := int64(2); g < p; g++ {
		isRoot := true
		for _, q := range factors {
			if ExpMod(g, (p-1)/q, p) == 1 {
				isRoot = false
				break
			}
		}
		if isRoot {
			return g
		}
	}
	return -1
}

// MultiplicativeInverseOfPrime returns x^-1 mod p, computed via Fermat's
// little theorem as x^(p-2) mod p.
func MultiplicativeInverseOfPrime(x, p int64) int64 {
	return ExpMod(x, p-2, p)
}
