package numtheory

import (
	"math/big"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

// TestPrimitiveRootOfPrimeKnownValues checks PrimitiveRootOfPrime
// against the well-known smallest-primitive-root values for the first
// few odd primes (OEIS A001918).
func TestPrimitiveRootOfPrimeKnownValues(t *testing.T) {
	cases := []struct {
		p, want int64
	}{
		{3, 2}, {5, 2}, {7, 3}, {11, 2}, {13, 2},
		{17, 3}, {19, 2}, {23, 5}, {29, 2}, {31, 3},
	}
	for _, c := range cases {
		if got := PrimitiveRootOfPrime(c.p); got != c.want {
			t.Errorf("PrimitiveRootOfPrime(%d) = %d, want %d", c.p, got, c.want)
		}
	}
}

// TestPrimitiveRootOfPrimeOrderProperty checks the defining property of
// a primitive root g mod p — g has multiplicative order exactly p-1 —
// for the first ~100 odd primes, the range OEIS A001918 agreement is
// required over.
func TestPrimitiveRootOfPrimeOrderProperty(t *testing.T) {
	for i := 1; i <= 100; i++ { // Prime(0) == 2, skip it: the root of 2 is trivial.
		p := Prime(i)
		g := PrimitiveRootOfPrime(p)
		if g < 2 || g >= p {
			t.Fatalf("PrimitiveRootOfPrime(%d) = %d, out of range", p, g)
		}
		if ExpMod(g, p-1, p) != 1 {
			t.Fatalf("PrimitiveRootOfPrime(%d) = %d does not satisfy Fermat's little theorem", p, g)
		}
		for _, q := range PrimeFactors(p - 1) {
			if ExpMod(g, (p-1)/q, p) == 1 {
				t.Fatalf("PrimitiveRootOfPrime(%d) = %d has order dividing (p-1)/%d, not a primitive root", p, g, q)
			}
		}
	}
}

// TestMultiplicativeInverseOfPrimeRoundTrip checks
// (x * MultiplicativeInverseOfPrime(x, 47)) mod 47 == 1 for every
// x in [1, 46].
func TestMultiplicativeInverseOfPrimeRoundTrip(t *testing.T) {
	const p = 47
	for x := int64(1); x < p; x++ {
		inv := MultiplicativeInverseOfPrime(x, p)
		if got := (x * inv) % p; got != 1 {
			t.Errorf("x=%d: (x * inverse) mod %d = %d, want 1", x, p, got)
		}
	}
}

// TestExpModAgreesWithBigInt property-tests ExpMod against math/big on
// randomized triples, the way fibonacci_property_test.go checks
// Cassini's Identity with gopter.
func TestExpModAgreesWithBigInt(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	properties := gopter.NewProperties(parameters)

	properties.Property("ExpMod agrees with math/big.Int.Exp", prop.ForAll(
		func(g, k int64, n uint32) bool {
			mod := int64(n) + 2 // avoid 0 and 1 modulus
			if g < 0 {
				g = -g
			}
			if k < 0 {
				k = -k
			}
			got := ExpMod(g, k, mod)

			var want big.Int
			want.Exp(big.NewInt(g), big.NewInt(k), big.NewInt(mod))

			return got == want.Int64()
		},
		gen.Int64Range(0, 1<<40),
		gen.Int64Range(0, 1<<20),
		gen.UInt32Range(0, 1<<30),
	))
	properties.TestingRun(t)
}
