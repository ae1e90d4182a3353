package numtheory

import "sync"

// PrimesCache is a lazily-grown, process-wide ordered list of primes
// starting 2, 3, 5, 7, .... It is grown on demand via an odd-candidate
// sweep using IsPrime, and never shrinks
// or evicts entries.
type PrimesCache struct {
	mu   sync.Mutex
	list []int64
}

// NewPrimesCache returns a new, independently-growable primes cache.
// Most callers should use the package-level Prime function, which is
// backed by a single process-wide cache; NewPrimesCache exists for
// callers that want an isolated instance (e.g. tests).
func NewPrimesCache() *PrimesCache {
	return &PrimesCache{list: []int64{2, 3}}
}

// Prime returns the i-th prime (0-indexed, so Prime(0) == 2), extending
// the cache as needed.
func (c *PrimesCache) Prime(i int) int64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	for len(c.list) <= i {
		candidate := c.list[len(c.list)-1] + 2
		for !IsPrime(candidate) {
			candidate += 2
		}
		c.list = append(c.list, candidate)
	}
	return c.list[i]
}

var sharedPrimes = NewPrimesCache()

// Prime returns the i-th prime from the shared, process-wide cache.
func Prime(i int) int64 {
	return sharedPrimes.Prime(i)
}
