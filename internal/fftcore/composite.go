package fftcore

import (
	"fmt"

	"github.com/cwbudde/algofft/internal/numtheory"
)

// alwaysNaiveThreshold is the factor size below which the mixed-radix
// decomposition always bottoms out in a NaiveKernel sub-kernel rather
// than recursing through New again.
const alwaysNaiveThreshold = 16

// jobPlan describes one butterfly-combination job within a single
// recursion level: read/write the sub-kernel's outputs starting at off
// with the given stride, pre-multiplying inputs by the outer twiddle
// vector at the given stride into the level's shared twiddle table.
type jobPlan struct {
	off, stride, wStride int
}

// compositeLevel is one level of the recursive mixed-radix decomposition:
// a shared twiddle table of length size, the sub-kernel every job at
// this level invokes, and the jobs themselves.
type compositeLevel[T Complex] struct {
	size    int
	twiddle []T
	sub     stridedKernel[T]
	jobs    []jobPlan
}

// compositeKernel is the mixed-radix Cooley-Tukey kernel used for any N
// that is neither a power of two nor prime. Construction recursively
// factors N and builds a flat scatter permutation plus a flat sequence
// of per-level job lists; execution scatters the input through the
// permutation once, then runs each level's jobs in turn, ping-ponging
// between two owned buffers.
type compositeKernel[T Complex] struct {
	base[T]
	n      int
	perm   []int
	levels []compositeLevel[T]
	bufA   []T
	bufB   []T
}

func newComposite[T Complex](n int) (*compositeKernel[T], error) {
	k := &compositeKernel[T]{
		n:    n,
		perm: make([]int, n),
		bufA: make([]T, n),
		bufB: make([]T, n),
	}
	if err := k.buildPlan(); err != nil {
		return nil, err
	}
	k.base = newBase[T](n, k.InPlaceForward)
	return k, nil
}

func (k *compositeKernel[T]) String() string { return fmt.Sprintf("CompositeFFT(%d)", k.n) }

func (k *compositeKernel[T]) InPlaceForward(buf []T) error {
	if len(buf) != k.n {
		return wrapLengthMismatch(len(buf), k.n)
	}
	for i, p := range k.perm {
		k.bufA[i] = buf[p]
	}
	// Levels are stored deepest (smallest-size) combination stage
	// first, the root (full-size) stage last, each covering all N
	// slots. Running them in that order combines leaves into
	// progressively larger transforms, ending at N.
	src, dst := k.bufA, k.bufB
	for li := 0; li < len(k.levels); li++ {
		lvl := &k.levels[li]
		for _, j := range lvl.jobs {
			lvl.sub.transform(dst, src, j.off, j.stride, lvl.twiddle, j.wStride)
		}
		src, dst = dst, src
	}
	copy(buf, src)
	return nil
}

// buildPlan factors n into a chain of factors p (each either the
// Dispatcher's N=2/N=3 fixed cases, a sub-threshold size handled by
// NaiveKernel, or a larger factor recursed into via New) and builds the
// scatter permutation and per-level job lists in a single top-down
// descent, per the standard decimation-in-time prime-factor layout: at
// each level the block of size `size` is split into `p` interleaved
// sub-blocks of size `size/p`, read from the input at stride `s` (the
// accumulated product of factors peeled off above this level), and
// combined with a twiddle table of length `size`, job b using twiddle
// stride b.
func (k *compositeKernel[T]) buildPlan() error {
	factors := numtheory.PrimeDecomp(int64(k.n))
	if len(factors) < 2 {
		return fmt.Errorf("%w: %d is not composite", ErrSizeInvalid, k.n)
	}
	// One level per recursion depth, stored deepest first, so that every
	// level's jobs together cover all n slots of the ping-pong buffers.
	k.levels = make([]compositeLevel[T], len(factors))
	var descend func(depth, size, s, off, boff int) error
	descend = func(depth, size, s, off, boff int) error {
		if size == 1 {
			k.perm[boff] = off
			return nil
		}
		// Peel the smallest remaining factor off the front so larger
		// primes end up nearer the leaves, matching the Dispatcher's
		// preference for cheap fixed/naive kernels deepest in the tree.
		p := int(factors[depth])
		m := size / p
		for q := 0; q < p; q++ {
			if err := descend(depth+1, m, s*p, off+q*s, boff+q*m); err != nil {
				return err
			}
		}

		lvl := &k.levels[len(factors)-1-depth]
		if lvl.sub == nil {
			sub, err := kernelForFactor[T](p)
			if err != nil {
				return err
			}
			*lvl = compositeLevel[T]{size: size, twiddle: twiddleTable[T](size), sub: sub}
		}
		for b := 0; b < m; b++ {
			lvl.jobs = append(lvl.jobs, jobPlan{off: boff + b, stride: m, wStride: b})
		}
		return nil
	}
	if err := descend(0, k.n, 1, 0, 0); err != nil {
		return err
	}
	return nil
}

// kernelForFactor returns the sub-kernel CompositeKernel uses to combine
// a factor of size p: the hand-unrolled fixed kernels for p=2,3, a
// NaiveKernel below the always-naive threshold, and a recursively
// dispatched kernel (itself possibly Composite or Prime) above it.
func kernelForFactor[T Complex](p int) (stridedKernel[T], error) {
	switch {
	case p == 2:
		return newFixed2[T](), nil
	case p == 3:
		return newFixed3[T](), nil
	case p < alwaysNaiveThreshold:
		return newNaive[T](p), nil
	default:
		kern, err := New[T](p)
		if err != nil {
			return nil, err
		}
		sk, ok := kern.(stridedKernel[T])
		if !ok {
			return nil, fmt.Errorf("algofft: kernel for factor %d does not support strided sub-kernel invocation", p)
		}
		return sk, nil
	}
}
