package fftcore

import (
	"fmt"
	"sync"

	"golang.org/x/sync/singleflight"

	"github.com/cwbudde/algofft/internal/apperrors"
	"github.com/cwbudde/algofft/internal/numtheory"
	"github.com/cwbudde/algofft/internal/obslog"
)

// logger receives one Debug line per kernel actually built (never per
// cache hit). SetLogger lets callers redirect it; the default discards
// everything.
var logger obslog.Logger = obslog.Nop()

// SetLogger installs the Logger construction-time diagnostics are
// written through. Passing nil restores the no-op default.
func SetLogger(l obslog.Logger) {
	if l == nil {
		l = obslog.Nop()
	}
	logger = l
}

// maxSize is the largest transform size the dispatcher will build.
const maxSize = 1 << 32

// naiveThreshold is the size below which Naive beats Radix2 and Prime
// in practice (their setup cost is not amortized at tiny N).
const naiveThreshold = 16

// primeNaiveThreshold is the size below which an odd prime is still
// cheaper to run through NaiveKernel than through Rader's algorithm.
const primeNaiveThreshold = 24

var (
	kernelCache sync.Map // map[dispatchKey]Kernel[any-ish], stored as any
	buildGroup  singleflight.Group
)

type dispatchKey struct {
	n    int
	kind string
}

// New builds (or returns a cached, previously built) kernel for
// transform size n, following the fixed selection order: reject
// invalid sizes, then fixed-size kernels for N=2,3, then Naive below
// naiveThreshold, then Radix2 for powers of two, then Naive again
// below primeNaiveThreshold, then Rader's algorithm for odd primes,
// and Composite for everything else.
//
// Construction is memoized by (n, T) across goroutines: a sync.Map
// holds completed kernels, and a singleflight.Group collapses
// concurrent first-time builds of the same size into one.
func New[T Complex](n int) (Kernel[T], error) {
	if n <= 0 || n > maxSize {
		return nil, fmt.Errorf("%w: %d", apperrors.ErrSizeInvalid, n)
	}
	key := dispatchKey{n: n, kind: typeKind[T]()}
	if v, ok := kernelCache.Load(key); ok {
		return v.(Kernel[T]), nil
	}

	v, err, _ := buildGroup.Do(fmt.Sprintf("%s:%d", key.kind, key.n), func() (any, error) {
		if v, ok := kernelCache.Load(key); ok {
			return v.(Kernel[T]), nil
		}
		k, err := build[T](n)
		if err != nil {
			logger.Error("kernel construction failed", err, obslog.Int("size", n), obslog.String("type", key.kind))
			return nil, err
		}
		logger.Debug("built kernel", obslog.String("kernel", k.String()), obslog.Int("size", n), obslog.String("type", key.kind))
		kernelCache.Store(key, k)
		return k, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(Kernel[T]), nil
}

func build[T Complex](n int) (Kernel[T], error) {
	switch {
	case n == 2:
		return newFixed2[T](), nil
	case n == 3:
		return newFixed3[T](), nil
	case n < naiveThreshold:
		return newNaive[T](n), nil
	case numtheory.IsPowerOfTwo(int64(n)):
		return newRadix2[T](n)
	case n < primeNaiveThreshold:
		return newNaive[T](n), nil
	case numtheory.IsPrime(int64(n)):
		return newPrime[T](n)
	default:
		return newComposite[T](n)
	}
}

// typeKind identifies the concrete Complex type a kernel was built for,
// so complex64 and complex128 instantiations of the same N never share
// a cache slot.
func typeKind[T Complex]() string {
	var zero T
	switch any(zero).(type) {
	case complex64:
		return "complex64"
	case complex128:
		return "complex128"
	default:
		panic("fftcore: unsupported Complex type")
	}
}
