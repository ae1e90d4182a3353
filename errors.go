package algofft

import "github.com/cwbudde/algofft/internal/apperrors"

// Sentinel errors returned by this package's operations. Every wrapped
// error produced anywhere in the module (the dispatch engine, the
// matrix-fixture codec, or this package itself) satisfies errors.Is
// against one of these four regardless of which layer produced it.
var (
	// ErrSizeInvalid is returned for a transform size that is zero,
	// negative, or above the library's size ceiling.
	ErrSizeInvalid = apperrors.ErrSizeInvalid
	// ErrPowerOfTwoRequired is returned when an operation that only
	// supports power-of-two sizes is given something else.
	ErrPowerOfTwoRequired = apperrors.ErrPowerOfTwoRequired
	// ErrLengthMismatch is returned whenever a caller-supplied buffer,
	// window, or argument length does not match what an operation
	// requires.
	ErrLengthMismatch = apperrors.ErrLengthMismatch
	// ErrFormatCorruption is returned by the matrix-fixture codec when
	// a byte stream does not match its declared shape.
	ErrFormatCorruption = apperrors.ErrFormatCorruption
)
