// Package apperrors defines the sentinel error kinds shared across the
// transform core, the matrix-fixture codec, and the public package, so
// that every layer can wrap the same four errors.New values with
// fmt.Errorf("%w: ...") and callers can pattern-match on them with
// errors.Is regardless of which layer produced the wrapped message.
package apperrors

import "errors"

var (
	// ErrSizeInvalid is returned for N <= 0 or N above the library's
	// size ceiling.
	ErrSizeInvalid = errors.New("algofft: invalid size")
	// ErrPowerOfTwoRequired is returned by the Radix2 constructor when
	// given a non-power-of-two size.
	ErrPowerOfTwoRequired = errors.New("algofft: size must be a power of two")
	// ErrLengthMismatch is returned whenever a caller-supplied buffer,
	// window, or argument length does not match what an operation
	// requires.
	ErrLengthMismatch = errors.New("algofft: length mismatch")
	// ErrFormatCorruption is returned by the MAT test-fixture parser
	// when the byte stream does not exactly match its declared shape.
	ErrFormatCorruption = errors.New("algofft: corrupt matrix file")
)
