package algofft

import "github.com/cwbudde/algofft/internal/fftcore"

// Complex is the type constraint satisfied by Go's two built-in complex
// types. Every transform in this package is generic over it.
type Complex = fftcore.Complex
