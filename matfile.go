package algofft

import (
	"io"

	"github.com/cwbudde/algofft/internal/matfile"
)

// Matrix is a jagged table of float64 rows, the shape the test
// fixtures in this module's test suites are stored in: plain real
// sequences as one row each, and complex sequences as a row of real
// parts followed by a row of imaginary parts.
type Matrix = matfile.Matrix

// ReadMatrix parses a matrix fixture from r.
func ReadMatrix(r io.Reader) (Matrix, error) {
	m, err := matfile.Read(r)
	if err != nil {
		return nil, err
	}
	return m, nil
}

// WriteMatrix serializes m to w in the same layout ReadMatrix expects.
func WriteMatrix(w io.Writer, m Matrix) error {
	return matfile.Write(w, m)
}
