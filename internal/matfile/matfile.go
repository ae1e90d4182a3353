// Package matfile reads the row-major float64 matrix fixtures used by
// the transform test suites: a 4-byte magic, a little-endian uint32 row
// count, then per row a little-endian uint32 element count followed by
// that many little-endian float64 values.
package matfile

import (
	"encoding/binary"
	"fmt"
	"io"
	"math"

	"github.com/cwbudde/algofft/internal/apperrors"
)

var magic = [4]byte{'M', 'A', 'T', ' '}

// Matrix is a jagged row-major table of float64 rows; fixtures store
// plain real sequences as one row each and complex sequences as a row
// of real parts followed by a row of imaginary parts.
type Matrix [][]float64

// Read parses a MAT fixture from r in full.
func Read(r io.Reader) (Matrix, error) {
	var got [4]byte
	if _, err := io.ReadFull(r, got[:]); err != nil {
		return nil, fmt.Errorf("%w: reading magic: %v", apperrors.ErrFormatCorruption, err)
	}
	if got != magic {
		return nil, fmt.Errorf("%w: bad magic %q", apperrors.ErrFormatCorruption, got)
	}

	rowCount, err := readU32(r)
	if err != nil {
		return nil, fmt.Errorf("%w: reading row count: %v", apperrors.ErrFormatCorruption, err)
	}

	m := make(Matrix, rowCount)
	for i := range m {
		n, err := readU32(r)
		if err != nil {
			return nil, fmt.Errorf("%w: reading row %d length: %v", apperrors.ErrFormatCorruption, i, err)
		}
		row := make([]float64, n)
		for j := range row {
			var bits uint64
			if err := binary.Read(r, binary.LittleEndian, &bits); err != nil {
				return nil, fmt.Errorf("%w: reading row %d element %d: %v", apperrors.ErrFormatCorruption, i, j, err)
			}
			row[j] = math.Float64frombits(bits)
		}
		m[i] = row
	}

	var extra [1]byte
	if _, err := io.ReadFull(r, extra[:]); err != io.EOF {
		if err == nil {
			return nil, fmt.Errorf("%w: trailing bytes after last declared row", apperrors.ErrFormatCorruption)
		}
		return nil, fmt.Errorf("%w: probing for trailing bytes: %v", apperrors.ErrFormatCorruption, err)
	}
	return m, nil
}

// Write serializes m to w in the same layout Read expects.
func Write(w io.Writer, m Matrix) error {
	if _, err := w.Write(magic[:]); err != nil {
		return err
	}
	if err := writeU32(w, uint32(len(m))); err != nil {
		return err
	}
	for _, row := range m {
		if err := writeU32(w, uint32(len(row))); err != nil {
			return err
		}
		for _, x := range row {
			if err := binary.Write(w, binary.LittleEndian, math.Float64bits(x)); err != nil {
				return err
			}
		}
	}
	return nil
}

func readU32(r io.Reader) (int, error) {
	var buf [4]byte
	if _, err := io.ReadFull(r, buf[:]); err != nil {
		return 0, err
	}
	return int(binary.LittleEndian.Uint32(buf[:])), nil
}

func writeU32(w io.Writer, v uint32) error {
	var buf [4]byte
	binary.LittleEndian.PutUint32(buf[:], v)
	_, err := w.Write(buf[:])
	return err
}
