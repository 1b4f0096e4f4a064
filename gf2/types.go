package gf2

import "errors"

// Sentinel errors for gf2 operations.
var (
	// ErrEmptyMatrix indicates a construction attempt with zero rows or columns.
	ErrEmptyMatrix = errors.New("gf2: matrix must have at least one row and one column")
	// ErrNotSquare indicates FromAdjacency input whose rows differ in length
	// from the row count.
	ErrNotSquare = errors.New("gf2: adjacency matrix must be square")
	// ErrBadEntry indicates a matrix entry outside {0, 1}.
	ErrBadEntry = errors.New("gf2: matrix entries must be 0 or 1")
	// ErrIndexOutOfRange indicates a row or column index outside [0, n).
	ErrIndexOutOfRange = errors.New("gf2: index out of range")
)

// wordBits is the number of matrix columns packed into one uint64 word.
const wordBits = 64

// Matrix is a dense binary matrix over GF(2). Rows are packed bitsets:
// bit j of row i lives at bits[i][j/64] >> (j%64) & 1.
//
// A Matrix is immutable after construction; all rank queries operate on
// scratch copies, so a single Matrix may be shared by concurrent readers.
type Matrix struct {
	rows, cols int
	words      int // words per row: ceil(cols / 64)
	bits       [][]uint64
}

// Rows returns the number of rows.
func (m *Matrix) Rows() int { return m.rows }

// Cols returns the number of columns.
func (m *Matrix) Cols() int { return m.cols }

// Bit returns the entry at (i, j) as 0 or 1.
// Returns ErrIndexOutOfRange for invalid coordinates.
func (m *Matrix) Bit(i, j int) (int, error) {
	if i < 0 || i >= m.rows || j < 0 || j >= m.cols {
		return 0, ErrIndexOutOfRange
	}

	return int(m.bits[i][j/wordBits] >> (uint(j) % wordBits) & 1), nil
}
