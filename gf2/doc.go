// Package gf2 implements dense binary matrices over the two-element field
// GF(2) together with exact rank computation on arbitrary row/column
// restrictions.
//
// # Why GF(2)?
//
// Stabilizer graph states admit an exact entropy formula in terms of the
// binary rank of blocks of their adjacency matrix. Floating-point linear
// algebra cannot deliver that exactness: a rank over GF(2) is an integer
// obtained by XOR row operations, with no rounding and no conditioning
// concerns. Package gf2 therefore stores each row as a packed []uint64
// bitset and performs Gaussian elimination with XOR as addition.
//
// # API
//
//	m, err := gf2.FromAdjacency(adj)      // ingest a 0/1 matrix
//	r, err := m.RankOfSubmatrix(rows, cols)
//	r      := m.Rank()                    // rank of the whole matrix
//
// RankOfSubmatrix restricts the matrix to the given row and column index
// sets and returns the GF(2) rank of that block. Empty selections yield
// rank 0. The receiver is never mutated; every rank query works on a
// scratch copy of the selected rows.
//
// # Errors
//
//	ErrNotSquare       - FromAdjacency input rows of unequal length.
//	ErrBadEntry        - FromAdjacency entry outside {0, 1}.
//	ErrIndexOutOfRange - row/column selection index outside the matrix.
//
// # Complexity
//
// RankOfSubmatrix runs Gaussian elimination on the selected block:
// O(|rows| · |cols| · |rows| / 64) time, O(|rows| · |cols| / 64) scratch
// memory. For the graph sizes this package targets (tens of elements) a
// rank query is effectively constant-time.
package gf2
