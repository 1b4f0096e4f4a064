package gf2

// FromAdjacency builds a Matrix from a 0/1 integer matrix.
//
// The input must be square (every row as long as the row count) and every
// entry must be 0 or 1. The input slices are copied; the caller may reuse
// them afterwards.
//
// Returns ErrEmptyMatrix, ErrNotSquare or ErrBadEntry on invalid input.
func FromAdjacency(adj [][]int) (*Matrix, error) {
	n := len(adj)
	if n == 0 {
		return nil, ErrEmptyMatrix
	}

	words := (n + wordBits - 1) / wordBits
	m := &Matrix{rows: n, cols: n, words: words, bits: make([][]uint64, n)}
	for i, row := range adj {
		if len(row) != n {
			return nil, ErrNotSquare
		}
		m.bits[i] = make([]uint64, words)
		for j, v := range row {
			switch v {
			case 0:
				// leave bit clear
			case 1:
				m.bits[i][j/wordBits] |= 1 << (uint(j) % wordBits)
			default:
				return nil, ErrBadEntry
			}
		}
	}

	return m, nil
}

// Rank returns the GF(2) rank of the whole matrix.
func (m *Matrix) Rank() int {
	all := make([]int, m.rows)
	for i := range all {
		all[i] = i
	}
	// Full selection can never be out of range.
	r, _ := m.RankOfSubmatrix(all, all)

	return r
}

// RankOfSubmatrix returns the GF(2) rank of the matrix restricted to the
// given row and column index sets.
//
// Either selection may be empty, in which case the rank is 0. Duplicate
// indices are harmless (a repeated row or column never increases rank).
// Returns ErrIndexOutOfRange if any index lies outside the matrix.
//
// The computation is purely functional: the receiver is read, never
// mutated, so concurrent rank queries on one Matrix are safe.
func (m *Matrix) RankOfSubmatrix(rowSel, colSel []int) (int, error) {
	// --- 1. Validate selections ---
	for _, i := range rowSel {
		if i < 0 || i >= m.rows {
			return 0, ErrIndexOutOfRange
		}
	}
	for _, j := range colSel {
		if j < 0 || j >= m.cols {
			return 0, ErrIndexOutOfRange
		}
	}
	if len(rowSel) == 0 || len(colSel) == 0 {
		return 0, nil
	}

	// --- 2. Build the column mask and gather masked scratch rows ---
	mask := make([]uint64, m.words)
	for _, j := range colSel {
		mask[j/wordBits] |= 1 << (uint(j) % wordBits)
	}
	scratch := make([][]uint64, len(rowSel))
	flat := make([]uint64, len(rowSel)*m.words) // one allocation for all rows
	for r, i := range rowSel {
		row := flat[r*m.words : (r+1)*m.words]
		for w := range row {
			row[w] = m.bits[i][w] & mask[w]
		}
		scratch[r] = row
	}

	// --- 3. Gaussian elimination with XOR row operations ---
	// Masked-out columns are identically zero, so eliminating over all bit
	// positions is equivalent to eliminating over the selected columns only.
	rank := 0
	total := m.words * wordBits
	for col := 0; col < total && rank < len(scratch); col++ {
		w, b := col/wordBits, uint(col)%wordBits

		// find a pivot row with a 1 in this column
		pivot := -1
		for r := rank; r < len(scratch); r++ {
			if scratch[r][w]>>b&1 == 1 {
				pivot = r
				break
			}
		}
		if pivot < 0 {
			continue
		}
		scratch[rank], scratch[pivot] = scratch[pivot], scratch[rank]

		// clear this column in every other row
		for r := range scratch {
			if r != rank && scratch[r][w]>>b&1 == 1 {
				for k := range scratch[r] {
					scratch[r][k] ^= scratch[rank][k]
				}
			}
		}
		rank++
	}

	return rank, nil
}
