package stabstate

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
	"sync"

	"github.com/lovantir/qwedge/gf2"
)

// State is an immutable stabilizer graph state over N elements.
// All methods are safe for concurrent use.
type State struct {
	mat *gf2.Matrix
	n   int
	tol float64

	memoize bool
	mu      sync.RWMutex
	memo    map[string]float64
}

// New validates the adjacency matrix (square, binary, symmetric, zero
// diagonal) and builds a State from it.
func New(adj [][]int, opts Options) (*State, error) {
	mat, err := gf2.FromAdjacency(adj)
	if err != nil {
		return nil, err
	}
	n := mat.Rows()
	for i := 0; i < n; i++ {
		if adj[i][i] != 0 {
			return nil, fmt.Errorf("%w: element %d", ErrNonzeroDiagonal, i)
		}
		for j := i + 1; j < n; j++ {
			if adj[i][j] != adj[j][i] {
				return nil, fmt.Errorf("%w: (%d,%d)", ErrNotSymmetric, i, j)
			}
		}
	}

	tol := opts.Tolerance
	if tol <= 0 {
		tol = DefaultTolerance
	}
	st := &State{mat: mat, n: n, tol: tol, memoize: opts.Memoize}
	if st.memoize {
		st.memo = make(map[string]float64)
	}

	return st, nil
}

// Len returns N, the number of elements of the state.
func (s *State) Len() int { return s.n }

// Entropy returns the entanglement entropy of the given subset in bits:
// the GF(2) rank of the adjacency block linking the subset to its
// complement. The subset may be given in any order and may contain
// duplicates; it is canonicalized to a sorted set first.
//
// Returns ErrElementOutOfRange if any element lies outside [0, N).
func (s *State) Entropy(subset []int) (float64, error) {
	canon, err := s.canonical(subset)
	if err != nil {
		return 0, err
	}

	return s.entropyCanonical(canon)
}

// MutualInformation returns I(marked : fragments) =
// S({marked}) + S(fragments) − S({marked} ∪ fragments).
//
// The marked element must be disjoint from the fragment set (ErrOverlap).
// An empty fragment set yields 0 through the general formula. A result
// outside [0, 2·S({marked})] beyond the configured tolerance returns
// ErrInconsistentEntropy: it cannot arise from a valid representation and
// callers must abort the run rather than use the value.
func (s *State) MutualInformation(marked int, fragments []int) (float64, error) {
	if marked < 0 || marked >= s.n {
		return 0, fmt.Errorf("%w: marked element %d", ErrElementOutOfRange, marked)
	}
	canon, err := s.canonical(fragments)
	if err != nil {
		return 0, err
	}
	if idx := sort.SearchInts(canon, marked); idx < len(canon) && canon[idx] == marked {
		return 0, fmt.Errorf("%w: element %d", ErrOverlap, marked)
	}

	sm, err := s.entropyCanonical([]int{marked})
	if err != nil {
		return 0, err
	}
	sf, err := s.entropyCanonical(canon)
	if err != nil {
		return 0, err
	}
	union := make([]int, 0, len(canon)+1)
	union = append(union, canon...)
	union = append(union, marked)
	sort.Ints(union)
	su, err := s.entropyCanonical(union)
	if err != nil {
		return 0, err
	}

	mi := sm + sf - su
	// Physical bounds for a single marked element: 0 ≤ I ≤ 2·S({m})
	// (Araki–Lieb). Anything outside means the representation is broken.
	if mi < -s.tol || mi > 2*sm+s.tol {
		return 0, fmt.Errorf("%w: I(%d:%v) = %g outside [0, %g]",
			ErrInconsistentEntropy, marked, canon, mi, 2*sm)
	}

	return mi, nil
}

// entropyCanonical computes (or recalls) the entropy of an already
// canonicalized subset.
func (s *State) entropyCanonical(canon []int) (float64, error) {
	var key string
	if s.memoize {
		key = subsetKey(canon)
		s.mu.RLock()
		v, ok := s.memo[key]
		s.mu.RUnlock()
		if ok {
			return v, nil
		}
	}

	comp := s.complement(canon)
	rank, err := s.mat.RankOfSubmatrix(canon, comp)
	if err != nil {
		return 0, err
	}
	v := float64(rank)

	if s.memoize {
		s.mu.Lock()
		s.memo[key] = v
		s.mu.Unlock()
	}

	return v, nil
}

// canonical returns a sorted duplicate-free copy of subset, validating
// every element against [0, N).
func (s *State) canonical(subset []int) ([]int, error) {
	out := make([]int, 0, len(subset))
	for _, e := range subset {
		if e < 0 || e >= s.n {
			return nil, fmt.Errorf("%w: element %d with N=%d", ErrElementOutOfRange, e, s.n)
		}
		out = append(out, e)
	}
	sort.Ints(out)
	j := 0
	for i := 0; i < len(out); i++ {
		if i == 0 || out[i] != out[i-1] {
			out[j] = out[i]
			j++
		}
	}

	return out[:j], nil
}

// complement returns [0, N) minus the (sorted) subset.
func (s *State) complement(canon []int) []int {
	comp := make([]int, 0, s.n-len(canon))
	next := 0
	for i := 0; i < s.n; i++ {
		if next < len(canon) && canon[next] == i {
			next++
			continue
		}
		comp = append(comp, i)
	}

	return comp
}

// subsetKey renders a canonical subset as a compact map key.
func subsetKey(canon []int) string {
	var b strings.Builder
	for i, e := range canon {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(strconv.Itoa(e))
	}

	return b.String()
}
