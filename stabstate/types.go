package stabstate

import "errors"

// Sentinel errors for stabstate operations.
var (
	// ErrNotSymmetric indicates adjacency input with Γ[i][j] != Γ[j][i].
	ErrNotSymmetric = errors.New("stabstate: adjacency matrix must be symmetric")
	// ErrNonzeroDiagonal indicates adjacency input with a self-loop.
	ErrNonzeroDiagonal = errors.New("stabstate: adjacency diagonal must be zero")
	// ErrElementOutOfRange indicates a subset element outside [0, N).
	ErrElementOutOfRange = errors.New("stabstate: element out of range")
	// ErrOverlap indicates the marked element appears in the fragment set.
	ErrOverlap = errors.New("stabstate: marked element must be disjoint from fragments")
	// ErrInconsistentEntropy indicates a mutual information outside its
	// physical bounds; the representation itself is defective.
	ErrInconsistentEntropy = errors.New("stabstate: inconsistent entropy; representation is invalid")
)

// DefaultTolerance is the slack allowed around the exact integer bounds of
// a mutual information before it is reported as inconsistent. One bit is
// the natural unit, so the tolerance is absolute.
const DefaultTolerance = 1e-9

// Options configures a State.
//
//   - Memoize: cache entropies by canonical subset key. The cache is
//     guarded by an RWMutex and lives as long as the State; it never needs
//     invalidation because the representation is immutable.
//   - Tolerance: slack for the mutual-information consistency check
//     (default DefaultTolerance). Values ≤ 0 fall back to the default.
type Options struct {
	Memoize   bool
	Tolerance float64
}

// DefaultOptions returns production-safe defaults: memoization on,
// tolerance 1e-9.
func DefaultOptions() Options {
	return Options{Memoize: true, Tolerance: DefaultTolerance}
}
