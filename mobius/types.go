package mobius

import "errors"

// Sentinel errors for mobius operations.
var (
	// ErrNilState indicates Decompose was called without a state.
	ErrNilState = errors.New("mobius: state must not be nil")
	// ErrEmptyFragments indicates an empty fragment set.
	ErrEmptyFragments = errors.New("mobius: fragment set must not be empty")
	// ErrFragmentSetTooLarge indicates a fragment set beyond the bitmask
	// enumeration limit.
	ErrFragmentSetTooLarge = errors.New("mobius: fragment set too large for subset enumeration")
	// ErrSumMismatch indicates the per-order contributions failed to add up
	// to the total mutual information beyond tolerance. Like an entropy
	// inconsistency, this cannot arise from a valid representation.
	ErrSumMismatch = errors.New("mobius: per-order contributions do not sum to the total")
)

// MaxFragments caps the fragment-set size. 2^24 sub-subsets is already far
// beyond the intended working range (k ≤ ~8) but still enumerable.
const MaxFragments = 24

// DefaultTolerance is the magnitude below which a signed sum is reported
// as exactly zero. One bit is the natural unit, so the tolerance is
// absolute.
const DefaultTolerance = 1e-9

// Options configures Decompose.
//
//   - Tolerance: zero-snap threshold applied uniformly to every g(S), f_j
//     and total (default DefaultTolerance; values ≤ 0 fall back to it).
//   - Workers: number of concurrent mutual-information evaluations
//     (default 1; values ≤ 0 fall back to 1).
type Options struct {
	Tolerance float64
	Workers   int
}

// DefaultOptions returns production-safe defaults: tolerance 1e-9,
// serial evaluation.
func DefaultOptions() Options {
	return Options{Tolerance: DefaultTolerance, Workers: 1}
}

// SubsetValue associates one canonical (sorted) subset with a value.
// The JSON shape is part of the result-table contract consumed by the
// external plotting collaborator.
type SubsetValue struct {
	Subset []int   `json:"subset"`
	Value  float64 `json:"value"`
}

// OrderContribution is one f_j entry of the per-order table.
type OrderContribution struct {
	Order        int     `json:"order"`
	Contribution float64 `json:"contribution"`
}

// RatioPoint is one point of the running synergy-ratio sequence.
type RatioPoint struct {
	Order int     `json:"order"`
	Ratio float64 `json:"ratio"`
}

// Decomposition is the full outcome of one Möbius decomposition.
//
// MutualInformation and FValues list one entry per non-empty sub-subset of
// Fragments, sorted by (size, lexicographic subset) — the stable order the
// plotting collaborator relies on. FK is sorted by ascending order and
// always spans 1..len(Fragments). Total is I(marked : Fragments).
type Decomposition struct {
	Marked            int
	Fragments         []int
	MutualInformation []SubsetValue
	FValues           []SubsetValue
	FK                []OrderContribution
	Total             float64
}

// Contribution returns f_j for the given order, or 0 if the order is
// outside 1..len(Fragments).
func (d *Decomposition) Contribution(order int) float64 {
	if order < 1 || order > len(d.FK) {
		return 0
	}

	return d.FK[order-1].Contribution
}
