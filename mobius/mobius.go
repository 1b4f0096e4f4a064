package mobius

import (
	"context"
	"fmt"
	"math"
	"math/bits"
	"sort"

	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat/combin"

	"github.com/lovantir/qwedge/stabstate"
)

// Decompose computes the full Möbius decomposition of
// I(marked : fragments) over the subset lattice of the fragment set.
//
// The fragment list may be given in any order; the decomposition is a pure
// function of the underlying set. Repeated calls on the same (immutable)
// state return identical results.
//
// Errors: ErrNilState, ErrEmptyFragments, ErrFragmentSetTooLarge, any
// stabstate validation error (malformed query), stabstate's
// ErrInconsistentEntropy or ErrSumMismatch (defective representation,
// abort the run), and ctx.Err() on cancellation.
func Decompose(ctx context.Context, st *stabstate.State, marked int, fragments []int, opts Options) (*Decomposition, error) {
	if st == nil {
		return nil, ErrNilState
	}
	canon := canonicalize(fragments)
	k := len(canon)
	if k == 0 {
		return nil, ErrEmptyFragments
	}
	if k > MaxFragments {
		return nil, fmt.Errorf("%w: %d fragments, limit %d", ErrFragmentSetTooLarge, k, MaxFragments)
	}

	tol := opts.Tolerance
	if tol <= 0 {
		tol = DefaultTolerance
	}
	workers := opts.Workers
	if workers <= 0 {
		workers = 1
	}

	// Validate marked/fragments once up front; this also yields the total.
	total, err := st.MutualInformation(marked, canon)
	if err != nil {
		return nil, err
	}

	// --- 1. Mutual information for every sub-subset, indexed by bitmask ---
	mi, err := miTable(ctx, st, marked, canon, workers)
	if err != nil {
		return nil, err
	}

	// --- 2. Alternating sums g(S) over submasks, aggregated into f_j ---
	// Σ_{T⊆S} (−1)^{|S|−|T|} I(m:T); iterating sub = (sub−1) & S visits
	// every submask exactly once, so the whole pass is O(3^k).
	g := make([]float64, 1<<k)
	fk := make([]float64, k+1)
	for mask := 1; mask < 1<<k; mask++ {
		if err = ctx.Err(); err != nil {
			return nil, err
		}
		size := bits.OnesCount(uint(mask))
		sum := 0.0
		for sub := mask; ; sub = (sub - 1) & mask {
			if (size-bits.OnesCount(uint(sub)))&1 == 0 {
				sum += mi[sub]
			} else {
				sum -= mi[sub]
			}
			if sub == 0 {
				break
			}
		}
		g[mask] = snap(sum, tol)
		fk[size] += g[mask]
	}
	for j := 1; j <= k; j++ {
		fk[j] = snap(fk[j], tol)
	}
	total = snap(total, tol)

	// The decomposition must reproduce the total it decomposes.
	if math.Abs(floats.Sum(fk)-total) > tol*float64(int(1)<<k) {
		return nil, fmt.Errorf("%w: Σf = %g, total = %g", ErrSumMismatch, floats.Sum(fk), total)
	}

	return assemble(canon, marked, mi, g, fk, total), nil
}

// miTable evaluates I(marked : T) for every sub-subset T of canon,
// indexed by bitmask over the canonical fragment order. mi[0] is 0 by
// definition (and by the general formula).
func miTable(ctx context.Context, st *stabstate.State, marked int, canon []int, workers int) ([]float64, error) {
	k := len(canon)
	mi := make([]float64, 1<<k)

	if workers == 1 {
		subset := make([]int, 0, k)
		for mask := 1; mask < 1<<k; mask++ {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
			v, err := st.MutualInformation(marked, maskSubset(canon, mask, subset))
			if err != nil {
				return nil, err
			}
			mi[mask] = v
		}

		return mi, nil
	}

	grp, gctx := errgroup.WithContext(ctx)
	grp.SetLimit(workers)
	for mask := 1; mask < 1<<k; mask++ {
		if err := gctx.Err(); err != nil {
			break
		}
		mask := mask
		grp.Go(func() error {
			v, err := st.MutualInformation(marked, maskSubset(canon, mask, nil))
			if err != nil {
				return err
			}
			mi[mask] = v // each goroutine owns exactly one slot

			return nil
		})
	}
	if err := grp.Wait(); err != nil {
		return nil, err
	}

	return mi, nil
}

// assemble builds the ordered result tables. Sub-subsets are listed by
// (size, lexicographic) using combinadic enumeration, which matches the
// serialized order the plotting collaborator expects.
func assemble(canon []int, marked int, mi, g []float64, fk []float64, total float64) *Decomposition {
	k := len(canon)
	d := &Decomposition{
		Marked:            marked,
		Fragments:         append([]int(nil), canon...),
		MutualInformation: make([]SubsetValue, 0, 1<<k-1),
		FValues:           make([]SubsetValue, 0, 1<<k-1),
		FK:                make([]OrderContribution, k),
		Total:             total,
	}
	for size := 1; size <= k; size++ {
		for _, comb := range combin.Combinations(k, size) {
			mask := 0
			subset := make([]int, size)
			for i, idx := range comb {
				mask |= 1 << idx
				subset[i] = canon[idx]
			}
			d.MutualInformation = append(d.MutualInformation, SubsetValue{Subset: subset, Value: mi[mask]})
			d.FValues = append(d.FValues, SubsetValue{Subset: subset, Value: g[mask]})
		}
		d.FK[size-1] = OrderContribution{Order: size, Contribution: fk[size]}
	}

	return d
}

// canonicalize sorts and deduplicates the fragment list.
func canonicalize(fragments []int) []int {
	out := append([]int(nil), fragments...)
	sort.Ints(out)
	j := 0
	for i := 0; i < len(out); i++ {
		if i == 0 || out[i] != out[i-1] {
			out[j] = out[i]
			j++
		}
	}

	return out[:j]
}

// maskSubset materializes the elements selected by mask into dst
// (reallocating if dst is nil or shared).
func maskSubset(canon []int, mask int, dst []int) []int {
	if dst == nil {
		dst = make([]int, 0, bits.OnesCount(uint(mask)))
	}
	dst = dst[:0]
	for i, e := range canon {
		if mask>>i&1 == 1 {
			dst = append(dst, e)
		}
	}

	return dst
}

// snap reports values within tol of zero as exactly zero, uniformly for
// every order.
func snap(v, tol float64) float64 {
	if math.Abs(v) < tol {
		return 0
	}

	return v
}
