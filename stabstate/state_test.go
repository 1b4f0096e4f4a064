package stabstate_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lovantir/qwedge/gf2"
	"github.com/lovantir/qwedge/graphstate"
	"github.com/lovantir/qwedge/stabstate"
)

// newState builds a State from an edge list or fails the test.
func newState(t *testing.T, n int, edges [][2]int) *stabstate.State {
	t.Helper()
	st, err := stabstate.New(graphstate.FromEdges(n, edges), stabstate.DefaultOptions())
	require.NoError(t, err)

	return st
}

// main16State builds the standard 16-element fixture state.
func main16State(t *testing.T) *stabstate.State {
	t.Helper()
	st, err := stabstate.New(graphstate.Main16().Adjacency, stabstate.DefaultOptions())
	require.NoError(t, err)

	return st
}

// TestNew_Validation covers rejection of malformed adjacency input.
func TestNew_Validation(t *testing.T) {
	_, err := stabstate.New([][]int{{0, 1}, {0, 0}}, stabstate.DefaultOptions())
	assert.ErrorIs(t, err, stabstate.ErrNotSymmetric)

	_, err = stabstate.New([][]int{{1, 1}, {1, 0}}, stabstate.DefaultOptions())
	assert.ErrorIs(t, err, stabstate.ErrNonzeroDiagonal)

	_, err = stabstate.New([][]int{{0, 5}, {5, 0}}, stabstate.DefaultOptions())
	assert.ErrorIs(t, err, gf2.ErrBadEntry)

	_, err = stabstate.New(nil, stabstate.DefaultOptions())
	assert.ErrorIs(t, err, gf2.ErrEmptyMatrix)
}

// TestEntropy_BoundaryCases confirms the general rank formula itself
// yields 0 for the empty subset and for the full element set — boundary
// behavior mandated without special-casing.
func TestEntropy_BoundaryCases(t *testing.T) {
	st := main16State(t)

	s, err := st.Entropy(nil)
	require.NoError(t, err)
	assert.Zero(t, s, "entropy of empty subset")

	full := make([]int, st.Len())
	for i := range full {
		full[i] = i
	}
	s, err = st.Entropy(full)
	require.NoError(t, err)
	assert.Zero(t, s, "entropy of full set (pure global state)")
}

// TestEntropy_KnownValues pins exact entropies on the Main16 fixture.
func TestEntropy_KnownValues(t *testing.T) {
	st := main16State(t)

	cases := []struct {
		name   string
		subset []int
		want   float64
	}{
		{"single", []int{0}, 1},
		{"pair", []int{0, 1}, 2},
		{"bulk_nodes", []int{3, 7, 11, 15}, 4},
		{"wedge", []int{0, 1, 2, 12, 14}, 5},
		{"wedge_plus_target", []int{0, 1, 2, 12, 14, 15}, 4},
		{"outside_control", []int{3, 4, 5, 6, 7}, 5},
		{"growth3", []int{0, 1, 2}, 3},
		{"growth4", []int{0, 1, 2, 12}, 4},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			s, err := st.Entropy(tc.subset)
			require.NoError(t, err)
			assert.Equal(t, tc.want, s)
		})
	}
}

// TestEntropy_PuritySymmetry verifies S(A) == S(complement(A)):
// exhaustively on a 4-cycle, and on all singletons and pairs of Main16.
func TestEntropy_PuritySymmetry(t *testing.T) {
	square := newState(t, 4, [][2]int{{0, 1}, {1, 2}, {2, 3}, {3, 0}})
	for mask := 0; mask < 1<<4; mask++ {
		var a, b []int
		for i := 0; i < 4; i++ {
			if mask>>i&1 == 1 {
				a = append(a, i)
			} else {
				b = append(b, i)
			}
		}
		sa, err := square.Entropy(a)
		require.NoError(t, err)
		sb, err := square.Entropy(b)
		require.NoError(t, err)
		assert.Equal(t, sa, sb, "bipartition %v|%v", a, b)
	}

	st := main16State(t)
	n := st.Len()
	check := func(subset []int) {
		comp := make([]int, 0, n)
		in := make(map[int]bool)
		for _, e := range subset {
			in[e] = true
		}
		for i := 0; i < n; i++ {
			if !in[i] {
				comp = append(comp, i)
			}
		}
		sa, err := st.Entropy(subset)
		require.NoError(t, err)
		sb, err := st.Entropy(comp)
		require.NoError(t, err)
		assert.Equal(t, sa, sb, "subset %v", subset)
		bound := float64(min(len(subset), n-len(subset)))
		assert.GreaterOrEqual(t, sa, 0.0)
		assert.LessOrEqual(t, sa, bound, "subset %v exceeds min(|A|, N-|A|)", subset)
	}
	for i := 0; i < n; i++ {
		check([]int{i})
		for j := i + 1; j < n; j++ {
			check([]int{i, j})
		}
	}
}

// TestEntropy_CanonicalInvariance: order and duplicates must not matter.
func TestEntropy_CanonicalInvariance(t *testing.T) {
	st := main16State(t)

	a, err := st.Entropy([]int{14, 0, 12, 2, 1})
	require.NoError(t, err)
	b, err := st.Entropy([]int{0, 1, 2, 12, 14})
	require.NoError(t, err)
	c, err := st.Entropy([]int{0, 1, 1, 2, 12, 14, 14})
	require.NoError(t, err)
	assert.Equal(t, b, a)
	assert.Equal(t, b, c)
}

// TestEntropy_OutOfRange verifies element validation.
func TestEntropy_OutOfRange(t *testing.T) {
	st := main16State(t)

	_, err := st.Entropy([]int{0, 16})
	assert.ErrorIs(t, err, stabstate.ErrElementOutOfRange)
	_, err = st.Entropy([]int{-1})
	assert.ErrorIs(t, err, stabstate.ErrElementOutOfRange)
}

// TestMutualInformation_KnownValues pins exact mutual informations on
// small graphs and on the fixture.
func TestMutualInformation_KnownValues(t *testing.T) {
	// single edge: I(0:{1}) = 1 + 1 - 0 = 2 bits
	edge := newState(t, 2, [][2]int{{0, 1}})
	mi, err := edge.MutualInformation(0, []int{1})
	require.NoError(t, err)
	assert.Equal(t, 2.0, mi)

	// 4-star, marked leaf 1 vs leaves {2,3}: 1 + 1 - 1 = 1 bit
	star := newState(t, 4, [][2]int{{0, 1}, {0, 2}, {0, 3}})
	mi, err = star.MutualInformation(1, []int{2, 3})
	require.NoError(t, err)
	assert.Equal(t, 1.0, mi)

	// Main16: full wedge recovers 2 bits, every control recovers none.
	st := main16State(t)
	mi, err = st.MutualInformation(15, []int{0, 1, 2, 12, 14})
	require.NoError(t, err)
	assert.Equal(t, 2.0, mi)
	for _, frags := range [][]int{{3, 4, 5, 6, 7}, {0, 1, 2}, {0, 2, 14}, {0, 1, 2, 12}} {
		mi, err = st.MutualInformation(15, frags)
		require.NoError(t, err)
		assert.Zero(t, mi, "fragments %v", frags)
	}
}

// TestMutualInformation_EmptyFragments: the general formula yields 0 for
// an empty fragment set without special-casing.
func TestMutualInformation_EmptyFragments(t *testing.T) {
	st := main16State(t)
	mi, err := st.MutualInformation(15, nil)
	require.NoError(t, err)
	assert.Zero(t, mi)
}

// TestMutualInformation_Bounds samples disjoint (marked, fragments) pairs
// and checks 0 ≤ I ≤ 2·min(S(m), S(F)).
func TestMutualInformation_Bounds(t *testing.T) {
	st := main16State(t)
	n := st.Len()
	for m := 0; m < n; m++ {
		for j := 0; j < n; j++ {
			if j == m {
				continue
			}
			frags := []int{j, (j + 3) % n, (j + 7) % n}
			skip := false
			for _, f := range frags {
				if f == m {
					skip = true
				}
			}
			if skip {
				continue
			}
			mi, err := st.MutualInformation(m, frags)
			require.NoError(t, err)
			sm, err := st.Entropy([]int{m})
			require.NoError(t, err)
			sf, err := st.Entropy(frags)
			require.NoError(t, err)
			assert.GreaterOrEqual(t, mi, 0.0)
			assert.LessOrEqual(t, mi, 2*min(sm, sf), "m=%d frags=%v", m, frags)
		}
	}
}

// TestMutualInformation_Malformed verifies overlap and range validation.
func TestMutualInformation_Malformed(t *testing.T) {
	st := main16State(t)

	_, err := st.MutualInformation(15, []int{0, 15})
	assert.ErrorIs(t, err, stabstate.ErrOverlap)

	_, err = st.MutualInformation(16, []int{0})
	assert.ErrorIs(t, err, stabstate.ErrElementOutOfRange)

	_, err = st.MutualInformation(0, []int{99})
	assert.ErrorIs(t, err, stabstate.ErrElementOutOfRange)
}

// TestMemoization_Agreement: memoized and unmemoized states must agree on
// every query, and repeated queries must be bit-identical.
func TestMemoization_Agreement(t *testing.T) {
	adj := graphstate.Main16().Adjacency
	memo, err := stabstate.New(adj, stabstate.Options{Memoize: true})
	require.NoError(t, err)
	plain, err := stabstate.New(adj, stabstate.Options{Memoize: false})
	require.NoError(t, err)

	subsets := [][]int{{0}, {0, 1, 2}, {0, 1, 2, 12, 14}, {3, 4, 5, 6, 7}, {5, 9, 13}}
	for _, sub := range subsets {
		a, err := memo.Entropy(sub)
		require.NoError(t, err)
		b, err := plain.Entropy(sub)
		require.NoError(t, err)
		assert.Equal(t, b, a, "subset %v", sub)

		again, err := memo.Entropy(sub)
		require.NoError(t, err)
		assert.Equal(t, a, again, "memoized repeat for %v", sub)
	}
}

// TestState_ConcurrentReaders hammers one memoized state from many
// goroutines; run with -race to check the cache guard.
func TestState_ConcurrentReaders(t *testing.T) {
	st := main16State(t)
	subsets := [][]int{{0}, {1, 2}, {0, 1, 2, 12, 14}, {3, 4, 5, 6, 7}, {8, 9, 10, 11}}

	var wg sync.WaitGroup
	for w := 0; w < 8; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < 50; i++ {
				sub := subsets[i%len(subsets)]
				if _, err := st.Entropy(sub); err != nil {
					t.Error(err)

					return
				}
				if _, err := st.MutualInformation(15, []int{0, 1, 2}); err != nil {
					t.Error(err)

					return
				}
			}
		}()
	}
	wg.Wait()
}
