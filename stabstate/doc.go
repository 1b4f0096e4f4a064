// Package stabstate models a stabilizer graph state and answers exact
// entanglement-entropy and mutual-information queries about subsets of its
// elements.
//
// # Model
//
// A graph state on N qubits is fully described by a symmetric, zero-diagonal
// N×N binary adjacency matrix Γ. For any subset A of [0, N), the
// entanglement entropy in bits is
//
//	S(A) = rank₂( Γ[A, Ā] )
//
// the GF(2) rank of the adjacency block linking A to its complement Ā.
// The general formula needs no special cases: both S(∅) and S(full set)
// come out as 0 because either side of the block is empty, and tests pin
// that down rather than assume it.
//
// Mutual information between a single marked element m and a disjoint
// fragment set F is
//
//	I(m : F) = S({m}) + S(F) − S({m} ∪ F)
//
// Because every entropy is an exact integer, I is an exact integer too;
// the only floating point in this package is the return type.
//
// # Usage
//
//	st, err := stabstate.New(adjacency, stabstate.DefaultOptions())
//	s, err  := st.Entropy([]int{0, 3, 5})
//	mi, err := st.MutualInformation(15, []int{0, 1, 2, 12, 14})
//
// A State is immutable after New and safe for concurrent readers. With
// Options.Memoize enabled, entropies are cached by canonical subset key
// behind an RWMutex; the cache never needs invalidation because the
// representation cannot change.
//
// # Errors
//
//	ErrNotSymmetric       - adjacency input is not symmetric.
//	ErrNonzeroDiagonal    - adjacency input has a self-loop.
//	ErrElementOutOfRange  - a subset element lies outside [0, N).
//	ErrOverlap            - the marked element appears in the fragment set.
//	ErrInconsistentEntropy - a mutual information fell outside
//	                        [0, 2·S({m})]; the representation is defective
//	                        and the whole run must stop.
//
// ErrOverlap and ErrElementOutOfRange describe a malformed query and only
// invalidate that query. ErrInconsistentEntropy can only arise from a
// broken representation, so callers must treat it as fatal for every
// computation sharing this State.
package stabstate
