// Package mobius decomposes the mutual information between a marked
// element of a stabilizer graph state and a fragment set into exact
// per-order interaction contributions, and tracks the running synergy
// ratio across fragment sizes.
//
// # Decomposition
//
// For a marked element m and a fragment set F of size k, every non-empty
// sub-subset S ⊆ F receives the signed inclusion–exclusion sum
//
//	g(S) = Σ_{T ⊆ S} (−1)^{|S|−|T|} · I(m : T),   I(m : ∅) := 0
//
// g(S) is the interaction attributable exactly to the joint combination of
// the elements of S: the alternating sum cancels every contribution already
// explained by a proper subset. Aggregating by size gives the per-order
// table
//
//	f_j = Σ_{|S|=j} g(S),   j = 1..k
//
// whose sum over all orders recovers I(m : F).
//
// Sub-subsets are enumerated as bitmasks over the canonical (sorted)
// fragment list; the alternating sums iterate submasks directly, so the
// whole decomposition costs O(3^k) mutual-information lookups. Fragment
// sets stay small (k ≤ ~8 in practice), and correctness, not speed, is the
// contract.
//
// All underlying entropies are exact integers, yet the signed sums are
// still passed through a uniform tolerance snap: any g, f_j or total with
// magnitude below Options.Tolerance is reported as exactly 0, never as a
// floating residual.
//
// # Synergy ratio
//
// RunningSynergyRatio condenses an f-table into one point per order:
//
//	ratio(j) = (Σ_{i=3..j} f_i) / (Σ_{i=1..j} f_i)
//
// the fraction of the information accumulated by size j that is due to
// genuinely higher-order (≥3-way) interactions. A denominator within
// tolerance of zero yields ratio 0 by convention.
//
// # Concurrency
//
// The state is read-only, so the 2^k mutual-information evaluations are
// independent; Options.Workers > 1 evaluates them on a bounded errgroup.
// Decompose honors ctx between sub-subset evaluations and returns
// ctx.Err() promptly on cancellation.
package mobius
