// Package qwedge is an exact information-theory toolkit for stabilizer
// graph states: subset entanglement entropies, marked-element mutual
// information, per-order Möbius decompositions and running synergy
// ratios, built to test whether a bulk element's information lives only
// in its full recovery wedge.
//
// Everything rests on one identity: for a graph state with adjacency Γ,
// the entanglement entropy of a subset A is the GF(2) rank of the block
// Γ[A, Ā]. Entropies are therefore exact integers, mutual informations
// exact integer combinations of them, and the alternating Möbius sums
// cancel exactly rather than approximately.
//
// The module is organized as small focused packages, leaves first:
//
//	gf2/        — binary matrices and submatrix rank over GF(2)
//	stabstate/  — immutable graph state, entropy and mutual-information oracle
//	mobius/     — per-order decomposition f_k and the synergy-ratio tracker
//	scenario/   — named experiment orchestration and the result-table contract
//	graphstate/ — the fixed 16-element topology and its standard scenarios
//	store/      — SQLite archive of result reports
//	cmd/qwedge/ — CLI driver writing the JSON result document
//
// Quick start:
//
//	top := graphstate.Main16()
//	st, _ := stabstate.New(top.Adjacency, stabstate.DefaultOptions())
//	d, _ := mobius.Decompose(ctx, st, top.BulkTarget, top.Wedge(), mobius.DefaultOptions())
//	// d.FK: f_1..f_4 are 0, f_5 carries the full 2 bits.
//
// Data flows strictly downstream: gf2 → stabstate → mobius → scenario;
// the state is immutable after construction, so every stage is safe for
// concurrent evaluation.
package qwedge
