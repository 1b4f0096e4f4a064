// Package scenario orchestrates recovery-wedge experiments: for each named
// (label, marked element, fragment set) triple it evaluates the total
// mutual information, the full per-order Möbius decomposition, and the
// running synergy-ratio sequence, over one shared immutable graph state.
//
// # Independence and failure policy
//
// Scenarios never share mutable state; the only shared object is the
// read-only stabstate.State, so RunAll may evaluate them concurrently
// (bounded by Options.Parallel). A malformed scenario — marked element
// inside its own fragment set, elements out of range, empty fragment set —
// fails that scenario alone and is reported in Report.Failures; its
// siblings still run. An entropy inconsistency or decomposition sum
// mismatch implicates the shared representation itself, so RunAll aborts
// the whole run and returns the error.
//
// # Result contract
//
// Result marshals to the stable JSON shape the external plotting and
// serialization collaborators consume:
//
//	{
//	  "label": "recovery_wedge",
//	  "bulk_target": 15,
//	  "fragment_set": [0, 1, 2, 12, 14],
//	  "mutual_information": [{"subset": [0], "value": 0}, ...],
//	  "f_values":           [{"subset": [0], "value": 0}, ...],
//	  "fk":                 [{"order": 1, "contribution": 0}, ...],
//	  "synergy_ratio":      [{"order": 1, "ratio": 0}, ...],
//	  "total_information": 2
//	}
//
// Subset-valued tables are sorted by (size, lexicographic subset); fk and
// synergy_ratio ascend by order. Field names and ordering are part of the
// contract and must not change between runs.
package scenario
