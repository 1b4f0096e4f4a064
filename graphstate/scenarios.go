package graphstate

import "github.com/lovantir/qwedge/scenario"

// Scenario labels of the standard Main16 experiment set.
const (
	LabelRecoveryWedge  = "recovery_wedge"
	LabelOutsideControl = "outside_wedge_control"
	LabelGrowth012      = "growth_3_qubits_012"
	LabelGrowth0214     = "growth_3_qubits_0_2_14"
	LabelGrowth01212    = "growth_4_qubits_0_1_2_12"
)

// Scenarios returns the five named experiments of the recovery-wedge study
// on this topology:
//
//   - the recovery wedge (the full neighborhood of the bulk target),
//   - an outside-wedge control of five elements disjoint from the wedge,
//   - three growth controls on proper sub-wedges of sizes 3 and 4.
//
// The expected outcome for this topology: the wedge carries 2 bits of
// purely fifth-order information, every control carries none.
func (t Topology) Scenarios() []scenario.Scenario {
	return []scenario.Scenario{
		{Label: LabelRecoveryWedge, Marked: t.BulkTarget, Fragments: t.Wedge()},
		{Label: LabelOutsideControl, Marked: t.BulkTarget, Fragments: []int{3, 4, 5, 6, 7}},
		{Label: LabelGrowth012, Marked: t.BulkTarget, Fragments: []int{0, 1, 2}},
		{Label: LabelGrowth0214, Marked: t.BulkTarget, Fragments: []int{0, 2, 14}},
		{Label: LabelGrowth01212, Marked: t.BulkTarget, Fragments: []int{0, 1, 2, 12}},
	}
}
