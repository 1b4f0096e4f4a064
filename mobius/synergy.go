package mobius

import "sort"

// RunningSynergyRatio computes, for each order j = 1..max, the fraction of
// the information accumulated by fragment size j that is attributable to
// interactions of order ≥ 3:
//
//	ratio(j) = (Σ_{i=3..j} f_i) / (Σ_{i=1..j} f_i)
//
// Each point stands on its own (no smoothing between orders). Whenever the
// cumulative denominator lies within tol of zero the ratio is 0 by
// convention; tol ≤ 0 falls back to DefaultTolerance.
//
// The input table may be in any order; it is sorted by ascending order
// without being mutated.
func RunningSynergyRatio(fk []OrderContribution, tol float64) []RatioPoint {
	if tol <= 0 {
		tol = DefaultTolerance
	}
	table := append([]OrderContribution(nil), fk...)
	sort.Slice(table, func(i, j int) bool { return table[i].Order < table[j].Order })

	out := make([]RatioPoint, 0, len(table))
	var num, den float64
	for _, oc := range table {
		den += oc.Contribution
		if oc.Order >= 3 {
			num += oc.Contribution
		}
		p := RatioPoint{Order: oc.Order}
		if den > tol || den < -tol {
			p.Ratio = num / den
		}
		out = append(out, p)
	}

	return out
}

// SynergyRatios condenses this decomposition's f-table into the running
// synergy-ratio sequence.
func (d *Decomposition) SynergyRatios(tol float64) []RatioPoint {
	return RunningSynergyRatio(d.FK, tol)
}
