// core/frag/normalize.go
package frag

import "sort"

// Normalize reorders Detail so that candidates with equal ReadNo are
// contiguous. No field is mutated; only the order changes.
//
// With exactly two candidates only ReadNo is compared: there are too few
// records for the full tie-break to matter, and applying it could reorder a
// same-mate pair away from input order. Larger fragments get the full
// ordering as a stable sort. This asymmetry is deliberate; keep it.
func (f *Fragment) Normalize() {
	d := f.Detail
	if len(d) < 2 {
		return
	}
	if len(d) == 2 {
		if d[1].ReadNo < d[0].ReadNo {
			d[0], d[1] = d[1], d[0]
		}
		return
	}
	sort.SliceStable(d, func(i, j int) bool { return Less(d[i], d[j]) })
}
