// internal/output/rows.go
package output

import (
	"fmt"

	"fragfilter-core/classify"
	"fragfilter-core/frag"
	"fragfilter/pkg/api"
)

// Rows projects a classified fragment onto wire rows. Accepted fragments
// yield the reconciled detail; discarded fragments yield the original rows
// so nothing about a rejected spot is lost downstream.
func Rows(f frag.Fragment, res classify.Result) []api.RowV1 {
	dest := DestAccepted
	if res.Verdict == classify.Discarded {
		dest = DestDiscarded
	}
	rows := make([]api.RowV1, 0, len(res.Detail))
	for _, a := range res.Detail {
		r := api.RowV1{
			Dest:     dest,
			Group:    f.Group,
			Name:     f.Name,
			ReadNo:   a.ReadNo,
			Sequence: string(a.Sequence),
		}
		if a.Aligned {
			r.Aligned = &api.AlignedV1{
				Reference: a.Reference,
				Strand:    a.Strand,
				Position:  a.Position,
				Cigar:     a.Cigar,
			}
		}
		rows = append(rows, r)
	}
	return rows
}

// FormatRowTSV returns one TSV row (no trailing newline). withDest prepends
// the DEST column for the multiplexed stream; def fills the placement
// columns of unaligned rows.
func FormatRowTSV(r api.RowV1, withDest bool, def Defaults) string {
	ref, strand, pos, cigar := def.Reference, def.Strand, def.Position, def.Cigar
	if r.Aligned != nil {
		ref, strand, pos, cigar = r.Aligned.Reference, r.Aligned.Strand, r.Aligned.Position, r.Aligned.Cigar
	}
	base := fmt.Sprintf("%s\t%s\t%d\t%s\t%s\t%s\t%d\t%s",
		r.Group, r.Name, r.ReadNo, r.Sequence,
		ref, strand, pos, cigar,
	)
	if withDest {
		return r.Dest + "\t" + base
	}
	return base
}
