// core/frag/frag.go
package frag

import (
	"fragfilter-core/seq"
)

// Alignment is one candidate placement (or non-placement) of one mate of a
// fragment. Placement fields are meaningful only when Aligned is true.
type Alignment struct {
	ReadNo   int
	Sequence seq.Seq
	Aligned  bool
	Bad      bool // hard invalidity set upstream; forces fragment-level discard

	Reference string
	Strand    string // "+" or "-"
	Position  int
	Cigar     string
}

// Truncated returns a copy of a whose sequence has ambiguous trailing
// content removed. Used to keep corroborating-but-uncertain evidence
// without letting it carry full weight. Placement fields are untouched.
func (a Alignment) Truncated() Alignment {
	a.Sequence = a.Sequence.TrimAmbiguity()
	return a
}

// Less is the full multi-key ordering over candidates: ReadNo first, then a
// deterministic tie-break that puts aligned, unambiguous records ahead so
// the first-good selection downstream is reproducible.
func Less(a, b Alignment) bool {
	if a.ReadNo != b.ReadNo {
		return a.ReadNo < b.ReadNo
	}
	if a.Aligned != b.Aligned {
		return a.Aligned
	}
	if aAmb, bAmb := a.Sequence.Ambiguous(), b.Sequence.Ambiguous(); aAmb != bAmb {
		return !aAmb
	}
	if a.Reference != b.Reference {
		return a.Reference < b.Reference
	}
	if a.Position != b.Position {
		return a.Position < b.Position
	}
	if a.Strand != b.Strand {
		return a.Strand < b.Strand
	}
	if a.Cigar != b.Cigar {
		return a.Cigar < b.Cigar
	}
	return a.Sequence < b.Sequence
}

// Fragment bundles all alignment candidates belonging to one spot: one
// physical read and, for paired reads, its mate.
type Fragment struct {
	Group  string
	Name   string
	Detail []Alignment
}
