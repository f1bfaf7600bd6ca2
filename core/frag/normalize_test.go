package frag

import "testing"

func readNos(d []Alignment) []int {
	out := make([]int, len(d))
	for i, a := range d {
		out[i] = a.ReadNo
	}
	return out
}

func TestNormalizeSmallFragmentsAreNoOps(t *testing.T) {
	empty := Fragment{Name: "empty"}
	empty.Normalize()
	if len(empty.Detail) != 0 {
		t.Fatal("empty detail must pass through")
	}

	single := Fragment{Detail: []Alignment{{ReadNo: 2, Sequence: "ACGT"}}}
	single.Normalize()
	if single.Detail[0].ReadNo != 2 {
		t.Fatal("single-record fragment must not change")
	}
}

func TestNormalizePairSwapsByMateOnly(t *testing.T) {
	f := Fragment{Detail: []Alignment{
		{ReadNo: 2, Sequence: "TTTT"},
		{ReadNo: 1, Sequence: "ACGT"},
	}}
	f.Normalize()
	if got := readNos(f.Detail); got[0] != 1 || got[1] != 2 {
		t.Fatalf("pair not swapped into mate order: %v", got)
	}
}

// Two candidates of the same mate keep their insertion order: the narrow
// readNo-only compare must apply at size 2, not the full ordering.
func TestNormalizePairSameMateKeepsInputOrder(t *testing.T) {
	unaligned := Alignment{ReadNo: 1, Sequence: "ACGT"}
	aligned := Alignment{ReadNo: 1, Sequence: "ACGT", Aligned: true, Reference: "chr1", Strand: "+", Cigar: "4M"}
	f := Fragment{Detail: []Alignment{unaligned, aligned}}
	f.Normalize()
	if f.Detail[0].Aligned {
		t.Fatal("size-2 normalization must not apply the full ordering")
	}
}

func TestNormalizeSortsLargerFragments(t *testing.T) {
	f := Fragment{Detail: []Alignment{
		{ReadNo: 2, Sequence: "GGGG", Aligned: true, Reference: "chr2", Strand: "+", Position: 7, Cigar: "4M"},
		{ReadNo: 1, Sequence: "ACGN", Aligned: true, Reference: "chr1", Strand: "+", Position: 3, Cigar: "4M"},
		{ReadNo: 1, Sequence: "ACGT", Aligned: true, Reference: "chr1", Strand: "+", Position: 3, Cigar: "4M"},
	}}
	f.Normalize()

	if got := readNos(f.Detail); got[0] != 1 || got[1] != 1 || got[2] != 2 {
		t.Fatalf("mates not contiguous after normalization: %v", got)
	}
	// Full ordering applies at this size: the unambiguous mate-1 candidate
	// wins the tie and leads its run.
	if f.Detail[0].Sequence != "ACGT" {
		t.Errorf("expected unambiguous candidate first, got %q", f.Detail[0].Sequence)
	}
}

func TestNormalizeDoesNotMutateFields(t *testing.T) {
	f := Fragment{Detail: []Alignment{
		{ReadNo: 3, Sequence: "CCCC", Aligned: true, Reference: "chrX", Strand: "-", Position: 11, Cigar: "4M"},
		{ReadNo: 1, Sequence: "AAAA"},
		{ReadNo: 2, Sequence: "GGGG", Bad: true},
	}}
	want := map[int]Alignment{}
	for _, a := range f.Detail {
		want[a.ReadNo] = a
	}
	f.Normalize()
	for _, a := range f.Detail {
		if a != want[a.ReadNo] {
			t.Fatalf("record %d mutated by Normalize: %+v", a.ReadNo, a)
		}
	}
}
