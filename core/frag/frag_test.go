package frag

import "testing"

func TestLessOrdersByMateFirst(t *testing.T) {
	a := Alignment{ReadNo: 1}
	b := Alignment{ReadNo: 2, Aligned: true}
	if !Less(a, b) {
		t.Error("readNo 1 should sort before readNo 2 regardless of other fields")
	}
	if Less(b, a) {
		t.Error("ordering must be antisymmetric")
	}
}

func TestLessPrefersGoodCandidates(t *testing.T) {
	aligned := Alignment{ReadNo: 1, Aligned: true, Sequence: "ACGT"}
	unaligned := Alignment{ReadNo: 1, Sequence: "ACGT"}
	if !Less(aligned, unaligned) {
		t.Error("aligned candidate should sort before unaligned within a mate")
	}

	clean := Alignment{ReadNo: 1, Aligned: true, Sequence: "ACGT"}
	fuzzy := Alignment{ReadNo: 1, Aligned: true, Sequence: "ACGN"}
	if !Less(clean, fuzzy) {
		t.Error("unambiguous candidate should sort before ambiguous within a mate")
	}
}

func TestLessIsDeterministicOnPlacement(t *testing.T) {
	base := Alignment{ReadNo: 1, Aligned: true, Sequence: "ACGT", Reference: "chr1", Strand: "+", Position: 100, Cigar: "4M"}
	cases := []struct {
		name string
		mut  func(Alignment) Alignment
	}{
		{"reference", func(a Alignment) Alignment { a.Reference = "chr2"; return a }},
		{"position", func(a Alignment) Alignment { a.Position = 200; return a }},
		{"strand", func(a Alignment) Alignment { a.Strand = "-"; return a }},
		{"cigar", func(a Alignment) Alignment { a.Cigar = "4X"; return a }},
		{"sequence", func(a Alignment) Alignment { a.Sequence = "ACTT"; return a }},
	}
	for _, c := range cases {
		other := c.mut(base)
		if Less(base, other) == Less(other, base) {
			t.Errorf("%s: ordering must break the tie one way", c.name)
		}
	}
}

func TestTruncatedTrimsSequenceOnly(t *testing.T) {
	a := Alignment{
		ReadNo: 2, Sequence: "ACGTNAC", Aligned: true,
		Reference: "chr3", Strand: "-", Position: 42, Cigar: "7M",
	}
	got := a.Truncated()
	if got.Sequence != "ACGT" {
		t.Errorf("Truncated sequence = %q, want %q", got.Sequence, "ACGT")
	}
	if got.ReadNo != a.ReadNo || !got.Aligned || got.Reference != a.Reference ||
		got.Strand != a.Strand || got.Position != a.Position || got.Cigar != a.Cigar {
		t.Errorf("Truncated must leave placement fields untouched: %+v", got)
	}
	if a.Sequence != "ACGTNAC" {
		t.Error("Truncated must not mutate the receiver")
	}
}
