// core/seq/seq.go
package seq

// Seq is one candidate's base-call string. The classifier treats it as an
// opaque value with three derived operations: Ambiguous, EquivalentTo, and
// TrimAmbiguity. Nothing here interprets coordinates or CIGAR strings.
type Seq string

/* -------------------------- IUPAC lookup table -------------------------- */

var baseMask [256]byte // bit0=A bit1=C bit2=G bit3=T

func init() {
	set := func(c byte, bits byte) { baseMask[c] = bits }
	set('A', 1)       // 0001
	set('C', 2)       // 0010
	set('G', 4)       // 0100
	set('T', 8)       // 1000
	set('R', 1|4)     // A/G
	set('Y', 2|8)     // C/T
	set('S', 2|4)     // C/G
	set('W', 1|8)     // A/T
	set('K', 4|8)     // G/T
	set('M', 1|2)     // A/C
	set('B', 2|4|8)   // C/G/T
	set('D', 1|4|8)   // A/G/T
	set('H', 1|2|8)   // A/C/T
	set('V', 1|2|4)   // A/C/G
	set('N', 1|2|4|8) // any
}

// confident reports whether c is one of the four unambiguous base calls.
func confident(c byte) bool {
	return c == 'A' || c == 'C' || c == 'G' || c == 'T'
}

// Compatible reports whether two base calls could describe the same
// underlying base: equal bytes always agree, and otherwise their IUPAC
// classes must intersect. A byte outside the IUPAC alphabet has an empty
// class and agrees only with itself.
func Compatible(a, b byte) bool {
	if a == b {
		return true
	}
	return baseMask[a]&baseMask[b] != 0
}

// Ambiguous reports whether s contains any non-confident call.
func (s Seq) Ambiguous() bool {
	for i := 0; i < len(s); i++ {
		if !confident(s[i]) {
			return true
		}
	}
	return false
}

// EquivalentTo reports whether s and o represent the same underlying read
// content up to ambiguity-code variation: equal length and every position
// pair Compatible. The predicate is total and symmetric.
func (s Seq) EquivalentTo(o Seq) bool {
	if len(s) != len(o) {
		return false
	}
	for i := 0; i < len(s); i++ {
		if !Compatible(s[i], o[i]) {
			return false
		}
	}
	return true
}

// TrimAmbiguity returns s cut at its first non-confident call: that base and
// everything after it is dropped. A fully confident sequence comes back
// unchanged.
func (s Seq) TrimAmbiguity() Seq {
	for i := 0; i < len(s); i++ {
		if !confident(s[i]) {
			return s[:i]
		}
	}
	return s
}
