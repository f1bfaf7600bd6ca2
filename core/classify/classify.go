// core/classify/classify.go

// Package classify decides, per fragment, whether its alignment candidates
// form a trustworthy consensus (accept) or an unresolvable mess (discard).
// It never mutates its input and never returns an error: every outcome is a
// normal classification, not a failure.
package classify

import (
	"fragfilter-core/frag"
)

// Verdict is the fragment-level outcome.
type Verdict int

const (
	Accepted Verdict = iota
	Discarded
)

func (v Verdict) String() string {
	if v == Accepted {
		return "accepted"
	}
	return "discarded"
}

// Reason records why a fragment was discarded. OK accompanies Accepted.
type Reason int

const (
	OK Reason = iota
	HardInvalid         // a candidate carried the upstream bad flag
	NoAlignment         // no candidate is aligned at all
	PartialAlignment    // one candidate per mate, but not every mate aligned
	UnresolvableMate    // a mate has no aligned, unambiguous candidate
	ConflictingEvidence // an unambiguous candidate disagrees with the canonical sequence
)

var reasonNames = [...]string{
	"ok",
	"hard-invalid",
	"no-alignment",
	"partial-alignment",
	"unresolvable-mate",
	"conflicting-evidence",
}

func (r Reason) String() string {
	if int(r) < len(reasonNames) {
		return reasonNames[r]
	}
	return "unknown"
}

// Result is the tagged outcome of classifying one fragment. Detail is the
// record set to emit: the original records for every discard (and for the
// simple accepted case), or the assembled consensus set.
type Result struct {
	Verdict Verdict
	Reason  Reason
	Detail  []frag.Alignment
}

// Classify decides the fate of one normalized fragment.
//
// The hard-invalidity guard runs before any tallying: a single bad record
// voids the fragment outright. After that, fragments with one candidate per
// mate pass or fail as-is, and fragments with competing candidates go
// through per-mate reconciliation.
func Classify(f frag.Fragment) Result {
	for _, a := range f.Detail {
		if a.Bad {
			return Result{Discarded, HardInvalid, f.Detail}
		}
	}

	reads, aligned := 0, 0
	lastRead := 0
	for _, a := range f.Detail {
		if a.Aligned {
			aligned++
		}
		if reads == 0 || a.ReadNo != lastRead {
			lastRead = a.ReadNo
			reads++
		}
	}

	if aligned == 0 {
		return Result{Discarded, NoAlignment, f.Detail}
	}

	// Simple case: nothing to reconcile, nothing is rewritten.
	if len(f.Detail) == reads {
		if aligned == reads {
			return Result{Accepted, OK, f.Detail}
		}
		return Result{Discarded, PartialAlignment, f.Detail}
	}

	detail, reason := reconcile(f.Detail)
	if reason != OK {
		return Result{Discarded, reason, f.Detail}
	}
	return Result{Accepted, OK, detail}
}

// reconcile walks the contiguous per-mate runs of a normalized detail slice
// and assembles the consensus record set. A non-OK reason means the whole
// fragment is void; remaining groups are not examined.
func reconcile(detail []frag.Alignment) ([]frag.Alignment, Reason) {
	out := make([]frag.Alignment, 0, len(detail))

	for next := 0; next < len(detail); {
		first := next
		for next < len(detail) && detail[next].ReadNo == detail[first].ReadNo {
			next++
		}
		group := detail[first:next]

		ambiguous, good, firstGood := 0, 0, 0
		for i, a := range group {
			amb := a.Sequence.Ambiguous()
			if amb {
				ambiguous++
			}
			if a.Aligned && !amb {
				if good == 0 {
					firstGood = i
				}
				good++
			}
		}

		// A mate with no aligned, unambiguous candidate voids the whole
		// fragment, not just this group.
		if good == 0 {
			return nil, UnresolvableMate
		}

		if len(group) == 1 {
			out = append(out, group[0])
			continue
		}

		canonical := group[firstGood]
		out = append(out, canonical)
		for i, a := range group {
			if i == firstGood {
				continue
			}
			if !a.Aligned {
				continue // unaligned candidates contribute nothing
			}
			if ambiguous > 0 && a.Sequence.Ambiguous() {
				// Keep uncertain corroboration, but weakened.
				out = append(out, a.Truncated())
				continue
			}
			if a.Sequence.EquivalentTo(canonical.Sequence) {
				out = append(out, a)
				continue
			}
			return nil, ConflictingEvidence
		}
	}
	return out, OK
}
