// core/fragio/cursor.go

// Package fragio streams flat alignment-candidate rows and materializes one
// Fragment per spot. The wire format is tab-separated, one candidate per
// line, spot-clustered (all rows of a spot are adjacent, in any mate order):
//
//	READ_GROUP  FRAGMENT  READNO  SEQUENCE
//	READ_GROUP  FRAGMENT  READNO  SEQUENCE  REFERENCE  STRAND  POSITION  CIGAR
//
// Content-level damage (empty sequence, bad readNo, malformed placement)
// marks the record Bad so the classifier discards the whole spot; only
// structural damage (wrong column count, unreadable stream) aborts the run.
package fragio

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"fragfilter-core/frag"
	"fragfilter-core/seq"
)

const (
	narrowColumns = 4 // unaligned candidate
	wideColumns   = 8 // candidate with placement fields
)

// Cursor yields one Fragment per Next call until io.EOF.
type Cursor struct {
	sc   *bufio.Scanner
	line int
	pend *pendingRow
}

type pendingRow struct {
	group, name string
	aln         frag.Alignment
}

// NewCursor wraps r. The caller owns r and any decompression around it.
func NewCursor(r io.Reader) *Cursor {
	sc := bufio.NewScanner(r)
	const maxLine = 64 * 1024 * 1024 // allow very long base-call strings
	sc.Buffer(make([]byte, 64*1024), maxLine)
	return &Cursor{sc: sc}
}

// Next returns the next spot's full candidate set. It returns io.EOF when
// the stream is exhausted and a non-nil error only for structural damage.
func (c *Cursor) Next() (frag.Fragment, error) {
	if c.pend == nil {
		r, err := c.scanRow()
		if err != nil {
			return frag.Fragment{}, err
		}
		c.pend = r
	}

	f := frag.Fragment{Group: c.pend.group, Name: c.pend.name}
	f.Detail = append(f.Detail, c.pend.aln)
	c.pend = nil

	for {
		r, err := c.scanRow()
		if err == io.EOF {
			return f, nil
		}
		if err != nil {
			return frag.Fragment{}, err
		}
		if r.group != f.Group || r.name != f.Name {
			c.pend = r
			return f, nil
		}
		f.Detail = append(f.Detail, r.aln)
	}
}

// scanRow reads the next data row, skipping blanks, comments, and a header.
func (c *Cursor) scanRow() (*pendingRow, error) {
	for c.sc.Scan() {
		c.line++
		line := strings.TrimSuffix(c.sc.Text(), "\r")
		if line == "" || line[0] == '#' {
			continue
		}
		fields := strings.Split(line, "\t")
		if fields[0] == "READ_GROUP" || fields[0] == "DEST" {
			continue // header row from a previous stage
		}
		if len(fields) != narrowColumns && len(fields) != wideColumns {
			return nil, fmt.Errorf("line %d: bad field count %d", c.line, len(fields))
		}
		r := parseRow(fields)
		return &r, nil
	}
	if err := c.sc.Err(); err != nil {
		return nil, fmt.Errorf("row scan: %w", err)
	}
	return nil, io.EOF
}

// parseRow materializes one candidate. It never fails: anything it cannot
// trust becomes a Bad record, which is the upstream hard-invalidity flag the
// classifier acts on.
func parseRow(fields []string) pendingRow {
	r := pendingRow{group: fields[0], name: fields[1]}
	a := &r.aln

	if r.name == "" {
		a.Bad = true
	}

	readNo, err := strconv.Atoi(fields[2])
	if err != nil || readNo < 1 {
		a.Bad = true
	}
	a.ReadNo = readNo

	a.Sequence = seq.Seq(fields[3])
	if a.Sequence == "" {
		a.Bad = true
	}

	if len(fields) == narrowColumns {
		return r
	}

	a.Reference = fields[4]
	a.Strand = fields[5]
	a.Cigar = fields[7]
	a.Aligned = a.Reference != "" && a.Cigar != ""

	switch a.Strand {
	case "+", "-":
	case "":
		if a.Aligned {
			a.Bad = true // placement without an orientation
		}
	default:
		a.Bad = true
	}

	if fields[6] != "" {
		pos, err := strconv.Atoi(fields[6])
		if err != nil || pos < 0 {
			a.Bad = true
		}
		a.Position = pos
	}
	return r
}
