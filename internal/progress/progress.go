// internal/progress/progress.go

// Package progress writes the stderr status protocol: an "info:" line when
// processing starts, "prog:" lines while spots stream through, and a final
// "prog: Done". On a terminal the in-flight line is redrawn in place; on a
// pipe each percent step gets its own line so logs stay diffable.
package progress

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/mattn/go-isatty"
)

const (
	clearLine = "\x1b[2K\r"
	rate      = 100 * time.Millisecond
	spotChunk = 1 << 20 // fallback cadence when the input size is unknown
)

// IsTerminal reports whether w is an interactive terminal.
func IsTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && (isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd()))
}

// Reporter tracks stream position and emits the status protocol. It is not
// goroutine-safe; the pipeline collector owns it.
type Reporter struct {
	w      io.Writer
	quiet  bool
	tty    bool
	total  int64        // source bytes, -1 when unknown
	offset func() int64 // live source byte position
	spots  int64
	pct    int
	last   time.Time
	dirty  bool // an unterminated redraw line is on screen
}

// New builds a Reporter over the opened input's byte bookkeeping. quiet
// suppresses all output.
func New(w io.Writer, quiet bool, total int64, offset func() int64) *Reporter {
	return &Reporter{w: w, quiet: quiet, tty: IsTerminal(w), total: total, offset: offset, pct: -1}
}

// Processing announces the input once, before the first spot.
func (r *Reporter) Processing(input string) {
	if r.quiet {
		return
	}
	fmt.Fprintf(r.w, "info: processing %s\n", input)
}

// Spot records one processed spot and emits whatever the cadence calls for.
func (r *Reporter) Spot() {
	r.spots++
	if r.quiet {
		return
	}
	if r.tty {
		if time.Since(r.last) < rate {
			return
		}
		r.last = time.Now()
		if r.total > 0 {
			fmt.Fprintf(r.w, clearLine+"prog: processed %d%% (%s spots)", r.percent(), humanize.Comma(r.spots))
		} else {
			fmt.Fprintf(r.w, clearLine+"prog: processed %s spots", humanize.Comma(r.spots))
		}
		r.dirty = true
		return
	}
	if r.total > 0 {
		if pct := r.percent(); pct > r.pct {
			r.pct = pct
			fmt.Fprintf(r.w, "prog: processed %d%%\n", pct)
		}
		return
	}
	if r.spots%spotChunk == 0 {
		fmt.Fprintf(r.w, "prog: processed %s spots\n", humanize.Comma(r.spots))
	}
}

// Done terminates any in-place line and prints the closing marker.
func (r *Reporter) Done() {
	if r.quiet {
		return
	}
	if r.dirty {
		fmt.Fprint(r.w, clearLine)
		r.dirty = false
	}
	fmt.Fprintln(r.w, "prog: Done")
}

// Spots returns how many spots have been recorded.
func (r *Reporter) Spots() int64 { return r.spots }

func (r *Reporter) percent() int {
	pct := int(r.offset() * 100 / r.total)
	if pct > 100 {
		pct = 100
	}
	return pct
}
