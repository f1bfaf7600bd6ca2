// internal/writers/registry.go
package writers

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"fragfilter/internal/output"
	"fragfilter/pkg/api"
)

// Config carries everything a row writer needs. Out receives accepted rows;
// Discards, when non-nil, receives discarded rows. With a nil Discards both
// destinations share Out and TSV rows gain the DEST column.
type Config struct {
	Out      io.Writer
	Discards io.Writer
	Header   bool
	Defaults output.Defaults
	BufSize  int
}

// Mux reports whether both destinations share one stream.
func (c Config) Mux() bool { return c.Discards == nil }

// StartFunc spins up one writer goroutine (format → handler).
type StartFunc func(Config) (chan<- api.RowV1, <-chan error)

// Row writer registry. Register in init() blocks from the writer files.
var rowWriters = map[string]StartFunc{}

// Register installs a writer for a format (idempotent last-wins).
func Register(format string, fn StartFunc) { rowWriters[format] = fn }

// Known reports whether a writer is registered for format.
func Known(format string) bool { _, ok := rowWriters[format]; return ok }

// Formats lists the registered formats for CLI validation and usage text.
func Formats() string {
	names := make([]string, 0, len(rowWriters))
	for name := range rowWriters {
		names = append(names, name)
	}
	sort.Strings(names)
	return strings.Join(names, " | ")
}

// Start dispatches to the registered writer. An unknown format yields a
// goroutine that drains its input and reports the dispatch error, so misuse
// never blocks the producer.
func Start(format string, cfg Config) (chan<- api.RowV1, <-chan error) {
	if fn, ok := rowWriters[format]; ok {
		return fn(cfg)
	}
	in := make(chan api.RowV1)
	done := make(chan error, 1)
	go func() {
		for range in {
		}
		done <- fmt.Errorf("unknown output format %q (no writer registered)", format)
	}()
	return in, done
}
