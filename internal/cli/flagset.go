// internal/cli/flagset.go
package cli

import (
	"flag"
	"fmt"

	"fragfilter/internal/version"
)

// NewFlagSet returns a configured FlagSet with ContinueOnError and the
// tool's usage text installed.
func NewFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(),
			`%s: split alignment candidates into accepted and discarded rows

Version: %s

Usage:
  %s [options] [<input> | -]

Options:
`, name, version.Version, name)
		fs.PrintDefaults()
	}
	return fs
}
