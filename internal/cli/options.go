// internal/cli/options.go
package cli

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"fragfilter/internal/cliutil"
	"fragfilter/internal/writers"
)

// Options holds all CLI flags and arguments.
type Options struct {
	// Streams
	In       string // candidate rows: path or "-"
	Out      string // accepted rows: path or "-"
	Discards string // discarded rows: optional path; "" muxes into Out
	Settings string // optional YAML settings file

	// Performance
	Threads int

	// Output
	Output string
	Header bool // true unless --no-header

	// Behavior
	NoAcceptExitCode int
	Quiet            bool
	Version          bool
}

// Parse is the top-level call for CLI parsing.
func Parse() (Options, error) { return ParseArgs(NewFlagSet("fragfilter"), os.Args[1:]) }

// ParseArgs registers and parses all flags, returns an Options struct.
// The single positional argument names the input; flags may follow it.
func ParseArgs(fs *flag.FlagSet, argv []string) (Options, error) {
	var opt Options
	var help bool

	// Streams
	fs.StringVar(&opt.In, "in", "", "candidate TSV file, '-' for stdin (gzip/snappy auto-detected) []")
	fs.StringVar(&opt.In, "i", "", "alias of --in")
	fs.StringVar(&opt.Out, "out", "-", "accepted rows destination, '-' for stdout [-]")
	fs.StringVar(&opt.Discards, "discards", "", "write discarded rows here instead of muxing with a DEST column []")
	fs.StringVar(&opt.Settings, "settings", "", "YAML settings file (placement defaults, output toggles) []")

	// Performance
	fs.IntVar(&opt.Threads, "threads", 1, "worker threads (0 = all CPUs; >1 unorders spots) [1]")
	fs.IntVar(&opt.Threads, "t", 1, "alias of --threads")

	// Output
	fs.StringVar(&opt.Output, "output", "tsv", "output format: "+writers.Formats()+" [tsv]")
	fs.StringVar(&opt.Output, "o", "tsv", "alias of --output")
	noHeader := false
	fs.BoolVar(&noHeader, "no-header", false, "suppress header line in TSV [false]")
	fs.IntVar(&opt.NoAcceptExitCode, "no-accept-exit-code", 1, "exit code when no spot was accepted [1]")

	// Misc
	fs.BoolVar(&opt.Quiet, "quiet", false, "suppress info and progress lines [false]")
	fs.BoolVar(&opt.Quiet, "q", false, "alias of --quiet")
	fs.BoolVar(&opt.Version, "v", false, "print version and exit (shorthand) [false]")
	fs.BoolVar(&opt.Version, "version", false, "print version and exit [false]")
	fs.BoolVar(&help, "h", false, "show this help message (shorthand) [false]")

	flagArgs, posArgs := cliutil.SplitFlagsAndPositionals(fs, argv)
	if err := fs.Parse(flagArgs); err != nil {
		return opt, err
	}
	if help {
		return opt, flag.ErrHelp
	}
	if opt.Version {
		return opt, nil
	}
	opt.Header = !noHeader

	switch {
	case len(posArgs) > 1:
		return opt, fmt.Errorf("expected one input, got %d", len(posArgs))
	case len(posArgs) == 1 && opt.In != "" && opt.In != posArgs[0]:
		return opt, errors.New("--in conflicts with the positional input")
	case len(posArgs) == 1:
		opt.In = posArgs[0]
	}
	if opt.In == "" {
		opt.In = "-"
	}

	// Validation
	if opt.Threads < 0 {
		return opt, errors.New("--threads must be ≥ 0")
	}
	if !writers.Known(opt.Output) {
		return opt, fmt.Errorf("invalid --output %q (want %s)", opt.Output, writers.Formats())
	}
	if opt.NoAcceptExitCode < 0 || opt.NoAcceptExitCode > 255 {
		return opt, errors.New("--no-accept-exit-code must be between 0 and 255")
	}
	if opt.Out != "-" && opt.Out == opt.Discards {
		return opt, errors.New("--out and --discards must differ")
	}
	return opt, nil
}
