// internal/app/app.go
package app

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"runtime"
	"strings"

	"github.com/dustin/go-humanize"

	"fragfilter-core/classify"
	"fragfilter-core/fragio"
	"fragfilter/internal/cli"
	"fragfilter/internal/cmdutil"
	"fragfilter/internal/iox"
	"fragfilter/internal/pipeline"
	"fragfilter/internal/progress"
	"fragfilter/internal/settings"
	"fragfilter/internal/version"
	"fragfilter/internal/writers"
	"fragfilter/pkg/api"
)

// RunContext wires the whole tool: flags, settings, streams, writer, and the
// classification pipeline. Exit codes: 0 success (including broken pipe),
// 2 usage or stream setup failure, 3 runtime failure, 130 canceled, and
// --no-accept-exit-code when the run accepted nothing.
func RunContext(parent context.Context, argv []string, stdout, stderr io.Writer) int {
	outw := bufio.NewWriter(stdout)
	defer func() { _ = outw.Flush() }()

	fs := cli.NewFlagSet("fragfilter")
	fs.SetOutput(io.Discard)

	// Bare invocation at a terminal gets help; in a pipe it filters stdin.
	if len(argv) == 0 && progress.IsTerminal(os.Stdin) {
		_, _ = cli.ParseArgs(fs, []string{"-h"})
		fs.SetOutput(outw)
		fs.Usage()
		return flushCode(outw, stderr)
	}

	opts, err := cli.ParseArgs(fs, argv)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			fs.SetOutput(outw)
			fs.Usage()
			return flushCode(outw, stderr)
		}
		cmdutil.Errorf(stderr, "%v", err)
		fs.SetOutput(stderr)
		fs.Usage()
		return 2
	}

	if opts.Version {
		_, _ = fmt.Fprintf(outw, "fragfilter version %s\n", version.Version)
		return flushCode(outw, stderr)
	}

	st, err := settings.Load(opts.Settings)
	if err != nil {
		cmdutil.Errorf(stderr, "%v", err)
		return 2
	}
	if opts.Output == "jsonl" && !opts.Header {
		cmdutil.Warnf(stderr, opts.Quiet, "--no-header has no effect with --output jsonl")
	}

	in, err := iox.Open(opts.In)
	if err != nil {
		cmdutil.Errorf(stderr, "%v", err)
		return 2
	}
	defer func() { _ = in.Close() }()

	accOut := io.Writer(outw)
	var created []io.WriteCloser
	defer func() {
		for _, c := range created {
			_ = c.Close()
		}
	}()
	if opts.Out != "-" {
		f, cerr := iox.Create(opts.Out)
		if cerr != nil {
			cmdutil.Errorf(stderr, "%v", cerr)
			return 2
		}
		accOut = f
		created = append(created, f)
	}
	var disOut io.Writer
	if opts.Discards != "" {
		f, cerr := iox.Create(opts.Discards)
		if cerr != nil {
			cmdutil.Errorf(stderr, "%v", cerr)
			return 2
		}
		disOut = f
		created = append(created, f)
	}

	thr := opts.Threads
	if thr <= 0 {
		thr = runtime.NumCPU()
	}

	inCh, writeErr := writers.Start(opts.Output, writers.Config{
		Out:      accOut,
		Discards: disOut,
		Header:   opts.Header && st.Header,
		Defaults: st.Defaults,
		BufSize:  thr * 4,
	})

	rep := progress.New(stderr, opts.Quiet, in.Total, in.Offset)
	rep.Processing(opts.In)

	ctx, cancel := context.WithCancel(parent)
	defer cancel()

	stats, perr := pipeline.Run(ctx, pipeline.Config{Threads: thr}, fragio.NewCursor(in),
		func(r api.RowV1) error {
			select {
			case inCh <- r:
				return nil
			case <-ctx.Done():
				return ctx.Err()
			}
		},
		rep.Spot,
	)

	close(inCh)

	if werr := <-writeErr; writers.IsBrokenPipe(werr) {
		return 0
	} else if werr != nil {
		cmdutil.Errorf(stderr, "%v", werr)
		return 3
	}

	// Close created files now so compressor trailers are flushed and checked.
	for _, c := range created {
		if cerr := c.Close(); cerr != nil {
			cmdutil.Errorf(stderr, "%v", cerr)
			return 3
		}
	}
	created = nil

	if e := outw.Flush(); writers.IsBrokenPipe(e) {
		return 0
	} else if e != nil {
		cmdutil.Errorf(stderr, "%v", e)
		return 3
	}

	if perr != nil {
		if errors.Is(perr, context.Canceled) {
			return 130
		}
		cmdutil.Errorf(stderr, "%v", perr)
		return 3
	}

	rep.Done()
	cmdutil.Infof(stderr, opts.Quiet, "accepted %s of %s spots (%s rows)",
		humanize.Comma(stats.Accepted), humanize.Comma(stats.Spots), humanize.Comma(stats.Rows))
	if stats.Discarded > 0 {
		cmdutil.Infof(stderr, opts.Quiet, "discarded %s (%s)",
			humanize.Comma(stats.Discarded), reasonBreakdown(stats))
	}

	if stats.Accepted == 0 {
		return opts.NoAcceptExitCode
	}
	return 0
}

// Run parses argv against a background context.
func Run(argv []string, stdout, stderr io.Writer) int {
	return RunContext(context.Background(), argv, stdout, stderr)
}

func reasonBreakdown(stats pipeline.Stats) string {
	order := []classify.Reason{
		classify.HardInvalid,
		classify.NoAlignment,
		classify.PartialAlignment,
		classify.UnresolvableMate,
		classify.ConflictingEvidence,
	}
	parts := make([]string, 0, len(order))
	for _, r := range order {
		if n := stats.ByReason[r]; n > 0 {
			parts = append(parts, fmt.Sprintf("%s %s", r, humanize.Comma(n)))
		}
	}
	return strings.Join(parts, ", ")
}

func flushCode(outw *bufio.Writer, stderr io.Writer) int {
	if err := outw.Flush(); writers.IsBrokenPipe(err) {
		return 0
	} else if err != nil {
		cmdutil.Errorf(stderr, "%v", err)
		return 3
	}
	return 0
}
