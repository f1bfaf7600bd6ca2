// internal/cli/options_test.go
package cli

import (
	"flag"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newFS() *flag.FlagSet { return flag.NewFlagSet("test", flag.ContinueOnError) }

func mustParse(t *testing.T, args ...string) Options {
	t.Helper()
	opts, err := ParseArgs(newFS(), args)
	require.NoError(t, err)
	return opts
}

func TestDefaults(t *testing.T) {
	o := mustParse(t)
	assert.Equal(t, "-", o.In)
	assert.Equal(t, "-", o.Out)
	assert.Equal(t, "", o.Discards)
	assert.Equal(t, "", o.Settings)
	assert.Equal(t, 1, o.Threads)
	assert.Equal(t, "tsv", o.Output)
	assert.True(t, o.Header)
	assert.Equal(t, 1, o.NoAcceptExitCode)
	assert.False(t, o.Quiet)
}

func TestPositionalInput(t *testing.T) {
	o := mustParse(t, "candidates.tsv")
	assert.Equal(t, "candidates.tsv", o.In)
}

func TestFlagsMayFollowPositional(t *testing.T) {
	o := mustParse(t, "candidates.tsv", "--threads", "4", "-q")
	assert.Equal(t, "candidates.tsv", o.In)
	assert.Equal(t, 4, o.Threads)
	assert.True(t, o.Quiet)
}

func TestInFlagAndMatchingPositionalAgree(t *testing.T) {
	o := mustParse(t, "--in", "c.tsv", "c.tsv")
	assert.Equal(t, "c.tsv", o.In)
}

func TestErrorInFlagConflictsWithPositional(t *testing.T) {
	_, err := ParseArgs(newFS(), []string{"--in", "a.tsv", "b.tsv"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "conflicts")
}

func TestErrorTwoPositionals(t *testing.T) {
	_, err := ParseArgs(newFS(), []string{"a.tsv", "b.tsv"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "expected one input")
}

func TestAliasesMatchLongFlags(t *testing.T) {
	long := mustParse(t, "--in", "c.tsv", "--threads", "3", "--output", "jsonl", "--quiet")
	short := mustParse(t, "-i", "c.tsv", "-t", "3", "-o", "jsonl", "-q")
	assert.Equal(t, long, short)
}

func TestNoHeaderFlipsHeader(t *testing.T) {
	o := mustParse(t, "--no-header")
	assert.False(t, o.Header)
}

func TestDiscardsAndSettingsPaths(t *testing.T) {
	o := mustParse(t, "--discards", "bad.tsv", "--settings", "s.yaml")
	assert.Equal(t, "bad.tsv", o.Discards)
	assert.Equal(t, "s.yaml", o.Settings)
}

func TestErrorUnknownOutputFormat(t *testing.T) {
	_, err := ParseArgs(newFS(), []string{"--output", "xml"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), `invalid --output "xml"`)
}

func TestErrorNegativeThreads(t *testing.T) {
	_, err := ParseArgs(newFS(), []string{"--threads", "-2"})
	require.Error(t, err)
}

func TestZeroThreadsMeansAutodetect(t *testing.T) {
	o := mustParse(t, "--threads", "0")
	assert.Equal(t, 0, o.Threads)
}

func TestErrorExitCodeOutOfRange(t *testing.T) {
	for _, v := range []string{"-1", "256"} {
		_, err := ParseArgs(newFS(), []string{"--no-accept-exit-code", v})
		require.Error(t, err, "code %s", v)
	}
}

func TestNoAcceptExitCodeZeroAllowed(t *testing.T) {
	o := mustParse(t, "--no-accept-exit-code", "0")
	assert.Equal(t, 0, o.NoAcceptExitCode)
}

func TestErrorOutEqualsDiscards(t *testing.T) {
	_, err := ParseArgs(newFS(), []string{"--out", "rows.tsv", "--discards", "rows.tsv"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "must differ")
}

func TestBothStreamsToStdoutAreMuxed(t *testing.T) {
	// "-" twice is the mux arrangement, not a collision.
	o := mustParse(t, "--out", "-", "--discards", "")
	assert.Equal(t, "-", o.Out)
	assert.Equal(t, "", o.Discards)
}

func TestHelpReturnsErrHelp(t *testing.T) {
	_, err := ParseArgs(newFS(), []string{"-h"})
	assert.ErrorIs(t, err, flag.ErrHelp)
}

func TestVersionShortCircuitsValidation(t *testing.T) {
	o := mustParse(t, "--version", "--output", "xml")
	assert.True(t, o.Version)
}
