// internal/cmdutil/log.go
package cmdutil

import (
	"fmt"
	"io"
)

// Stderr line protocol shared by the tool: "info:" for chatter that -quiet
// silences, "warning:" for recoverable oddities, "error:" for fatal ones.

func Infof(dst io.Writer, quiet bool, format string, a ...any) {
	if quiet {
		return
	}
	_, _ = fmt.Fprintf(dst, "info: "+format+"\n", a...)
}

func Warnf(dst io.Writer, quiet bool, format string, a ...any) {
	if quiet {
		return
	}
	_, _ = fmt.Fprintf(dst, "warning: "+format+"\n", a...)
}

// Errorf is never silenced by -quiet.
func Errorf(dst io.Writer, format string, a ...any) {
	_, _ = fmt.Fprintf(dst, "error: "+format+"\n", a...)
}
