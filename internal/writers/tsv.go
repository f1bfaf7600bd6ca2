// internal/writers/tsv.go
package writers

import (
	"bufio"

	"fragfilter/internal/output"
	"fragfilter/pkg/api"
)

func init() { Register("tsv", StartTSVWriter) }

// StartTSVWriter streams rows as tab-separated text, one row per line.
func StartTSVWriter(cfg Config) (chan<- api.RowV1, <-chan error) {
	bufSize := cfg.BufSize
	if bufSize <= 0 {
		bufSize = 64
	}
	in := make(chan api.RowV1, bufSize)
	done := make(chan error, 1)

	go func() {
		done <- writeTSV(cfg, in)
	}()

	return in, done
}

func writeTSV(cfg Config, in <-chan api.RowV1) error {
	mux := cfg.Mux()

	acc := bufio.NewWriterSize(cfg.Out, 64<<10)
	dis := acc
	if !mux {
		dis = bufio.NewWriterSize(cfg.Discards, 64<<10)
	}

	var err error
	if cfg.Header {
		if mux {
			err = writeLine(acc, output.TSVHeader)
		} else if err = writeLine(acc, output.TSVHeaderSplit); err == nil {
			err = writeLine(dis, output.TSVHeaderSplit)
		}
	}

	for r := range in {
		if err != nil {
			continue // drain so the producer never blocks
		}
		w := acc
		if !mux && r.Dest == output.DestDiscarded {
			w = dis
		}
		err = writeLine(w, output.FormatRowTSV(r, mux, cfg.Defaults))
	}

	if err == nil {
		err = acc.Flush()
	}
	if err == nil && !mux {
		err = dis.Flush()
	}
	return err
}

func writeLine(w *bufio.Writer, s string) error {
	if _, err := w.WriteString(s); err != nil {
		return err
	}
	return w.WriteByte('\n')
}
