// internal/writers/jsonl.go
package writers

import (
	"bufio"
	"encoding/json"

	"fragfilter/internal/jsonlutil"
	"fragfilter/internal/output"
	"fragfilter/pkg/api"
)

func init() { Register("jsonl", StartJSONLWriter) }

// StartJSONLWriter streams each row as one JSON object per line (v1 schema).
func StartJSONLWriter(cfg Config) (chan<- api.RowV1, <-chan error) {
	if cfg.Mux() {
		return jsonlutil.Start[api.RowV1](cfg.Out, cfg.BufSize,
			func(enc *json.Encoder, r api.RowV1) error { return enc.Encode(r) },
			IsBrokenPipe,
		)
	}
	return startJSONLSplit(cfg)
}

// startJSONLSplit routes rows to two encoders by destination. Both streams
// keep the "dest" field so the v1 schema stays identical either way.
func startJSONLSplit(cfg Config) (chan<- api.RowV1, <-chan error) {
	bufSize := cfg.BufSize
	if bufSize <= 0 {
		bufSize = 64
	}
	in := make(chan api.RowV1, bufSize)
	done := make(chan error, 1)

	go func() {
		acc := bufio.NewWriterSize(cfg.Out, 64<<10)
		dis := bufio.NewWriterSize(cfg.Discards, 64<<10)
		accEnc := json.NewEncoder(acc)
		disEnc := json.NewEncoder(dis)

		var err error
		for r := range in {
			if err != nil {
				continue
			}
			enc := accEnc
			if r.Dest == output.DestDiscarded {
				enc = disEnc
			}
			err = enc.Encode(r)
		}
		if err == nil {
			err = acc.Flush()
		}
		if err == nil {
			err = dis.Flush()
		}
		done <- err
	}()

	return in, done
}
