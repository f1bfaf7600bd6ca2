// internal/iox/open.go

// Package iox opens candidate streams and creates result streams, decoding
// and encoding gzip or framed snappy transparently by magic bytes or file
// extension.
package iox

import (
	"bufio"
	"compress/gzip"
	"io"
	"os"
	"strings"

	"github.com/golang/snappy"
	"github.com/pkg/errors"
)

// multiReadCloser closes multiple io.Closers when Close() is called.
type multiReadCloser struct {
	io.Reader
	closers []io.Closer
}

func (m *multiReadCloser) Close() error {
	var err error
	for _, c := range m.closers {
		if cerr := c.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}
	return err
}

// Input is an open candidate stream plus enough bookkeeping for progress
// reporting: Offset reports source bytes consumed so far (compressed when
// the stream is compressed) and Total the source size, -1 when unknown.
type Input struct {
	io.ReadCloser
	Offset func() int64
	Total  int64
}

// Open opens path for reading. Compression is detected by magic bytes, with
// the .gz/.sz suffix as a fallback; "-" means stdin. Peeking instead of
// seeking keeps stdin and pipes usable.
func Open(path string) (*Input, error) {
	var (
		raw     io.Reader
		closers []io.Closer
		total   int64 = -1
	)
	if path == "-" {
		raw = os.Stdin
	} else {
		fh, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		if st, serr := fh.Stat(); serr == nil && st.Mode().IsRegular() {
			total = st.Size()
		}
		raw = fh
		closers = append(closers, fh)
	}

	cr := &countingReader{r: raw}
	br := bufio.NewReaderSize(cr, 64<<10)

	magic, _ := br.Peek(4)
	switch {
	case isGzipMagic(magic) || strings.HasSuffix(path, ".gz"):
		gr, err := gzip.NewReader(br)
		if err != nil {
			closeAll(closers)
			return nil, errors.Wrapf(err, "%s: gzip", path)
		}
		closers = append([]io.Closer{gr}, closers...)
		return &Input{ReadCloser: &multiReadCloser{Reader: gr, closers: closers}, Offset: cr.Count, Total: total}, nil
	case isSnappyMagic(magic) || strings.HasSuffix(path, ".sz"):
		sr := snappy.NewReader(br)
		return &Input{ReadCloser: &multiReadCloser{Reader: sr, closers: closers}, Offset: cr.Count, Total: total}, nil
	default:
		return &Input{ReadCloser: &multiReadCloser{Reader: br, closers: closers}, Offset: cr.Count, Total: total}, nil
	}
}

func isGzipMagic(b []byte) bool {
	return len(b) >= 2 && b[0] == 0x1f && b[1] == 0x8b
}

// Framed snappy starts with a stream-identifier chunk: type 0xff, length 6.
func isSnappyMagic(b []byte) bool {
	return len(b) >= 4 && b[0] == 0xff && b[1] == 0x06 && b[2] == 0x00 && b[3] == 0x00
}

func closeAll(cs []io.Closer) {
	for _, c := range cs {
		_ = c.Close()
	}
}
