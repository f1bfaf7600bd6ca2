// internal/iox/create.go
package iox

import (
	"compress/gzip"
	"io"
	"os"
	"strings"

	"github.com/golang/snappy"
	"github.com/pkg/errors"
)

// multiWriteCloser closes in order: compressor first so it can flush its
// trailer, the file last.
type multiWriteCloser struct {
	io.Writer
	closers []io.Closer
}

func (m *multiWriteCloser) Close() error {
	var err error
	for _, c := range m.closers {
		if cerr := c.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}
	return err
}

// Create opens path for writing, compressing by extension: .gz yields gzip,
// .sz yields framed snappy. The caller owns Close.
func Create(path string) (io.WriteCloser, error) {
	fh, err := os.Create(path)
	if err != nil {
		return nil, errors.Wrap(err, "create output")
	}
	switch {
	case strings.HasSuffix(path, ".gz"):
		gw := gzip.NewWriter(fh)
		return &multiWriteCloser{Writer: gw, closers: []io.Closer{gw, fh}}, nil
	case strings.HasSuffix(path, ".sz"):
		sw := snappy.NewBufferedWriter(fh)
		return &multiWriteCloser{Writer: sw, closers: []io.Closer{sw, fh}}, nil
	default:
		return fh, nil
	}
}
