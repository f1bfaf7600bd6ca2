// internal/iox/counting.go
package iox

import (
	"io"
	"sync/atomic"
)

// countingReader tracks how many bytes have been pulled from the underlying
// stream. The pipeline reads on one goroutine while progress reporting polls
// from another, hence the atomic.
type countingReader struct {
	r io.Reader
	n atomic.Int64
}

func (c *countingReader) Read(p []byte) (int, error) {
	n, err := c.r.Read(p)
	c.n.Add(int64(n))
	return n, err
}

func (c *countingReader) Count() int64 { return c.n.Load() }
