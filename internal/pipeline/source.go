// internal/pipeline/source.go
package pipeline

import (
	"fragfilter-core/frag"
)

// Source is the minimal capability the pipeline needs from an input stream:
// one spot's fragment per call, io.EOF at end. Any cursor (including fakes
// in tests) can satisfy this.
type Source interface {
	Next() (frag.Fragment, error)
}
