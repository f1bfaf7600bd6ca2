// internal/pipeline/pipeline.go
package pipeline

import (
	"context"
	"io"

	"golang.org/x/sync/errgroup"

	"fragfilter-core/classify"
	"fragfilter-core/frag"
	"fragfilter/internal/output"
	"fragfilter/pkg/api"
)

// Config controls the classification pipeline.
type Config struct {
	Threads int // classification worker goroutines (>=1)
}

// Stats tallies one run. The collector goroutine owns it while the pipeline
// is live; callers read the copy returned by Run.
type Stats struct {
	Spots     int64
	Accepted  int64
	Discarded int64
	Rows      int64
	ByReason  map[classify.Reason]int64
}

// Run pulls fragments from src, normalizes and classifies them on worker
// goroutines, and emits the surviving rows via emit. The rows of one
// fragment are always emitted consecutively; fragment order across workers
// is not defined, so run with Threads=1 when byte-reproducible output
// matters. tick, if non-nil, is called once per fragment after its rows are
// out. Fragments with no candidates are skipped, not classified.
func Run(ctx context.Context, cfg Config, src Source, emit func(api.RowV1) error, tick func()) (Stats, error) {
	threads := cfg.Threads
	if threads < 1 {
		threads = 1
	}

	type outcome struct {
		f   frag.Fragment
		res classify.Result
	}

	stats := Stats{ByReason: make(map[classify.Reason]int64)}

	jobs := make(chan frag.Fragment, threads*2)
	results := make(chan outcome, threads*2)

	g, gctx := errgroup.WithContext(ctx)

	// Feeder: the only goroutine touching src.
	g.Go(func() error {
		defer close(jobs)
		for {
			f, err := src.Next()
			if err == io.EOF {
				return nil
			}
			if err != nil {
				return err
			}
			if len(f.Detail) == 0 {
				continue // nothing to process
			}
			select {
			case jobs <- f:
			case <-gctx.Done():
				return gctx.Err()
			}
		}
	})

	// Workers: normalize + classify, fan in to results.
	workers, wctx := errgroup.WithContext(gctx)
	for i := 0; i < threads; i++ {
		workers.Go(func() error {
			for f := range jobs {
				f.Normalize()
				out := outcome{f: f, res: classify.Classify(f)}
				select {
				case results <- out:
				case <-wctx.Done():
					return wctx.Err()
				}
			}
			return nil
		})
	}
	g.Go(func() error {
		defer close(results)
		return workers.Wait()
	})

	// Collector: stats plus emission, one whole fragment at a time.
	g.Go(func() error {
		for out := range results {
			stats.Spots++
			stats.ByReason[out.res.Reason]++
			if out.res.Verdict == classify.Accepted {
				stats.Accepted++
			} else {
				stats.Discarded++
			}
			for _, row := range output.Rows(out.f, out.res) {
				if err := emit(row); err != nil {
					return err
				}
				stats.Rows++
			}
			if tick != nil {
				tick()
			}
		}
		return nil
	})

	err := g.Wait()
	return stats, err
}
