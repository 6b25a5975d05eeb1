package search

import (
	"context"
	"fmt"
	"runtime"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/flattice/lattice"
)

// ctxCheckEvery is how many subsets a worker evaluates between context checks.
const ctxCheckEvery = 1024

// Options tunes MinimumClosedNeighborhoods.
type Options struct {
	// MaxSubset caps the largest subset size searched. 0 searches every
	// size up to the number of valid vertices.
	MaxSubset int
	// Workers bounds concurrent subset sizes. <= 0 uses GOMAXPROCS.
	Workers int
}

// Result is the best subset found for one subset size.
type Result struct {
	K          int              `json:"k"`
	Subset     []lattice.Vertex `json:"subset"`
	ClosedSize int              `json:"closed_size"`
}

// MinimumClosedNeighborhoods returns, for k = 0…min(MaxSubset, |valid|), the
// first k-subset of g.ValidNodes() (in lexicographic index order) whose
// closed out-neighborhood is smallest. results[k].K == k.
//
// Errors:
//   - lattice.ErrNilGraph, ErrNegativeMaxSubset on bad arguments.
//   - the context error if ctx is cancelled before the search completes.
func MinimumClosedNeighborhoods(ctx context.Context, g *lattice.Graph, opts Options) ([]Result, error) {
	if g == nil {
		return nil, lattice.ErrNilGraph
	}
	if opts.MaxSubset < 0 {
		return nil, fmt.Errorf("MinimumClosedNeighborhoods(max=%d): %w", opts.MaxSubset, ErrNegativeMaxSubset)
	}

	valid := g.ValidNodes()
	maxK := len(valid)
	if opts.MaxSubset > 0 && opts.MaxSubset < maxK {
		maxK = opts.MaxSubset
	}
	workers := opts.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	logger := zerolog.Ctx(ctx)
	logger.Info().
		Int("radius", g.Radius()).
		Int("valid", len(valid)).
		Int("max_subset", maxK).
		Int("workers", workers).
		Msg("searching minimum closed neighborhoods")

	results := make([]Result, maxK+1)
	eg, egCtx := errgroup.WithContext(ctx)
	eg.SetLimit(workers)
	for k := 0; k <= maxK; k++ {
		eg.Go(func() error {
			start := time.Now()
			res, err := minimumFor(egCtx, g, valid, k)
			if err != nil {
				return fmt.Errorf("k=%d: %w", k, err)
			}
			results[k] = res
			logger.Debug().
				Int("k", k).
				Uint64("subsets", Binomial(len(valid), k)).
				Int("closed_size", res.ClosedSize).
				Dur("elapsed", time.Since(start)).
				Msg("subset size searched")

			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, fmt.Errorf("MinimumClosedNeighborhoods: %w", err)
	}

	return results, nil
}

// minimumFor scans every k-subset of valid and keeps the first minimizer.
func minimumFor(ctx context.Context, g *lattice.Graph, valid []lattice.Vertex, k int) (Result, error) {
	best := Result{K: k, Subset: make([]lattice.Vertex, 0, k), ClosedSize: -1}
	buf := make([]lattice.Vertex, k)

	var (
		err  error
		seen int
	)
	Combinations(len(valid), k, func(idx []int) bool {
		if seen%ctxCheckEvery == 0 {
			if err = ctx.Err(); err != nil {
				return false
			}
		}
		seen++

		for i, j := range idx {
			buf[i] = valid[j]
		}
		size := g.ClosedOutNeighborhood(buf).Len()
		if best.ClosedSize < 0 || size < best.ClosedSize {
			best.ClosedSize = size
			best.Subset = append(best.Subset[:0], buf...)
		}

		return true
	})
	if err != nil {
		return Result{}, err
	}

	return best, nil
}
