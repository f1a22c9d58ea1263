package montecarlo

import (
	"context"
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/percolate/percolation"
)

// RunTrials performs trials independent experiments on n×n grids, drawing
// every row and column from src, and returns their statistics.
// Returns ErrInvalidArgument if n ≤ 0, trials ≤ 0 or src is nil.
//
// Steps per trial:
//  1. Create a fresh grid.
//  2. Draw row, col ∈ [1, n] from src and Open it, until the grid percolates.
//  3. Record NumberOfOpenSites / n².
func RunTrials(n, trials int, src Source) (*Stats, error) {
	if err := validate(n, trials); err != nil {
		return nil, err
	}
	if src == nil {
		return nil, fmt.Errorf("%w: nil source", ErrInvalidArgument)
	}
	samples := make([]float64, trials)
	for i := range samples {
		x, err := runTrial(context.Background(), n, src)
		if err != nil {
			return nil, err
		}
		samples[i] = x
	}

	return &Stats{samples: samples}, nil
}

// Run performs trials independent experiments on n×n grids across
// Options.Workers goroutines (GOMAXPROCS when Workers < 1). Trial i draws from its own stream derived from
// Options.Seed, so the result does not depend on the worker count.
// Cancelling ctx aborts the run with ctx.Err().
// Returns ErrInvalidArgument if n ≤ 0 or trials ≤ 0.
func Run(ctx context.Context, n, trials int, opts ...Option) (*Stats, error) {
	if err := validate(n, trials); err != nil {
		return nil, err
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.Workers < 1 {
		o.Workers = runtime.GOMAXPROCS(0)
	}

	samples := make([]float64, trials)
	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(o.Workers)
	for i := 0; i < trials; i++ {
		eg.Go(func() error {
			x, err := runTrial(ctx, n, trialSource(o.Seed, i))
			if err != nil {
				return err
			}
			// each goroutine owns samples[i]
			samples[i] = x
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	return &Stats{samples: samples}, nil
}

// runTrial opens random sites on a fresh n×n grid until it percolates and
// returns the open fraction. ctx is polled once per n opens.
func runTrial(ctx context.Context, n int, src Source) (float64, error) {
	g, err := percolation.New(n)
	if err != nil {
		return 0, err
	}
	for step := 0; !g.Percolates(); step++ {
		if step%n == 0 {
			if err = ctx.Err(); err != nil {
				return 0, err
			}
		}
		row := src.Uniform(1, n)
		col := src.Uniform(1, n)
		if err = g.Open(row, col); err != nil {
			return 0, fmt.Errorf("montecarlo: source drew (%d,%d): %w", row, col, err)
		}
	}

	return float64(g.NumberOfOpenSites()) / float64(n*n), nil
}

func validate(n, trials int) error {
	if n <= 0 {
		return fmt.Errorf("%w: grid size must be > 0, got %d", ErrInvalidArgument, n)
	}
	if trials <= 0 {
		return fmt.Errorf("%w: trials must be > 0, got %d", ErrInvalidArgument, trials)
	}
	return nil
}
