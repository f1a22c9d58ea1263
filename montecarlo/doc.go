// Package montecarlo estimates the site-percolation threshold by repeated
// independent trials on fresh percolation grids.
//
// Each trial opens uniformly random sites until the grid percolates and
// records the fraction of open sites. Stats aggregates the samples into the
// mean, Bessel-corrected standard deviation and a 95% confidence interval
// mean ± 1.96·s/√T.
//
// Entry points:
//
//   - RunTrials(n, trials, src): sequential, draws every coordinate from src.
//   - Run(ctx, n, trials, opts...): parallel over Options.Workers goroutines;
//     trial i uses a random stream derived from (Options.Seed, i), so the
//     samples are identical for any worker count.
//
// Single-trial policy: the sample standard deviation of one value is
// undefined, so StdDev, ConfidenceLo and ConfidenceHi return NaN when
// Trials() == 1.
//
// Liveness: a trial ends only when the grid percolates, which needs a Source
// that eventually yields every coordinate. This is not defended against.
package montecarlo
