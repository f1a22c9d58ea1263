// Package main estimates the site-percolation threshold of an n×n grid by
// Monte Carlo simulation.
//
// Usage:
//
//	percolation [-config run.yaml] [-seed 42] [-workers 8] [n trials]
//
// Positional n and trials override the config file. Output:
//
//	mean                    = 0.592746
//	stddev                  = 0.009212
//	95% confidence interval = [0.590941, 0.594552]
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"

	"github.com/katalvlaran/percolate/config"
	"github.com/katalvlaran/percolate/montecarlo"
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("percolation: ")
	if err := run(context.Background(), os.Args[1:], os.Stdout); err != nil {
		log.Fatal(err)
	}
}

func run(ctx context.Context, args []string, out io.Writer) error {
	fs := flag.NewFlagSet("percolation", flag.ContinueOnError)
	cfgPath := fs.String("config", "", "YAML run configuration")
	seed := fs.Int64("seed", 0, "base seed (0 = default)")
	workers := fs.Int("workers", 0, "concurrent trials (0 = GOMAXPROCS)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg := config.Default()
	if *cfgPath != "" {
		var err error
		if cfg, err = config.Load(*cfgPath); err != nil {
			return err
		}
	}
	// Only flags given on the command line override the config file.
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "seed":
			cfg.Seed = *seed
		case "workers":
			cfg.Workers = *workers
		}
	})
	switch fs.NArg() {
	case 0:
	case 2:
		n, err := strconv.Atoi(fs.Arg(0))
		if err != nil {
			return fmt.Errorf("n: %w", err)
		}
		trials, err := strconv.Atoi(fs.Arg(1))
		if err != nil {
			return fmt.Errorf("trials: %w", err)
		}
		cfg.N, cfg.Trials = n, trials
	default:
		return fmt.Errorf("expected arguments: n trials, got %d arguments", fs.NArg())
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	st, err := montecarlo.Run(ctx, cfg.N, cfg.Trials,
		montecarlo.WithSeed(cfg.Seed),
		montecarlo.WithWorkers(cfg.Workers),
	)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "mean                    = %f\n", st.Mean())
	fmt.Fprintf(out, "stddev                  = %f\n", st.StdDev())
	fmt.Fprintf(out, "95%% confidence interval = [%f, %f]\n", st.ConfidenceLo(), st.ConfidenceHi())

	return nil
}
