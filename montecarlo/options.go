package montecarlo

import "runtime"

// Options configures Run.
//
// Fields:
//
//	Seed    int64: base seed; 0 selects the package default.
//	Workers int  : concurrent trials; values < 1 select GOMAXPROCS.
type Options struct {
	Seed    int64
	Workers int
}

// Option modifies Options.
type Option func(*Options)

// WithSeed sets the base seed.
func WithSeed(seed int64) Option {
	return func(o *Options) {
		o.Seed = seed
	}
}

// WithWorkers sets the number of concurrent trials.
func WithWorkers(w int) Option {
	return func(o *Options) {
		o.Workers = w
	}
}

// DefaultOptions returns Seed = 0 and Workers = GOMAXPROCS.
func DefaultOptions() Options {
	return Options{
		Seed:    0,
		Workers: runtime.GOMAXPROCS(0),
	}
}
