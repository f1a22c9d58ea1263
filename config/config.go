// Package config loads and validates percolation run settings.
//
// A run is described by grid size, trial count, base seed and worker count.
// Settings come from Default, optionally overlaid by a YAML file:
//
//	n: 200
//	trials: 100
//	seed: 42
//	workers: 8
package config

import (
	"errors"
	"fmt"
	"os"
	"runtime"

	"gopkg.in/yaml.v3"
)

// ErrInvalidConfig indicates a setting outside its allowed range.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config holds the settings of one Monte Carlo run.
type Config struct {
	N       int   `yaml:"n"`       // grid side length
	Trials  int   `yaml:"trials"`  // independent trials
	Seed    int64 `yaml:"seed"`    // base seed, 0 = package default
	Workers int   `yaml:"workers"` // concurrent trials, 0 = GOMAXPROCS
}

// Default returns a 200×200 grid, 100 trials, seed 0 and GOMAXPROCS workers.
func Default() *Config {
	return &Config{
		N:       200,
		Trials:  100,
		Seed:    0,
		Workers: runtime.GOMAXPROCS(0),
	}
}

// Load reads a YAML file over Default. A missing file is not an error and
// yields the defaults; malformed YAML is.
func Load(path string) (*Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}
	if err = yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("config: parse %s: %w", path, err)
	}

	return cfg, nil
}

// Validate checks that N and Trials are positive and Workers is not negative.
func (c *Config) Validate() error {
	if c.N <= 0 {
		return fmt.Errorf("%w: n must be > 0, got %d", ErrInvalidConfig, c.N)
	}
	if c.Trials <= 0 {
		return fmt.Errorf("%w: trials must be > 0, got %d", ErrInvalidConfig, c.Trials)
	}
	if c.Workers < 0 {
		return fmt.Errorf("%w: workers must be >= 0, got %d", ErrInvalidConfig, c.Workers)
	}

	return nil
}
