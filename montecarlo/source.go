package montecarlo

import "math/rand"

// Source supplies uniformly distributed integers in [lo, hi] inclusive.
type Source interface {
	Uniform(lo, hi int) int
}

// SourceFunc adapts a plain function to Source.
type SourceFunc func(lo, hi int) int

// Uniform calls f(lo, hi).
func (f SourceFunc) Uniform(lo, hi int) int {
	return f(lo, hi)
}

// defaultSeed is used when callers pass seed == 0.
const defaultSeed int64 = 1

// randSource is a Source over a private *rand.Rand. Not goroutine-safe.
type randSource struct {
	r *rand.Rand
}

// Uniform returns lo + Intn(hi-lo+1).
func (s randSource) Uniform(lo, hi int) int {
	return lo + s.r.Intn(hi-lo+1)
}

// NewSource returns a deterministic Source. seed == 0 selects defaultSeed.
// The returned Source must not be shared across goroutines.
func NewSource(seed int64) Source {
	if seed == 0 {
		seed = defaultSeed
	}
	return randSource{r: rand.New(rand.NewSource(seed))}
}

// deriveSeed mixes a parent seed and a stream id into a new 64-bit seed so
// that neighbouring trial ids get uncorrelated streams.
//
// Rationale:
//   - Trials need independent substreams derived from one base seed.
//   - A SplitMix64-style avalanche mix removes correlation between stream ids.
//
// Notes:
//   - Constants are the canonical SplitMix64 multipliers/finalizer (Vigna 2014);
//     small input changes produce large, well-distributed output changes.
func deriveSeed(parent int64, stream uint64) int64 {
	x := uint64(parent) ^ (stream + 0x9e3779b97f4a7c15)
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	x ^= x >> 31
	return int64(x)
}

// trialSource returns the Source for trial i of a run seeded with seed.
func trialSource(seed int64, i int) Source {
	if seed == 0 {
		seed = defaultSeed
	}
	return NewSource(deriveSeed(seed, uint64(i)))
}
