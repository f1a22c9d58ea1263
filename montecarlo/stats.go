package montecarlo

import "math"

// confidence95 is the two-sided 95% normal quantile.
const confidence95 = 1.96

// Stats holds the open-fraction samples of a completed run.
type Stats struct {
	samples []float64
}

// NewStats wraps a copy of samples.
func NewStats(samples []float64) *Stats {
	return &Stats{samples: append([]float64(nil), samples...)}
}

// Trials returns the number of samples.
func (s *Stats) Trials() int {
	return len(s.samples)
}

// Samples returns a copy of the samples in trial order.
func (s *Stats) Samples() []float64 {
	return append([]float64(nil), s.samples...)
}

// Mean returns the sample mean of the percolation threshold.
func (s *Stats) Mean() float64 {
	return Mean(s.samples)
}

// StdDev returns the sample standard deviation; NaN for a single trial.
func (s *Stats) StdDev() float64 {
	return StdDev(s.samples)
}

// ConfidenceLo returns the low endpoint of the 95% confidence interval.
func (s *Stats) ConfidenceLo() float64 {
	return s.Mean() - s.halfWidth()
}

// ConfidenceHi returns the high endpoint of the 95% confidence interval.
func (s *Stats) ConfidenceHi() float64 {
	return s.Mean() + s.halfWidth()
}

func (s *Stats) halfWidth() float64 {
	return confidence95 * s.StdDev() / math.Sqrt(float64(len(s.samples)))
}

// Mean returns the arithmetic mean of xs, or NaN for an empty slice.
func Mean(xs []float64) float64 {
	if len(xs) == 0 {
		return math.NaN()
	}
	var sum float64
	for _, x := range xs {
		sum += x
	}
	return sum / float64(len(xs))
}

// StdDev returns the Bessel-corrected sample standard deviation of xs
// (divide by len-1), or NaN when len(xs) < 2.
func StdDev(xs []float64) float64 {
	if len(xs) < 2 {
		return math.NaN()
	}
	mu := Mean(xs)
	var ss float64
	for _, x := range xs {
		d := x - mu
		ss += d * d
	}
	return math.Sqrt(ss / float64(len(xs)-1))
}
