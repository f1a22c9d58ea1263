package montecarlo

import "github.com/katalvlaran/percolate/percolation"

// ErrInvalidArgument indicates a non-positive grid size or trial count, a nil
// Source, or a coordinate outside [1, n] drawn from the Source. It is the same
// sentinel as percolation.ErrInvalidArgument, so one errors.Is check covers
// every rejected input of a run.
var ErrInvalidArgument = percolation.ErrInvalidArgument
