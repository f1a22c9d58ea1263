package unionfind

import "errors"

var (
	// ErrInvalidSize indicates a non-positive element count.
	ErrInvalidSize = errors.New("unionfind: size must be > 0")
	// ErrOutOfRange indicates an element id outside [0, n).
	ErrOutOfRange = errors.New("unionfind: element out of range")
)
