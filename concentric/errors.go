package concentric

import "errors"

var (
	// ErrNonPositiveSize indicates the size parameter is zero or negative.
	ErrNonPositiveSize = errors.New("concentric: size parameter must be a positive integer")
)
