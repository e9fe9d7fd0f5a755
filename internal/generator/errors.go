package generator

import "errors"

var (
	// ErrInvalidConfiguration indicates an unknown length tier, a non-positive length,
	// or an otherwise unusable setting.
	ErrInvalidConfiguration = errors.New("generator: invalid configuration")
	// ErrInfiniteLoopDetected indicates Characters exhausted its retry policy.
	// The word lists are too sparse for the requested length window.
	ErrInfiniteLoopDetected = errors.New("generator: infinite loop detected")
)
