package cache

import "errors"

var (
	// ErrDisabled indicates an operation that needs a nonzero capacity.
	ErrDisabled = errors.New("cache: disabled")

	// ErrNegativeCapacity indicates a capacity below zero.
	ErrNegativeCapacity = errors.New("cache: negative capacity")
)
