// Package builder types: sentinel errors shared by all generators.
package builder

import "errors"

// Sentinel errors for generator arguments.
var (
	// ErrBadCount is returned when a subset count is negative.
	ErrBadCount = errors.New("builder: subset count must be non-negative")

	// ErrBadSize is returned when a block or petal size is out of range.
	ErrBadSize = errors.New("builder: size out of range")

	// ErrBadUniverse is returned when a universe size is not positive.
	ErrBadUniverse = errors.New("builder: universe size must be positive")
)
