// Package core types: sentinel errors and the shared packing result.
package core

import "errors"

// Sentinel errors for instance and selection construction.
var (
	// ErrBadWidth is returned when a selection width is negative.
	ErrBadWidth = errors.New("core: selection width must be non-negative")

	// ErrOverflow is returned by Bitfield when the value does not fit
	// in the requested number of digits, and by Selection.Value when
	// the digit vector encodes a value beyond 64 bits.
	ErrOverflow = errors.New("core: value does not fit in bitfield width")

	// ErrBadDigit is returned when a digit outside {0, 1} is supplied.
	ErrBadDigit = errors.New("core: selection digits must be 0 or 1")

	// ErrElementRange is returned when an element identifier is negative
	// or exceeds the 32-bit unsigned range.
	ErrElementRange = errors.New("core: element out of uint32 range")

	// ErrIndexRange is returned when a subset or digit index is outside
	// the instance or selection bounds.
	ErrIndexRange = errors.New("core: index out of range")

	// ErrBadPermutation is returned by Instance.Permute when the given
	// slice is not a permutation of 0..L-1.
	ErrBadPermutation = errors.New("core: not a permutation of subset indices")

	// ErrWidthMismatch is returned when a selection width differs from
	// the instance length it is applied to.
	ErrWidthMismatch = errors.New("core: selection width does not match instance length")

	// ErrBadInput is returned (wrapped, with detail) when a JSON subset
	// collection is malformed: not an array of arrays, non-integer or
	// out-of-range elements, or trailing data.
	ErrBadInput = errors.New("core: malformed subset collection")
)

// PackingResult holds the outcome of a packing computation.
type PackingResult struct {
	// Selection marks the chosen subsets; bit i set selects subset i.
	Selection Selection

	// Size is the number of chosen subsets.
	// Invariant: Size == Selection.Count().
	Size int
}
