package core

import (
	"fmt"

	"github.com/bits-and-blooms/bitset"
)

// Selection is an immutable fixed-width binary vector marking which
// subsets of an instance are chosen: bit i set selects subset i.
//
// The zero value is the empty selection of width 0. Selections are safe
// to copy and to share across goroutines; no method mutates the
// receiver.
type Selection struct {
	width int
	bits  *bitset.BitSet
}

// NewSelection returns the all-zero selection of the given width.
// Returns ErrBadWidth if width is negative.
func NewSelection(width int) (Selection, error) {
	if width < 0 {
		return Selection{}, ErrBadWidth
	}

	return Selection{width: width, bits: bitset.New(uint(width))}, nil
}

// Bitfield decodes v into its base-2 digit vector of exactly width
// digits, most significant digit first, zero-padded on the left.
// Digit i of the result is (v >> (width-1-i)) & 1.
//
// Returns ErrBadWidth if width is negative, and ErrOverflow if v does
// not fit in width digits (width < 64 and v >= 1<<width). Bitfield(0, 0)
// is the legal empty selection.
//
// Complexity: O(width) time, O(width) space.
func Bitfield(v uint64, width int) (Selection, error) {
	if width < 0 {
		return Selection{}, ErrBadWidth
	}
	if width < 64 && v >= 1<<uint(width) {
		return Selection{}, fmt.Errorf("%w: %d needs more than %d digits", ErrOverflow, v, width)
	}

	bits := bitset.New(uint(width))
	for i := 0; i < width; i++ {
		if (v>>uint(width-1-i))&1 == 1 {
			bits.Set(uint(i))
		}
	}

	return Selection{width: width, bits: bits}, nil
}

// SelectionFromBits builds a selection from explicit digits in the same
// MSB-first order Bitfield produces. Returns ErrBadDigit if any digit
// is outside {0, 1}.
func SelectionFromBits(digits []uint8) (Selection, error) {
	bits := bitset.New(uint(len(digits)))
	for i, d := range digits {
		switch d {
		case 0:
			// unset by construction
		case 1:
			bits.Set(uint(i))
		default:
			return Selection{}, fmt.Errorf("%w: digit %d is %d", ErrBadDigit, i, d)
		}
	}

	return Selection{width: len(digits), bits: bits}, nil
}

// SelectionFromIndices builds a selection of the given width with
// exactly the listed positions set. Returns ErrBadWidth for a negative
// width and ErrIndexRange for positions outside [0, width).
func SelectionFromIndices(width int, indices ...int) (Selection, error) {
	if width < 0 {
		return Selection{}, ErrBadWidth
	}
	bits := bitset.New(uint(width))
	for _, i := range indices {
		if i < 0 || i >= width {
			return Selection{}, fmt.Errorf("%w: position %d, width %d", ErrIndexRange, i, width)
		}
		bits.Set(uint(i))
	}

	return Selection{width: width, bits: bits}, nil
}

// Width returns the number of digits in the selection.
func (s Selection) Width() int {
	return s.width
}

// Selected reports whether position i is set.
// Panics if i is outside [0, Width()).
func (s Selection) Selected(i int) bool {
	if i < 0 || i >= s.width {
		panic(ErrIndexRange.Error())
	}

	return s.bits.Test(uint(i))
}

// Bit returns digit i as 0 or 1.
// Panics if i is outside [0, Width()).
func (s Selection) Bit(i int) uint8 {
	if s.Selected(i) {
		return 1
	}

	return 0
}

// Count returns the number of set positions.
func (s Selection) Count() int {
	if s.bits == nil {
		return 0
	}

	return int(s.bits.Count())
}

// Indices returns the set positions in ascending order.
// The returned slice is fresh; callers may modify it.
func (s Selection) Indices() []int {
	if s.bits == nil {
		return nil
	}
	out := make([]int, 0, s.bits.Count())
	for i, ok := s.bits.NextSet(0); ok; i, ok = s.bits.NextSet(i + 1) {
		out = append(out, int(i))
	}

	return out
}

// Bits returns the digit vector in MSB-first order, matching Bitfield.
func (s Selection) Bits() []uint8 {
	out := make([]uint8, s.width)
	for i := 0; i < s.width; i++ {
		if s.bits.Test(uint(i)) {
			out[i] = 1
		}
	}

	return out
}

// Value interprets the digits MSB-first as an unsigned integer,
// inverting Bitfield. Returns ErrOverflow when a set digit lies beyond
// the 64 least significant positions.
func (s Selection) Value() (uint64, error) {
	var v uint64
	for _, i := range s.Indices() {
		shift := s.width - 1 - i
		if shift >= 64 {
			return 0, fmt.Errorf("%w: digit %d of width %d", ErrOverflow, i, s.width)
		}
		v |= 1 << uint(shift)
	}

	return v, nil
}

// Equal reports whether both selections have the same width and the
// same set positions.
func (s Selection) Equal(other Selection) bool {
	if s.width != other.width {
		return false
	}
	if s.bits == nil || other.bits == nil {
		return s.Count() == 0 && other.Count() == 0
	}

	return s.bits.Equal(other.bits)
}

// Clone returns a deep copy of the selection.
func (s Selection) Clone() Selection {
	if s.bits == nil {
		return Selection{width: s.width}
	}

	return Selection{width: s.width, bits: s.bits.Clone()}
}

// String renders the digit vector as a string of '0' and '1' runes in
// MSB-first order, e.g. "011" for width 3 with positions 1 and 2 set.
func (s Selection) String() string {
	out := make([]byte, s.width)
	for i := 0; i < s.width; i++ {
		if s.bits != nil && s.bits.Test(uint(i)) {
			out[i] = '1'
		} else {
			out[i] = '0'
		}
	}

	return string(out)
}
