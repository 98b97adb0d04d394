package core

import "github.com/RoaringBitmap/roaring/v2"

// Coverage accumulates the elements of chosen subsets during a packing
// scan. It is the single mutable helper of this package: packers keep
// one Coverage per scan and test each candidate subset against it
// before committing.
//
// Coverage is not safe for concurrent use; give each goroutine its own.
type Coverage struct {
	bm *roaring.Bitmap
}

// NewCoverage returns an empty coverage accumulator.
func NewCoverage() *Coverage {
	return &Coverage{bm: roaring.New()}
}

// Overlaps reports whether s shares at least one element with the
// elements accumulated so far.
func (c *Coverage) Overlaps(s Subset) bool {
	if s.bm == nil {
		return false
	}

	return c.bm.Intersects(s.bm)
}

// Include adds all elements of s to the accumulator.
func (c *Coverage) Include(s Subset) {
	if s.bm == nil {
		return
	}
	c.bm.Or(s.bm)
}

// Exclude removes all elements of s from the accumulator.
// When the accumulated subsets are pairwise disjoint, excluding one of
// them restores the coverage to exactly the union of the others.
func (c *Coverage) Exclude(s Subset) {
	if s.bm == nil {
		return
	}
	c.bm.AndNot(s.bm)
}

// Len returns the number of accumulated elements.
func (c *Coverage) Len() int {
	return int(c.bm.GetCardinality())
}

// Reset empties the accumulator for reuse.
func (c *Coverage) Reset() {
	c.bm.Clear()
}

// Clone returns an independent deep copy of the accumulator.
func (c *Coverage) Clone() *Coverage {
	return &Coverage{bm: c.bm.Clone()}
}
