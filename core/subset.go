package core

import (
	"math"
	"strconv"
	"strings"

	"github.com/RoaringBitmap/roaring/v2"
)

// Subset is an immutable set of element identifiers.
//
// The zero value is the empty subset. Subsets are safe to copy and to
// share across goroutines; no method mutates the receiver.
type Subset struct {
	bm *roaring.Bitmap
}

// NewSubset returns the subset containing exactly the given elements.
// Duplicates collapse; order is irrelevant.
func NewSubset(elems ...uint32) Subset {
	bm := roaring.New()
	bm.AddMany(elems)

	return Subset{bm: bm}
}

// SubsetFromInts converts a slice of machine integers into a Subset.
// Returns ErrElementRange if any element is negative or exceeds
// math.MaxUint32.
func SubsetFromInts(elems []int) (Subset, error) {
	bm := roaring.New()
	for _, e := range elems {
		if e < 0 || uint64(e) > math.MaxUint32 {
			return Subset{}, ErrElementRange
		}
		bm.Add(uint32(e))
	}

	return Subset{bm: bm}, nil
}

// Len returns the number of elements in the subset.
func (s Subset) Len() int {
	if s.bm == nil {
		return 0
	}

	return int(s.bm.GetCardinality())
}

// IsEmpty reports whether the subset has no elements.
func (s Subset) IsEmpty() bool {
	return s.bm == nil || s.bm.IsEmpty()
}

// Contains reports whether e is an element of the subset.
func (s Subset) Contains(e uint32) bool {
	return s.bm != nil && s.bm.Contains(e)
}

// Intersects reports whether the subset shares at least one element
// with other. Empty subsets intersect nothing.
func (s Subset) Intersects(other Subset) bool {
	if s.bm == nil || other.bm == nil {
		return false
	}

	return s.bm.Intersects(other.bm)
}

// Elements returns the elements in ascending order.
// The returned slice is fresh; callers may modify it.
func (s Subset) Elements() []uint32 {
	if s.bm == nil {
		return nil
	}

	return s.bm.ToArray()
}

// Equal reports whether both subsets contain exactly the same elements.
func (s Subset) Equal(other Subset) bool {
	sn, on := s.Len(), other.Len()
	if sn != on {
		return false
	}
	if sn == 0 {
		return true
	}

	return int(s.bm.AndCardinality(other.bm)) == sn
}

// Clone returns a deep copy of the subset.
func (s Subset) Clone() Subset {
	if s.bm == nil {
		return Subset{bm: roaring.New()}
	}

	return Subset{bm: s.bm.Clone()}
}

// String renders the subset as "{e1 e2 ...}" in ascending element order.
func (s Subset) String() string {
	var b strings.Builder
	b.WriteByte('{')
	for i, e := range s.Elements() {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(strconv.FormatUint(uint64(e), 10))
	}
	b.WriteByte('}')

	return b.String()
}
