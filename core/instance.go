package core

import (
	"fmt"
	"strings"

	"github.com/RoaringBitmap/roaring/v2"
)

// Instance is an immutable, ordered collection of subsets over an
// implicit universe of element identifiers. Order is positional
// identity: subset i is addressed by its index, and duplicate subsets
// are legal and distinct.
//
// Instances are safe to share across goroutines once constructed.
type Instance struct {
	subsets  []Subset
	universe Subset
}

// NewInstance builds an instance from the given subsets, preserving
// their order. The slice is copied; the subsets themselves are shared,
// which is safe because Subset is immutable.
func NewInstance(subsets ...Subset) *Instance {
	ss := make([]Subset, len(subsets))
	copy(ss, subsets)

	u := roaring.New()
	for _, s := range ss {
		if s.bm != nil {
			u.Or(s.bm)
		}
	}

	return &Instance{subsets: ss, universe: Subset{bm: u}}
}

// InstanceFromInts builds an instance from rows of machine integers,
// one row per subset, preserving row order. Returns ErrElementRange if
// any element is negative or exceeds the uint32 range.
func InstanceFromInts(rows [][]int) (*Instance, error) {
	subsets := make([]Subset, len(rows))
	for i, row := range rows {
		s, err := SubsetFromInts(row)
		if err != nil {
			return nil, fmt.Errorf("subset %d: %w", i, err)
		}
		subsets[i] = s
	}

	return NewInstance(subsets...), nil
}

// Len returns the number of subsets L.
func (in *Instance) Len() int {
	return len(in.subsets)
}

// SubsetAt returns the subset at position i.
// Panics if i is outside [0, Len()).
func (in *Instance) SubsetAt(i int) Subset {
	if i < 0 || i >= len(in.subsets) {
		panic(ErrIndexRange.Error())
	}

	return in.subsets[i]
}

// Universe returns the union of all subsets.
func (in *Instance) Universe() Subset {
	return in.universe
}

// Disjoint reports whether subsets i and j share no element.
// Returns ErrIndexRange if either index is outside [0, Len()).
func (in *Instance) Disjoint(i, j int) (bool, error) {
	if i < 0 || i >= len(in.subsets) || j < 0 || j >= len(in.subsets) {
		return false, fmt.Errorf("%w: pair (%d, %d), length %d", ErrIndexRange, i, j, len(in.subsets))
	}

	return !in.subsets[i].Intersects(in.subsets[j]), nil
}

// Permute returns a new instance whose subset at position i is the
// receiver's subset at position perm[i]. Returns ErrBadPermutation if
// perm is not a permutation of 0..Len()-1.
func (in *Instance) Permute(perm []int) (*Instance, error) {
	n := len(in.subsets)
	if len(perm) != n {
		return nil, fmt.Errorf("%w: got %d positions, want %d", ErrBadPermutation, len(perm), n)
	}
	seen := make([]bool, n)
	for _, p := range perm {
		if p < 0 || p >= n || seen[p] {
			return nil, fmt.Errorf("%w: position %d", ErrBadPermutation, p)
		}
		seen[p] = true
	}

	out := make([]Subset, n)
	for i, p := range perm {
		out[i] = in.subsets[p]
	}

	return NewInstance(out...), nil
}

// String renders the instance as "[{..} {..} ...]" in subset order.
func (in *Instance) String() string {
	var b strings.Builder
	b.WriteByte('[')
	for i, s := range in.subsets {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(s.String())
	}
	b.WriteByte(']')

	return b.String()
}
