package builder

import (
	"fmt"
	"math/rand"

	"github.com/awantae/setpack/core"
)

// defaultRNGSeed is the fixed seed used when callers pass seed == 0.
const defaultRNGSeed int64 = 1

// DisjointBlocks returns count pairwise-disjoint subsets of the given
// size: subset i holds the consecutive elements [i*size, (i+1)*size).
// The optimum packing takes every subset.
//
// Returns ErrBadCount for a negative count and ErrBadSize for a
// non-positive size.
func DisjointBlocks(count, size int) (*core.Instance, error) {
	if count < 0 {
		return nil, fmt.Errorf("%w: %d", ErrBadCount, count)
	}
	if size < 1 {
		return nil, fmt.Errorf("%w: block size %d", ErrBadSize, size)
	}

	subsets := make([]core.Subset, count)
	for i := 0; i < count; i++ {
		elems := make([]uint32, size)
		for j := 0; j < size; j++ {
			elems[j] = uint32(i*size + j)
		}
		subsets[i] = core.NewSubset(elems...)
	}

	return core.NewInstance(subsets...), nil
}

// Identical returns count copies of the subset holding exactly elems.
// Two copies of a nonempty subset always intersect, so the optimum is
// 1; copies of the empty subset never intersect, so the optimum is
// count.
//
// Returns ErrBadCount for a negative count.
func Identical(count int, elems ...uint32) (*core.Instance, error) {
	if count < 0 {
		return nil, fmt.Errorf("%w: %d", ErrBadCount, count)
	}

	proto := core.NewSubset(elems...)
	subsets := make([]core.Subset, count)
	for i := range subsets {
		subsets[i] = proto
	}

	return core.NewInstance(subsets...), nil
}

// Chain returns the path structure: subset i = {i, i+1}, so consecutive
// subsets share exactly one element and non-consecutive ones are
// disjoint. The optimum packs every other subset, ceil(count/2).
//
// Returns ErrBadCount for a negative count.
func Chain(count int) (*core.Instance, error) {
	if count < 0 {
		return nil, fmt.Errorf("%w: %d", ErrBadCount, count)
	}

	subsets := make([]core.Subset, count)
	for i := 0; i < count; i++ {
		subsets[i] = core.NewSubset(uint32(i), uint32(i+1))
	}

	return core.NewInstance(subsets...), nil
}

// Sunflower returns count subsets that all contain the kernel plus
// petalSize private elements each; the petals are drawn from fresh
// elements above the kernel. Any two subsets meet exactly in the
// kernel, so the optimum is 1 for a nonempty kernel and count for an
// empty one.
//
// Returns ErrBadCount for a negative count and ErrBadSize for a
// negative petal size.
func Sunflower(count int, kernel []uint32, petalSize int) (*core.Instance, error) {
	if count < 0 {
		return nil, fmt.Errorf("%w: %d", ErrBadCount, count)
	}
	if petalSize < 0 {
		return nil, fmt.Errorf("%w: petal size %d", ErrBadSize, petalSize)
	}

	// Petal elements start past the largest kernel element.
	var base uint32
	for _, e := range kernel {
		if e >= base {
			base = e + 1
		}
	}

	subsets := make([]core.Subset, count)
	for i := 0; i < count; i++ {
		elems := make([]uint32, 0, len(kernel)+petalSize)
		elems = append(elems, kernel...)
		for j := 0; j < petalSize; j++ {
			elems = append(elems, base+uint32(i*petalSize+j))
		}
		subsets[i] = core.NewSubset(elems...)
	}

	return core.NewInstance(subsets...), nil
}

// Random returns count subsets drawn uniformly from a universe of the
// given size, each with 1 to maxSize elements before duplicates
// collapse. The instance is fully determined by seed; seed 0 selects
// the fixed default seed.
//
// Returns ErrBadCount for a negative count, ErrBadUniverse for a
// non-positive universe, and ErrBadSize when maxSize is not in
// [1, universe].
func Random(count, universe, maxSize int, seed int64) (*core.Instance, error) {
	if count < 0 {
		return nil, fmt.Errorf("%w: %d", ErrBadCount, count)
	}
	if universe < 1 {
		return nil, fmt.Errorf("%w: %d", ErrBadUniverse, universe)
	}
	if maxSize < 1 || maxSize > universe {
		return nil, fmt.Errorf("%w: maxSize %d with universe %d", ErrBadSize, maxSize, universe)
	}

	s := seed
	if s == 0 {
		s = defaultRNGSeed
	}
	rng := rand.New(rand.NewSource(s))

	subsets := make([]core.Subset, count)
	for i := 0; i < count; i++ {
		n := 1 + rng.Intn(maxSize)
		elems := make([]uint32, n)
		for j := range elems {
			elems[j] = uint32(rng.Intn(universe))
		}
		subsets[i] = core.NewSubset(elems...)
	}

	return core.NewInstance(subsets...), nil
}
