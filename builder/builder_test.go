package builder_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/awantae/setpack/brute"
	"github.com/awantae/setpack/builder"
)

// TestDisjointBlocks verifies the block shape and its known optimum.
func TestDisjointBlocks(t *testing.T) {
	inst, err := builder.DisjointBlocks(4, 3)
	require.NoError(t, err)
	require.Equal(t, 4, inst.Len())

	for i := 0; i < inst.Len(); i++ {
		assert.Equal(t, 3, inst.SubsetAt(i).Len(), "block %d size", i)
		for j := i + 1; j < inst.Len(); j++ {
			ok, err := inst.Disjoint(i, j)
			require.NoError(t, err)
			assert.True(t, ok, "blocks %d and %d must not overlap", i, j)
		}
	}

	res, err := brute.MaxPacking(inst)
	require.NoError(t, err)
	assert.Equal(t, 4, res.Size, "disjoint blocks pack completely")
}

// TestIdentical verifies both known optima: 1 for nonempty copies,
// count for empty copies.
func TestIdentical(t *testing.T) {
	full, err := builder.Identical(5, 1, 2)
	require.NoError(t, err)
	res, err := brute.MaxPacking(full)
	require.NoError(t, err)
	assert.Equal(t, 1, res.Size, "nonempty copies always clash")

	empty, err := builder.Identical(5)
	require.NoError(t, err)
	res, err = brute.MaxPacking(empty)
	require.NoError(t, err)
	assert.Equal(t, 5, res.Size, "empty copies never clash")
}

// TestChain verifies the path structure and its ceil(count/2) optimum.
func TestChain(t *testing.T) {
	inst, err := builder.Chain(7)
	require.NoError(t, err)
	require.Equal(t, 7, inst.Len())

	for i := 0; i+1 < inst.Len(); i++ {
		ok, err := inst.Disjoint(i, i+1)
		require.NoError(t, err)
		assert.False(t, ok, "consecutive links %d, %d share an element", i, i+1)
	}
	for i := 0; i+2 < inst.Len(); i++ {
		ok, err := inst.Disjoint(i, i+2)
		require.NoError(t, err)
		assert.True(t, ok, "links %d, %d two apart are disjoint", i, i+2)
	}

	res, err := brute.MaxPacking(inst)
	require.NoError(t, err)
	assert.Equal(t, 4, res.Size, "chain of 7 packs ceil(7/2) = 4")
}

// TestSunflower verifies the kernel/petal structure and both optima.
func TestSunflower(t *testing.T) {
	kerneled, err := builder.Sunflower(4, []uint32{1, 2}, 2)
	require.NoError(t, err)
	require.Equal(t, 4, kerneled.Len())
	for i := 0; i < kerneled.Len(); i++ {
		assert.Equal(t, 4, kerneled.SubsetAt(i).Len(), "kernel plus petal of 2")
	}
	res, err := brute.MaxPacking(kerneled)
	require.NoError(t, err)
	assert.Equal(t, 1, res.Size, "a shared kernel blocks every pair")

	free, err := builder.Sunflower(4, nil, 2)
	require.NoError(t, err)
	res, err = brute.MaxPacking(free)
	require.NoError(t, err)
	assert.Equal(t, 4, res.Size, "an empty kernel leaves the petals independent")
}

// TestRandom_Deterministic verifies the seed contract.
func TestRandom_Deterministic(t *testing.T) {
	a, err := builder.Random(8, 16, 3, 5)
	require.NoError(t, err)
	b, err := builder.Random(8, 16, 3, 5)
	require.NoError(t, err)
	assert.Equal(t, a.String(), b.String(), "same seed must reproduce the instance")

	zero, err := builder.Random(8, 16, 3, 0)
	require.NoError(t, err)
	def, err := builder.Random(8, 16, 3, 1)
	require.NoError(t, err)
	assert.Equal(t, def.String(), zero.String(), "seed 0 selects the fixed default seed")
}

// TestRandom_Shape verifies subset sizes and element ranges.
func TestRandom_Shape(t *testing.T) {
	inst, err := builder.Random(20, 10, 4, 3)
	require.NoError(t, err)
	require.Equal(t, 20, inst.Len())

	for i := 0; i < inst.Len(); i++ {
		s := inst.SubsetAt(i)
		assert.GreaterOrEqual(t, s.Len(), 1, "subset %d has at least one element", i)
		assert.LessOrEqual(t, s.Len(), 4, "subset %d respects maxSize", i)
		for _, e := range s.Elements() {
			assert.Less(t, e, uint32(10), "subset %d element in universe", i)
		}
	}
}

// TestArgumentValidation verifies every sentinel.
func TestArgumentValidation(t *testing.T) {
	_, err := builder.DisjointBlocks(-1, 2)
	require.ErrorIs(t, err, builder.ErrBadCount)
	_, err = builder.DisjointBlocks(2, 0)
	require.ErrorIs(t, err, builder.ErrBadSize)

	_, err = builder.Identical(-1, 1)
	require.ErrorIs(t, err, builder.ErrBadCount)

	_, err = builder.Chain(-3)
	require.ErrorIs(t, err, builder.ErrBadCount)

	_, err = builder.Sunflower(-1, nil, 1)
	require.ErrorIs(t, err, builder.ErrBadCount)
	_, err = builder.Sunflower(2, nil, -1)
	require.ErrorIs(t, err, builder.ErrBadSize)

	_, err = builder.Random(-1, 10, 2, 1)
	require.ErrorIs(t, err, builder.ErrBadCount)
	_, err = builder.Random(3, 0, 2, 1)
	require.ErrorIs(t, err, builder.ErrBadUniverse)
	_, err = builder.Random(3, 10, 0, 1)
	require.ErrorIs(t, err, builder.ErrBadSize)
	_, err = builder.Random(3, 10, 11, 1)
	require.ErrorIs(t, err, builder.ErrBadSize)
}
