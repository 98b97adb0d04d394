package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/awantae/setpack/core"
)

// TestInstance_Basics covers ordered construction, addressing, and the
// universe union.
func TestInstance_Basics(t *testing.T) {
	inst := core.NewInstance(
		core.NewSubset(4, 5),
		core.NewSubset(4),
		core.NewSubset(5),
	)
	require.Equal(t, 3, inst.Len())
	assert.Equal(t, "{4 5}", inst.SubsetAt(0).String(), "order is positional identity")
	assert.Equal(t, "{4}", inst.SubsetAt(1).String())
	assert.Equal(t, []uint32{4, 5}, inst.Universe().Elements())
	assert.Equal(t, "[{4 5} {4} {5}]", inst.String())

	assert.Panics(t, func() { inst.SubsetAt(3) }, "slice-like access")

	empty := core.NewInstance()
	assert.Zero(t, empty.Len())
	assert.True(t, empty.Universe().IsEmpty())
}

// TestInstance_Disjoint covers the index-checked pairwise primitive.
func TestInstance_Disjoint(t *testing.T) {
	inst := core.NewInstance(core.NewSubset(4, 5), core.NewSubset(4), core.NewSubset(5))

	ok, err := inst.Disjoint(1, 2)
	require.NoError(t, err)
	assert.True(t, ok, "{4} and {5}")

	ok, err = inst.Disjoint(0, 1)
	require.NoError(t, err)
	assert.False(t, ok, "both contain 4")

	ok, err = inst.Disjoint(1, 1)
	require.NoError(t, err)
	assert.False(t, ok, "a nonempty subset meets itself")

	_, err = inst.Disjoint(0, 3)
	require.ErrorIs(t, err, core.ErrIndexRange)
	_, err = inst.Disjoint(-1, 0)
	require.ErrorIs(t, err, core.ErrIndexRange)
}

// TestInstance_Permute verifies reordering and permutation validation.
func TestInstance_Permute(t *testing.T) {
	inst := core.NewInstance(core.NewSubset(1), core.NewSubset(2), core.NewSubset(3))

	rev, err := inst.Permute([]int{2, 1, 0})
	require.NoError(t, err)
	assert.Equal(t, "[{3} {2} {1}]", rev.String())
	assert.Equal(t, "[{1} {2} {3}]", inst.String(), "the receiver is untouched")

	_, err = inst.Permute([]int{0, 1})
	require.ErrorIs(t, err, core.ErrBadPermutation, "wrong length")
	_, err = inst.Permute([]int{0, 1, 1})
	require.ErrorIs(t, err, core.ErrBadPermutation, "repeated position")
	_, err = inst.Permute([]int{0, 1, 3})
	require.ErrorIs(t, err, core.ErrBadPermutation, "position out of range")
}

// TestInstanceFromInts verifies row conversion and error attribution.
func TestInstanceFromInts(t *testing.T) {
	inst, err := core.InstanceFromInts([][]int{{4, 5}, {}, {5}})
	require.NoError(t, err)
	assert.Equal(t, 3, inst.Len())
	assert.True(t, inst.SubsetAt(1).IsEmpty(), "empty rows are legal empty subsets")

	_, err = core.InstanceFromInts([][]int{{1}, {-2}})
	require.ErrorIs(t, err, core.ErrElementRange)
	assert.Contains(t, err.Error(), "subset 1", "the offending row is named")
}

// TestInstance_ConstructionCopies verifies that mutating the caller's
// slice after construction does not leak into the instance.
func TestInstance_ConstructionCopies(t *testing.T) {
	subsets := []core.Subset{core.NewSubset(1), core.NewSubset(2)}
	inst := core.NewInstance(subsets...)

	subsets[0] = core.NewSubset(99)
	assert.Equal(t, "{1}", inst.SubsetAt(0).String(), "the subset slice is copied")
}
