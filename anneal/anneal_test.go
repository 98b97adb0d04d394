package anneal_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/awantae/setpack/anneal"
	"github.com/awantae/setpack/brute"
	"github.com/awantae/setpack/builder"
	"github.com/awantae/setpack/core"
	"github.com/awantae/setpack/greedy"
)

// TestPack_Errors verifies nil-instance and option validation.
func TestPack_Errors(t *testing.T) {
	_, err := anneal.Pack(nil)
	require.ErrorIs(t, err, anneal.ErrNilInstance)

	inst, err := core.InstanceFromInts([][]int{{1}, {2}})
	require.NoError(t, err)

	_, err = anneal.Pack(inst, anneal.WithIterations(0))
	require.ErrorIs(t, err, anneal.ErrOptionViolation, "zero iterations is invalid")

	_, err = anneal.Pack(inst, anneal.WithCooling(1.0))
	require.ErrorIs(t, err, anneal.ErrOptionViolation, "cooling must be strictly below 1")

	_, err = anneal.Pack(inst, anneal.WithStartTemp(0))
	require.ErrorIs(t, err, anneal.ErrOptionViolation, "temperature must be positive")
}

// TestPack_EmptyInstance verifies the L == 0 edge.
func TestPack_EmptyInstance(t *testing.T) {
	res, err := anneal.Pack(core.NewInstance())
	require.NoError(t, err)
	assert.Zero(t, res.Size)
	assert.Zero(t, res.Selection.Width())
}

// TestPack_AlwaysValid verifies that every reported result is a real
// packing, across seeds and instances.
func TestPack_AlwaysValid(t *testing.T) {
	for seed := int64(1); seed <= 6; seed++ {
		inst, err := builder.Random(12, 24, 4, seed)
		require.NoError(t, err)

		res, err := anneal.Pack(inst, anneal.WithSeed(seed), anneal.WithIterations(2000))
		require.NoError(t, err)

		ok, err := brute.CheckDisjoint(inst, res.Selection)
		require.NoError(t, err)
		assert.True(t, ok, "seed %d: reported selection must be disjoint", seed)
		assert.Equal(t, res.Size, res.Selection.Count(), "seed %d: size bookkeeping", seed)
	}
}

// TestPack_DeterministicPerSeed verifies same seed, same result, and
// that seed 0 means the fixed default seed.
func TestPack_DeterministicPerSeed(t *testing.T) {
	inst, err := builder.Random(14, 30, 5, 7)
	require.NoError(t, err)

	a, err := anneal.Pack(inst, anneal.WithSeed(11))
	require.NoError(t, err)
	b, err := anneal.Pack(inst, anneal.WithSeed(11))
	require.NoError(t, err)
	assert.True(t, a.Selection.Equal(b.Selection), "same seed must reproduce the selection")
	assert.Equal(t, a.Size, b.Size)

	zero, err := anneal.Pack(inst)
	require.NoError(t, err)
	def, err := anneal.Pack(inst, anneal.WithSeed(0))
	require.NoError(t, err)
	assert.True(t, zero.Selection.Equal(def.Selection), "seed 0 is the fixed default seed")
}

// TestPack_WarmStartNotWorseThanGreedy verifies that warm-started
// annealing never reports less than its greedy seed.
func TestPack_WarmStartNotWorseThanGreedy(t *testing.T) {
	for seed := int64(1); seed <= 5; seed++ {
		inst, err := builder.Random(12, 20, 4, seed)
		require.NoError(t, err)

		g, err := greedy.Pack(inst)
		require.NoError(t, err)

		res, err := anneal.Pack(inst, anneal.WithWarmStart(), anneal.WithSeed(seed))
		require.NoError(t, err)
		assert.GreaterOrEqual(t, res.Size, g.Size,
			"seed %d: the best visited selection includes the warm start", seed)
	}
}

// TestPack_FindsChainOptimum verifies that a warm-started walk on a
// chain instance reports the known optimum: greedy already packs every
// other subset, and the best visited selection is never lost.
func TestPack_FindsChainOptimum(t *testing.T) {
	inst, err := builder.Chain(9) // optimum ceil(9/2) = 5
	require.NoError(t, err)

	res, err := anneal.Pack(inst, anneal.WithWarmStart(), anneal.WithIterations(20_000))
	require.NoError(t, err)
	assert.Equal(t, 5, res.Size, "warm start seeds the optimum and best never regresses")
}

// TestPack_ColdStartFillsDisjointBlocks verifies that a cold-started
// walk on pairwise-disjoint blocks accumulates every block: flipping
// on is always feasible and flip-offs die out as the temperature drops.
func TestPack_ColdStartFillsDisjointBlocks(t *testing.T) {
	inst, err := builder.DisjointBlocks(8, 3)
	require.NoError(t, err)

	res, err := anneal.Pack(inst, anneal.WithIterations(20_000))
	require.NoError(t, err)
	assert.Equal(t, 8, res.Size, "all blocks are mutually compatible")
}

// TestPack_Cancellation verifies that a cancelled context aborts the walk.
func TestPack_Cancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	inst, err := builder.Chain(6)
	require.NoError(t, err)
	_, err = anneal.Pack(inst, anneal.WithContext(ctx))
	require.ErrorIs(t, err, context.Canceled)
}

// TestPack_OnImprove verifies that the observer sees non-decreasing
// sizes ending at the reported best.
func TestPack_OnImprove(t *testing.T) {
	inst, err := builder.DisjointBlocks(6, 2)
	require.NoError(t, err)

	var seen []int
	res, err := anneal.Pack(inst, anneal.WithOnImprove(func(r core.PackingResult) {
		seen = append(seen, r.Size)
	}))
	require.NoError(t, err)
	require.NotEmpty(t, seen)
	for i := 1; i < len(seen); i++ {
		assert.Greater(t, seen[i], seen[i-1], "improvements must be strict")
	}
	assert.Equal(t, res.Size, seen[len(seen)-1])
}
