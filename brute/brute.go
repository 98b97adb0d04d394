package brute

import (
	"fmt"
	"math/bits"

	"golang.org/x/sync/errgroup"

	"github.com/awantae/setpack/core"
)

// CheckDisjoint reports whether the subsets chosen by sel are pairwise
// disjoint. It scans the selected positions in order, accumulating the
// union of elements seen so far; the first selected subset intersecting
// the accumulator short-circuits to false. Zero or one selected subset
// is vacuously true.
//
// Returns ErrNilInstance for a nil instance and core.ErrWidthMismatch
// when the selection width differs from the instance length.
//
// Complexity: O(L · c) time where c is the bitmap intersection cost,
// O(|universe|) space for the accumulator.
func CheckDisjoint(inst *core.Instance, sel core.Selection) (bool, error) {
	if inst == nil {
		return false, ErrNilInstance
	}
	if sel.Width() != inst.Len() {
		return false, fmt.Errorf("%w: selection width %d, instance length %d",
			core.ErrWidthMismatch, sel.Width(), inst.Len())
	}

	cover := core.NewCoverage()
	for _, i := range sel.Indices() {
		s := inst.SubsetAt(i)
		if cover.Overlaps(s) {
			return false, nil
		}
		cover.Include(s)
	}

	return true, nil
}

// MaxPacking finds the maximum set packing by exhaustive search:
// every candidate value v in [0, 2^L) is decoded into its MSB-first
// digit vector and kept when the chosen subsets are pairwise disjoint.
// The largest packing is returned together with the selection that
// achieves it; ties break to the lowest candidate value, independent
// of worker count.
//
// Edge cases:
//   - L == 0 returns size 0 with the empty selection (exactly one
//     candidate exists, the empty one, and it is a valid packing).
//   - The all-zero selection is always valid, so the result is never
//     negative or undefined.
//
// Returns ErrNilInstance, ErrTooManySubsets for L > 63,
// ErrOptionViolation for bad options, or the context error when the
// sweep is cancelled.
//
// Complexity: O(2^L · L) time split across Workers goroutines, O(L)
// auxiliary space per worker.
func MaxPacking(inst *core.Instance, opts ...Option) (core.PackingResult, error) {
	if inst == nil {
		return core.PackingResult{}, ErrNilInstance
	}

	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return core.PackingResult{}, o.err
	}

	width := inst.Len()
	if width > maxSubsets {
		return core.PackingResult{}, fmt.Errorf("%w: got %d", ErrTooManySubsets, width)
	}

	hi := uint64(1) << uint(width)

	// Clamp workers to the candidate count; one goroutine per
	// non-empty chunk.
	workers := o.Workers
	if uint64(workers) > hi {
		workers = int(hi)
	}

	var best chunkBest
	if workers == 1 {
		var err error
		best, err = sweepChunk(inst, o, 0, hi)
		if err != nil {
			return core.PackingResult{}, err
		}
	} else {
		var err error
		best, err = sweepParallel(inst, o, hi, workers)
		if err != nil {
			return core.PackingResult{}, err
		}
	}

	sel, err := core.Bitfield(best.value, width)
	if err != nil {
		return core.PackingResult{}, err
	}

	return core.PackingResult{Selection: sel, Size: best.size}, nil
}

// chunkBest is one worker's running optimum over its candidate range.
type chunkBest struct {
	size  int
	value uint64
	found bool
}

// better reports whether c beats other under the deterministic order
// (size descending, candidate value ascending).
func (c chunkBest) better(other chunkBest) bool {
	if !other.found {
		return c.found
	}
	if !c.found {
		return false
	}

	return c.size > other.size || (c.size == other.size && c.value < other.value)
}

// sweepChunk evaluates every candidate in [lo, hi) sequentially and
// returns the chunk optimum. Digit i of candidate v is
// (v >> (width-1-i)) & 1, matching core.Bitfield, so the witness
// selection for value v is exactly Bitfield(v, width).
func sweepChunk(inst *core.Instance, o Options, lo, hi uint64) (chunkBest, error) {
	var (
		width = inst.Len()
		cover = core.NewCoverage()
		best  chunkBest
	)
	for v := lo; v < hi; v++ {
		if (v-lo)%cancelStride == 0 {
			select {
			case <-o.Ctx.Done():
				return chunkBest{}, o.Ctx.Err()
			default:
			}
		}

		// A candidate with no more set bits than the current best
		// cannot improve; the popcount is order-independent, so the
		// skip never changes which candidate wins a tie.
		if best.found && bits.OnesCount64(v) <= best.size {
			continue
		}

		cover.Reset()
		size, ok := 0, true
		for i := 0; i < width; i++ {
			if (v>>uint(width-1-i))&1 == 0 {
				continue
			}
			s := inst.SubsetAt(i)
			if cover.Overlaps(s) {
				ok = false
				break
			}
			cover.Include(s)
			size++
		}
		if !ok {
			continue
		}

		if !best.found || size > best.size {
			best = chunkBest{size: size, value: v, found: true}
			sel, err := core.Bitfield(v, width)
			if err != nil {
				return chunkBest{}, err
			}
			o.OnImprove(core.PackingResult{Selection: sel, Size: size})
		}
	}

	return best, nil
}

// sweepParallel splits [0, hi) into contiguous chunks, sweeps each in
// its own goroutine, and merges the partial bests in ascending chunk
// order. Because every candidate in chunk k is smaller than every
// candidate in chunk k+1, the strict merge preserves the global
// lowest-candidate tie-break and the result matches the sequential
// sweep bit for bit.
func sweepParallel(inst *core.Instance, o Options, hi uint64, workers int) (chunkBest, error) {
	g, ctx := errgroup.WithContext(o.Ctx)
	chunkOpts := o
	chunkOpts.Ctx = ctx

	var (
		per     = hi / uint64(workers)
		rem     = hi % uint64(workers)
		partial = make([]chunkBest, workers)
		lo      uint64
	)
	for w := 0; w < workers; w++ {
		span := per
		if uint64(w) < rem {
			span++
		}
		w, loChunk, hiChunk := w, lo, lo+span
		g.Go(func() error {
			best, err := sweepChunk(inst, chunkOpts, loChunk, hiChunk)
			if err != nil {
				return err
			}
			partial[w] = best

			return nil
		})
		lo += span
	}
	if err := g.Wait(); err != nil {
		return chunkBest{}, err
	}

	best := partial[0]
	for _, p := range partial[1:] {
		if p.better(best) {
			best = p
		}
	}

	return best, nil
}
