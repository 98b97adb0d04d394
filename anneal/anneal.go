package anneal

import (
	"math"
	"math/rand"

	"github.com/awantae/setpack/core"
	"github.com/awantae/setpack/greedy"
)

// Pack runs simulated annealing over feasible selections and returns
// the best packing ever visited. Moves flip one position each; the
// packing stays valid throughout because flipping a subset on is only
// admitted when it is disjoint from the selected union.
//
// Returns ErrNilInstance, ErrOptionViolation, or the context error
// when the walk is cancelled.
//
// Complexity: O(Iterations · c) time, O(L + |universe|) space.
func Pack(inst *core.Instance, opts ...Option) (core.PackingResult, error) {
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
	if width == 0 {
		sel, err := core.NewSelection(0)
		if err != nil {
			return core.PackingResult{}, err
		}

		return core.PackingResult{Selection: sel, Size: 0}, nil
	}

	w := &walk{
		inst:     inst,
		opts:     o,
		rng:      rngFromSeed(o.Seed),
		selected: make([]bool, width),
		cover:    core.NewCoverage(),
	}
	if o.WarmStart {
		if err := w.seedFromGreedy(); err != nil {
			return core.PackingResult{}, err
		}
	}
	w.rememberBest()

	if err := w.run(); err != nil {
		return core.PackingResult{}, err
	}

	sel, err := core.SelectionFromIndices(width, w.bestIdx...)
	if err != nil {
		return core.PackingResult{}, err
	}

	return core.PackingResult{Selection: sel, Size: w.bestSize}, nil
}

// walk holds the mutable annealing state.
//
// Invariant: the subsets marked in selected are pairwise disjoint and
// cover holds exactly their union, so excluding one of them restores
// the union of the rest.
type walk struct {
	inst *core.Instance
	opts Options
	rng  *rand.Rand

	selected []bool
	size     int
	cover    *core.Coverage

	bestIdx  []int
	bestSize int
}

// seedFromGreedy initializes the walk from the greedy packing.
func (w *walk) seedFromGreedy() error {
	res, err := greedy.Pack(w.inst)
	if err != nil {
		return err
	}
	for _, i := range res.Selection.Indices() {
		w.selected[i] = true
		w.cover.Include(w.inst.SubsetAt(i))
	}
	w.size = res.Size

	return nil
}

// run proposes opts.Iterations single-flip moves under the Metropolis
// acceptance rule with geometric cooling.
func (w *walk) run() error {
	temp := w.opts.StartTemp
	for it := 0; it < w.opts.Iterations; it++ {
		if it%cancelStride == 0 {
			select {
			case <-w.opts.Ctx.Done():
				return w.opts.Ctx.Err()
			default:
			}
		}

		w.step(temp)
		temp *= w.opts.Cooling
	}

	return nil
}

// step proposes one flip at a uniformly random position.
func (w *walk) step(temp float64) {
	i := w.rng.Intn(len(w.selected))
	s := w.inst.SubsetAt(i)

	if w.selected[i] {
		// Flipping off loses one subset; accept with the Metropolis
		// probability exp(-1/temp).
		if !w.accept(-1, temp) {
			return
		}
		w.selected[i] = false
		w.cover.Exclude(s)
		w.size--

		return
	}

	// Flipping on is only admitted when feasible, and then always
	// improves, so acceptance is unconditional.
	if w.cover.Overlaps(s) {
		return
	}
	w.selected[i] = true
	w.cover.Include(s)
	w.size++
	if w.size > w.bestSize {
		w.rememberBest()
	}
}

// accept applies the Metropolis rule for a move changing the packing
// size by delta.
func (w *walk) accept(delta int, temp float64) bool {
	if delta >= 0 {
		return true
	}
	if temp <= 0 {
		return false
	}

	return w.rng.Float64() < math.Exp(float64(delta)/temp)
}

// rememberBest snapshots the current selection as the best visited and
// notifies the observer.
func (w *walk) rememberBest() {
	idx := make([]int, 0, w.size)
	for i, on := range w.selected {
		if on {
			idx = append(idx, i)
		}
	}
	w.bestIdx = idx
	w.bestSize = w.size

	if sel, err := core.SelectionFromIndices(len(w.selected), idx...); err == nil {
		w.opts.OnImprove(core.PackingResult{Selection: sel, Size: w.size})
	}
}
