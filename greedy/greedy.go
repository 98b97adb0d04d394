package greedy

import (
	"sort"

	"github.com/awantae/setpack/core"
)

// Pack builds a set packing in one deterministic scan: subsets are
// visited in the configured order and selected iff disjoint from the
// union of everything selected so far.
//
// The result is always a valid packing; its size is a lower bound on
// the optimum and exact on instances whose subsets are pairwise
// disjoint. Returns ErrNilInstance or an option error.
//
// Complexity: O(L · c) time, plus O(L log L) for the BySize sort.
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

	order := scanOrder(inst, o.Order)

	var (
		cover  = core.NewCoverage()
		chosen []int
	)
	for _, i := range order {
		s := inst.SubsetAt(i)
		if cover.Overlaps(s) {
			continue
		}
		cover.Include(s)
		chosen = append(chosen, i)
	}

	sel, err := core.SelectionFromIndices(inst.Len(), chosen...)
	if err != nil {
		return core.PackingResult{}, err
	}

	return core.PackingResult{Selection: sel, Size: len(chosen)}, nil
}

// scanOrder returns the subset indices in the configured visit order.
func scanOrder(inst *core.Instance, order Order) []int {
	idx := make([]int, inst.Len())
	for i := range idx {
		idx[i] = i
	}
	if order == BySize {
		sort.SliceStable(idx, func(a, b int) bool {
			return inst.SubsetAt(idx[a]).Len() < inst.SubsetAt(idx[b]).Len()
		})
	}

	return idx
}
