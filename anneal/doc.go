// Package anneal provides a seeded simulated-annealing local search
// for maximum set packing.
//
// The walk moves through feasible selections only: a move flips one
// position, and flipping a subset on is admitted solely when it is
// disjoint from the union of the currently selected subsets (flipping
// off is always admitted). Moves that shrink the packing are accepted
// with the Metropolis probability exp(delta/temp); the temperature
// follows a geometric cooling schedule. The best selection ever
// visited is returned, not the final one.
//
// Determinism: the same seed always yields the same result. Seed 0
// selects a fixed default seed, so the zero configuration is
// reproducible too. WarmStart seeds the walk from the greedy packing
// instead of the empty selection.
//
// Unlike the brute package, anneal has no instance-size ceiling: it
// never enumerates the candidate space, so it is the practical engine
// once 2^L sweeps stop being affordable. The reported size is a lower
// bound on the optimum with no guarantee of tightness.
//
// Complexity: O(Iterations · c) time where c is the bitmap
// intersection cost, O(L + |universe|) space.
package anneal
