// Package setpack models the maximum set-packing problem: given an
// ordered collection of subsets of an integer universe, select as many
// subsets as possible so that the selected ones are pairwise disjoint.
//
// The module is organized as one package per concern:
//
//	core/    — subsets, instances, selection vectors, JSON input, and
//	           the MSB-first Bitfield decomposition
//	brute/   — the exhaustive 2^L oracle: CheckDisjoint + MaxPacking,
//	           sequential or chunked across workers
//	greedy/  — deterministic constructive heuristic (lower bound)
//	anneal/  — seeded simulated annealing over feasible selections
//	solver/  — uniform Solver interface, typed Config, opaque external
//	           engine adapter, and Verify against the oracle
//	builder/ — deterministic instance generators with known optima
//
// A typical round trip: load an instance with core.LoadInstance, solve
// it with the engine a solver.Config names, and audit the answer with
// solver.Verify. The brute-force oracle is the ground truth at small
// sizes; heuristics and external engines (Ising-model eigensolvers and
// the like) answer beyond the oracle's reach and are audited for
// feasibility only.
package setpack
