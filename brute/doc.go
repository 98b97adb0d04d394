// Package brute provides the exhaustive set-packing checker and oracle.
//
// CheckDisjoint decides whether the subsets chosen by a selection are
// pairwise disjoint in a single short-circuiting pass. MaxPacking
// enumerates every candidate value v in [0, 2^L), decodes it into its
// MSB-first digit vector, and reports the largest disjoint packing
// together with the selection that achieves it.
//
// The sweep is a correctness oracle, not a scalable solver: its cost is
// O(2^L · L), acceptable only for small L. Instances with more than 63
// subsets are rejected up front (candidate values live in a uint64).
// For larger instances use the greedy or anneal packages and audit with
// solver.Verify on a reduced instance.
//
// Determinism:
//
//   - Ties break to the lowest candidate value, so the reported witness
//     selection is unique for a given instance.
//   - The parallel sweep (WithWorkers) splits the candidate range into
//     contiguous chunks and merges partial bests by (size desc,
//     candidate asc); its result is bit-for-bit identical to the
//     sequential sweep.
//
// Complexity: O(2^L · c) time where c is the bitmap intersection cost,
// O(L) auxiliary space per worker.
package brute
