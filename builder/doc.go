// Package builder provides deterministic set-packing instance
// generators for tests, examples, and benchmarks.
//
// Every generator is a pure function of its arguments: the same call
// always yields the same instance, including Random, whose subsets are
// fully determined by the seed (0 selects a fixed default seed).
//
// The structured families carry known optima, which makes them useful
// as oracles for solver tests:
//
//   - DisjointBlocks: count pairwise-disjoint blocks; optimum = count.
//   - Identical: count copies of one subset; optimum = 1 for a
//     nonempty subset, count for the empty one.
//   - Chain: subset i shares exactly one element with subset i+1;
//     optimum = ceil(count/2).
//   - Sunflower: every subset contains a common kernel plus private
//     petals; optimum = 1 for a nonempty kernel, count for an empty one.
//
// Random carries no known optimum; pair it with brute.MaxPacking at
// small sizes.
package builder
