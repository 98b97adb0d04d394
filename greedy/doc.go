// Package greedy provides a deterministic constructive heuristic for
// maximum set packing.
//
// Pack scans the subsets once in a chosen order, keeping a running
// union of the elements already claimed; a subset joins the packing iff
// it is disjoint from that union. The result is always a valid packing
// and its size is a lower bound on the optimum, exact when the subsets
// are pairwise disjoint.
//
// Two scan orders are available: ByPosition keeps instance order, and
// BySize prefers smaller subsets first (the classical smallest-first
// rule, position as tie-break). Neither blocks nor uses randomness, so
// Pack takes no context.
//
// Complexity: O(L · c) time where c is the bitmap intersection cost
// (plus an O(L log L) sort for BySize), O(L) auxiliary space.
package greedy
