// Package solver provides a uniform front door to the packing engines:
// a Solver interface, a typed Config with a name-keyed algorithm
// dispatcher, an adapter for opaque external engines, and Verify,
// which audits any reported answer against the brute-force oracle.
//
// Engines:
//
//   - BruteForce routes to brute.MaxPacking (exact, exponential).
//   - Greedy routes to greedy.Pack (deterministic lower bound).
//   - Anneal routes to anneal.Pack (seeded local search).
//   - External wraps a caller-supplied ExternalFunc; the library
//     forwards the instance and the Config payload and never inspects
//     how the answer was produced.
//
// Config replaces ambient tuning state with one explicit knob set;
// fields not meaningful to the chosen engine are ignored by it. A
// config document in JSON can drive the choice declaratively via
// DecodeConfig.
//
// Verify treats a claimed answer in three tiers: structural defects
// (width or size bookkeeping) and infeasible selections are errors,
// while suboptimality is merely recorded in the Report; heuristic and
// external engines may legitimately fall short of the oracle.
//
// Logging enters only here, never in the algorithm packages: pass a
// Logger via WithLogger to get structured audit records; the default
// is silence.
package solver
