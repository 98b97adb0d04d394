package solver

import (
	"fmt"
	"io"

	gojson "github.com/goccy/go-json"
)

// Config is the explicit, typed knob set shared by every engine.
// Fields not meaningful to the chosen engine are ignored by it:
//
//   - BruteForce reads Workers.
//   - Greedy reads nothing beyond Algorithm.
//   - Anneal reads Trials and Seed.
//   - External receives the whole Config as an opaque payload.
type Config struct {
	// Algorithm selects which engine answers.
	Algorithm Algorithm `json:"algorithm"`

	// Trials is the iteration or trial budget for anneal and external
	// engines.
	Trials int `json:"trials"`

	// Depth is the ansatz depth, forwarded to external engines.
	Depth int `json:"depth"`

	// Entanglement is the ansatz wiring, forwarded to external engines.
	Entanglement Entanglement `json:"entanglement"`

	// Seed drives deterministic randomness; 0 selects the engine's
	// fixed default seed.
	Seed int64 `json:"seed"`

	// Workers is the goroutine count for the brute-force sweep.
	Workers int `json:"workers"`
}

// DefaultConfig returns the brute-force configuration: sequential
// sweep, default budgets.
func DefaultConfig() Config {
	return Config{
		Algorithm:    BruteForce,
		Trials:       10_000,
		Depth:        1,
		Entanglement: Linear,
		Seed:         0,
		Workers:      1,
	}
}

// DecodeConfig reads a JSON config document, e.g.
//
//	{"algorithm": "anneal", "trials": 50000, "seed": 7}
//
// Unset fields keep their DefaultConfig values; unknown algorithm or
// entanglement names fail with their parse sentinels.
func DecodeConfig(r io.Reader) (Config, error) {
	cfg := DefaultConfig()
	if r == nil {
		return Config{}, fmt.Errorf("solver: decode config: nil reader")
	}
	if err := gojson.NewDecoder(r).Decode(&cfg); err != nil {
		return Config{}, fmt.Errorf("solver: decode config: %w", err)
	}

	return cfg, nil
}
