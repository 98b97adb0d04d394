// Package solver types: sentinel errors, algorithm and entanglement enums.
package solver

import (
	"errors"
	"fmt"
)

// Sentinel errors for dispatch and verification.
var (
	// ErrNilInstance is returned when a nil instance pointer is passed.
	ErrNilInstance = errors.New("solver: instance is nil")

	// ErrUnknownAlgorithm is returned for an unrecognized algorithm
	// value or name.
	ErrUnknownAlgorithm = errors.New("solver: unknown algorithm")

	// ErrUnknownEntanglement is returned for an unrecognized
	// entanglement pattern name.
	ErrUnknownEntanglement = errors.New("solver: unknown entanglement pattern")

	// ErrExternalFunc is returned when an external engine is requested
	// without a usable ExternalFunc.
	ErrExternalFunc = errors.New("solver: external engine function required")

	// ErrSizeMismatch is returned by Verify when a reported size does
	// not equal the reported selection's set-bit count.
	ErrSizeMismatch = errors.New("solver: reported size does not match selection")

	// ErrInvalidPacking is returned by Verify when the reported
	// selection chooses overlapping subsets.
	ErrInvalidPacking = errors.New("solver: reported selection is not a packing")
)

// Algorithm identifies which engine answers.
type Algorithm int

const (
	// BruteForce is the exact exhaustive oracle.
	BruteForce Algorithm = iota

	// Greedy is the deterministic constructive heuristic.
	Greedy

	// Anneal is the seeded simulated-annealing local search.
	Anneal

	// External is a caller-supplied opaque engine.
	External
)

// String returns the canonical algorithm name.
func (a Algorithm) String() string {
	switch a {
	case BruteForce:
		return "brute"
	case Greedy:
		return "greedy"
	case Anneal:
		return "anneal"
	case External:
		return "external"
	default:
		return fmt.Sprintf("algorithm(%d)", int(a))
	}
}

// ParseAlgorithm maps a canonical name to its Algorithm.
// Returns ErrUnknownAlgorithm for anything else.
func ParseAlgorithm(name string) (Algorithm, error) {
	switch name {
	case "brute":
		return BruteForce, nil
	case "greedy":
		return Greedy, nil
	case "anneal":
		return Anneal, nil
	case "external":
		return External, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, name)
	}
}

// MarshalText encodes the algorithm by its canonical name.
func (a Algorithm) MarshalText() ([]byte, error) {
	switch a {
	case BruteForce, Greedy, Anneal, External:
		return []byte(a.String()), nil
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnknownAlgorithm, int(a))
	}
}

// UnmarshalText decodes an algorithm from its canonical name.
func (a *Algorithm) UnmarshalText(text []byte) error {
	parsed, err := ParseAlgorithm(string(text))
	if err != nil {
		return err
	}
	*a = parsed

	return nil
}

// Entanglement names the ansatz wiring pattern forwarded to external
// engines. It is payload only: nothing in this library interprets it.
type Entanglement int

const (
	// Linear wires each qubit to its neighbor.
	Linear Entanglement = iota

	// Full wires every qubit pair.
	Full

	// Circular wires neighbors plus the closing link.
	Circular
)

// String returns the canonical pattern name.
func (e Entanglement) String() string {
	switch e {
	case Linear:
		return "linear"
	case Full:
		return "full"
	case Circular:
		return "circular"
	default:
		return fmt.Sprintf("entanglement(%d)", int(e))
	}
}

// ParseEntanglement maps a canonical name to its Entanglement.
// Returns ErrUnknownEntanglement for anything else.
func ParseEntanglement(name string) (Entanglement, error) {
	switch name {
	case "linear":
		return Linear, nil
	case "full":
		return Full, nil
	case "circular":
		return Circular, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownEntanglement, name)
	}
}

// MarshalText encodes the pattern by its canonical name.
func (e Entanglement) MarshalText() ([]byte, error) {
	switch e {
	case Linear, Full, Circular:
		return []byte(e.String()), nil
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnknownEntanglement, int(e))
	}
}

// UnmarshalText decodes a pattern from its canonical name.
func (e *Entanglement) UnmarshalText(text []byte) error {
	parsed, err := ParseEntanglement(string(text))
	if err != nil {
		return err
	}
	*e = parsed

	return nil
}
