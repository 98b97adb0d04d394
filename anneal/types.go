// Package anneal types: sentinel errors and annealing options.
package anneal

import (
	"context"
	"errors"
	"fmt"

	"github.com/awantae/setpack/core"
)

// Sentinel errors for the annealing packer.
var (
	// ErrNilInstance is returned when a nil instance pointer is passed.
	ErrNilInstance = errors.New("anneal: instance is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("anneal: invalid option supplied")
)

// cancelStride is how many iterations run between context checks.
const cancelStride = 2048

// Option configures the annealer via functional arguments. An invalid
// Option (non-positive iteration budget, cooling outside (0,1), ...)
// is recorded internally and surfaced as ErrOptionViolation when Pack
// is invoked.
type Option func(*Options)

// Options holds parameters and callbacks for Pack.
type Options struct {
	// Ctx allows cancellation and deadlines; checked about every 2048
	// iterations.
	Ctx context.Context

	// Iterations is the number of proposed moves.
	Iterations int

	// StartTemp is the initial temperature of the Metropolis rule.
	StartTemp float64

	// Cooling is the geometric temperature factor per iteration,
	// strictly inside (0, 1).
	Cooling float64

	// Seed drives the deterministic RNG; 0 selects the fixed default
	// seed. Same seed, same result.
	Seed int64

	// WarmStart seeds the walk from the greedy packing instead of the
	// empty selection.
	WarmStart bool

	// OnImprove is called each time a strictly better packing is
	// found. The callback must not block.
	OnImprove func(core.PackingResult)

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with sane defaults:
//   - context.Background()
//   - 10_000 iterations, StartTemp 1.0, Cooling 0.995
//   - fixed default seed, cold start, no-op OnImprove.
func DefaultOptions() Options {
	return Options{
		Ctx:        context.Background(),
		Iterations: 10_000,
		StartTemp:  1.0,
		Cooling:    0.995,
		Seed:       0,
		WarmStart:  false,
		OnImprove:  func(core.PackingResult) {},
		err:        nil,
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithIterations sets the move budget; must be positive.
func WithIterations(n int) Option {
	return func(o *Options) {
		if n < 1 {
			o.err = fmt.Errorf("%w: Iterations must be positive (%d)", ErrOptionViolation, n)
			return
		}
		o.Iterations = n
	}
}

// WithStartTemp sets the initial temperature; must be positive.
func WithStartTemp(temp float64) Option {
	return func(o *Options) {
		if temp <= 0 {
			o.err = fmt.Errorf("%w: StartTemp must be positive (%g)", ErrOptionViolation, temp)
			return
		}
		o.StartTemp = temp
	}
}

// WithCooling sets the geometric cooling factor, strictly in (0, 1).
func WithCooling(factor float64) Option {
	return func(o *Options) {
		if factor <= 0 || factor >= 1 {
			o.err = fmt.Errorf("%w: Cooling must be in (0, 1) (%g)", ErrOptionViolation, factor)
			return
		}
		o.Cooling = factor
	}
}

// WithSeed sets the RNG seed; 0 selects the fixed default seed.
func WithSeed(seed int64) Option {
	return func(o *Options) {
		o.Seed = seed
	}
}

// WithWarmStart seeds the walk from the greedy packing.
func WithWarmStart() Option {
	return func(o *Options) {
		o.WarmStart = true
	}
}

// WithOnImprove registers a callback to run on each strict improvement.
func WithOnImprove(fn func(core.PackingResult)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnImprove = fn
		}
	}
}
