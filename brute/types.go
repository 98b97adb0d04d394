// Package brute types: sentinel errors and sweep options.
package brute

import (
	"context"
	"errors"
	"fmt"

	"github.com/awantae/setpack/core"
)

// Sentinel errors for the exhaustive sweep.
var (
	// ErrNilInstance is returned when a nil instance pointer is passed.
	ErrNilInstance = errors.New("brute: instance is nil")

	// ErrTooManySubsets is returned when the instance has more than 63
	// subsets; candidate values are enumerated in a uint64 and a sweep
	// of that size is outside this package's scope by construction.
	ErrTooManySubsets = errors.New("brute: more than 63 subsets")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("brute: invalid option supplied")
)

// maxSubsets is the largest instance length the sweep accepts.
const maxSubsets = 63

// cancelStride is how many candidates each worker evaluates between
// context checks.
const cancelStride = 2048

// Option configures the sweep via functional arguments. An invalid
// Option (e.g. a non-positive worker count) is recorded internally and
// surfaced as ErrOptionViolation when MaxPacking is invoked.
type Option func(*Options)

// Options holds parameters and callbacks for MaxPacking.
type Options struct {
	// Ctx allows cancellation and deadlines; checked about every 2048
	// candidates per worker.
	Ctx context.Context

	// Workers is the number of goroutines sweeping the candidate
	// range. 1 is the sequential reference sweep.
	Workers int

	// OnImprove is called each time a strictly better packing is
	// found, at most L+1 times per worker. The callback must not
	// block; it may be invoked concurrently when Workers > 1.
	OnImprove func(core.PackingResult)

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with sane defaults:
//   - context.Background()
//   - sequential sweep (Workers == 1)
//   - no-op OnImprove.
func DefaultOptions() Options {
	return Options{
		Ctx:       context.Background(),
		Workers:   1,
		OnImprove: func(core.PackingResult) {},
		err:       nil,
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

// WithWorkers sets the number of sweep goroutines.
//
//	n == 1: sequential reference sweep
//	n > 1:  parallel sweep over contiguous candidate chunks
//	n < 1:  invalid option → ErrOptionViolation
func WithWorkers(n int) Option {
	return func(o *Options) {
		if n < 1 {
			o.err = fmt.Errorf("%w: Workers must be positive (%d)", ErrOptionViolation, n)
			return
		}
		o.Workers = n
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
