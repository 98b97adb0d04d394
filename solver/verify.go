package solver

import (
	"context"
	"fmt"

	"github.com/awantae/setpack/brute"
	"github.com/awantae/setpack/core"
)

// Report is the outcome of auditing a reported packing.
type Report struct {
	// Valid is true when the reported selection is a real packing.
	Valid bool

	// Optimal is true when the reported size equals the brute-force
	// optimum; always false when the oracle sweep was skipped.
	Optimal bool

	// ReportedSize is the audited answer's size.
	ReportedSize int

	// OptimalSize is the oracle's answer, or -1 when the sweep was
	// skipped via WithoutOptimality.
	OptimalSize int
}

// VerifyOption configures Verify.
type VerifyOption func(*verifyOptions)

type verifyOptions struct {
	oracleWorkers  int
	skipOptimality bool
	log            *Logger
}

// WithOracleWorkers forwards a worker count to the oracle sweep.
func WithOracleWorkers(n int) VerifyOption {
	return func(o *verifyOptions) {
		o.oracleWorkers = n
	}
}

// WithoutOptimality skips the oracle sweep; the Report then carries
// Optimal false and OptimalSize -1. Use this for instances too large
// to sweep, where only feasibility can be audited.
func WithoutOptimality() VerifyOption {
	return func(o *verifyOptions) {
		o.skipOptimality = true
	}
}

// WithLogger emits structured audit records through log. The default
// is a noop logger.
func WithLogger(log *Logger) VerifyOption {
	return func(o *verifyOptions) {
		if log != nil {
			o.log = log
		}
	}
}

// Verify audits a reported answer in three tiers:
//
//  1. width check: the selection must fit the instance
//     (core.ErrWidthMismatch);
//  2. internal consistency: the reported size must equal the
//     selection's set-bit count (ErrSizeMismatch);
//  3. feasibility: the selected subsets must be pairwise disjoint
//     (ErrInvalidPacking).
//
// A claimed answer failing any of these is an error, not an opinion,
// and yields a zero Report. Suboptimality is not an error: heuristic
// and external engines may legitimately fall short, so the optimality
// comparison against brute.MaxPacking only lands in the Report.
func Verify(ctx context.Context, inst *core.Instance, reported core.PackingResult, opts ...VerifyOption) (Report, error) {
	if inst == nil {
		return Report{}, ErrNilInstance
	}

	o := verifyOptions{log: NoopLogger()}
	for _, opt := range opts {
		opt(&o)
	}

	if reported.Selection.Width() != inst.Len() {
		return Report{}, fmt.Errorf("%w: selection width %d, instance length %d",
			core.ErrWidthMismatch, reported.Selection.Width(), inst.Len())
	}
	if reported.Size != reported.Selection.Count() {
		return Report{}, fmt.Errorf("%w: size %d, selection counts %d",
			ErrSizeMismatch, reported.Size, reported.Selection.Count())
	}

	ok, err := brute.CheckDisjoint(inst, reported.Selection)
	if err != nil {
		return Report{}, err
	}
	if !ok {
		o.log.WarnContext(ctx, "reported selection is infeasible",
			"selection", reported.Selection.String(),
			"size", reported.Size,
		)

		return Report{}, fmt.Errorf("%w: %s", ErrInvalidPacking, reported.Selection)
	}

	if o.skipOptimality {
		o.log.InfoContext(ctx, "audit passed, optimality skipped",
			"size", reported.Size,
		)

		return Report{Valid: true, Optimal: false, ReportedSize: reported.Size, OptimalSize: -1}, nil
	}

	oracleOpts := []brute.Option{brute.WithContext(ctx)}
	if o.oracleWorkers > 1 {
		oracleOpts = append(oracleOpts, brute.WithWorkers(o.oracleWorkers))
	}
	optimum, err := brute.MaxPacking(inst, oracleOpts...)
	if err != nil {
		return Report{}, fmt.Errorf("solver: oracle sweep: %w", err)
	}

	rep := Report{
		Valid:        true,
		Optimal:      reported.Size == optimum.Size,
		ReportedSize: reported.Size,
		OptimalSize:  optimum.Size,
	}
	o.log.InfoContext(ctx, "audit complete",
		"reported_size", rep.ReportedSize,
		"optimal_size", rep.OptimalSize,
		"optimal", rep.Optimal,
	)

	return rep, nil
}
