package solver

import (
	"context"
	"fmt"

	"github.com/awantae/setpack/anneal"
	"github.com/awantae/setpack/brute"
	"github.com/awantae/setpack/core"
	"github.com/awantae/setpack/greedy"
)

// Solver is the uniform engine interface. Implementations never mutate
// the instance, and for a fixed Config their output is reproducible;
// external engines are exempt from the latter (opaque).
type Solver interface {
	// Name identifies the engine in logs and reports.
	Name() string

	// Solve computes a packing for inst.
	Solve(ctx context.Context, inst *core.Instance) (core.PackingResult, error)
}

// ExternalFunc is the opaque external-engine boundary: the library
// forwards the instance and the Config payload and audits the reported
// answer, never inspecting how it was produced.
type ExternalFunc func(ctx context.Context, inst *core.Instance, cfg Config) (core.PackingResult, error)

// New constructs the Solver selected by cfg.Algorithm. It is pure
// construction: no goroutines, no I/O.
//
// External cannot be routed through New because it needs a function;
// use NewExternal. Returns ErrUnknownAlgorithm for anything not in the
// enum.
func New(cfg Config) (Solver, error) {
	switch cfg.Algorithm {
	case BruteForce:
		return &bruteSolver{cfg: cfg}, nil
	case Greedy:
		return &greedySolver{}, nil
	case Anneal:
		return &annealSolver{cfg: cfg}, nil
	case External:
		return nil, fmt.Errorf("%w: use NewExternal", ErrExternalFunc)
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnknownAlgorithm, int(cfg.Algorithm))
	}
}

// NewExternal wraps an opaque external engine. An empty name defaults
// to "external"; a nil fn is ErrExternalFunc.
func NewExternal(name string, fn ExternalFunc, cfg Config) (Solver, error) {
	if fn == nil {
		return nil, fmt.Errorf("%w: nil function", ErrExternalFunc)
	}
	if name == "" {
		name = External.String()
	}

	return &externalSolver{name: name, fn: fn, cfg: cfg}, nil
}

// bruteSolver adapts brute.MaxPacking; it reads cfg.Workers.
type bruteSolver struct {
	cfg Config
}

func (s *bruteSolver) Name() string { return BruteForce.String() }

func (s *bruteSolver) Solve(ctx context.Context, inst *core.Instance) (core.PackingResult, error) {
	opts := []brute.Option{brute.WithContext(ctx)}
	if s.cfg.Workers > 1 {
		opts = append(opts, brute.WithWorkers(s.cfg.Workers))
	}

	return brute.MaxPacking(inst, opts...)
}

// greedySolver adapts greedy.Pack with the default scan order.
type greedySolver struct{}

func (s *greedySolver) Name() string { return Greedy.String() }

func (s *greedySolver) Solve(_ context.Context, inst *core.Instance) (core.PackingResult, error) {
	// greedy.Pack never blocks, so the context is not consulted.
	return greedy.Pack(inst)
}

// annealSolver adapts anneal.Pack; it reads cfg.Trials and cfg.Seed.
type annealSolver struct {
	cfg Config
}

func (s *annealSolver) Name() string { return Anneal.String() }

func (s *annealSolver) Solve(ctx context.Context, inst *core.Instance) (core.PackingResult, error) {
	opts := []anneal.Option{
		anneal.WithContext(ctx),
		anneal.WithSeed(s.cfg.Seed),
	}
	if s.cfg.Trials > 0 {
		opts = append(opts, anneal.WithIterations(s.cfg.Trials))
	}

	return anneal.Pack(inst, opts...)
}

// externalSolver forwards to a caller-supplied engine.
type externalSolver struct {
	name string
	fn   ExternalFunc
	cfg  Config
}

func (s *externalSolver) Name() string { return s.name }

func (s *externalSolver) Solve(ctx context.Context, inst *core.Instance) (core.PackingResult, error) {
	if inst == nil {
		return core.PackingResult{}, ErrNilInstance
	}

	return s.fn(ctx, inst, s.cfg)
}
