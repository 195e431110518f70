package optimizer

import (
	"context"
	"fmt"
	"time"

	"github.com/guttosm/container-optimizer/internal/domain/model"
	"github.com/guttosm/container-optimizer/internal/solver"
)

// DefaultTimeLimit bounds a single solver invocation. The solver must never
// hang the request handler; on expiry the run resolves to StatusUndefined.
const DefaultTimeLimit = 30 * time.Second

// Engine runs one container load optimization per call. Implementations are
// stateless and safe for concurrent use.
type Engine interface {
	Optimize(ctx context.Context, products []model.Product, cfg model.OptimizationConfig) (model.OptimizationResult, RunStats)
}

// RunStats carries observability counters for one run; they never appear in
// the response payload.
type RunStats struct {
	SolverNodes int
	Duration    time.Duration
}

// Option configures an EngineService.
type Option func(*EngineService)

// EngineService implements Engine on top of an injected MILP backend.
type EngineService struct {
	solver    solver.Solver
	timeLimit time.Duration
}

// NewEngineService creates an engine with the default branch-and-bound
// backend and time limit, overridable through options.
func NewEngineService(opts ...Option) *EngineService {
	s := &EngineService{
		solver:    solver.NewBranchAndBound(),
		timeLimit: DefaultTimeLimit,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// WithSolver injects an alternate MILP backend.
func WithSolver(b solver.Solver) Option {
	return func(s *EngineService) {
		if b != nil {
			s.solver = b
		}
	}
}

// WithTimeLimit overrides the per-run solver time budget.
func WithTimeLimit(d time.Duration) Option {
	return func(s *EngineService) {
		if d > 0 {
			s.timeLimit = d
		}
	}
}

// Optimize derives demand, scores the candidates, solves the load model and
// aggregates the assignment. Every failure mode resolves to a well-formed
// result; callers never receive a panic or a partial structure.
func (s *EngineService) Optimize(ctx context.Context, products []model.Product, cfg model.OptimizationConfig) (result model.OptimizationResult, stats RunStats) {
	start := time.Now()
	defer func() {
		stats.Duration = time.Since(start)
		if r := recover(); r != nil {
			result = model.EmptyResult(model.StatusError, fmt.Sprintf("optimization panic: %v", r))
		}
	}()

	candidates, err := deriveAll(products, cfg.GlobalLeadTimeDays)
	if err != nil {
		return model.EmptyResult(model.StatusError, err.Error()), stats
	}
	if len(candidates) == 0 {
		return model.EmptyResult(model.StatusOptimal, "no product has demand beyond available stock, nothing to ship"), stats
	}

	scores := scoreCandidates(candidates, cfg)
	m := buildModel(candidates, scores, cfg)

	solveCtx, cancel := context.WithTimeout(ctx, s.timeLimit)
	defer cancel()

	sol, err := s.solver.Solve(solveCtx, m)
	if err != nil {
		return model.EmptyResult(model.StatusError, err.Error()), stats
	}
	stats.SolverNodes = sol.Nodes

	if sol.Status != solver.StatusOptimal {
		return model.EmptyResult(statusFromSolver(sol.Status), sol.Message), stats
	}

	result = aggregate(candidates, scores, sol.Values, cfg)
	result.StatusMessage = sol.Message
	return result, stats
}

// statusFromSolver maps solver statuses onto the wire-level status enum.
func statusFromSolver(st solver.Status) model.Status {
	switch st {
	case solver.StatusOptimal:
		return model.StatusOptimal
	case solver.StatusInfeasible:
		return model.StatusInfeasible
	case solver.StatusUnbounded:
		return model.StatusUnbounded
	case solver.StatusUndefined:
		return model.StatusUndefined
	default:
		return model.StatusError
	}
}
