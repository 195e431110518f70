// Package solver provides the mixed-integer linear program abstraction used
// by the container optimization engine, plus the default backend built on
// gonum's simplex implementation.
//
// The engine depends only on the Solver interface, so tests (and future
// deployments) can substitute another MILP backend without touching the
// model-building code.
package solver

import (
	"context"
	"errors"
	"fmt"
)

// Status is the canonical outcome of a solve, mirroring the five terminal
// statuses the engine reports to callers.
type Status int

const (
	// StatusOptimal means a proven optimal integer solution was found.
	StatusOptimal Status = iota
	// StatusInfeasible means no assignment satisfies all constraints.
	StatusInfeasible
	// StatusUnbounded means the objective can grow without limit.
	StatusUnbounded
	// StatusUndefined means the solver stopped without a conclusive
	// status, e.g. the time budget expired before optimality was proven.
	StatusUndefined
	// StatusError means the model was malformed or the backend failed.
	StatusError
)

// String returns the canonical status name.
func (s Status) String() string {
	switch s {
	case StatusOptimal:
		return "Optimal"
	case StatusInfeasible:
		return "Infeasible"
	case StatusUnbounded:
		return "Unbounded"
	case StatusUndefined:
		return "Undefined"
	default:
		return "Error"
	}
}

// ErrMalformedModel is returned when a model fails structural validation.
var ErrMalformedModel = errors.New("malformed model")

// Variable is one semi-continuous integer decision: the solved quantity is
// either exactly zero or within [MinQty, MaxQty]. MinQty of zero reduces it
// to a plain bounded integer.
type Variable struct {
	// Name identifies the variable in diagnostics (the candidate SKU).
	Name string
	// MinQty is the semi-continuous lower threshold.
	MinQty int
	// MaxQty is the inclusive upper bound.
	MaxQty int
	// Coeff is the objective contribution per unit.
	Coeff float64
}

// Constraint is a linear capacity constraint: sum(Weights[i] * x_i) <= Bound.
type Constraint struct {
	Name    string
	Weights []float64
	Bound   float64
}

// Model is one maximization program instance. It is built fresh per request
// and never mutated by the solver.
type Model struct {
	Variables   []Variable
	Constraints []Constraint
}

// Validate checks the structural integrity of the model.
func (m *Model) Validate() error {
	for _, v := range m.Variables {
		if v.MaxQty < 0 {
			return fmt.Errorf("%w: variable %q has negative upper bound %d", ErrMalformedModel, v.Name, v.MaxQty)
		}
		if v.MinQty < 0 {
			return fmt.Errorf("%w: variable %q has negative minimum quantity %d", ErrMalformedModel, v.Name, v.MinQty)
		}
	}
	for _, c := range m.Constraints {
		if len(c.Weights) != len(m.Variables) {
			return fmt.Errorf("%w: constraint %q has %d weights for %d variables",
				ErrMalformedModel, c.Name, len(c.Weights), len(m.Variables))
		}
	}
	return nil
}

// Solution is the result of a solve. Values is aligned with Model.Variables
// and is non-nil only for StatusOptimal.
type Solution struct {
	Status    Status
	Message   string
	Objective float64
	Values    []int
	// Nodes is the number of branch-and-bound nodes explored, for metrics.
	Nodes int
}

// Solver solves a Model within the deadline of the supplied context.
// Implementations must return a well-formed Solution for every solver-level
// outcome and reserve the error return for programming mistakes such as a
// malformed model.
type Solver interface {
	Solve(ctx context.Context, m *Model) (*Solution, error)
}
