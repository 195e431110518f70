package solver

import (
	"context"
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/optimize/convex/lp"
)

const (
	// intTol is the distance from an integer below which an LP value is
	// accepted as integral.
	intTol = 1e-6
	// boundTol guards pruning and incumbent comparisons against float noise.
	boundTol = 1e-9
	// simplexTol is passed through to gonum's simplex.
	simplexTol = 1e-10
)

// BranchAndBound is the default Solver backend. It drives gonum's simplex
// over LP relaxations and supplies the integer and semi-continuous branching
// rules on top. Node and variable ordering are deterministic, so identical
// models always produce identical solutions.
type BranchAndBound struct {
	maxNodes int
}

// BBOption configures a BranchAndBound solver.
type BBOption func(*BranchAndBound)

// WithMaxNodes caps the number of explored nodes; exceeding it yields
// StatusUndefined, same as a context deadline.
func WithMaxNodes(n int) BBOption {
	return func(s *BranchAndBound) {
		if n > 0 {
			s.maxNodes = n
		}
	}
}

// NewBranchAndBound creates a branch-and-bound solver with default limits.
func NewBranchAndBound(opts ...BBOption) *BranchAndBound {
	s := &BranchAndBound{maxNodes: 500000}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// node is one subproblem: per-variable bounds narrowed by branching.
type node struct {
	lo []int
	hi []int
}

func (n *node) clone() *node {
	lo := make([]int, len(n.lo))
	hi := make([]int, len(n.hi))
	copy(lo, n.lo)
	copy(hi, n.hi)
	return &node{lo: lo, hi: hi}
}

// Solve runs branch and bound on the model. All solver-level outcomes are
// reported through Solution.Status; the error return is reserved for
// malformed models.
func (s *BranchAndBound) Solve(ctx context.Context, m *Model) (*Solution, error) {
	if err := m.Validate(); err != nil {
		return nil, err
	}

	n := len(m.Variables)
	if n == 0 {
		return &Solution{
			Status:    StatusOptimal,
			Message:   "empty model, nothing to select",
			Objective: 0,
			Values:    []int{},
		}, nil
	}

	root := &node{lo: make([]int, n), hi: make([]int, n)}
	for i, v := range m.Variables {
		root.hi[i] = v.MaxQty
	}

	var (
		incumbent    []int
		incumbentObj = math.Inf(-1)
		nodes        int
		stack        = []*node{root}
	)

	for len(stack) > 0 {
		if err := ctx.Err(); err != nil {
			return &Solution{
				Status:  StatusUndefined,
				Message: "time limit reached before optimality was proven",
				Nodes:   nodes,
			}, nil
		}
		nodes++
		if nodes > s.maxNodes {
			return &Solution{
				Status:  StatusUndefined,
				Message: fmt.Sprintf("node limit of %d reached before optimality was proven", s.maxNodes),
				Nodes:   nodes,
			}, nil
		}

		nd := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		relaxed, obj, err := s.solveRelaxation(m, nd)
		switch {
		case errors.Is(err, lp.ErrInfeasible):
			continue
		case errors.Is(err, lp.ErrUnbounded):
			return &Solution{
				Status:  StatusUnbounded,
				Message: "relaxation is unbounded",
				Nodes:   nodes,
			}, nil
		case err != nil:
			return &Solution{
				Status:  StatusError,
				Message: fmt.Sprintf("simplex failed: %v", err),
				Nodes:   nodes,
			}, nil
		}

		// Bound: a maximization node whose relaxation cannot beat the
		// incumbent holds nothing of interest.
		if obj <= incumbentObj+boundTol {
			continue
		}

		branchVar, include, exclude := s.branch(m, nd, relaxed)
		if branchVar < 0 {
			// Integral and semi-continuity-feasible: candidate incumbent.
			values := make([]int, n)
			exact := 0.0
			for i, x := range relaxed {
				values[i] = int(math.Round(x))
				exact += m.Variables[i].Coeff * float64(values[i])
			}
			if exact > incumbentObj+boundTol {
				incumbent = values
				incumbentObj = exact
			}
			continue
		}

		// LIFO: the include/round-up child is pushed last so it is
		// explored first, which tends to find strong incumbents early.
		if exclude != nil {
			stack = append(stack, exclude)
		}
		if include != nil {
			stack = append(stack, include)
		}
	}

	if incumbent == nil {
		return &Solution{
			Status:  StatusInfeasible,
			Message: "no assignment satisfies all constraints",
			Nodes:   nodes,
		}, nil
	}
	return &Solution{
		Status:    StatusOptimal,
		Message:   "optimal solution found",
		Objective: incumbentObj,
		Values:    incumbent,
		Nodes:     nodes,
	}, nil
}

// branch picks the first variable violating integrality or the
// semi-continuous threshold and returns its two children. A negative index
// means the relaxation is already feasible for the integer program.
func (s *BranchAndBound) branch(m *Model, nd *node, x []float64) (int, *node, *node) {
	for i, v := range m.Variables {
		xi := x[i]

		// Semi-continuity first: a quantity strictly between zero and the
		// minimum shippable quantity forces a select/skip decision.
		if v.MinQty > 0 && nd.lo[i] == 0 && xi > intTol && xi < float64(v.MinQty)-intTol {
			include := nd.clone()
			include.lo[i] = v.MinQty
			if include.lo[i] > include.hi[i] {
				include = nil
			}
			exclude := nd.clone()
			exclude.hi[i] = 0
			return i, include, exclude
		}

		// Plain integrality.
		floor := math.Floor(xi)
		if frac := xi - floor; frac > intTol && frac < 1-intTol {
			up := nd.clone()
			up.lo[i] = int(floor) + 1
			if up.lo[i] > up.hi[i] {
				up = nil
			}
			down := nd.clone()
			down.hi[i] = int(floor)
			return i, up, down
		}
	}
	return -1, nil, nil
}

// solveRelaxation solves the LP relaxation of a node and returns the full
// variable assignment (fixed variables included) plus the objective value.
//
// The node LP substitutes x_i = lo_i + z_i and converts to gonum's standard
// form with one slack per capacity constraint and one per free-variable
// upper bound.
func (s *BranchAndBound) solveRelaxation(m *Model, nd *node) ([]float64, float64, error) {
	n := len(m.Variables)

	free := make([]int, 0, n)
	fixedObj := 0.0
	for i, v := range m.Variables {
		fixedObj += v.Coeff * float64(nd.lo[i])
		if nd.hi[i] > nd.lo[i] {
			free = append(free, i)
		}
	}

	// Remaining capacity after the fixed lower bounds are committed.
	rhs := make([]float64, len(m.Constraints))
	for j, c := range m.Constraints {
		rhs[j] = c.Bound
		for i := range m.Variables {
			rhs[j] -= c.Weights[i] * float64(nd.lo[i])
		}
		if rhs[j] < -boundTol {
			return nil, 0, lp.ErrInfeasible
		}
		if rhs[j] < 0 {
			rhs[j] = 0
		}
	}

	x := make([]float64, n)
	for i := range m.Variables {
		x[i] = float64(nd.lo[i])
	}

	// Everything is pinned: the node is a single point, already verified
	// feasible against every constraint above.
	if len(free) == 0 {
		return x, fixedObj, nil
	}

	nf := len(free)
	nc := len(m.Constraints)
	cols := 2*nf + nc
	rows := nc + nf

	a := mat.NewDense(rows, cols, nil)
	b := make([]float64, rows)
	c := make([]float64, cols)

	for k, i := range free {
		c[k] = -m.Variables[i].Coeff // gonum minimizes
	}
	for j, con := range m.Constraints {
		for k, i := range free {
			a.Set(j, k, con.Weights[i])
		}
		a.Set(j, nf+j, 1) // capacity slack
		b[j] = rhs[j]
	}
	for k, i := range free {
		a.Set(nc+k, k, 1)
		a.Set(nc+k, nf+nc+k, 1) // upper-bound slack
		b[nc+k] = float64(nd.hi[i] - nd.lo[i])
	}

	optF, optX, err := lp.Simplex(c, a, b, simplexTol, nil)
	if err != nil {
		return nil, 0, err
	}

	for k, i := range free {
		x[i] = float64(nd.lo[i]) + optX[k]
	}
	return x, fixedObj - optF, nil
}
