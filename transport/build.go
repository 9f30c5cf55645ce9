package transport

import (
	"fmt"
	"math"
)

// NorthWestCorner builds an initial basic feasible solution with the
// North-West Corner rule.
//
// Algorithm:
//  1. Start with every cell uncovered.
//  2. For each destination j left to right, for each origin i top to bottom,
//     skip covered cells; otherwise allocate min(supply[i], demand[j]) on
//     (i, j) and cover the exhausted row (or the column if the row still has
//     supply).
//  3. Stop once m+n-1 variables have been emitted.
//
// Every cell is visited at most once in that fixed order, so the plan is
// reproducible. Unbalanced input still yields a plan (with residual supply or
// demand) unless WithRequireBalanced is set.
//
// Complexity: O(m·n) time, O(m·n) memory for the covered grid.
func NorthWestCorner(p *Problem, opts ...Option) (Plan, error) {
	o := gatherOptions(opts...)
	if err := precheck(p, o); err != nil {
		return nil, err
	}

	t := newTableau(p, o)
	for j := 0; j < t.n && !t.full(); j++ {
		for i := 0; i < t.m && !t.full(); i++ {
			if t.covered[i][j] {
				continue
			}
			t.allocate(i, j)
		}
	}

	return t.result(), nil
}

// LeastCostRule builds an initial basic feasible solution with the
// Least-Cost (matrix minimum) rule.
//
// Algorithm:
//  1. Start with every cell uncovered.
//  2. Up to m+n-1 times: scan all cells origin by origin, destination by
//     destination, and take the uncovered cell with the strictly smallest
//     cost (the first one found wins ties); allocate on it exactly as
//     NorthWestCorner does.
//  3. If every cell is covered before m+n-1 allocations the plan is returned
//     short; CheckOptimality reports it through ErrCardinality.
//
// Complexity: O((m+n)·m·n) time, O(m·n) memory.
func LeastCostRule(p *Problem, opts ...Option) (Plan, error) {
	o := gatherOptions(opts...)
	if err := precheck(p, o); err != nil {
		return nil, err
	}

	t := newTableau(p, o)
	for !t.full() {
		var (
			bi, bj = -1, -1
			best   = math.Inf(1)
			i, j   int
		)
		for i = 0; i < t.m; i++ {
			for j = 0; j < t.n; j++ {
				if t.covered[i][j] {
					continue
				}
				if bi < 0 || t.cost[i][j] < best {
					bi, bj, best = i, j, t.cost[i][j]
				}
			}
		}
		if bi < 0 {
			o.debug("transport: least-cost exhausted the table", "emitted", len(t.plan), "want", t.basisSize())
			break
		}
		t.allocate(bi, bj)
	}

	return t.result(), nil
}

// Build dispatches to the builder selected by method.
func Build(p *Problem, method Method, opts ...Option) (Plan, error) {
	switch method {
	case MethodNorthWest:
		return NorthWestCorner(p, opts...)
	case MethodLeastCost:
		return LeastCostRule(p, opts...)
	default:
		return nil, fmt.Errorf("%w: %v", ErrUnknownMethod, method)
	}
}

// precheck rejects a nil problem and, under RequireBalanced, invalid input.
func precheck(p *Problem, o Options) error {
	if p == nil {
		return ErrNilProblem
	}
	if o.RequireBalanced {
		return p.validate(o.Epsilon)
	}

	return nil
}
