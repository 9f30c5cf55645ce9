package transport

import (
	"fmt"

	"github.com/katalvlaran/transportation/matrix"
)

// Evaluate returns the objective value Σ quantity·cost[origin][destination].
//
// It is a pure reduction; the only error is a basic variable whose cell lies
// outside cost (ErrOutOfRange) or a nil cost table.
//
// Complexity: O(len(plan)).
func Evaluate(plan Plan, cost matrix.Matrix) (float64, error) {
	if err := matrix.ValidateNotNil(cost); err != nil {
		return 0, fmt.Errorf("transport: evaluate: %w", err)
	}

	var (
		total float64
		c     float64
		err   error
	)
	for k, v := range plan {
		if c, err = cost.At(v.Origin, v.Destination); err != nil {
			return 0, fmt.Errorf("%w: basic variable %d at (%d,%d)", ErrOutOfRange, k, v.Origin, v.Destination)
		}
		total += v.Quantity * c
	}

	return total, nil
}

// Cost is Evaluate against the cost table of p.
func (pl Plan) Cost(p *Problem) (float64, error) {
	if p == nil {
		return 0, ErrNilProblem
	}

	return Evaluate(pl, p.cost)
}
