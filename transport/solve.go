package transport

import (
	"fmt"
	"time"
)

// Solve runs the full pipeline on p: build an initial plan with the method
// selected by WithMethod (North-West Corner by default), evaluate its cost
// and certify it.
//
// Contracts:
//   - p is read only; it can be solved again with another method.
//   - Result.Elapsed covers plan construction only.
//   - A non-optimal plan is not an error: inspect Result.Certificate.
//
// Errors: ErrNilProblem, ErrUnknownMethod, and under WithRequireBalanced
// ErrUnbalanced / ErrNegativeQuantity.
func Solve(p *Problem, opts ...Option) (Result, error) {
	o := gatherOptions(opts...)
	if p == nil {
		return Result{}, ErrNilProblem
	}

	start := time.Now()
	plan, err := Build(p, o.Method, opts...)
	elapsed := time.Since(start)
	if err != nil {
		return Result{}, err
	}

	cost, err := plan.Cost(p)
	if err != nil {
		return Result{}, fmt.Errorf("transport: solve: %w", err)
	}

	cert, err := CheckOptimality(p, plan, opts...)
	if err != nil {
		return Result{}, fmt.Errorf("transport: solve: %w", err)
	}

	if o.Logger != nil {
		o.Logger.Info("transport: solved",
			"method", o.Method.String(),
			"origins", p.Origins(),
			"destinations", p.Destinations(),
			"basic", plan.Len(),
			"cost", cost,
			"optimal", cert.Optimal,
			"elapsed", elapsed,
		)
	}

	return Result{
		Method:      o.Method,
		Plan:        plan,
		Cost:        cost,
		Certificate: cert,
		Elapsed:     elapsed,
	}, nil
}
