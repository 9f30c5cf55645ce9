package transport

import (
	"fmt"
	"strings"
)

// Certificate is the outcome of the MODI optimality test.
type Certificate struct {
	// Optimal is true iff every improvement index is non-negative and every
	// potential was resolved.
	Optimal bool

	// Reason is nil when Optimal; otherwise ErrCardinality,
	// ErrUnresolvedPotentials or ErrNegativeIndex.
	Reason error

	// Potentials are the row (R) and column (K) dual values with
	// cost[i][j] = R[i] + K[j] on every basic cell. Empty on ErrCardinality.
	Potentials Potentials

	// Improvement is the m×n index table: 0 on basic cells,
	// cost - R[i] - K[j] elsewhere, unresolved where a potential is.
	// Nil on ErrCardinality.
	Improvement [][]Potential

	// Entering is the non-basic cell with the most negative index, or nil.
	Entering *Cell

	// Degenerate is true when some basic variable ships zero.
	Degenerate bool

	// Passes is the number of propagation sweeps until the fixed point.
	Passes int
}

// CheckOptimality certifies whether plan is an optimal solution of p using
// dual potentials (the u-v or MODI method).
//
// Steps:
//  1. Cardinality: a basis needs exactly m+n-1 variables; otherwise the
//     certificate is non-optimal with Reason ErrCardinality and no potentials.
//  2. Mark the basic cells (ErrOutOfRange / ErrDuplicateCell on a malformed plan).
//  3. R[0] = 0; every other potential starts unresolved.
//  4. Sweep the basic cells row by row until a sweep resolves nothing:
//     K[j] = c[i][j] - R[i] when only R[i] is known,
//     R[i] = c[i][j] - K[j] when only K[j] is known.
//  5. Index every non-basic cell: I[i][j] = c[i][j] - R[i] - K[j].
//  6. Optimal iff all potentials resolved and every I[i][j] >= -Epsilon.
//
// The check only reads p and plan; repeated calls return identical results.
//
// Complexity: O(m·n·(m+n)) in the worst case (one sweep per tree level).
func CheckOptimality(p *Problem, plan Plan, opts ...Option) (Certificate, error) {
	if p == nil {
		return Certificate{}, ErrNilProblem
	}
	o := gatherOptions(opts...)
	m, n := p.Origins(), p.Destinations()

	// Stage 1: basis cardinality.
	if len(plan) != m+n-1 {
		o.debug("transport: cardinality check failed", "basic", len(plan), "want", m+n-1)

		return Certificate{
			Reason:     fmt.Errorf("%w: %d basic variables, want %d", ErrCardinality, len(plan), m+n-1),
			Degenerate: plan.Degenerate(),
		}, nil
	}

	// Stage 2: covered grid.
	covered, err := plan.covered(m, n)
	if err != nil {
		return Certificate{}, err
	}
	cost := p.costRows()

	// Stage 3–4: potentials.
	pot, passes := resolvePotentials(cost, covered, o)

	// Stage 5: improvement indices.
	var (
		improvement = make([][]Potential, m)
		entering    *Cell
		worst       float64
		i, j        int
	)
	for i = 0; i < m; i++ {
		improvement[i] = make([]Potential, n)
		for j = 0; j < n; j++ {
			if covered[i][j] {
				improvement[i][j] = resolved(0)
				continue
			}
			if !pot.Row[i].Resolved || !pot.Col[j].Resolved {
				continue // stays unresolved
			}
			idx := cost[i][j] - pot.Row[i].Value - pot.Col[j].Value
			improvement[i][j] = resolved(idx)
			if idx < -o.Epsilon && (entering == nil || idx < worst) {
				entering = &Cell{Origin: i, Destination: j}
				worst = idx
			}
		}
	}

	// Stage 6: verdict.
	cert := Certificate{
		Potentials:  pot,
		Improvement: improvement,
		Entering:    entering,
		Degenerate:  plan.Degenerate(),
		Passes:      passes,
	}
	switch {
	case !pot.Complete():
		cert.Reason = ErrUnresolvedPotentials
	case entering != nil:
		cert.Reason = fmt.Errorf("%w: %g at (%d,%d)", ErrNegativeIndex, worst, entering.Origin, entering.Destination)
	default:
		cert.Optimal = true
	}
	o.debug("transport: optimality checked", "optimal", cert.Optimal, "passes", passes)

	return cert, nil
}

// resolvePotentials propagates R and K over the basic cells until a sweep
// makes no progress. It returns the potentials and the number of sweeps.
// Cells where both or neither potential is known are skipped in a sweep.
func resolvePotentials(cost [][]float64, covered [][]bool, o Options) (Potentials, int) {
	m, n := len(covered), len(covered[0])
	pot := Potentials{
		Row: make([]Potential, m),
		Col: make([]Potential, n),
	}
	pot.Row[0] = resolved(0)

	var (
		passes  int
		changed = true
		i, j    int
	)
	for changed {
		changed = false
		passes++
		for i = 0; i < m; i++ {
			for j = 0; j < n; j++ {
				if !covered[i][j] {
					continue
				}
				switch r, k := pot.Row[i], pot.Col[j]; {
				case r.Resolved && !k.Resolved:
					pot.Col[j] = resolved(cost[i][j] - r.Value)
					o.debug("transport: resolve", "K", j, "value", pot.Col[j].Value)
					changed = true
				case !r.Resolved && k.Resolved:
					pot.Row[i] = resolved(cost[i][j] - k.Value)
					o.debug("transport: resolve", "R", i, "value", pot.Row[i].Value)
					changed = true
				}
			}
		}
	}

	return pot, passes
}

// String renders the certificate the way the interactive driver prints it:
// the R and K potentials, the improvement-index table and the verdict.
func (c Certificate) String() string {
	var sb strings.Builder
	if c.Improvement == nil && c.Reason != nil {
		sb.WriteString("Essential condition for optimality test not met\n")
		sb.WriteString("Not optimal\n")

		return sb.String()
	}

	sb.WriteString("R:")
	for _, r := range c.Potentials.Row {
		sb.WriteString(" " + r.String())
	}
	sb.WriteString("\nK:")
	for _, k := range c.Potentials.Col {
		sb.WriteString(" " + k.String())
	}
	sb.WriteString("\nImprovement indices:\n")
	for _, row := range c.Improvement {
		for j, v := range row {
			if j == 0 {
				sb.WriteString("> ")
			} else {
				sb.WriteString(" | ")
			}
			sb.WriteString(v.String())
		}
		sb.WriteByte('\n')
	}
	if c.Optimal {
		sb.WriteString("Optimal\n")
	} else {
		sb.WriteString("Not optimal\n")
	}

	return sb.String()
}
