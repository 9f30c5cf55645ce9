package transport

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// Sentinel errors. Match them with errors.Is; callers may receive them
// wrapped with the failing index or method name.
var (
	// ErrNilProblem is returned when a nil *Problem is passed.
	ErrNilProblem = errors.New("transport: problem is nil")

	// ErrDimensions indicates a non-positive number of origins or destinations,
	// or a supply/demand/cost shape that does not line up.
	ErrDimensions = errors.New("transport: invalid problem dimensions")

	// ErrOutOfRange indicates an origin or destination index outside the table.
	ErrOutOfRange = errors.New("transport: index out of range")

	// ErrUnbalanced is returned by Validate (and by builders under
	// WithRequireBalanced) when total supply differs from total demand.
	ErrUnbalanced = errors.New("transport: total supply differs from total demand")

	// ErrNegativeQuantity is returned by Validate for a negative supply or demand.
	ErrNegativeQuantity = errors.New("transport: negative supply or demand")

	// ErrDuplicateCell indicates a plan listing the same (origin, destination) twice.
	ErrDuplicateCell = errors.New("transport: duplicate basic cell")

	// ErrCardinality is the certificate reason when a plan does not have
	// exactly m+n-1 basic variables.
	ErrCardinality = errors.New("transport: essential condition for optimality test not met")

	// ErrUnresolvedPotentials is the certificate reason when the basic cells do
	// not connect every origin and destination, so some potentials stay unknown.
	ErrUnresolvedPotentials = errors.New("transport: dual potentials could not be resolved")

	// ErrNegativeIndex is the certificate reason when some improvement index is negative.
	ErrNegativeIndex = errors.New("transport: negative improvement index")

	// ErrUnknownMethod is returned for a Method outside the known set.
	ErrUnknownMethod = errors.New("transport: unknown construction method")
)

// Method selects the initial basic feasible solution strategy.
type Method int

const (
	// MethodNorthWest is the North-West Corner rule.
	MethodNorthWest Method = iota + 1

	// MethodLeastCost is the Least-Cost (matrix minimum) rule.
	MethodLeastCost
)

// String returns the canonical lowercase name.
func (m Method) String() string {
	switch m {
	case MethodNorthWest:
		return "northwest"
	case MethodLeastCost:
		return "leastcost"
	default:
		return fmt.Sprintf("method(%d)", int(m))
	}
}

// ParseMethod accepts the canonical names, common abbreviations and the
// numeric menu choices "1" (North-West Corner) and "2" (Least-Cost).
func ParseMethod(s string) (Method, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "northwest", "north-west", "nw", "nwc", "1":
		return MethodNorthWest, nil
	case "leastcost", "least-cost", "lc", "lcm", "2":
		return MethodLeastCost, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownMethod, s)
	}
}

// Cell addresses one entry of the transportation table.
type Cell struct {
	Origin      int
	Destination int
}

// BasicVariable is one basic cell of a plan and the quantity shipped on it.
// Quantity may be zero in degenerate plans.
type BasicVariable struct {
	Origin      int
	Destination int
	Quantity    float64
}

// Cell returns the table coordinates of v.
func (v BasicVariable) Cell() Cell { return Cell{Origin: v.Origin, Destination: v.Destination} }

// String renders "x[i][j] = q" with zero-based indices.
func (v BasicVariable) String() string {
	return fmt.Sprintf("x[%d][%d] = %g", v.Origin, v.Destination, v.Quantity)
}

// Potential is a dual value that is either resolved (Value is meaningful)
// or unresolved. The zero value is unresolved.
type Potential struct {
	Value    float64
	Resolved bool
}

// resolved builds a resolved Potential.
func resolved(v float64) Potential { return Potential{Value: v, Resolved: true} }

// String renders the value, or "-" when unresolved.
func (p Potential) String() string {
	if !p.Resolved {
		return "-"
	}

	return fmt.Sprintf("%g", p.Value)
}

// Potentials holds the row (origin) and column (destination) dual values.
type Potentials struct {
	Row []Potential
	Col []Potential
}

// Complete reports whether every row and column potential is resolved.
func (p Potentials) Complete() bool {
	for _, r := range p.Row {
		if !r.Resolved {
			return false
		}
	}
	for _, c := range p.Col {
		if !c.Resolved {
			return false
		}
	}

	return true
}

// Result is the outcome of Solve.
type Result struct {
	// Method is the strategy that built Plan.
	Method Method

	// Plan is the initial basic feasible solution.
	Plan Plan

	// Cost is Σ quantity·cost over Plan.
	Cost float64

	// Certificate is the optimality verdict with its diagnostics.
	Certificate Certificate

	// Elapsed is the wall time spent building Plan.
	Elapsed time.Duration
}
