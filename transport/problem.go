package transport

import (
	"fmt"

	"github.com/katalvlaran/transportation/matrix"
	"github.com/shopspring/decimal"
	"gonum.org/v1/gonum/floats"
)

// Problem is a transportation instance: supply per origin, demand per
// destination and the origin×destination unit-cost table.
//
// A Problem is populated once through the setters (or NewProblemFromSlices)
// and then only read. It is not safe for concurrent mutation; concurrent
// reads by builders and the optimality check are fine.
type Problem struct {
	supply []float64
	demand []float64
	cost   *matrix.Dense
}

// NewProblem allocates an instance with m origins and n destinations, all
// quantities and costs zero.
//
// Errors:
//   - ErrDimensions if m<=0 or n<=0.
func NewProblem(m, n int) (*Problem, error) {
	if m <= 0 || n <= 0 {
		return nil, fmt.Errorf("%w: %d origins, %d destinations", ErrDimensions, m, n)
	}
	cost, err := matrix.NewDense(m, n)
	if err != nil {
		return nil, fmt.Errorf("transport: cost table: %w", err)
	}

	return &Problem{
		supply: make([]float64, m),
		demand: make([]float64, n),
		cost:   cost,
	}, nil
}

// NewProblemFromSlices builds a populated instance. Inputs are copied.
//
// Contract:
//   - len(cost) == len(supply) and every row has len(demand) entries.
//   - every value is finite.
//
// Balance is not checked here; see Validate.
func NewProblemFromSlices(supply, demand []float64, cost [][]float64) (*Problem, error) {
	if len(supply) == 0 || len(demand) == 0 {
		return nil, fmt.Errorf("%w: empty supply or demand", ErrDimensions)
	}
	if len(cost) != len(supply) {
		return nil, fmt.Errorf("%w: %d cost rows for %d origins", ErrDimensions, len(cost), len(supply))
	}
	if err := matrix.ValidateFiniteVec(supply); err != nil {
		return nil, fmt.Errorf("transport: supply: %w", err)
	}
	if err := matrix.ValidateFiniteVec(demand); err != nil {
		return nil, fmt.Errorf("transport: demand: %w", err)
	}
	dense, err := matrix.NewDenseFromRows(cost)
	if err != nil {
		return nil, fmt.Errorf("transport: cost table: %w", err)
	}
	if err = matrix.ValidateShape(dense, len(supply), len(demand)); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDimensions, err)
	}

	p := &Problem{
		supply: make([]float64, len(supply)),
		demand: make([]float64, len(demand)),
		cost:   dense,
	}
	copy(p.supply, supply)
	copy(p.demand, demand)

	return p, nil
}

// Origins returns m, the number of supply points.
func (p *Problem) Origins() int { return len(p.supply) }

// Destinations returns n, the number of demand points.
func (p *Problem) Destinations() int { return len(p.demand) }

// SetSupply writes the supply of origin i.
func (p *Problem) SetSupply(i int, v float64) error {
	if i < 0 || i >= len(p.supply) {
		return fmt.Errorf("%w: origin %d", ErrOutOfRange, i)
	}
	if err := matrix.ValidateFiniteVec([]float64{v}); err != nil {
		return fmt.Errorf("transport: supply[%d]: %w", i, err)
	}
	p.supply[i] = v

	return nil
}

// SetDemand writes the demand of destination j.
func (p *Problem) SetDemand(j int, v float64) error {
	if j < 0 || j >= len(p.demand) {
		return fmt.Errorf("%w: destination %d", ErrOutOfRange, j)
	}
	if err := matrix.ValidateFiniteVec([]float64{v}); err != nil {
		return fmt.Errorf("transport: demand[%d]: %w", j, err)
	}
	p.demand[j] = v

	return nil
}

// SetCost writes the unit cost of shipping from origin i to destination j.
func (p *Problem) SetCost(i, j int, v float64) error {
	if i < 0 || i >= len(p.supply) || j < 0 || j >= len(p.demand) {
		return fmt.Errorf("%w: cell (%d,%d)", ErrOutOfRange, i, j)
	}
	if err := p.cost.Set(i, j, v); err != nil {
		return fmt.Errorf("transport: cost: %w", err)
	}

	return nil
}

// Supply returns a copy of the supply vector.
func (p *Problem) Supply() []float64 {
	out := make([]float64, len(p.supply))
	copy(out, p.supply)

	return out
}

// Demand returns a copy of the demand vector.
func (p *Problem) Demand() []float64 {
	out := make([]float64, len(p.demand))
	copy(out, p.demand)

	return out
}

// CostAt returns the unit cost of cell (i, j).
func (p *Problem) CostAt(i, j int) (float64, error) {
	v, err := p.cost.At(i, j)
	if err != nil {
		return 0, fmt.Errorf("%w: cell (%d,%d)", ErrOutOfRange, i, j)
	}

	return v, nil
}

// Cost returns an independent copy of the cost table.
func (p *Problem) Cost() *matrix.Dense {
	return p.cost.Clone().(*matrix.Dense)
}

// costRows snapshots the cost table for hot loops.
func (p *Problem) costRows() [][]float64 { return p.cost.ToRows() }

// TotalSupply returns Σ supply.
func (p *Problem) TotalSupply() float64 { return floats.Sum(p.supply) }

// TotalDemand returns Σ demand.
func (p *Problem) TotalDemand() float64 { return floats.Sum(p.demand) }

// Imbalance returns Σ supply − Σ demand computed in decimal arithmetic, so
// that inputs such as 0.1+0.2 vs 0.3 compare as written.
func (p *Problem) Imbalance() decimal.Decimal {
	total := decimal.Zero
	for _, s := range p.supply {
		total = total.Add(decimal.NewFromFloat(s))
	}
	for _, d := range p.demand {
		total = total.Sub(decimal.NewFromFloat(d))
	}

	return total
}

// Balanced reports whether Σ supply equals Σ demand exactly.
func (p *Problem) Balanced() bool { return p.balancedWithin(0) }

func (p *Problem) balancedWithin(eps float64) bool {
	return p.Imbalance().Abs().LessThanOrEqual(decimal.NewFromFloat(eps))
}

// Validate checks the preconditions the construction methods assume:
// non-negative quantities and a balanced instance.
//
// Errors: ErrNegativeQuantity, ErrUnbalanced (wrapped with details).
func (p *Problem) Validate() error { return p.validate(DefaultEpsilon) }

func (p *Problem) validate(eps float64) error {
	for i, s := range p.supply {
		if s < 0 {
			return fmt.Errorf("%w: supply[%d]=%g", ErrNegativeQuantity, i, s)
		}
	}
	for j, d := range p.demand {
		if d < 0 {
			return fmt.Errorf("%w: demand[%d]=%g", ErrNegativeQuantity, j, d)
		}
	}
	if !p.balancedWithin(eps) {
		return fmt.Errorf("%w: supply %g, demand %g", ErrUnbalanced, p.TotalSupply(), p.TotalDemand())
	}

	return nil
}
