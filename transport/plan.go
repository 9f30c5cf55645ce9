package transport

import (
	"fmt"
	"strings"

	"gonum.org/v1/gonum/floats"
)

// Plan is an ordered list of basic variables, in the order the builder
// emitted them. A complete basis for m origins and n destinations has
// exactly m+n-1 entries with pairwise distinct cells.
type Plan []BasicVariable

// Len returns the number of basic variables.
func (pl Plan) Len() int { return len(pl) }

// Quantities returns the shipped quantities in plan order.
func (pl Plan) Quantities() []float64 {
	out := make([]float64, len(pl))
	for k, v := range pl {
		out[k] = v.Quantity
	}

	return out
}

// Total returns Σ quantity. For a balanced instance it equals total supply.
func (pl Plan) Total() float64 { return floats.Sum(pl.Quantities()) }

// Degenerate reports whether some basic variable ships nothing.
func (pl Plan) Degenerate() bool {
	for _, v := range pl {
		if v.Quantity == 0 {
			return true
		}
	}

	return false
}

// Contains reports whether (i, j) is a basic cell.
func (pl Plan) Contains(i, j int) bool {
	for _, v := range pl {
		if v.Origin == i && v.Destination == j {
			return true
		}
	}

	return false
}

// Shipments expands the plan into an m×n table of quantities.
//
// Errors: ErrOutOfRange for a cell outside m×n, ErrDuplicateCell when a cell repeats.
func (pl Plan) Shipments(m, n int) ([][]float64, error) {
	if _, err := pl.covered(m, n); err != nil {
		return nil, err
	}
	out := make([][]float64, m)
	for i := range out {
		out[i] = make([]float64, n)
	}
	for _, v := range pl {
		out[v.Origin][v.Destination] = v.Quantity
	}

	return out, nil
}

// Clone returns an independent copy.
func (pl Plan) Clone() Plan {
	if pl == nil {
		return nil
	}
	out := make(Plan, len(pl))
	copy(out, pl)

	return out
}

// String lists one basic variable per line.
func (pl Plan) String() string {
	var sb strings.Builder
	for _, v := range pl {
		sb.WriteString(v.String())
		sb.WriteByte('\n')
	}

	return sb.String()
}

// covered marks the basic cells of pl on an m×n grid.
//
// Errors: ErrOutOfRange, ErrDuplicateCell.
func (pl Plan) covered(m, n int) ([][]bool, error) {
	grid := make([][]bool, m)
	for i := range grid {
		grid[i] = make([]bool, n)
	}
	for k, v := range pl {
		if v.Origin < 0 || v.Origin >= m || v.Destination < 0 || v.Destination >= n {
			return nil, fmt.Errorf("%w: basic variable %d at (%d,%d)", ErrOutOfRange, k, v.Origin, v.Destination)
		}
		if grid[v.Origin][v.Destination] {
			return nil, fmt.Errorf("%w: (%d,%d)", ErrDuplicateCell, v.Origin, v.Destination)
		}
		grid[v.Origin][v.Destination] = true
	}

	return grid, nil
}
