package transport

import "math"

// tableau is the working state shared by the construction methods: private
// copies of supply and demand, the covered grid and the plan being emitted.
// The Problem itself is only read.
type tableau struct {
	m, n    int
	cost    [][]float64
	supply  []float64
	demand  []float64
	covered [][]bool
	plan    Plan
	opts    Options
}

// newTableau snapshots p into fresh working state.
func newTableau(p *Problem, opts Options) *tableau {
	m, n := p.Origins(), p.Destinations()
	covered := make([][]bool, m)
	for i := range covered {
		covered[i] = make([]bool, n)
	}

	return &tableau{
		m:       m,
		n:       n,
		cost:    p.costRows(),
		supply:  p.Supply(),
		demand:  p.Demand(),
		covered: covered,
		plan:    make(Plan, 0, m+n-1),
		opts:    opts,
	}
}

// basisSize is m+n-1, the number of basic variables of a complete basis.
func (t *tableau) basisSize() int { return t.m + t.n - 1 }

// full reports whether the basis is complete.
func (t *tableau) full() bool { return len(t.plan) >= t.basisSize() }

// allocate ships min(supply[i], demand[j]) on (i, j) and covers a line.
//
// Covering policy: if the origin is exhausted its row is covered, otherwise
// the destination column is. When both run out at once only the row is
// covered, so the column receives a zero allocation later.
func (t *tableau) allocate(i, j int) {
	q := math.Min(t.supply[i], t.demand[j])
	t.plan = append(t.plan, BasicVariable{Origin: i, Destination: j, Quantity: q})
	t.supply[i] -= q
	t.demand[j] -= q

	if t.supply[i] <= t.opts.Epsilon {
		t.coverRow(i)
		t.opts.debug("transport: allocate", "origin", i, "destination", j, "quantity", q, "covered", "row")

		return
	}
	t.coverCol(j)
	t.opts.debug("transport: allocate", "origin", i, "destination", j, "quantity", q, "covered", "column")
}

func (t *tableau) coverRow(i int) {
	for j := 0; j < t.n; j++ {
		t.covered[i][j] = true
	}
}

func (t *tableau) coverCol(j int) {
	for i := 0; i < t.m; i++ {
		t.covered[i][j] = true
	}
}

// result hands the emitted plan to the caller. The tableau is discarded.
func (t *tableau) result() Plan { return t.plan }
