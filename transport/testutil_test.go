package transport_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/transportation/transport"
	"github.com/stretchr/testify/require"
)

// textbook is the classic 3×4 balanced instance (total 75).
func textbook(t testing.TB) *transport.Problem {
	t.Helper()
	p, err := transport.NewProblemFromSlices(
		[]float64{20, 30, 25},
		[]float64{10, 25, 15, 25},
		[][]float64{
			{4, 6, 8, 7},
			{5, 7, 6, 5},
			{6, 8, 6, 4},
		},
	)
	require.NoError(t, err)

	return p
}

// crossed is a 2×2 instance whose North-West plan is degenerate and not optimal.
func crossed(t testing.TB) *transport.Problem {
	t.Helper()
	p, err := transport.NewProblemFromSlices(
		[]float64{10, 10},
		[]float64{10, 10},
		[][]float64{
			{5, 1},
			{1, 5},
		},
	)
	require.NoError(t, err)

	return p
}

// randomBalanced builds an m×n balanced instance with integer quantities and
// costs, so every sum in the tests is exact in float64.
func randomBalanced(t testing.TB, rng *rand.Rand, m, n int) *transport.Problem {
	t.Helper()
	supply := make([]float64, m)
	demand := make([]float64, n)
	cost := make([][]float64, m)

	var total float64
	for i := range supply {
		supply[i] = float64(n + rng.Intn(50))
		total += supply[i]
		cost[i] = make([]float64, n)
		for j := range cost[i] {
			cost[i][j] = float64(1 + rng.Intn(20))
		}
	}
	// spread total over n positive demands; left >= n-j holds before step j
	left := int(total)
	for j := 0; j < n-1; j++ {
		share := 1 + rng.Intn(left-(n-1-j))
		demand[j] = float64(share)
		left -= share
	}
	demand[n-1] = float64(left)

	p, err := transport.NewProblemFromSlices(supply, demand, cost)
	require.NoError(t, err)
	require.True(t, p.Balanced())

	return p
}

// Repeat runs fn k times as subtests, to catch hidden state across calls.
func Repeat(t *testing.T, k int, fn func(t *testing.T)) {
	t.Helper()
	for r := 0; r < k; r++ {
		t.Run("", fn)
	}
}
