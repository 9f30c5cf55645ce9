package transport_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/transportation/transport"
	"github.com/stretchr/testify/require"
)

func TestPlan_IsSpanningTree(t *testing.T) {
	p := textbook(t)
	for _, m := range []transport.Method{transport.MethodNorthWest, transport.MethodLeastCost} {
		plan, err := transport.Build(p, m)
		require.NoError(t, err)
		ok, err := plan.IsSpanningTree(3, 4)
		require.NoError(t, err)
		require.True(t, ok, m.String())
	}

	// short plan
	short, err := transport.LeastCostRule(crossed(t))
	require.NoError(t, err)
	ok, err := short.IsSpanningTree(2, 2)
	require.NoError(t, err)
	require.False(t, ok)

	// right size, but a 4-cycle on the top-left block
	cyclic := transport.Plan{
		{Origin: 0, Destination: 0},
		{Origin: 0, Destination: 1},
		{Origin: 1, Destination: 0},
		{Origin: 1, Destination: 1},
		{Origin: 2, Destination: 2},
	}
	ok, err = cyclic.IsSpanningTree(3, 3)
	require.NoError(t, err)
	require.False(t, ok)

	_, err = cyclic.IsSpanningTree(2, 2)
	require.ErrorIs(t, err, transport.ErrOutOfRange)
}

// TestNorthWestCorner_AlwaysSpanningTree: the North-West staircase is a tree
// on every positive balanced instance, so its potentials always resolve.
func TestNorthWestCorner_AlwaysSpanningTree(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	for trial := 0; trial < 30; trial++ {
		m, n := 1+rng.Intn(5), 1+rng.Intn(5)
		p := randomBalanced(t, rng, m, n)

		plan, err := transport.NorthWestCorner(p)
		require.NoError(t, err)
		ok, err := plan.IsSpanningTree(m, n)
		require.NoError(t, err)
		require.True(t, ok)

		cert, err := transport.CheckOptimality(p, plan)
		require.NoError(t, err)
		require.True(t, cert.Potentials.Complete())
	}
}
