// Package transport builds and certifies initial solutions of the balanced
// transportation problem.
//
// 🚚 What is the transportation problem?
//
//	m origins hold supply s[i], n destinations require demand d[j], and
//	shipping one unit from i to j costs c[i][j]. A plan assigns quantities
//	x[i][j] ≥ 0 so that every row sums to s[i] and every column to d[j];
//	the goal is the plan with the smallest Σ x[i][j]·c[i][j].
//
// ✨ What this package does:
//
//   - NorthWestCorner — scans the table column by column, top to bottom,
//     and allocates greedily. Time O(m·n).
//   - LeastCostRule   — repeatedly picks the cheapest uncovered cell.
//     Time O((m+n)·m·n).
//   - Evaluate        — objective value Σ quantity·cost of a plan.
//   - CheckOptimality — MODI (u-v) test: resolves dual potentials on the
//     m+n-1 basic cells, computes improvement indices on the others and
//     certifies the plan optimal iff every index is non-negative.
//   - IsSpanningTree  — checks that a plan is a cycle-free basis of
//     m+n-1 cells (union-find).
//   - Solve           — runs one builder, the objective and the check,
//     and reports construction time.
//
// The package does not pivot: a non-optimal plan is reported as such, with
// the most negative improvement index as the entering cell, but it is never
// improved.
//
// ⚙️ Usage:
//
//	p, err := transport.NewProblemFromSlices(
//		[]float64{20, 30, 25},
//		[]float64{10, 25, 15, 25},
//		[][]float64{
//			{4, 6, 8, 7},
//			{5, 7, 6, 5},
//			{6, 8, 6, 4},
//		},
//	)
//	res, err := transport.Solve(p, transport.WithMethod(transport.MethodLeastCost))
//	fmt.Println(res.Cost, res.Certificate.Optimal) // 395 true
//
// Degenerate input:
//
//	When a supply and a demand are exhausted by the same allocation, only the
//	row is covered; the column stays open and the next cell in it receives a
//	zero allocation. This tie-break is deliberate and keeps plans
//	reproducible. Inputs that still end up with a disconnected basis are
//	reported by CheckOptimality through ErrUnresolvedPotentials instead of
//	computing with placeholder potentials.
//
// Builders never mutate the Problem: supply and demand are consumed on
// private working copies, so one Problem can be solved by both strategies.
package transport
