// Package transportation is a toolkit for the balanced transportation
// problem: ship the supply of m origins to the demand of n destinations at
// minimum total cost.
//
// 🚀 What is inside?
//
//	• transport/ — the model (Problem, Plan), the North-West Corner and
//	  Least-Cost construction methods, the objective, and the MODI
//	  (u-v potentials) optimality certificate
//	• matrix/    — dense rectangular cost storage with a finite-only policy
//	• cmd/transport — a command that reads a problem file and prints the
//	  plan, its cost and the certificate
//
// ✨ Guarantees
//
//   - Builders never mutate the Problem: both methods can run on one instance
//   - Degenerate plans are reproduced as-is; the certificate says why it
//     cannot conclude (short basis, unresolved potentials) instead of guessing
//   - Deterministic: same input, same plan, same certificate
//
// Quick start:
//
//	go get github.com/katalvlaran/transportation/transport
//
//	res, err := transport.Solve(p, transport.WithMethod(transport.MethodLeastCost))
//	fmt.Println(res.Cost, res.Certificate.Optimal)
package transportation
