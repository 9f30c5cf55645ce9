// Command transport solves a balanced transportation problem read from a
// configuration file and prints the initial plan, its cost and the
// optimality certificate.
//
//	transport solve --config problem.yaml --method leastcost --log-level debug
package main

import (
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
