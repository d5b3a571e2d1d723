// Command simctl runs market sizing, reach planning, significance tests and
// offline simulations from the command line. Simulations use the seeded
// random response oracle and keep runs in memory.
package main

import (
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
