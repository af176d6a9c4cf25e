// Command mentormatch solves the mentee/mentor matching problem from CSV
// inputs: it validates rankings and capacities, completes partial
// preferences into fair total orders, runs deferred acceptance, and writes
// the stable assignment as CSV.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
