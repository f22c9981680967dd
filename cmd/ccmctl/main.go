// ccmctl inspects and programs the i.MX RT clock control module through
// /dev/mem, or against an in-memory register file with --sim.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
