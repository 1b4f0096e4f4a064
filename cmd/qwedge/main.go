// Package main provides the qwedge CLI: it evaluates recovery-wedge
// scenarios over a stabilizer graph state and writes the result tables
// consumed by the plotting tooling.
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
