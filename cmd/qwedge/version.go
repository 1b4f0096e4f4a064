package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

// Version is the CLI version, overridable at build time via
// -ldflags "-X main.Version=...".
var Version = "0.1.0"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the qwedge version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("qwedge", Version)
	},
}
