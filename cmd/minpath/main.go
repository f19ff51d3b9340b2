// Command minpath prints the minimal Down/Right path sum of a square matrix
// file and the path producing it.
package main

import (
	"os"

	"github.com/spf13/cobra"
)

// version is overridden at build time with -ldflags "-X main.version=...".
var version = "dev"

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "minpath",
		Short:        "Minimal path sum through a square matrix",
		Long:         "Find the minimal path sum from the top-left to the bottom-right of a square matrix, moving only right and down.",
		SilenceUsage: true,
	}
	root.AddCommand(newSolveCmd(), newVersionCmd())

	return root
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
