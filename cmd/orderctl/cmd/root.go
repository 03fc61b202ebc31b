// Package cmd is the cobra command tree for orderctl, a small demo binary
// around the orderbook core: load a book from the io package's line
// format, resolve matches against it, or run an engine benchmark. None of
// this is the core itself — it is the ambient "callers" layer the spec
// deliberately leaves outside the core (§6).
package cmd

import (
	"os"

	"cosmossdk.io/log"
	"github.com/spf13/cobra"
)

// NewRootCmd builds the orderctl root command and wires its subcommands.
func NewRootCmd() *cobra.Command {
	logger := log.NewLogger(os.Stderr).With("module", "orderctl")

	root := &cobra.Command{
		Use:   "orderctl",
		Short: "orderctl drives an in-memory order book from the command line",
		Long: `orderctl loads an order book from the "side; key; volume; price" line
format, resolves crossing orders against each other, and benchmarks the
available Side engines against one another.`,
		SilenceUsage: true,
	}

	root.AddCommand(newLoadCmd(logger))
	root.AddCommand(newMatchCmd(logger))
	root.AddCommand(newBenchCmd(logger))

	return root
}
