// dashctl scores health metrics and ranks schedule suggestions from the
// command line.
package main

import (
	"fmt"
	"github.com/spf13/cobra"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "dashctl",
		Short:         "Productivity dashboard tools",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(newScoreCmd(), newSlotsCmd(), newSuggestCmd())
	return root
}
