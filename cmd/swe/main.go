// Command swe is a CLI front-end for the SWE substring-with-expansions
// solver: solve one instance, reduce a 1-in-3-SAT clause file to an SWE
// instance, or batch-solve a directory of instances concurrently.
package main

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var log = logrus.New()

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var verbose bool

	root := &cobra.Command{
		Use:   "swe",
		Short: "Solve substring-with-expansions (SWE) constraint instances",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
			if verbose {
				log.SetLevel(logrus.DebugLevel)
			} else {
				log.SetLevel(logrus.InfoLevel)
			}
		},
	}
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	root.AddCommand(newSolveCmd())
	root.AddCommand(newReduceCmd())
	root.AddCommand(newBatchCmd())
	return root
}
