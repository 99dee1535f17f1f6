package main

import (
	"github.com/spf13/cobra"

	"sweconstraint/internal/format"
	"sweconstraint/internal/reduction"
)

func newReduceCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "reduce <clauses.oit> <out.yaml>",
		Short: "Reduce a 1-in-3-SAT clause file to a native SWE instance file",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			clauses, err := format.ReadOIT(args[0])
			if err != nil {
				return err
			}

			instance, _, err := reduction.Reduce(clauses)
			if err != nil {
				return err
			}

			log.WithField("clauses", len(clauses)).Info("reduced 1-in-3-SAT instance")
			return format.WriteNative(args[1], instance.S, instance.Patterns, instance.Domains)
		},
	}
	return cmd
}
