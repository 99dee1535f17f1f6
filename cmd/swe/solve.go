package main

import (
	"context"
	"fmt"
	"sort"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"sweconstraint/internal/format"
	"sweconstraint/internal/preprocess"
	"sweconstraint/internal/reduction"
	"sweconstraint/pkg/swe"
)

func newSolveCmd() *cobra.Command {
	var fileFormat string
	var doPreprocess bool

	cmd := &cobra.Command{
		Use:   "solve <instance-file>",
		Short: "Solve one SWE instance and print the matched assignment",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := args[0]

			switch fileFormat {
			case "native":
				return solveNative(path, doPreprocess)
			case "oit":
				return solveOIT(path, doPreprocess)
			default:
				return fmt.Errorf("unknown --format %q (want native or oit)", fileFormat)
			}
		},
	}
	cmd.Flags().StringVar(&fileFormat, "format", "native", "instance file format: native or oit")
	cmd.Flags().BoolVar(&doPreprocess, "preprocess", false, "shrink patterns/domains before solving")
	return cmd
}

func solveNative(path string, doPreprocess bool) error {
	s, patterns, domains, err := format.ReadNative(path)
	if err != nil {
		return err
	}

	if doPreprocess {
		patterns, domains = applyPreprocess(s, patterns, domains)
	}

	solver, err := swe.NewSolver(s, patterns, domains)
	if err != nil {
		return err
	}

	assignment, err := solver.Solve(context.Background())
	printSolveResult(s, patterns, assignment, err, solver.Stats())
	return nil
}

func solveOIT(path string, doPreprocess bool) error {
	clauses, err := format.ReadOIT(path)
	if err != nil {
		return err
	}

	instance, mapping, err := reduction.Reduce(clauses)
	if err != nil {
		return err
	}

	s, patterns, domains := instance.S, instance.Patterns, instance.Domains
	if doPreprocess {
		patterns, domains = applyPreprocess(s, patterns, domains)
	}

	solver, err := swe.NewSolver(s, patterns, domains)
	if err != nil {
		return err
	}

	assignment, err := solver.Solve(context.Background())
	printSolveResult(s, patterns, assignment, err, solver.Stats())
	if err == nil {
		boolAssignment, uerr := mapping.Unreduce(assignment)
		if uerr != nil {
			return uerr
		}
		printOITAssignment(boolAssignment)
	}
	return nil
}

func applyPreprocess(s string, patterns []string, domains map[swe.Variable][]string) ([]string, map[swe.Variable][]string) {
	outPatterns, outDomains, stats := preprocess.Preprocess(s, patterns, domains)
	log.WithFields(logrusFields(stats)).Debug("preprocessed instance")

	patternReduction := percentReduction(stats.PatternsBefore, stats.PatternsAfter)
	domainReduction := percentReduction(stats.DomainsBefore, stats.DomainsAfter)
	avgReduction := percentReductionFloat(stats.AverageDomainSizeBefore, stats.AverageDomainSizeAfter)
	fmt.Printf("patterns reduced by %.2f%% (%d -> %d)\n", patternReduction, stats.PatternsBefore, stats.PatternsAfter)
	fmt.Printf("domains reduced by %.2f%% (%d -> %d)\n", domainReduction, stats.DomainsBefore, stats.DomainsAfter)
	fmt.Printf("average domain size reduced by %.2f%% (%.2f -> %.2f)\n", avgReduction, stats.AverageDomainSizeBefore, stats.AverageDomainSizeAfter)

	leaves, totalNodes := swe.TheoreticalTotals(domainSizes(outDomains))
	fmt.Printf("theoretical leaves=%d total_nodes=%d\n\n", leaves, totalNodes)

	return outPatterns, outDomains
}

func percentReduction(before, after int) float64 {
	return percentReductionFloat(float64(before), float64(after))
}

func percentReductionFloat(before, after float64) float64 {
	if before == 0 {
		return 0
	}
	return (before - after) / before * 100
}

func domainSizes(domains map[swe.Variable][]string) []int {
	sizes := make([]int, 0, len(domains))
	for _, choices := range domains {
		sizes = append(sizes, len(choices))
	}
	sort.Ints(sizes) // TheoreticalTotals expects ascending sizes
	return sizes
}

func logrusFields(stats preprocess.Stats) map[string]interface{} {
	return map[string]interface{}{
		"patterns_before": stats.PatternsBefore,
		"patterns_after":  stats.PatternsAfter,
		"domains_before":  stats.DomainsBefore,
		"domains_after":   stats.DomainsAfter,
	}
}

func printSolveResult(s string, patterns []string, assignment swe.Assignment, err error, stats swe.Stats) {
	if err != nil {
		color.Red("no solution: %v", err)
		fmt.Printf("states_explored=%d backtracks=%d\n", stats.StatesExplored, stats.Backtracks)
		return
	}

	color.Green("solution found")
	for i, raw := range patterns {
		pat := swe.NewPattern(i, raw)
		expanded := swe.Expand(pat, assignment)
		highlightMatch(s, expanded)
	}

	var vars []string
	for x := range assignment {
		vars = append(vars, string(byte(x)))
	}
	sort.Strings(vars)
	for _, v := range vars {
		fmt.Printf("  %s = %s\n", v, assignment[swe.Variable(v[0])])
	}
	fmt.Printf("states_explored=%d backtracks=%d\n", stats.StatesExplored, stats.Backtracks)
}

// highlightMatch prints s with the occurrence of expanded highlighted in
// green, or reports that it is missing (which should not happen for a
// solution returned by Solve).
func highlightMatch(s, expanded string) {
	idx := indexOf(s, expanded)
	if idx < 0 {
		color.Red("  %q not found in %q", expanded, s)
		return
	}
	before := s[:idx]
	match := s[idx : idx+len(expanded)]
	after := s[idx+len(expanded):]
	fmt.Printf("  %s%s%s\n", before, color.New(color.FgGreen, color.Bold).Sprint(match), after)
}

func indexOf(s, sub string) int {
	for i := 0; i+len(sub) <= len(s); i++ {
		if s[i:i+len(sub)] == sub {
			return i
		}
	}
	return -1
}

func printOITAssignment(assignment map[int]bool) {
	fmt.Println("OIT variable assignments:")
	var ids []int
	for id := range assignment {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	for _, id := range ids {
		value := "0"
		if assignment[id] {
			value = "1"
		}
		fmt.Printf("  u%d = %s\n", id, value)
	}
}
