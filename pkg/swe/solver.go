package swe

import (
	"context"
	"fmt"
	"sort"
	"time"
)

// Solver decides one SWE instance. A Solver owns its domains, patterns,
// occurrence index, and feasibility memo exclusively; the input (s,
// patterns, R) is copied at construction, and no external party mutates it
// during Solve. Multiple Solver instances may be driven concurrently by a
// caller, each owning its own state; nothing inside a single Solve call
// is concurrent.
type Solver struct {
	s        string
	patterns []Pattern
	domains  map[Variable][]string
	vars     []Variable // ascending symbol order, fixed at construction

	index  *OccurrenceIndex
	oracle *oracle
	config *SolverConfig

	stats Stats
}

// NewSolver constructs a Solver for the instance (s, patterns, r). r maps
// each variable symbol appearing in any pattern to its non-empty candidate
// set. NewSolver fails with an error wrapping ErrInvalidInput if: a pattern
// references a variable absent from r; any domain in r is empty; any
// variable symbol lies outside A-Z; or any candidate string is empty.
func NewSolver(s string, patterns []string, r map[Variable][]string) (*Solver, error) {
	return NewSolverWithConfig(s, patterns, r, nil)
}

// NewSolverWithConfig is NewSolver with an explicit, possibly nil,
// SolverConfig; nil selects DefaultSolverConfig.
func NewSolverWithConfig(s string, patterns []string, r map[Variable][]string, config *SolverConfig) (*Solver, error) {
	if config == nil {
		config = DefaultSolverConfig()
	}
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("%w: invalid solver config", err)
	}

	for x, choices := range r {
		if !IsValidVariable(byte(x)) {
			return nil, fmt.Errorf("%w: variable %q is outside A-Z", ErrInvalidInput, string(byte(x)))
		}
		if len(choices) == 0 {
			return nil, fmt.Errorf("%w: domain of variable %q is empty", ErrInvalidInput, string(byte(x)))
		}
		for _, c := range choices {
			if c == "" {
				return nil, fmt.Errorf("%w: domain of variable %q contains an empty candidate string", ErrInvalidInput, string(byte(x)))
			}
		}
	}

	tokenized := make([]Pattern, len(patterns))
	for i, raw := range patterns {
		pat := NewPattern(i, raw)
		tokenized[i] = pat
		for _, x := range pat.Variables() {
			if _, ok := r[x]; !ok {
				return nil, fmt.Errorf("%w: pattern %q references variable %q with no domain", ErrInvalidInput, raw, string(byte(x)))
			}
		}
	}

	domains := make(map[Variable][]string, len(r))
	var allCandidates []string
	var vars []Variable
	for x, choices := range r {
		sorted := make([]string, len(choices))
		copy(sorted, choices)
		sort.Strings(sorted)
		sorted = dedupSorted(sorted)
		domains[x] = sorted
		allCandidates = append(allCandidates, sorted...)
		vars = append(vars, x)
	}
	sort.Slice(vars, func(i, j int) bool { return vars[i] < vars[j] })

	index := NewOccurrenceIndex(s, allCandidates...)
	o := newOracle(s, tokenized, domains, index, config.MemoLimit)

	return &Solver{
		s:        s,
		patterns: tokenized,
		domains:  domains,
		vars:     vars,
		index:    index,
		oracle:   o,
		config:   config,
	}, nil
}

func dedupSorted(sorted []string) []string {
	out := sorted[:0:0]
	for i, v := range sorted {
		if i == 0 || v != sorted[i-1] {
			out = append(out, v)
		}
	}
	return out
}

// Domains returns a copy of each variable's domain, sorted ascending.
func (solver *Solver) Domains() map[Variable][]string {
	out := make(map[Variable][]string, len(solver.domains))
	for x, choices := range solver.domains {
		cp := make([]string, len(choices))
		copy(cp, choices)
		out[x] = cp
	}
	return out
}

// Variables returns the problem's variables in ascending symbol order.
func (solver *Solver) Variables() []Variable {
	out := make([]Variable, len(solver.vars))
	copy(out, solver.vars)
	return out
}

// Solve runs the backtracking search and returns one solution, or
// ErrNoSolution if the instance is unsatisfiable. ctx is consulted
// cooperatively at the top of every search node; if it is done, Solve
// returns ErrNoSolution with the elapsed time recorded, and the owned
// state is left untouched so a later Solve call on the same Solver is
// semantically identical.
func (solver *Solver) Solve(ctx context.Context) (Assignment, error) {
	start := time.Now()
	solver.stats.reset()
	solver.oracle.reset()
	defer func() { solver.stats.ElapsedWallTime = time.Since(start) }()

	candidateStarts := make([][]int, len(solver.patterns))
	initialInfeasible := 0
	for i, pat := range solver.patterns {
		candidateStarts[i] = solver.initialStarts(pat)
		if len(candidateStarts[i]) == 0 {
			initialInfeasible++
		}
	}
	if initialInfeasible > 0 {
		solver.stats.StatesExplored = 1
		solver.stats.Backtracks = 1
		solver.stats.InitialInfeasiblePatterns = initialInfeasible
		return nil, ErrNoSolution
	}

	result, ok := solver.search(ctx, Assignment{}, candidateStarts, 0)
	if !ok {
		return nil, ErrNoSolution
	}
	return result, nil
}

// initialStarts computes CandidateStarts[i] for an empty assignment:
// every position p in [0, |s|] at which fits_at(i, 0, p, {}) holds.
func (solver *Solver) initialStarts(pat Pattern) []int {
	var starts []int
	for p := 0; p <= len(solver.s); p++ {
		if solver.oracle.FitsAt(pat.ID, 0, p, Assignment{}) {
			starts = append(starts, p)
		}
	}
	return starts
}

// Stats returns the counters recorded by the most recent Solve call.
func (solver *Solver) Stats() Stats {
	return solver.stats
}
