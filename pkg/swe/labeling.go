package swe

import "sort"

// VariableOrderingStrategy selects the next variable to branch on.
// Implementations must be deterministic for identical inputs.
type VariableOrderingStrategy interface {
	// SelectVariable returns the next unassigned variable to branch on and
	// true, or the zero Variable and false if every variable is assigned.
	// vars is the full, ascending-sorted variable list fixed at
	// construction; domains holds the current domain of every variable
	// (unassigned variables only need a meaningful entry); assigned is the
	// current partial assignment.
	SelectVariable(vars []Variable, domains map[Variable][]string, assigned Assignment) (Variable, bool)

	// Name identifies the strategy for logging and diagnostics.
	Name() string
}

// MRVOrdering implements Minimum-Remaining-Values: the unassigned variable
// with the smallest domain is chosen, ties broken by ascending variable
// symbol. This is the default variable ordering.
type MRVOrdering struct{}

// SelectVariable implements VariableOrderingStrategy.
func (MRVOrdering) SelectVariable(vars []Variable, domains map[Variable][]string, assigned Assignment) (Variable, bool) {
	best := Variable(0)
	bestSize := -1
	found := false
	for _, x := range vars { // vars is ascending, so first strict improvement keeps the earliest symbol
		if _, ok := assigned[x]; ok {
			continue
		}
		size := len(domains[x])
		if !found || size < bestSize {
			best, bestSize, found = x, size, true
		}
	}
	return best, found
}

// Name implements VariableOrderingStrategy.
func (MRVOrdering) Name() string { return "mrv" }

// LexicographicVariableOrdering selects unassigned variables in ascending
// symbol order, ignoring domain size. It is provided for experimentation
// alongside MRV; the search statistics and pruning behavior guaranteed for
// MRV do not carry over when this strategy is substituted.
type LexicographicVariableOrdering struct{}

// SelectVariable implements VariableOrderingStrategy.
func (LexicographicVariableOrdering) SelectVariable(vars []Variable, _ map[Variable][]string, assigned Assignment) (Variable, bool) {
	for _, x := range vars {
		if _, ok := assigned[x]; !ok {
			return x, true
		}
	}
	return 0, false
}

// Name implements VariableOrderingStrategy.
func (LexicographicVariableOrdering) Name() string { return "lex" }

// ValueOrderingStrategy orders a variable's remaining candidate values.
type ValueOrderingStrategy interface {
	// OrderValues returns domain reordered for trial. score(v) computes
	// the placement score for candidate value v; domain is already sorted
	// ascending lexicographically.
	OrderValues(domain []string, score func(value string) int) []string

	// Name identifies the strategy for logging and diagnostics.
	Name() string
}

// LeastConstrainingValueOrdering orders values by ascending placement
// score (tightest contexts first), ties broken by ascending lexicographic
// order of the candidate string.
type LeastConstrainingValueOrdering struct{}

// OrderValues implements ValueOrderingStrategy.
func (LeastConstrainingValueOrdering) OrderValues(domain []string, score func(value string) int) []string {
	type scored struct {
		value string
		score int
	}
	ranked := make([]scored, len(domain))
	for i, v := range domain {
		ranked[i] = scored{value: v, score: score(v)}
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		if ranked[i].score != ranked[j].score {
			return ranked[i].score < ranked[j].score
		}
		return ranked[i].value < ranked[j].value
	})
	out := make([]string, len(ranked))
	for i, r := range ranked {
		out[i] = r.value
	}
	return out
}

// Name implements ValueOrderingStrategy.
func (LeastConstrainingValueOrdering) Name() string { return "least-constraining" }

// AscendingLexValueOrdering orders values purely lexicographically,
// ignoring the placement score. Provided alongside the default ordering
// for experimentation; it does not evaluate score at all, so it is
// cheaper but forfeits the "tight contexts first" property.
type AscendingLexValueOrdering struct{}

// OrderValues implements ValueOrderingStrategy.
func (AscendingLexValueOrdering) OrderValues(domain []string, _ func(value string) int) []string {
	out := make([]string, len(domain))
	copy(out, domain)
	sort.Strings(out)
	return out
}

// Name implements ValueOrderingStrategy.
func (AscendingLexValueOrdering) Name() string { return "ascending-lex" }
