package reduction

import (
	"fmt"
	"sort"

	"sweconstraint/pkg/swe"
)

// targetString is the fixed target string of the 1-in-3-SAT reduction:
// #01# and #10# each force exactly one of a literal pair, and #001#,
// #010#, #100# each force exactly one of a literal triple.
const targetString = "#01#10#001#010#100#"

// Instance is an SWE problem instance produced by Reduce: a target string,
// the patterns derived from the clauses, and the per-letter domain.
type Instance struct {
	S        string
	Patterns []string
	Domains  map[swe.Variable][]string
}

// Mapping records, for each Boolean variable id, the letter pair assigned by
// Reduce (positive letter, negated letter), so a solution can be decoded
// back with Unreduce.
type Mapping struct {
	sortedVars   []int
	varToLetters map[int][2]swe.Variable
}

// Reduce encodes clauses as an SWE Instance together with the Mapping
// needed to decode a solution. Every clause must have exactly three
// literals, or Reduce fails with ErrClauseSize.
func Reduce(clauses []Clause) (Instance, Mapping, error) {
	varSet := make(map[int]bool)
	for _, c := range clauses {
		if len(c.Literals) != 3 {
			return Instance{}, Mapping{}, fmt.Errorf("%w: got %d", ErrClauseSize, len(c.Literals))
		}
		for varID := range c.Literals {
			varSet[varID] = true
		}
	}

	sortedVars := make([]int, 0, len(varSet))
	for v := range varSet {
		sortedVars = append(sortedVars, v)
	}
	sort.Ints(sortedVars)

	varToLetters := make(map[int][2]swe.Variable, len(sortedVars))
	letter := byte('A')
	for _, v := range sortedVars {
		varToLetters[v] = [2]swe.Variable{swe.Variable(letter), swe.Variable(letter + 1)}
		letter += 2
	}

	var patterns []string
	for _, v := range sortedVars {
		pair := varToLetters[v]
		patterns = append(patterns, fmt.Sprintf("#%c%c#", byte(pair[0]), byte(pair[1])))
	}

	for _, c := range clauses {
		literalVars := make([]int, 0, len(c.Literals))
		for varID := range c.Literals {
			literalVars = append(literalVars, varID)
		}
		sort.Ints(literalVars)

		var letters [3]byte
		for i, varID := range literalVars {
			pair := varToLetters[varID]
			if c.Literals[varID] {
				letters[i] = byte(pair[0])
			} else {
				letters[i] = byte(pair[1])
			}
		}
		patterns = append(patterns, fmt.Sprintf("#%c%c%c#", letters[0], letters[1], letters[2]))
	}

	domains := make(map[swe.Variable][]string, 2*len(sortedVars))
	for _, v := range sortedVars {
		pair := varToLetters[v]
		domains[pair[0]] = []string{"0", "1"}
		domains[pair[1]] = []string{"0", "1"}
	}

	return Instance{S: targetString, Patterns: patterns, Domains: domains},
		Mapping{sortedVars: sortedVars, varToLetters: varToLetters},
		nil
}

// Unreduce decodes an SWE solution back into Boolean values per variable
// id, using the letter pair assigned by the Reduce call that produced m.
// Per the #<pos><neg># pattern, exactly one letter of each pair is "1" in
// any valid solution; if the positive letter holds "1" the variable is
// true, otherwise it is false.
func (m Mapping) Unreduce(assignment swe.Assignment) (map[int]bool, error) {
	if m.varToLetters == nil {
		return nil, ErrNoMapping
	}
	out := make(map[int]bool, len(m.sortedVars))
	for _, v := range m.sortedVars {
		pair := m.varToLetters[v]
		out[v] = assignment[pair[0]] == "1"
	}
	return out, nil
}
