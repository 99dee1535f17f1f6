package swe

import "context"

// search implements the recursive backtracking procedure: MRV variable
// choice, least-constraining-value ordering, and forward checking.
// assignment and candidateStarts are the node's owned state:
// candidateStarts[i] is guaranteed non-empty and every position in it
// satisfies fits_at(i, 0, p, assignment) for every pattern i (the
// recursion invariant). It returns the completed assignment and true on
// success, or false if this subtree holds no solution.
func (solver *Solver) search(ctx context.Context, assignment Assignment, candidateStarts [][]int, depth int) (Assignment, bool) {
	select {
	case <-ctx.Done():
		return nil, false
	default:
	}

	solver.stats.StatesExplored++
	if depth > solver.stats.MaxDepthReached {
		solver.stats.MaxDepthReached = depth
	}

	if len(assignment) == len(solver.vars) {
		solver.stats.SolutionsFound++
		return assignment, true
	}

	x, ok := solver.config.VariableOrdering.SelectVariable(solver.vars, solver.domains, assignment)
	if !ok {
		solver.stats.Backtracks++
		return nil, false
	}

	domain := solver.domains[x]
	score := func(value string) int {
		return solver.placementScore(x, value, assignment, candidateStarts)
	}
	ordered := solver.config.ValueOrdering.OrderValues(domain, score)

	for _, value := range ordered {
		solver.stats.StatesConsidered++

		trial := assignment.With(x, value)
		next, pruned := solver.forwardCheck(trial, candidateStarts)
		if pruned {
			solver.stats.StatesPruned++
			continue
		}

		if result, found := solver.search(ctx, trial, next, depth+1); found {
			return result, true
		}
	}

	solver.stats.Backtracks++
	return nil, false
}

// forwardCheck recomputes every pattern's candidate-start set under trial,
// intersecting with the current candidateStarts. It reports pruned=true
// the instant any pattern's set becomes empty.
func (solver *Solver) forwardCheck(trial Assignment, candidateStarts [][]int) (next [][]int, pruned bool) {
	next = make([][]int, len(candidateStarts))
	for i, positions := range candidateStarts {
		pat := solver.patterns[i]
		var kept []int
		for _, p := range positions {
			if solver.oracle.FitsAt(pat.ID, 0, p, trial) {
				kept = append(kept, p)
			}
		}
		if len(kept) == 0 {
			return nil, true
		}
		next[i] = kept
	}
	return next, false
}

// placementScore computes the number of still-feasible candidate starts,
// summed across every pattern, once x is tentatively bound to value.
func (solver *Solver) placementScore(x Variable, value string, assignment Assignment, candidateStarts [][]int) int {
	trial := assignment.With(x, value)
	score := 0
	for i, positions := range candidateStarts {
		if len(positions) == 0 {
			return int(^uint(0) >> 1) // +infinity sentinel; unreachable under the recursion invariant
		}
		pat := solver.patterns[i]
		for _, p := range positions {
			if solver.oracle.FitsAt(pat.ID, 0, p, trial) {
				score++
			}
		}
	}
	return score
}
