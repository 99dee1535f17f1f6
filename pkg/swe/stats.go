package swe

import "time"

// Stats holds the search counters exposed by Solver.Stats after a call to
// Solve.
type Stats struct {
	StatesExplored            int
	StatesConsidered          int
	StatesPruned              int
	Backtracks                int
	SolutionsFound            int
	MaxDepthReached           int
	InitialInfeasiblePatterns int
	ElapsedWallTime           time.Duration
}

// reset zeroes every counter at the start of a solve call.
func (s *Stats) reset() {
	*s = Stats{}
}

// TheoreticalTotals computes, from ascending domain sizes d_1 <= ... <= d_n,
// the total number of leaf assignments (the product of all domain sizes)
// and the total number of nodes in the full (unpruned) search tree: one
// root plus, for every prefix length j, the product of the first j domain
// sizes (e.g. domain sizes [2,3,4] give leaves 24, total_nodes 33).
func TheoreticalTotals(domainSizes []int) (leaves, totalNodes int) {
	leaves = 1
	for _, d := range domainSizes {
		leaves *= d
	}
	totalNodes = 1
	prefix := 1
	for _, d := range domainSizes {
		prefix *= d
		totalNodes += prefix
	}
	return leaves, totalNodes
}
