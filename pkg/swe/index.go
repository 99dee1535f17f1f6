package swe

// OccurrenceIndex precomputes, for every distinct candidate string that
// could fill a variable slot, the list of positions in s at which it
// occurs. Matches are overlapping: the scan advances by one position after
// every hit, not by len(candidate). The index is advisory — it exists to
// cheapen repeated oracle probes during value ordering — and correctness
// of the solver must never depend on its presence.
type OccurrenceIndex struct {
	s    string
	occ  map[string][]int
	miss []int // never set or read; a candidate with no occurrences maps to a nil list
}

// NewOccurrenceIndex builds the index across the union of every variable's
// domain. Distinct candidate strings never share a position list.
func NewOccurrenceIndex(s string, candidates ...string) *OccurrenceIndex {
	idx := &OccurrenceIndex{s: s, occ: make(map[string][]int)}
	seen := make(map[string]bool, len(candidates))
	for _, r := range candidates {
		if seen[r] {
			continue
		}
		seen[r] = true
		idx.occ[r] = findOverlapping(s, r)
	}
	return idx
}

// Positions returns the increasing list of start positions of r in s. The
// returned slice must not be mutated by the caller.
func (idx *OccurrenceIndex) Positions(r string) []int {
	if p, ok := idx.occ[r]; ok {
		return p
	}
	return findOverlapping(idx.s, r)
}

// findOverlapping returns every start position of sub in s, including
// overlapping occurrences, in strictly increasing order.
func findOverlapping(s, sub string) []int {
	if len(sub) == 0 || len(sub) > len(s) {
		return nil
	}
	var positions []int
	for start := 0; start+len(sub) <= len(s); start++ {
		if s[start:start+len(sub)] == sub {
			positions = append(positions, start)
		}
	}
	return positions
}
