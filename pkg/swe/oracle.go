package swe

import "sort"

// Has reports whether r occurs in s starting exactly at position.
func (idx *OccurrenceIndex) Has(r string, position int) bool {
	positions := idx.Positions(r)
	i := sort.SearchInts(positions, position)
	return i < len(positions) && positions[i] == position
}

// memoKey identifies one feasibility-oracle query. snapshot is the
// canonicalized (sorted by variable) encoding of the partial assignment at
// the time of the query, so that sibling branches with different prefixes
// never collide.
type memoKey struct {
	patternID  int
	tokenIndex int
	position   int
	snapshot   string
}

// oracle answers feasibility queries: can pattern patternID, read from
// tokenIndex onward and extended by the given partial assignment, match s
// starting at position? Results are memoized for the lifetime of one
// solve call. Apart from the oldest-first eviction applied when memoLimit
// is positive, memoized entries are never invalidated within that call,
// because the oracle is a pure function of its key.
type oracle struct {
	s        string
	patterns []Pattern
	domains  map[Variable][]string
	index    *OccurrenceIndex

	memo      map[memoKey]bool
	memoOrder []memoKey // insertion order, used for capped eviction
	memoLimit int
}

func newOracle(s string, patterns []Pattern, domains map[Variable][]string, index *OccurrenceIndex, memoLimit int) *oracle {
	return &oracle{
		s:         s,
		patterns:  patterns,
		domains:   domains,
		index:     index,
		memo:      make(map[memoKey]bool),
		memoLimit: memoLimit,
	}
}

// reset clears the memo, as required at the start of every solve call.
func (o *oracle) reset() {
	o.memo = make(map[memoKey]bool)
	o.memoOrder = o.memoOrder[:0]
}

// snapshot canonicalizes assignment into a sorted, structurally comparable
// string: variables are iterated in ascending A-Z order, independent of
// map iteration order. Each entry is the variable symbol, the value's
// length as four bytes, then the value itself, so distinct assignments
// never share an encoding whatever bytes their values contain.
func snapshot(assignment Assignment) string {
	if len(assignment) == 0 {
		return ""
	}
	var b []byte
	for c := byte('A'); c <= 'Z'; c++ {
		if v, ok := assignment[Variable(c)]; ok {
			n := len(v)
			b = append(b, c, byte(n>>24), byte(n>>16), byte(n>>8), byte(n))
			b = append(b, v...)
		}
	}
	return string(b)
}

// FitsAt reports whether the pattern identified by patternID can still
// match s starting at position, reading tokens from tokenIndex onward
// under the given partial assignment.
func (o *oracle) FitsAt(patternID, tokenIndex, position int, assignment Assignment) bool {
	key := memoKey{patternID: patternID, tokenIndex: tokenIndex, position: position, snapshot: snapshot(assignment)}
	if v, ok := o.memo[key]; ok {
		return v
	}
	result := o.computeFitsAt(patternID, tokenIndex, position, assignment)
	o.store(key, result)
	return result
}

func (o *oracle) store(key memoKey, result bool) {
	if _, exists := o.memo[key]; exists {
		o.memo[key] = result
		return
	}
	if o.memoLimit > 0 && len(o.memo) >= o.memoLimit {
		oldest := o.memoOrder[0]
		o.memoOrder = o.memoOrder[1:]
		delete(o.memo, oldest)
	}
	o.memo[key] = result
	o.memoOrder = append(o.memoOrder, key)
}

func (o *oracle) computeFitsAt(patternID, tokenIndex, position int, assignment Assignment) bool {
	pat := o.patterns[patternID]

	if tokenIndex == len(pat.Tokens) {
		return true
	}
	if position > len(o.s) {
		return false
	}

	tok := pat.Tokens[tokenIndex]

	if tok.Kind == TokenLiteral {
		if position >= len(o.s) || o.s[position] != tok.Literal {
			return false
		}
		return o.FitsAt(patternID, tokenIndex+1, position+1, assignment)
	}

	if value, ok := assignment[tok.Var]; ok {
		end := position + len(value)
		if end > len(o.s) || !o.index.Has(value, position) {
			return false
		}
		return o.FitsAt(patternID, tokenIndex+1, end, assignment)
	}

	for _, r := range o.domains[tok.Var] {
		end := position + len(r)
		if end > len(o.s) || !o.index.Has(r, position) {
			continue
		}
		if o.FitsAt(patternID, tokenIndex+1, end, assignment) {
			return true
		}
	}
	return false
}
