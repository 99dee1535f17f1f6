package reduction

import "errors"

// ErrClauseSize is returned by Reduce when a clause does not have exactly
// three literals; the reduction is defined only for 1-in-3-SAT clauses.
var ErrClauseSize = errors.New("reduction: clause must have exactly three literals")

// ErrNoMapping is returned by Unreduce when called before a successful
// Reduce on the same Mapping.
var ErrNoMapping = errors.New("reduction: no variable mapping recorded")
