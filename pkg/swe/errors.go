package swe

import "errors"

// ErrInvalidInput is returned by NewSolver when the instance violates one of
// the construction invariants: a pattern references a variable missing from
// R, a domain is empty, a variable symbol falls outside A-Z, or a candidate
// string is empty. Use errors.Is against this sentinel; the concrete error
// returned by NewSolver wraps it with the offending detail via fmt.Errorf.
var ErrInvalidInput = errors.New("swe: invalid input")

// ErrNoSolution is returned by Solve when no total assignment over the
// given domains satisfies every pattern. It is a normal return value, not
// an exceptional condition: the search completes deterministically and
// reports statistics regardless of which of the two it returns.
var ErrNoSolution = errors.New("swe: no solution")
