// Package swe implements the Substring-With-Expansions (SWE) constraint
// satisfaction problem: given a target string s, a collection of pattern
// strings built from literal characters and A-Z variable placeholders, and
// a finite domain of candidate replacement strings per variable, find an
// assignment of variables to strings such that every expanded pattern is a
// substring of s.
//
// The package is organized around the four collaborating components of the
// solver:
//   - a tokenizer that splits a pattern into literal and variable tokens
//     (tokenizer.go),
//   - an occurrence index that precomputes, for every candidate string,
//     the positions at which it occurs in s (index.go),
//   - a memoized feasibility oracle that decides whether a pattern can
//     match starting at a given position under a partial assignment
//     (oracle.go),
//   - a backtracking search that maintains per-pattern candidate start
//     sets, chooses variables by minimum-remaining-values, and orders
//     values by a least-constraining-value score (search.go).
//
// Construct a Solver with NewSolver and call Solve to obtain an Assignment,
// or ErrNoSolution if the instance is unsatisfiable. Call Stats after Solve
// to inspect search statistics.
package swe
