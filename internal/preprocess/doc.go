// Package preprocess advisorially shrinks an SWE instance before it reaches
// the core solver: duplicate and strictly-subsumed patterns are dropped,
// unreferenced variables are dropped, and each domain is narrowed to
// candidates that actually occur in the target string. Every reduction
// preserves solvability in both directions: the instance is solvable
// before preprocessing iff it is solvable after.
package preprocess
