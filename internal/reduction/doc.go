// Package reduction implements the 1-in-3-SAT-to-SWE reduction: encoding a
// collection of exactly-one-true 3-literal clauses as an SWE instance whose
// solution, decoded back through the same mapping, is a satisfying Boolean
// assignment.
//
// Each Boolean variable u_i gets a pair of consecutive letters (A,B), (C,D),
// ... — the first bound to "1" when u_i is true, the second bound to "1"
// when u_i is false. A fixed pattern #<pos><neg># forces exactly one of the
// pair to hold, and one #<lit><lit><lit># pattern per clause forces exactly
// one literal of that clause to hold, against the fixed target string
// "#01#10#001#010#100#".
package reduction
