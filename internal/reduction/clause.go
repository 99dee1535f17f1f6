package reduction

// Clause is a single exactly-one-true constraint over three Boolean
// variables, identified by integer id with a positive/negated polarity
// per literal.
type Clause struct {
	Literals map[int]bool // variable id -> true if the literal is unnegated
}

// NewClause builds a Clause from (variable id, polarity) pairs.
func NewClause(literals map[int]bool) Clause {
	return Clause{Literals: literals}
}

// Satisfied reports whether exactly one literal of the clause holds under
// assignment. Variables absent from assignment are treated as false.
func (c Clause) Satisfied(assignment map[int]bool) bool {
	trues := 0
	for varID, positive := range c.Literals {
		value := assignment[varID]
		held := value
		if !positive {
			held = !value
		}
		if held {
			trues++
		}
	}
	return trues == 1
}
