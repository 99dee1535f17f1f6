package format

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"sweconstraint/internal/reduction"
)

// ReadOIT parses a 1-in-3-SAT clause file: a single line of '#'-separated
// clauses, each clause a comma-separated list of signed integer literals
// (negative means negated), e.g. "1,2,3#-1,2,-3". Whitespace around tokens
// is trimmed; literal parse failures fail with ErrMalformed.
func ReadOIT(path string) ([]reduction.Clause, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("format: reading %s: %w", path, err)
	}

	line := strings.TrimSpace(string(raw))
	if idx := strings.IndexAny(line, "\r\n"); idx >= 0 {
		line = line[:idx]
	}
	if line == "" {
		return nil, fmt.Errorf("%w: %s: empty OIT file", ErrMalformed, path)
	}

	var clauses []reduction.Clause
	for _, rawClause := range strings.Split(line, "#") {
		literals := make(map[int]bool)
		for _, rawLiteral := range strings.Split(rawClause, ",") {
			rawLiteral = strings.TrimSpace(rawLiteral)
			n, err := strconv.Atoi(rawLiteral)
			if err != nil {
				return nil, fmt.Errorf("%w: %s: literal %q is not an integer", ErrMalformed, path, rawLiteral)
			}
			varID := n
			positive := n > 0
			if n < 0 {
				varID = -n
			}
			literals[varID] = positive
		}
		clauses = append(clauses, reduction.NewClause(literals))
	}
	return clauses, nil
}
