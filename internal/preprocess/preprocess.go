package preprocess

import (
	"strings"

	"sweconstraint/pkg/swe"
)

// Stats reports the effect of Preprocess, mirroring the before/after
// counters the system this package was translated from prints in verbose
// mode.
type Stats struct {
	PatternsBefore int
	PatternsAfter  int
	DomainsBefore  int
	DomainsAfter   int
	// AverageDomainSizeBefore/After are the mean per-variable candidate
	// count, for reporting only.
	AverageDomainSizeBefore float64
	AverageDomainSizeAfter  float64
}

// Preprocess shrinks (s, patterns, domains) without changing solvability:
// it drops duplicate patterns, drops patterns that are a proper substring
// of another retained pattern (only when doing so does not strand a
// variable with no remaining occurrence), drops variables unreferenced by
// any retained pattern, and narrows each remaining domain to candidates
// that actually occur in s.
func Preprocess(s string, patterns []string, domains map[swe.Variable][]string) ([]string, map[swe.Variable][]string, Stats) {
	stats := Stats{
		PatternsBefore: len(patterns),
		DomainsBefore:  len(domains),
	}
	stats.AverageDomainSizeBefore = averageSize(domains)

	kept := dropDuplicatesAndSubsumed(patterns)

	coveredVars := make(map[swe.Variable]bool)
	for _, raw := range kept {
		for _, x := range swe.NewPattern(0, raw).Variables() {
			coveredVars[x] = true
		}
	}

	outDomains := make(map[swe.Variable][]string)
	for x, choices := range domains {
		if !coveredVars[x] {
			continue
		}
		var narrowed []string
		for _, c := range choices {
			if strings.Contains(s, c) {
				narrowed = append(narrowed, c)
			}
		}
		outDomains[x] = narrowed
	}

	stats.PatternsAfter = len(kept)
	stats.DomainsAfter = len(outDomains)
	stats.AverageDomainSizeAfter = averageSize(outDomains)

	return kept, outDomains, stats
}

// dropDuplicatesAndSubsumed removes exact-duplicate pattern strings, then
// drops any pattern that is a proper substring of a distinct retained
// pattern, provided every variable it mentions still occurs in some other
// retained pattern.
func dropDuplicatesAndSubsumed(patterns []string) []string {
	var deduped []string
	seen := make(map[string]bool)
	for _, p := range patterns {
		if seen[p] {
			continue
		}
		seen[p] = true
		deduped = append(deduped, p)
	}

	marked := make([]bool, len(deduped))
	for i, ti := range deduped {
		for j, tj := range deduped {
			if i == j {
				continue
			}
			if ti != tj && strings.Contains(tj, ti) {
				marked[i] = true
				break
			}
		}
	}

	retainedVars := func() map[swe.Variable]bool {
		vars := make(map[swe.Variable]bool)
		for i, p := range deduped {
			if marked[i] {
				continue
			}
			for _, x := range swe.NewPattern(0, p).Variables() {
				vars[x] = true
			}
		}
		return vars
	}

	for i, p := range deduped {
		if !marked[i] {
			continue
		}
		vars := swe.NewPattern(0, p).Variables()
		if len(vars) == 0 {
			continue
		}
		covered := retainedVars()
		for _, x := range vars {
			if !covered[x] {
				marked[i] = false // unmark: dropping p would strand variable x
				break
			}
		}
	}

	var out []string
	for i, p := range deduped {
		if !marked[i] {
			out = append(out, p)
		}
	}
	return out
}

func averageSize(domains map[swe.Variable][]string) float64 {
	if len(domains) == 0 {
		return 0
	}
	total := 0
	for _, choices := range domains {
		total += len(choices)
	}
	return float64(total) / float64(len(domains))
}
