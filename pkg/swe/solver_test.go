package swe

import (
	"context"
	"errors"
	"strings"
	"testing"
)

func TestNewSolverRejectsEmptyDomain(t *testing.T) {
	_, err := NewSolver("abc", []string{"aXc"}, map[Variable][]string{'X': {}})
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("err = %v, want ErrInvalidInput", err)
	}
}

func TestNewSolverRejectsEmptyCandidateString(t *testing.T) {
	_, err := NewSolver("abc", []string{"aXc"}, map[Variable][]string{'X': {""}})
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("err = %v, want ErrInvalidInput", err)
	}
}

func TestNewSolverRejectsUndeclaredVariable(t *testing.T) {
	_, err := NewSolver("abc", []string{"aXc"}, map[Variable][]string{'Y': {"b"}})
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("err = %v, want ErrInvalidInput", err)
	}
}

func TestNewSolverRejectsInvalidVariableSymbol(t *testing.T) {
	_, err := NewSolver("abc", []string{"a"}, map[Variable][]string{'?': {"b"}})
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("err = %v, want ErrInvalidInput", err)
	}
}

// Scenario 1: trivial literal.
func TestSolveTrivialLiteral(t *testing.T) {
	solver, err := NewSolver("abc", []string{"a", "bc"}, nil)
	if err != nil {
		t.Fatalf("NewSolver: %v", err)
	}
	got, err := solver.Solve(context.Background())
	if err != nil {
		t.Fatalf("Solve: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("got = %v, want empty assignment", got)
	}
}

// Scenario 2: single variable.
func TestSolveSingleVariable(t *testing.T) {
	solver, err := NewSolver("helloworld", []string{"hX"}, map[Variable][]string{
		'X': {"ello", "eap"},
	})
	if err != nil {
		t.Fatalf("NewSolver: %v", err)
	}
	got, err := solver.Solve(context.Background())
	if err != nil {
		t.Fatalf("Solve: %v", err)
	}
	if got['X'] != "ello" {
		t.Fatalf("got[X] = %q, want %q", got['X'], "ello")
	}
}

// Scenario 3: unsatisfiable.
func TestSolveUnsatisfiable(t *testing.T) {
	solver, err := NewSolver("ab", []string{"XY"}, map[Variable][]string{
		'X': {"a"},
		'Y': {"c"},
	})
	if err != nil {
		t.Fatalf("NewSolver: %v", err)
	}
	_, err = solver.Solve(context.Background())
	if !errors.Is(err, ErrNoSolution) {
		t.Fatalf("err = %v, want ErrNoSolution", err)
	}
	if solver.Stats().StatesExplored < 1 {
		t.Errorf("StatesExplored = %d, want >= 1", solver.Stats().StatesExplored)
	}
}

// Scenario 4: 1-in-3-SAT reduction for one clause u1 v u2 v u3.
func TestSolveOneInThreeSATReduction(t *testing.T) {
	s := "#01#10#001#010#100#"
	patterns := []string{"#AB#", "#CD#", "#EF#", "#ACE#"}
	domain := []string{"0", "1"}
	r := map[Variable][]string{
		'A': domain, 'B': domain, 'C': domain, 'D': domain, 'E': domain, 'F': domain,
	}
	solver, err := NewSolver(s, patterns, r)
	if err != nil {
		t.Fatalf("NewSolver: %v", err)
	}
	got, err := solver.Solve(context.Background())
	if err != nil {
		t.Fatalf("Solve: %v", err)
	}

	pairs := [][2]Variable{{'A', 'B'}, {'C', 'D'}, {'E', 'F'}}
	for _, pair := range pairs {
		ones := 0
		for _, v := range pair {
			if got[v] == "1" {
				ones++
			}
		}
		if ones != 1 {
			t.Fatalf("pair %v has %d ones in %v, want exactly 1", pair, ones, got)
		}
	}

	onesACE := 0
	for _, v := range []Variable{'A', 'C', 'E'} {
		if got[v] == "1" {
			onesACE++
		}
	}
	if onesACE != 1 {
		t.Fatalf("A,C,E has %d ones in %v, want exactly 1", onesACE, got)
	}
}

// Scenario 5: shared structure across two patterns.
func TestSolveSharedStructure(t *testing.T) {
	solver, err := NewSolver("xabxaby", []string{"xX", "Xy"}, map[Variable][]string{
		'X': {"ab", "abx"},
	})
	if err != nil {
		t.Fatalf("NewSolver: %v", err)
	}
	got, err := solver.Solve(context.Background())
	if err != nil {
		t.Fatalf("Solve: %v", err)
	}
	if got['X'] != "ab" {
		t.Fatalf("got[X] = %q, want %q", got['X'], "ab")
	}
}

// Scenario 6: theoretical totals.
func TestTheoreticalTotalsWorkedExample(t *testing.T) {
	leaves, totalNodes := TheoreticalTotals([]int{2, 3, 4})
	if leaves != 24 {
		t.Errorf("leaves = %d, want 24", leaves)
	}
	if totalNodes != 33 {
		t.Errorf("totalNodes = %d, want 33", totalNodes)
	}
}

func TestSolveDeterministicAcrossRuns(t *testing.T) {
	build := func() *Solver {
		solver, err := NewSolver("xabxaby", []string{"xX", "Xy"}, map[Variable][]string{
			'X': {"ab", "abx"},
		})
		if err != nil {
			t.Fatalf("NewSolver: %v", err)
		}
		return solver
	}

	first := build()
	firstResult, err := first.Solve(context.Background())
	if err != nil {
		t.Fatalf("Solve: %v", err)
	}
	firstStats := first.Stats()

	second := build()
	secondResult, err := second.Solve(context.Background())
	if err != nil {
		t.Fatalf("Solve: %v", err)
	}
	secondStats := second.Stats()

	if firstResult['X'] != secondResult['X'] {
		t.Fatalf("results differ: %v vs %v", firstResult, secondResult)
	}
	if firstStats.StatesExplored != secondStats.StatesExplored ||
		firstStats.StatesConsidered != secondStats.StatesConsidered ||
		firstStats.StatesPruned != secondStats.StatesPruned ||
		firstStats.Backtracks != secondStats.Backtracks ||
		firstStats.SolutionsFound != secondStats.SolutionsFound ||
		firstStats.MaxDepthReached != secondStats.MaxDepthReached {
		t.Fatalf("stats differ: %+v vs %+v", firstStats, secondStats)
	}
}

func TestSolveUnreferencedVariableDoesNotAffectSolvability(t *testing.T) {
	solver, err := NewSolver("abc", []string{"a", "bc"}, map[Variable][]string{
		'Z': {"anything"},
	})
	if err != nil {
		t.Fatalf("NewSolver: %v", err)
	}
	if _, err := solver.Solve(context.Background()); err != nil {
		t.Fatalf("Solve: %v", err)
	}
}

func TestSolveRespectsCancelledContext(t *testing.T) {
	solver, err := NewSolver("helloworld", []string{"hX"}, map[Variable][]string{
		'X': {"ello", "eap"},
	})
	if err != nil {
		t.Fatalf("NewSolver: %v", err)
	}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = solver.Solve(ctx)
	if !errors.Is(err, ErrNoSolution) {
		t.Fatalf("err = %v, want ErrNoSolution on cancellation", err)
	}
}

func TestExpandSoundness(t *testing.T) {
	solver, err := NewSolver("helloworld", []string{"hX"}, map[Variable][]string{
		'X': {"ello", "eap"},
	})
	if err != nil {
		t.Fatalf("NewSolver: %v", err)
	}
	got, err := solver.Solve(context.Background())
	if err != nil {
		t.Fatalf("Solve: %v", err)
	}
	pat := NewPattern(0, "hX")
	expanded := Expand(pat, got)
	if !strings.Contains("helloworld", expanded) {
		t.Fatalf("expand(%q) = %q, not a substring of s", pat.Raw, expanded)
	}
}
