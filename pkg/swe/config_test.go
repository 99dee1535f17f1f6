package swe

import "testing"

func TestDefaultSolverConfigIsValid(t *testing.T) {
	c := DefaultSolverConfig()
	if err := c.Validate(); err != nil {
		t.Fatalf("Validate: %v", err)
	}
}

func TestSolverConfigValidateRejectsNilStrategies(t *testing.T) {
	c := &SolverConfig{ValueOrdering: LeastConstrainingValueOrdering{}}
	if err := c.Validate(); err == nil {
		t.Fatal("Validate should reject a nil VariableOrdering")
	}

	c = &SolverConfig{VariableOrdering: MRVOrdering{}}
	if err := c.Validate(); err == nil {
		t.Fatal("Validate should reject a nil ValueOrdering")
	}
}

func TestSolverConfigValidateRejectsNegativeMemoLimit(t *testing.T) {
	c := DefaultSolverConfig()
	c.MemoLimit = -1
	if err := c.Validate(); err == nil {
		t.Fatal("Validate should reject a negative MemoLimit")
	}
}

func TestSolverConfigCloneIsIndependent(t *testing.T) {
	c := DefaultSolverConfig()
	clone := c.Clone()
	clone.MemoLimit = 100
	if c.MemoLimit == 100 {
		t.Fatal("Clone should not alias the original config")
	}
}

func TestNilSolverConfigCloneReturnsDefault(t *testing.T) {
	var c *SolverConfig
	clone := c.Clone()
	if clone == nil {
		t.Fatal("Clone on nil receiver should return a usable default")
	}
	if err := clone.Validate(); err != nil {
		t.Fatalf("Validate: %v", err)
	}
}
