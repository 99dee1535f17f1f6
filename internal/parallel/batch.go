package parallel

import (
	"context"
	"sync"

	"sweconstraint/pkg/swe"
)

// Instance is one named SWE problem to solve as part of a batch.
type Instance struct {
	Name     string
	S        string
	Patterns []string
	Domains  map[swe.Variable][]string
	Config   *swe.SolverConfig // nil selects swe.DefaultSolverConfig
}

// Result is the outcome of solving one batch Instance.
type Result struct {
	Name       string
	Assignment swe.Assignment
	Err        error
	Stats      swe.Stats
}

// SolveBatch drives every instance's own Solver concurrently over a
// WorkerPool, one submitted task per instance. Each Solver owns its state
// exclusively: this only parallelizes across independent instances, never
// the search inside a single Solve call.
// SolveBatch blocks until every instance has been solved or ctx is done,
// and returns results in the same order as instances.
func SolveBatch(ctx context.Context, pool *WorkerPool, instances []Instance) ([]Result, error) {
	results := make([]Result, len(instances))
	var wg sync.WaitGroup
	var submitErr error

	for i, inst := range instances {
		i, inst := i, inst
		wg.Add(1)
		task := func() {
			defer wg.Done()
			results[i] = solveOne(ctx, inst)
		}
		if err := pool.Submit(ctx, task); err != nil {
			wg.Done()
			submitErr = err
			break
		}
	}

	wg.Wait()
	if submitErr != nil {
		return nil, submitErr
	}
	return results, nil
}

func solveOne(ctx context.Context, inst Instance) Result {
	solver, err := swe.NewSolverWithConfig(inst.S, inst.Patterns, inst.Domains, inst.Config)
	if err != nil {
		return Result{Name: inst.Name, Err: err}
	}
	assignment, err := solver.Solve(ctx)
	return Result{
		Name:       inst.Name,
		Assignment: assignment,
		Err:        err,
		Stats:      solver.Stats(),
	}
}
