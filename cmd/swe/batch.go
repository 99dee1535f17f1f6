package main

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"sweconstraint/internal/format"
	"sweconstraint/internal/parallel"
	"sweconstraint/pkg/swe"
)

func newBatchCmd() *cobra.Command {
	var workers int

	cmd := &cobra.Command{
		Use:   "batch <dir>",
		Short: "Solve every native instance file (*.yaml) in a directory concurrently",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			instances, err := loadDirectory(args[0])
			if err != nil {
				return err
			}

			pool := parallel.NewWorkerPool(workers)
			defer pool.Shutdown()
			stats := pool.GetStats()

			results, err := parallel.SolveBatch(context.Background(), pool, instances)
			if err != nil {
				return err
			}

			sort.Slice(results, func(i, j int) bool { return results[i].Name < results[j].Name })
			for _, r := range results {
				printBatchResult(r)
			}

			pool.Shutdown() // finalize stats before reporting; safe to call twice
			log.Debug(stats.String())
			return nil
		},
	}
	cmd.Flags().IntVar(&workers, "workers", 0, "maximum worker pool size; the pool starts with one worker and scales up under queue pressure (0 selects the number of CPU cores)")
	return cmd
}

func loadDirectory(dir string) ([]parallel.Instance, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	var instances []parallel.Instance
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".yaml") {
			continue
		}
		path := filepath.Join(dir, entry.Name())
		s, patterns, domains, err := format.ReadNative(path)
		if err != nil {
			return nil, err
		}
		instances = append(instances, parallel.Instance{
			Name:     entry.Name(),
			S:        s,
			Patterns: patterns,
			Domains:  domains,
		})
	}
	if len(instances) == 0 {
		return nil, errors.New("batch: no .yaml instance files found in " + dir)
	}
	return instances, nil
}

func printBatchResult(r parallel.Result) {
	if r.Err != nil {
		log.WithField("instance", r.Name).Warn("no solution: " + r.Err.Error())
		return
	}
	log.WithFields(map[string]interface{}{
		"instance":        r.Name,
		"states_explored": r.Stats.StatesExplored,
	}).Info("solved")
	printAssignment(r.Assignment)
}

func printAssignment(assignment swe.Assignment) {
	var vars []string
	for x := range assignment {
		vars = append(vars, string(byte(x)))
	}
	sort.Strings(vars)
	for _, v := range vars {
		log.Debugf("  %s = %s", v, assignment[swe.Variable(v[0])])
	}
}
