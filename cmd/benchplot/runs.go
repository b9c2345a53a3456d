package main

import (
	"fmt"

	"github.com/sartorproj/benchplot/runset"
)

// runEntries returns the runs to compare: log files given on the command
// line, or the runs from the config file.
func runEntries(args []string) ([]runset.Entry, error) {
	if len(args) > 0 {
		entries := make([]runset.Entry, len(args))
		for i, path := range args {
			entries[i] = runset.Entry{Path: path}
		}
		return entries, nil
	}
	if len(cfg.Runs) == 0 {
		return nil, fmt.Errorf("no runs: pass log files or list runs in the config file")
	}
	return cfg.Runs, nil
}

func newLoader(skipFailed bool) *runset.Loader {
	policy := cfg.Policy()
	if skipFailed {
		policy = runset.SkipFailed
	}
	return runset.NewLoader(
		runset.WithLogger(logger),
		runset.WithWorkers(cfg.Workers),
		runset.WithPolicy(policy),
		runset.WithSeriesOptions(cfg.SeriesOptions()),
	)
}
