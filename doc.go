// Package benchplot compares benchmark runs recorded as timing logs.
//
// A timing log is a comma-separated file with a "duration" column holding
// one integer execution time per trial. Lines starting with '#' and blank
// lines are ignored wherever they appear. benchplot reads a set of such
// logs, reduces each one to its mean, and draws execution time against
// trial number with the mean in the legend, so runs of different builds
// or engines can be compared at a glance.
//
// # Quick Start
//
// Load a run and restrict it to its steady state:
//
//	rng := timeseries.Range{Start: 90, End: 160}
//	series, err := timeseries.LoadSeries("rhino.txt", &timeseries.Options{
//		Column: "duration",
//		Range:  &rng,
//	})
//	fmt.Println(series.Label, series.Mean)
//
// Load several runs concurrently and render them:
//
//	loader := runset.NewLoader(runset.WithPolicy(runset.SkipFailed))
//	results, err := loader.Load(ctx, entries, nil)
//	err = chart.Save("all.png", chart.LinesFrom(results), chart.DefaultOptions())
//
// Find where the warm-up ends:
//
//	warmup := stats.DetectWarmup(series, nil)
//	if warmup != nil && warmup.Found {
//		fmt.Println("steady from", warmup.Steady)
//	}
//
// # Packages
//
//   - timeseries: log parsing, series and sample ranges
//   - stats: descriptive statistics, autocorrelation and warm-up detection
//   - runset: concurrent loading of an ordered set of runs
//   - chart: PNG/SVG/PDF charts via gonum/plot and HTML via go-echarts
//   - cmd/benchplot: the command-line tool
//
// # References
//
//   - White, K. P. (1997). An effective truncation heuristic for bias
//     reduction in simulation output. Simulation, 69(6).
//   - Kwiatkowski, D. et al. (1992). Testing the null hypothesis of
//     stationarity against the alternative of a unit root.
package benchplot
