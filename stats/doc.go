// Package stats provides statistical summaries and tests for benchmark series.
//
// # Descriptive Statistics
//
//	sum, err := stats.Describe(series)
//	fmt.Printf("%s: mean=%.1f sd=%.1f p95=%.0f\n",
//	    sum.Label, sum.Mean, sum.StdDev, sum.P95)
//
// Describe also reports the lag-1 autocorrelation. Independent trials give
// a value near zero; Correlated is set when it exceeds the 95% bound, which
// usually means the run has not settled.
//
// # Warm-up Detection
//
// JIT-compiled and cached workloads start slow. DetectWarmup finds the
// number of leading trials to drop using the Marginal Standard Error Rule
// and checks the remainder with a KPSS level-stationarity test:
//
//	w := stats.DetectWarmup(series, nil)
//	if w.Found {
//	    fmt.Printf("steady state from trial %d (range %s)\n", w.Cutoff, w.Steady)
//	}
//
// # Autocorrelation
//
//	acf := stats.ACFWithConfidence(series.Floats(), 20)
//	significant := stats.SignificantLags(acf.Values, acf.ConfBounds)
//
// # Stationarity
//
//	// H0: the values are stationary around a constant level
//	kpss := stats.KPSS(series.Floats(), 0)
//	fmt.Printf("KPSS: stat=%.4f, p=%.4f, stationary=%v\n",
//	    kpss.Statistic, kpss.PValue, kpss.IsStationary)
package stats
