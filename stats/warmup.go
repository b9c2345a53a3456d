package stats

import (
	"math"

	"github.com/sartorproj/benchplot/timeseries"
)

// WarmupOptions configures warm-up detection.
type WarmupOptions struct {
	// MinWindow is the smallest number of trailing samples kept as steady
	// state. The cutoff never exceeds half the series either.
	MinWindow int
	// KPSSLags is passed to KPSS for the steady-state check (0: automatic).
	KPSSLags int
}

// DefaultWarmupOptions returns default options for warm-up detection.
func DefaultWarmupOptions() *WarmupOptions {
	return &WarmupOptions{
		MinWindow: 30,
	}
}

// Warmup is the result of warm-up detection.
type Warmup struct {
	// Found is false when the series keeps drifting up to the search limit.
	Found bool
	// Cutoff is the number of leading samples to discard.
	Cutoff int
	// Steady is the suggested steady-state range, in indices of the full
	// sequence the series was loaded from.
	Steady timeseries.Range
	// KPSS is the level-stationarity test over the steady window; nil when
	// the window is too short to test.
	KPSS *KPSSResult
}

// DetectWarmup locates the end of the warm-up phase with the Marginal
// Standard Error Rule: the cutoff d minimizes
//
//	sum((x[i] - mean(x[d:]))^2 for i >= d) / (n-d)^2
//
// over d in [0, min(n/2, n-MinWindow)]. Returns nil for series shorter
// than MinWindow.
func DetectWarmup(s *timeseries.Series, opts *WarmupOptions) *Warmup {
	if opts == nil {
		opts = DefaultWarmupOptions()
	}
	minWindow := opts.MinWindow
	if minWindow < 2 {
		minWindow = 2
	}

	values := s.Floats()
	n := len(values)
	if n < minWindow {
		return nil
	}

	limit := n / 2
	if n-minWindow < limit {
		limit = n - minWindow
	}

	// Suffix sums give each candidate's mean and sum of squares in O(1).
	sum := make([]float64, n+1)
	sumSq := make([]float64, n+1)
	for i := n - 1; i >= 0; i-- {
		sum[i] = sum[i+1] + values[i]
		sumSq[i] = sumSq[i+1] + values[i]*values[i]
	}

	best, bestStat := 0, math.Inf(1)
	for d := 0; d <= limit; d++ {
		m := float64(n - d)
		ss := sumSq[d] - sum[d]*sum[d]/m
		if ss < 0 {
			ss = 0
		}
		if st := ss / (m * m); st < bestStat {
			best, bestStat = d, st
		}
	}

	return &Warmup{
		Found:  best < limit,
		Cutoff: best,
		Steady: timeseries.Range{Start: s.Start + best, End: s.Start + n - 1},
		KPSS:   KPSS(values[best:], opts.KPSSLags),
	}
}
