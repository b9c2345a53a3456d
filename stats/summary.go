package stats

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/sartorproj/benchplot/timeseries"
)

// Summary holds descriptive statistics of one series, in sample units.
type Summary struct {
	Label      string  `json:"label"`
	Count      int     `json:"count"`
	Mean       float64 `json:"mean"`
	StdDev     float64 `json:"std_dev"`
	Min        float64 `json:"min"`
	Max        float64 `json:"max"`
	Median     float64 `json:"median"`
	P90        float64 `json:"p90"`
	P95        float64 `json:"p95"`
	P99        float64 `json:"p99"`
	CV         float64 `json:"cv"`   // coefficient of variation, StdDev/Mean
	Lag1       float64 `json:"lag1"` // lag-1 autocorrelation
	Correlated bool    `json:"correlated"`

	// LjungBox tests independence over several lags; nil below 10 samples.
	LjungBox *LjungBoxResult `json:"ljung_box,omitempty"`
}

// Describe computes the descriptive statistics of s. Trials are assumed to
// be independent; Correlated is set when the lag-1 autocorrelation falls
// outside the 95% bound, which usually means drift or warm-up.
func Describe(s *timeseries.Series) (*Summary, error) {
	if s == nil || s.Len() == 0 {
		return nil, timeseries.ErrEmptySeries
	}

	values := s.Floats()
	n := len(values)

	sum := &Summary{
		Label: s.Label,
		Count: n,
		Mean:  s.Mean,
		Min:   floats.Min(values),
		Max:   floats.Max(values),
	}

	if n > 1 {
		sum.StdDev = stat.StdDev(values, nil)
	}
	if sum.Mean != 0 {
		sum.CV = sum.StdDev / sum.Mean
	}

	sorted := make([]float64, n)
	copy(sorted, values)
	sort.Float64s(sorted)

	sum.Median = median(sorted)
	sum.P90 = stat.Quantile(0.90, stat.Empirical, sorted, nil)
	sum.P95 = stat.Quantile(0.95, stat.Empirical, sorted, nil)
	sum.P99 = stat.Quantile(0.99, stat.Empirical, sorted, nil)

	if acf := ACFWithConfidence(values, 1); acf != nil && len(acf.Values) > 1 {
		sum.Lag1 = acf.Values[1]
		sum.Correlated = math.Abs(sum.Lag1) > acf.ConfBounds
	}
	sum.LjungBox = LjungBox(values, 0)

	return sum, nil
}

// median expects sorted input.
func median(sorted []float64) float64 {
	n := len(sorted)
	if n%2 == 0 {
		return (sorted[n/2-1] + sorted[n/2]) / 2
	}
	return sorted[n/2]
}
