package stats

import (
	"gonum.org/v1/gonum/stat/distuv"
)

// LjungBoxResult represents the result of a Ljung-Box test.
type LjungBoxResult struct {
	Statistic   float64 `json:"statistic"`
	PValue      float64 `json:"p_value"`
	Lags        int     `json:"lags"`
	Independent bool    `json:"independent"`
}

// LjungBox tests whether values are free of autocorrelation up to lag h.
// The null hypothesis is independence; if p-value < 0.05 the trials are
// serially correlated, which usually means warm-up, throttling or drift.
// A lags of 0 selects min(10, n/5). Returns nil for fewer than 10 values
// or constant input.
func LjungBox(values []float64, lags int) *LjungBoxResult {
	n := len(values)
	if n < 10 {
		return nil
	}

	if lags <= 0 {
		lags = n / 5
		if lags > 10 {
			lags = 10
		}
	}
	if lags >= n {
		lags = n - 1
	}

	acf := ACF(values, lags)
	if acf == nil {
		return nil
	}

	// Q = n(n+2) * sum(r_k^2 / (n-k))
	q := 0.0
	for k := 1; k <= lags; k++ {
		q += (acf[k] * acf[k]) / float64(n-k)
	}
	q *= float64(n * (n + 2))

	chi := distuv.ChiSquared{K: float64(lags)}
	pValue := chi.Survival(q)

	return &LjungBoxResult{
		Statistic:   q,
		PValue:      pValue,
		Lags:        lags,
		Independent: pValue >= 0.05,
	}
}
