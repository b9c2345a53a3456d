package stats

import "math"

// KPSSResult represents the result of a KPSS test.
type KPSSResult struct {
	Statistic    float64
	PValue       float64
	Lags         int
	CriticalVals map[string]float64
	IsStationary bool
}

// KPSS performs the Kwiatkowski-Phillips-Schmidt-Shin test for level
// stationarity. The null hypothesis is that the values are stationary
// around a constant; if p-value < 0.05 the null is rejected. A nlags of 0
// selects the lag truncation automatically. Returns nil for fewer than 10
// values.
func KPSS(values []float64, nlags int) *KPSSResult {
	n := len(values)
	if n < 10 {
		return nil
	}

	if nlags <= 0 {
		nlags = int(math.Ceil(12 * math.Pow(float64(n)/100, 0.25)))
	}
	if nlags >= n {
		nlags = n - 1
	}

	mean := 0.0
	for _, v := range values {
		mean += v
	}
	mean /= float64(n)

	residuals := make([]float64, n)
	for i, v := range values {
		residuals[i] = v - mean
	}

	// Partial sums
	cumSum := make([]float64, n)
	cumSum[0] = residuals[0]
	for i := 1; i < n; i++ {
		cumSum[i] = cumSum[i-1] + residuals[i]
	}

	// Long-run variance (Newey-West with Bartlett weights)
	s2 := 0.0
	for _, r := range residuals {
		s2 += r * r
	}
	s2 /= float64(n)

	for l := 1; l <= nlags; l++ {
		cov := 0.0
		for i := l; i < n; i++ {
			cov += residuals[i] * residuals[i-l]
		}
		cov /= float64(n)
		weight := 1.0 - float64(l)/float64(nlags+1)
		s2 += 2 * weight * cov
	}

	if s2 <= 0 {
		s2 = 1e-10
	}

	etaSq := 0.0
	for _, cs := range cumSum {
		etaSq += cs * cs
	}
	stat := etaSq / (float64(n) * float64(n) * s2)

	pValue := kpssPValue(stat)

	return &KPSSResult{
		Statistic: stat,
		PValue:    pValue,
		Lags:      nlags,
		CriticalVals: map[string]float64{
			"10%": 0.347,
			"5%":  0.463,
			"1%":  0.739,
		},
		IsStationary: pValue >= 0.05,
	}
}

// kpssTable holds level-stationarity critical values, by increasing statistic.
var kpssTable = []struct{ stat, p float64 }{
	{0.347, 0.10},
	{0.463, 0.05},
	{0.574, 0.025},
	{0.739, 0.01},
}

// kpssPValue approximates the p-value for the level KPSS statistic by
// interpolating between tabulated critical values. Results are clamped to
// [0.01, 0.10] beyond the table.
func kpssPValue(stat float64) float64 {
	if stat <= kpssTable[0].stat {
		return kpssTable[0].p
	}
	for i := 1; i < len(kpssTable); i++ {
		lo, hi := kpssTable[i-1], kpssTable[i]
		if stat <= hi.stat {
			frac := (stat - lo.stat) / (hi.stat - lo.stat)
			return lo.p + frac*(hi.p-lo.p)
		}
	}
	return kpssTable[len(kpssTable)-1].p
}
