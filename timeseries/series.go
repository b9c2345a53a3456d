// Package timeseries provides core benchmark series data structures and operations.
package timeseries

import (
	"path/filepath"
	"strings"
)

// Series is one log file's ordered duration samples plus its display label
// and mean. A Series is never modified after it is built.
type Series struct {
	Path    string
	Label   string
	Samples []int
	Mean    float64
	Start   int // index of Samples[0] within the full sequence
	Total   int // length of the full sequence before slicing
}

// New builds a Series over samples read from path. The samples slice is
// copied. It fails with an *EmptySeriesError when samples is empty.
func New(path string, samples []int) (*Series, error) {
	mean, err := Mean(samples)
	if err != nil {
		return nil, &EmptySeriesError{Path: path}
	}
	values := make([]int, len(samples))
	copy(values, samples)

	return &Series{
		Path:    path,
		Label:   Label(path),
		Samples: values,
		Mean:    mean,
		Total:   len(values),
	}, nil
}

// Label derives a display label from a path: the base name with its final
// extension stripped.
func Label(path string) string {
	base := filepath.Base(path)
	if i := strings.LastIndexByte(base, '.'); i > 0 {
		return base[:i]
	}
	return base
}

// Mean calculates the arithmetic mean of samples.
func Mean(samples []int) (float64, error) {
	if len(samples) == 0 {
		return 0, ErrEmptySeries
	}
	var sum int64
	for _, v := range samples {
		sum += int64(v)
	}
	return float64(sum) / float64(len(samples)), nil
}

// Len returns the number of samples.
func (s *Series) Len() int {
	return len(s.Samples)
}

// Floats returns the samples as float64 values.
func (s *Series) Floats() []float64 {
	values := make([]float64, len(s.Samples))
	for i, v := range s.Samples {
		values[i] = float64(v)
	}
	return values
}

// Slice returns the inclusive sub-range r of the series, clamped to the
// available samples, with its mean recomputed. Indices are relative to this
// series.
func (s *Series) Slice(r Range) (*Series, error) {
	lo, hi := r.Clamp(len(s.Samples))
	if lo >= hi {
		return nil, &EmptySeriesError{Path: s.Path, Range: &r, Total: len(s.Samples)}
	}

	values := make([]int, hi-lo)
	copy(values, s.Samples[lo:hi])
	mean, _ := Mean(values)

	return &Series{
		Path:    s.Path,
		Label:   s.Label,
		Samples: values,
		Mean:    mean,
		Start:   s.Start + lo,
		Total:   s.Total,
	}, nil
}

// Min returns the smallest sample.
func (s *Series) Min() int {
	min := s.Samples[0]
	for _, v := range s.Samples[1:] {
		if v < min {
			min = v
		}
	}
	return min
}

// Max returns the largest sample.
func (s *Series) Max() int {
	max := s.Samples[0]
	for _, v := range s.Samples[1:] {
		if v > max {
			max = v
		}
	}
	return max
}

// MovingAverage calculates a simple moving average with window size.
// The result has Len()-window+1 values; nil when window is out of range.
func (s *Series) MovingAverage(window int) []float64 {
	if window <= 0 || window > len(s.Samples) {
		return nil
	}

	result := make([]float64, len(s.Samples)-window+1)
	sum := 0.0

	for i := 0; i < window; i++ {
		sum += float64(s.Samples[i])
	}
	result[0] = sum / float64(window)

	for i := window; i < len(s.Samples); i++ {
		sum = sum - float64(s.Samples[i-window]) + float64(s.Samples[i])
		result[i-window+1] = sum / float64(window)
	}

	return result
}
