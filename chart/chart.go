// Package chart renders benchmark series as comparative
// execution-time-vs-trial line charts.
package chart

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/sartorproj/benchplot/runset"
	"github.com/sartorproj/benchplot/timeseries"
)

// Line is one run drawn on a chart.
type Line struct {
	Label  string
	Color  string // color name, see ParseColor; empty picks a palette color
	Series *timeseries.Series
}

// LinesFrom builds chart lines from loaded runs, in order.
func LinesFrom(results []runset.Result) []Line {
	lines := make([]Line, len(results))
	for i, r := range results {
		lines[i] = Line{
			Label:  r.Series.Label,
			Color:  r.Entry.Color,
			Series: r.Series,
		}
	}
	return lines
}

// AxisRange fixes an axis to [Min, Max]. The zero value scales the axis to
// the data.
type AxisRange struct {
	Min float64 `yaml:"min" mapstructure:"min" json:"min"`
	Max float64 `yaml:"max" mapstructure:"max" json:"max"`
}

// Auto reports whether the axis scales to the data.
func (a AxisRange) Auto() bool {
	return a.Min >= a.Max
}

// Options holds chart layout options.
type Options struct {
	Title  string
	XLabel string
	YLabel string
	X      AxisRange
	Y      AxisRange
	Width  float64 // inches
	Height float64 // inches
	// Precision is the number of significant digits of the mean shown in
	// the legend; 0 prints the shortest exact form.
	Precision int
	// Smooth draws a moving average over this many trials next to each
	// run when greater than 1.
	Smooth int
}

// DefaultOptions returns the default chart options.
func DefaultOptions() *Options {
	return &Options{
		XLabel: "N-th test",
		YLabel: "execution time (ms)",
		Width:  8,
		Height: 5,
	}
}

// LegendLabel formats a legend entry such as "rhino: 234.5ms".
func LegendLabel(label string, mean float64, precision int) string {
	if precision <= 0 {
		precision = -1
	}
	return label + ": " + strconv.FormatFloat(mean, 'g', precision, 64) + "ms"
}

// Save renders lines to path. The format follows the file extension:
// .html produces an interactive page, any image extension supported by
// gonum/plot (png, svg, pdf, jpg, tif, eps) a static image.
func Save(path string, lines []Line, o *Options) error {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return errors.Wrapf(err, "create chart directory %s", dir)
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return errors.Wrap(err, "create chart file")
	}

	format := strings.ToLower(strings.TrimPrefix(filepath.Ext(path), "."))
	switch format {
	case "html", "htm":
		err = WriteHTML(f, lines, o)
	default:
		err = WriteImage(f, lines, o, format)
	}
	if err != nil {
		f.Close()
		os.Remove(path)
		return errors.Wrapf(err, "render %s", path)
	}
	return errors.Wrap(f.Close(), "close chart file")
}

func orDefault(o *Options) *Options {
	if o == nil {
		return DefaultOptions()
	}
	return o
}

func smoothed(s *timeseries.Series, window int) (xs []float64, ys []float64) {
	ys = s.MovingAverage(window)
	xs = make([]float64, len(ys))
	for i := range xs {
		xs[i] = float64(i + window - 1)
	}
	return xs, ys
}
