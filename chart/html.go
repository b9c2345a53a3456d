package chart

import (
	"fmt"
	"io"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/pkg/errors"
)

const pixelsPerInch = 96

// NewLineChart builds an interactive go-echarts line chart with one series
// per run, plotted as [trial, duration] pairs on value axes.
func NewLineChart(lines []Line, o *Options) (*charts.Line, error) {
	o = orDefault(o)

	width, height := o.Width, o.Height
	if width <= 0 {
		width = 8
	}
	if height <= 0 {
		height = 5
	}

	xAxis := opts.XAxis{Name: o.XLabel, Type: "value"}
	if !o.X.Auto() {
		xAxis.Min, xAxis.Max = o.X.Min, o.X.Max
	}
	yAxis := opts.YAxis{Name: o.YLabel, Type: "value"}
	if !o.Y.Auto() {
		yAxis.Min, yAxis.Max = o.Y.Min, o.Y.Max
	}

	title := o.Title
	if title == "" {
		title = "benchplot"
	}

	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			PageTitle: title,
			Width:     fmt.Sprintf("%dpx", int(width*pixelsPerInch)),
			Height:    fmt.Sprintf("%dpx", int(height*pixelsPerInch)),
		}),
		charts.WithTitleOpts(opts.Title{Title: o.Title}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true), Trigger: "axis"}),
		charts.WithLegendOpts(opts.Legend{Show: opts.Bool(true), Top: "bottom"}),
		charts.WithXAxisOpts(xAxis),
		charts.WithYAxisOpts(yAxis),
	)

	for i, ln := range lines {
		c, err := resolveColor(ln.Color, i)
		if err != nil {
			return nil, errors.Wrapf(err, "line %q", ln.Label)
		}
		hex := Hex(c)

		data := make([]opts.LineData, ln.Series.Len())
		for j, v := range ln.Series.Samples {
			data[j] = opts.LineData{Value: []interface{}{j, v}}
		}
		line.AddSeries(LegendLabel(ln.Label, ln.Series.Mean, o.Precision), data,
			charts.WithLineChartOpts(opts.LineChart{ShowSymbol: opts.Bool(false)}),
			charts.WithLineStyleOpts(opts.LineStyle{Color: hex, Width: 1}),
			charts.WithItemStyleOpts(opts.ItemStyle{Color: hex}),
		)

		if o.Smooth > 1 && o.Smooth <= ln.Series.Len() {
			xs, ys := smoothed(ln.Series, o.Smooth)
			ma := make([]opts.LineData, len(xs))
			for j := range xs {
				ma[j] = opts.LineData{Value: []interface{}{xs[j], ys[j]}}
			}
			line.AddSeries(fmt.Sprintf("%s (MA %d)", ln.Label, o.Smooth), ma,
				charts.WithLineChartOpts(opts.LineChart{ShowSymbol: opts.Bool(false)}),
				charts.WithLineStyleOpts(opts.LineStyle{Color: hex, Width: 2, Type: "dashed"}),
				charts.WithItemStyleOpts(opts.ItemStyle{Color: hex}),
			)
		}
	}

	return line, nil
}

// WriteHTML renders lines as a self-contained interactive HTML page.
func WriteHTML(w io.Writer, lines []Line, o *Options) error {
	line, err := NewLineChart(lines, o)
	if err != nil {
		return err
	}
	return errors.Wrap(line.Render(w), "render html")
}
