package chart

import (
	"io"

	"github.com/pkg/errors"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// NewPlot builds a gonum plot with one line per run. X values are the
// 0-based trial index within each series.
func NewPlot(lines []Line, o *Options) (*plot.Plot, error) {
	o = orDefault(o)

	p := plot.New()
	p.Title.Text = o.Title
	p.X.Label.Text = o.XLabel
	p.Y.Label.Text = o.YLabel
	p.Add(plotter.NewGrid())

	for i, ln := range lines {
		c, err := resolveColor(ln.Color, i)
		if err != nil {
			return nil, errors.Wrapf(err, "line %q", ln.Label)
		}

		pts := make(plotter.XYs, ln.Series.Len())
		for j, v := range ln.Series.Samples {
			pts[j].X = float64(j)
			pts[j].Y = float64(v)
		}
		l, err := plotter.NewLine(pts)
		if err != nil {
			return nil, errors.Wrapf(err, "line %q", ln.Label)
		}
		l.Color = c
		l.Width = vg.Points(1)

		p.Add(l)
		p.Legend.Add(LegendLabel(ln.Label, ln.Series.Mean, o.Precision), l)

		if o.Smooth > 1 && o.Smooth <= ln.Series.Len() {
			xs, ys := smoothed(ln.Series, o.Smooth)
			ma := make(plotter.XYs, len(xs))
			for j := range xs {
				ma[j].X, ma[j].Y = xs[j], ys[j]
			}
			ml, err := plotter.NewLine(ma)
			if err != nil {
				return nil, errors.Wrapf(err, "moving average of %q", ln.Label)
			}
			ml.Color = c
			ml.Width = vg.Points(2)
			ml.Dashes = []vg.Length{vg.Points(6), vg.Points(3)}
			p.Add(ml)
		}
	}
	p.Legend.Top = true

	// Fixed limits are applied last; Add widens the axes to the data.
	if !o.X.Auto() {
		p.X.Min, p.X.Max = o.X.Min, o.X.Max
	}
	if !o.Y.Auto() {
		p.Y.Min, p.Y.Max = o.Y.Min, o.Y.Max
	}

	return p, nil
}

// WriteImage renders lines as a static image in the given format (png,
// svg, pdf, jpg, tif, eps).
func WriteImage(w io.Writer, lines []Line, o *Options, format string) error {
	o = orDefault(o)
	p, err := NewPlot(lines, o)
	if err != nil {
		return err
	}

	width, height := o.Width, o.Height
	if width <= 0 {
		width = 8
	}
	if height <= 0 {
		height = 5
	}

	wt, err := p.WriterTo(vg.Length(width)*vg.Inch, vg.Length(height)*vg.Inch, format)
	if err != nil {
		return errors.Wrapf(err, "image format %q", format)
	}
	_, err = wt.WriteTo(w)
	return errors.Wrap(err, "write image")
}
