package main

import (
	"context"
	"fmt"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/sartorproj/benchplot/chart"
	"github.com/sartorproj/benchplot/internal/config"
)

const defaultOutput = "benchplot.png"

type plotFlags struct {
	output     string
	sampleRng  string
	title      string
	precision  int
	smooth     int
	skipFailed bool
}

func newPlotCommand() *cobra.Command {
	var f plotFlags

	cmd := &cobra.Command{
		Use:   "plot [log-file...]",
		Short: "Render execution-time-vs-trial charts",
		Long: `Render one line per run, with the run's mean execution time in the legend.

Without --output every chart listed in the config file is rendered. The
output format follows the file extension: .html writes an interactive page,
.png, .svg, .pdf, .jpg, .tif and .eps a static image.`,
		Example: `  # Compare two runs
  benchplot plot rhino.txt rhizo_compile.txt -o all.png

  # Steady state only, interactive
  benchplot plot rhino.txt rhizo_compile.txt -r 90:160 -o steady.html

  # Every chart from the config file
  benchplot plot -c benchplot.yaml`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPlot(cmd.Context(), args, &f)
		},
	}

	cmd.Flags().StringVarP(&f.output, "output", "o", "", "output file; overrides the configured charts")
	cmd.Flags().StringVarP(&f.sampleRng, "range", "r", "", "inclusive sample range start:end")
	cmd.Flags().StringVar(&f.title, "title", "", "chart title")
	cmd.Flags().IntVar(&f.precision, "precision", 0, "significant digits of the mean in the legend (0: shortest)")
	cmd.Flags().IntVar(&f.smooth, "smooth", 0, "overlay a moving average over this many trials")
	cmd.Flags().BoolVar(&f.skipFailed, "skip-failed", false, "skip runs that fail to load instead of aborting")

	return cmd
}

func runPlot(ctx context.Context, args []string, f *plotFlags) error {
	entries, err := runEntries(args)
	if err != nil {
		return err
	}

	views := chartViews(f)
	loader := newLoader(f.skipFailed)

	for _, view := range views {
		rng, err := view.ParsedRange()
		if err != nil {
			return fmt.Errorf("chart %s: %w", view.Output, err)
		}

		results, err := loader.Load(ctx, entries, rng)
		if err != nil {
			return errors.Wrapf(err, "chart %s", view.Output)
		}

		if err := chart.Save(view.Output, chart.LinesFrom(results), view.Options()); err != nil {
			return err
		}

		logger.Info("Wrote chart",
			zap.String("name", view.Name),
			zap.String("output", view.Output),
			zap.Int("runs", len(results)))
	}

	return nil
}

// chartViews returns the charts to render. An explicit --output, or a
// config without charts, yields a single view built from the flags.
func chartViews(f *plotFlags) []config.ChartConfig {
	if f.output == "" && len(cfg.Charts) > 0 {
		return cfg.Charts
	}

	output := f.output
	if output == "" {
		output = defaultOutput
	}
	return []config.ChartConfig{{
		Name:      "plot",
		Output:    output,
		Title:     f.title,
		Range:     f.sampleRng,
		Precision: f.precision,
		Smooth:    f.smooth,
	}}
}
