package main

import (
	"context"
	"fmt"
	"io"
	"strconv"

	jsoniter "github.com/json-iterator/go"
	"github.com/olekukonko/tablewriter"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/sartorproj/benchplot/internal/config"
	"github.com/sartorproj/benchplot/stats"
	"github.com/sartorproj/benchplot/timeseries"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

type summaryFlags struct {
	sampleRng  string
	json       bool
	minWindow  int
	skipFailed bool
}

// summaryRow is one run in the summary output.
type summaryRow struct {
	Path string `json:"path"`
	*stats.Summary
	Start  int           `json:"start"`
	Warmup *warmupReport `json:"warmup,omitempty"`
}

type warmupReport struct {
	Found       bool     `json:"found"`
	Cutoff      int      `json:"cutoff"`
	SteadyStart int      `json:"steady_start"`
	SteadyEnd   int      `json:"steady_end"`
	Stationary  *bool    `json:"stationary,omitempty"`
	KPSSPValue  *float64 `json:"kpss_p_value,omitempty"`
}

func newSummaryCommand() *cobra.Command {
	var f summaryFlags

	cmd := &cobra.Command{
		Use:   "summary [log-file...]",
		Short: "Print descriptive statistics of each run",
		Long: `Print count, mean, spread and percentiles of each run together with the
lag-1 autocorrelation and the detected warm-up phase. The warm-up cutoff is
found with the Marginal Standard Error Rule; the steady range it suggests
can be passed to "plot --range".`,
		Example: `  # Table of all configured runs
  benchplot summary

  # JSON, restricted to trials 90..160
  benchplot summary rhino.txt rhizo_compile.txt -r 90:160 --json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSummary(cmd.Context(), cmd.OutOrStdout(), args, &f)
		},
	}

	cmd.Flags().StringVarP(&f.sampleRng, "range", "r", "", "inclusive sample range start:end")
	cmd.Flags().BoolVar(&f.json, "json", false, "print JSON instead of a table")
	cmd.Flags().IntVar(&f.minWindow, "min-window", stats.DefaultWarmupOptions().MinWindow, "smallest steady-state window for warm-up detection")
	cmd.Flags().BoolVar(&f.skipFailed, "skip-failed", false, "skip runs that fail to load instead of aborting")

	return cmd
}

func runSummary(ctx context.Context, w io.Writer, args []string, f *summaryFlags) error {
	entries, err := runEntries(args)
	if err != nil {
		return err
	}

	rng, err := config.ChartConfig{Range: f.sampleRng}.ParsedRange()
	if err != nil {
		return err
	}

	results, err := newLoader(f.skipFailed).Load(ctx, entries, rng)
	if err != nil {
		return err
	}

	warmupOpts := stats.DefaultWarmupOptions()
	warmupOpts.MinWindow = f.minWindow

	rows := make([]summaryRow, 0, len(results))
	for _, r := range results {
		sum, err := stats.Describe(r.Series)
		if err != nil {
			return errors.Wrapf(err, "describe %s", r.Entry.Path)
		}
		rows = append(rows, summaryRow{
			Path:    r.Entry.Path,
			Summary: sum,
			Start:   r.Series.Start,
			Warmup:  newWarmupReport(stats.DetectWarmup(r.Series, warmupOpts)),
		})
	}

	if f.json {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return errors.Wrap(enc.Encode(rows), "encode summary")
	}
	writeSummaryTable(w, rows)
	return nil
}

func newWarmupReport(wu *stats.Warmup) *warmupReport {
	if wu == nil {
		return nil
	}
	report := &warmupReport{
		Found:       wu.Found,
		Cutoff:      wu.Cutoff,
		SteadyStart: wu.Steady.Start,
		SteadyEnd:   wu.Steady.End,
	}
	if wu.KPSS != nil {
		report.Stationary = &wu.KPSS.IsStationary
		report.KPSSPValue = &wu.KPSS.PValue
	}
	return report
}

func writeSummaryTable(w io.Writer, rows []summaryRow) {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Run", "N", "Mean", "StdDev", "Min", "Median", "P95", "Max", "Lag1", "Steady"})
	table.SetAlignment(tablewriter.ALIGN_RIGHT)

	for _, row := range rows {
		table.Append([]string{
			row.Label,
			strconv.Itoa(row.Count),
			formatFloat(row.Mean),
			formatFloat(row.StdDev),
			formatFloat(row.Min),
			formatFloat(row.Median),
			formatFloat(row.P95),
			formatFloat(row.Max),
			fmt.Sprintf("%.2f", row.Lag1),
			steadyCell(row.Warmup),
		})
	}
	table.Render()
}

func steadyCell(report *warmupReport) string {
	switch {
	case report == nil:
		return "-"
	case !report.Found:
		return "drifting"
	default:
		return timeseries.Range{Start: report.SteadyStart, End: report.SteadyEnd}.String()
	}
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', 1, 64)
}
