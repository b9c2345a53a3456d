// Package timeseries provides benchmark timing series and the log loader
// that builds them.
//
// A timing log is plain text with a comma-separated header and one row per
// trial. Lines whose first non-whitespace character is '#' and blank lines
// are ignored wherever they appear:
//
//	# engine=rhino warmup=0
//	name,iteration,duration
//	fib,0,412
//	fib,1,398
//
// # Loading a Series
//
// Load the duration column of a log:
//
//	series, err := timeseries.LoadSeries("rhino_2nd_run.txt", nil)
//	// series.Label == "rhino_2nd_run"
//	// series.Mean  == arithmetic mean of series.Samples
//
// Restrict the samples, and the mean, to an inclusive index range:
//
//	opts := timeseries.DefaultOptions()
//	opts.Range = &timeseries.Range{Start: 90, End: 160}
//	steady, err := timeseries.LoadSeries("rhino.txt", opts)
//
// # Errors
//
// Failures are reported with typed errors that match the sentinels
// ErrFileNotFound, ErrParse and ErrEmptySeries:
//
//	_, err := timeseries.LoadSeries(path, nil)
//	var perr *timeseries.ParseError
//	switch {
//	case errors.As(err, &perr):
//	    fmt.Printf("fix %s line %d\n", perr.Path, perr.Line)
//	case errors.Is(err, timeseries.ErrEmptySeries):
//	    // header only, or the range selected nothing
//	}
//
// A mean over zero samples is always an error, never NaN.
package timeseries
