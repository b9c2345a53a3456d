// Package runset loads an ordered set of benchmark runs for side-by-side
// comparison.
package runset

import (
	"context"

	"github.com/pkg/errors"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/sartorproj/benchplot/timeseries"
)

// Entry is one run to compare: a log path and the color it is drawn in.
// An empty Color leaves the choice to the renderer.
type Entry struct {
	Path  string `yaml:"path" mapstructure:"path" json:"path"`
	Color string `yaml:"color" mapstructure:"color" json:"color,omitempty"`
}

// Result pairs an entry with its loaded series.
type Result struct {
	Entry  Entry
	Series *timeseries.Series
}

// Policy decides what a batch does when one of its runs fails.
type Policy int

const (
	// AbortOnError fails the whole batch on the first failing run.
	AbortOnError Policy = iota
	// SkipFailed logs failing runs and continues with the rest.
	SkipFailed
)

func (p Policy) String() string {
	switch p {
	case AbortOnError:
		return "abort"
	case SkipFailed:
		return "skip"
	default:
		return "unknown"
	}
}

// ErrNoRuns is returned when a batch produced no series at all.
var ErrNoRuns = errors.New("no runs loaded")

// Loader loads runs concurrently.
type Loader struct {
	logger  *zap.Logger
	workers int
	policy  Policy
	opts    timeseries.Options
	load    func(path string, opts *timeseries.Options) (*timeseries.Series, error)
}

// Option configures a Loader.
type Option func(*Loader)

// WithLogger sets the logger used to report progress and skipped runs.
func WithLogger(logger *zap.Logger) Option {
	return func(l *Loader) {
		if logger != nil {
			l.logger = logger
		}
	}
}

// WithWorkers bounds the number of files read at once.
func WithWorkers(n int) Option {
	return func(l *Loader) {
		if n > 0 {
			l.workers = n
		}
	}
}

// WithPolicy sets the failure policy.
func WithPolicy(p Policy) Option {
	return func(l *Loader) {
		l.policy = p
	}
}

// WithSeriesOptions sets the column and delimiter used to parse logs. Its
// Range is ignored; pass the range to Load instead.
func WithSeriesOptions(opts *timeseries.Options) Option {
	return func(l *Loader) {
		if opts != nil {
			l.opts = *opts
		}
	}
}

// NewLoader returns a Loader with the given options applied.
func NewLoader(opts ...Option) *Loader {
	l := &Loader{
		logger:  zap.NewNop(),
		workers: 4,
		policy:  AbortOnError,
		opts:    *timeseries.DefaultOptions(),
		load:    timeseries.LoadSeries,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Load reads every entry, restricted to rng when it is not nil. Results are
// in entry order. Under AbortOnError the first failure cancels the
// remaining reads and is returned; under SkipFailed failing entries are
// logged and left out.
func (l *Loader) Load(ctx context.Context, entries []Entry, rng *timeseries.Range) ([]Result, error) {
	if len(entries) == 0 {
		return nil, ErrNoRuns
	}

	opts := l.opts
	opts.Range = rng

	series := make([]*timeseries.Series, len(entries))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(l.workers)

	for i, entry := range entries {
		i, entry := i, entry
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}

			s, err := l.load(entry.Path, &opts)
			if err != nil {
				if l.policy == SkipFailed {
					l.logger.Warn("Skipping run", zap.String("path", entry.Path), zap.Error(err))
					return nil
				}
				return errors.Wrapf(err, "load run %d", i+1)
			}

			l.logger.Debug("Loaded run",
				zap.String("path", entry.Path),
				zap.String("label", s.Label),
				zap.Int("samples", s.Len()),
				zap.Float64("mean", s.Mean))
			series[i] = s
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	results := make([]Result, 0, len(entries))
	for i, s := range series {
		if s == nil {
			continue
		}
		results = append(results, Result{Entry: entries[i], Series: s})
	}
	if len(results) == 0 {
		return nil, ErrNoRuns
	}

	l.logger.Info("Loaded runs",
		zap.Int("loaded", len(results)),
		zap.Int("skipped", len(entries)-len(results)),
		zap.Stringer("policy", l.policy))

	return results, nil
}
