package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"

	"github.com/sartorproj/benchplot/chart"
	"github.com/sartorproj/benchplot/runset"
	"github.com/sartorproj/benchplot/timeseries"
)

const sampleConfig = `
log_level: debug
column: elapsed
workers: 2
skip_failed: true
runs:
  - {path: rhino.txt, color: r}
  - {path: rhizo_compile.txt, color: orange}
  - {path: rhizo_compile_2nd_run.txt}
charts:
  - {name: all, output: all.png, x: {min: -5, max: 165}, y: {min: 100, max: 600}}
  - name: steady
    output: steady.html
    range: "90:160"
    precision: 4
    smooth: 5
    x: {min: -5, max: 75}
    y: {min: 100, max: 400}
`

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "benchplot.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "duration", cfg.Column)
	assert.Equal(t, 4, cfg.Workers)
	assert.Equal(t, runset.AbortOnError, cfg.Policy())
	assert.NoError(t, cfg.Validate())
}

func TestLoadConfig(t *testing.T) {
	cfg, err := LoadConfig(writeConfig(t, sampleConfig))
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "elapsed", cfg.Column)
	assert.Equal(t, ",", cfg.Delimiter)
	assert.Equal(t, 2, cfg.Workers)
	assert.Equal(t, runset.SkipFailed, cfg.Policy())

	require.Len(t, cfg.Runs, 3)
	assert.Equal(t, runset.Entry{Path: "rhino.txt", Color: "r"}, cfg.Runs[0])
	assert.Equal(t, runset.Entry{Path: "rhizo_compile_2nd_run.txt"}, cfg.Runs[2])

	require.Len(t, cfg.Charts, 2)
	steady := cfg.Charts[1]
	assert.Equal(t, "steady.html", steady.Output)
	assert.Equal(t, chart.AxisRange{Min: -5, Max: 75}, steady.X)
	assert.Equal(t, chart.AxisRange{Min: 100, Max: 400}, steady.Y)

	rng, err := steady.ParsedRange()
	require.NoError(t, err)
	assert.Equal(t, &timeseries.Range{Start: 90, End: 160}, rng)

	opts := steady.Options()
	assert.Equal(t, 4, opts.Precision)
	assert.Equal(t, 5, opts.Smooth)
	assert.Equal(t, 8.0, opts.Width)
	assert.Equal(t, "N-th test", opts.XLabel)

	assert.NoError(t, cfg.Validate())
	assert.Equal(t, "elapsed", cfg.SeriesOptions().Column)
}

func TestLoadConfigEnvOverride(t *testing.T) {
	t.Setenv("BENCHPLOT_WORKERS", "8")
	t.Setenv("BENCHPLOT_COLUMN", "ms")

	cfg, err := LoadConfig(writeConfig(t, sampleConfig))
	require.NoError(t, err)
	assert.Equal(t, 8, cfg.Workers)
	assert.Equal(t, "ms", cfg.Column)
}

func TestLoadConfigMissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{"valid", func(*Config) {}, ""},
		{"zero workers", func(c *Config) { c.Workers = 0 }, "workers"},
		{"bad delimiter", func(c *Config) { c.Delimiter = ";;" }, "delimiter"},
		{"empty run path", func(c *Config) { c.Runs = []runset.Entry{{Color: "r"}} }, "run 1"},
		{"bad color", func(c *Config) { c.Runs = []runset.Entry{{Path: "a.txt", Color: "nope"}} }, "a.txt"},
		{"chart without output", func(c *Config) { c.Charts = []ChartConfig{{Name: "all"}} }, "chart 1"},
		{"bad range", func(c *Config) { c.Charts = []ChartConfig{{Output: "x.png", Range: "160:90"}} }, "x.png"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			assert.ErrorContains(t, err, tt.wantErr)
		})
	}
}

func TestDelimiterRune(t *testing.T) {
	tests := []struct {
		delim   string
		want    rune
		wantErr bool
	}{
		{"", ',', false},
		{",", ',', false},
		{";", ';', false},
		{`\t`, '\t', false},
		{"\t", '\t', false},
		{`"`, 0, true},
		{"ab", 0, true},
	}

	for _, tt := range tests {
		cfg := &Config{Delimiter: tt.delim}
		got, err := cfg.DelimiterRune()
		if tt.wantErr {
			assert.Error(t, err, "delimiter %q", tt.delim)
			continue
		}
		require.NoError(t, err, "delimiter %q", tt.delim)
		assert.Equal(t, tt.want, got, "delimiter %q", tt.delim)
	}
}

func TestChartConfigNoRange(t *testing.T) {
	rng, err := ChartConfig{Output: "all.png"}.ParsedRange()
	require.NoError(t, err)
	assert.Nil(t, rng)
}

func TestNewLogger(t *testing.T) {
	logFile := filepath.Join(t.TempDir(), "benchplot.log")
	cfg := &Config{LogLevel: "warn", LogFile: logFile}

	logger, err := cfg.NewLogger()
	require.NoError(t, err)
	assert.True(t, logger.Core().Enabled(zapcore.WarnLevel))
	assert.False(t, logger.Core().Enabled(zapcore.InfoLevel))

	logger.Warn("written")
	_ = logger.Sync()

	data, err := os.ReadFile(logFile)
	require.NoError(t, err)
	assert.Contains(t, string(data), "written")

	cfg.Debug = true
	logger, err = cfg.NewLogger()
	require.NoError(t, err)
	assert.True(t, logger.Core().Enabled(zapcore.DebugLevel))
}
