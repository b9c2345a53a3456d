package config

import (
	"fmt"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/sartorproj/benchplot/chart"
	"github.com/sartorproj/benchplot/runset"
	"github.com/sartorproj/benchplot/timeseries"
)

// Config holds all configuration for the application
type Config struct {
	// Global configuration
	Debug    bool   `yaml:"debug" mapstructure:"debug"`
	LogLevel string `yaml:"log_level" mapstructure:"log_level"`
	LogFile  string `yaml:"log_file" mapstructure:"log_file"`

	// Log parsing
	Column    string `yaml:"column" mapstructure:"column"`
	Delimiter string `yaml:"delimiter" mapstructure:"delimiter"`

	// Batch loading
	Workers    int  `yaml:"workers" mapstructure:"workers"`
	SkipFailed bool `yaml:"skip_failed" mapstructure:"skip_failed"`

	// Runs to compare, in legend order
	Runs []runset.Entry `yaml:"runs" mapstructure:"runs"`

	// Charts to render from the runs
	Charts []ChartConfig `yaml:"charts" mapstructure:"charts"`
}

// ChartConfig describes one rendered view of the runs
type ChartConfig struct {
	Name      string          `yaml:"name" mapstructure:"name"`
	Output    string          `yaml:"output" mapstructure:"output"`
	Title     string          `yaml:"title" mapstructure:"title"`
	Range     string          `yaml:"range" mapstructure:"range"`
	X         chart.AxisRange `yaml:"x" mapstructure:"x"`
	Y         chart.AxisRange `yaml:"y" mapstructure:"y"`
	Width     float64         `yaml:"width" mapstructure:"width"`
	Height    float64         `yaml:"height" mapstructure:"height"`
	Precision int             `yaml:"precision" mapstructure:"precision"`
	Smooth    int             `yaml:"smooth" mapstructure:"smooth"`
}

// DefaultConfig returns a Config with default values
func DefaultConfig() *Config {
	return &Config{
		LogLevel:  "info",
		Column:    "duration",
		Delimiter: ",",
		Workers:   4,
	}
}

// LoadConfig loads configuration from file and environment variables
func LoadConfig(configFile string) (*Config, error) {
	// Load .env file if it exists
	_ = godotenv.Load()

	config := DefaultConfig()

	// Use a local viper instance to avoid conflicts with flag bindings
	v := viper.New()
	v.SetConfigType("yaml")

	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	} else {
		v.SetConfigName("benchplot")
		v.AddConfigPath(".")
		if err := v.ReadInConfig(); err != nil {
			if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
				return nil, fmt.Errorf("error reading config file: %w", err)
			}
			// No config file; defaults and environment only
		}
	}

	// Set up environment variable support
	v.SetEnvPrefix("BENCHPLOT")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()
	for _, key := range []string{"debug", "log_level", "log_file", "column", "delimiter", "workers", "skip_failed"} {
		_ = v.BindEnv(key)
	}

	if err := v.Unmarshal(config); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	return config, nil
}

// Validate checks the configuration before any log is read
func (c *Config) Validate() error {
	if c.Workers <= 0 {
		return fmt.Errorf("workers must be greater than 0")
	}
	if _, err := c.DelimiterRune(); err != nil {
		return err
	}
	for i, run := range c.Runs {
		if run.Path == "" {
			return fmt.Errorf("run %d: path must be specified", i+1)
		}
		if run.Color != "" {
			if _, err := chart.ParseColor(run.Color); err != nil {
				return fmt.Errorf("run %d (%s): %w", i+1, run.Path, err)
			}
		}
	}
	for i, ch := range c.Charts {
		if ch.Output == "" {
			return fmt.Errorf("chart %d: output must be specified", i+1)
		}
		if _, err := ch.ParsedRange(); err != nil {
			return fmt.Errorf("chart %d (%s): %w", i+1, ch.Output, err)
		}
	}
	return nil
}

// DelimiterRune returns the configured field delimiter
func (c *Config) DelimiterRune() (rune, error) {
	d := []rune(c.Delimiter)
	switch {
	case len(d) == 0:
		return ',', nil
	case len(d) == 1 && d[0] != '\n' && d[0] != '\r' && d[0] != '"':
		return d[0], nil
	case c.Delimiter == `\t`:
		return '\t', nil
	default:
		return 0, fmt.Errorf("invalid delimiter %q", c.Delimiter)
	}
}

// SeriesOptions returns the log parsing options
func (c *Config) SeriesOptions() *timeseries.Options {
	opts := timeseries.DefaultOptions()
	if c.Column != "" {
		opts.Column = c.Column
	}
	if d, err := c.DelimiterRune(); err == nil {
		opts.Delimiter = d
	}
	return opts
}

// Policy returns the batch failure policy
func (c *Config) Policy() runset.Policy {
	if c.SkipFailed {
		return runset.SkipFailed
	}
	return runset.AbortOnError
}

// ParsedRange returns the chart's sample range, nil when unset
func (c ChartConfig) ParsedRange() (*timeseries.Range, error) {
	if strings.TrimSpace(c.Range) == "" {
		return nil, nil
	}
	r, err := timeseries.ParseRange(c.Range)
	if err != nil {
		return nil, err
	}
	return &r, nil
}

// Options returns the chart layout options
func (c ChartConfig) Options() *chart.Options {
	opts := chart.DefaultOptions()
	opts.Title = c.Title
	opts.X = c.X
	opts.Y = c.Y
	opts.Precision = c.Precision
	opts.Smooth = c.Smooth
	if c.Width > 0 {
		opts.Width = c.Width
	}
	if c.Height > 0 {
		opts.Height = c.Height
	}
	return opts
}

// NewLogger creates a zap logger based on the configuration
func (c *Config) NewLogger() (*zap.Logger, error) {
	var level zapcore.Level
	switch strings.ToLower(c.LogLevel) {
	case "debug":
		level = zapcore.DebugLevel
	case "info":
		level = zapcore.InfoLevel
	case "warn":
		level = zapcore.WarnLevel
	case "error":
		level = zapcore.ErrorLevel
	default:
		level = zapcore.InfoLevel
	}
	if c.Debug {
		level = zapcore.DebugLevel
	}

	cfg := zap.NewProductionConfig()
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	cfg.Level.SetLevel(level)

	// Include caller info in log messages (relative path and line number)
	cfg.EncoderConfig.EncodeCaller = zapcore.ShortCallerEncoder

	// Logs go to stderr so summaries on stdout stay machine-readable
	if c.LogFile != "" {
		cfg.OutputPaths = []string{c.LogFile, "stderr"}
		cfg.ErrorOutputPaths = []string{c.LogFile, "stderr"}
	} else {
		cfg.OutputPaths = []string{"stderr"}
		cfg.ErrorOutputPaths = []string{"stderr"}
	}

	logger, err := cfg.Build(zap.AddCaller())
	if err != nil {
		return nil, fmt.Errorf("error creating logger: %w", err)
	}

	return logger, nil
}
