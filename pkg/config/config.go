// Package config holds runtime settings for matcher sessions and
// assertions, loaded from defaults, an optional YAML file and
// MATCHERS_* environment variables.
package config

import (
	"fmt"
	"io"
	"strings"

	"github.com/hashicorp/go-multierror"
	"github.com/spf13/viper"

	"digital.vasic.matchers/pkg/logging"
	"digital.vasic.matchers/pkg/matcher"
)

// EnvPrefix prefixes environment overrides, e.g.
// MATCHERS_LOG_LEVEL=debug.
const EnvPrefix = "MATCHERS"

const (
	keyIndentWidth = "indent-width"
	keyMemoize     = "memoize"
	keyStackTraces = "stack-traces"
	keyLogLevel    = "log-level"
	keyLogFormat   = "log-format"
	keyReportPath  = "report-path"
	keyLogFile     = "log-file"
	keyReportDir   = "report-dir"
	keyHistoryPath = "history-path"
)

// Log formats accepted in LogFormat.
const (
	FormatConsole = "console"
	FormatJSON    = "json"
)

// Config holds runtime configuration.
type Config struct {
	// IndentWidth is the number of spaces per nesting level in
	// rendered descriptions.
	IndentWidth int

	// Memoize caches function and predicate calls within a
	// session.
	Memoize bool

	// StackTraces appends the stack of captured panics to
	// mismatch text.
	StackTraces bool

	// LogLevel is one of debug, info, warn or error.
	LogLevel string

	// LogFormat is "console" or "json".
	LogFormat string

	// ReportPath, when set, is where the asserter saves its JSON
	// summary.
	ReportPath string

	// ReportDir, when set, receives timestamped JSON and Markdown
	// summaries.
	ReportDir string

	// HistoryPath, when set, gets one JSON line per assertion.
	HistoryPath string

	// LogFile, when set, also receives every log entry as JSON
	// Lines.
	LogFile string
}

// Default returns a Config with sensible defaults.
func Default() *Config {
	return &Config{
		IndentWidth: 2,
		Memoize:     true,
		LogLevel:    "info",
		LogFormat:   FormatConsole,
	}
}

// Load reads configuration from path, if non-empty, and from the
// environment. Values missing from both keep their defaults.
func Load(path string) (*Config, error) {
	v := viper.New()

	def := Default()
	v.SetDefault(keyIndentWidth, def.IndentWidth)
	v.SetDefault(keyMemoize, def.Memoize)
	v.SetDefault(keyStackTraces, def.StackTraces)
	v.SetDefault(keyLogLevel, def.LogLevel)
	v.SetDefault(keyLogFormat, def.LogFormat)
	v.SetDefault(keyReportPath, def.ReportPath)
	v.SetDefault(keyLogFile, def.LogFile)
	v.SetDefault(keyReportDir, def.ReportDir)
	v.SetDefault(keyHistoryPath, def.HistoryPath)

	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
	}

	cfg := &Config{
		IndentWidth: v.GetInt(keyIndentWidth),
		Memoize:     v.GetBool(keyMemoize),
		StackTraces: v.GetBool(keyStackTraces),
		LogLevel:    v.GetString(keyLogLevel),
		LogFormat:   strings.ToLower(v.GetString(keyLogFormat)),
		ReportPath:  v.GetString(keyReportPath),
		LogFile:     v.GetString(keyLogFile),
		ReportDir:   v.GetString(keyReportDir),
		HistoryPath: v.GetString(keyHistoryPath),
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate reports every invalid setting at once.
func (c *Config) Validate() error {
	var errs *multierror.Error

	if c.IndentWidth < 0 || c.IndentWidth > 8 {
		errs = multierror.Append(errs, fmt.Errorf(
			"%s must be between 0 and 8, got %d", keyIndentWidth, c.IndentWidth,
		))
	}
	if _, err := logging.ParseLevel(c.LogLevel); err != nil {
		errs = multierror.Append(errs, fmt.Errorf("%s: %w", keyLogLevel, err))
	}
	if c.LogFormat != FormatConsole && c.LogFormat != FormatJSON {
		errs = multierror.Append(errs, fmt.Errorf(
			"%s must be %q or %q, got %q",
			keyLogFormat, FormatConsole, FormatJSON, c.LogFormat,
		))
	}

	return errs.ErrorOrNil()
}

// Indent returns one nesting level of rendered text.
func (c *Config) Indent() string {
	return strings.Repeat(" ", c.IndentWidth)
}

// SessionOptions returns the matcher session options this
// configuration implies.
func (c *Config) SessionOptions() []matcher.Option {
	return []matcher.Option{
		matcher.WithIndent(c.Indent()),
		matcher.WithMemoization(c.Memoize),
		matcher.WithStackTraces(c.StackTraces),
	}
}

// NewLogger creates the logger selected by LogFormat and LogLevel,
// writing to w. With LogFile set, entries also go to that file.
func (c *Config) NewLogger(w io.Writer) (logging.Logger, error) {
	level, err := logging.ParseLevel(c.LogLevel)
	if err != nil {
		return nil, err
	}

	var primary logging.Logger
	switch c.LogFormat {
	case FormatJSON:
		primary = logging.NewJSONLoggerWriter(w, level)
	case FormatConsole, "":
		primary = logging.NewConsoleLogger(w, level)
	default:
		return nil, fmt.Errorf("unknown log format: %q", c.LogFormat)
	}

	if c.LogFile == "" {
		return primary, nil
	}
	file, err := logging.NewJSONLogger(logging.LoggerConfig{
		OutputPath: c.LogFile,
		Level:      level,
	})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", keyLogFile, err)
	}
	return logging.NewMultiLogger(primary, file), nil
}
