package config

import (
	"time"

	"github.com/nao1215/stackstats/internal/model"
	"github.com/nao1215/stackstats/internal/stackexchange"
)

// Default configuration values.
const (
	// AppName is the application name used in help output and the User-Agent.
	AppName = "stats"

	// DefaultFormat is used when --output-format is not given.
	DefaultFormat = model.FormatJSON

	// DefaultBaseURL is the StackExchange API root.
	DefaultBaseURL = stackexchange.DefaultBaseURL

	// DefaultSite is the StackExchange site that is queried.
	DefaultSite = stackexchange.DefaultSite

	// DefaultTimeout of zero means requests wait for the server indefinitely.
	DefaultTimeout time.Duration = 0
)

// Config holds all configuration options for one stats run.
// It is populated from CLI flags only; there is no configuration file and
// no environment variable lookup.
type Config struct {
	// Since is the start of the date range, "YYYYMMDD HH:mm:SS", local time.
	Since string

	// Until is the end of the date range, same layout as Since.
	Until string

	// OutputFormat selects the report writer.
	OutputFormat model.Format

	// ReportFile is the output file path for the report.
	// When empty, the report is written to stdout.
	// Directories are created automatically if they don't exist.
	ReportFile string

	// BaseURL is the API root the client talks to.
	BaseURL string

	// Site is the StackExchange site parameter.
	Site string

	// Timeout is the per-request timeout. Zero disables it.
	Timeout time.Duration

	// Verbose enables debug logging on stderr, including every request and
	// any truncated fetch loop.
	Verbose bool

	// Strict makes the run fail after printing the report if any request
	// failed and the report was computed from partial data.
	Strict bool
}

// NewConfig creates a new Config with default values.
func NewConfig() *Config {
	return &Config{
		OutputFormat: DefaultFormat,
		BaseURL:      DefaultBaseURL,
		Site:         DefaultSite,
		Timeout:      DefaultTimeout,
	}
}

// Validate checks if the configuration is valid.
// It returns the first problem found as one of the sentinel errors.
// The contents of Since and Until are checked later, when they are parsed.
func (c *Config) Validate() error {
	if c.Since == "" {
		return ErrMissingSince
	}
	if c.Until == "" {
		return ErrMissingUntil
	}
	if !c.OutputFormat.IsValid() {
		return ErrInvalidOutputFormat
	}
	if c.Timeout < 0 {
		return ErrInvalidTimeout
	}
	if c.BaseURL == "" {
		return ErrEmptyBaseURL
	}
	if c.Site == "" {
		return ErrEmptySite
	}
	return nil
}
