package config

import (
	"fmt"
	"time"

	"github.com/nmeilick/durflex/duration"
)

// Default values for the defaults block
const (
	DefaultOffset     = "1d"
	DefaultTimeFormat = time.RFC3339
	DefaultLocation   = "Local"
	DefaultOutput     = OutputTable
)

// Output formats
const (
	OutputTable = "table"
	OutputJSON  = "json"
	OutputYAML  = "yaml"
)

// DefaultsConfig holds defaults applied by the commands
type DefaultsConfig struct {
	// Offset is the duration used by shift when none is given
	Offset string `hcl:"offset,optional"`

	// TimeFormat is the Go layout used to read and print timestamps
	TimeFormat string `hcl:"time_format,optional"`

	// Location is the time zone for timestamps without one
	Location string `hcl:"location,optional"`

	// Output is the output format: table, json or yaml
	Output string `hcl:"output,optional"`

	// Parsed values (not serialized to HCL)
	parsedOffset   duration.Duration
	parsedLocation *time.Location
	parsed         bool
}

// DefaultDefaultsConfig returns a new DefaultsConfig with default values
func DefaultDefaultsConfig() *DefaultsConfig {
	return &DefaultsConfig{
		Offset:     DefaultOffset,
		TimeFormat: DefaultTimeFormat,
		Location:   DefaultLocation,
		Output:     DefaultOutput,
	}
}

// Normalize sets default values for unset fields and validates the configuration
func (cfg *DefaultsConfig) Normalize() error {
	if cfg.Offset == "" {
		cfg.Offset = DefaultOffset
	}
	if cfg.TimeFormat == "" {
		cfg.TimeFormat = DefaultTimeFormat
	}
	if cfg.Location == "" {
		cfg.Location = DefaultLocation
	}
	if cfg.Output == "" {
		cfg.Output = DefaultOutput
	}
	return cfg.Validate()
}

// Validate checks the values and parses them
func (cfg *DefaultsConfig) Validate() error {
	offset, err := duration.Parse(cfg.Offset)
	if err != nil {
		return fmt.Errorf("invalid offset: %w", err)
	}

	loc, err := time.LoadLocation(cfg.Location)
	if err != nil {
		return fmt.Errorf("invalid location: %w", err)
	}

	if err := ValidateOutput(cfg.Output); err != nil {
		return err
	}

	cfg.parsedOffset = offset
	cfg.parsedLocation = loc
	cfg.parsed = true
	return nil
}

// GetOffset returns the parsed default offset
func (cfg *DefaultsConfig) GetOffset() duration.Duration {
	if !cfg.parsed {
		if err := cfg.Validate(); err != nil {
			return duration.MustParse(DefaultOffset)
		}
	}
	return cfg.parsedOffset
}

// GetLocation returns the configured time zone
func (cfg *DefaultsConfig) GetLocation() *time.Location {
	if !cfg.parsed {
		if err := cfg.Validate(); err != nil {
			return time.Local
		}
	}
	return cfg.parsedLocation
}

// ValidateOutput checks that format names a supported output format
func ValidateOutput(format string) error {
	switch format {
	case OutputTable, OutputJSON, OutputYAML:
		return nil
	default:
		return fmt.Errorf("invalid output format %q (table, json, yaml)", format)
	}
}

// DefaultsSampleConfig returns a sample configuration for the defaults block
func DefaultsSampleConfig() string {
	return `# Defaults used by the commands
defaults {
  offset      = "1d"                         # Offset for "shift" (weeks, days, hours, minutes, seconds, in order)
  time_format = "2006-01-02T15:04:05Z07:00"  # Go time layout for reading and printing timestamps
  location    = "Local"                      # Time zone for timestamps, e.g. "UTC" or "Europe/Berlin"
  output      = "table"                      # Output format: table, json or yaml
}`
}
