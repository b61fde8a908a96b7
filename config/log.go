package config

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"gopkg.in/natefinch/lumberjack.v2"
)

// Default configuration constants
const (
	DefaultLogMaxSize    = 10 // MB
	DefaultLogMaxBackups = 3
	DefaultLogMaxAge     = 28 // days
)

// LogConfig defines an optional rotated log file
type LogConfig struct {
	// File is the log file path. Logging to a file is disabled when empty.
	File string `hcl:"file,optional"`

	// MaxSize is the maximum size of the log file in megabytes before rotation
	MaxSize int `hcl:"max_size,optional"`

	// MaxBackups is the maximum number of old log files to retain
	MaxBackups int `hcl:"max_backups,optional"`

	// MaxAge is the maximum number of days to retain old log files
	MaxAge int `hcl:"max_age,optional"`

	// Compress determines if rotated log files should be compressed
	Compress bool `hcl:"compress,optional"`
}

// DefaultLogConfig returns a new LogConfig with default values
func DefaultLogConfig() *LogConfig {
	return &LogConfig{
		MaxSize:    DefaultLogMaxSize,
		MaxBackups: DefaultLogMaxBackups,
		MaxAge:     DefaultLogMaxAge,
	}
}

// Normalize sets default values for vital settings that haven't been set
func (cfg *LogConfig) Normalize() error {
	if cfg.MaxSize <= 0 {
		cfg.MaxSize = DefaultLogMaxSize
	}
	if cfg.MaxBackups <= 0 {
		cfg.MaxBackups = DefaultLogMaxBackups
	}
	if cfg.MaxAge <= 0 {
		cfg.MaxAge = DefaultLogMaxAge
	}
	return cfg.Validate()
}

// Validate checks the log configuration for errors
func (cfg *LogConfig) Validate() error {
	if cfg.File != "" && filepath.Base(cfg.File) == "." {
		return fmt.Errorf("invalid log file: %q", cfg.File)
	}
	return nil
}

// Writer returns a rotating writer for the log file, or nil if file logging
// is disabled
func (cfg *LogConfig) Writer() (io.WriteCloser, error) {
	if cfg == nil || cfg.File == "" {
		return nil, nil
	}

	if err := os.MkdirAll(filepath.Dir(cfg.File), 0755); err != nil {
		return nil, fmt.Errorf("failed to create log directory: %w", err)
	}

	return &lumberjack.Logger{
		Filename:   cfg.File,
		MaxSize:    cfg.MaxSize,
		MaxBackups: cfg.MaxBackups,
		MaxAge:     cfg.MaxAge,
		Compress:   cfg.Compress,
	}, nil
}

// LogSampleConfig returns a sample configuration for logging
func LogSampleConfig() string {
	return `# Logging configuration
log {
  file        = ""     # Log file, disabled when empty
  max_size    = 10     # Maximum size in MB before rotation
  max_backups = 3      # Number of old log files to keep
  max_age     = 28     # Days to keep old log files
  compress    = false  # Compress rotated log files with gzip
}`
}
