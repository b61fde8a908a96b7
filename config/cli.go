package config

import (
	"github.com/nmeilick/durflex/common"
	"github.com/rs/zerolog"
	"github.com/urfave/cli/v2"
)

// Load loads the configuration for a command and creates its logger. The
// logger is usable even when loading fails.
func Load(c *cli.Context) (*Config, zerolog.Logger, error) {
	cfg, path, err := LoadConfig(c)
	if err != nil {
		log := common.NewLogger(c, nil)
		log.Error().Err(err).Str("path", path).Msg("Failed to load configuration")
		return nil, log, err
	}

	w, err := cfg.Log.Writer()
	if err != nil {
		log := common.NewLogger(c, nil)
		log.Error().Err(err).Str("file", cfg.Log.File).Msg("Failed to open log file")
		return nil, log, err
	}

	log := common.NewLogger(c, w)
	log.Debug().Str("path", path).Msg("Configuration loaded")

	return cfg, log, nil
}

// OutputFormat returns the format selected by the output flag or the config
func (cfg *Config) OutputFormat(c *cli.Context) (string, error) {
	format := c.String("output")
	if format == "" {
		format = cfg.Defaults.Output
	}
	return format, ValidateOutput(format)
}
