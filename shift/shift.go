// Package shift implements timestamp arithmetic on the command line.
package shift

import (
	"fmt"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/nmeilick/durflex/common"
	"github.com/nmeilick/durflex/config"
	"github.com/nmeilick/durflex/duration"
	"github.com/nmeilick/durflex/duration/cliflag"
	"github.com/nmeilick/durflex/response"
	"github.com/urfave/cli/v2"
)

const (
	directionForward  = "forward"
	directionBackward = "backward"
)

var envFrom = common.EnvPrefix + "FROM"

// Now is the clock used when no start time is given
var Now = time.Now

// Commands returns the CLI command for shifting timestamps
func Commands() *cli.Command {
	return &cli.Command{
		Name:      "shift",
		Aliases:   []string{"s"},
		Usage:     "Add a duration to (or subtract it from) a timestamp",
		ArgsUsage: "[DURATION]",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "from",
				Aliases: []string{"f"},
				EnvVars: []string{envFrom},
				Usage:   "Start time in the configured time format, or \"now\"",
				Value:   "now",
			},
			cliflag.Flag("offset", "Duration to apply, overrides the configured default", duration.Duration{}, "o"),
			&cli.BoolFlag{
				Name:    "subtract",
				Aliases: []string{"b"},
				Usage:   "Move backward in time",
			},
		},
		Action: runShift,
	}
}

func runShift(c *cli.Context) error {
	cfg, log, err := config.Load(c)
	if err != nil {
		return err
	}

	format, err := cfg.OutputFormat(c)
	if err != nil {
		return err
	}

	offset, err := selectOffset(c, cfg)
	if err != nil {
		log.Error().Err(err).Msg("Invalid offset")
		return err
	}

	loc := cfg.Defaults.GetLocation()
	from, err := parseFrom(c.String("from"), cfg.Defaults.TimeFormat, loc)
	if err != nil {
		log.Error().Err(err).Str("from", c.String("from")).Msg("Invalid start time")
		return err
	}

	res, err := Shift(from, offset, c.Bool("subtract"))
	if err != nil {
		log.Error().Err(err).Time("from", from).Str("offset", offset.String()).Msg("Failed to shift timestamp")
		return err
	}
	res.Relative = humanize.Time(res.To)
	log.Info().
		Time("from", res.From).
		Str("offset", offset.String()).
		Str("direction", res.Direction).
		Time("to", res.To).
		Msg("Shifted timestamp")

	tbl := response.Table{
		Header: []string{"From", "Offset", "Direction", "To", "Relative"},
		Rows: [][]string{{
			res.From.Format(cfg.Defaults.TimeFormat),
			offset.String(),
			res.Direction,
			res.To.Format(cfg.Defaults.TimeFormat),
			res.Relative,
		}},
	}

	return response.Render(c.App.Writer, format, res, tbl)
}

// Shift moves from by offset, backward if subtract is set
func Shift(from time.Time, offset duration.Duration, subtract bool) (response.ShiftResult, error) {
	res := response.ShiftResult{From: from, Offset: offset, Direction: directionForward}

	var err error
	if subtract {
		res.Direction = directionBackward
		res.To, err = offset.SubFrom(from)
	} else {
		res.To, err = offset.AddTo(from)
	}
	if err != nil {
		return response.ShiftResult{}, err
	}
	return res, nil
}

// selectOffset picks the offset from the argument, the flag or the config,
// in that order
func selectOffset(c *cli.Context, cfg *config.Config) (duration.Duration, error) {
	if c.NArg() > 1 {
		return duration.Duration{}, fmt.Errorf("expected at most one duration, got %d", c.NArg())
	}
	if c.NArg() == 1 {
		return cliflag.FromArg(c.Args().First())
	}
	if c.IsSet("offset") {
		return cliflag.Get(c, "offset"), nil
	}
	return cfg.Defaults.GetOffset(), nil
}

// parseFrom reads the start time. Values without a zone are placed in loc.
func parseFrom(s, layout string, loc *time.Location) (time.Time, error) {
	if s == "" || s == "now" {
		return Now().In(loc), nil
	}

	t, err := time.ParseInLocation(layout, s, loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid start time %q: %w", s, err)
	}
	return t, nil
}
