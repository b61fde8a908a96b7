// Package inspect implements the parse, format and convert commands.
package inspect

import (
	"fmt"
	"strconv"

	"github.com/dustin/go-humanize"
	"github.com/nmeilick/durflex/common/lenient"
	"github.com/nmeilick/durflex/config"
	"github.com/nmeilick/durflex/duration"
	"github.com/nmeilick/durflex/response"
	"github.com/urfave/cli/v2"
)

// Commands returns the CLI commands for inspecting durations
func Commands() []*cli.Command {
	return []*cli.Command{
		{
			Name:      "parse",
			Aliases:   []string{"p"},
			Usage:     "Parse durations and print their canonical form",
			ArgsUsage: "DURATION...",
			Action:    runParse,
		},
		{
			Name:      "format",
			Aliases:   []string{"f"},
			Usage:     "Format whole-second counts as durations",
			ArgsUsage: "SECONDS...",
			Action:    runFormat,
		},
		{
			Name:      "convert",
			Usage:     "Convert loosely written durations (e.g. 1.5h, 2500ms) to canonical form",
			ArgsUsage: "EXPR...",
			Action:    runConvert,
		},
	}
}

func runParse(c *cli.Context) error {
	return run(c, func(arg string) (duration.Duration, error) {
		return duration.Parse(arg)
	})
}

func runFormat(c *cli.Context) error {
	return run(c, func(arg string) (duration.Duration, error) {
		secs, err := strconv.ParseInt(arg, 10, 64)
		if err != nil {
			return duration.Duration{}, fmt.Errorf("invalid seconds %q: %w", arg, err)
		}
		if secs < 0 {
			return duration.Duration{}, fmt.Errorf("%w: %d", duration.ErrNegative, secs)
		}
		return duration.FromSeconds(secs), nil
	})
}

func runConvert(c *cli.Context) error {
	return run(c, lenient.Parse)
}

// run applies fn to every argument and prints the results
func run(c *cli.Context, fn func(string) (duration.Duration, error)) error {
	cfg, log, err := config.Load(c)
	if err != nil {
		return err
	}

	format, err := cfg.OutputFormat(c)
	if err != nil {
		return err
	}

	if c.NArg() == 0 {
		return fmt.Errorf("%s: at least one argument is required", c.Command.Name)
	}

	results := make([]response.ParseResult, 0, c.NArg())
	tbl := response.Table{Header: []string{"Input", "Canonical", "Seconds", "Human"}}
	for _, arg := range c.Args().Slice() {
		d, err := fn(arg)
		if err != nil {
			log.Error().Err(err).Str("input", arg).Msg("Failed to read duration")
			return err
		}
		log.Debug().Str("input", arg).Int64("seconds", d.Seconds()).Msg("Duration read")

		res := response.NewParseResult(arg, d, lenient.Human(d))
		results = append(results, res)
		tbl.Rows = append(tbl.Rows, []string{arg, d.String(), humanize.Comma(d.Seconds()), res.Human})
	}

	return response.Render(c.App.Writer, format, results, tbl)
}
