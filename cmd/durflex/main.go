package main

import (
	"os"
	_ "time/tzdata" // Embed timezone data

	"github.com/nmeilick/durflex/alias"
	"github.com/nmeilick/durflex/common"
	"github.com/nmeilick/durflex/inspect"
	"github.com/nmeilick/durflex/setup"
	"github.com/nmeilick/durflex/shift"
	"github.com/urfave/cli/v2"
)

func main() {
	if err := NewApp().Run(os.Args); err != nil {
		common.ExitWithError(err)
	}
}

// NewApp builds the command-line application
func NewApp() *cli.App {
	commands := inspect.Commands()
	commands = append(commands,
		shift.Commands(),
		alias.Commands(),
		setup.Commands(),
	)

	return &cli.App{
		Name:    common.AppName,
		Usage:   "Parse, format and apply durations like 1w6d23h49m59s",
		Version: common.Version + " (" + common.Commit + ", " + common.BuildDate + ")",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				EnvVars: []string{common.EnvPrefix + "CONFIG"},
				Usage:   "Path to config file",
			},
			&cli.StringFlag{
				Name:    "output",
				Aliases: []string{"O"},
				EnvVars: []string{common.EnvPrefix + "OUTPUT"},
				Usage:   "Output format (table, json, yaml), overrides the config",
			},
			&cli.BoolFlag{
				Name:  "verbose",
				Usage: "Log informational messages",
			},
			&cli.BoolFlag{
				Name:  "debug",
				Usage: "Log debug messages",
			},
		},
		Commands: commands,
	}
}
