package setup

import (
	"fmt"
	"os"

	"github.com/nmeilick/durflex"
	"github.com/nmeilick/durflex/config"
	"github.com/urfave/cli/v2"
)

// Commands returns the CLI commands for the main program
func Commands() *cli.Command {
	return &cli.Command{
		Name:  "setup",
		Usage: "Perform setup tasks",
		Subcommands: []*cli.Command{
			{
				Name:   "sample-config",
				Usage:  "Print a sample configuration file to stdout",
				Action: runSampleConfig,
			},
			{
				Name:   "embedded-config",
				Usage:  "Print the embedded configuration to stdout",
				Action: runEmbeddedConfig,
			},
			{
				Name:   "config-path",
				Usage:  "Print the configuration file that would be used",
				Action: runConfigPath,
			},
		},
	}
}

func runSampleConfig(c *cli.Context) error {
	fmt.Fprint(c.App.Writer, config.SampleConfig())
	return nil
}

func runEmbeddedConfig(c *cli.Context) error {
	if len(durflex.EmbeddedConfig) == 0 {
		fmt.Fprintln(os.Stderr, "Error: No embedded default configuration found.")
		return fmt.Errorf("no embedded configuration available")
	}

	fmt.Fprint(c.App.Writer, string(durflex.EmbeddedConfig))
	return nil
}

func runConfigPath(c *cli.Context) error {
	path := c.String("config")
	if path == "" {
		path = config.FindConfigFile()
	}
	if path == "" {
		path = config.EmbeddedPath
	}
	fmt.Fprintln(c.App.Writer, path)
	return nil
}
