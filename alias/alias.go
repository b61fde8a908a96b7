// Package alias implements commands that manage named durations.
package alias

import (
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/nmeilick/durflex/config"
	"github.com/nmeilick/durflex/duration/cliflag"
	"github.com/nmeilick/durflex/response"
	"github.com/nmeilick/durflex/store"
	"github.com/rs/zerolog"
	"github.com/urfave/cli/v2"
)

// Commands returns the CLI commands for the alias store
func Commands() *cli.Command {
	return &cli.Command{
		Name:  "alias",
		Usage: "Manage named durations",
		Subcommands: []*cli.Command{
			{
				Name:      "set",
				Usage:     "Store a duration under a name",
				ArgsUsage: "NAME DURATION",
				Action:    runSet,
			},
			{
				Name:      "get",
				Usage:     "Print a stored duration",
				ArgsUsage: "NAME",
				Action:    runGet,
			},
			{
				Name:    "list",
				Aliases: []string{"ls"},
				Usage:   "List all stored durations",
				Action:  runList,
			},
			{
				Name:      "rm",
				Aliases:   []string{"delete"},
				Usage:     "Remove a stored duration",
				ArgsUsage: "NAME",
				Action:    runDelete,
			},
		},
	}
}

// withStore loads the configuration, opens the store and runs fn
func withStore(c *cli.Context, nargs int, fn func(*config.Config, zerolog.Logger, *store.Store) error) error {
	if c.NArg() != nargs {
		return fmt.Errorf("%s: expected %d argument(s), got %d", c.Command.Name, nargs, c.NArg())
	}

	cfg, log, err := config.Load(c)
	if err != nil {
		return err
	}

	s, err := store.Open(cfg.Store.Path)
	if err != nil {
		log.Error().Err(err).Str("path", cfg.Store.Path).Msg("Failed to open alias store")
		return err
	}
	defer s.Close()

	return fn(cfg, log, s)
}

func runSet(c *cli.Context) error {
	return withStore(c, 2, func(cfg *config.Config, log zerolog.Logger, s *store.Store) error {
		name, arg := c.Args().Get(0), c.Args().Get(1)
		d, err := cliflag.FromArg(arg)
		if err != nil {
			log.Error().Err(err).Str("input", arg).Msg("Invalid duration")
			return err
		}

		if err := s.Set(c.Context, name, d); err != nil {
			return err
		}
		log.Info().Str("name", name).Str("duration", d.String()).Msg("Alias stored")
		return nil
	})
}

func runGet(c *cli.Context) error {
	return withStore(c, 1, func(cfg *config.Config, log zerolog.Logger, s *store.Store) error {
		a, err := s.Get(c.Context, c.Args().First())
		if err != nil {
			return err
		}
		return render(c, cfg, []store.Alias{a})
	})
}

func runList(c *cli.Context) error {
	return withStore(c, 0, func(cfg *config.Config, log zerolog.Logger, s *store.Store) error {
		aliases, err := s.List(c.Context)
		if err != nil {
			return err
		}
		log.Debug().Int("count", len(aliases)).Msg("Aliases listed")
		return render(c, cfg, aliases)
	})
}

func runDelete(c *cli.Context) error {
	return withStore(c, 1, func(cfg *config.Config, log zerolog.Logger, s *store.Store) error {
		name := c.Args().First()
		if err := s.Delete(c.Context, name); err != nil {
			return err
		}
		log.Info().Str("name", name).Msg("Alias removed")
		return nil
	})
}

func render(c *cli.Context, cfg *config.Config, aliases []store.Alias) error {
	format, err := cfg.OutputFormat(c)
	if err != nil {
		return err
	}

	docs := make([]response.Alias, 0, len(aliases))
	tbl := response.Table{Header: []string{"Name", "Duration", "Seconds", "Updated"}}
	for _, a := range aliases {
		docs = append(docs, response.Alias{
			Name:     a.Name,
			Duration: a.Duration,
			Seconds:  a.Duration.Seconds(),
			Updated:  a.Updated,
		})
		tbl.Rows = append(tbl.Rows, []string{
			a.Name,
			a.Duration.String(),
			humanize.Comma(a.Duration.Seconds()),
			humanize.Time(a.Updated),
		})
	}

	return response.Render(c.App.Writer, format, docs, tbl)
}
