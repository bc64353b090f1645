// Package command holds the recordkit command line: one cli.Command per
// record type plus migrate and status. Results are printed as JSON on the
// app writer; logs go to stderr.
package command

import (
	"fmt"
	"os"
	"sort"

	"github.com/rs/zerolog"
	"github.com/urfave/cli/v2"
)

const flagDebug = "debug"

// NewApp assembles the cli.App without running it.
func NewApp(name string, usage string, commands ...*cli.Command) *cli.App {
	app := &cli.App{
		Name:     name,
		Usage:    usage,
		Commands: commands,
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:    flagDebug,
				Value:   false,
				EnvVars: []string{"RECORDKIT_CLI_DEBUG"},
				Usage:   "Print error stack traces",
			},
		},
	}

	app.ExitErrHandler = func(cCtx *cli.Context, err error) {
		if err == nil {
			return
		}

		logger := zerolog.New(zerolog.ConsoleWriter{Out: cCtx.App.ErrWriter}).With().Timestamp().Logger()

		if !cCtx.Bool(flagDebug) {
			logger.Error().Msg(err.Error())
		} else {
			logger.Error().Msg(fmt.Sprintf("%+v", err))
		}
	}

	sort.Sort(cli.FlagsByName(app.Flags))
	sort.Sort(cli.CommandsByName(app.Commands))

	return app
}

// Main runs the app on os.Args and exits non-zero on failure.
func Main(name string, usage string, commands ...*cli.Command) {
	app := NewApp(name, usage, commands...)
	app.ErrWriter = os.Stderr

	if err := app.Run(os.Args); err != nil {
		os.Exit(1)
	}
}

// Commands returns every recordkit command.
func Commands() []*cli.Command {
	return []*cli.Command{
		MigrateCommand(),
		StatusCommand(),
		UsersCommand(),
		CompaniesCommand(),
		ContentCommand(),
	}
}
