package command

import (
	"github.com/deppfellow/recordkit/internal/database"
	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"
)

func MigrateCommand() *cli.Command {
	return &cli.Command{
		Name:  "migrate",
		Usage: "Apply the embedded schema migrations",
		Action: func(cCtx *cli.Context) error {
			env, err := loadEnvironment()
			if err != nil {
				return err
			}
			defer env.Close()

			if err := database.Migrate(cCtx.Context, env.Logger, env.Config); err != nil {
				return errors.Wrap(err, "could not migrate database")
			}
			return nil
		},
	}
}
