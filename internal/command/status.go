package command

import (
	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"
)

func StatusCommand() *cli.Command {
	return &cli.Command{
		Name:  "status",
		Usage: "Ping PostgreSQL and Redis and print a health report",
		Action: withSession(func(cCtx *cli.Context, s *session) error {
			report := s.Health(cCtx.Context)

			if err := printJSON(cCtx, report); err != nil {
				return err
			}

			if !report.Healthy() {
				return errors.New("one or more stores are unhealthy")
			}
			return nil
		}),
	}
}
