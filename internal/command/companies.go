package command

import (
	"github.com/deppfellow/recordkit/internal/model"
	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"
)

func CompaniesCommand() *cli.Command {
	return &cli.Command{
		Name:  "companies",
		Usage: "Manage company records",
		Subcommands: []*cli.Command{
			{
				Name:  "list",
				Usage: "Print every company",
				Action: withSession(func(cCtx *cli.Context, s *session) error {
					companies, err := s.Repos.Companies.SelectAll(cCtx.Context)
					if err != nil {
						return errors.WithStack(err)
					}
					return printJSON(cCtx, companies)
				}),
			},
			{
				Name:  "get",
				Usage: "Print one company",
				Flags: []cli.Flag{idFlag(true)},
				Action: withSession(func(cCtx *cli.Context, s *session) error {
					id, err := parseID(cCtx)
					if err != nil {
						return err
					}

					company, err := s.Repos.Companies.Get(cCtx.Context, id)
					if err != nil {
						return errors.WithStack(err)
					}
					return printJSON(cCtx, company)
				}),
			},
			{
				Name:  "make",
				Usage: "Insert a company; unset fields get defaults",
				Flags: []cli.Flag{
					idFlag(false),
					&cli.StringFlag{Name: flagName, Usage: "Company name"},
				},
				Action: withSession(func(cCtx *cli.Context, s *session) error {
					b := model.NewCompanyBuilder()

					if cCtx.IsSet(flagID) {
						id, err := parseID(cCtx)
						if err != nil {
							return err
						}
						b.SetID(id)
					}
					if cCtx.IsSet(flagName) {
						b.SetName(cCtx.String(flagName))
					}

					company, err := s.Repos.Companies.Make(cCtx.Context, b)
					if err != nil {
						return errors.WithStack(err)
					}
					return printJSON(cCtx, company)
				}),
			},
			{
				Name:  "purge",
				Usage: "Delete every company",
				Action: withSession(func(cCtx *cli.Context, s *session) error {
					n, err := s.Repos.Companies.DeleteAll(cCtx.Context)
					if err != nil {
						return errors.WithStack(err)
					}
					return printJSON(cCtx, purgeResult{Deleted: n})
				}),
			},
		},
	}
}
