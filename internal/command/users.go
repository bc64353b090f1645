package command

import (
	"github.com/deppfellow/recordkit/internal/model"
	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"
)

func UsersCommand() *cli.Command {
	return &cli.Command{
		Name:  "users",
		Usage: "Manage user records",
		Subcommands: []*cli.Command{
			{
				Name:  "list",
				Usage: "Print every user",
				Action: withSession(func(cCtx *cli.Context, s *session) error {
					users, err := s.Repos.Users.SelectAll(cCtx.Context)
					if err != nil {
						return errors.WithStack(err)
					}
					return printJSON(cCtx, users)
				}),
			},
			{
				Name:  "get",
				Usage: "Print one user",
				Flags: []cli.Flag{idFlag(true)},
				Action: withSession(func(cCtx *cli.Context, s *session) error {
					id, err := parseID(cCtx)
					if err != nil {
						return err
					}

					user, err := s.Repos.Users.Get(cCtx.Context, id)
					if err != nil {
						return errors.WithStack(err)
					}
					return printJSON(cCtx, user)
				}),
			},
			{
				Name:  "make",
				Usage: "Insert a user; unset fields get defaults",
				Flags: []cli.Flag{
					idFlag(false),
					&cli.StringFlag{Name: flagName, Usage: "User name"},
					&cli.StringFlag{Name: flagEmail, Usage: "E-mail address, defaults to {name}@example.com"},
					&cli.StringFlag{Name: flagKind, Usage: "User kind: Normal or Admin"},
				},
				Action: withSession(makeUser),
			},
			{
				Name:  "purge",
				Usage: "Delete every user",
				Action: withSession(func(cCtx *cli.Context, s *session) error {
					n, err := s.Repos.Users.DeleteAll(cCtx.Context)
					if err != nil {
						return errors.WithStack(err)
					}
					return printJSON(cCtx, purgeResult{Deleted: n})
				}),
			},
		},
	}
}

func makeUser(cCtx *cli.Context, s *session) error {
	b := model.NewUserBuilder()

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
	if cCtx.IsSet(flagEmail) {
		b.SetEmail(cCtx.String(flagEmail))
	}

	var (
		user model.User
		err  error
	)

	if !cCtx.IsSet(flagKind) {
		user, err = s.Repos.Users.Make(cCtx.Context, b)
	} else {
		kind, parseErr := model.ParseUserKind(cCtx.String(flagKind))
		if parseErr != nil {
			return errors.WithStack(parseErr)
		}

		switch kind {
		case model.UserKindAdmin:
			user, err = s.Repos.Users.MakeAdmin(cCtx.Context, b)
		default:
			user, err = s.Repos.Users.MakeNormal(cCtx.Context, b)
		}
	}
	if err != nil {
		return errors.WithStack(err)
	}

	return printJSON(cCtx, user)
}
