package command

import (
	"github.com/deppfellow/recordkit/internal/model"
	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"
)

func ContentCommand() *cli.Command {
	return &cli.Command{
		Name:  "content",
		Usage: "Read and write content records",
		Subcommands: []*cli.Command{
			{
				Name:  "get",
				Usage: "Print the content stored under a key",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: flagKey, Usage: "Content key", Required: true},
				},
				Action: withSession(func(cCtx *cli.Context, s *session) error {
					content, err := s.Repos.Content.Get(cCtx.Context, cCtx.String(flagKey))
					if err != nil {
						return errors.WithStack(err)
					}
					return printJSON(cCtx, content)
				}),
			},
			{
				Name:  "set",
				Usage: "Store content, overwriting any previous value; unset fields get defaults",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: flagKey, Usage: "Content key, a new UUID when omitted"},
					&cli.StringFlag{Name: flagTitle, Usage: "Title"},
					&cli.StringFlag{Name: flagBody, Usage: "Body"},
				},
				Action: withSession(func(cCtx *cli.Context, s *session) error {
					b := model.NewContentBuilder()

					if cCtx.IsSet(flagKey) {
						b.SetKey(cCtx.String(flagKey))
					}
					if cCtx.IsSet(flagTitle) {
						b.SetTitle(cCtx.String(flagTitle))
					}
					if cCtx.IsSet(flagBody) {
						b.SetBody(cCtx.String(flagBody))
					}

					content, err := s.Repos.Content.Make(cCtx.Context, b)
					if err != nil {
						return errors.WithStack(err)
					}
					return printJSON(cCtx, content)
				}),
			},
		},
	}
}
