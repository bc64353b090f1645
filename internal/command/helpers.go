package command

import (
	"github.com/deppfellow/recordkit/internal/identifier"
	"github.com/deppfellow/recordkit/internal/lib/utils"
	"github.com/deppfellow/recordkit/internal/logger"
	"github.com/google/uuid"
	"github.com/newrelic/go-agent/v3/integrations/nrpkgerrors"
	"github.com/newrelic/go-agent/v3/newrelic"
	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"
)

const (
	flagID    = "id"
	flagName  = "name"
	flagEmail = "email"
	flagKind  = "kind"
	flagKey   = "key"
	flagTitle = "title"
	flagBody  = "body"
)

// withSession opens the stores for the duration of one action.
//
// The action's context carries a logger tagged with the command name and
// an invocation id; repositories log through it. With New Relic enabled
// the action also runs inside a transaction so database and redis
// segments are grouped per invocation.
func withSession(action func(cCtx *cli.Context, s *session) error) cli.ActionFunc {
	return func(cCtx *cli.Context) error {
		s, err := openSession(cCtx.Context)
		if err != nil {
			return err
		}
		defer s.Close()

		name := cCtx.Command.FullName()
		ctx := cCtx.Context

		invocationLogger := s.Logger.With().
			Str("command", name).
			Str("invocation_id", identifier.New().String()).
			Logger()

		var txn *newrelic.Transaction
		if app := s.LoggerService.GetApplication(); app != nil {
			txn = app.StartTransaction(name)
			defer txn.End()

			txn.AddAttribute("command", name)
			ctx = newrelic.NewContext(ctx, txn)
			invocationLogger = logger.WithTraceContext(invocationLogger, txn)
		}

		cCtx.Context = invocationLogger.WithContext(ctx)

		err = action(cCtx, s)
		if err != nil && txn != nil {
			txn.NoticeError(nrpkgerrors.Wrap(err))
		}
		return err
	}
}

func printJSON(cCtx *cli.Context, v any) error {
	if err := utils.PrintJSON(cCtx.App.Writer, v); err != nil {
		return errors.Wrap(err, "could not print result")
	}
	return nil
}

func idFlag(required bool) *cli.StringFlag {
	return &cli.StringFlag{
		Name:     flagID,
		Usage:    "Record id (UUID)",
		Required: required,
	}
}

func parseID(cCtx *cli.Context) (uuid.UUID, error) {
	raw := cCtx.String(flagID)

	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, errors.Wrapf(err, "invalid id '%s'", raw)
	}
	return id, nil
}

type purgeResult struct {
	Deleted int64 `json:"deleted"`
}
