package repository

import (
	"context"

	"github.com/deppfellow/recordkit/internal/errs"
	"github.com/deppfellow/recordkit/internal/identifier"
	"github.com/deppfellow/recordkit/internal/model"
	"github.com/deppfellow/recordkit/internal/sqlerr"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

const (
	usersTable      = "users"
	insertUserQuery = "INSERT INTO public.users (id, name, email, kind) VALUES ($1, $2, $3, $4)"
)

type UserRepository struct {
	db  DBTX
	gen identifier.Generator
	log *zerolog.Logger
}

func NewUserRepository(db DBTX, logger *zerolog.Logger) *UserRepository {
	return &UserRepository{db: db, gen: identifier.New, log: logger}
}

// WithGenerator replaces the id source used by Make.
func (r *UserRepository) WithGenerator(gen identifier.Generator) *UserRepository {
	r.gen = gen
	return r
}

// Insert writes u as is. No defaults are applied.
func (r *UserRepository) Insert(ctx context.Context, u model.User) error {
	return r.InsertColumns(ctx, u.ID, u.Name, u.Email, u.Kind)
}

// InsertColumns writes one user from individual column values.
func (r *UserRepository) InsertColumns(ctx context.Context, id uuid.UUID, name, email string, kind model.UserKind) error {
	if _, err := r.db.Exec(ctx, insertUserQuery, id, name, email, kind); err != nil {
		return sqlerr.HandleError("users.insert", err)
	}

	loggerFrom(ctx, r.log).Debug().
		Str("entity", "user").
		Str("id", id.String()).
		Str("kind", kind.String()).
		Msg("inserted")
	return nil
}

// Make fills unset fields of b, builds the user and inserts it.
func (r *UserRepository) Make(ctx context.Context, b *model.UserBuilder) (model.User, error) {
	u, err := b.ApplyDefaults(r.gen).Build()
	if err != nil {
		return model.User{}, err
	}

	if err := r.Insert(ctx, u); err != nil {
		return model.User{}, err
	}
	return u, nil
}

// MakeNormal forces kind to Normal, then behaves like Make.
func (r *UserRepository) MakeNormal(ctx context.Context, b *model.UserBuilder) (model.User, error) {
	return r.Make(ctx, b.SetKind(model.UserKindNormal))
}

// MakeAdmin forces kind to Admin, then behaves like Make.
func (r *UserRepository) MakeAdmin(ctx context.Context, b *model.UserBuilder) (model.User, error) {
	return r.Make(ctx, b.SetKind(model.UserKindAdmin))
}

// SelectAll returns every stored user; order is unspecified.
func (r *UserRepository) SelectAll(ctx context.Context) ([]model.User, error) {
	return selectJSON[model.User](ctx, r.db, "users.select", "user", selectStatement(usersTable), nil)
}

func (r *UserRepository) Get(ctx context.Context, id uuid.UUID) (model.User, error) {
	users, err := selectJSON[model.User](ctx, r.db, "users.get", "user", selectStatement(usersTable), id)
	if err != nil {
		return model.User{}, err
	}
	if len(users) == 0 {
		return model.User{}, &errs.NotFoundError{Entity: "user", Key: id.String()}
	}
	return users[0], nil
}

// DeleteAll removes every user and returns how many rows were deleted.
func (r *UserRepository) DeleteAll(ctx context.Context) (int64, error) {
	n, err := deleteAll(ctx, r.db, "users.delete_all", usersTable)
	if err != nil {
		return 0, err
	}

	loggerFrom(ctx, r.log).Debug().Str("entity", "user").Int64("deleted", n).Msg("deleted all")
	return n, nil
}
