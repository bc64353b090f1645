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
	companiesTable     = "companies"
	insertCompanyQuery = "INSERT INTO public.companies (id, name) VALUES ($1, $2)"
)

type CompanyRepository struct {
	db  DBTX
	gen identifier.Generator
	log *zerolog.Logger
}

func NewCompanyRepository(db DBTX, logger *zerolog.Logger) *CompanyRepository {
	return &CompanyRepository{db: db, gen: identifier.New, log: logger}
}

func (r *CompanyRepository) WithGenerator(gen identifier.Generator) *CompanyRepository {
	r.gen = gen
	return r
}

func (r *CompanyRepository) Insert(ctx context.Context, c model.Company) error {
	return r.InsertColumns(ctx, c.ID, c.Name)
}

func (r *CompanyRepository) InsertColumns(ctx context.Context, id uuid.UUID, name string) error {
	if _, err := r.db.Exec(ctx, insertCompanyQuery, id, name); err != nil {
		return sqlerr.HandleError("companies.insert", err)
	}

	loggerFrom(ctx, r.log).Debug().Str("entity", "company").Str("id", id.String()).Msg("inserted")
	return nil
}

func (r *CompanyRepository) Make(ctx context.Context, b *model.CompanyBuilder) (model.Company, error) {
	c, err := b.ApplyDefaults(r.gen).Build()
	if err != nil {
		return model.Company{}, err
	}

	if err := r.Insert(ctx, c); err != nil {
		return model.Company{}, err
	}
	return c, nil
}

func (r *CompanyRepository) SelectAll(ctx context.Context) ([]model.Company, error) {
	return selectJSON[model.Company](ctx, r.db, "companies.select", "company", selectStatement(companiesTable), nil)
}

func (r *CompanyRepository) Get(ctx context.Context, id uuid.UUID) (model.Company, error) {
	companies, err := selectJSON[model.Company](ctx, r.db, "companies.get", "company", selectStatement(companiesTable), id)
	if err != nil {
		return model.Company{}, err
	}
	if len(companies) == 0 {
		return model.Company{}, &errs.NotFoundError{Entity: "company", Key: id.String()}
	}
	return companies[0], nil
}

func (r *CompanyRepository) DeleteAll(ctx context.Context) (int64, error) {
	n, err := deleteAll(ctx, r.db, "companies.delete_all", companiesTable)
	if err != nil {
		return 0, err
	}

	loggerFrom(ctx, r.log).Debug().Str("entity", "company").Int64("deleted", n).Msg("deleted all")
	return n, nil
}
