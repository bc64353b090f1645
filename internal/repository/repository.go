// Package repository holds the data-access operations for users,
// companies and content records.
//
// SQL is written inline; every statement runs as a single round-trip on
// the caller's context. Driver errors are converted through sqlerr into
// *errs.StoreError, payload mismatches become *errs.DecodeError.
package repository

import (
	"context"
	"time"

	"github.com/deppfellow/recordkit/internal/errs"
	"github.com/deppfellow/recordkit/internal/model"
	"github.com/deppfellow/recordkit/internal/sqlerr"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
)

// DBTX is the relational store contract. *pgxpool.Pool, *pgx.Conn and
// pgx.Tx all satisfy it.
type DBTX interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
}

// KV is the key-value store contract, satisfied by *redis.Client.
type KV interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Set(ctx context.Context, key string, value any, expiration time.Duration) *redis.StatusCmd
}

// loggerFrom prefers the invocation logger stored in ctx by the caller
// and falls back to the repository's own logger, or a no-op logger when
// the repository was built without one.
func loggerFrom(ctx context.Context, fallback *zerolog.Logger) *zerolog.Logger {
	if l := zerolog.Ctx(ctx); l.GetLevel() != zerolog.Disabled {
		return l
	}
	if fallback == nil {
		nop := zerolog.Nop()
		return &nop
	}
	return fallback
}

// selectStatement returns every row of table as one JSON object per row.
// A NULL $1 selects all rows, otherwise only the row with that id.
func selectStatement(table string) string {
	return "SELECT to_json(t1.*) FROM public." + table + " AS t1 WHERE $1::UUID IS NULL OR t1.id = $1::UUID"
}

func deleteStatement(table string) string {
	return "DELETE FROM public." + table
}

// selectJSON runs a select statement and strictly decodes each row.
// One undecodable row fails the whole call.
func selectJSON[T any](ctx context.Context, db DBTX, op, entity, sql string, id any) ([]T, error) {
	rows, err := db.Query(ctx, sql, id)
	if err != nil {
		return nil, sqlerr.HandleError(op, err)
	}
	defer rows.Close()

	var out []T
	for rows.Next() {
		var payload []byte
		if err := rows.Scan(&payload); err != nil {
			return nil, sqlerr.HandleError(op, err)
		}

		var v T
		if err := model.DecodeStrict(payload, &v); err != nil {
			return nil, &errs.DecodeError{Entity: entity, Payload: string(payload), Cause: err}
		}
		out = append(out, v)
	}

	if err := rows.Err(); err != nil {
		return nil, sqlerr.HandleError(op, err)
	}

	if out == nil {
		out = []T{}
	}
	return out, nil
}

func deleteAll(ctx context.Context, db DBTX, op, table string) (int64, error) {
	tag, err := db.Exec(ctx, deleteStatement(table))
	if err != nil {
		return 0, sqlerr.HandleError(op, err)
	}
	return tag.RowsAffected(), nil
}
