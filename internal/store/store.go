// Package store is the pgx-backed persistence layer. Each mutating aggregate
// operation runs inside a single transaction; everything commits or nothing
// does. Stores return nil for absent rows and classify unique violations;
// every other failure comes back raw for the service layer to wrap.
package store

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Queryer is the subset of pgx shared by *pgxpool.Pool and pgx.Tx, so the
// same SQL helpers run inside and outside a transaction.
type Queryer interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// inTx is the unit of work: fn either commits as a whole or every write it
// made is rolled back, and the originating error is returned untouched.
func inTx(ctx context.Context, pool *pgxpool.Pool, fn func(q Queryer) error) error {
	tx, err := pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	if err := fn(tx); err != nil {
		return err
	}

	return tx.Commit(ctx)
}

// uniqueViolation reports whether err is a Postgres unique violation and on
// which constraint.
func uniqueViolation(err error) (string, bool) {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return pgErr.ConstraintName, true
	}
	return "", false
}
