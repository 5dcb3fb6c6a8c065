// Package repo contains all database access logic for the canteen backend.
// Each resource has its own file with an interface and a Postgres implementation.
// No business logic lives here, only SQL and type mapping.
package repo

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/campuscanteen/backend/internal/domain"
)

// db is the minimal interface satisfied by *pgxpool.Pool, pgx.Conn, and pgx.Tx.
// Accepting this interface instead of *pgxpool.Pool directly allows integration
// tests to pass a transaction that is rolled back after each test.
// Begin lets listings open their own short transaction (a savepoint inside a tx).
type db interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Begin(ctx context.Context) (pgx.Tx, error)
}

// getOne runs q and maps exactly one row onto T by column name.
// No rows becomes domain.ErrNotFound.
func getOne[T any](ctx context.Context, db db, q string, args ...any) (T, error) {
	var zero T
	rows, err := db.Query(ctx, q, args...)
	if err != nil {
		return zero, mapPgError(err)
	}
	out, err := pgx.CollectExactlyOneRow(rows, pgx.RowToStructByName[T])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return zero, domain.ErrNotFound
		}
		return zero, mapPgError(err)
	}
	return out, nil
}

// execOne runs a statement expected to touch exactly one row.
// Zero rows affected becomes domain.ErrNotFound.
func execOne(ctx context.Context, db db, q string, args ...any) error {
	tag, err := db.Exec(ctx, q, args...)
	if err != nil {
		return mapPgError(err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// mapPgError translates the Postgres error codes handlers care about into
// domain errors; everything else passes through unchanged.
func mapPgError(err error) error {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return err
	}
	switch pgErr.Code {
	case pgerrcode.UniqueViolation:
		return fmt.Errorf("%w: %s already exists", domain.ErrConflict, constraintSubject(pgErr))
	case pgerrcode.ForeignKeyViolation:
		return fmt.Errorf("%w: %s", domain.ErrConflict, foreignKeyMessage(pgErr))
	case pgerrcode.CheckViolation:
		return fmt.Errorf("%w: %s", domain.ErrValidation, pgErr.ConstraintName)
	}
	return err
}

func constraintSubject(e *pgconn.PgError) string {
	if e.TableName != "" {
		return e.TableName + " entry"
	}
	return "entry"
}

// foreignKeyMessage distinguishes "parent is missing" on insert from
// "children still exist" on delete.
func foreignKeyMessage(e *pgconn.PgError) string {
	if e.TableName != "" && e.ConstraintName != "" {
		return fmt.Sprintf("%s references missing or dependent rows (%s)", e.TableName, e.ConstraintName)
	}
	return "referenced rows missing or still in use"
}
