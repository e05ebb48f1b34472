package pgsql

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/karyabangun/bizadmin/internal/apperrors"
	"github.com/karyabangun/bizadmin/internal/utils/pagination"
)

const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
)

// BaseRepository provides common functionality for all repositories
type BaseRepository struct {
	Pool *pgxpool.Pool
}

// Begin starts a new database transaction
func (r *BaseRepository) Begin(ctx context.Context) (pgx.Tx, error) {
	tx, err := r.Pool.Begin(ctx)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to begin transaction", err)
	}
	return tx, nil
}

// Commit commits a transaction
func (r *BaseRepository) Commit(ctx context.Context, tx pgx.Tx) error {
	if err := tx.Commit(ctx); err != nil {
		return apperrors.NewAppError(500, "failed to commit transaction", err)
	}
	return nil
}

// Rollback rolls back a transaction. Rolling back a finished transaction is a no-op.
func (r *BaseRepository) Rollback(ctx context.Context, tx pgx.Tx) error {
	if err := tx.Rollback(ctx); err != nil && !errors.Is(err, pgx.ErrTxClosed) {
		return apperrors.NewAppError(500, "failed to rollback transaction", err)
	}
	return nil
}

// inTx runs fn inside a transaction, committing when fn succeeds.
func (r *BaseRepository) inTx(ctx context.Context, fn func(tx pgx.Tx) error) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx) //nolint:errcheck

	if err := fn(tx); err != nil {
		return err
	}
	return r.Commit(ctx, tx)
}

// collect scans every row into M by column name.
func collect[M any](ctx context.Context, q interface {
	Query(context.Context, string, ...any) (pgx.Rows, error)
}, query string, args ...any) ([]M, error) {
	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, pgx.RowToStructByName[M])
}

// mapWriteError translates constraint violations into app errors.
func mapWriteError(err error, what string) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgUniqueViolation:
			return apperrors.NewConflictError(what + " already exists")
		case pgForeignKeyViolation:
			return apperrors.NewValidationFailedError(what + " references a missing record")
		}
	}
	return apperrors.NewAppError(500, "failed to write "+what, err)
}

func notFound(what string) error {
	return fmt.Errorf("%s: %w", what, apperrors.ErrNotFound)
}

// readError turns pgx.ErrNoRows into apperrors.ErrNotFound.
func readError(err error, what string) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return notFound(what)
	}
	return apperrors.NewAppError(500, "failed to read "+what, err)
}

// expectOne reports ErrNotFound when a write touched no rows.
func expectOne(tag pgconn.CommandTag, what string) error {
	if tag.RowsAffected() == 0 {
		return notFound(what)
	}
	return nil
}

// keysetClause appends the cursor condition for the (sortCol, created_at, id)
// descending order when nextToken is set. args is extended in place.
func keysetClause(nextToken *string, sortCol, idCol string, args *[]any) (string, error) {
	if nextToken == nil || *nextToken == "" {
		return "", nil
	}
	cursor, err := pagination.DecodeToken(*nextToken)
	if err != nil {
		return "", err
	}
	n := len(*args)
	*args = append(*args, cursor.SortDate, cursor.CreatedAt, cursor.ID)
	return fmt.Sprintf(" AND (%s, created_at, %s) < ($%d, $%d, $%d)", sortCol, idCol, n+1, n+2, n+3), nil
}

// limitClause appends LIMIT limit+1 so the caller can tell whether another page exists.
func limitClause(limit int, args *[]any) string {
	*args = append(*args, limit+1)
	return " LIMIT $" + strconv.Itoa(len(*args))
}
