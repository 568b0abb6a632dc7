package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/SscSPs/dre_backoffice/internal/apperrors"
	portsrepo "github.com/SscSPs/dre_backoffice/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// DBTX is the subset of pgxpool.Pool and pgx.Tx the repositories use.
type DBTX interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type txKey struct{}

// BaseRepository provides common functionality for all repositories
type BaseRepository struct {
	Pool *pgxpool.Pool
}

var _ portsrepo.TransactionManager = (*BaseRepository)(nil)

// db returns the transaction carried by ctx, or the pool.
func (r *BaseRepository) db(ctx context.Context) DBTX {
	if tx, ok := ctx.Value(txKey{}).(pgx.Tx); ok {
		return tx
	}
	return r.Pool
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

// Rollback rolls back a transaction
func (r *BaseRepository) Rollback(ctx context.Context, tx pgx.Tx) error {
	if err := tx.Rollback(ctx); err != nil && !errors.Is(err, pgx.ErrTxClosed) {
		return apperrors.NewAppError(500, "failed to rollback transaction", err)
	}
	return nil
}

// RunInTx runs fn inside a transaction. Calls made with a context that already
// carries a transaction join it.
func (r *BaseRepository) RunInTx(ctx context.Context, fn func(ctx context.Context) error) (err error) {
	if _, ok := ctx.Value(txKey{}).(pgx.Tx); ok {
		return fn(ctx)
	}

	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = r.Rollback(ctx, tx)
		}
	}()

	if err = fn(context.WithValue(ctx, txKey{}, tx)); err != nil {
		return err
	}
	return r.Commit(ctx, tx)
}

// mapWriteError translates constraint violations into application errors.
func mapWriteError(err error, what string) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case "23505": // unique_violation
			return fmt.Errorf("%w: %s already exists", apperrors.ErrDuplicate, what)
		case "23503": // foreign_key_violation
			return fmt.Errorf("%w: %s references a missing record (%s)", apperrors.ErrNotFound, what, pgErr.ConstraintName)
		case "23514": // check_violation
			return fmt.Errorf("%w: %s violates %s", apperrors.ErrValidation, what, pgErr.ConstraintName)
		case "22003": // numeric_value_out_of_range
			return fmt.Errorf("%w: %s has a value out of range", apperrors.ErrValidation, what)
		}
	}
	return fmt.Errorf("failed to write %s: %w", what, err)
}

// collectOne returns the single row of a query or ErrNotFound.
func collectOne[T any](rows pgx.Rows, what string) (*T, error) {
	item, err := pgx.CollectExactlyOneRow(rows, pgx.RowToStructByName[T])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to collect %s row: %w", what, err)
	}
	return &item, nil
}
