package sqlutil

import (
	"context"
	"database/sql"
	"fmt"
)

// TxBeginner is satisfied by *sql.DB
type TxBeginner interface {
	BeginTx(ctx context.Context, opts *sql.TxOptions) (*sql.Tx, error)
}

// Run executes fn with sqlc queries bound to a single transaction.
// The transaction commits when fn returns nil and rolls back otherwise.
func Run[T any](
	ctx context.Context,
	db TxBeginner,
	newQueries func(*sql.Tx) *T,
	fn func(q *T) error,
) error {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	if err := fn(newQueries(tx)); err != nil {
		_ = tx.Rollback()
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}
