package schema

import (
	"context"
	"database/sql"
	_ "embed"
	"fmt"

	"github.com/rs/zerolog/log"
)

//go:embed schema.sql
var DDL string

// Execer is satisfied by *sql.DB and *sql.Tx
type Execer interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

// Apply creates every table and index that does not exist yet.
// The DDL is idempotent, so Apply is safe to run on each deploy.
func Apply(ctx context.Context, db Execer) error {
	if _, err := db.ExecContext(ctx, DDL); err != nil {
		return fmt.Errorf("failed to apply schema: %w", err)
	}
	log.Info().Msg("Database schema is up to date")
	return nil
}
