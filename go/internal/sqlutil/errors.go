package sqlutil

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/lib/pq"
)

const (
	uniqueViolation     = "23505"
	foreignKeyViolation = "23503"
)

// IsUniqueViolation reports whether err comes from a unique index,
// whichever driver (lib/pq or pgx) produced it.
func IsUniqueViolation(err error) bool {
	return sqlState(err) == uniqueViolation
}

// IsForeignKeyViolation reports whether err comes from a foreign key constraint
func IsForeignKeyViolation(err error) bool {
	return sqlState(err) == foreignKeyViolation
}

func sqlState(err error) string {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return string(pqErr.Code)
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}
	return ""
}
