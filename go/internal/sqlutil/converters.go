package sqlutil

import "database/sql"

// ToNullString maps "" to NULL for optional text columns
func ToNullString(val string) sql.NullString {
	if val == "" {
		return sql.NullString{Valid: false}
	}
	return sql.NullString{String: val, Valid: true}
}

// FromNullString converts sql.NullString to Go string, NULL becoming ""
func FromNullString(val sql.NullString) string {
	if !val.Valid {
		return ""
	}
	return val.String
}
