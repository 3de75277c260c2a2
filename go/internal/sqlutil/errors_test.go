package sqlutil

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
)

func TestIsUniqueViolation(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"lib/pq unique", &pq.Error{Code: "23505"}, true},
		{"pgx unique", &pgconn.PgError{Code: "23505"}, true},
		{"wrapped pq unique", fmt.Errorf("failed to create owner: %w", &pq.Error{Code: "23505"}), true},
		{"foreign key", &pq.Error{Code: "23503"}, false},
		{"plain error", errors.New("boom"), false},
		{"nil", nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsUniqueViolation(tt.err))
		})
	}
}

func TestIsForeignKeyViolation(t *testing.T) {
	assert.True(t, IsForeignKeyViolation(&pgconn.PgError{Code: "23503"}))
	assert.True(t, IsForeignKeyViolation(fmt.Errorf("copy: %w", &pq.Error{Code: "23503"})))
	assert.False(t, IsForeignKeyViolation(&pgconn.PgError{Code: "23505"}))
}

func TestNullStringRoundTrip(t *testing.T) {
	assert.False(t, ToNullString("").Valid)
	assert.Equal(t, "", FromNullString(ToNullString("")))
	assert.Equal(t, "https://img.example/p.png", FromNullString(ToNullString("https://img.example/p.png")))
}
