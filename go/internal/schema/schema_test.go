package schema

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingExecer struct {
	queries []string
	err     error
}

func (r *recordingExecer) ExecContext(_ context.Context, query string, _ ...any) (sql.Result, error) {
	r.queries = append(r.queries, query)
	return nil, r.err
}

func TestApplyRunsEmbeddedDDL(t *testing.T) {
	exec := &recordingExecer{}
	require.NoError(t, Apply(context.Background(), exec))

	require.Len(t, exec.queries, 1)
	for _, table := range []string{"owners", "players", "fantasy_teams", "tournaments", "results"} {
		assert.Contains(t, exec.queries[0], "CREATE TABLE IF NOT EXISTS "+table)
	}
	assert.Contains(t, exec.queries[0], "CONSTRAINT owners_email_key UNIQUE (email)")
	assert.Contains(t, exec.queries[0], "CONSTRAINT players_name_key UNIQUE (name)")
}

func TestApplyWrapsExecError(t *testing.T) {
	exec := &recordingExecer{err: errors.New("connection refused")}
	err := Apply(context.Background(), exec)
	assert.EqualError(t, err, "failed to apply schema: connection refused")
}
