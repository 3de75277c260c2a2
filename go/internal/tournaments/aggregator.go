package tournaments

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/mcdev12/fantasygolf/go/internal/apperrors"
	"github.com/mcdev12/fantasygolf/go/internal/models"
	"github.com/mcdev12/fantasygolf/go/internal/sqlutil"
)

const lockTournament = `SELECT id FROM tournaments WHERE id = $1 FOR UPDATE`

const appendResultIDs = `UPDATE tournaments
SET result_ids = result_ids || $2::uuid[]
WHERE id = $1
RETURNING id, name, description, status, start_date, end_date, result_ids, created_at`

var resultColumns = []string{"id", "tournament_id", "player_id", "position", "points", "created_at"}

// AppendResults inserts results and appends their ids to the tournament's
// reference list in one transaction. The row lock serializes concurrent
// appends to the same tournament so neither list write is lost.
func (r *Repository) AppendResults(ctx context.Context, tournamentID uuid.UUID, results []models.Result) (*models.Tournament, error) {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		_ = tx.Rollback(ctx) // no-op after commit
	}()

	var locked uuid.UUID
	if err := tx.QueryRow(ctx, lockTournament, tournamentID).Scan(&locked); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFoundError("tournament", tournamentID)
		}
		return nil, fmt.Errorf("failed to lock tournament: %w", err)
	}

	rows := make([][]any, len(results))
	ids := make([]uuid.UUID, len(results))
	for i, result := range results {
		rows[i] = []any{result.ID, tournamentID, result.PlayerID, result.Position, int32(result.Points), result.CreatedAt}
		ids[i] = result.ID
	}

	copied, err := tx.CopyFrom(ctx, pgx.Identifier{"results"}, resultColumns, pgx.CopyFromRows(rows))
	if err != nil {
		if sqlutil.IsForeignKeyViolation(err) {
			return nil, apperrors.NewInvalidInputError("result references an unknown player")
		}
		return nil, fmt.Errorf("failed to insert results: %w", err)
	}
	if int(copied) != len(results) {
		return nil, fmt.Errorf("failed to insert results: copied %d of %d rows", copied, len(results))
	}

	var (
		t      models.Tournament
		status string
	)
	err = tx.QueryRow(ctx, appendResultIDs, tournamentID, ids).Scan(
		&t.ID,
		&t.Name,
		&t.Description,
		&status,
		&t.StartDate,
		&t.EndDate,
		&t.ResultIDs,
		&t.CreatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to append result ids: %w", err)
	}
	t.Status = models.TournamentStatus(status)

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("failed to commit results: %w", err)
	}
	return &t, nil
}
