package apperrors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNotFoundErrorMatchesSentinelThroughWrapping(t *testing.T) {
	id := uuid.New()
	err := fmt.Errorf("failed to get team: %w", NewNotFoundError("team", id))

	assert.True(t, errors.Is(err, ErrTeamNotFound))
	assert.False(t, errors.Is(err, ErrOwnerNotFound))
	assert.True(t, IsNotFoundError(err))
	assert.Equal(t, fmt.Sprintf("failed to get team: team with ID %s not found", id), err.Error())
}

func TestConflictErrorMatchesSentinel(t *testing.T) {
	err := fmt.Errorf("failed to create owner: %w", NewConflictError("owner", "email a@b.co"))

	assert.True(t, errors.Is(err, ErrOwnerExists))
	assert.False(t, errors.Is(err, ErrPlayerExists))
	assert.True(t, IsConflictError(err))
	assert.Contains(t, err.Error(), "owner with email a@b.co already exists")
}

func TestValidationErrorMessage(t *testing.T) {
	assert.Equal(t, "validation error: email must be a valid email", NewValidationError("email", "must be a valid email").Error())
	assert.Equal(t, "validation error: bad payload", NewValidationError("", "bad payload").Error())
}

func TestBatchErrorUnwrapsToCause(t *testing.T) {
	cause := NewInvalidInputError("owner reference required")
	err := fmt.Errorf("failed to create teams: %w", &BatchError{Index: 2, Err: cause})

	batchErr, ok := AsBatchError(err)
	require.True(t, ok)
	assert.Equal(t, 2, batchErr.Index)
	assert.True(t, IsInvalidInputError(err))
	assert.False(t, IsValidationError(err))
	assert.Equal(t, "failed to create teams: batch item 2 failed: invalid input: owner reference required", err.Error())
}
