package connectutil

import (
	"context"
	"errors"
	"strconv"

	"connectrpc.com/connect"
	"github.com/google/uuid"
	"github.com/mcdev12/fantasygolf/go/internal/apperrors"
	"github.com/rs/zerolog/log"
)

// BatchIndexHeader carries the failing item index of a partially applied batch
const BatchIndexHeader = "Batch-Failed-Index"

// CodeOf maps an application error onto a Connect status code
func CodeOf(err error) connect.Code {
	switch {
	case apperrors.IsValidationError(err), apperrors.IsInvalidInputError(err):
		return connect.CodeInvalidArgument
	case apperrors.IsNotFoundError(err):
		return connect.CodeNotFound
	case apperrors.IsConflictError(err):
		return connect.CodeAlreadyExists
	case errors.Is(err, context.Canceled):
		return connect.CodeCanceled
	case errors.Is(err, context.DeadlineExceeded):
		return connect.CodeDeadlineExceeded
	default:
		return connect.CodeInternal
	}
}

// Error converts err into a *connect.Error with the matching code.
// Errors that map to CodeInternal are logged since the client only sees the code.
func Error(err error) error {
	if err == nil {
		return nil
	}

	var connectErr *connect.Error
	if errors.As(err, &connectErr) {
		return connectErr
	}

	code := CodeOf(err)
	if code == connect.CodeInternal {
		log.Error().Err(err).Msg("Request failed")
	}

	connectErr = connect.NewError(code, err)
	if batchErr, ok := apperrors.AsBatchError(err); ok {
		connectErr.Meta().Set(BatchIndexHeader, strconv.Itoa(batchErr.Index))
	}
	return connectErr
}

// ParseID parses the id of a root lookup. A malformed id cannot match any
// stored entity, so it is reported as not found.
func ParseID(entity, raw string) (uuid.UUID, error) {
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, &apperrors.NotFoundError{Entity: entity, ID: raw}
	}
	return id, nil
}

// ParseRef parses an id used as a reference inside a write request
func ParseRef(field, raw string) (uuid.UUID, error) {
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, apperrors.NewInvalidInputError("%s %q is not a valid id", field, raw)
	}
	return id, nil
}
