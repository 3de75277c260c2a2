package apperrors

import (
	"errors"
	"fmt"
)

// ValidationError is returned when a field fails its schema rules
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation error: %s %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

// InvalidInputError is returned when a request is structurally wrong,
// e.g. a team without an owner reference.
type InvalidInputError struct {
	Message string
}

func (e *InvalidInputError) Error() string {
	return fmt.Sprintf("invalid input: %s", e.Message)
}

// NotFoundError is returned when a lookup by id matches nothing
type NotFoundError struct {
	Entity string
	ID     string
}

func (e *NotFoundError) Error() string {
	if e.ID != "" {
		return fmt.Sprintf("%s with ID %s not found", e.Entity, e.ID)
	}
	return fmt.Sprintf("%s not found", e.Entity)
}

// Is enables errors.Is() comparison against the Err*NotFound sentinels
func (e *NotFoundError) Is(target error) bool {
	t, ok := target.(*NotFoundError)
	if !ok {
		return false
	}
	return e.Entity == t.Entity
}

// ConflictError is returned when a write collides with a unique key
type ConflictError struct {
	Entity string
	Key    string
}

func (e *ConflictError) Error() string {
	if e.Key != "" {
		return fmt.Sprintf("%s with %s already exists", e.Entity, e.Key)
	}
	return fmt.Sprintf("%s already exists", e.Entity)
}

// Is enables errors.Is() comparison against the Err*Exists sentinels
func (e *ConflictError) Is(target error) bool {
	t, ok := target.(*ConflictError)
	if !ok {
		return false
	}
	return e.Entity == t.Entity
}

// BatchError reports the first failing item of a sequential batch.
// Items before Index were written and stay written.
type BatchError struct {
	Index int
	Err   error
}

func (e *BatchError) Error() string {
	return fmt.Sprintf("batch item %d failed: %v", e.Index, e.Err)
}

func (e *BatchError) Unwrap() error {
	return e.Err
}

var (
	ErrOwnerNotFound      = &NotFoundError{Entity: "owner"}
	ErrPlayerNotFound     = &NotFoundError{Entity: "player"}
	ErrTeamNotFound       = &NotFoundError{Entity: "team"}
	ErrTournamentNotFound = &NotFoundError{Entity: "tournament"}
	ErrResultNotFound     = &NotFoundError{Entity: "result"}
)

var (
	ErrOwnerExists  = &ConflictError{Entity: "owner"}
	ErrPlayerExists = &ConflictError{Entity: "player"}
)

func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}

func NewInvalidInputError(format string, args ...any) *InvalidInputError {
	return &InvalidInputError{Message: fmt.Sprintf(format, args...)}
}

func NewNotFoundError(entity string, id fmt.Stringer) *NotFoundError {
	return &NotFoundError{Entity: entity, ID: id.String()}
}

func NewConflictError(entity, key string) *ConflictError {
	return &ConflictError{Entity: entity, Key: key}
}

func IsValidationError(err error) bool {
	var target *ValidationError
	return errors.As(err, &target)
}

func IsInvalidInputError(err error) bool {
	var target *InvalidInputError
	return errors.As(err, &target)
}

func IsNotFoundError(err error) bool {
	var target *NotFoundError
	return errors.As(err, &target)
}

func IsConflictError(err error) bool {
	var target *ConflictError
	return errors.As(err, &target)
}

// AsBatchError extracts the BatchError from err, if any
func AsBatchError(err error) (*BatchError, bool) {
	var target *BatchError
	if errors.As(err, &target) {
		return target, true
	}
	return nil, false
}
