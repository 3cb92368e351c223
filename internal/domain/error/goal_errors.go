// Package error defines domain-specific errors for the goal ledger.
package error

import (
	"errors"
	"fmt"
)

// Goal domain errors.
var (
	// ErrGoalNotFound is returned when a goal is not found in the ledger.
	ErrGoalNotFound = errors.New("goal not found")

	// ErrGoalValidation is returned when goal input is malformed or out of range.
	ErrGoalValidation = errors.New("invalid goal input")

	// ErrGoalPersistence is returned when the goal collection could not be read or written.
	ErrGoalPersistence = errors.New("goal storage failure")
)

// GoalErrorCode defines error codes for goal errors.
// Format: GOL-XXYYYY where XX is category and YYYY is specific error.
type GoalErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeGoalNotFound      GoalErrorCode = "GOL-010001"
	ErrCodeInvalidGoalField  GoalErrorCode = "GOL-010002"
	ErrCodeInvalidListQuery  GoalErrorCode = "GOL-010003"
	ErrCodeMissingGoalFields GoalErrorCode = "GOL-010004"

	// Storage errors (02XXXX)
	ErrCodeGoalStorageRead  GoalErrorCode = "GOL-020001"
	ErrCodeGoalStorageWrite GoalErrorCode = "GOL-020002"

	// Request errors (03XXXX)
	ErrCodeTooManyWrites GoalErrorCode = "GOL-030001"
)

// ValidationError reports a rejected field on a goal mutation or query.
type ValidationError struct {
	Field  string
	Reason string
	code   GoalErrorCode
}

// NewValidationError creates a new ValidationError for a goal field.
func NewValidationError(field, reason string) *ValidationError {
	return &ValidationError{Field: field, Reason: reason, code: ErrCodeInvalidGoalField}
}

// NewQueryValidationError creates a new ValidationError for a list query parameter.
func NewQueryValidationError(field, reason string) *ValidationError {
	return &ValidationError{Field: field, Reason: reason, code: ErrCodeInvalidListQuery}
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// Unwrap returns the validation sentinel.
func (e *ValidationError) Unwrap() error {
	return ErrGoalValidation
}

// Code returns the error code for API responses.
func (e *ValidationError) Code() GoalErrorCode {
	if e.code == "" {
		return ErrCodeInvalidGoalField
	}
	return e.code
}

// NotFoundError reports an operation on an unknown goal id.
type NotFoundError struct {
	ID string
}

// NewNotFoundError creates a new NotFoundError for the given id.
func NewNotFoundError(id string) *NotFoundError {
	return &NotFoundError{ID: id}
}

// Error implements the error interface.
func (e *NotFoundError) Error() string {
	return fmt.Sprintf("goal %q not found", e.ID)
}

// Unwrap returns the not-found sentinel.
func (e *NotFoundError) Unwrap() error {
	return ErrGoalNotFound
}

// Code returns the error code for API responses.
func (e *NotFoundError) Code() GoalErrorCode {
	return ErrCodeGoalNotFound
}

// Storage operations reported by PersistenceError.
const (
	PersistenceOpLoad = "load"
	PersistenceOpSave = "save"
)

// PersistenceError reports a failure of the underlying storage.
// After a failed save the in-memory collection is ahead of durable state.
type PersistenceError struct {
	Op    string
	Cause error
}

// NewPersistenceError creates a new PersistenceError.
func NewPersistenceError(op string, cause error) *PersistenceError {
	return &PersistenceError{Op: op, Cause: cause}
}

// Error implements the error interface.
func (e *PersistenceError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("failed to %s goals: %v", e.Op, e.Cause)
	}
	return fmt.Sprintf("failed to %s goals", e.Op)
}

// Unwrap exposes both the persistence sentinel and the storage cause.
func (e *PersistenceError) Unwrap() []error {
	if e.Cause == nil {
		return []error{ErrGoalPersistence}
	}
	return []error{ErrGoalPersistence, e.Cause}
}

// Code returns the error code for API responses.
func (e *PersistenceError) Code() GoalErrorCode {
	if e.Op == PersistenceOpLoad {
		return ErrCodeGoalStorageRead
	}
	return ErrCodeGoalStorageWrite
}
