package models

import (
	"errors"
)

var (
	ErrNoRecord          = errors.New("models: no matching record found")
	ErrUserNotFound      = errors.New("models: user not found")
	ErrAdNotFound        = errors.New("models: ad not found")
	ErrCategoryNotFound  = errors.New("models: category not found")
	ErrConditionNotFound = errors.New("models: condition not found")
	ErrExchangeNotFound  = errors.New("models: exchange not found")
	ErrDuplicateUsername = errors.New("models: duplicate username")
	ErrInvalidFilter     = errors.New("models: invalid filter")
)

// FailureKind tags the validation outcome carried inside a mutation result.
// The human-readable message stays the diagnostic channel; the kind lets the
// presentation layer and tests distinguish outcomes without parsing text.
type FailureKind int

const (
	FailureNone FailureKind = iota
	FailureMissingField
	FailureNotFound
	FailureInvalidReference
	FailureInvariantViolation
	FailureUnexpected
)
