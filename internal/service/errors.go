package service

import (
	"fmt"

	"github.com/article-writer-api/internal/validation"
)

// ErrorKind is the machine-checkable classification of a failed operation
type ErrorKind string

const (
	KindValidation            ErrorKind = "validation"
	KindUnauthorized          ErrorKind = "unauthorized"
	KindNotFound              ErrorKind = "not_found"
	KindGenerationUnavailable ErrorKind = "generation_unavailable"
	KindGenerationInvalid     ErrorKind = "generation_invalid"
	KindPersistenceFailure    ErrorKind = "persistence_failure"
	KindInternal              ErrorKind = "internal"
)

// Error is the service-level error surfaced to the request layer. Message is
// safe to show to the end user; the wrapped cause is for logs only.
type Error struct {
	Kind    ErrorKind
	Message string
	Fields  []validation.ValidationError
	cause   error
}

func (e *Error) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.cause)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

// Unwrap exposes the underlying cause for errors.Is / errors.As
func (e *Error) Unwrap() error {
	return e.cause
}

func newError(kind ErrorKind, message string, cause error) *Error {
	return &Error{Kind: kind, Message: message, cause: cause}
}

func validationError(fields []validation.ValidationError) *Error {
	return &Error{Kind: KindValidation, Message: "invalid settings", Fields: fields}
}
