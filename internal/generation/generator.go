// Package generation calls the external text-generation service with a
// compiled instruction and classifies its failures.
package generation

import (
	"context"
	"errors"
)

// Classified generation failures. Callers match with errors.Is.
var (
	// ErrUnauthorized means the service credentials are missing or invalid.
	// Fatal; never retried.
	ErrUnauthorized = errors.New("generation service credentials rejected")

	// ErrQuotaExceeded means the service reported capacity exhaustion.
	ErrQuotaExceeded = errors.New("generation service quota exceeded")

	// ErrInvalidRequest means the service rejected the compiled instruction.
	ErrInvalidRequest = errors.New("generation service rejected the request")

	// ErrEmptyOutput means the service returned no usable text.
	ErrEmptyOutput = errors.New("generation service returned empty output")
)

// TextGenerator produces article text from a compiled instruction. The token
// budget is a hard ceiling on output length. Implementations perform no
// automatic retries.
type TextGenerator interface {
	Generate(ctx context.Context, instruction string, tokenBudget int) (string, error)
}
