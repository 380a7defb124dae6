package services

// Service error types, mapped to HTTP status codes in one place at the
// handler boundary.

type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string { return "Validation error" }

type NotFoundError struct{ Message string }

func (e *NotFoundError) Error() string { return e.Message }

// GenerationError marks a failed external generator call. The user
// message written before the call stays persisted.
type GenerationError struct{ Message string }

func (e *GenerationError) Error() string { return e.Message }
