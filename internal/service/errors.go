package service

import "fmt"

// ValidationError reports per-field validation failures. Fields maps
// the json field name to a human-readable message. No write happens
// when validation fails.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed on %d field(s)", len(e.Fields))
}

// ConflictError reports an operation refused because it would violate
// a uniqueness or integrity rule.
type ConflictError struct {
	Message string
}

func (e *ConflictError) Error() string { return e.Message }

// NotFoundError reports a missing resource.
type NotFoundError struct {
	Message string
}

func (e *NotFoundError) Error() string { return e.Message }
