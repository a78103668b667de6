package service

import (
	"errors"
	"fmt"
)

var (
	// ErrValidation marks input that was rejected before reaching the engines
	ErrValidation = errors.New("validation failed")

	// ErrSessionNotFound is returned for unknown or closed exercise sessions
	ErrSessionNotFound = errors.New("session not found")
)

// ValidationError describes a rejected input field
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// Unwrap lets errors.Is match ErrValidation
func (e *ValidationError) Unwrap() error {
	return ErrValidation
}

func invalid(field, format string, args ...any) error {
	return &ValidationError{Field: field, Reason: fmt.Sprintf(format, args...)}
}
