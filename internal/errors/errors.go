// Package errors provides domain-specific error types and sentinel errors
// for improved error handling across the application.
package errors

import (
	"errors"
	"fmt"
)

// Sentinel errors for common scenarios.
// Use errors.Is() to check these errors in your code.
var (
	// ErrNotFound indicates a requested resource was not found.
	ErrNotFound = errors.New("resource not found")

	// ErrInvalidInput indicates user provided invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrTimeout indicates an operation timed out.
	ErrTimeout = errors.New("operation timed out")

	// ErrMissingCredential indicates a required API credential is not configured.
	ErrMissingCredential = errors.New("missing required credential")

	// ErrProviderFailure indicates an upstream provider call failed after all
	// retry and fallback attempts.
	ErrProviderFailure = errors.New("provider request failed")

	// ErrUnparsablePeriod indicates a festival period string does not match
	// the supported date-range grammar.
	ErrUnparsablePeriod = errors.New("unparsable period string")
)

// ValidationError represents input validation failures.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed on %s: %s", e.Field, e.Message)
}

// NewValidationError creates a new validation error.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{
		Field:   field,
		Message: message,
	}
}

// ProviderError represents an upstream HTTP provider failure with context.
type ProviderError struct {
	Provider   string
	StatusCode int
	Err        error
}

func (e *ProviderError) Error() string {
	if e.StatusCode > 0 {
		return fmt.Sprintf("provider error (provider=%s, status=%d): %v", e.Provider, e.StatusCode, e.Err)
	}
	return fmt.Sprintf("provider error (provider=%s): %v", e.Provider, e.Err)
}

func (e *ProviderError) Unwrap() error {
	return e.Err
}

// NewProviderError creates a new provider error.
func NewProviderError(provider string, statusCode int, err error) *ProviderError {
	return &ProviderError{
		Provider:   provider,
		StatusCode: statusCode,
		Err:        err,
	}
}
