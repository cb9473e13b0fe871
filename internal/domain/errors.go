// Package domain contains the angle value type, its classification and the
// errors raised by its rules.
// Domain errors represent business-level failures, NOT console errors.
// They are infrastructure-agnostic and can be mapped to exit codes or messages by adapters.
package domain

import (
	"errors"
	"fmt"
	"strconv"
)

// Sentinel errors for use with errors.Is().
var (
	// ErrOutOfRange indicates a degree value fell outside [MinDegrees, MaxDegrees].
	ErrOutOfRange = errors.New("out of range")

	// ErrValidation indicates malformed input such as an unknown unit.
	ErrValidation = errors.New("validation failed")
)

// OutOfRangeError provides context for out of range errors.
type OutOfRangeError struct {
	Value float64
	Min   float64
	Max   float64
}

// Error implements the error interface.
func (e *OutOfRangeError) Error() string {
	return fmt.Sprintf("angle %s degrees out of range [%s, %s]",
		formatNumber(e.Value), formatNumber(e.Min), formatNumber(e.Max))
}

// Unwrap returns the sentinel error for errors.Is() support.
func (e *OutOfRangeError) Unwrap() error {
	return ErrOutOfRange
}

// NewOutOfRangeError creates an out of range error for a degree value
// against the angle validity window.
func NewOutOfRangeError(degrees float64) error {
	return &OutOfRangeError{Value: degrees, Min: MinDegrees, Max: MaxDegrees}
}

// ValidationError provides context for validation errors.
type ValidationError struct {
	Field   string
	Message string
	Value   any
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation failed for %s: %s", e.Field, e.Message)
	}

	return "validation failed: " + e.Message
}

// Unwrap returns the sentinel error for errors.Is() support.
func (e *ValidationError) Unwrap() error {
	return ErrValidation
}

// NewValidationError creates a validation error with context.
func NewValidationError(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

// NewValidationErrorWithValue creates a validation error including the invalid value.
func NewValidationErrorWithValue(field, message string, value any) error {
	return &ValidationError{Field: field, Message: message, Value: value}
}

// IsOutOfRange checks if an error is an out of range error.
func IsOutOfRange(err error) bool {
	return errors.Is(err, ErrOutOfRange)
}

// IsValidation checks if an error is a validation error.
func IsValidation(err error) bool {
	return errors.Is(err, ErrValidation)
}

// formatNumber renders a float in its shortest exact form ("400", "-6.3").
func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
