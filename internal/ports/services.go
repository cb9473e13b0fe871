// Package ports defines interfaces for external dependencies.
// Ports are contracts that adapters implement, allowing the application layer
// to depend on abstractions rather than concrete implementations.
//
// Port Design Principles:
//   - Context as first parameter (always) for cancellation
//   - Return domain types, never adapter-specific DTOs
//   - Error returns use domain error types (ErrValidation, ErrOutOfRange)
//   - Keep interfaces small and focused (Interface Segregation Principle)
package ports

import (
	"context"

	"github.com/jsamuelsen/anglecalc/internal/domain"
)

// AngleRequest is a raw angle as entered by a user: a number and the unit it
// is expressed in. It has not been range checked yet.
type AngleRequest struct {
	// Ordinal is the 1-based position of the angle in the session.
	Ordinal int

	// Unit is the unit Value is expressed in.
	Unit domain.Unit

	// Value is the raw measurement.
	Value float64
}

// AngleInput supplies raw angle requests, typically by prompting a user.
//
// Example usage in application layer:
//
//	req, err := input.ReadAngle(ctx, 1)
//	if err != nil {
//	    return err
//	}
//	angle, err := domain.New(req.Value, req.Unit)
type AngleInput interface {
	// ReadAngle reads the request for the angle at the given ordinal.
	// Returns domain.ErrValidation when the input is malformed or ends early.
	ReadAngle(ctx context.Context, ordinal int) (*AngleRequest, error)
}

// AngleOutput displays constructed angles.
type AngleOutput interface {
	// WriteAngle displays the angle at the given ordinal.
	WriteAngle(ctx context.Context, ordinal int, angle domain.Angle) error
}
