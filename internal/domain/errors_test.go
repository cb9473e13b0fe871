package domain

import (
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSentinelErrors_AreDistinct(t *testing.T) {
	assert.NotErrorIs(t, ErrOutOfRange, ErrValidation)
	assert.NotErrorIs(t, ErrValidation, ErrOutOfRange)
}

func TestOutOfRangeError(t *testing.T) {
	tests := []struct {
		name        string
		value       float64
		expectedMsg string
	}{
		{
			name:        "above range",
			value:       400,
			expectedMsg: "angle 400 degrees out of range [-360, 360]",
		},
		{
			name:        "below range",
			value:       -370,
			expectedMsg: "angle -370 degrees out of range [-360, 360]",
		},
		{
			name:        "fractional",
			value:       360.5,
			expectedMsg: "angle 360.5 degrees out of range [-360, 360]",
		},
		{
			name:        "not a number",
			value:       math.NaN(),
			expectedMsg: "angle NaN degrees out of range [-360, 360]",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := NewOutOfRangeError(tt.value)

			assert.Equal(t, tt.expectedMsg, err.Error())
			require.ErrorIs(t, err, ErrOutOfRange)

			var outOfRange *OutOfRangeError
			require.ErrorAs(t, err, &outOfRange)
			assert.Equal(t, MinDegrees, outOfRange.Min)
			assert.Equal(t, MaxDegrees, outOfRange.Max)
		})
	}
}

func TestOutOfRangeError_Unwrap(t *testing.T) {
	err := NewOutOfRangeError(400)

	var outOfRange *OutOfRangeError
	require.ErrorAs(t, err, &outOfRange)
	assert.Equal(t, ErrOutOfRange, outOfRange.Unwrap())
	assert.Equal(t, 400.0, outOfRange.Value)
}

func TestValidationError(t *testing.T) {
	tests := []struct {
		name        string
		field       string
		message     string
		expectedMsg string
	}{
		{
			name:        "with field",
			field:       "choice",
			message:     "must be one of: 1 2",
			expectedMsg: "validation failed for choice: must be one of: 1 2",
		},
		{
			name:        "without field",
			field:       "",
			message:     "unexpected end of input",
			expectedMsg: "validation failed: unexpected end of input",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := NewValidationError(tt.field, tt.message)

			assert.Equal(t, tt.expectedMsg, err.Error())
			require.ErrorIs(t, err, ErrValidation)

			var validation *ValidationError
			require.ErrorAs(t, err, &validation)
			assert.Equal(t, tt.field, validation.Field)
			assert.Equal(t, tt.message, validation.Message)
		})
	}
}

func TestValidationErrorWithValue(t *testing.T) {
	err := NewValidationErrorWithValue("value", "must be a number", "abc")

	var validation *ValidationError
	require.ErrorAs(t, err, &validation)
	assert.Equal(t, "abc", validation.Value)
	assert.Equal(t, ErrValidation, validation.Unwrap())
}

func TestIsHelpers(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		isFunc   func(error) bool
		expected bool
	}{
		// OutOfRange
		{"IsOutOfRange with OutOfRangeError", NewOutOfRangeError(400), IsOutOfRange, true},
		{"IsOutOfRange with sentinel", ErrOutOfRange, IsOutOfRange, true},
		{"IsOutOfRange with wrapped", fmt.Errorf("wrapped: %w", ErrOutOfRange), IsOutOfRange, true},
		{"IsOutOfRange with other error", ErrValidation, IsOutOfRange, false},
		{"IsOutOfRange with nil", nil, IsOutOfRange, false},

		// Validation
		{"IsValidation with ValidationError", NewValidationError("unit", "invalid"), IsValidation, true},
		{"IsValidation with sentinel", ErrValidation, IsValidation, true},
		{"IsValidation with wrapped", fmt.Errorf("wrapped: %w", ErrValidation), IsValidation, true},
		{"IsValidation with other error", ErrOutOfRange, IsValidation, false},
		{"IsValidation with nil", nil, IsValidation, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.isFunc(tt.err))
		})
	}
}

func TestErrorWrappingChain(t *testing.T) {
	t.Run("deeply wrapped OutOfRangeError", func(t *testing.T) {
		_, original := FromDegrees(-400)
		wrapped := fmt.Errorf("reading angle 2: %w", fmt.Errorf("building angle: %w", original))

		assert.True(t, IsOutOfRange(wrapped))

		var outOfRange *OutOfRangeError
		require.ErrorAs(t, wrapped, &outOfRange)
		assert.Equal(t, -400.0, outOfRange.Value)
	})

	t.Run("deeply wrapped ValidationError", func(t *testing.T) {
		original := NewValidationError("choice", "invalid")
		wrapped := fmt.Errorf("prompt: %w", original)

		assert.True(t, IsValidation(wrapped))

		var validation *ValidationError
		require.ErrorAs(t, wrapped, &validation)
		assert.Equal(t, "choice", validation.Field)
	})
}
