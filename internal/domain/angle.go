package domain

import (
	"cmp"
	"fmt"
	"log/slog"
	"math"
)

// Validity window for the stored degree value, inclusive on both ends.
const (
	MinDegrees = -360.0
	MaxDegrees = 360.0
)

// Common angles.
var (
	// ZeroAngle is the 0 degree angle. It is also the zero value of Angle.
	ZeroAngle = Angle{}

	// StraightAngle is the 180 degree (π radian) angle.
	StraightAngle = Angle{degrees: 180}
)

// Angle is an immutable planar angle stored in degrees within
// [MinDegrees, MaxDegrees]. Every operation returns a new Angle;
// the receiver never changes, so values are safe to share.
type Angle struct {
	degrees float64
}

// FromDegrees creates an Angle from a degree measurement.
// Returns an *OutOfRangeError when value is outside [MinDegrees, MaxDegrees].
func FromDegrees(value float64) (Angle, error) {
	// Written as a negated range test so NaN is rejected too.
	if !(value >= MinDegrees && value <= MaxDegrees) {
		return Angle{}, NewOutOfRangeError(value)
	}

	return Angle{degrees: value}, nil
}

// FromRadians creates an Angle from a radian measurement.
// The range check runs on the converted degree value, so the accepted radian
// window is [-2π, 2π] as it falls out of floating point conversion.
func FromRadians(value float64) (Angle, error) {
	return FromDegrees(value * 180 / math.Pi)
}

// New creates an Angle from a value expressed in the given unit.
func New(value float64, unit Unit) (Angle, error) {
	switch unit {
	case Degrees:
		return FromDegrees(value)
	case Radians:
		return FromRadians(value)
	default:
		return Angle{}, NewValidationErrorWithValue("unit", "unknown unit", unit)
	}
}

// Degrees returns the stored degree value.
func (a Angle) Degrees() float64 {
	return a.degrees
}

// Radians returns the angle converted to radians.
func (a Angle) Radians() float64 {
	return a.degrees * math.Pi / 180
}

// Add returns the sum of a and other.
// The sum is range checked; there is no wraparound.
func (a Angle) Add(other Angle) (Angle, error) {
	return FromDegrees(a.degrees + other.degrees)
}

// AddRadians converts value to an Angle and adds it to a.
// Both the operand and the sum are range checked.
func (a Angle) AddRadians(value float64) (Angle, error) {
	other, err := FromRadians(value)
	if err != nil {
		return Angle{}, err
	}

	return a.Add(other)
}

// Subtract returns a minus other.
func (a Angle) Subtract(other Angle) (Angle, error) {
	return FromDegrees(a.degrees - other.degrees)
}

// SubtractRadians converts value to an Angle and subtracts it from a.
func (a Angle) SubtractRadians(value float64) (Angle, error) {
	other, err := FromRadians(value)
	if err != nil {
		return Angle{}, err
	}

	return a.Subtract(other)
}

// Compare returns -1 if a is smaller than other, 0 if their degree values are
// equal and +1 if a is larger.
func (a Angle) Compare(other Angle) int {
	return cmp.Compare(a.degrees, other.degrees)
}

// CompareWithRadians compares a with a radian value. The value is converted
// to an Angle first, so an out of range value fails with an *OutOfRangeError.
func (a Angle) CompareWithRadians(value float64) (int, error) {
	other, err := FromRadians(value)
	if err != nil {
		return 0, err
	}

	return a.Compare(other), nil
}

// Equal reports whether a and other hold exactly the same degree value.
// No tolerance is applied.
func (a Angle) Equal(other Angle) bool {
	return a.degrees == other.degrees
}

// String renders the angle in degrees with two decimals, e.g. "45.00 degrees".
func (a Angle) String() string {
	return fmt.Sprintf("%.2f degrees", a.degrees)
}

// StringInRadians renders the angle in radians with two decimals, e.g. "0.79 radians".
func (a Angle) StringInRadians() string {
	return fmt.Sprintf("%.2f radians", a.Radians())
}

// StringIn renders the angle in the given unit.
func (a Angle) StringIn(unit Unit) string {
	if unit == Radians {
		return a.StringInRadians()
	}

	return a.String()
}

// LogValue implements slog.LogValuer.
func (a Angle) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Float64("degrees", a.degrees),
		slog.Float64("radians", a.Radians()),
		slog.String("type", a.Type().String()),
	)
}
