package domain

import "strings"

// AngleType classifies an angle by its normalized magnitude.
type AngleType int

// Angle classifications.
const (
	Acute AngleType = iota
	Right
	Obtuse
	Straight
	Reflex
	Full
)

var angleTypeNames = [...]string{
	Acute:    "ACUTE",
	Right:    "RIGHT",
	Obtuse:   "OBTUSE",
	Straight: "STRAIGHT",
	Reflex:   "REFLEX",
	Full:     "FULL",
}

// String returns the upper case name of the classification.
func (t AngleType) String() string {
	if t < 0 || int(t) >= len(angleTypeNames) {
		return "UNKNOWN"
	}

	return angleTypeNames[t]
}

// Type classifies the angle.
//
// Negative angles are shifted by +360 before classification; the shift is
// not stored. Boundary equality checks run before the matching less-than
// bucket so that 90, 180 and 360 land in RIGHT, STRAIGHT and FULL.
func (a Angle) Type() AngleType {
	d := a.degrees
	if d < 0 {
		d += 360
	}

	switch {
	case d == 90:
		return Right
	case d < 90:
		return Acute
	case d == 180:
		return Straight
	case d < 180:
		return Obtuse
	case d == 360:
		return Full
	default:
		return Reflex
	}
}

// Unit is the unit an angle value is expressed in.
type Unit int

// Supported units.
const (
	Degrees Unit = iota + 1
	Radians
)

// String returns the lower case unit name used in rendering.
func (u Unit) String() string {
	switch u {
	case Degrees:
		return "degrees"
	case Radians:
		return "radians"
	default:
		return "unknown"
	}
}

// ParseUnit parses "degrees" or "radians" (case-insensitive).
func ParseUnit(s string) (Unit, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "degrees", "degree", "deg":
		return Degrees, nil
	case "radians", "radian", "rad":
		return Radians, nil
	default:
		return 0, NewValidationErrorWithValue("unit", "must be degrees or radians", s)
	}
}
