package bezier3d

import (
	"fmt"
	"strings"
)

// Axis selects a coordinate axis for reflection and rotation.
// The zero value is AxisNone.
type Axis int

const (
	// AxisNone selects no axis. Reflection with AxisNone is skipped.
	AxisNone Axis = iota
	// AxisX selects the x axis.
	AxisX
	// AxisY selects the y axis.
	AxisY
	// AxisZ selects the z axis.
	AxisZ
)

// String returns the axis name as shown in the reflection selector.
func (a Axis) String() string {
	switch a {
	case AxisNone:
		return "None"
	case AxisX:
		return "X"
	case AxisY:
		return "Y"
	case AxisZ:
		return "Z"
	default:
		return fmt.Sprintf("Axis(%d)", int(a))
	}
}

// IsValid reports whether a is one of AxisNone, AxisX, AxisY or AxisZ.
func (a Axis) IsValid() bool {
	return a >= AxisNone && a <= AxisZ
}

// Unit returns the unit vector along the axis.
func (a Axis) Unit() (Point3, error) {
	switch a {
	case AxisX:
		return Point3{X: 1}, nil
	case AxisY:
		return Point3{Y: 1}, nil
	case AxisZ:
		return Point3{Z: 1}, nil
	default:
		return Point3{}, fmt.Errorf("%w: axis %v has no direction", ErrInvalidArgument, a)
	}
}

// ParseAxis parses "none", "x", "y" or "z" (case-insensitive).
// The empty string parses as AxisNone.
func ParseAxis(s string) (Axis, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "none":
		return AxisNone, nil
	case "x":
		return AxisX, nil
	case "y":
		return AxisY, nil
	case "z":
		return AxisZ, nil
	default:
		return AxisNone, fmt.Errorf("%w: unknown axis %q", ErrInvalidArgument, s)
	}
}
