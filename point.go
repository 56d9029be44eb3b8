package bezier3d

import "math"

// Point3 represents a 3D point or vector.
// It is a value type: every operation returns a new Point3.
type Point3 struct {
	X, Y, Z float64
}

// P3 is a convenience function to create a Point3.
func P3(x, y, z float64) Point3 {
	return Point3{X: x, Y: y, Z: z}
}

// Add returns the sum of two points (vector addition).
func (p Point3) Add(q Point3) Point3 {
	return Point3{X: p.X + q.X, Y: p.Y + q.Y, Z: p.Z + q.Z}
}

// Sub returns the difference of two points (vector subtraction).
func (p Point3) Sub(q Point3) Point3 {
	return Point3{X: p.X - q.X, Y: p.Y - q.Y, Z: p.Z - q.Z}
}

// Mul returns the point scaled by a scalar.
func (p Point3) Mul(s float64) Point3 {
	return Point3{X: p.X * s, Y: p.Y * s, Z: p.Z * s}
}

// MulComponents returns the componentwise product of two points.
func (p Point3) MulComponents(q Point3) Point3 {
	return Point3{X: p.X * q.X, Y: p.Y * q.Y, Z: p.Z * q.Z}
}

// Neg returns the negation of the point.
func (p Point3) Neg() Point3 {
	return Point3{X: -p.X, Y: -p.Y, Z: -p.Z}
}

// Dot returns the dot product of two vectors.
func (p Point3) Dot(q Point3) float64 {
	return p.X*q.X + p.Y*q.Y + p.Z*q.Z
}

// Cross returns the cross product p × q.
func (p Point3) Cross(q Point3) Point3 {
	return Point3{
		X: p.Y*q.Z - p.Z*q.Y,
		Y: p.Z*q.X - p.X*q.Z,
		Z: p.X*q.Y - p.Y*q.X,
	}
}

// Length returns the length of the vector.
func (p Point3) Length() float64 {
	return math.Sqrt(p.X*p.X + p.Y*p.Y + p.Z*p.Z)
}

// LengthSq returns the squared length of the vector.
func (p Point3) LengthSq() float64 {
	return p.X*p.X + p.Y*p.Y + p.Z*p.Z
}

// Distance returns the distance between two points.
func (p Point3) Distance(q Point3) float64 {
	return p.Sub(q).Length()
}

// Normalize returns a unit vector in the same direction.
// Returns the zero vector if the original vector has zero length;
// callers that must not silently accept that check IsZero first.
func (p Point3) Normalize() Point3 {
	length := p.Length()
	if length == 0 {
		return Point3{}
	}
	return Point3{X: p.X / length, Y: p.Y / length, Z: p.Z / length}
}

// Lerp performs linear interpolation between two points as (1-t)·p + t·q.
// t=0 returns p and t=1 returns q exactly.
func (p Point3) Lerp(q Point3, t float64) Point3 {
	mt := 1 - t
	return Point3{
		X: mt*p.X + t*q.X,
		Y: mt*p.Y + t*q.Y,
		Z: mt*p.Z + t*q.Z,
	}
}

// Component returns the coordinate selected by axis.
// AxisNone and unknown axes return 0.
func (p Point3) Component(axis Axis) float64 {
	switch axis {
	case AxisX:
		return p.X
	case AxisY:
		return p.Y
	case AxisZ:
		return p.Z
	default:
		return 0
	}
}

// IsZero returns true if the vector is the zero vector.
func (p Point3) IsZero() bool {
	return p.X == 0 && p.Y == 0 && p.Z == 0
}

// IsFinite reports whether all components are neither NaN nor infinite.
func (p Point3) IsFinite() bool {
	return isFinite(p.X) && isFinite(p.Y) && isFinite(p.Z)
}

// Approx returns true if two points are approximately equal within epsilon.
func (p Point3) Approx(q Point3, epsilon float64) bool {
	return math.Abs(p.X-q.X) < epsilon &&
		math.Abs(p.Y-q.Y) < epsilon &&
		math.Abs(p.Z-q.Z) < epsilon
}
