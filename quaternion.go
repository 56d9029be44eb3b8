package bezier3d

import (
	"fmt"
	"math"
)

// Quaternion is a 4-component value w + xi + yj + zk.
//
// Rotation quaternions built by AxisQuaternion have unit norm, so their
// inverse is the conjugate.
type Quaternion struct {
	W, X, Y, Z float64
}

// IdentityQuaternion returns the rotation that leaves every point unchanged.
func IdentityQuaternion() Quaternion {
	return Quaternion{W: 1}
}

// AxisQuaternion returns the unit quaternion rotating by angle radians about
// a coordinate axis: (cos θ/2, sin θ/2 · axis).
func AxisQuaternion(axis Axis, angle float64) (Quaternion, error) {
	u, err := axis.Unit()
	if err != nil {
		return Quaternion{}, fmt.Errorf("rotation quaternion: %w", err)
	}
	s, c := math.Sincos(angle / 2)
	return Quaternion{W: c, X: s * u.X, Y: s * u.Y, Z: s * u.Z}, nil
}

// PureQuaternion lifts a point to the quaternion (0, x, y, z).
func PureQuaternion(p Point3) Quaternion {
	return Quaternion{X: p.X, Y: p.Y, Z: p.Z}
}

// Vector returns the vector part (x, y, z).
func (q Quaternion) Vector() Point3 {
	return Point3{X: q.X, Y: q.Y, Z: q.Z}
}

// Mul returns the Hamilton product q·r.
func (q Quaternion) Mul(r Quaternion) Quaternion {
	return Quaternion{
		W: q.W*r.W - q.X*r.X - q.Y*r.Y - q.Z*r.Z,
		X: q.W*r.X + q.X*r.W + q.Y*r.Z - q.Z*r.Y,
		Y: q.W*r.Y - q.X*r.Z + q.Y*r.W + q.Z*r.X,
		Z: q.W*r.Z + q.X*r.Y - q.Y*r.X + q.Z*r.W,
	}
}

// Conjugate returns (w, -x, -y, -z).
func (q Quaternion) Conjugate() Quaternion {
	return Quaternion{W: q.W, X: -q.X, Y: -q.Y, Z: -q.Z}
}

// Norm returns the Euclidean norm of the quaternion.
func (q Quaternion) Norm() float64 {
	return math.Sqrt(q.W*q.W + q.X*q.X + q.Y*q.Y + q.Z*q.Z)
}

// Rotate applies the sandwich product q·p·q* to p.
// q is assumed to be a unit quaternion.
func (q Quaternion) Rotate(p Point3) Point3 {
	return q.Mul(PureQuaternion(p)).Mul(q.Conjugate()).Vector()
}

// Approx returns true if two quaternions are approximately equal within epsilon.
func (q Quaternion) Approx(r Quaternion, epsilon float64) bool {
	return math.Abs(q.W-r.W) < epsilon &&
		math.Abs(q.X-r.X) < epsilon &&
		math.Abs(q.Y-r.Y) < epsilon &&
		math.Abs(q.Z-r.Z) < epsilon
}
