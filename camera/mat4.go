package camera

import (
	"fmt"
	"math"

	"github.com/gogpu/bezier3d"
)

// Mat4 is a 4x4 matrix in row-major order, M[row][col]. Points are column
// vectors, so M.Multiply(N) applies N first.
type Mat4 [4][4]float64

// Identity4 returns the identity matrix.
func Identity4() Mat4 {
	return Mat4{
		{1, 0, 0, 0},
		{0, 1, 0, 0},
		{0, 0, 1, 0},
		{0, 0, 0, 1},
	}
}

// Translation creates a translation matrix.
func Translation(t bezier3d.Point3) Mat4 {
	m := Identity4()
	m[0][3], m[1][3], m[2][3] = t.X, t.Y, t.Z
	return m
}

// Perspective creates a right-handed perspective projection mapping the view
// frustum to clip space with z in [-1, 1] (the gluPerspective convention).
// fovY is the vertical field of view in radians.
func Perspective(fovY, aspect, near, far float64) Mat4 {
	f := 1 / math.Tan(fovY/2)
	nf := 1 / (near - far)
	return Mat4{
		{f / aspect, 0, 0, 0},
		{0, f, 0, 0},
		{0, 0, (far + near) * nf, 2 * far * near * nf},
		{0, 0, -1, 0},
	}
}

// LookAt creates a view matrix for an eye looking at target with the given
// up direction. It fails with ErrNumericDegenerate when eye equals target or
// the view direction is parallel to up.
func LookAt(eye, target, up bezier3d.Point3) (Mat4, error) {
	fwd := target.Sub(eye)
	if fwd.IsZero() {
		return Mat4{}, fmt.Errorf("%w: eye and target coincide", bezier3d.ErrNumericDegenerate)
	}
	f := fwd.Normalize()
	side := f.Cross(up)
	if side.LengthSq() < 1e-24 {
		return Mat4{}, fmt.Errorf("%w: view direction parallel to up", bezier3d.ErrNumericDegenerate)
	}
	s := side.Normalize()
	u := s.Cross(f)

	return Mat4{
		{s.X, s.Y, s.Z, -s.Dot(eye)},
		{u.X, u.Y, u.Z, -u.Dot(eye)},
		{-f.X, -f.Y, -f.Z, f.Dot(eye)},
		{0, 0, 0, 1},
	}, nil
}

// Multiply returns m * n.
func (m Mat4) Multiply(n Mat4) Mat4 {
	var out Mat4
	for r := range 4 {
		for c := range 4 {
			out[r][c] = m[r][0]*n[0][c] + m[r][1]*n[1][c] + m[r][2]*n[2][c] + m[r][3]*n[3][c]
		}
	}
	return out
}

// Transform applies m to the homogeneous point (p, 1) and returns the
// resulting x, y, z, w.
func (m Mat4) Transform(p bezier3d.Point3) (x, y, z, w float64) {
	x = m[0][0]*p.X + m[0][1]*p.Y + m[0][2]*p.Z + m[0][3]
	y = m[1][0]*p.X + m[1][1]*p.Y + m[1][2]*p.Z + m[1][3]
	z = m[2][0]*p.X + m[2][1]*p.Y + m[2][2]*p.Z + m[2][3]
	w = m[3][0]*p.X + m[3][1]*p.Y + m[3][2]*p.Z + m[3][3]
	return x, y, z, w
}

// TransformPoint applies m to p and performs the perspective divide.
func (m Mat4) TransformPoint(p bezier3d.Point3) bezier3d.Point3 {
	x, y, z, w := m.Transform(p)
	return bezier3d.P3(x/w, y/w, z/w)
}

// Float32 returns the matrix in column-major float32 order, the layout WGSL
// expects for a mat4x4<f32> uniform.
func (m Mat4) Float32() [16]float32 {
	var out [16]float32
	for c := range 4 {
		for r := range 4 {
			out[c*4+r] = float32(m[r][c])
		}
	}
	return out
}
