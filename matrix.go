package bezier3d

// Matrix3 represents a 3D linear map as a 3x3 matrix in row-major order:
//
//	| a  b  c |
//	| d  e  f |
//	| g  h  i |
//
// This represents the transformation:
//
//	x' = a*x + b*y + c*z
//	y' = d*x + e*y + f*z
//	z' = g*x + h*y + i*z
type Matrix3 struct {
	A, B, C float64
	D, E, F float64
	G, H, I float64
}

// ScaleMatrix creates a per-axis scaling matrix.
func ScaleMatrix(kx, ky, kz float64) Matrix3 {
	return Matrix3{
		A: kx,
		E: ky,
		I: kz,
	}
}

// ShearMatrix creates the shear matrix
//
//	| 1   xy  xz |
//	| yx  1   yz |
//	| zx  zy  1  |
func ShearMatrix(xy, xz, yx, yz, zx, zy float64) Matrix3 {
	return Matrix3{
		A: 1, B: xy, C: xz,
		D: yx, E: 1, F: yz,
		G: zx, H: zy, I: 1,
	}
}

// Multiply multiplies two matrices (m * other).
// Applying the result is the same as applying other first, then m.
func (m Matrix3) Multiply(other Matrix3) Matrix3 {
	return Matrix3{
		A: m.A*other.A + m.B*other.D + m.C*other.G,
		B: m.A*other.B + m.B*other.E + m.C*other.H,
		C: m.A*other.C + m.B*other.F + m.C*other.I,
		D: m.D*other.A + m.E*other.D + m.F*other.G,
		E: m.D*other.B + m.E*other.E + m.F*other.H,
		F: m.D*other.C + m.E*other.F + m.F*other.I,
		G: m.G*other.A + m.H*other.D + m.I*other.G,
		H: m.G*other.B + m.H*other.E + m.I*other.H,
		I: m.G*other.C + m.H*other.F + m.I*other.I,
	}
}

// TransformPoint applies the matrix to a point.
func (m Matrix3) TransformPoint(p Point3) Point3 {
	return Point3{
		X: m.A*p.X + m.B*p.Y + m.C*p.Z,
		Y: m.D*p.X + m.E*p.Y + m.F*p.Z,
		Z: m.G*p.X + m.H*p.Y + m.I*p.Z,
	}
}

// Determinant returns the determinant of the matrix.
func (m Matrix3) Determinant() float64 {
	return m.A*(m.E*m.I-m.F*m.H) -
		m.B*(m.D*m.I-m.F*m.G) +
		m.C*(m.D*m.H-m.E*m.G)
}
