package bezier3d

import (
	"math"
	"sort"
)

// Curve types for 3D Bézier geometry.

// Box3 represents an axis-aligned bounding box.
type Box3 struct {
	Min, Max Point3
}

// NewBox3 creates a box spanning two points; the corners are normalized
// so Min <= Max componentwise.
func NewBox3(p1, p2 Point3) Box3 {
	return Box3{
		Min: Point3{X: math.Min(p1.X, p2.X), Y: math.Min(p1.Y, p2.Y), Z: math.Min(p1.Z, p2.Z)},
		Max: Point3{X: math.Max(p1.X, p2.X), Y: math.Max(p1.Y, p2.Y), Z: math.Max(p1.Z, p2.Z)},
	}
}

// BoxOf returns the smallest box containing all points.
// It returns the zero box for an empty slice.
func BoxOf(points []Point3) Box3 {
	if len(points) == 0 {
		return Box3{}
	}
	b := NewBox3(points[0], points[0])
	for _, p := range points[1:] {
		b = b.Extend(p)
	}
	return b
}

// Extend returns the box grown to include p.
func (b Box3) Extend(p Point3) Box3 {
	return b.Union(NewBox3(p, p))
}

// Union returns the smallest box containing both b and other.
func (b Box3) Union(other Box3) Box3 {
	return Box3{
		Min: Point3{X: math.Min(b.Min.X, other.Min.X), Y: math.Min(b.Min.Y, other.Min.Y), Z: math.Min(b.Min.Z, other.Min.Z)},
		Max: Point3{X: math.Max(b.Max.X, other.Max.X), Y: math.Max(b.Max.Y, other.Max.Y), Z: math.Max(b.Max.Z, other.Max.Z)},
	}
}

// Center returns the midpoint of the box.
func (b Box3) Center() Point3 {
	return b.Min.Lerp(b.Max, 0.5)
}

// Size returns the extent of the box along each axis.
func (b Box3) Size() Point3 {
	return b.Max.Sub(b.Min)
}

// Contains returns true if p lies inside the box or on its boundary.
func (b Box3) Contains(p Point3) bool {
	return p.X >= b.Min.X && p.X <= b.Max.X &&
		p.Y >= b.Min.Y && p.Y <= b.Max.Y &&
		p.Z >= b.Min.Z && p.Z <= b.Max.Z
}

// -------------------------------------------------------------------
// QuadBez3 - Quadratic Bézier Curve
// -------------------------------------------------------------------

// QuadBez3 represents a quadratic Bézier curve. It appears as the
// derivative (hodograph) of a CubicBez3.
type QuadBez3 struct {
	P0, P1, P2 Point3
}

// Eval evaluates the curve at parameter t using de Casteljau's algorithm.
func (q QuadBez3) Eval(t float64) Point3 {
	return q.P0.Lerp(q.P1, t).Lerp(q.P1.Lerp(q.P2, t), t)
}

// -------------------------------------------------------------------
// CubicBez3 - Cubic Bézier Curve
// -------------------------------------------------------------------

// CubicBez3 represents a cubic Bézier curve with control points P0..P3.
// P0 is the start point, P1 and P2 are control points, P3 is the end point.
type CubicBez3 struct {
	P0, P1, P2, P3 Point3
}

// NewCubicBez3 creates a new cubic Bézier curve.
func NewCubicBez3(p0, p1, p2, p3 Point3) CubicBez3 {
	return CubicBez3{P0: p0, P1: p1, P2: p2, P3: p3}
}

// Eval evaluates the curve at parameter t by repeated linear interpolation
// (de Casteljau's algorithm). Eval(0) is P0 and Eval(1) is P3 exactly.
func (c CubicBez3) Eval(t float64) Point3 {
	p01 := c.P0.Lerp(c.P1, t)
	p12 := c.P1.Lerp(c.P2, t)
	p23 := c.P2.Lerp(c.P3, t)

	p012 := p01.Lerp(p12, t)
	p123 := p12.Lerp(p23, t)

	return p012.Lerp(p123, t)
}

// Start returns the starting point of the curve.
func (c CubicBez3) Start() Point3 {
	return c.P0
}

// End returns the ending point of the curve.
func (c CubicBez3) End() Point3 {
	return c.P3
}

// ControlPoints returns the curve's control points in order.
func (c CubicBez3) ControlPoints() ControlPoints {
	return ControlPoints{c.P0, c.P1, c.P2, c.P3}
}

// Deriv returns the derivative curve (a quadratic Bézier).
func (c CubicBez3) Deriv() QuadBez3 {
	return QuadBez3{
		P0: c.P1.Sub(c.P0).Mul(3),
		P1: c.P2.Sub(c.P1).Mul(3),
		P2: c.P3.Sub(c.P2).Mul(3),
	}
}

// Tangent returns the (unnormalized) tangent vector at parameter t.
func (c CubicBez3) Tangent(t float64) Point3 {
	return c.Deriv().Eval(t)
}

// Extrema returns the parameter values in [0, 1] where one of the
// coordinates reaches a local extremum, sorted ascending.
func (c CubicBez3) Extrema() []float64 {
	d0 := c.P1.Sub(c.P0)
	d1 := c.P2.Sub(c.P1)
	d2 := c.P3.Sub(c.P2)

	// Per axis, B'(t)/3 = a·t² + b·t + c with the coefficients below.
	result := make([]float64, 0, 6)
	for _, axis := range []Axis{AxisX, AxisY, AxisZ} {
		e0, e1, e2 := d0.Component(axis), d1.Component(axis), d2.Component(axis)
		a := e0 - 2*e1 + e2
		b := 2 * (e1 - e0)
		if a == 0 && b == 0 {
			// Constant derivative: monotone or flat along this axis.
			continue
		}
		result = append(result, SolveQuadraticInUnitInterval(a, b, e0)...)
	}

	sort.Float64s(result)
	return result
}

// BoundingBox returns the tight axis-aligned bounding box of the curve.
func (c CubicBez3) BoundingBox() Box3 {
	box := NewBox3(c.P0, c.P3)
	for _, t := range c.Extrema() {
		box = box.Extend(c.Eval(t))
	}
	return box
}
