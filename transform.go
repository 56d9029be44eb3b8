package bezier3d

import (
	"context"
	"fmt"
	"log/slog"
)

// ControlPoints holds the four ordered control points of a cubic curve.
// P0 and P3 are the curve endpoints; P1 and P2 shape the tangents.
type ControlPoints [4]Point3

// NewControlPoints converts a slice into ControlPoints.
// It fails with ErrInvalidArgument unless the slice holds exactly four points.
func NewControlPoints(points []Point3) (ControlPoints, error) {
	var cp ControlPoints
	if len(points) != len(cp) {
		return cp, fmt.Errorf("%w: need exactly 4 control points, got %d", ErrInvalidArgument, len(points))
	}
	copy(cp[:], points)
	return cp, nil
}

// DefaultControlPoints returns the initial control points of the editor.
func DefaultControlPoints() ControlPoints {
	return ControlPoints{
		{X: -2, Y: -2, Z: 3},
		{X: -1, Y: 2, Z: 0},
		{X: 1, Y: -1, Z: -4},
		{X: 2, Y: 1, Z: 1},
	}
}

// Slice returns the control points as a new slice.
func (cp ControlPoints) Slice() []Point3 {
	out := make([]Point3, len(cp))
	copy(out, cp[:])
	return out
}

// Curve returns the cubic Bézier curve defined by the control points.
func (cp ControlPoints) Curve() CubicBez3 {
	return CubicBez3{P0: cp[0], P1: cp[1], P2: cp[2], P3: cp[3]}
}

// TransformParameters is the flat parameter record driving the transform
// pipeline. Rotation angles are in radians.
type TransformParameters struct {
	Reflection Axis

	ScaleX, ScaleY, ScaleZ float64

	RotateX, RotateY, RotateZ float64

	TranslateX, TranslateY, TranslateZ float64

	ShearXY, ShearXZ float64
	ShearYX, ShearYZ float64
	ShearZX, ShearZY float64
}

// IdentityParameters returns parameters that leave every point unchanged.
func IdentityParameters() TransformParameters {
	return TransformParameters{ScaleX: 1, ScaleY: 1, ScaleZ: 1}
}

// IsIdentity reports whether p equals IdentityParameters.
func (p TransformParameters) IsIdentity() bool {
	return p == IdentityParameters()
}

// ShearMatrix returns the shear matrix built from the six coefficients.
func (p TransformParameters) ShearMatrix() Matrix3 {
	return ShearMatrix(p.ShearXY, p.ShearXZ, p.ShearYX, p.ShearYZ, p.ShearZX, p.ShearZY)
}

// Determinant returns the determinant of the linear part of the pipeline.
// Rotations have determinant 1, so only reflection, scale and shear
// contribute. A negative value means the transform mirrors the curve and
// zero means it flattens the curve onto a plane or a line.
func (p TransformParameters) Determinant() float64 {
	det := p.ShearMatrix().Multiply(ScaleMatrix(p.ScaleX, p.ScaleY, p.ScaleZ)).Determinant()
	if p.Reflection != AxisNone && p.Reflection.IsValid() {
		det = -det
	}
	return det
}

// Reflect negates the component of p selected by axis.
// AxisNone fails with ErrInvalidArgument: callers skip reflection instead.
func Reflect(p Point3, axis Axis) (Point3, error) {
	switch axis {
	case AxisX:
		return Point3{X: -p.X, Y: p.Y, Z: p.Z}, nil
	case AxisY:
		return Point3{X: p.X, Y: -p.Y, Z: p.Z}, nil
	case AxisZ:
		return Point3{X: p.X, Y: p.Y, Z: -p.Z}, nil
	default:
		return p, fmt.Errorf("%w: cannot reflect across axis %v", ErrInvalidArgument, axis)
	}
}

// Scale multiplies each component by its factor. Negative and zero factors
// are accepted.
func Scale(p Point3, kx, ky, kz float64) Point3 {
	return Point3{X: p.X * kx, Y: p.Y * ky, Z: p.Z * kz}
}

// RotateAxis rotates p by angle radians about a coordinate axis using the
// quaternion sandwich product.
func RotateAxis(p Point3, axis Axis, angle float64) (Point3, error) {
	q, err := AxisQuaternion(axis, angle)
	if err != nil {
		return p, err
	}
	return q.Rotate(p), nil
}

// Shear applies the matrix [[1,xy,xz],[yx,1,yz],[zx,zy,1]] to p.
func Shear(p Point3, xy, xz, yx, yz, zx, zy float64) Point3 {
	return ShearMatrix(xy, xz, yx, yz, zx, zy).TransformPoint(p)
}

// Translate adds the offsets to p.
func Translate(p Point3, tx, ty, tz float64) Point3 {
	return Point3{X: p.X + tx, Y: p.Y + ty, Z: p.Z + tz}
}

// Stage is one step of a Pipeline.
type Stage struct {
	Name  string
	Apply func(Point3) Point3
}

// Pipeline is the ordered list of stages compiled from TransformParameters:
// reflection, scale, rotation about x, then y, then z, shear, translation.
//
// The three rotations stay separate quaternion sandwiches applied in
// sequence. Composing them into one quaternion would change results for
// callers that depend on the sequential order.
type Pipeline struct {
	stages []Stage
}

// NewPipeline validates params and compiles the stage list.
// The reflection stage is omitted when params.Reflection is AxisNone.
func NewPipeline(params TransformParameters) (*Pipeline, error) {
	if !params.Reflection.IsValid() {
		return nil, fmt.Errorf("%w: reflection axis %v", ErrInvalidArgument, params.Reflection)
	}

	stages := make([]Stage, 0, 7)

	if params.Reflection != AxisNone {
		axis := params.Reflection
		stages = append(stages, Stage{Name: "reflect-" + axis.String(), Apply: func(p Point3) Point3 {
			r, _ := Reflect(p, axis) // axis validated above
			return r
		}})
	}

	kx, ky, kz := params.ScaleX, params.ScaleY, params.ScaleZ
	stages = append(stages, Stage{Name: "scale", Apply: func(p Point3) Point3 {
		return Scale(p, kx, ky, kz)
	}})

	for _, rot := range []struct {
		axis  Axis
		angle float64
	}{
		{AxisX, params.RotateX},
		{AxisY, params.RotateY},
		{AxisZ, params.RotateZ},
	} {
		q, err := AxisQuaternion(rot.axis, rot.angle)
		if err != nil {
			return nil, err
		}
		stages = append(stages, Stage{Name: "rotate-" + rot.axis.String(), Apply: q.Rotate})
	}

	shear := params.ShearMatrix()
	stages = append(stages, Stage{Name: "shear", Apply: shear.TransformPoint})

	tx, ty, tz := params.TranslateX, params.TranslateY, params.TranslateZ
	stages = append(stages, Stage{Name: "translate", Apply: func(p Point3) Point3 {
		return Translate(p, tx, ty, tz)
	}})

	return &Pipeline{stages: stages}, nil
}

// Stages returns the stage names in application order.
func (pl *Pipeline) Stages() []string {
	names := make([]string, len(pl.stages))
	for i, s := range pl.stages {
		names[i] = s.Name
	}
	return names
}

// Apply runs every stage across all points before the next stage starts.
// The input slice is not modified.
func (pl *Pipeline) Apply(points []Point3) []Point3 {
	out := make([]Point3, len(points))
	copy(out, points)
	for _, s := range pl.stages {
		for i := range out {
			out[i] = s.Apply(out[i])
		}
	}
	return out
}

// TransformAll maps the control points through the transform pipeline
// described by params.
func TransformAll(points ControlPoints, params TransformParameters) (ControlPoints, error) {
	out, err := TransformPoints(points[:], params)
	if err != nil {
		return ControlPoints{}, err
	}
	var cp ControlPoints
	copy(cp[:], out)
	return cp, nil
}

// TransformPoints is TransformAll for an arbitrary number of points.
func TransformPoints(points []Point3, params TransformParameters) ([]Point3, error) {
	pl, err := NewPipeline(params)
	if err != nil {
		return nil, err
	}
	if l := Logger(); l.Enabled(context.Background(), slog.LevelDebug) {
		l.Debug("bezier3d: transform", "points", len(points), "stages", pl.Stages(), "det", params.Determinant())
	}
	return pl.Apply(points), nil
}
