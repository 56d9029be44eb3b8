// Package bezier3d evaluates and transforms an editable cubic Bézier curve
// in 3D.
//
// # Overview
//
// The package is the geometric core of an interactive curve editor. It takes
// four control points and a flat set of transformation parameters and
// produces the polyline that a renderer draws. It never touches a window,
// an input device or a graphics API; those live in sub-packages.
//
// # Quick Start
//
//	import "github.com/gogpu/bezier3d"
//
//	params := bezier3d.IdentityParameters()
//	params.RotateY = math.Pi / 4
//	params.Reflection = bezier3d.AxisX
//
//	cp, err := bezier3d.TransformAll(bezier3d.DefaultControlPoints(), params)
//	if err != nil {
//	    return err
//	}
//	curve, err := bezier3d.Evaluate(cp[:], bezier3d.DefaultSampleCount)
//
// # Transform Order
//
// TransformAll applies, in this order and each across all points before the
// next begins: reflection (skipped for AxisNone), per-axis scale, rotation
// about x, then y, then z (three separate quaternion sandwich products), shear,
// translation. The order is part of the contract.
//
// # Curve Evaluation
//
// Evaluate samples the curve uniformly in t with de Casteljau's algorithm.
// The first sample is P0 and the last is P3 exactly. EvaluateParallel splits
// the samples across a worker pool and returns the same points.
//
// # Errors
//
// Invalid axes, point counts other than four and sample counts below two
// fail with ErrInvalidArgument. Test with errors.Is.
//
// # Architecture
//
//   - bezier3d: Point3, Quaternion, Matrix3, TransformAll, Evaluate
//   - camera: perspective camera, fly controls, input event wiring
//   - render: software renderer producing PNG frames
//   - gpu: vertex data, layouts and compiled shaders for a WebGPU host
//   - internal/editor, internal/tui: parameter record and terminal editor
//   - cmd/bezier3d: command-line front end
package bezier3d

// Version information
const (
	// Version is the current version of the library
	Version = "0.1.0"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 1

	// VersionPatch is the patch version
	VersionPatch = 0
)
