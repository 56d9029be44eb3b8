// Package editor holds the interactively edited curve state: four control
// points and the transform parameters, exposed as a flat list of bounded
// fields that a front end can select and adjust.
package editor

import (
	"fmt"
	"math"

	"github.com/gogpu/bezier3d"
	"github.com/gogpu/bezier3d/render"
)

// Kind groups fields by what they edit.
type Kind int

const (
	// KindControl fields edit one coordinate of a control point.
	KindControl Kind = iota
	// KindScale fields edit a per-axis scale factor.
	KindScale
	// KindRotation fields edit a rotation angle, shown in degrees.
	KindRotation
	// KindTranslate fields edit a per-axis offset.
	KindTranslate
	// KindShear fields edit one off-diagonal shear coefficient.
	KindShear
	// KindReflection is the reflection axis selector.
	KindReflection
)

// String returns the section title for k.
func (k Kind) String() string {
	switch k {
	case KindControl:
		return "Control Points"
	case KindScale:
		return "Scale"
	case KindRotation:
		return "Rotation"
	case KindTranslate:
		return "Translation"
	case KindShear:
		return "Shear"
	case KindReflection:
		return "Reflection"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Field describes one editable value. Values are in display units:
// rotations in degrees, the reflection field as an axis index 0..3.
type Field struct {
	Label string
	Kind  Kind
	Step  float64

	// Bounded fields are clamped to [Min, Max].
	Bounded  bool
	Min, Max float64

	get func(*state) float64
	set func(*state, float64)
}

type state struct {
	control bezier3d.ControlPoints
	params  bezier3d.TransformParameters
}

// Editor is the mutable parameter record. It is not safe for concurrent use.
type Editor struct {
	initial  state
	cur      state
	samples  int
	fields   []Field
	selected int
}

// New returns an editor starting from control and params. sampleCount is
// used by Frame.
func New(control bezier3d.ControlPoints, params bezier3d.TransformParameters, sampleCount int) (*Editor, error) {
	if !params.Reflection.IsValid() {
		return nil, fmt.Errorf("%w: reflection axis %v", bezier3d.ErrInvalidArgument, params.Reflection)
	}
	if sampleCount < 2 {
		return nil, fmt.Errorf("%w: sample count %d", bezier3d.ErrInvalidArgument, sampleCount)
	}
	s := state{control: control, params: params}
	return &Editor{initial: s, cur: s, samples: sampleCount, fields: buildFields()}, nil
}

// Default returns an editor on the default control points with identity
// transform parameters.
func Default() *Editor {
	e, _ := New(bezier3d.DefaultControlPoints(), bezier3d.IdentityParameters(), bezier3d.DefaultSampleCount)
	return e
}

// Fields returns the editable fields in display order.
func (e *Editor) Fields() []Field {
	return e.fields
}

// Len returns the number of fields.
func (e *Editor) Len() int {
	return len(e.fields)
}

// Selected returns the index of the selected field.
func (e *Editor) Selected() int {
	return e.selected
}

// Select selects field i, wrapping around at either end.
func (e *Editor) Select(i int) {
	n := len(e.fields)
	e.selected = ((i % n) + n) % n
}

// Value returns field i in display units.
func (e *Editor) Value(i int) float64 {
	return e.fields[i].get(&e.cur)
}

// Set assigns field i, clamping bounded fields. The reflection field
// accepts only whole axis indices 0..3.
func (e *Editor) Set(i int, v float64) error {
	if i < 0 || i >= len(e.fields) {
		return fmt.Errorf("%w: field index %d", bezier3d.ErrInvalidArgument, i)
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return fmt.Errorf("%w: value %v", bezier3d.ErrInvalidArgument, v)
	}
	f := e.fields[i]
	if f.Kind == KindReflection {
		a := bezier3d.Axis(v)
		if float64(a) != v || !a.IsValid() {
			return fmt.Errorf("%w: reflection axis %v", bezier3d.ErrInvalidArgument, v)
		}
	}
	if f.Bounded {
		v = math.Max(f.Min, math.Min(f.Max, v))
	}
	f.set(&e.cur, v)
	return nil
}

// Adjust moves field i by steps increments of its Step. The reflection
// field cycles None, X, Y, Z.
func (e *Editor) Adjust(i int, steps float64) error {
	if i < 0 || i >= len(e.fields) {
		return fmt.Errorf("%w: field index %d", bezier3d.ErrInvalidArgument, i)
	}
	f := e.fields[i]
	if f.Kind == KindReflection {
		n := int(f.Max) + 1
		next := (int(e.Value(i)) + int(math.Round(steps))) % n
		if next < 0 {
			next += n
		}
		return e.Set(i, float64(next))
	}
	// Round to the step grid so repeated adjustments do not drift.
	v := e.Value(i) + steps*f.Step
	v = math.Round(v/f.Step) * f.Step
	return e.Set(i, v)
}

// Reset restores the state the editor was created with.
func (e *Editor) Reset() {
	e.cur = e.initial
}

// ControlPoints returns the current untransformed control points.
func (e *Editor) ControlPoints() bezier3d.ControlPoints {
	return e.cur.control
}

// Parameters returns the current transform parameters.
func (e *Editor) Parameters() bezier3d.TransformParameters {
	return e.cur.params
}

// SampleCount returns the number of curve samples Frame produces.
func (e *Editor) SampleCount() int {
	return e.samples
}

// Frame transforms the current control points and samples the curve.
func (e *Editor) Frame() (render.Frame, error) {
	return render.NewFrame(e.cur.control, e.cur.params, e.samples)
}

const (
	controlStep   = 0.1
	scaleStep     = 0.1
	rotationStep  = 5.0 // degrees
	translateStep = 0.1
	shearStep     = 0.05
)

func buildFields() []Field {
	var fs []Field

	for i := range 4 {
		for _, axis := range []bezier3d.Axis{bezier3d.AxisX, bezier3d.AxisY, bezier3d.AxisZ} {
			fs = append(fs, Field{
				Label: fmt.Sprintf("P%d.%s", i, axisName(axis)),
				Kind:  KindControl,
				Step:  controlStep,
				get:   func(s *state) float64 { return s.control[i].Component(axis) },
				set:   func(s *state, v float64) { setComponent(&s.control[i], axis, v) },
			})
		}
	}

	p := func(get func(*bezier3d.TransformParameters) *float64) (func(*state) float64, func(*state, float64)) {
		return func(s *state) float64 { return *get(&s.params) },
			func(s *state, v float64) { *get(&s.params) = v }
	}
	add := func(label string, kind Kind, step, lo, hi float64, get func(*bezier3d.TransformParameters) *float64) {
		g, st := p(get)
		fs = append(fs, Field{Label: label, Kind: kind, Step: step, Bounded: true, Min: lo, Max: hi, get: g, set: st})
	}
	addDeg := func(label string, get func(*bezier3d.TransformParameters) *float64) {
		fs = append(fs, Field{
			Label: label, Kind: KindRotation, Step: rotationStep, Bounded: true, Min: 0, Max: 360,
			get: func(s *state) float64 { return *get(&s.params) * 180 / math.Pi },
			set: func(s *state, v float64) { *get(&s.params) = v * math.Pi / 180 },
		})
	}

	add("Scale X", KindScale, scaleStep, 0.1, 5, func(t *bezier3d.TransformParameters) *float64 { return &t.ScaleX })
	add("Scale Y", KindScale, scaleStep, 0.1, 5, func(t *bezier3d.TransformParameters) *float64 { return &t.ScaleY })
	add("Scale Z", KindScale, scaleStep, 0.1, 5, func(t *bezier3d.TransformParameters) *float64 { return &t.ScaleZ })

	addDeg("Rotate X", func(t *bezier3d.TransformParameters) *float64 { return &t.RotateX })
	addDeg("Rotate Y", func(t *bezier3d.TransformParameters) *float64 { return &t.RotateY })
	addDeg("Rotate Z", func(t *bezier3d.TransformParameters) *float64 { return &t.RotateZ })

	add("Translate X", KindTranslate, translateStep, -5, 5, func(t *bezier3d.TransformParameters) *float64 { return &t.TranslateX })
	add("Translate Y", KindTranslate, translateStep, -5, 5, func(t *bezier3d.TransformParameters) *float64 { return &t.TranslateY })
	add("Translate Z", KindTranslate, translateStep, -5, 5, func(t *bezier3d.TransformParameters) *float64 { return &t.TranslateZ })

	add("Shear XY", KindShear, shearStep, -1, 1, func(t *bezier3d.TransformParameters) *float64 { return &t.ShearXY })
	add("Shear XZ", KindShear, shearStep, -1, 1, func(t *bezier3d.TransformParameters) *float64 { return &t.ShearXZ })
	add("Shear YX", KindShear, shearStep, -1, 1, func(t *bezier3d.TransformParameters) *float64 { return &t.ShearYX })
	add("Shear YZ", KindShear, shearStep, -1, 1, func(t *bezier3d.TransformParameters) *float64 { return &t.ShearYZ })
	add("Shear ZX", KindShear, shearStep, -1, 1, func(t *bezier3d.TransformParameters) *float64 { return &t.ShearZX })
	add("Shear ZY", KindShear, shearStep, -1, 1, func(t *bezier3d.TransformParameters) *float64 { return &t.ShearZY })

	fs = append(fs, Field{
		Label: "Reflect", Kind: KindReflection, Step: 1, Bounded: true, Min: 0, Max: float64(bezier3d.AxisZ),
		get: func(s *state) float64 { return float64(s.params.Reflection) },
		set: func(s *state, v float64) { s.params.Reflection = bezier3d.Axis(v) },
	})
	return fs
}

func axisName(a bezier3d.Axis) string {
	switch a {
	case bezier3d.AxisX:
		return "x"
	case bezier3d.AxisY:
		return "y"
	default:
		return "z"
	}
}

func setComponent(p *bezier3d.Point3, axis bezier3d.Axis, v float64) {
	switch axis {
	case bezier3d.AxisX:
		p.X = v
	case bezier3d.AxisY:
		p.Y = v
	case bezier3d.AxisZ:
		p.Z = v
	}
}
