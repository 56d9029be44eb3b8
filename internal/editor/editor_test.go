package editor

import (
	"errors"
	"math"
	"testing"

	"github.com/gogpu/bezier3d"
)

const epsilon = 1e-9

func fieldIndex(t *testing.T, e *Editor, label string) int {
	t.Helper()
	for i, f := range e.Fields() {
		if f.Label == label {
			return i
		}
	}
	t.Fatalf("no field %q", label)
	return -1
}

func TestFieldsLayout(t *testing.T) {
	e := Default()
	// 12 control coordinates, 3 scale, 3 rotation, 3 translation, 6 shear, 1 reflection.
	if got, want := e.Len(), 12+3+3+3+6+1; got != want {
		t.Fatalf("Len() = %d, want %d", got, want)
	}
	if got := e.Fields()[0].Label; got != "P0.x" {
		t.Errorf("first field = %q, want P0.x", got)
	}
	if got := e.Fields()[e.Len()-1].Kind; got != KindReflection {
		t.Errorf("last field kind = %v, want %v", got, KindReflection)
	}
}

func TestNewValidates(t *testing.T) {
	params := bezier3d.IdentityParameters()
	params.Reflection = bezier3d.Axis(7)
	if _, err := New(bezier3d.DefaultControlPoints(), params, 10); !errors.Is(err, bezier3d.ErrInvalidArgument) {
		t.Errorf("bad reflection: error = %v, want ErrInvalidArgument", err)
	}
	if _, err := New(bezier3d.DefaultControlPoints(), bezier3d.IdentityParameters(), 1); !errors.Is(err, bezier3d.ErrInvalidArgument) {
		t.Errorf("sampleCount 1: error = %v, want ErrInvalidArgument", err)
	}
}

func TestSetClampsToBounds(t *testing.T) {
	tests := []struct {
		label string
		in    float64
		want  float64
	}{
		{"Scale X", 10, 5},
		{"Scale Y", 0, 0.1},
		{"Translate Z", -7, -5},
		{"Shear XY", 2, 1},
		{"Shear ZY", -0.5, -0.5},
		{"Rotate Y", 400, 360},
		{"Rotate X", -10, 0},
		{"P2.y", 123.4, 123.4}, // control points are unbounded
	}
	for _, tt := range tests {
		t.Run(tt.label, func(t *testing.T) {
			e := Default()
			i := fieldIndex(t, e, tt.label)
			if err := e.Set(i, tt.in); err != nil {
				t.Fatalf("Set: %v", err)
			}
			if got := e.Value(i); math.Abs(got-tt.want) > epsilon {
				t.Errorf("Value = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestRotationStoredInRadians(t *testing.T) {
	e := Default()
	i := fieldIndex(t, e, "Rotate Z")
	if err := e.Set(i, 90); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if got := e.Parameters().RotateZ; math.Abs(got-math.Pi/2) > epsilon {
		t.Errorf("RotateZ = %v, want π/2", got)
	}
	if got := e.Value(i); math.Abs(got-90) > epsilon {
		t.Errorf("Value = %v, want 90", got)
	}
}

func TestControlPointEdit(t *testing.T) {
	e := Default()
	i := fieldIndex(t, e, "P1.z")
	if err := e.Adjust(i, 3); err != nil {
		t.Fatalf("Adjust: %v", err)
	}
	want := bezier3d.DefaultControlPoints()[1].Z + 0.3
	if got := e.ControlPoints()[1].Z; math.Abs(got-want) > epsilon {
		t.Errorf("P1.z = %v, want %v", got, want)
	}
	if e.ControlPoints()[1].X != bezier3d.DefaultControlPoints()[1].X {
		t.Error("adjusting z changed x")
	}
}

func TestAdjustStopsAtBounds(t *testing.T) {
	e := Default()
	i := fieldIndex(t, e, "Scale X")
	for range 100 {
		if err := e.Adjust(i, 1); err != nil {
			t.Fatalf("Adjust: %v", err)
		}
	}
	if got := e.Value(i); got != 5 {
		t.Errorf("Value = %v, want 5", got)
	}
}

func TestReflectionCycles(t *testing.T) {
	e := Default()
	i := fieldIndex(t, e, "Reflect")

	want := []bezier3d.Axis{bezier3d.AxisX, bezier3d.AxisY, bezier3d.AxisZ, bezier3d.AxisNone}
	for _, w := range want {
		if err := e.Adjust(i, 1); err != nil {
			t.Fatalf("Adjust: %v", err)
		}
		if got := e.Parameters().Reflection; got != w {
			t.Errorf("Reflection = %v, want %v", got, w)
		}
	}
	if err := e.Adjust(i, -1); err != nil {
		t.Fatalf("Adjust: %v", err)
	}
	if got := e.Parameters().Reflection; got != bezier3d.AxisZ {
		t.Errorf("Reflection after -1 = %v, want Z", got)
	}
}

func TestSetReflectionRejectsFractions(t *testing.T) {
	e := Default()
	i := fieldIndex(t, e, "Reflect")
	for _, v := range []float64{1.5, 4, -1} {
		if err := e.Set(i, v); !errors.Is(err, bezier3d.ErrInvalidArgument) {
			t.Errorf("Set(%v) error = %v, want ErrInvalidArgument", v, err)
		}
	}
}

func TestSetInvalid(t *testing.T) {
	e := Default()
	if err := e.Set(-1, 0); !errors.Is(err, bezier3d.ErrInvalidArgument) {
		t.Errorf("Set(-1) error = %v, want ErrInvalidArgument", err)
	}
	if err := e.Adjust(e.Len(), 1); !errors.Is(err, bezier3d.ErrInvalidArgument) {
		t.Errorf("Adjust(Len) error = %v, want ErrInvalidArgument", err)
	}
	if err := e.Set(0, math.NaN()); !errors.Is(err, bezier3d.ErrInvalidArgument) {
		t.Errorf("Set(NaN) error = %v, want ErrInvalidArgument", err)
	}
}

func TestSelectWraps(t *testing.T) {
	e := Default()
	e.Select(-1)
	if got := e.Selected(); got != e.Len()-1 {
		t.Errorf("Selected = %d, want %d", got, e.Len()-1)
	}
	e.Select(e.Len())
	if got := e.Selected(); got != 0 {
		t.Errorf("Selected = %d, want 0", got)
	}
}

func TestReset(t *testing.T) {
	e := Default()
	_ = e.Set(fieldIndex(t, e, "Translate X"), 2)
	_ = e.Set(fieldIndex(t, e, "P0.x"), 9)
	e.Reset()
	if !e.Parameters().IsIdentity() {
		t.Errorf("Parameters after Reset = %+v, want identity", e.Parameters())
	}
	if e.ControlPoints() != bezier3d.DefaultControlPoints() {
		t.Errorf("ControlPoints after Reset = %v", e.ControlPoints())
	}
}

func TestFrameFollowsState(t *testing.T) {
	e := Default()
	_ = e.Set(fieldIndex(t, e, "Translate Y"), 1)

	f, err := e.Frame()
	if err != nil {
		t.Fatalf("Frame: %v", err)
	}
	if len(f.Samples) != e.SampleCount() {
		t.Errorf("len(Samples) = %d, want %d", len(f.Samples), e.SampleCount())
	}
	want := bezier3d.DefaultControlPoints()[0].Add(bezier3d.P3(0, 1, 0))
	if !f.Control[0].Approx(want, epsilon) || !f.Samples[0].Approx(want, epsilon) {
		t.Errorf("P0 = %v, sample 0 = %v, want %v", f.Control[0], f.Samples[0], want)
	}
}

func TestKindString(t *testing.T) {
	if KindShear.String() != "Shear" || Kind(42).String() != "Kind(42)" {
		t.Errorf("unexpected Kind strings %q, %q", KindShear.String(), Kind(42).String())
	}
}
