package bezier3d

import (
	"errors"
	"math"
	"testing"
)

func TestAxisQuaternion_UnitNorm(t *testing.T) {
	for _, axis := range []Axis{AxisX, AxisY, AxisZ} {
		for _, angle := range []float64{0, 0.3, math.Pi / 2, math.Pi, 5.5, -2} {
			q, err := AxisQuaternion(axis, angle)
			if err != nil {
				t.Fatalf("AxisQuaternion(%v, %v) error = %v", axis, angle, err)
			}
			if math.Abs(q.Norm()-1) > epsilon {
				t.Errorf("AxisQuaternion(%v, %v).Norm() = %v, want 1", axis, angle, q.Norm())
			}
		}
	}
}

func TestAxisQuaternion_HalfAngle(t *testing.T) {
	q, err := AxisQuaternion(AxisZ, math.Pi/3)
	if err != nil {
		t.Fatal(err)
	}
	want := Quaternion{W: math.Cos(math.Pi / 6), Z: math.Sin(math.Pi / 6)}
	if !q.Approx(want, epsilon) {
		t.Errorf("AxisQuaternion(Z, π/3) = %+v, want %+v", q, want)
	}
}

func TestAxisQuaternion_InvalidAxis(t *testing.T) {
	for _, axis := range []Axis{AxisNone, Axis(7)} {
		if _, err := AxisQuaternion(axis, 1); !errors.Is(err, ErrInvalidArgument) {
			t.Errorf("AxisQuaternion(%v) error = %v, want ErrInvalidArgument", axis, err)
		}
	}
}

func TestQuaternion_Mul(t *testing.T) {
	i := Quaternion{X: 1}
	j := Quaternion{Y: 1}
	k := Quaternion{Z: 1}

	tests := []struct {
		name string
		got  Quaternion
		want Quaternion
	}{
		{"ij=k", i.Mul(j), k},
		{"ji=-k", j.Mul(i), Quaternion{Z: -1}},
		{"jk=i", j.Mul(k), i},
		{"ki=j", k.Mul(i), j},
		{"ii=-1", i.Mul(i), Quaternion{W: -1}},
		{"identity", IdentityQuaternion().Mul(Quaternion{W: 2, X: 3, Y: 4, Z: 5}), Quaternion{W: 2, X: 3, Y: 4, Z: 5}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !tt.got.Approx(tt.want, epsilon) {
				t.Errorf("got %+v, want %+v", tt.got, tt.want)
			}
		})
	}
}

func TestQuaternion_Rotate(t *testing.T) {
	tests := []struct {
		name  string
		axis  Axis
		angle float64
		in    Point3
		want  Point3
	}{
		{"z quarter turn x->y", AxisZ, math.Pi / 2, P3(1, 0, 0), P3(0, 1, 0)},
		{"x quarter turn y->z", AxisX, math.Pi / 2, P3(0, 1, 0), P3(0, 0, 1)},
		{"y quarter turn z->x", AxisY, math.Pi / 2, P3(0, 0, 1), P3(1, 0, 0)},
		{"half turn about y", AxisY, math.Pi, P3(1, 2, 3), P3(-1, 2, -3)},
		{"on-axis point fixed", AxisX, 1.234, P3(5, 0, 0), P3(5, 0, 0)},
		{"zero angle", AxisZ, 0, P3(1, 2, 3), P3(1, 2, 3)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q, err := AxisQuaternion(tt.axis, tt.angle)
			if err != nil {
				t.Fatal(err)
			}
			if got := q.Rotate(tt.in); !got.Approx(tt.want, epsilon) {
				t.Errorf("Rotate(%v) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestQuaternion_RotatePreservesLength(t *testing.T) {
	p := P3(-2, 2.5, 7)
	q, _ := AxisQuaternion(AxisY, 2.1)
	if got := q.Rotate(p).Length(); math.Abs(got-p.Length()) > epsilon {
		t.Errorf("|Rotate(p)| = %v, want %v", got, p.Length())
	}
}

func TestQuaternion_ConjugateIsInverse(t *testing.T) {
	q, _ := AxisQuaternion(AxisX, 0.7)
	if got := q.Mul(q.Conjugate()); !got.Approx(IdentityQuaternion(), epsilon) {
		t.Errorf("q·q* = %+v, want identity", got)
	}
}
