package bezier3d

import (
	"errors"
	"testing"
)

func TestParseAxis(t *testing.T) {
	tests := []struct {
		in      string
		want    Axis
		wantErr bool
	}{
		{"None", AxisNone, false},
		{"", AxisNone, false},
		{"x", AxisX, false},
		{"Y", AxisY, false},
		{" z ", AxisZ, false},
		{"w", AxisNone, true},
		{"xy", AxisNone, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseAxis(tt.in)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidArgument) {
					t.Errorf("ParseAxis(%q) error = %v, want ErrInvalidArgument", tt.in, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseAxis(%q) error = %v", tt.in, err)
			}
			if got != tt.want {
				t.Errorf("ParseAxis(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestAxis_StringRoundTrip(t *testing.T) {
	for _, a := range []Axis{AxisNone, AxisX, AxisY, AxisZ} {
		got, err := ParseAxis(a.String())
		if err != nil || got != a {
			t.Errorf("ParseAxis(%q) = %v, %v; want %v", a.String(), got, err, a)
		}
	}
	if s := Axis(9).String(); s != "Axis(9)" {
		t.Errorf("Axis(9).String() = %q", s)
	}
}

func TestAxis_Unit(t *testing.T) {
	if u, err := AxisY.Unit(); err != nil || u != P3(0, 1, 0) {
		t.Errorf("AxisY.Unit() = %v, %v", u, err)
	}
	for _, a := range []Axis{AxisNone, Axis(-1), Axis(4)} {
		if _, err := a.Unit(); !errors.Is(err, ErrInvalidArgument) {
			t.Errorf("%v.Unit() error = %v, want ErrInvalidArgument", a, err)
		}
	}
}

func TestAxis_IsValid(t *testing.T) {
	if !AxisNone.IsValid() || !AxisZ.IsValid() {
		t.Error("defined axes must be valid")
	}
	if Axis(-1).IsValid() || Axis(4).IsValid() {
		t.Error("out-of-range axes must be invalid")
	}
}
