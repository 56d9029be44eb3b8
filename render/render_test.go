// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/png"
	"path/filepath"
	"testing"

	"github.com/gogpu/bezier3d"
	"github.com/gogpu/bezier3d/camera"
)

func defaultFrame(t *testing.T) Frame {
	t.Helper()
	f, err := NewFrame(bezier3d.DefaultControlPoints(), bezier3d.IdentityParameters(), bezier3d.DefaultSampleCount)
	if err != nil {
		t.Fatalf("NewFrame: %v", err)
	}
	return f
}

// colorTolerance absorbs resampling round-off in flat regions.
const colorTolerance = 3

func isColor(c color.Color, want color.RGBA) bool {
	r, g, b, a := c.RGBA()
	return near(uint8(r>>8), want.R) && near(uint8(g>>8), want.G) &&
		near(uint8(b>>8), want.B) && near(uint8(a>>8), want.A)
}

func near(a, b uint8) bool {
	d := int(a) - int(b)
	return d >= -colorTolerance && d <= colorTolerance
}

func countColor(img *image.RGBA, want color.RGBA) int {
	n := 0
	b := img.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			if isColor(img.RGBAAt(x, y), want) {
				n++
			}
		}
	}
	return n
}

func TestNewFrame(t *testing.T) {
	f := defaultFrame(t)
	if len(f.Samples) != bezier3d.DefaultSampleCount {
		t.Fatalf("len(Samples) = %d, want %d", len(f.Samples), bezier3d.DefaultSampleCount)
	}
	if f.Samples[0] != f.Control[0] || f.Samples[len(f.Samples)-1] != f.Control[3] {
		t.Errorf("samples do not start at P0 and end at P3")
	}
	box := f.Bounds()
	for _, p := range f.Samples {
		if !box.Contains(p) {
			t.Errorf("Bounds %v does not contain sample %v", box, p)
		}
	}
}

func TestNewFrameErrors(t *testing.T) {
	if _, err := NewFrame(bezier3d.DefaultControlPoints(), bezier3d.IdentityParameters(), 1); !errors.Is(err, bezier3d.ErrInvalidArgument) {
		t.Errorf("sampleCount 1: error = %v, want ErrInvalidArgument", err)
	}
	params := bezier3d.IdentityParameters()
	params.Reflection = bezier3d.Axis(9)
	if _, err := NewFrame(bezier3d.DefaultControlPoints(), params, 10); !errors.Is(err, bezier3d.ErrInvalidArgument) {
		t.Errorf("bad reflection: error = %v, want ErrInvalidArgument", err)
	}
}

func TestFrameBoundsWithoutSamples(t *testing.T) {
	f := Frame{Control: bezier3d.ControlPoints{
		bezier3d.P3(1, 1, 1), bezier3d.P3(2, 2, 2), bezier3d.P3(3, 3, 3), bezier3d.P3(4, 4, 4),
	}}
	if got := f.Bounds(); got.Min != bezier3d.P3(1, 1, 1) {
		t.Errorf("Bounds().Min = %v, want (1, 1, 1)", got.Min)
	}
}

func TestFrameBoundsCoversCurveExtrema(t *testing.T) {
	f := Frame{Control: bezier3d.DefaultControlPoints()}
	curve := f.Control.Curve()
	box := f.Bounds()
	if want := curve.BoundingBox(); box.Union(want) != box {
		t.Errorf("Bounds %v does not contain curve box %v", box, want)
	}
	for _, tv := range curve.Extrema() {
		if p := curve.Eval(tv); !box.Contains(p) {
			t.Errorf("Bounds %v does not contain extremum %v at t=%v", box, p, tv)
		}
	}
}

func TestRenderDefault(t *testing.T) {
	const w, h = 320, 240
	style := DefaultStyle()
	r, err := NewRenderer(style)
	if err != nil {
		t.Fatalf("NewRenderer: %v", err)
	}
	defer r.Close()

	frame := defaultFrame(t)
	cam := camera.New(w, h)
	cam.Fit(frame.Bounds())
	img, err := r.Render(frame, cam, w, h)
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if img.Bounds().Dx() != w || img.Bounds().Dy() != h {
		t.Fatalf("size = %v, want %dx%d", img.Bounds(), w, h)
	}

	if !isColor(img.At(0, 0), style.Background) {
		t.Errorf("corner = %v, want background %v", img.At(0, 0), style.Background)
	}
	if n := countColor(img, style.CurveColor); n == 0 {
		t.Error("no curve pixels drawn")
	}

	// Marker centers are solid point color.
	pr := cam.Projector(w, h)
	for i, p := range frame.Control {
		x, y, _, ok := pr.Project(p)
		if !ok {
			t.Fatalf("control point %d not visible", i)
		}
		if x < 0 || x >= w || y < 0 || y >= h {
			t.Fatalf("P%d projects to (%.1f, %.1f), outside %dx%d after Fit", i, x, y, w, h)
		}
		if c := img.At(int(x), int(y)); !isColor(c, style.PointColor) {
			t.Errorf("P%d center (%d, %d) = %v, want %v", i, int(x), int(y), c, style.PointColor)
		}
	}
}

func TestRenderNoSupersample(t *testing.T) {
	style := DefaultStyle()
	style.Supersample = 0
	style.LabelSize = 0
	r, err := NewRenderer(style)
	if err != nil {
		t.Fatalf("NewRenderer: %v", err)
	}
	img, err := r.Render(defaultFrame(t), camera.New(100, 100), 100, 100)
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if countColor(img, style.CurveColor) == 0 {
		t.Error("no curve pixels drawn")
	}
}

func TestRenderInvalidSize(t *testing.T) {
	r, err := NewRenderer(Style{})
	if err != nil {
		t.Fatalf("NewRenderer: %v", err)
	}
	for _, size := range [][2]int{{0, 10}, {10, 0}, {-1, -1}} {
		_, err := r.Render(Frame{}, camera.New(10, 10), size[0], size[1])
		if !errors.Is(err, bezier3d.ErrInvalidArgument) {
			t.Errorf("Render(%v) error = %v, want ErrInvalidArgument", size, err)
		}
	}
}

func TestRenderCurveBehindCamera(t *testing.T) {
	style := DefaultStyle()
	style.LabelSize = 0
	r, err := NewRenderer(style)
	if err != nil {
		t.Fatalf("NewRenderer: %v", err)
	}
	cam := camera.New(64, 64)
	cam.Yaw += 3.14159 // face away from the curve

	img, err := r.Render(defaultFrame(t), cam, 64, 64)
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if n := countColor(img, style.Background); n != 64*64 {
		t.Errorf("background pixels = %d, want %d", n, 64*64)
	}
}

func TestLabelMeasure(t *testing.T) {
	l, err := newLabeler(20)
	if err != nil {
		t.Fatalf("newLabeler: %v", err)
	}
	defer l.close()

	if ext := l.measure(""); ext != (extent{}) {
		t.Errorf("measure(\"\") = %+v, want zero", ext)
	}
	short, long := l.measure("P"), l.measure("P0 P1")
	if short.width <= 0 || short.ascent <= 0 {
		t.Errorf("measure(P) = %+v, want positive width and ascent", short)
	}
	if long.width <= short.width {
		t.Errorf("width(P0 P1) = %v, want > width(P) = %v", long.width, short.width)
	}
}

func TestLabelDraw(t *testing.T) {
	l, err := newLabeler(16)
	if err != nil {
		t.Fatalf("newLabeler: %v", err)
	}
	defer l.close()

	img := image.NewRGBA(image.Rect(0, 0, 40, 30))
	white := color.RGBA{255, 255, 255, 255}
	l.draw(img, "P0", 20, 25, white)

	lit := 0
	for i := 3; i < len(img.Pix); i += 4 {
		if img.Pix[i] > 0 {
			lit++
		}
	}
	if lit == 0 {
		t.Error("label drew no pixels")
	}
}

func TestPNG(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 7, 5))
	img.SetRGBA(3, 2, color.RGBA{1, 2, 3, 255})

	var buf bytes.Buffer
	if err := EncodePNG(&buf, img); err != nil {
		t.Fatalf("EncodePNG: %v", err)
	}
	dec, err := png.Decode(&buf)
	if err != nil {
		t.Fatalf("png.Decode: %v", err)
	}
	if dec.Bounds() != img.Bounds() {
		t.Errorf("bounds = %v, want %v", dec.Bounds(), img.Bounds())
	}

	path := filepath.Join(t.TempDir(), "out.png")
	if err := SavePNG(path, img); err != nil {
		t.Fatalf("SavePNG: %v", err)
	}
	if err := SavePNG(filepath.Join(t.TempDir(), "missing", "out.png"), img); err == nil {
		t.Error("SavePNG into missing directory succeeded")
	}
}
