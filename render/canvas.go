// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"image"
	"image/color"
	"math"

	"golang.org/x/image/vector"
)

// circleSegments is the polygon resolution used for round joins.
const circleSegments = 16

// canvas fills shapes into an RGBA image through a vector rasterizer.
// All subpaths added between begin and fill share one coverage mask, and
// every shape is emitted with the same winding so overlaps saturate
// instead of cancelling.
type canvas struct {
	dst  *image.RGBA
	rast *vector.Rasterizer
}

func newCanvas(dst *image.RGBA) *canvas {
	b := dst.Bounds()
	return &canvas{dst: dst, rast: vector.NewRasterizer(b.Dx(), b.Dy())}
}

func (c *canvas) begin() {
	b := c.dst.Bounds()
	c.rast.Reset(b.Dx(), b.Dy())
}

func (c *canvas) fill(col color.RGBA) {
	c.rast.Draw(c.dst, c.dst.Bounds(), image.NewUniform(col), image.Point{})
}

// polyline adds a stroke of the given width through pts with round joins
// and caps.
func (c *canvas) polyline(pts []vec2, width float64) {
	half := width / 2
	for i := 1; i < len(pts); i++ {
		c.segment(pts[i-1], pts[i], half)
	}
	for _, p := range pts {
		c.circle(p, half)
	}
}

// segment adds the rectangle covering a to b with half-width h.
func (c *canvas) segment(a, b vec2, h float64) {
	dx, dy := b.x-a.x, b.y-a.y
	l := math.Hypot(dx, dy)
	if l == 0 {
		return
	}
	nx, ny := -dy/l*h, dx/l*h
	c.rast.MoveTo(float32(a.x+nx), float32(a.y+ny))
	c.rast.LineTo(float32(b.x+nx), float32(b.y+ny))
	c.rast.LineTo(float32(b.x-nx), float32(b.y-ny))
	c.rast.LineTo(float32(a.x-nx), float32(a.y-ny))
	c.rast.ClosePath()
}

func (c *canvas) circle(p vec2, r float64) {
	if r <= 0 {
		return
	}
	c.rast.MoveTo(float32(p.x+r), float32(p.y))
	for i := 1; i < circleSegments; i++ {
		s, co := math.Sincos(-2 * math.Pi * float64(i) / circleSegments)
		c.rast.LineTo(float32(p.x+r*co), float32(p.y+r*s))
	}
	c.rast.ClosePath()
}

// square adds an axis-aligned square of side size centered on p.
func (c *canvas) square(p vec2, size float64) {
	h := size / 2
	c.rast.MoveTo(float32(p.x-h), float32(p.y+h))
	c.rast.LineTo(float32(p.x+h), float32(p.y+h))
	c.rast.LineTo(float32(p.x+h), float32(p.y-h))
	c.rast.LineTo(float32(p.x-h), float32(p.y-h))
	c.rast.ClosePath()
}

type vec2 struct{ x, y float64 }

func (v vec2) scale(s float64) vec2 { return vec2{v.x * s, v.y * s} }
