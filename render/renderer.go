// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"fmt"
	"image"
	"image/draw"
	"strconv"

	xdraw "golang.org/x/image/draw"

	"github.com/gogpu/bezier3d"
	"github.com/gogpu/bezier3d/camera"
)

// labelGap is the distance in pixels between a marker and its label.
const labelGap = 4

// Renderer draws frames on the CPU. A Renderer is safe for concurrent use.
type Renderer struct {
	style  Style
	labels *labeler
}

// NewRenderer creates a renderer with the given style. It loads the label
// font when style.LabelSize is positive.
func NewRenderer(style Style) (*Renderer, error) {
	r := &Renderer{style: style}
	if style.LabelSize > 0 {
		l, err := newLabeler(style.LabelSize)
		if err != nil {
			return nil, err
		}
		r.labels = l
	}
	return r, nil
}

// Style returns the renderer's style.
func (r *Renderer) Style() Style {
	return r.style
}

// Close releases the label font.
func (r *Renderer) Close() error {
	if r.labels == nil {
		return nil
	}
	return r.labels.close()
}

// Render draws frame as seen by cam into a new width x height image.
func (r *Renderer) Render(frame Frame, cam *camera.Camera, width, height int) (*image.RGBA, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: image size %dx%d", bezier3d.ErrInvalidArgument, width, height)
	}
	dst := image.NewRGBA(image.Rect(0, 0, width, height))
	r.RenderTo(dst, frame, cam)
	return dst, nil
}

// RenderTo draws frame as seen by cam over the whole of dst.
func (r *Renderer) RenderTo(dst *image.RGBA, frame Frame, cam *camera.Camera) {
	b := dst.Bounds()
	w, h := b.Dx(), b.Dy()
	if w == 0 || h == 0 {
		return
	}

	ss := r.style.supersample()
	big := dst
	if ss > 1 {
		big = image.NewRGBA(image.Rect(0, 0, w*ss, h*ss))
	}
	draw.Draw(big, big.Bounds(), image.NewUniform(r.style.Background), image.Point{}, draw.Src)

	pr := cam.Projector(w, h)
	control := projectAll(pr, frame.Control.Slice())
	r.drawGeometry(newCanvas(big), pr, frame, control, float64(ss))

	if ss > 1 {
		xdraw.CatmullRom.Scale(dst, b, big, big.Bounds(), xdraw.Src, nil)
	}
	if r.labels != nil {
		r.drawLabels(dst, control)
	}
}

func (r *Renderer) drawGeometry(c *canvas, pr camera.Projector, frame Frame, control []projected, ss float64) {
	st := r.style

	if st.WeightWidth > 0 {
		c.begin()
		for _, pair := range [][2]int{{0, 1}, {2, 3}} {
			a, b := control[pair[0]], control[pair[1]]
			if a.ok && b.ok {
				c.polyline([]vec2{a.p.scale(ss), b.p.scale(ss)}, st.WeightWidth*ss)
			}
		}
		c.fill(st.WeightColor)
	}

	if st.CurveWidth > 0 && len(frame.Samples) > 1 {
		c.begin()
		// Samples outside the view volume split the strip.
		var run []vec2
		for _, s := range projectAll(pr, frame.Samples) {
			if !s.ok {
				c.polyline(run, st.CurveWidth*ss)
				run = run[:0]
				continue
			}
			run = append(run, s.p.scale(ss))
		}
		c.polyline(run, st.CurveWidth*ss)
		c.fill(st.CurveColor)
	}

	if st.PointSize > 0 {
		c.begin()
		for _, p := range control {
			if p.ok {
				c.square(p.p.scale(ss), st.PointSize*ss)
			}
		}
		c.fill(st.PointColor)
	}
}

func (r *Renderer) drawLabels(dst *image.RGBA, control []projected) {
	for i, p := range control {
		if !p.ok {
			continue
		}
		y := p.p.y - r.style.PointSize/2 - labelGap
		r.labels.draw(dst, "P"+strconv.Itoa(i), p.p.x, y, r.style.LabelColor)
	}
}

type projected struct {
	p  vec2
	ok bool
}

func projectAll(pr camera.Projector, pts []bezier3d.Point3) []projected {
	out := make([]projected, len(pts))
	for i, p := range pts {
		x, y, _, ok := pr.Project(p)
		out[i] = projected{p: vec2{x, y}, ok: ok}
	}
	return out
}
