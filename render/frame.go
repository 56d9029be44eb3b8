// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"fmt"

	"github.com/gogpu/bezier3d"
)

// Frame is the geometry drawn for one picture: the transformed control
// points and the curve sampled from them.
type Frame struct {
	Control bezier3d.ControlPoints
	Samples []bezier3d.Point3
}

// NewFrame transforms control by params and samples the resulting curve at
// sampleCount points.
func NewFrame(control bezier3d.ControlPoints, params bezier3d.TransformParameters, sampleCount int) (Frame, error) {
	transformed, err := bezier3d.TransformAll(control, params)
	if err != nil {
		return Frame{}, fmt.Errorf("render: frame: %w", err)
	}
	samples, err := bezier3d.Evaluate(transformed.Slice(), sampleCount)
	if err != nil {
		return Frame{}, fmt.Errorf("render: frame: %w", err)
	}
	return Frame{Control: transformed, Samples: samples}, nil
}

// Bounds returns the box enclosing the control points, the curve and the
// samples. The curve part is the tight box from the curve's extrema, so a
// frame without samples still bounds the whole curve.
func (f Frame) Bounds() bezier3d.Box3 {
	box := bezier3d.BoxOf(f.Control.Slice()).Union(f.Control.Curve().BoundingBox())
	if len(f.Samples) == 0 {
		return box
	}
	return box.Union(bezier3d.BoxOf(f.Samples))
}
