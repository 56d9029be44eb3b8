// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package gpu

import (
	"github.com/gogpu/gputypes"

	"github.com/gogpu/bezier3d"
	"github.com/gogpu/bezier3d/camera"
	"github.com/gogpu/bezier3d/render"
)

// Batch is one draw call.
type Batch struct {
	Label       string
	Topology    gputypes.PrimitiveTopology
	Vertices    []byte
	VertexCount uint32
	Uniforms    Uniforms

	// LineWidth and PointSize carry the style for backends that rasterize
	// wide lines or points themselves; core WebGPU draws them one pixel wide.
	LineWidth float64
	PointSize float64
}

// Primitive returns the primitive state for the batch's pipeline.
func (b Batch) Primitive() gputypes.PrimitiveState {
	return gputypes.PrimitiveState{
		Topology: b.Topology,
		CullMode: gputypes.CullModeNone,
	}
}

// DrawList is the ordered set of batches for one frame.
type DrawList struct {
	Batches []Batch
}

// VertexBytes returns the total size of all vertex buffers.
func (d DrawList) VertexBytes() int {
	n := 0
	for _, b := range d.Batches {
		n += len(b.Vertices)
	}
	return n
}

// BuildDrawList converts a frame into draw batches for cam, drawn back to
// front in the same order as the software renderer. Batches with no
// vertices are omitted.
func BuildDrawList(frame render.Frame, cam *camera.Camera, style render.Style) DrawList {
	vp := cam.ViewProjection()
	c := frame.Control

	var list DrawList
	add := func(label string, topo gputypes.PrimitiveTopology, pts []bezier3d.Point3, uni Uniforms, width, size float64) {
		if len(pts) == 0 {
			return
		}
		list.Batches = append(list.Batches, Batch{
			Label:       label,
			Topology:    topo,
			Vertices:    PackVertices(pts),
			VertexCount: uint32(len(pts)),
			Uniforms:    uni,
			LineWidth:   width,
			PointSize:   size,
		})
	}

	add("weights", gputypes.PrimitiveTopologyLineList,
		[]bezier3d.Point3{c[0], c[1], c[2], c[3]},
		NewUniforms(vp, style.WeightColor), style.WeightWidth, 0)
	if len(frame.Samples) > 1 {
		add("curve", gputypes.PrimitiveTopologyLineStrip, frame.Samples,
			NewUniforms(vp, style.CurveColor), style.CurveWidth, 0)
	}
	add("points", gputypes.PrimitiveTopologyPointList, c.Slice(),
		NewUniforms(vp, style.PointColor), 0, style.PointSize)

	return list
}
