// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package gpu

import (
	"encoding/binary"
	"math"

	"github.com/gogpu/gputypes"

	"github.com/gogpu/bezier3d"
)

// VertexStride is the size in bytes of one vertex: vec3<f32> position.
const VertexStride = 12

// VertexUsage is the buffer usage for vertex buffers built by this package.
const VertexUsage = gputypes.BufferUsageVertex | gputypes.BufferUsageCopyDst

// VertexLayout returns the vertex buffer layout matching the curve shader.
func VertexLayout() []gputypes.VertexBufferLayout {
	return []gputypes.VertexBufferLayout{
		{
			ArrayStride: VertexStride,
			StepMode:    gputypes.VertexStepModeVertex,
			Attributes: []gputypes.VertexAttribute{
				{Format: gputypes.VertexFormatFloat32x3, Offset: 0, ShaderLocation: 0}, // position
			},
		},
	}
}

// PackVertices encodes points as little-endian float32 triples.
func PackVertices(points []bezier3d.Point3) []byte {
	buf := make([]byte, len(points)*VertexStride)
	for i, p := range points {
		off := i * VertexStride
		binary.LittleEndian.PutUint32(buf[off:], math.Float32bits(float32(p.X)))
		binary.LittleEndian.PutUint32(buf[off+4:], math.Float32bits(float32(p.Y)))
		binary.LittleEndian.PutUint32(buf[off+8:], math.Float32bits(float32(p.Z)))
	}
	return buf
}

// UnpackVertices decodes a buffer produced by PackVertices. Trailing bytes
// that do not form a whole vertex are ignored.
func UnpackVertices(buf []byte) []bezier3d.Point3 {
	out := make([]bezier3d.Point3, len(buf)/VertexStride)
	for i := range out {
		off := i * VertexStride
		out[i] = bezier3d.P3(
			float64(math.Float32frombits(binary.LittleEndian.Uint32(buf[off:]))),
			float64(math.Float32frombits(binary.LittleEndian.Uint32(buf[off+4:]))),
			float64(math.Float32frombits(binary.LittleEndian.Uint32(buf[off+8:]))),
		)
	}
	return out
}
