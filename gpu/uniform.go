// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package gpu

import (
	"encoding/binary"
	"image/color"
	"math"

	"github.com/gogpu/gputypes"

	"github.com/gogpu/bezier3d/camera"
)

// UniformSize is the size in bytes of the uniform block: mat4x4<f32>
// followed by vec4<f32>.
const UniformSize = 16*4 + 4*4

// UniformUsage is the buffer usage for the uniform buffer.
const UniformUsage = gputypes.BufferUsageUniform | gputypes.BufferUsageCopyDst

// Uniforms mirrors the shader's uniform block.
type Uniforms struct {
	ViewProj [16]float32 // column-major
	Color    [4]float32  // straight RGBA in [0, 1]
}

// NewUniforms builds a uniform block from a view-projection matrix and an
// 8-bit color.
func NewUniforms(viewProj camera.Mat4, c color.RGBA) Uniforms {
	return Uniforms{
		ViewProj: viewProj.Float32(),
		Color: [4]float32{
			float32(c.R) / 255,
			float32(c.G) / 255,
			float32(c.B) / 255,
			float32(c.A) / 255,
		},
	}
}

// Bytes returns the little-endian encoding of u, UniformSize bytes long.
func (u Uniforms) Bytes() []byte {
	buf := make([]byte, UniformSize)
	off := 0
	for _, v := range u.ViewProj {
		binary.LittleEndian.PutUint32(buf[off:], math.Float32bits(v))
		off += 4
	}
	for _, v := range u.Color {
		binary.LittleEndian.PutUint32(buf[off:], math.Float32bits(v))
		off += 4
	}
	return buf
}
