// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package gpu prepares curve frames for a WebGPU render pipeline.
//
// It stops short of a device: BuildDrawList turns a frame into draw
// batches (packed float32 vertices, a uniform block and a primitive
// topology) that a host holding a GPU device uploads and draws with the
// embedded WGSL shader. CompileShader translates that shader to SPIR-V
// with naga for backends that consume SPIR-V.
//
// Batch layout:
//
//	weights   LineList   P0-P1, P2-P3
//	curve     LineStrip  sampled points in order
//	points    PointList  P0..P3
//
// Vertex buffers hold one vec3<f32> position per vertex at location 0.
// The uniform block at group 0, binding 0 is the column-major view-projection
// matrix followed by an RGBA color.
package gpu
