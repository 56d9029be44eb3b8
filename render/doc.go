// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package render draws a curve frame to an *image.RGBA on the CPU.
//
// A Frame holds the transformed control points and the sampled curve. The
// Renderer projects them through a camera.Camera and draws, back to front:
//
//   - the weight lines P0-P1 and P2-P3
//   - the curve as a thick line strip
//   - the control points as square markers
//   - optional labels P0..P3 next to the markers
//
// Geometry is rasterized with golang.org/x/image/vector at a supersampled
// resolution and scaled down with golang.org/x/image/draw. Labels use the Go
// Regular font; their extents come from go-text HarfBuzz shaping so they can
// be centered on a marker.
//
// # Usage
//
//	frame, err := render.NewFrame(bezier3d.DefaultControlPoints(), params, 100)
//	if err != nil {
//	    return err
//	}
//	r, err := render.NewRenderer(render.DefaultStyle())
//	if err != nil {
//	    return err
//	}
//	img, err := r.Render(frame, camera.New(800, 600), 800, 600)
//	if err != nil {
//	    return err
//	}
//	err = render.SavePNG("curve.png", img)
package render
