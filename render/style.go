// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import "image/color"

// Style controls colors and sizes. Widths and sizes are in output pixels.
type Style struct {
	Background color.RGBA

	CurveColor color.RGBA
	CurveWidth float64

	PointColor color.RGBA
	PointSize  float64

	WeightColor color.RGBA
	WeightWidth float64

	// LabelSize is the label font size in pixels. Zero disables labels.
	LabelSize  float64
	LabelColor color.RGBA

	// Supersample is the per-axis oversampling factor for geometry.
	// Values below 1 are treated as 1.
	Supersample int
}

// DefaultStyle returns the classic look: dark teal background, green curve
// 5px wide, red 10px control points joined by red weight lines.
func DefaultStyle() Style {
	return Style{
		Background:  color.RGBA{R: 51, G: 77, B: 77, A: 255},
		CurveColor:  color.RGBA{G: 255, A: 255},
		CurveWidth:  5,
		PointColor:  color.RGBA{R: 255, A: 255},
		PointSize:   10,
		WeightColor: color.RGBA{R: 255, A: 255},
		WeightWidth: 1,
		LabelSize:   14,
		LabelColor:  color.RGBA{R: 255, G: 255, B: 255, A: 255},
		Supersample: 2,
	}
}

func (s Style) supersample() int {
	return max(1, s.Supersample)
}
