// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"sync"

	"github.com/go-text/typesetting/di"
	gtfont "github.com/go-text/typesetting/font"
	"github.com/go-text/typesetting/language"
	"github.com/go-text/typesetting/shaping"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

// labeler measures labels with HarfBuzz shaping and draws them with an
// x/image opentype face. Both read the same Go Regular font data.
//
// labeler is safe for concurrent use; the HarfbuzzShaper and opentype face
// carry mutable state and are guarded by mu.
type labeler struct {
	size float64

	mu     sync.Mutex
	shaper shaping.HarfbuzzShaper
	font   *gtfont.Font
	face   font.Face
}

func newLabeler(size float64) (*labeler, error) {
	parsed, err := gtfont.ParseTTF(bytes.NewReader(goregular.TTF))
	if err != nil {
		return nil, fmt.Errorf("render: parse label font: %w", err)
	}
	otf, err := opentype.Parse(goregular.TTF)
	if err != nil {
		return nil, fmt.Errorf("render: parse label font: %w", err)
	}
	face, err := opentype.NewFace(otf, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("render: label face: %w", err)
	}
	return &labeler{size: size, font: parsed.Font, face: face}, nil
}

// extent is the shaped size of a label in pixels.
type extent struct {
	width   float64
	ascent  float64
	descent float64 // positive, below the baseline
}

func (l *labeler) measure(text string) extent {
	if text == "" {
		return extent{}
	}
	runes := []rune(text)
	input := shaping.Input{
		Text:      runes,
		RunStart:  0,
		RunEnd:    len(runes),
		Direction: di.DirectionLTR,
		Face:      gtfont.NewFace(l.font),
		Size:      floatToFixed(l.size),
		Script:    language.LookupScript(runes[0]),
		Language:  language.NewLanguage("en"),
	}

	l.mu.Lock()
	out := l.shaper.Shape(input)
	l.mu.Unlock()

	return extent{
		width:   fixedToFloat(out.Advance),
		ascent:  fixedToFloat(out.LineBounds.Ascent),
		descent: -fixedToFloat(out.LineBounds.Descent),
	}
}

// draw places text centered horizontally on (x, y) with its bottom edge
// at y.
func (l *labeler) draw(dst *image.RGBA, text string, x, y float64, col color.RGBA) {
	ext := l.measure(text)
	dot := fixed.Point26_6{
		X: floatToFixed(x - ext.width/2),
		Y: floatToFixed(y - ext.descent),
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	d := &font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(col),
		Face: l.face,
		Dot:  dot,
	}
	d.DrawString(text)
}

func (l *labeler) close() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.face.Close()
}

func floatToFixed(v float64) fixed.Int26_6 {
	return fixed.Int26_6(v * 64)
}

func fixedToFloat(v fixed.Int26_6) float64 {
	return float64(v) / 64
}
