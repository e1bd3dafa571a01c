// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package label

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"math"

	"golang.org/x/image/font"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

// Style describes how a line of text is drawn.
type Style struct {
	Size  float64
	Color color.Color
}

// Draw renders text with its baseline origin at (x, y).
func Draw(dst draw.Image, face *Face, text string, x, y float64, style Style) error {
	if text == "" || !(style.Size > 0) {
		return nil
	}
	otFace, err := opentype.NewFace(face.outline, &opentype.FaceOptions{
		Size:    style.Size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return fmt.Errorf("label: face at %gpx: %w", style.Size, err)
	}
	defer func() {
		_ = otFace.Close()
	}()

	col := style.Color
	if col == nil {
		col = color.Black
	}
	d := &font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(col),
		Face: otFace,
		Dot:  fixed.Point26_6{X: fixed.Int26_6(x * 64), Y: fixed.Int26_6(y * 64)},
	}
	d.DrawString(text)
	return nil
}

// DrawCentered draws text horizontally centred on cx with the top of the
// line at top, and returns the line height used.
func (m *Measurer) DrawCentered(dst draw.Image, text string, cx, top float64, style Style) (float64, error) {
	e := m.Measure(text, style.Size)
	if e.Width == 0 {
		return 0, nil
	}
	x := math.Round(cx - e.Width/2)
	y := math.Round(top + e.Ascent)
	if err := Draw(dst, m.face, text, x, y, style); err != nil {
		return 0, err
	}
	return e.Height(), nil
}
