// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package render

import (
	"bytes"
	"image/color"
	"image/png"
	"path/filepath"
	"testing"
)

func TestPixmapSetPixel(t *testing.T) {
	pm := NewPixmap(4, 3)
	if pm.Width() != 4 || pm.Height() != 3 || len(pm.Data()) != 48 {
		t.Fatalf("NewPixmap: %dx%d, %d bytes", pm.Width(), pm.Height(), len(pm.Data()))
	}

	pm.SetPixel(1, 2, red)
	if got := pm.GetPixel(1, 2); got != red {
		t.Errorf("GetPixel = %v, want %v", got, red)
	}
	pm.SetPixel(-1, 0, red)
	pm.SetPixel(4, 0, red)
	if got := pm.GetPixel(9, 9); got != (color.NRGBA{}) {
		t.Errorf("GetPixel out of bounds = %v, want zero", got)
	}
}

func TestPixmapBlend(t *testing.T) {
	pm := NewPixmap(1, 1)
	pm.Clear(white)
	pm.SetPixel(0, 0, color.NRGBA{A: 128})
	got := pm.GetPixel(0, 0)
	if got.A != 255 {
		t.Errorf("alpha = %d, want 255 over opaque background", got.A)
	}
	if got.R < 120 || got.R > 130 {
		t.Errorf("half black over white = %v, want mid grey", got)
	}

	pm.SetPixel(0, 0, color.NRGBA{R: 10, A: 0})
	if pm.GetPixel(0, 0) != got {
		t.Error("transparent colour changed the pixel")
	}
}

func TestPixmapFillSpan(t *testing.T) {
	pm := NewPixmap(5, 2)
	pm.FillSpan(-3, 3, 1, blue)
	for x := range 5 {
		want := x < 3
		if got := pm.GetPixel(x, 1) == blue; got != want {
			t.Errorf("pixel %d filled = %v, want %v", x, got, want)
		}
	}
	pm.FillSpan(0, 5, 7, blue) // row out of range
}

func TestPixmapImage(t *testing.T) {
	pm := NewPixmap(3, 3)
	pm.Clear(white)
	pm.Set(1, 1, color.RGBA{R: 255, A: 255})

	var buf bytes.Buffer
	if err := pm.EncodePNG(&buf); err != nil {
		t.Fatalf("EncodePNG() error = %v", err)
	}
	img, err := png.Decode(&buf)
	if err != nil {
		t.Fatalf("png.Decode() error = %v", err)
	}
	r, g, b, a := img.At(1, 1).RGBA()
	if r != 0xffff || g != 0 || b != 0 || a != 0xffff {
		t.Errorf("decoded centre = %v %v %v %v, want opaque red", r, g, b, a)
	}

	path := filepath.Join(t.TempDir(), "out.png")
	if err := pm.SavePNG(path); err != nil {
		t.Errorf("SavePNG() error = %v", err)
	}
}
