// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package label

import (
	"errors"
	"image"
	"image/color"
	"math"
	"testing"
)

func newMeasurer(t *testing.T) *Measurer {
	t.Helper()
	face, err := DefaultFace()
	if err != nil {
		t.Fatalf("DefaultFace() error = %v", err)
	}
	return NewMeasurer(face)
}

func TestParseFaceInvalid(t *testing.T) {
	if _, err := ParseFace([]byte("not a font")); !errors.Is(err, ErrInvalidFont) {
		t.Errorf("ParseFace() error = %v, want ErrInvalidFont", err)
	}
}

func TestDefaultFaceShared(t *testing.T) {
	a, _ := DefaultFace()
	b, _ := DefaultFace()
	if a != b {
		t.Error("DefaultFace() parsed twice")
	}
}

func TestMeasure(t *testing.T) {
	m := newMeasurer(t)

	tests := []struct {
		name string
		text string
		size float64
	}{
		{"empty", "", 12},
		{"zero size", "abc", 0},
		{"negative size", "abc", -3},
		{"NaN size", "abc", math.NaN()},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := m.Measure(tt.text, tt.size); got != (Extent{}) {
				t.Errorf("Measure(%q, %v) = %+v, want zero", tt.text, tt.size, got)
			}
		})
	}

	wide := m.Measure("WWWW", 16)
	narrow := m.Measure("iiii", 16)
	if !(wide.Width > narrow.Width) || narrow.Width <= 0 {
		t.Errorf("Width(WWWW) = %v, Width(iiii) = %v", wide.Width, narrow.Width)
	}
	if wide.Ascent <= 0 || wide.Descent <= 0 {
		t.Errorf("metrics = %+v, want positive ascent and descent", wide)
	}
	if h := wide.Height(); h < 16 || h > 24 {
		t.Errorf("Height() = %v at 16px", h)
	}

	double := m.Measure("WWWW", 32)
	if math.Abs(double.Width-2*wide.Width) > 1 {
		t.Errorf("Width at 32px = %v, want about %v", double.Width, 2*wide.Width)
	}
}

func TestMeasureCached(t *testing.T) {
	m := newMeasurer(t)
	first := m.Measure("Sales by region", 14)
	second := m.Measure("Sales by region", 14)
	if first != second {
		t.Errorf("cached extent %+v differs from %+v", second, first)
	}
	s := m.Stats()
	if s.Hits != 1 || s.Misses != 1 || s.Len != 1 {
		t.Errorf("Stats() = %+v, want one hit and one miss", s)
	}
}

func TestDrawCentered(t *testing.T) {
	m := newMeasurer(t)
	img := image.NewNRGBA(image.Rect(0, 0, 200, 40))
	h, err := m.DrawCentered(img, "Title", 100, 5, Style{Size: 20, Color: color.Black})
	if err != nil {
		t.Fatalf("DrawCentered() error = %v", err)
	}
	if h <= 0 {
		t.Errorf("DrawCentered() height = %v", h)
	}

	minX, maxX, minY := 200, -1, 40
	for y := range 40 {
		for x := range 200 {
			if img.NRGBAAt(x, y).A != 0 {
				minX, maxX, minY = min(minX, x), max(maxX, x), min(minY, y)
			}
		}
	}
	if maxX < 0 {
		t.Fatal("nothing drawn")
	}
	if mid := (minX + maxX) / 2; mid < 95 || mid > 105 {
		t.Errorf("ink centred at x = %d, want about 100", mid)
	}
	if minY < 5 {
		t.Errorf("ink starts at y = %d, above the top of the line", minY)
	}

	if h, err := m.DrawCentered(img, "", 100, 5, Style{Size: 20}); h != 0 || err != nil {
		t.Errorf("DrawCentered(empty) = %v, %v", h, err)
	}
}

func TestDrawDefaultColor(t *testing.T) {
	face, err := DefaultFace()
	if err != nil {
		t.Fatal(err)
	}
	img := image.NewNRGBA(image.Rect(0, 0, 40, 30))
	if err := Draw(img, face, "H", 5, 22, Style{Size: 18}); err != nil {
		t.Fatalf("Draw() error = %v", err)
	}
	found := false
	for y := range 30 {
		for x := range 40 {
			c := img.NRGBAAt(x, y)
			if c.A == 255 && c.R == 0 && c.G == 0 && c.B == 0 {
				found = true
			}
		}
	}
	if !found {
		t.Error("no solid black pixel drawn with the default colour")
	}
}
