// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package chart

import (
	"errors"
	"fmt"
	"image/color"
	"math"
)

// ErrInvalidColor is returned by Hex for malformed colour strings.
var ErrInvalidColor = errors.New("chart: invalid color")

// Hex parses "#RGB", "#RGBA", "#RRGGBB" or "#RRGGBBAA" (the leading '#' is
// optional).
func Hex(hex string) (color.NRGBA, error) {
	s := hex
	if s != "" && s[0] == '#' {
		s = s[1:]
	}

	var r, g, b uint32
	a := uint32(255)
	ok := true
	switch len(s) {
	case 3: // RGB
		ok = parseHex(s[0:1], &r) && parseHex(s[1:2], &g) && parseHex(s[2:3], &b)
		r, g, b = r*17, g*17, b*17
	case 4: // RGBA
		ok = parseHex(s[0:1], &r) && parseHex(s[1:2], &g) && parseHex(s[2:3], &b) && parseHex(s[3:4], &a)
		r, g, b, a = r*17, g*17, b*17, a*17
	case 6: // RRGGBB
		ok = parseHex(s[0:2], &r) && parseHex(s[2:4], &g) && parseHex(s[4:6], &b)
	case 8: // RRGGBBAA
		ok = parseHex(s[0:2], &r) && parseHex(s[2:4], &g) && parseHex(s[4:6], &b) && parseHex(s[6:8], &a)
	default:
		ok = false
	}
	if !ok {
		return color.NRGBA{}, fmt.Errorf("%w: %q", ErrInvalidColor, hex)
	}
	return color.NRGBA{R: uint8(r), G: uint8(g), B: uint8(b), A: uint8(a)}, nil
}

func parseHex(s string, val *uint32) bool {
	*val = 0
	for i := 0; i < len(s); i++ {
		c := s[i]
		*val *= 16
		switch {
		case '0' <= c && c <= '9':
			*val += uint32(c - '0')
		case 'a' <= c && c <= 'f':
			*val += uint32(c - 'a' + 10)
		case 'A' <= c && c <= 'F':
			*val += uint32(c - 'A' + 10)
		default:
			return false
		}
	}
	return true
}

// HexString formats c as "#RRGGBB", or "#RRGGBBAA" when it is not opaque.
func HexString(c color.NRGBA) string {
	if c.A == 255 {
		return fmt.Sprintf("#%02X%02X%02X", c.R, c.G, c.B)
	}
	return fmt.Sprintf("#%02X%02X%02X%02X", c.R, c.G, c.B, c.A)
}

// HSL creates an opaque color from HSL values.
// h is hue [0, 360), s is saturation [0, 1], l is lightness [0, 1].
func HSL(h, s, l float64) color.NRGBA {
	h = math.Mod(h, 360)
	if h < 0 {
		h += 360
	}
	h /= 360

	c := (1 - math.Abs(2*l-1)) * s
	x := c * (1 - math.Abs(math.Mod(h*6, 2)-1))
	m := l - c/2

	var r, g, b float64
	switch {
	case h < 1.0/6:
		r, g, b = c, x, 0
	case h < 2.0/6:
		r, g, b = x, c, 0
	case h < 3.0/6:
		r, g, b = 0, c, x
	case h < 4.0/6:
		r, g, b = 0, x, c
	case h < 5.0/6:
		r, g, b = x, 0, c
	default:
		r, g, b = c, 0, x
	}
	return color.NRGBA{R: to255(r + m), G: to255(g + m), B: to255(b + m), A: 255}
}

func to255(v float64) uint8 {
	return uint8(math.Round(math.Max(0, math.Min(1, v)) * 255))
}

// DefaultPalette is the series palette used when no colours are configured.
var DefaultPalette = []color.NRGBA{
	{R: 0x1A, G: 0x96, B: 0x41, A: 255},
	{R: 0xA6, G: 0xD9, B: 0x6A, A: 255},
	{R: 0xFD, G: 0xAE, B: 0x61, A: 255},
	{R: 0xD7, G: 0x19, B: 0x1C, A: 255},
	{R: 0x2B, G: 0x83, B: 0xBA, A: 255},
	{R: 0xAB, G: 0xDD, B: 0xA4, A: 255},
	{R: 0xFF, G: 0xFF, B: 0xBF, A: 255},
	{R: 0x7B, G: 0x32, B: 0x94, A: 255},
}

// Palette returns n distinct colours spread evenly around the hue circle.
func Palette(n int) []color.NRGBA {
	out := make([]color.NRGBA, n)
	for i := range out {
		out[i] = HSL(float64(i)*360/float64(max(n, 1)), 0.6, 0.5)
	}
	return out
}
