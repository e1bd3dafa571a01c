// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package chart

import (
	"image/color"
	"slices"
)

// PaintSource chooses the colour of a data item. index is the position of
// the item's series (or pie section) in its dataset.
type PaintSource interface {
	ItemColor(key ItemKey, index int) color.NRGBA
}

// StandardPaintSource cycles through a palette by index. Colours set with
// SetColor override the palette for one series or section name.
type StandardPaintSource struct {
	palette   []color.NRGBA
	overrides map[string]color.NRGBA
}

// NewStandardPaintSource returns a paint source over palette, or over
// DefaultPalette when palette is empty.
func NewStandardPaintSource(palette ...color.NRGBA) *StandardPaintSource {
	if len(palette) == 0 {
		palette = DefaultPalette
	}
	return &StandardPaintSource{
		palette:   slices.Clone(palette),
		overrides: make(map[string]color.NRGBA),
	}
}

// SetColor fixes the colour used for every item of the named series or
// section.
func (p *StandardPaintSource) SetColor(name string, c color.NRGBA) {
	p.overrides[name] = c
}

// ClearColors removes all overrides.
func (p *StandardPaintSource) ClearColors() {
	clear(p.overrides)
}

// ItemColor implements PaintSource.
func (p *StandardPaintSource) ItemColor(key ItemKey, index int) color.NRGBA {
	if c, ok := p.overrides[groupName(key)]; ok {
		return c
	}
	if index < 0 {
		index = -index
	}
	return p.palette[index%len(p.palette)]
}

// groupName returns the name colours are assigned by.
func groupName(key ItemKey) string {
	switch k := key.(type) {
	case PieKey:
		return k.Section
	case CategoryKey:
		return k.Series
	case XYZKey:
		return k.Series
	}
	return ""
}
