// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package label

import (
	"math"
	"sync"

	"github.com/go-text/typesetting/di"
	gtfont "github.com/go-text/typesetting/font"
	"github.com/go-text/typesetting/language"
	"github.com/go-text/typesetting/shaping"
	xfont "golang.org/x/image/font"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"

	"github.com/gogpu/chart3d/cache"
)

// Extent is the size of a single line of text in pixels.
type Extent struct {
	Width   float64
	Ascent  float64
	Descent float64
}

// Height returns Ascent + Descent.
func (e Extent) Height() float64 { return e.Ascent + e.Descent }

type measureKey struct {
	text string
	size float64
}

func hashMeasureKey(k measureKey) uint64 {
	return cache.StringHasher(k.text) ^ math.Float64bits(k.size)
}

// Measurer measures text in one face. Results are cached. A Measurer is
// safe for concurrent use.
type Measurer struct {
	face    *Face
	shapers sync.Pool
	extents *cache.Sharded[measureKey, Extent]
}

// NewMeasurer returns a measurer for face.
func NewMeasurer(face *Face) *Measurer {
	return &Measurer{
		face: face,
		shapers: sync.Pool{
			New: func() any { return &shaping.HarfbuzzShaper{} },
		},
		extents: cache.NewSharded[measureKey, Extent](0, hashMeasureKey),
	}
}

// Face returns the measured face.
func (m *Measurer) Face() *Face { return m.face }

// Measure returns the extent of text at size pixels. Empty text, or a size
// that is not positive, measures as zero.
func (m *Measurer) Measure(text string, size float64) Extent {
	if text == "" || !(size > 0) || math.IsInf(size, 0) {
		return Extent{}
	}
	return m.extents.GetOrCreate(measureKey{text, size}, func() Extent {
		e := m.metrics(size)
		e.Width = m.advance(text, size)
		return e
	})
}

// Stats returns the measurement cache counters.
func (m *Measurer) Stats() cache.Stats { return m.extents.Stats() }

// advance shapes text and returns its horizontal advance.
func (m *Measurer) advance(text string, size float64) float64 {
	runes := []rune(text)
	input := shaping.Input{
		Text:      runes,
		RunStart:  0,
		RunEnd:    len(runes),
		Direction: di.DirectionLTR,
		Face:      gtfont.NewFace(m.face.shaping),
		Size:      fixed.Int26_6(size * 64),
		Script:    scriptOf(runes),
		Language:  language.NewLanguage("en"),
	}
	hb := m.shapers.Get().(*shaping.HarfbuzzShaper)
	out := hb.Shape(input)
	m.shapers.Put(hb)
	return float64(out.Advance) / 64
}

// metrics returns the ascent and descent of the face at size.
func (m *Measurer) metrics(size float64) Extent {
	face, err := opentype.NewFace(m.face.outline, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: xfont.HintingFull,
	})
	if err != nil {
		return Extent{Ascent: size * 0.8, Descent: size * 0.2}
	}
	defer face.Close()
	mt := face.Metrics()
	return Extent{Ascent: float64(mt.Ascent) / 64, Descent: float64(mt.Descent) / 64}
}

// scriptOf returns the script of the first non-space rune.
func scriptOf(runes []rune) language.Script {
	for _, r := range runes {
		if r == ' ' || r == '\t' {
			continue
		}
		return language.LookupScript(r)
	}
	return language.Latin
}
