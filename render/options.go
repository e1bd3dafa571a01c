// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package render

import (
	"image/color"

	"github.com/gogpu/chart3d/math3d"
)

// Option configures a Renderer during creation.
//
// Example:
//
//	// Defaults: white background, flat colours, depth ordering
//	r := render.NewRenderer()
//
//	// Lambert shading and face outlines
//	r := render.NewRenderer(render.WithShading(true), render.WithOutline(color.NRGBA{A: 255}, 1))
type Option func(*rendererOptions)

// rendererOptions holds optional configuration for Renderer creation.
type rendererOptions struct {
	background   color.NRGBA
	shading      bool
	light        math3d.Vector3D
	ambient      float64
	sequencer    Sequencer
	outline      bool
	outlineColor color.NRGBA
	outlineWidth float64
	gridCell     int
}

// defaultOptions returns the default renderer options.
func defaultOptions() rendererOptions {
	return rendererOptions{
		background: color.NRGBA{R: 255, G: 255, B: 255, A: 255},
		light:      math3d.V3(-0.4, 0.6, 1),
		ambient:    0.45,
		sequencer:  DepthSequencer{},
		gridCell:   DefaultGridCell,
	}
}

// WithBackground sets the colour the pixmap is cleared to.
func WithBackground(c color.NRGBA) Option {
	return func(o *rendererOptions) {
		o.background = c
	}
}

// WithShading enables flat Lambert shading of faces. Shading is off by
// default and every face is painted in its own colour.
func WithShading(enabled bool) Option {
	return func(o *rendererOptions) {
		o.shading = enabled
	}
}

// WithLight sets the direction towards the light in camera space and the
// ambient fraction (0..1) used when shading is enabled. A zero direction is
// ignored.
func WithLight(dir math3d.Vector3D, ambient float64) Option {
	return func(o *rendererOptions) {
		if !dir.IsZero() && dir.IsFinite() {
			o.light = dir
		}
		o.ambient = min(max(ambient, 0), 1)
	}
}

// WithSequencer replaces the depth sequencer. A nil sequencer is ignored.
func WithSequencer(s Sequencer) Option {
	return func(o *rendererOptions) {
		if s != nil {
			o.sequencer = s
		}
	}
}

// WithOutline draws the edges of every painted face. Outline pixels are not
// part of the RenderingInfo; a query there reports the face beneath.
func WithOutline(c color.NRGBA, width float64) Option {
	return func(o *rendererOptions) {
		o.outline = width > 0
		o.outlineColor = c
		o.outlineWidth = width
	}
}

// WithGridCell sets the cell size of the RenderingInfo spatial index.
func WithGridCell(pixels int) Option {
	return func(o *rendererOptions) {
		if pixels > 0 {
			o.gridCell = pixels
		}
	}
}
