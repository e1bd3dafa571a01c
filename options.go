// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package chart3d

import (
	"image/color"

	"github.com/gogpu/chart3d/label"
	"github.com/gogpu/chart3d/render"
	"github.com/gogpu/chart3d/view"
)

// PanelOption configures a Panel during creation.
//
// Example:
//
//	p, err := chart3d.NewPanel(c, 800, 600,
//	    chart3d.WithViewpoint(view.NewOrthographic()),
//	    chart3d.WithAutoFit(false))
type PanelOption func(*panelOptions)

type panelOptions struct {
	renderer     *render.Renderer
	viewpoint    view.Viewpoint
	autoFit      bool
	toolTips     bool
	face         *label.Face
	titleSize    float64
	subtitleSize float64
	textColor    color.NRGBA
}

func defaultOptions() panelOptions {
	return panelOptions{
		renderer:     nil, // created in NewPanel
		viewpoint:    view.NewPerspective(),
		autoFit:      true,
		toolTips:     true,
		titleSize:    18,
		subtitleSize: 12,
		textColor:    color.NRGBA{R: 0x20, G: 0x20, B: 0x20, A: 255},
	}
}

// WithRenderer sets the renderer used for every pass. nil keeps the
// default software renderer.
func WithRenderer(r *render.Renderer) PanelOption {
	return func(o *panelOptions) {
		if r != nil {
			o.renderer = r
		}
	}
}

// WithViewpoint sets the initial viewpoint. With auto-fit enabled only its
// angles and projection survive the first fit.
func WithViewpoint(vp view.Viewpoint) PanelOption {
	return func(o *panelOptions) {
		o.viewpoint = vp
	}
}

// WithAutoFit controls whether the view is fitted to the chart on the first
// render and after every resize. Enabled by default.
func WithAutoFit(enabled bool) PanelOption {
	return func(o *panelOptions) {
		o.autoFit = enabled
	}
}

// WithToolTips controls whether ToolTipText returns text. Enabled by
// default.
func WithToolTips(enabled bool) PanelOption {
	return func(o *panelOptions) {
		o.toolTips = enabled
	}
}

// WithTitleFace sets the face used for the title and subtitle. The Go
// Regular face is used by default.
func WithTitleFace(f *label.Face) PanelOption {
	return func(o *panelOptions) {
		if f != nil {
			o.face = f
		}
	}
}

// WithTitleSizes sets the title and subtitle sizes in pixels. A size of
// zero hides that line.
func WithTitleSizes(title, subtitle float64) PanelOption {
	return func(o *panelOptions) {
		o.titleSize = max(0, title)
		o.subtitleSize = max(0, subtitle)
	}
}
