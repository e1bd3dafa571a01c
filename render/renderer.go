// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package render

import (
	"image/color"
	"math"
	"time"

	"github.com/gogpu/chart3d/internal/raster"
	"github.com/gogpu/chart3d/math3d"
	"github.com/gogpu/chart3d/scene"
	"github.com/gogpu/chart3d/view"
)

// Renderer turns a World seen from a Viewpoint into a Pixmap and the
// RenderingInfo describing it.
//
// A Renderer holds only configuration and may be used from several
// goroutines at once.
type Renderer struct {
	opts  rendererOptions
	light math3d.Vector3D // normalized opts.light
}

// NewRenderer creates a renderer with the given options.
func NewRenderer(opts ...Option) *Renderer {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	light, err := o.light.Normalize()
	if err != nil {
		light = math3d.ZAxis
	}
	return &Renderer{opts: o, light: light}
}

// Output is the complete result of one render pass.
type Output struct {
	Pixmap   *Pixmap
	Info     *RenderingInfo
	Stats    Stats
	Duration time.Duration
}

// Render runs one pass: project, sequence, then paint each face in order
// into a fresh pixmap while recording it in a fresh RenderingInfo.
// On error nothing is returned, so callers keep their previous output.
func (r *Renderer) Render(world *scene.World, vp view.Viewpoint, width, height int) (*Pixmap, *RenderingInfo, error) {
	out, err := r.RenderPass(world, vp, width, height)
	if err != nil {
		return nil, nil, err
	}
	return out.Pixmap, out.Info, nil
}

// RenderPass is Render with projection statistics and timing.
func (r *Renderer) RenderPass(world *scene.World, vp view.Viewpoint, width, height int) (Output, error) {
	start := time.Now()
	if world == nil {
		return Output{}, ErrNilWorld
	}
	snap := world.Acquire()
	defer snap.Release()

	faces, stats, err := project(snap.Solids, vp, width, height)
	if err != nil {
		return Output{}, err
	}
	faces = r.opts.sequencer.Sequence(faces)

	pm := NewPixmap(width, height)
	pm.Clear(r.opts.background)
	info := newRenderingInfo(world, snap.Version, width, height, r.opts.gridCell)
	rast := raster.NewRasterizer(width, height)

	for _, pf := range faces {
		rast.Fill(pm, pf.Points, r.shade(pf))
		if r.opts.outline {
			rast.Stroke(pm, pf.Points, r.opts.outlineWidth, r.opts.outlineColor)
		}
		info.add(pf)
	}

	return Output{
		Pixmap:   pm,
		Info:     info,
		Stats:    stats,
		Duration: time.Since(start),
	}, nil
}

// shade returns the paint colour of a face.
func (r *Renderer) shade(pf ProjectedFace) color.NRGBA {
	if !r.opts.shading {
		return pf.Color
	}
	k := r.opts.ambient + (1-r.opts.ambient)*math.Max(0, pf.Normal.Dot(r.light))
	return scaleColor(pf.Color, k)
}

// scaleColor multiplies the RGB channels of c by k, keeping alpha.
func scaleColor(c color.NRGBA, k float64) color.NRGBA {
	f := func(v uint8) uint8 {
		return uint8(math.Round(math.Min(255, float64(v)*k)))
	}
	return color.NRGBA{R: f(c.R), G: f(c.G), B: f(c.B), A: c.A}
}
