// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package chart3d

import (
	"errors"
	"fmt"
	"math"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gogpu/chart3d/label"
	"github.com/gogpu/chart3d/render"
	"github.com/gogpu/chart3d/scene"
	"github.com/gogpu/chart3d/view"
)

// ErrNilChart is returned by NewPanel for a nil chart.
var ErrNilChart = errors.New("chart3d: nil chart")

// DragRadiansPerPixel converts a mouse drag into camera rotation.
const DragRadiansPerPixel = math.Pi / 360

// titleMargin is the gap in pixels above the title and between lines.
const titleMargin = 4

// Frame is the published result of one render pass: the image and the
// hit index built from the same pass.
type Frame struct {
	Pixmap    *render.Pixmap
	Info      *render.RenderingInfo
	Stats     render.Stats
	Viewpoint view.Viewpoint
	Duration  time.Duration
}

// Panel renders a chart into a fixed-size viewport and answers
// interaction queries against the latest frame.
//
// Render passes and viewpoint changes are serialized; a pass started while
// another runs waits for it. Frame, ToolTipText and MouseEvent never wait:
// they read the last published frame, which is replaced atomically so that
// image and hit index always belong to the same pass.
type Panel struct {
	mu       sync.Mutex
	chart    *Chart
	renderer *render.Renderer
	world    *scene.World
	composed bool
	vp       view.Viewpoint
	width    int
	height   int
	autoFit  bool
	fitted   bool
	opts     panelOptions
	measurer *label.Measurer

	frame atomic.Pointer[Frame]
}

// NewPanel returns a panel for c with the given viewport size. Nothing is
// rendered until the first call to Render.
func NewPanel(c *Chart, width, height int, opts ...PanelOption) (*Panel, error) {
	if c == nil {
		return nil, ErrNilChart
	}
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", render.ErrInvalidViewport, width, height)
	}
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if err := o.viewpoint.Validate(); err != nil {
		return nil, err
	}
	if o.renderer == nil {
		o.renderer = render.NewRenderer()
	}
	p := &Panel{
		chart:    c,
		renderer: o.renderer,
		world:    scene.NewWorld(),
		vp:       o.viewpoint,
		width:    width,
		height:   height,
		autoFit:  o.autoFit,
		opts:     o,
	}
	face := o.face
	if face == nil {
		var err error
		if face, err = label.DefaultFace(); err != nil {
			Logger().Warn("chart3d: titles disabled", "error", err)
		}
	}
	if face != nil {
		p.measurer = label.NewMeasurer(face)
	}
	return p, nil
}

// Chart returns the displayed chart.
func (p *Panel) Chart() *Chart { return p.chart }

// World returns the scene the chart was composed into.
func (p *Panel) World() *scene.World { return p.world }

// Size returns the viewport size.
func (p *Panel) Size() (width, height int) {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.width, p.height
}

// Viewpoint returns the current viewpoint.
func (p *Panel) Viewpoint() view.Viewpoint {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.vp
}

// Frame returns the latest frame, or nil before the first successful pass.
func (p *Panel) Frame() *Frame {
	return p.frame.Load()
}

// Render composes the chart if needed, fits the view on first use when
// auto-fit is enabled, and renders a new frame. On failure the previous
// frame stays published.
func (p *Panel) Render() (*Frame, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.renderLocked()
}

func (p *Panel) renderLocked() (*Frame, error) {
	if err := p.composeLocked(); err != nil {
		return p.fail(err)
	}
	if p.autoFit && !p.fitted {
		if err := p.fitLocked(); err != nil && !errors.Is(err, view.ErrEmptyBounds) {
			return p.fail(err)
		}
	}

	out, err := p.renderer.RenderPass(p.world, p.vp, p.width, p.height)
	if err != nil {
		return p.fail(err)
	}
	p.drawTitles(out.Pixmap)

	f := &Frame{
		Pixmap:    out.Pixmap,
		Info:      out.Info,
		Stats:     out.Stats,
		Viewpoint: p.vp,
		Duration:  out.Duration,
	}
	p.frame.Store(f)
	Logger().Debug("chart3d: render pass",
		"chart", p.chart.Title(),
		"faces", out.Stats.Faces,
		"visible", out.Stats.Visible,
		"culled", out.Stats.Culled,
		"clipped", out.Stats.Clipped,
		"degenerate", out.Stats.Degenerate,
		"duration", out.Duration)
	return f, nil
}

func (p *Panel) fail(err error) (*Frame, error) {
	Logger().Warn("chart3d: render failed, keeping previous frame",
		"chart", p.chart.Title(), "error", err)
	return nil, err
}

func (p *Panel) composeLocked() error {
	if p.composed {
		return nil
	}
	if err := p.world.Clear(); err != nil {
		return err
	}
	if err := p.chart.Compose(p.world); err != nil {
		return err
	}
	p.composed = true
	return nil
}

func (p *Panel) fitLocked() error {
	bounds, ok := p.world.CalculateTotalBounds()
	if !ok {
		return view.ErrEmptyBounds
	}
	vp, err := view.ComputeToFit(bounds, p.width, p.height, p.vp)
	if err != nil {
		return err
	}
	p.vp = vp
	p.fitted = true
	Logger().Info("chart3d: auto-fit applied", "chart", p.chart.Title(), "viewpoint", vp.String())
	return nil
}

func (p *Panel) drawTitles(pm *render.Pixmap) {
	if p.measurer == nil {
		return
	}
	top := float64(titleMargin)
	cx := float64(p.width) / 2
	lines := []struct {
		text string
		size float64
	}{
		{p.chart.Title(), p.opts.titleSize},
		{p.chart.Subtitle(), p.opts.subtitleSize},
	}
	for _, l := range lines {
		h, err := p.measurer.DrawCentered(pm, l.text, cx, top, label.Style{Size: l.size, Color: p.opts.textColor})
		if err != nil {
			Logger().Warn("chart3d: title not drawn", "text", l.text, "error", err)
			continue
		}
		if h > 0 {
			top += h + titleMargin
		}
	}
}

// Invalidate recomposes the chart and renders a new frame. Call it after
// changing the chart's data or plot settings. Until the new frame is
// published, queries against the old frame find nothing because the world
// it indexed has changed.
func (p *Panel) Invalidate() (*Frame, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.composed = false
	return p.renderLocked()
}

// Resize changes the viewport and renders a new frame. With auto-fit on,
// the view is fitted to the new size first.
func (p *Panel) Resize(width, height int) (*Frame, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", render.ErrInvalidViewport, width, height)
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	p.width, p.height = width, height
	Logger().Info("chart3d: panel resized", "width", width, "height", height)
	if p.autoFit {
		p.fitted = false
	}
	return p.renderLocked()
}

// SetAutoFitOnResize controls whether Resize fits the view to the chart.
func (p *Panel) SetAutoFitOnResize(enabled bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.autoFit = enabled
}

// AutoFitOnResize reports whether Resize fits the view to the chart.
func (p *Panel) AutoFitOnResize() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.autoFit
}

// ZoomToFit fits the view to the chart and renders a new frame.
func (p *Panel) ZoomToFit() (*Frame, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if err := p.composeLocked(); err != nil {
		return p.fail(err)
	}
	if err := p.fitLocked(); err != nil {
		return p.fail(err)
	}
	return p.renderLocked()
}

// SetViewpoint replaces the viewpoint and renders a new frame. An invalid
// viewpoint is rejected and the current one kept.
func (p *Panel) SetViewpoint(vp view.Viewpoint) (*Frame, error) {
	if err := vp.Validate(); err != nil {
		return nil, err
	}
	return p.update(func(v *view.Viewpoint) { *v = vp })
}

// Drag rotates the camera as for a mouse drag of (dx, dy) pixels:
// horizontal motion orbits around the target, vertical motion changes the
// elevation.
func (p *Panel) Drag(dx, dy int) (*Frame, error) {
	return p.update(func(v *view.Viewpoint) {
		v.PanLeftRight(-float64(dx) * DragRadiansPerPixel)
		v.RotateUp(float64(dy) * DragRadiansPerPixel)
	})
}

// ZoomIn magnifies the view by factor and renders a new frame.
func (p *Panel) ZoomIn(factor float64) (*Frame, error) {
	return p.update(func(v *view.Viewpoint) { v.ZoomIn(factor) })
}

// ZoomOut shrinks the view by factor and renders a new frame.
func (p *Panel) ZoomOut(factor float64) (*Frame, error) {
	return p.update(func(v *view.Viewpoint) { v.ZoomOut(factor) })
}

// update applies a viewpoint change and renders. The change counts as a
// fit so that a later first Render does not undo it.
func (p *Panel) update(change func(*view.Viewpoint)) (*Frame, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if err := p.composeLocked(); err != nil {
		return p.fail(err)
	}
	if p.autoFit && !p.fitted {
		if err := p.fitLocked(); err != nil && !errors.Is(err, view.ErrEmptyBounds) {
			return p.fail(err)
		}
	}
	prev := p.vp
	change(&p.vp)
	p.fitted = true
	f, err := p.renderLocked()
	if err != nil {
		p.vp = prev
	}
	return f, err
}

// ToolTipText returns the tooltip for the topmost keyed element at (x, y)
// in the latest frame.
func (p *Panel) ToolTipText(x, y float64) (string, bool) {
	if !p.opts.toolTips {
		return "", false
	}
	f := p.Frame()
	if f == nil {
		return "", false
	}
	key, ok := f.Info.IdentityAt(x, y)
	if !ok {
		return "", false
	}
	return p.chart.ToolTipText(key)
}
