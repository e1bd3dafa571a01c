// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package chart

import (
	"fmt"
	"math"

	"github.com/gogpu/chart3d/math3d"
	"github.com/gogpu/chart3d/scene"
)

// XYZKind selects how an XYZPlot draws its points.
type XYZKind int

const (
	// Scatter draws a marker at each point.
	Scatter XYZKind = iota
	// XYZBar draws a vertical bar from the base up (or down) to each point.
	XYZBar
)

// String implements fmt.Stringer.
func (k XYZKind) String() string {
	switch k {
	case Scatter:
		return "scatter"
	case XYZBar:
		return "xyz-bar"
	}
	return fmt.Sprintf("XYZKind(%d)", int(k))
}

// DefaultXYZDimensions is the plot box of a new XYZPlot.
var DefaultXYZDimensions = Dimensions{Width: 10, Height: 10, Depth: 10}

// XYZPlot draws an XYZDataset inside a box, mapping the data range of each
// axis onto the box extent along the same axis.
type XYZPlot struct {
	dataset  *XYZDataset
	kind     XYZKind
	dims     Dimensions
	size     float64
	paint    PaintSource
	tooltips *ToolTipGenerator
}

var _ Plot = (*XYZPlot)(nil)

// NewXYZPlot returns a plot of the given kind over dataset.
func NewXYZPlot(dataset *XYZDataset, kind XYZKind) *XYZPlot {
	if dataset == nil {
		dataset = NewXYZDataset()
	}
	return &XYZPlot{
		dataset:  dataset,
		kind:     kind,
		dims:     DefaultXYZDimensions,
		size:     0.15,
		paint:    NewStandardPaintSource(),
		tooltips: DefaultToolTipGenerator,
	}
}

// Dataset returns the plotted dataset.
func (p *XYZPlot) Dataset() *XYZDataset { return p.dataset }

// Kind returns how points are drawn.
func (p *XYZPlot) Kind() XYZKind { return p.kind }

// SetDimensions sets the plot box. Invalid dimensions are ignored.
func (p *XYZPlot) SetDimensions(d Dimensions) {
	if d.valid() {
		p.dims = d
	}
}

// SetItemSize sets the marker half-extent, or the bar half-width, in world
// units. Non-positive values are ignored.
func (p *XYZPlot) SetItemSize(s float64) {
	if s > 0 && !math.IsInf(s, 0) {
		p.size = s
	}
}

// SetPaintSource replaces the paint source. nil is ignored.
func (p *XYZPlot) SetPaintSource(ps PaintSource) {
	if ps != nil {
		p.paint = ps
	}
}

// SetToolTipGenerator replaces the tooltip formatter. nil is ignored.
func (p *XYZPlot) SetToolTipGenerator(g *ToolTipGenerator) {
	if g != nil {
		p.tooltips = g
	}
}

// Dimensions implements Plot.
func (p *XYZPlot) Dimensions() Dimensions { return p.dims }

// axisRanges returns the data range along each axis. Bars always include
// y = 0 so that they have a base to grow from.
func (p *XYZPlot) axisRanges() (x, y, z Range) {
	b := p.dataset.Bounds()
	if b.Empty() {
		return Range{0, 1}, Range{0, 1}, Range{0, 1}
	}
	x = Range{Min: b.Min.X, Max: b.Max.X}
	y = Range{Min: b.Min.Y, Max: b.Max.Y}
	z = Range{Min: b.Min.Z, Max: b.Max.Z}
	if p.kind == XYZBar {
		y = y.Include(0)
	}
	return x, y, z
}

// Compose implements SceneContributor.
func (p *XYZPlot) Compose(world *scene.World) error {
	rx, ry, rz := p.axisRanges()
	d := p.dims
	toWorld := func(q math3d.Point3D) math3d.Point3D {
		return math3d.Pt3(
			-d.Width/2+d.Width*rx.Fraction(q.X),
			-d.Height/2+d.Height*ry.Fraction(q.Y),
			-d.Depth/2+d.Depth*rz.Fraction(q.Z),
		)
	}
	for si, s := range p.dataset.series {
		for i, q := range p.dataset.items[s] {
			key := XYZKey{Series: s, Index: i}
			if !q.IsFinite() {
				skipItem(key, q)
				continue
			}
			c := p.paint.ItemColor(key, si)
			w := toWorld(q)
			var solid *scene.Solid
			switch p.kind {
			case XYZBar:
				if q.Y == 0 {
					continue
				}
				base := toWorld(math3d.Pt3(q.X, 0, q.Z)).Y
				solid = scene.NewBar(w.X-p.size, base, w.Z-p.size, w.X+p.size, w.Y, w.Z+p.size, c)
			default:
				solid = scene.NewMarker(w, p.size, c)
			}
			if err := addSolid(world, solid, key); err != nil {
				return err
			}
		}
	}
	return nil
}

// ToolTipText implements Plot.
func (p *XYZPlot) ToolTipText(key any) (string, bool) {
	k, ok := key.(XYZKey)
	if !ok {
		return "", false
	}
	q, ok := p.dataset.Item(k)
	if !ok {
		return "", false
	}
	return p.tooltips.XYZText(k, q), true
}
