// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package chart

import (
	"image/color"
	"math"

	"github.com/gogpu/chart3d/scene"
)

// Pie defaults.
const (
	DefaultPieRadius = 4.0
	DefaultPieDepth  = 0.5
)

// PiePlot draws a PieDataset as a ring of cylinder wedges lying in the XZ
// plane. Sections run counter-clockwise (seen from above) from +X.
type PiePlot struct {
	dataset   *PieDataset
	radius    float64
	depth     float64
	increment float64
	paint     PaintSource
	colors    map[string]color.NRGBA
	explode   map[string]float64
	tooltips  *ToolTipGenerator
}

var _ Plot = (*PiePlot)(nil)

// NewPiePlot returns a plot over dataset with default radius and depth.
func NewPiePlot(dataset *PieDataset) *PiePlot {
	if dataset == nil {
		dataset = NewPieDataset()
	}
	return &PiePlot{
		dataset:   dataset,
		radius:    DefaultPieRadius,
		depth:     DefaultPieDepth,
		increment: math.Pi / 90,
		paint:     NewStandardPaintSource(),
		colors:    make(map[string]color.NRGBA),
		explode:   make(map[string]float64),
		tooltips:  DefaultToolTipGenerator,
	}
}

// Dataset returns the plotted dataset.
func (p *PiePlot) Dataset() *PieDataset { return p.dataset }

// SetRadius sets the pie radius. Non-positive values are ignored.
func (p *PiePlot) SetRadius(r float64) {
	if r > 0 && !math.IsInf(r, 0) {
		p.radius = r
	}
}

// SetDepth sets the thickness of the pie. Non-positive values are ignored.
func (p *PiePlot) SetDepth(d float64) {
	if d > 0 && !math.IsInf(d, 0) {
		p.depth = d
	}
}

// SetSegmentIncrement sets the maximum angle in radians covered by one facet
// of a section's rim. Values below scene.MinSegmentIncrement are raised to
// it; values that are not positive are ignored.
func (p *PiePlot) SetSegmentIncrement(rad float64) {
	if rad > 0 {
		p.increment = max(rad, scene.MinSegmentIncrement)
	}
}

// SetPaintSource replaces the paint source. nil is ignored.
func (p *PiePlot) SetPaintSource(ps PaintSource) {
	if ps != nil {
		p.paint = ps
	}
}

// SetSectionColor fixes the colour of one section.
func (p *PiePlot) SetSectionColor(key string, c color.NRGBA) {
	p.colors[key] = c
}

// SetSectionColors assigns colours to sections in dataset order. Extra
// colours are ignored.
func (p *PiePlot) SetSectionColors(colors ...color.NRGBA) {
	for i, k := range p.dataset.Keys() {
		if i >= len(colors) {
			break
		}
		p.colors[k] = colors[i]
	}
}

// SetExplode pushes a section away from the centre by amount world units.
func (p *PiePlot) SetExplode(key string, amount float64) {
	if amount < 0 || math.IsNaN(amount) || math.IsInf(amount, 0) {
		delete(p.explode, key)
		return
	}
	p.explode[key] = amount
}

// SetToolTipGenerator replaces the tooltip formatter. nil is ignored.
func (p *PiePlot) SetToolTipGenerator(g *ToolTipGenerator) {
	if g != nil {
		p.tooltips = g
	}
}

// Dimensions implements Plot.
func (p *PiePlot) Dimensions() Dimensions {
	var maxExplode float64
	for _, e := range p.explode {
		maxExplode = max(maxExplode, e)
	}
	d := 2 * (p.radius + maxExplode)
	return Dimensions{Width: d, Height: p.depth, Depth: d}
}

// Compose implements SceneContributor.
func (p *PiePlot) Compose(world *scene.World) error {
	total := p.dataset.Total()
	if total <= 0 {
		return nil
	}
	angle := 0.0
	for i, k := range p.dataset.Keys() {
		key := PieKey{Section: k}
		v, _ := p.dataset.Value(k)
		if !usable(v) {
			skipItem(key, v)
			continue
		}
		if v == 0 {
			continue
		}
		extent := 2 * math.Pi * v / total
		seg := scene.NewPieSegment(p.radius, p.explode[k], -p.depth/2, p.depth,
			angle, extent, p.increment, p.sectionColor(key, i))
		angle += extent
		if err := addSolid(world, seg.Named("pie:"+k), key); err != nil {
			return err
		}
	}
	return nil
}

func (p *PiePlot) sectionColor(key PieKey, i int) color.NRGBA {
	if c, ok := p.colors[key.Section]; ok {
		return c
	}
	return p.paint.ItemColor(key, i)
}

// ToolTipText implements Plot.
func (p *PiePlot) ToolTipText(key any) (string, bool) {
	k, ok := key.(PieKey)
	if !ok {
		return "", false
	}
	v, ok := p.dataset.Value(k.Section)
	if !ok {
		return "", false
	}
	return p.tooltips.PieText(k, v, p.dataset.Total()), true
}
