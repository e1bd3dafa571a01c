// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package chart

import (
	"fmt"
	"image/color"
	"math"

	"github.com/gogpu/chart3d/math3d"
	"github.com/gogpu/chart3d/scene"
)

// CategoryKind selects how a CategoryPlot draws its values.
type CategoryKind int

const (
	// Bar draws one box per value, series side by side in depth.
	Bar CategoryKind = iota
	// StackedBar stacks the series of each column on top of each other.
	StackedBar
	// Line draws a ribbon through the values of each series.
	Line
	// Area fills the region between each series and the base value.
	Area
)

// String implements fmt.Stringer.
func (k CategoryKind) String() string {
	switch k {
	case Bar:
		return "bar"
	case StackedBar:
		return "stacked-bar"
	case Line:
		return "line"
	case Area:
		return "area"
	}
	return fmt.Sprintf("CategoryKind(%d)", int(k))
}

// Fractions of a column or lane covered by a bar, and of the plot height
// used as line thickness.
const (
	barWidthFraction = 0.6
	barDepthFraction = 0.6
	lineThickness    = 0.04
)

// CategoryPlot draws a CategoryDataset. Columns run along X and values
// along Y. Each series (and each row) gets a lane along Z, except for
// stacked bars where the series share the lane of their row.
type CategoryPlot struct {
	dataset  *CategoryDataset
	kind     CategoryKind
	dims     Dimensions
	fixed    bool
	base     float64
	valueRng *Range
	paint    PaintSource
	tooltips *ToolTipGenerator
}

var _ Plot = (*CategoryPlot)(nil)

// NewCategoryPlot returns a plot of the given kind over dataset.
func NewCategoryPlot(dataset *CategoryDataset, kind CategoryKind) *CategoryPlot {
	if dataset == nil {
		dataset = NewCategoryDataset()
	}
	return &CategoryPlot{
		dataset:  dataset,
		kind:     kind,
		paint:    NewStandardPaintSource(),
		tooltips: DefaultToolTipGenerator,
	}
}

// Dataset returns the plotted dataset.
func (p *CategoryPlot) Dataset() *CategoryDataset { return p.dataset }

// Kind returns how values are drawn.
func (p *CategoryPlot) Kind() CategoryKind { return p.kind }

// SetPaintSource replaces the paint source. nil is ignored.
func (p *CategoryPlot) SetPaintSource(ps PaintSource) {
	if ps != nil {
		p.paint = ps
	}
}

// SetToolTipGenerator replaces the tooltip formatter. nil is ignored.
func (p *CategoryPlot) SetToolTipGenerator(g *ToolTipGenerator) {
	if g != nil {
		p.tooltips = g
	}
}

// SetDimensions fixes the plot box. Invalid dimensions restore the
// automatic size.
func (p *CategoryPlot) SetDimensions(d Dimensions) {
	p.dims, p.fixed = d, d.valid()
}

// SetValueRange fixes the value axis range. nil restores the range found
// from the data.
func (p *CategoryPlot) SetValueRange(r *Range) {
	if r == nil {
		p.valueRng = nil
		return
	}
	c := *r
	p.valueRng = &c
}

// SetBase sets the value bars and areas grow from. Default 0.
func (p *CategoryPlot) SetBase(v float64) {
	if !math.IsNaN(v) && !math.IsInf(v, 0) {
		p.base = v
	}
}

// Dimensions implements Plot. The automatic size gives each column and lane
// one world unit and uses a height of 4 (at least half the width).
func (p *CategoryPlot) Dimensions() Dimensions {
	if p.fixed {
		return p.dims
	}
	cols := float64(max(1, len(p.dataset.columns)))
	return Dimensions{
		Width:  cols,
		Height: max(4, cols/2),
		Depth:  float64(max(1, p.laneCount())),
	}
}

func (p *CategoryPlot) laneCount() int {
	rows := max(1, len(p.dataset.rows))
	if p.kind == StackedBar {
		return rows
	}
	return rows * max(1, len(p.dataset.series))
}

func (p *CategoryPlot) lane(seriesIdx, rowIdx int) int {
	if p.kind == StackedBar {
		return rowIdx
	}
	return seriesIdx*max(1, len(p.dataset.rows)) + rowIdx
}

// ValueRange returns the value axis range: the fixed range when set,
// otherwise the range of the data including the base. Stacked bars use the
// extremes of the per-column positive and negative sums. An empty or flat
// dataset yields [0, 1].
func (p *CategoryPlot) ValueRange() Range {
	if p.valueRng != nil {
		return *p.valueRng
	}
	r := Range{Min: p.base, Max: p.base}
	d := p.dataset
	for _, row := range d.rows {
		for _, col := range d.columns {
			pos, neg := p.base, p.base
			for _, s := range d.series {
				v, ok := d.values[CategoryKey{Series: s, Row: row, Column: col}]
				if !ok || math.IsNaN(v) || math.IsInf(v, 0) {
					continue
				}
				if p.kind != StackedBar {
					r = r.Include(v)
					continue
				}
				if v >= 0 {
					pos += v
				} else {
					neg += v
				}
			}
			r = r.Include(pos).Include(neg)
		}
	}
	if r.Length() == 0 {
		return Range{Min: 0, Max: 1}
	}
	return r
}

// layout maps data coordinates into the plot box centred on the origin.
type layout struct {
	dims     Dimensions
	values   Range
	colWidth float64
	laneSize float64
}

func (l layout) x(col int) float64 {
	return -l.dims.Width/2 + (float64(col)+0.5)*l.colWidth
}

func (l layout) y(v float64) float64 {
	return -l.dims.Height/2 + l.dims.Height*l.values.Fraction(v)
}

func (l layout) z(lane int) float64 {
	return -l.dims.Depth/2 + (float64(lane)+0.5)*l.laneSize
}

// Compose implements SceneContributor.
func (p *CategoryPlot) Compose(world *scene.World) error {
	d := p.dataset
	if len(d.columns) == 0 || len(d.series) == 0 {
		return nil
	}
	dims := p.Dimensions()
	l := layout{
		dims:     dims,
		values:   p.ValueRange(),
		colWidth: dims.Width / float64(len(d.columns)),
		laneSize: dims.Depth / float64(p.laneCount()),
	}
	switch p.kind {
	case StackedBar:
		return p.composeStacked(world, l)
	case Line, Area:
		return p.composeSeries(world, l)
	default:
		return p.composeBars(world, l)
	}
}

func (p *CategoryPlot) value(key CategoryKey) (float64, bool) {
	v, ok := p.dataset.values[key]
	if !ok {
		return 0, false
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		skipItem(key, v)
		return 0, false
	}
	return v, true
}

func (p *CategoryPlot) composeBars(world *scene.World, l layout) error {
	d := p.dataset
	hw := l.colWidth * barWidthFraction / 2
	hd := l.laneSize * barDepthFraction / 2
	for si, s := range d.series {
		for ri, row := range d.rows {
			z := l.z(p.lane(si, ri))
			for ci, col := range d.columns {
				key := CategoryKey{Series: s, Row: row, Column: col}
				v, ok := p.value(key)
				if !ok || v == p.base {
					continue
				}
				x := l.x(ci)
				bar := scene.NewBar(x-hw, l.y(p.base), z-hd, x+hw, l.y(v), z+hd, p.paint.ItemColor(key, si))
				if err := addSolid(world, bar, key); err != nil {
					return err
				}
			}
		}
	}
	return nil
}

func (p *CategoryPlot) composeStacked(world *scene.World, l layout) error {
	d := p.dataset
	hw := l.colWidth * barWidthFraction / 2
	hd := l.laneSize * barDepthFraction / 2
	for ri, row := range d.rows {
		z := l.z(ri)
		for ci, col := range d.columns {
			x := l.x(ci)
			pos, neg := p.base, p.base
			for si, s := range d.series {
				key := CategoryKey{Series: s, Row: row, Column: col}
				v, ok := p.value(key)
				if !ok || v == 0 {
					continue
				}
				var lo, hi float64
				if v > 0 {
					lo, hi = pos, pos+v
					pos = hi
				} else {
					lo, hi = neg+v, neg
					neg = lo
				}
				bar := scene.NewBar(x-hw, l.y(lo), z-hd, x+hw, l.y(hi), z+hd, p.paint.ItemColor(key, si))
				if err := addSolid(world, bar, key); err != nil {
					return err
				}
			}
		}
	}
	return nil
}

// composeSeries draws lines and areas. The piece between two neighbouring
// columns is split at the midpoint and each half is keyed by the nearer
// item, so hovering anywhere near a value finds it. A missing or invalid
// value breaks the series; an isolated value is drawn as a marker.
func (p *CategoryPlot) composeSeries(world *scene.World, l layout) error {
	d := p.dataset
	depth := l.laneSize * barDepthFraction
	thickness := l.dims.Height * lineThickness
	for si, s := range d.series {
		for ri, row := range d.rows {
			z := l.z(p.lane(si, ri))
			keys := make([]CategoryKey, len(d.columns))
			vals := make([]float64, len(d.columns))
			ok := make([]bool, len(d.columns))
			for ci, col := range d.columns {
				keys[ci] = CategoryKey{Series: s, Row: row, Column: col}
				vals[ci], ok[ci] = p.value(keys[ci])
			}
			for ci := range d.columns {
				if !ok[ci] {
					continue
				}
				c := p.paint.ItemColor(keys[ci], si)
				x, y := l.x(ci), l.y(vals[ci])
				left := ci > 0 && ok[ci-1]
				right := ci+1 < len(d.columns) && ok[ci+1]
				if !left && !right {
					m := scene.NewMarker(math3d.Pt3(x, y, z), max(thickness, depth/4), c)
					if err := addSolid(world, m, keys[ci]); err != nil {
						return err
					}
					continue
				}
				if left {
					mx, my := (x+l.x(ci-1))/2, (y+l.y(vals[ci-1]))/2
					if err := p.addPiece(world, l, keys[ci], c, mx, my, x, y, z, depth, thickness); err != nil {
						return err
					}
				}
				if right {
					mx, my := (x+l.x(ci+1))/2, (y+l.y(vals[ci+1]))/2
					if err := p.addPiece(world, l, keys[ci], c, x, y, mx, my, z, depth, thickness); err != nil {
						return err
					}
				}
			}
		}
	}
	return nil
}

// addPiece adds the ribbon or area slab from (x0,y0) to (x1,y1).
func (p *CategoryPlot) addPiece(world *scene.World, l layout, key CategoryKey, c color.NRGBA,
	x0, y0, x1, y1, z, depth, thickness float64,
) error {
	if p.kind == Line {
		s, err := scene.NewRibbon(x0, y0, x1, y1, z, depth, thickness, c)
		if err != nil {
			return fmt.Errorf("chart: %s: %w", key, err)
		}
		return addSolid(world, s, key)
	}
	for _, outline := range areaOutlines(x0, y0, x1, y1, l.y(p.base)) {
		s, err := scene.NewExtrusion(outline, z-depth/2, z+depth/2, c)
		if err != nil {
			return fmt.Errorf("chart: %s: %w", key, err)
		}
		if err := addSolid(world, s, key); err != nil {
			return err
		}
	}
	return nil
}

// areaOutlines returns the region between the segment (x0,y0)-(x1,y1) and
// the horizontal line y = base. When the segment crosses the base the
// region is split at the crossing so that each outline is simple. Pieces
// of zero height are omitted.
func areaOutlines(x0, y0, x1, y1, base float64) [][]scene.Point2D {
	d0, d1 := y0-base, y1-base
	if d0*d1 < 0 {
		xc := x0 + (x1-x0)*d0/(d0-d1)
		return [][]scene.Point2D{
			{{X: x0, Y: base}, {X: xc, Y: base}, {X: x0, Y: y0}},
			{{X: xc, Y: base}, {X: x1, Y: base}, {X: x1, Y: y1}},
		}
	}
	switch {
	case d0 == 0 && d1 == 0:
		return nil
	case d0 == 0:
		return [][]scene.Point2D{{{X: x0, Y: base}, {X: x1, Y: base}, {X: x1, Y: y1}}}
	case d1 == 0:
		return [][]scene.Point2D{{{X: x0, Y: base}, {X: x1, Y: base}, {X: x0, Y: y0}}}
	}
	return [][]scene.Point2D{{{X: x0, Y: base}, {X: x1, Y: base}, {X: x1, Y: y1}, {X: x0, Y: y0}}}
}

// ToolTipText implements Plot.
func (p *CategoryPlot) ToolTipText(key any) (string, bool) {
	k, ok := key.(CategoryKey)
	if !ok {
		return "", false
	}
	v, ok := p.dataset.Value(k)
	if !ok {
		return "", false
	}
	return p.tooltips.CategoryText(k, v, len(p.dataset.rows) > 1), true
}
