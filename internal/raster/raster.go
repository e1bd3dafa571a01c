// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package raster provides scanline rasterization of flat-coloured polygons.
//
// A pixel (px, py) is painted when its centre (px+0.5, py+0.5) lies inside
// the polygon under the even-odd rule. EdgeList.Contains uses the same
// crossing computation, so a hit test at a pixel centre agrees exactly with
// what was painted there.
package raster

import (
	"image/color"
	"math"
)

// Pixmap is an interface for writing pixels (avoids import cycle).
type Pixmap interface {
	Width() int
	Height() int
	SetPixel(x, y int, c color.NRGBA)
}

// SpanFiller is an optional interface that pixmaps can implement for
// optimized span filling. The span covers x in [x1, x2).
type SpanFiller interface {
	FillSpan(x1, x2, y int, c color.NRGBA)
}

// SpanFunc receives one horizontal run of covered pixels, x in [x1, x2).
type SpanFunc func(y, x1, x2 int)

// Rasterizer performs even-odd scanline rasterization. It keeps scratch
// buffers between calls and is not safe for concurrent use.
type Rasterizer struct {
	width  int
	height int
	edges  EdgeList
	xs     []float64
}

// NewRasterizer creates a new rasterizer for the given dimensions.
func NewRasterizer(width, height int) *Rasterizer {
	return &Rasterizer{
		width:  width,
		height: height,
		xs:     make([]float64, 0, 16),
	}
}

// Spans calls fn for every run of pixels inside the closed polygon, clipped
// to the rasterizer bounds, top to bottom and left to right.
func (r *Rasterizer) Spans(points []Point, fn SpanFunc) {
	r.edges.Reset(points)
	if r.edges.Len() == 0 {
		return
	}

	// Rows whose centre can fall in [yMin, yMax).
	yStart := int(math.Max(0, math.Floor(r.edges.yMin-0.5)))
	yEnd := int(math.Min(float64(r.height), math.Ceil(r.edges.yMax+0.5)))

	for y := yStart; y < yEnd; y++ {
		r.xs = r.edges.Crossings(r.xs, float64(y)+0.5)
		for i := 0; i+1 < len(r.xs); i += 2 {
			x1 := firstCentreAtOrAfter(r.xs[i])
			x2 := firstCentreAtOrAfter(r.xs[i+1])
			x1 = max(x1, 0)
			x2 = min(x2, r.width)
			if x1 < x2 {
				fn(y, x1, x2)
			}
		}
	}
}

// Fill rasterizes a filled polygon onto a pixmap.
func (r *Rasterizer) Fill(pixmap Pixmap, points []Point, c color.NRGBA) {
	if spanFiller, ok := pixmap.(SpanFiller); ok {
		r.Spans(points, func(y, x1, x2 int) {
			spanFiller.FillSpan(x1, x2, y, c)
		})
		return
	}
	r.Spans(points, func(y, x1, x2 int) {
		for x := x1; x < x2; x++ {
			pixmap.SetPixel(x, y, c)
		}
	})
}

// Stroke draws the closed outline of a polygon with the given line width.
func (r *Rasterizer) Stroke(pixmap Pixmap, points []Point, lineWidth float64, c color.NRGBA) {
	if len(points) < 2 {
		return
	}
	if lineWidth < 1 {
		lineWidth = 1
	}
	for i := range points {
		r.strokeLine(pixmap, points[i], points[(i+1)%len(points)], lineWidth, c)
	}
}

// strokeLine draws a thick line as a filled quad.
func (r *Rasterizer) strokeLine(pixmap Pixmap, p0, p1 Point, width float64, c color.NRGBA) {
	dx := p1.X - p0.X
	dy := p1.Y - p0.Y
	length := math.Sqrt(dx*dx + dy*dy)
	if length < 0.001 {
		return
	}

	// Perpendicular offset by half width
	nx := -dy / length * width / 2
	ny := dx / length * width / 2

	quad := []Point{
		{X: p0.X + nx, Y: p0.Y + ny},
		{X: p0.X - nx, Y: p0.Y - ny},
		{X: p1.X - nx, Y: p1.Y - ny},
		{X: p1.X + nx, Y: p1.Y + ny},
	}
	r.Fill(pixmap, quad, c)
}

// firstCentreAtOrAfter returns the smallest pixel index px with
// px+0.5 >= x, using the same comparison Contains does.
func firstCentreAtOrAfter(x float64) int {
	if x < math.MinInt32 {
		return math.MinInt32
	}
	if x > math.MaxInt32 {
		return math.MaxInt32
	}
	px := int(math.Ceil(x - 0.5))
	for float64(px)+0.5 < x {
		px++
	}
	for float64(px-1)+0.5 >= x {
		px--
	}
	return px
}
