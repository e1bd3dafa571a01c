// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package raster

import "slices"

// Point represents a 2D point in pixel space.
type Point struct {
	X, Y float64
}

// Edge is a non-horizontal polygon edge ordered so that y0 < y1.
//
// An edge spans the half-open interval [y0, y1): a scanline through a shared
// vertex meets exactly one of the two edges that end there, which keeps the
// even-odd parity correct at vertices.
type Edge struct {
	x0, y0 float64 // upper end
	x1, y1 float64 // lower end
	dxdy   float64
}

// NewEdge creates an edge from two points. ok is false for horizontal
// edges, which never cross a scanline.
func NewEdge(p0, p1 Point) (e Edge, ok bool) {
	if p0.Y == p1.Y {
		return Edge{}, false
	}
	if p0.Y > p1.Y {
		p0, p1 = p1, p0
	}
	return Edge{
		x0:   p0.X,
		y0:   p0.Y,
		x1:   p1.X,
		y1:   p1.Y,
		dxdy: (p1.X - p0.X) / (p1.Y - p0.Y),
	}, true
}

// Spans reports whether the edge crosses the horizontal line at y.
func (e *Edge) Spans(y float64) bool {
	return e.y0 <= y && y < e.y1
}

// XAtY returns the x coordinate where the edge crosses the line at y.
func (e *Edge) XAtY(y float64) float64 {
	return e.x0 + (y-e.y0)*e.dxdy
}

// EdgeList holds the edges of a closed polygon.
type EdgeList struct {
	edges      []Edge
	yMin, yMax float64
}

// NewEdgeList builds the edge list of the closed polygon through points.
// The closing edge from the last point back to the first is implicit.
func NewEdgeList(points []Point) *EdgeList {
	l := &EdgeList{}
	l.Reset(points)
	return l
}

// Reset rebuilds the list for a new polygon, reusing storage.
func (l *EdgeList) Reset(points []Point) {
	l.edges = l.edges[:0]
	l.yMin, l.yMax = 0, 0
	n := len(points)
	if n < 3 {
		return
	}
	first := true
	for i := range points {
		e, ok := NewEdge(points[i], points[(i+1)%n])
		if !ok {
			continue
		}
		l.edges = append(l.edges, e)
		if first {
			l.yMin, l.yMax = e.y0, e.y1
			first = false
			continue
		}
		l.yMin = min(l.yMin, e.y0)
		l.yMax = max(l.yMax, e.y1)
	}
}

// Len returns the number of non-horizontal edges.
func (l *EdgeList) Len() int {
	return len(l.edges)
}

// Crossings appends to dst the x coordinates where the polygon boundary
// crosses the line at y, sorted ascending. Pairs of consecutive crossings
// bound the inside under the even-odd rule.
func (l *EdgeList) Crossings(dst []float64, y float64) []float64 {
	dst = dst[:0]
	for i := range l.edges {
		if l.edges[i].Spans(y) {
			dst = append(dst, l.edges[i].XAtY(y))
		}
	}
	slices.Sort(dst)
	return dst
}

// Contains reports whether (x, y) is inside the polygon under the even-odd
// rule. Crossing points count as inside on their left edge and outside on
// their right, so Contains agrees with the pixels Fill paints when queried
// at pixel centres.
func (l *EdgeList) Contains(x, y float64) bool {
	if y < l.yMin || y >= l.yMax {
		return false
	}
	inside := false
	for i := range l.edges {
		e := &l.edges[i]
		if e.Spans(y) && e.XAtY(y) <= x {
			inside = !inside
		}
	}
	return inside
}

// Contains reports whether (x, y) is inside the closed polygon through
// points under the even-odd rule.
func Contains(points []Point, x, y float64) bool {
	return NewEdgeList(points).Contains(x, y)
}
