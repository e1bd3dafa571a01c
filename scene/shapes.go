// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package scene

import (
	"fmt"
	"image/color"
	"math"
	"slices"

	"github.com/gogpu/chart3d/math3d"
)

// MinSegmentIncrement is the smallest rim step NewPieSegment uses. Smaller
// increments are raised to it, which caps a full circle at 7200 facets.
const MinSegmentIncrement = math.Pi / 3600

// Point2D is a point of a 2D outline used by NewExtrusion.
type Point2D struct {
	X, Y float64
}

// boxFaces lists the six faces of a box whose vertices are ordered as in
// NewBar, each counter-clockwise from outside.
var boxFaces = [6][4]int{
	{4, 5, 6, 7}, // front  (+z)
	{0, 3, 2, 1}, // back   (-z)
	{1, 2, 6, 5}, // right  (+x)
	{0, 4, 7, 3}, // left   (-x)
	{3, 7, 6, 2}, // top    (+y)
	{0, 1, 5, 4}, // bottom (-y)
}

// NewBox returns an axis-aligned box of the given width (x), height (y)
// and depth (z) centred on the origin.
func NewBox(w, h, d float64, c color.NRGBA) *Solid {
	return NewBar(-w/2, -h/2, -d/2, w/2, h/2, d/2, c)
}

// NewBar returns the axis-aligned box spanning the two corners. The corners
// may be given in any order; a bar for a negative value has y1 < y0.
func NewBar(x0, y0, z0, x1, y1, z1 float64, c color.NRGBA) *Solid {
	x0, x1 = min(x0, x1), max(x0, x1)
	y0, y1 = min(y0, y1), max(y0, y1)
	z0, z1 = min(z0, z1), max(z0, z1)

	vertices := []math3d.Point3D{
		{X: x0, Y: y0, Z: z0},
		{X: x1, Y: y0, Z: z0},
		{X: x1, Y: y1, Z: z0},
		{X: x0, Y: y1, Z: z0},
		{X: x0, Y: y0, Z: z1},
		{X: x1, Y: y0, Z: z1},
		{X: x1, Y: y1, Z: z1},
		{X: x0, Y: y1, Z: z1},
	}
	faces := make([]Face, len(boxFaces))
	for i, f := range boxFaces {
		faces[i] = Face{Indices: f[:], Color: c}
	}
	return &Solid{name: "bar", vertices: vertices, faces: faces, placement: math3d.Identity()}
}

// NewPieSegment returns a wedge of a cylinder lying in the XZ plane with its
// axis on Y. The wedge covers angles [start, start+extent) in radians,
// measured counter-clockwise from +X when seen from above. It spans
// y in [base, base+height] and is pushed out from the axis by explode along
// its mid angle. The arc is approximated with steps of at most increment
// radians, or the default of 2 degrees when increment is not positive.
func NewPieSegment(radius, explode, base, height, start, extent, increment float64, c color.NRGBA) *Solid {
	if !(increment > 0) {
		increment = math.Pi / 90
	}
	increment = max(increment, MinSegmentIncrement)
	steps := max(1, int(math.Ceil(math.Abs(extent)/increment)))
	mid := start + extent/2
	cx := explode * math.Cos(mid)
	cz := -explode * math.Sin(mid)
	top := base + height

	// 0: bottom centre, 1: top centre, then (bottom, top) pairs along the arc.
	vertices := make([]math3d.Point3D, 0, 2+2*(steps+1))
	vertices = append(vertices,
		math3d.Point3D{X: cx, Y: base, Z: cz},
		math3d.Point3D{X: cx, Y: top, Z: cz},
	)
	for i := 0; i <= steps; i++ {
		a := start + extent*float64(i)/float64(steps)
		x := cx + radius*math.Cos(a)
		z := cz - radius*math.Sin(a)
		vertices = append(vertices,
			math3d.Point3D{X: x, Y: base, Z: z},
			math3d.Point3D{X: x, Y: top, Z: z},
		)
	}
	b := func(i int) int { return 2 + 2*i }
	t := func(i int) int { return 3 + 2*i }

	topFace := []int{1}
	bottomFace := []int{0}
	for i := 0; i <= steps; i++ {
		topFace = append(topFace, t(i))
		bottomFace = append(bottomFace, b(steps-i))
	}
	faces := []Face{
		{Indices: topFace, Color: c},
		{Indices: bottomFace, Color: c},
		{Indices: []int{0, b(0), t(0), 1}, Color: c},
		{Indices: []int{0, 1, t(steps), b(steps)}, Color: c},
	}
	for i := 0; i < steps; i++ {
		faces = append(faces, Face{Indices: []int{b(i), b(i + 1), t(i + 1), t(i)}, Color: c})
	}
	if extent < 0 {
		for i := range faces {
			slices.Reverse(faces[i].Indices)
		}
	}
	return &Solid{name: "pie-segment", vertices: vertices, faces: faces, placement: math3d.Identity()}
}

// NewExtrusion returns the prism formed by sweeping a simple 2D outline in
// the XY plane from z0 to z1. The outline may be given in either winding.
func NewExtrusion(outline []Point2D, z0, z1 float64, c color.NRGBA) (*Solid, error) {
	n := len(outline)
	if n < 3 {
		return nil, fmt.Errorf("%w: extrusion outline has %d points", ErrInvalidFace, n)
	}
	pts := make([]Point2D, n)
	copy(pts, outline)
	if signedArea(pts) < 0 {
		slices.Reverse(pts)
	}
	z0, z1 = min(z0, z1), max(z0, z1)

	// Back ring 0..n-1 at z0, front ring n..2n-1 at z1.
	vertices := make([]math3d.Point3D, 0, 2*n)
	for _, p := range pts {
		vertices = append(vertices, math3d.Point3D{X: p.X, Y: p.Y, Z: z0})
	}
	for _, p := range pts {
		vertices = append(vertices, math3d.Point3D{X: p.X, Y: p.Y, Z: z1})
	}

	front := make([]int, n)
	back := make([]int, n)
	for i := 0; i < n; i++ {
		front[i] = n + i
		back[i] = n - 1 - i
	}
	faces := []Face{
		{Indices: front, Color: c},
		{Indices: back, Color: c},
	}
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		faces = append(faces, Face{Indices: []int{i, j, n + j, n + i}, Color: c})
	}
	return NewSolid("extrusion", vertices, faces)
}

// NewRibbon returns a slab following the segment (x0,y0)-(x1,y1): a band of
// the given vertical thickness centred on the segment, extruded through
// depth along z around z.
func NewRibbon(x0, y0, x1, y1, z, depth, thickness float64, c color.NRGBA) (*Solid, error) {
	h := thickness / 2
	outline := []Point2D{
		{X: x0, Y: y0 - h},
		{X: x1, Y: y1 - h},
		{X: x1, Y: y1 + h},
		{X: x0, Y: y0 + h},
	}
	s, err := NewExtrusion(outline, z-depth/2, z+depth/2, c)
	if err != nil {
		return nil, err
	}
	s.name = "ribbon"
	return s, nil
}

// NewMarker returns an octahedron centred on center with the given
// half-extent along each axis, used as a scatter point.
func NewMarker(center math3d.Point3D, size float64, c color.NRGBA) *Solid {
	// 0:+x 1:-x 2:+y 3:-y 4:+z 5:-z
	vertices := []math3d.Point3D{
		center.Add(math3d.V3(size, 0, 0)),
		center.Add(math3d.V3(-size, 0, 0)),
		center.Add(math3d.V3(0, size, 0)),
		center.Add(math3d.V3(0, -size, 0)),
		center.Add(math3d.V3(0, 0, size)),
		center.Add(math3d.V3(0, 0, -size)),
	}
	faces := make([]Face, 0, 8)
	for _, sx := range [2]int{1, -1} {
		for _, sy := range [2]int{1, -1} {
			for _, sz := range [2]int{1, -1} {
				ix := (1 - sx) / 2
				iy := 2 + (1-sy)/2
				iz := 4 + (1-sz)/2
				idx := []int{ix, iy, iz}
				if sx*sy*sz < 0 {
					idx = []int{ix, iz, iy}
				}
				faces = append(faces, Face{Indices: idx, Color: c})
			}
		}
	}
	return &Solid{name: "marker", vertices: vertices, faces: faces, placement: math3d.Identity()}
}

// Named returns a copy of the solid with a different name.
func (s *Solid) Named(name string) *Solid {
	c := *s
	c.name = name
	return &c
}

func signedArea(pts []Point2D) float64 {
	var a float64
	for i := range pts {
		p := pts[i]
		q := pts[(i+1)%len(pts)]
		a += p.X*q.Y - q.X*p.Y
	}
	return a / 2
}
