// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package render

import (
	"math"
	"slices"

	"github.com/gogpu/chart3d/internal/raster"
	"github.com/gogpu/chart3d/scene"
)

// DefaultGridCell is the default side, in pixels, of the cells of the
// spatial index kept by RenderingInfo.
const DefaultGridCell = 32

// Element is one painted face as recorded in a RenderingInfo.
// Elements are read-only.
type Element struct {
	Key        any // data item identity, nil for decoration
	Solid      *scene.Solid
	SolidIndex int
	FaceIndex  int
	Points     []Point // screen polygon
	Depth      float64
	Order      int // paint order, 0 is painted first

	edges                  *raster.EdgeList
	minX, minY, maxX, maxY float64
}

// Contains reports whether the screen point lies inside the element, using
// the same rule the rasterizer paints with.
func (e *Element) Contains(x, y float64) bool {
	if x < e.minX || x > e.maxX || y < e.minY || y > e.maxY {
		return false
	}
	return e.edges.Contains(x, y)
}

// RenderingInfo maps screen positions back to the faces painted there.
//
// It is built by a single render pass and never modified afterwards, so it
// may be queried from any goroutine. A RenderingInfo whose world has been
// mutated since it was built is stale and answers every query with no match.
type RenderingInfo struct {
	width, height int
	world         *scene.World
	version       uint64

	elements []*Element

	cell       int
	cols, rows int
	grid       [][]int32 // element indices per cell, in paint order
}

func newRenderingInfo(world *scene.World, version uint64, width, height, cell int) *RenderingInfo {
	if cell <= 0 {
		cell = DefaultGridCell
	}
	cols := (width + cell - 1) / cell
	rows := (height + cell - 1) / cell
	return &RenderingInfo{
		width:   width,
		height:  height,
		world:   world,
		version: version,
		cell:    cell,
		cols:    cols,
		rows:    rows,
		grid:    make([][]int32, cols*rows),
	}
}

// add records a painted face on top of everything recorded so far.
func (ri *RenderingInfo) add(pf ProjectedFace) {
	e := &Element{
		Key:        pf.Key,
		Solid:      pf.Solid,
		SolidIndex: pf.SolidIndex,
		FaceIndex:  pf.FaceIndex,
		Points:     slices.Clone(pf.Points),
		Depth:      pf.Depth,
		Order:      len(ri.elements),
		edges:      raster.NewEdgeList(pf.Points),
		minX:       math.Inf(1),
		minY:       math.Inf(1),
		maxX:       math.Inf(-1),
		maxY:       math.Inf(-1),
	}
	for _, p := range pf.Points {
		e.minX = math.Min(e.minX, p.X)
		e.minY = math.Min(e.minY, p.Y)
		e.maxX = math.Max(e.maxX, p.X)
		e.maxY = math.Max(e.maxY, p.Y)
	}
	idx := int32(len(ri.elements))
	ri.elements = append(ri.elements, e)

	c0, r0 := ri.cellOf(e.minX, e.minY)
	c1, r1 := ri.cellOf(e.maxX, e.maxY)
	for r := r0; r <= r1; r++ {
		for c := c0; c <= c1; c++ {
			i := r*ri.cols + c
			ri.grid[i] = append(ri.grid[i], idx)
		}
	}
}

// cellOf returns the grid cell containing (x, y), clamped to the grid.
func (ri *RenderingInfo) cellOf(x, y float64) (col, row int) {
	col = int(math.Max(0, math.Min(float64(ri.cols-1), math.Floor(x/float64(ri.cell)))))
	row = int(math.Max(0, math.Min(float64(ri.rows-1), math.Floor(y/float64(ri.cell)))))
	return col, row
}

// Len returns the number of recorded elements.
func (ri *RenderingInfo) Len() int {
	if ri == nil {
		return 0
	}
	return len(ri.elements)
}

// Elements returns the recorded elements in paint order.
func (ri *RenderingInfo) Elements() []*Element {
	if ri == nil {
		return nil
	}
	return slices.Clone(ri.elements)
}

// Size returns the viewport size the index was built for.
func (ri *RenderingInfo) Size() (width, height int) {
	return ri.width, ri.height
}

// Version returns the world version the index was built from.
func (ri *RenderingInfo) Version() uint64 {
	return ri.version
}

// Stale reports whether the world has changed since the index was built.
func (ri *RenderingInfo) Stale() bool {
	return ri.world != nil && ri.world.Version() != ri.version
}

// FaceAt returns the topmost painted face containing (x, y), whether or
// not it carries a key.
func (ri *RenderingInfo) FaceAt(x, y float64) (*Element, bool) {
	if ri == nil || len(ri.elements) == 0 || ri.Stale() {
		return nil, false
	}
	if !(x >= 0 && y >= 0 && x < float64(ri.width) && y < float64(ri.height)) {
		return nil, false
	}
	c, r := ri.cellOf(x, y)
	cell := ri.grid[r*ri.cols+c]
	for i := len(cell) - 1; i >= 0; i-- {
		e := ri.elements[cell[i]]
		if e.Contains(x, y) {
			return e, true
		}
	}
	return nil, false
}

// ElementAt returns the topmost painted face at (x, y) if that face
// identifies a data item. A face without a key hides whatever lies beneath
// it, so no match is reported there.
func (ri *RenderingInfo) ElementAt(x, y float64) (*Element, bool) {
	e, ok := ri.FaceAt(x, y)
	if !ok || e.Key == nil {
		return nil, false
	}
	return e, true
}

// IdentityAt returns the key of the item at (x, y).
func (ri *RenderingInfo) IdentityAt(x, y float64) (any, bool) {
	e, ok := ri.ElementAt(x, y)
	if !ok {
		return nil, false
	}
	return e.Key, true
}

// ElementAtPixel queries the centre of pixel (px, py), which matches
// exactly what the renderer painted there.
func (ri *RenderingInfo) ElementAtPixel(px, py int) (*Element, bool) {
	return ri.ElementAt(float64(px)+0.5, float64(py)+0.5)
}
