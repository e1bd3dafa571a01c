// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package chart

import (
	"math"
	"slices"

	"github.com/gogpu/chart3d/math3d"
)

// usable reports whether v can be drawn as a size or height.
func usable(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0) && v >= 0
}

// PieDataset is an ordered list of named values.
type PieDataset struct {
	keys   []string
	values map[string]float64
}

// NewPieDataset returns an empty dataset.
func NewPieDataset() *PieDataset {
	return &PieDataset{values: make(map[string]float64)}
}

// Add sets the value for key. A new key is appended; an existing key keeps
// its position.
func (d *PieDataset) Add(key string, value float64) {
	if _, ok := d.values[key]; !ok {
		d.keys = append(d.keys, key)
	}
	d.values[key] = value
}

// Len returns the number of sections.
func (d *PieDataset) Len() int { return len(d.keys) }

// Keys returns the section keys in insertion order.
func (d *PieDataset) Keys() []string { return slices.Clone(d.keys) }

// Value returns the value stored for key.
func (d *PieDataset) Value(key string) (float64, bool) {
	v, ok := d.values[key]
	return v, ok
}

// Total returns the sum of all drawable (finite, non-negative) values.
func (d *PieDataset) Total() float64 {
	var sum float64
	for _, k := range d.keys {
		if v := d.values[k]; usable(v) {
			sum += v
		}
	}
	return sum
}

// CategoryDataset holds values addressed by (series, row, column). Most
// charts use a single row; the row dimension lays series out in depth.
type CategoryDataset struct {
	series  []string
	rows    []string
	columns []string
	values  map[CategoryKey]float64
}

// NewCategoryDataset returns an empty dataset.
func NewCategoryDataset() *CategoryDataset {
	return &CategoryDataset{values: make(map[CategoryKey]float64)}
}

// AddValue stores v under (series, row, column), registering any new keys in
// order of first appearance.
func (d *CategoryDataset) AddValue(v float64, series, row, column string) {
	if !slices.Contains(d.series, series) {
		d.series = append(d.series, series)
	}
	if !slices.Contains(d.rows, row) {
		d.rows = append(d.rows, row)
	}
	if !slices.Contains(d.columns, column) {
		d.columns = append(d.columns, column)
	}
	d.values[CategoryKey{Series: series, Row: row, Column: column}] = v
}

// SeriesKeys returns the series in order of first appearance.
func (d *CategoryDataset) SeriesKeys() []string { return slices.Clone(d.series) }

// RowKeys returns the rows in order of first appearance.
func (d *CategoryDataset) RowKeys() []string { return slices.Clone(d.rows) }

// ColumnKeys returns the columns in order of first appearance.
func (d *CategoryDataset) ColumnKeys() []string { return slices.Clone(d.columns) }

// Value returns the value at key; ok is false when nothing was stored.
func (d *CategoryDataset) Value(key CategoryKey) (v float64, ok bool) {
	v, ok = d.values[key]
	return v, ok
}

// XYZDataset holds named series of 3D points.
type XYZDataset struct {
	series []string
	items  map[string][]math3d.Point3D
}

// NewXYZDataset returns an empty dataset.
func NewXYZDataset() *XYZDataset {
	return &XYZDataset{items: make(map[string][]math3d.Point3D)}
}

// Add appends a point to series.
func (d *XYZDataset) Add(series string, x, y, z float64) {
	if _, ok := d.items[series]; !ok {
		d.series = append(d.series, series)
	}
	d.items[series] = append(d.items[series], math3d.Pt3(x, y, z))
}

// SeriesKeys returns the series in order of first appearance.
func (d *XYZDataset) SeriesKeys() []string { return slices.Clone(d.series) }

// Items returns a copy of the points of series.
func (d *XYZDataset) Items(series string) []math3d.Point3D {
	return slices.Clone(d.items[series])
}

// Item returns one point.
func (d *XYZDataset) Item(key XYZKey) (math3d.Point3D, bool) {
	pts := d.items[key.Series]
	if key.Index < 0 || key.Index >= len(pts) {
		return math3d.Point3D{}, false
	}
	return pts[key.Index], true
}

// Bounds returns the bounding box of all finite points.
func (d *XYZDataset) Bounds() math3d.Bounds {
	b := math3d.EmptyBounds()
	for _, s := range d.series {
		for _, p := range d.items[s] {
			if p.IsFinite() {
				b = b.Extend(p)
			}
		}
	}
	return b
}
