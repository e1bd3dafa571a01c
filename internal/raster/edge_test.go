// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package raster

import (
	"testing"
)

// TestNewEdge tests creating edges from two points.
func TestNewEdge(t *testing.T) {
	tests := []struct {
		name     string
		p0, p1   Point
		wantOK   bool
		wantY0   float64
		wantY1   float64
		wantXMid float64
	}{
		{"downward", Point{0, 0}, Point{10, 10}, true, 0, 10, 5},
		{"upward normalized", Point{10, 10}, Point{0, 0}, true, 0, 10, 5},
		{"vertical", Point{5, 0}, Point{5, 20}, true, 0, 20, 5},
		{"horizontal", Point{0, 5}, Point{10, 5}, false, 0, 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, ok := NewEdge(tt.p0, tt.p1)
			if ok != tt.wantOK {
				t.Fatalf("NewEdge() ok = %v, want %v", ok, tt.wantOK)
			}
			if !ok {
				return
			}
			if e.y0 != tt.wantY0 || e.y1 != tt.wantY1 {
				t.Errorf("y range = [%v, %v), want [%v, %v)", e.y0, e.y1, tt.wantY0, tt.wantY1)
			}
			mid := (tt.wantY0 + tt.wantY1) / 2
			if got := e.XAtY(mid); got != tt.wantXMid {
				t.Errorf("XAtY(%v) = %v, want %v", mid, got, tt.wantXMid)
			}
		})
	}
}

func TestEdgeSpansHalfOpen(t *testing.T) {
	e, _ := NewEdge(Point{0, 2}, Point{0, 6})
	tests := []struct {
		y    float64
		want bool
	}{
		{1.999, false},
		{2, true},
		{4, true},
		{5.999, true},
		{6, false},
	}
	for _, tt := range tests {
		if got := e.Spans(tt.y); got != tt.want {
			t.Errorf("Spans(%v) = %v, want %v", tt.y, got, tt.want)
		}
	}
}

func TestContains(t *testing.T) {
	square := []Point{{0, 0}, {10, 0}, {10, 10}, {0, 10}}
	// Concave "C" shape open to the right.
	cshape := []Point{{0, 0}, {10, 0}, {10, 3}, {3, 3}, {3, 7}, {10, 7}, {10, 10}, {0, 10}}
	// Self-intersecting bow tie.
	bowtie := []Point{{0, 0}, {10, 10}, {10, 0}, {0, 10}}

	tests := []struct {
		name string
		poly []Point
		x, y float64
		want bool
	}{
		{"square centre", square, 5, 5, true},
		{"square left edge", square, 0, 5, true},
		{"square right edge", square, 10, 5, false},
		{"square top edge", square, 5, 0, true},
		{"square bottom edge", square, 5, 10, false},
		{"square outside", square, 11, 5, false},
		{"c arm", cshape, 8, 1, true},
		{"c gap", cshape, 8, 5, false},
		{"c spine", cshape, 1, 5, true},
		{"bowtie left lobe", bowtie, 1, 5, true},
		{"bowtie top gap", bowtie, 5, 1, false},
		{"too few points", []Point{{0, 0}, {10, 10}}, 5, 5, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Contains(tt.poly, tt.x, tt.y); got != tt.want {
				t.Errorf("Contains(%v, %v) = %v, want %v", tt.x, tt.y, got, tt.want)
			}
		})
	}
}

func TestCrossingsSorted(t *testing.T) {
	l := NewEdgeList([]Point{{10, 0}, {0, 10}, {10, 20}, {20, 10}})
	xs := l.Crossings(nil, 10.5)
	if len(xs) != 2 {
		t.Fatalf("Crossings() = %v, want 2 values", xs)
	}
	if xs[0] > xs[1] {
		t.Errorf("Crossings() = %v, want ascending", xs)
	}
}
