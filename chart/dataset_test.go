// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package chart

import (
	"math"
	"slices"
	"testing"

	"github.com/gogpu/chart3d/math3d"
)

func TestPieDataset(t *testing.T) {
	d := NewPieDataset()
	d.Add("US", 30)
	d.Add("France", 20)
	d.Add("NZ", math.NaN())
	d.Add("UK", -4)
	d.Add("US", 35)

	if got, want := d.Keys(), []string{"US", "France", "NZ", "UK"}; !slices.Equal(got, want) {
		t.Errorf("Keys() = %v, want %v", got, want)
	}
	if v, ok := d.Value("US"); !ok || v != 35 {
		t.Errorf("Value(US) = %v, %v; want 35, true", v, ok)
	}
	if _, ok := d.Value("DE"); ok {
		t.Error("Value(DE) found")
	}
	if got := d.Total(); got != 55 {
		t.Errorf("Total() = %v, want 55 (invalid values excluded)", got)
	}

	keys := d.Keys()
	keys[0] = "changed"
	if d.Keys()[0] != "US" {
		t.Error("Keys() exposes internal slice")
	}
}

func TestCategoryDataset(t *testing.T) {
	d := NewCategoryDataset()
	d.AddValue(1, "S1", "R", "Q1")
	d.AddValue(2, "S1", "R", "Q2")
	d.AddValue(3, "S2", "R", "Q1")

	if got := d.SeriesKeys(); !slices.Equal(got, []string{"S1", "S2"}) {
		t.Errorf("SeriesKeys() = %v", got)
	}
	if got := d.RowKeys(); !slices.Equal(got, []string{"R"}) {
		t.Errorf("RowKeys() = %v", got)
	}
	if got := d.ColumnKeys(); !slices.Equal(got, []string{"Q1", "Q2"}) {
		t.Errorf("ColumnKeys() = %v", got)
	}
	if v, ok := d.Value(CategoryKey{"S2", "R", "Q1"}); !ok || v != 3 {
		t.Errorf("Value(S2,R,Q1) = %v, %v", v, ok)
	}
	if _, ok := d.Value(CategoryKey{"S2", "R", "Q2"}); ok {
		t.Error("missing value reported present")
	}
}

func TestXYZDataset(t *testing.T) {
	d := NewXYZDataset()
	d.Add("a", 1, 2, 3)
	d.Add("a", -1, 0, 5)
	d.Add("b", math.NaN(), 0, 0)

	if got := d.SeriesKeys(); !slices.Equal(got, []string{"a", "b"}) {
		t.Errorf("SeriesKeys() = %v", got)
	}
	if p, ok := d.Item(XYZKey{Series: "a", Index: 1}); !ok || p != math3d.Pt3(-1, 0, 5) {
		t.Errorf("Item(a,1) = %v, %v", p, ok)
	}
	for _, k := range []XYZKey{{"a", 2}, {"a", -1}, {"c", 0}} {
		if _, ok := d.Item(k); ok {
			t.Errorf("Item(%v) found", k)
		}
	}
	b := d.Bounds()
	if b.Min != math3d.Pt3(-1, 0, 3) || b.Max != math3d.Pt3(1, 2, 5) {
		t.Errorf("Bounds() = %v, want finite points only", b)
	}
	if len(d.Items("a")) != 2 {
		t.Errorf("Items(a) has %d points", len(d.Items("a")))
	}
}
