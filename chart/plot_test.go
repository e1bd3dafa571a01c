// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package chart

import (
	"bytes"
	"errors"
	"image/color"
	"log/slog"
	"math"
	"strings"
	"testing"

	"golang.org/x/text/language"

	"github.com/gogpu/chart3d/math3d"
	"github.com/gogpu/chart3d/scene"
)

var (
	red   = color.NRGBA{R: 255, A: 255}
	green = color.NRGBA{G: 255, A: 255}
)

func compose(t *testing.T, p SceneContributor) *scene.World {
	t.Helper()
	w := scene.NewWorld()
	if err := p.Compose(w); err != nil {
		t.Fatalf("Compose() error = %v", err)
	}
	return w
}

func keysOf(w *scene.World) []any {
	var keys []any
	for _, s := range w.Solids() {
		keys = append(keys, s.Key())
	}
	return keys
}

// assertInside checks that the world fits the plot box centred on the
// origin, allowing slack for markers and exploded sections.
func assertInside(t *testing.T, w *scene.World, d Dimensions, slack float64) {
	t.Helper()
	b, ok := w.CalculateTotalBounds()
	if !ok {
		t.Fatal("world is empty")
	}
	box := math3d.Bounds{
		Min: math3d.Pt3(-d.Width/2-slack, -d.Height/2-slack, -d.Depth/2-slack),
		Max: math3d.Pt3(d.Width/2+slack, d.Height/2+slack, d.Depth/2+slack),
	}
	if !box.Contains(b.Min) || !box.Contains(b.Max) {
		t.Errorf("world bounds %+v outside plot box %v", b, d)
	}
}

func captureLog(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	SetLogger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))
	t.Cleanup(func() { SetLogger(nil) })
	return &buf
}

func demoPie() *PieDataset {
	d := NewPieDataset()
	d.Add("United States", 30)
	d.Add("France", 20)
	d.Add("New Zealand", 12)
	d.Add("United Kingdom", 43.3)
	return d
}

func TestPiePlotCompose(t *testing.T) {
	p := NewPiePlot(demoPie())
	p.SetSectionColors(red, green)
	w := compose(t, p)

	keys := keysOf(w)
	want := []any{
		PieKey{"United States"}, PieKey{"France"},
		PieKey{"New Zealand"}, PieKey{"United Kingdom"},
	}
	if len(keys) != len(want) {
		t.Fatalf("Compose() added %d solids, want %d", len(keys), len(want))
	}
	for i := range want {
		if keys[i] != want[i] {
			t.Errorf("solid %d key = %v, want %v", i, keys[i], want[i])
		}
	}

	solids := w.Solids()
	if c := solids[0].Face(0).Color; c != red {
		t.Errorf("first section colour = %v, want red", c)
	}
	if c := solids[1].Face(0).Color; c != green {
		t.Errorf("second section colour = %v, want green", c)
	}
	if c := solids[2].Face(0).Color; c != DefaultPalette[2] {
		t.Errorf("third section colour = %v, want palette entry", c)
	}
	assertInside(t, w, p.Dimensions(), 1e-9)
}

func TestPiePlotSegmentIncrement(t *testing.T) {
	p := NewPiePlot(demoPie())
	p.SetSegmentIncrement(1e-12)
	if p.increment != scene.MinSegmentIncrement {
		t.Errorf("increment = %v, want %v", p.increment, scene.MinSegmentIncrement)
	}
	p.SetSegmentIncrement(math.NaN())
	p.SetSegmentIncrement(-1)
	if p.increment != scene.MinSegmentIncrement {
		t.Errorf("invalid increments changed the increment to %v", p.increment)
	}

	w := compose(t, p)
	faces := 0
	for _, s := range w.Solids() {
		faces += s.FaceCount()
	}
	// Four sections, each with four caps and sides plus at most one extra rim step.
	if limit := 4*5 + 7200; faces > limit {
		t.Errorf("pie has %d faces, want at most %d", faces, limit)
	}
}

func TestPiePlotSkipsInvalid(t *testing.T) {
	buf := captureLog(t)
	d := NewPieDataset()
	d.Add("a", 1)
	d.Add("nan", math.NaN())
	d.Add("neg", -3)
	d.Add("zero", 0)
	d.Add("b", 3)
	w := compose(t, NewPiePlot(d))

	keys := keysOf(w)
	if len(keys) != 2 || keys[0] != (PieKey{"a"}) || keys[1] != (PieKey{"b"}) {
		t.Errorf("keys = %v, want [a b]", keys)
	}
	if n := strings.Count(buf.String(), "item skipped"); n != 2 {
		t.Errorf("logged %d skipped items, want 2:\n%s", n, buf.String())
	}

	if err := NewPiePlot(NewPieDataset()).Compose(scene.NewWorld()); err != nil {
		t.Errorf("empty pie Compose() error = %v", err)
	}
}

func TestPiePlotExplode(t *testing.T) {
	p := NewPiePlot(demoPie())
	p.SetExplode("France", 0.5)
	if got := p.Dimensions(); got.Width != 9 || got.Depth != 9 {
		t.Errorf("Dimensions() = %v, want 9 wide and deep", got)
	}
	w := compose(t, p)
	assertInside(t, w, p.Dimensions(), 1e-9)

	p.SetExplode("France", -1)
	if got := p.Dimensions(); got.Width != 8 {
		t.Errorf("negative explode not removed: %v", got)
	}
}

func TestPiePlotToolTip(t *testing.T) {
	p := NewPiePlot(demoPie())
	got, ok := p.ToolTipText(PieKey{"United States"})
	if !ok || got != "United States = 30.00 (28.5%)" {
		t.Errorf("ToolTipText() = %q, %v", got, ok)
	}
	if _, ok := p.ToolTipText(PieKey{"Spain"}); ok {
		t.Error("unknown section has a tooltip")
	}
	if _, ok := p.ToolTipText("United States"); ok {
		t.Error("non-pie key has a tooltip")
	}
}

func TestPiePlotWorldBusy(t *testing.T) {
	w := scene.NewWorld()
	snap := w.Acquire()
	defer snap.Release()
	if err := NewPiePlot(demoPie()).Compose(w); !errors.Is(err, scene.ErrWorldBusy) {
		t.Errorf("Compose() on busy world error = %v, want ErrWorldBusy", err)
	}
}

func quarterly() *CategoryDataset {
	d := NewCategoryDataset()
	for i, v := range []float64{1, 4, 2} {
		d.AddValue(v, "Sales", "2026", []string{"Q1", "Q2", "Q3"}[i])
	}
	for i, v := range []float64{2, 1, 3} {
		d.AddValue(v, "Costs", "2026", []string{"Q1", "Q2", "Q3"}[i])
	}
	return d
}

func TestCategoryValueRange(t *testing.T) {
	tests := []struct {
		name string
		kind CategoryKind
		add  func(*CategoryDataset)
		want Range
	}{
		{"bar", Bar, func(*CategoryDataset) {}, Range{0, 4}},
		{"stacked", StackedBar, func(*CategoryDataset) {}, Range{0, 5}},
		{"negative bar", Bar, func(d *CategoryDataset) { d.AddValue(-2, "Sales", "2026", "Q4") }, Range{-2, 4}},
		{"stacked negative", StackedBar, func(d *CategoryDataset) {
			d.AddValue(-2, "Sales", "2026", "Q4")
			d.AddValue(-1, "Costs", "2026", "Q4")
		}, Range{-3, 5}},
		{"NaN ignored", Line, func(d *CategoryDataset) { d.AddValue(math.NaN(), "Sales", "2026", "Q4") }, Range{0, 4}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := quarterly()
			tt.add(d)
			if got := NewCategoryPlot(d, tt.kind).ValueRange(); got != tt.want {
				t.Errorf("ValueRange() = %v, want %v", got, tt.want)
			}
		})
	}

	if got := NewCategoryPlot(nil, Bar).ValueRange(); got != (Range{0, 1}) {
		t.Errorf("empty ValueRange() = %v, want [0, 1]", got)
	}
	p := NewCategoryPlot(quarterly(), Bar)
	p.SetValueRange(&Range{0, 10})
	if got := p.ValueRange(); got != (Range{0, 10}) {
		t.Errorf("fixed ValueRange() = %v", got)
	}
	p.SetValueRange(nil)
	if got := p.ValueRange(); got != (Range{0, 4}) {
		t.Errorf("restored ValueRange() = %v", got)
	}
}

func TestCategoryPlotCompose(t *testing.T) {
	tests := []struct {
		kind  CategoryKind
		count int
	}{
		{Bar, 6},
		{StackedBar, 6},
		{Line, 8}, // two series, four half-segments each
		{Area, 8}, // no value crosses the base
	}
	for _, tt := range tests {
		t.Run(tt.kind.String(), func(t *testing.T) {
			p := NewCategoryPlot(quarterly(), tt.kind)
			w := compose(t, p)
			if w.Len() != tt.count {
				t.Errorf("Compose() added %d solids, want %d", w.Len(), tt.count)
			}
			for _, k := range keysOf(w) {
				ck, ok := k.(CategoryKey)
				if !ok || ck.Row != "2026" {
					t.Errorf("solid key %v is not a category key", k)
				}
			}
			// Line ribbons are thicker than the values they pass through.
			assertInside(t, w, p.Dimensions(), 0.1)
		})
	}
}

func TestCategoryPlotLanes(t *testing.T) {
	d := quarterly()
	bar := NewCategoryPlot(d, Bar)
	if got := bar.Dimensions(); got != (Dimensions{Width: 3, Height: 4, Depth: 2}) {
		t.Errorf("bar Dimensions() = %v", got)
	}
	stacked := NewCategoryPlot(d, StackedBar)
	if got := stacked.Dimensions(); got.Depth != 1 {
		t.Errorf("stacked Dimensions() = %v, want one lane", got)
	}

	// In a stacked bar the second series starts where the first ends.
	w := compose(t, stacked)
	solids := w.Solids()
	var salesQ1, costsQ1 *scene.Solid
	for _, s := range solids {
		switch s.Key() {
		case CategoryKey{"Sales", "2026", "Q1"}:
			salesQ1 = s
		case CategoryKey{"Costs", "2026", "Q1"}:
			costsQ1 = s
		}
	}
	if salesQ1 == nil || costsQ1 == nil {
		t.Fatal("Q1 bars missing")
	}
	if a, b := salesQ1.Bounds().Max.Y, costsQ1.Bounds().Min.Y; math.Abs(a-b) > 1e-12 {
		t.Errorf("stacked bars do not touch: %v vs %v", a, b)
	}
}

func TestCategoryPlotSkipsAndBreaks(t *testing.T) {
	buf := captureLog(t)
	d := NewCategoryDataset()
	d.AddValue(1, "S", "R", "A")
	d.AddValue(math.NaN(), "S", "R", "B")
	d.AddValue(2, "S", "R", "C")

	w := compose(t, NewCategoryPlot(d, Line))
	if w.Len() != 2 {
		t.Errorf("broken line added %d solids, want two markers", w.Len())
	}
	for _, s := range w.Solids() {
		if s.Name() != "marker" {
			t.Errorf("solid %s, want marker", s.Name())
		}
	}
	if !strings.Contains(buf.String(), "item skipped") {
		t.Error("NaN value not logged")
	}

	w = compose(t, NewCategoryPlot(d, Bar))
	if w.Len() != 2 {
		t.Errorf("bar chart added %d solids, want 2", w.Len())
	}
}

func TestAreaOutlines(t *testing.T) {
	tests := []struct {
		name           string
		x0, y0, x1, y1 float64
		pieces         int
	}{
		{"above", 0, 1, 1, 2, 1},
		{"below", 0, -1, 1, -2, 1},
		{"crossing", 0, 1, 1, -1, 2},
		{"starts on base", 0, 0, 1, 2, 1},
		{"ends on base", 0, 2, 1, 0, 1},
		{"flat on base", 0, 0, 1, 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := areaOutlines(tt.x0, tt.y0, tt.x1, tt.y1, 0)
			if len(got) != tt.pieces {
				t.Fatalf("areaOutlines() = %d pieces, want %d", len(got), tt.pieces)
			}
			for _, o := range got {
				if _, err := scene.NewExtrusion(o, 0, 1, red); err != nil {
					t.Errorf("outline %v does not extrude: %v", o, err)
				}
			}
		})
	}

	crossing := areaOutlines(0, 1, 1, -1, 0)
	if crossing[0][1].X != 0.5 {
		t.Errorf("crossing at x = %v, want 0.5", crossing[0][1].X)
	}
}

func TestCategoryToolTip(t *testing.T) {
	p := NewCategoryPlot(quarterly(), Bar)
	got, ok := p.ToolTipText(CategoryKey{"Sales", "2026", "Q2"})
	if !ok || got != "Sales, Q2 = 4.00" {
		t.Errorf("ToolTipText() = %q, %v", got, ok)
	}

	d := quarterly()
	d.AddValue(1234.5, "Sales", "2027", "Q1")
	p = NewCategoryPlot(d, Bar)
	got, _ = p.ToolTipText(CategoryKey{"Sales", "2027", "Q1"})
	if got != "Sales, 2027, Q1 = 1,234.50" {
		t.Errorf("multi-row ToolTipText() = %q", got)
	}
	if _, ok := p.ToolTipText(PieKey{"Sales"}); ok {
		t.Error("pie key has a category tooltip")
	}
}

func TestToolTipGeneratorLocale(t *testing.T) {
	de := NewToolTipGenerator(language.German)
	got := de.CategoryText(CategoryKey{"S", "R", "C"}, 1234.5, false)
	if got != "S, C = 1.234,50" {
		t.Errorf("German CategoryText() = %q", got)
	}
	if got := DefaultToolTipGenerator.PieText(PieKey{"x"}, 2, 0); got != "x = 2.00" {
		t.Errorf("PieText() with zero total = %q", got)
	}
}

func points() *XYZDataset {
	d := NewXYZDataset()
	d.Add("a", 0, 0, 0)
	d.Add("a", 10, 5, 2)
	d.Add("b", 5, -5, 1)
	return d
}

func TestXYZPlotScatter(t *testing.T) {
	p := NewXYZPlot(points(), Scatter)
	w := compose(t, p)
	if w.Len() != 3 {
		t.Fatalf("Compose() added %d solids, want 3", w.Len())
	}
	keys := keysOf(w)
	if keys[2] != (XYZKey{"b", 0}) {
		t.Errorf("third key = %v", keys[2])
	}
	assertInside(t, w, p.Dimensions(), 0.15+1e-9)

	// x and z are minimal at the first point; y spans [-5, 5] because of
	// series b, so y=0 maps to the middle of the box.
	tests := []struct {
		solid int
		want  math3d.Point3D
	}{
		{0, math3d.Pt3(-5, 0, -5)},
		{1, math3d.Pt3(5, 5, 5)},
		{2, math3d.Pt3(0, -5, 0)},
	}
	for _, tt := range tests {
		c := w.Solids()[tt.solid].Bounds().Center()
		if !c.Approx(tt.want, 1e-9) {
			t.Errorf("solid %d centred at %v, want %v", tt.solid, c, tt.want)
		}
	}
}

func TestXYZPlotBars(t *testing.T) {
	buf := captureLog(t)
	d := points()
	d.Add("b", 1, 0, 1)           // zero height
	d.Add("b", math.Inf(1), 1, 1) // skipped
	p := NewXYZPlot(d, XYZBar)
	p.SetDimensions(Dimensions{Width: 4, Height: 4, Depth: 4})
	p.SetDimensions(Dimensions{Width: -1, Height: 4, Depth: 4})
	if p.Dimensions().Width != 4 {
		t.Fatalf("invalid SetDimensions applied: %v", p.Dimensions())
	}

	w := compose(t, p)
	if w.Len() != 2 {
		t.Fatalf("Compose() added %d bars, want 2", w.Len())
	}
	if !strings.Contains(buf.String(), "item skipped") {
		t.Error("infinite point not logged")
	}
	// y = 0 maps to the middle of a [-5, 5] range, so bars grow from 0.
	for _, s := range w.Solids() {
		b := s.Bounds()
		if b.Min.Y != 0 && b.Max.Y != 0 {
			t.Errorf("bar %v does not start at the base", s.Key())
		}
	}
}

func TestXYZToolTip(t *testing.T) {
	p := NewXYZPlot(points(), Scatter)
	got, ok := p.ToolTipText(XYZKey{"a", 1})
	if !ok || got != "a: (10.00, 5.00, 2.00)" {
		t.Errorf("ToolTipText() = %q, %v", got, ok)
	}
	if _, ok := p.ToolTipText(XYZKey{"a", 9}); ok {
		t.Error("out-of-range index has a tooltip")
	}
}
