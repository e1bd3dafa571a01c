// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package chartfile reads chart definitions from YAML documents.
//
// A definition names the chart type, its titles and data, and optionally
// the colours, camera and output size:
//
//	type: bar
//	title: Quarterly sales
//	axes: {x: Quarter, y: Units, z: Year}
//	view: {projection: perspective, theta: 30, phi: 20}
//	values:
//	  - {series: Sales, row: "2026", column: Q1, value: 5}
//	  - {series: Sales, row: "2026", column: Q2, value: 7}
//
// Angles are given in degrees. Colours are hex strings as accepted by
// chart.Hex.
package chartfile

import (
	"bytes"
	"errors"
	"fmt"
	"image/color"
	"io"
	"math"
	"os"

	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"

	"github.com/gogpu/chart3d"
	"github.com/gogpu/chart3d/chart"
	"github.com/gogpu/chart3d/render"
	"github.com/gogpu/chart3d/view"
)

// ErrInvalidDefinition is returned for definitions that parse as YAML but
// cannot describe a chart.
var ErrInvalidDefinition = errors.New("chartfile: invalid definition")

// Default output size used when a definition has none.
const (
	DefaultWidth  = 640
	DefaultHeight = 480
)

// Chart types.
const (
	TypePie        = "pie"
	TypeBar        = "bar"
	TypeStackedBar = "stacked-bar"
	TypeLine       = "line"
	TypeArea       = "area"
	TypeScatter    = "scatter"
	TypeXYZBar     = "xyz-bar"
)

// Definition is the decoded form of a chart file.
type Definition struct {
	Type     string `yaml:"type"`
	Title    string `yaml:"title"`
	Subtitle string `yaml:"subtitle"`
	Locale   string `yaml:"locale"`

	Axes   Axes     `yaml:"axes"`
	Size   Size     `yaml:"size"`
	Colors []string `yaml:"colors"`
	View   View     `yaml:"view"`
	Style  Style    `yaml:"style"`

	Sections []Section `yaml:"sections"`
	Values   []Value   `yaml:"values"`
	Points   []Point   `yaml:"points"`
}

// Axes holds the axis labels.
type Axes struct {
	X string `yaml:"x"`
	Y string `yaml:"y"`
	Z string `yaml:"z"`
}

// Size is the output size in pixels.
type Size struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// View configures the camera. Unset fields keep the defaults of the
// projection.
type View struct {
	Projection string   `yaml:"projection"`
	Theta      *float64 `yaml:"theta"`
	Phi        *float64 `yaml:"phi"`
	Rho        *float64 `yaml:"rho"`
	Fit        *bool    `yaml:"fit"`
}

// Style configures the renderer.
type Style struct {
	Background   string  `yaml:"background"`
	Shading      bool    `yaml:"shading"`
	Outline      string  `yaml:"outline"`
	OutlineWidth float64 `yaml:"outline_width"`
}

// Section is one pie section.
type Section struct {
	Name    string  `yaml:"name"`
	Value   float64 `yaml:"value"`
	Color   string  `yaml:"color"`
	Explode float64 `yaml:"explode"`
}

// Value is one category dataset entry.
type Value struct {
	Series string  `yaml:"series"`
	Row    string  `yaml:"row"`
	Column string  `yaml:"column"`
	Value  float64 `yaml:"value"`
}

// Point is one XYZ dataset entry.
type Point struct {
	Series string  `yaml:"series"`
	X      float64 `yaml:"x"`
	Y      float64 `yaml:"y"`
	Z      float64 `yaml:"z"`
}

// Load reads and validates the definition stored at path.
func Load(path string) (*Definition, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("chartfile: %w", err)
	}
	d, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return d, nil
}

// Parse decodes and validates a definition. Unknown fields are errors.
func Parse(data []byte) (*Definition, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var d Definition
	if err := dec.Decode(&d); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: empty document", ErrInvalidDefinition)
		}
		return nil, fmt.Errorf("chartfile: %w", err)
	}
	if err := d.Validate(); err != nil {
		return nil, err
	}
	return &d, nil
}

// Validate checks that the definition describes a chart that can be built.
func (d *Definition) Validate() error {
	switch d.Type {
	case TypePie:
		if len(d.Values) > 0 || len(d.Points) > 0 {
			return invalid("pie charts take sections only")
		}
	case TypeBar, TypeStackedBar, TypeLine, TypeArea:
		if len(d.Sections) > 0 || len(d.Points) > 0 {
			return invalid("%s charts take values only", d.Type)
		}
	case TypeScatter, TypeXYZBar:
		if len(d.Sections) > 0 || len(d.Values) > 0 {
			return invalid("%s charts take points only", d.Type)
		}
	case "":
		return invalid("missing type")
	default:
		return invalid("unknown type %q", d.Type)
	}

	if d.Size.Width < 0 || d.Size.Height < 0 {
		return invalid("negative size %dx%d", d.Size.Width, d.Size.Height)
	}
	if _, err := view.ParseProjection(d.View.Projection); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidDefinition, err)
	}
	for _, v := range []*float64{d.View.Theta, d.View.Phi, d.View.Rho} {
		if v != nil && (math.IsNaN(*v) || math.IsInf(*v, 0)) {
			return invalid("non-finite view angle or distance")
		}
	}
	if d.View.Rho != nil && *d.View.Rho <= 0 {
		return invalid("rho must be positive")
	}
	if d.Locale != "" {
		if _, err := language.Parse(d.Locale); err != nil {
			return fmt.Errorf("%w: locale: %w", ErrInvalidDefinition, err)
		}
	}

	colors := append([]string{d.Style.Background, d.Style.Outline}, d.Colors...)
	for _, s := range d.Sections {
		colors = append(colors, s.Color)
	}
	for _, c := range colors {
		if c == "" {
			continue
		}
		if _, err := chart.Hex(c); err != nil {
			return fmt.Errorf("%w: %w", ErrInvalidDefinition, err)
		}
	}
	return nil
}

func invalid(format string, args ...any) error {
	return fmt.Errorf("%w: "+format, append([]any{ErrInvalidDefinition}, args...)...)
}

// Dimensions returns the output size, with defaults for unset values.
func (d *Definition) Dimensions() (width, height int) {
	width, height = d.Size.Width, d.Size.Height
	if width == 0 {
		width = DefaultWidth
	}
	if height == 0 {
		height = DefaultHeight
	}
	return width, height
}

// Chart builds the chart the definition describes.
func (d *Definition) Chart() (*chart3d.Chart, error) {
	if err := d.Validate(); err != nil {
		return nil, err
	}

	paint, err := d.paintSource()
	if err != nil {
		return nil, err
	}
	tips := chart.DefaultToolTipGenerator
	if d.Locale != "" {
		tips = chart.NewToolTipGenerator(language.Make(d.Locale))
	}

	var plot chart.Plot
	switch d.Type {
	case TypePie:
		ds := chart.NewPieDataset()
		p := chart.NewPiePlot(ds)
		p.SetPaintSource(paint)
		p.SetToolTipGenerator(tips)
		for _, s := range d.Sections {
			ds.Add(s.Name, s.Value)
			if s.Color != "" {
				c, _ := chart.Hex(s.Color)
				p.SetSectionColor(s.Name, c)
			}
			if s.Explode > 0 {
				p.SetExplode(s.Name, s.Explode)
			}
		}
		plot = p
	case TypeBar, TypeStackedBar, TypeLine, TypeArea:
		ds := chart.NewCategoryDataset()
		for _, v := range d.Values {
			ds.AddValue(v.Value, v.Series, v.Row, v.Column)
		}
		p := chart.NewCategoryPlot(ds, categoryKind(d.Type))
		p.SetPaintSource(paint)
		p.SetToolTipGenerator(tips)
		plot = p
	case TypeScatter, TypeXYZBar:
		ds := chart.NewXYZDataset()
		for _, pt := range d.Points {
			ds.Add(pt.Series, pt.X, pt.Y, pt.Z)
		}
		kind := chart.Scatter
		if d.Type == TypeXYZBar {
			kind = chart.XYZBar
		}
		p := chart.NewXYZPlot(ds, kind)
		p.SetPaintSource(paint)
		p.SetToolTipGenerator(tips)
		plot = p
	}

	c := chart3d.NewChart(d.Title, d.Subtitle, plot)
	c.SetAxes(chart3d.AxisLabels{X: d.Axes.X, Y: d.Axes.Y, Z: d.Axes.Z})
	return c, nil
}

func categoryKind(t string) chart.CategoryKind {
	switch t {
	case TypeStackedBar:
		return chart.StackedBar
	case TypeLine:
		return chart.Line
	case TypeArea:
		return chart.Area
	}
	return chart.Bar
}

func (d *Definition) paintSource() (*chart.StandardPaintSource, error) {
	palette := make([]color.NRGBA, 0, len(d.Colors))
	for _, s := range d.Colors {
		c, err := chart.Hex(s)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidDefinition, err)
		}
		palette = append(palette, c)
	}
	return chart.NewStandardPaintSource(palette...), nil
}

// Viewpoint returns the camera the definition asks for.
func (d *Definition) Viewpoint() (view.Viewpoint, error) {
	proj, err := view.ParseProjection(d.View.Projection)
	if err != nil {
		return view.Viewpoint{}, fmt.Errorf("%w: %w", ErrInvalidDefinition, err)
	}
	vp := view.NewPerspective()
	if proj == view.Orthographic {
		vp = view.NewOrthographic()
	}
	if d.View.Theta != nil {
		vp.Theta = *d.View.Theta * math.Pi / 180
	}
	if d.View.Phi != nil {
		vp.Phi = min(max(*d.View.Phi*math.Pi/180, -view.MaxElevation), view.MaxElevation)
	}
	if d.View.Rho != nil {
		vp.Rho = *d.View.Rho
	}
	if err := vp.Validate(); err != nil {
		return view.Viewpoint{}, fmt.Errorf("%w: %w", ErrInvalidDefinition, err)
	}
	return vp, nil
}

// PanelOptions returns the panel configuration for the definition: the
// viewpoint, auto-fit and a renderer carrying the style settings.
func (d *Definition) PanelOptions() ([]chart3d.PanelOption, error) {
	vp, err := d.Viewpoint()
	if err != nil {
		return nil, err
	}
	fit := true
	if d.View.Fit != nil {
		fit = *d.View.Fit
	}

	ropts := []render.Option{render.WithShading(d.Style.Shading)}
	if d.Style.Background != "" {
		c, err := chart.Hex(d.Style.Background)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidDefinition, err)
		}
		ropts = append(ropts, render.WithBackground(c))
	}
	if d.Style.Outline != "" {
		c, err := chart.Hex(d.Style.Outline)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidDefinition, err)
		}
		w := d.Style.OutlineWidth
		if w <= 0 {
			w = 1
		}
		ropts = append(ropts, render.WithOutline(c, w))
	}

	return []chart3d.PanelOption{
		chart3d.WithViewpoint(vp),
		chart3d.WithAutoFit(fit),
		chart3d.WithRenderer(render.NewRenderer(ropts...)),
	}, nil
}

// NewPanel builds the chart and a panel of the definition's size with
// extra applied after the definition's own options.
func (d *Definition) NewPanel(extra ...chart3d.PanelOption) (*chart3d.Panel, error) {
	c, err := d.Chart()
	if err != nil {
		return nil, err
	}
	opts, err := d.PanelOptions()
	if err != nil {
		return nil, err
	}
	w, h := d.Dimensions()
	return chart3d.NewPanel(c, w, h, append(opts, extra...)...)
}
