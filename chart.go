// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package chart3d

import (
	"errors"
	"fmt"
	"sync"

	"github.com/gogpu/chart3d/chart"
	"github.com/gogpu/chart3d/scene"
)

// ErrNilPlot is returned when a chart has no plot to compose.
var ErrNilPlot = errors.New("chart3d: nil plot")

// AxisLabels names the three chart axes. They are carried for display by
// the caller; the renderer does not draw axes.
type AxisLabels struct {
	X, Y, Z string
}

// Chart is a titled plot. Changing a chart does not repaint anything; call
// Panel.Invalidate afterwards.
type Chart struct {
	mu       sync.RWMutex
	title    string
	subtitle string
	axes     AxisLabels
	plot     chart.Plot
}

// NewChart returns a chart showing plot.
func NewChart(title, subtitle string, plot chart.Plot) *Chart {
	return &Chart{title: title, subtitle: subtitle, plot: plot}
}

// Title returns the chart title.
func (c *Chart) Title() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.title
}

// SetTitle sets the title and subtitle.
func (c *Chart) SetTitle(title, subtitle string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.title, c.subtitle = title, subtitle
}

// Subtitle returns the chart subtitle.
func (c *Chart) Subtitle() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.subtitle
}

// Axes returns the axis labels.
func (c *Chart) Axes() AxisLabels {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.axes
}

// SetAxes sets the axis labels.
func (c *Chart) SetAxes(a AxisLabels) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.axes = a
}

// Plot returns the chart's plot.
func (c *Chart) Plot() chart.Plot {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.plot
}

// Compose adds the plot's solids to world.
func (c *Chart) Compose(world *scene.World) error {
	p := c.Plot()
	if p == nil {
		return ErrNilPlot
	}
	if err := p.Compose(world); err != nil {
		return fmt.Errorf("chart3d: compose %q: %w", c.Title(), err)
	}
	return nil
}

// ToolTipText describes the data item identified by key.
func (c *Chart) ToolTipText(key any) (string, bool) {
	p := c.Plot()
	if p == nil || key == nil {
		return "", false
	}
	return p.ToolTipText(key)
}

// String implements fmt.Stringer.
func (c *Chart) String() string {
	return fmt.Sprintf("Chart(%q)", c.Title())
}
