// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package tui is a terminal viewer for a chart panel. Each terminal cell
// shows two vertically stacked pixels of the latest frame using the upper
// half block glyph with truecolour foreground and background.
package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/gogpu/chart3d"
)

// Layout rows outside the canvas.
const (
	headerHeight = 1
	footerHeight = 1
)

// Interaction steps.
const (
	// KeyRotatePixels is the drag distance, in pixels, one arrow key press
	// stands for.
	KeyRotatePixels = 10
	// ZoomStep is the factor applied by one zoom key press or wheel notch.
	ZoomStep = 1.25
)

// Model is the bubbletea model of the viewer.
type Model struct {
	panel *chart3d.Panel

	width  int
	height int

	helpVisible bool
	status      string
	toolTip     string

	// drag state, in cells
	dragging bool
	lastX    int
	lastY    int
}

// New returns a viewer for p. The panel is resized to the terminal when
// the first window size message arrives.
func New(p *chart3d.Panel) Model {
	return Model{
		panel:       p,
		helpVisible: true,
		status:      "chart3d ready",
	}
}

// Panel returns the viewed panel.
func (m Model) Panel() *chart3d.Panel { return m.panel }

// Status returns the status line text.
func (m Model) Status() string { return m.status }

// ToolTip returns the tooltip of the item under the mouse, if any.
func (m Model) ToolTip() string { return m.toolTip }

func (m Model) Init() tea.Cmd { return nil }

// canvasSize returns the canvas size in cells.
func (m Model) canvasSize() (cols, rows int) {
	return max(1, m.width), max(1, m.height-headerHeight-footerHeight)
}

// cellToPixel maps a terminal cell to the centre of its top pixel, the one
// drawn by the upper half block. ok is false outside the canvas.
func (m Model) cellToPixel(cx, cy int) (x, y float64, ok bool) {
	cols, rows := m.canvasSize()
	row := cy - headerHeight
	if cx < 0 || cx >= cols || row < 0 || row >= rows {
		return 0, 0, false
	}
	return float64(cx) + 0.5, float64(row*2) + 0.5, true
}
