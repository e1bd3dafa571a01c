// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package tui

import (
	"fmt"
	"math"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/gogpu/chart3d"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		cols, rows := m.canvasSize()
		m.apply(m.panel.Resize(cols, rows*2))
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.MouseMsg:
		m.handleMouse(msg)
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "q", "esc":
		return m, tea.Quit
	case "left":
		m.apply(m.panel.Drag(-KeyRotatePixels, 0))
	case "right":
		m.apply(m.panel.Drag(KeyRotatePixels, 0))
	case "up":
		m.apply(m.panel.Drag(0, -KeyRotatePixels))
	case "down":
		m.apply(m.panel.Drag(0, KeyRotatePixels))
	case "+", "=":
		m.apply(m.panel.ZoomIn(ZoomStep))
	case "-", "_":
		m.apply(m.panel.ZoomOut(ZoomStep))
	case "f":
		m.apply(m.panel.ZoomToFit())
	case "a":
		on := !m.panel.AutoFitOnResize()
		m.panel.SetAutoFitOnResize(on)
		m.status = fmt.Sprintf("auto-fit on resize: %v", on)
	case "r":
		m.apply(m.panel.Invalidate())
	case "h":
		m.helpVisible = !m.helpVisible
	}
	return m, nil
}

func (m *Model) handleMouse(msg tea.MouseMsg) {
	switch {
	case msg.Button == tea.MouseButtonWheelUp:
		m.apply(m.panel.ZoomIn(ZoomStep))
	case msg.Button == tea.MouseButtonWheelDown:
		m.apply(m.panel.ZoomOut(ZoomStep))
	case msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft:
		if _, _, ok := m.cellToPixel(msg.X, msg.Y); ok {
			m.dragging = true
			m.lastX, m.lastY = msg.X, msg.Y
		}
	case msg.Action == tea.MouseActionRelease:
		m.dragging = false
	case msg.Action == tea.MouseActionMotion && m.dragging:
		dx, dy := msg.X-m.lastX, msg.Y-m.lastY
		m.lastX, m.lastY = msg.X, msg.Y
		if dx != 0 || dy != 0 {
			// A cell is one pixel wide and two pixels tall.
			m.apply(m.panel.Drag(dx, dy*2))
		}
	}
	m.hover(msg.X, msg.Y)
}

// hover updates the tooltip for the item under cell (cx, cy).
func (m *Model) hover(cx, cy int) {
	m.toolTip = ""
	x, y, ok := m.cellToPixel(cx, cy)
	if !ok {
		return
	}
	if text, ok := m.panel.ToolTipText(x, y); ok {
		m.toolTip = text
	}
}

// apply records the outcome of a panel operation in the status line. A
// failed pass leaves the previous frame on screen.
func (m *Model) apply(f *chart3d.Frame, err error) {
	if err != nil {
		m.status = "error: " + err.Error()
		return
	}
	vp := f.Viewpoint
	m.status = fmt.Sprintf("θ %.0f°  φ %.0f°  ρ %.1f  %d faces",
		vp.Theta*180/math.Pi, vp.Phi*180/math.Pi, vp.Rho, f.Stats.Visible)
}
