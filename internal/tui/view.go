// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package tui

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/gogpu/chart3d/render"
)

// upperHalf is drawn with the top pixel as foreground and the bottom pixel
// as background.
const upperHalf = "▀"

func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}
	cols, rows := m.canvasSize()

	title := m.panel.Chart().Title()
	if title == "" {
		title = "chart3d"
	}
	header := lipgloss.NewStyle().MaxWidth(cols).Render(titleStyle.Render(" " + title + " "))

	canvas := make([]string, rows)
	if f := m.panel.Frame(); f != nil {
		for r := range rows {
			canvas[r] = halfBlockRow(f.Pixmap, r*2, cols)
		}
	}

	footer := lipgloss.NewStyle().MaxWidth(cols).Render(m.footer())

	lines := append([]string{header}, canvas...)
	lines = append(lines, footer)
	return strings.Join(lines, "\n")
}

func (m Model) footer() string {
	if m.toolTip != "" {
		return tipStyle.Render(" " + m.toolTip + " ")
	}
	s := dimStyle.Render(" " + m.status + " ")
	if m.helpVisible {
		keys := []string{
			"←↑↓→/drag rotate",
			"+/-/wheel zoom",
			"f fit",
			"a auto-fit",
			"r reload",
			"h help",
			"q quit",
		}
		s += dimStyle.Render(" " + strings.Join(keys, "  "))
	}
	return s
}

// halfBlockRow renders pixel rows y and y+1 of pm as one line of cols
// cells. Runs of cells with equal colours share one styled segment.
func halfBlockRow(pm *render.Pixmap, y, cols int) string {
	var b strings.Builder
	var runTop, runBottom color.NRGBA
	run := 0
	flush := func() {
		if run == 0 {
			return
		}
		style := lipgloss.NewStyle().
			Foreground(lipgloss.Color(hex(runTop))).
			Background(lipgloss.Color(hex(runBottom)))
		b.WriteString(style.Render(strings.Repeat(upperHalf, run)))
		run = 0
	}
	for x := range cols {
		top, bottom := pixel(pm, x, y), pixel(pm, x, y+1)
		if run > 0 && (top != runTop || bottom != runBottom) {
			flush()
		}
		runTop, runBottom = top, bottom
		run++
	}
	flush()
	return b.String()
}

// pixel returns the colour at (x, y), or black outside pm.
func pixel(pm *render.Pixmap, x, y int) color.NRGBA {
	if x < 0 || y < 0 || x >= pm.Width() || y >= pm.Height() {
		return color.NRGBA{A: 255}
	}
	return pm.GetPixel(x, y)
}

func hex(c color.NRGBA) string {
	return fmt.Sprintf("#%02X%02X%02X", c.R, c.G, c.B)
}
