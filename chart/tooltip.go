// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package chart

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/gogpu/chart3d/math3d"
)

// ToolTipGenerator formats tooltip text for data items with locale-aware
// number formatting.
type ToolTipGenerator struct {
	printer *message.Printer
}

// NewToolTipGenerator returns a generator formatting numbers for tag.
func NewToolTipGenerator(tag language.Tag) *ToolTipGenerator {
	return &ToolTipGenerator{printer: message.NewPrinter(tag)}
}

// DefaultToolTipGenerator formats numbers in English.
var DefaultToolTipGenerator = NewToolTipGenerator(language.English)

// PieText formats a section as "key = value (percent%)".
func (g *ToolTipGenerator) PieText(key PieKey, value, total float64) string {
	if total <= 0 {
		return g.printer.Sprintf("%s = %.2f", key.Section, value)
	}
	return g.printer.Sprintf("%s = %.2f (%.1f%%)", key.Section, value, 100*value/total)
}

// CategoryText formats a category item. The row is omitted when
// withRow is false.
func (g *ToolTipGenerator) CategoryText(key CategoryKey, value float64, withRow bool) string {
	if withRow {
		return g.printer.Sprintf("%s, %s, %s = %.2f", key.Series, key.Row, key.Column, value)
	}
	return g.printer.Sprintf("%s, %s = %.2f", key.Series, key.Column, value)
}

// XYZText formats a point as "series: (x, y, z)".
func (g *ToolTipGenerator) XYZText(key XYZKey, p math3d.Point3D) string {
	return g.printer.Sprintf("%s: (%.2f, %.2f, %.2f)", key.Series, p.X, p.Y, p.Z)
}
