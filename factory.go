// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package chart3d

import "github.com/gogpu/chart3d/chart"

// NewPieChart returns a pie chart of dataset.
func NewPieChart(title, subtitle string, dataset *chart.PieDataset) *Chart {
	return NewChart(title, subtitle, chart.NewPiePlot(dataset))
}

// NewBarChart returns a bar chart of dataset. Series are placed side by
// side in depth.
func NewBarChart(title, subtitle string, dataset *chart.CategoryDataset, rowAxis, columnAxis, valueAxis string) *Chart {
	return newCategoryChart(title, subtitle, dataset, chart.Bar, rowAxis, columnAxis, valueAxis)
}

// NewStackedBarChart returns a bar chart with the series of each column
// stacked on top of each other.
func NewStackedBarChart(title, subtitle string, dataset *chart.CategoryDataset, rowAxis, columnAxis, valueAxis string) *Chart {
	return newCategoryChart(title, subtitle, dataset, chart.StackedBar, rowAxis, columnAxis, valueAxis)
}

// NewLineChart returns a chart drawing each series as a ribbon.
func NewLineChart(title, subtitle string, dataset *chart.CategoryDataset, rowAxis, columnAxis, valueAxis string) *Chart {
	return newCategoryChart(title, subtitle, dataset, chart.Line, rowAxis, columnAxis, valueAxis)
}

// NewAreaChart returns a chart filling the region under each series.
func NewAreaChart(title, subtitle string, dataset *chart.CategoryDataset, rowAxis, columnAxis, valueAxis string) *Chart {
	return newCategoryChart(title, subtitle, dataset, chart.Area, rowAxis, columnAxis, valueAxis)
}

func newCategoryChart(title, subtitle string, dataset *chart.CategoryDataset, kind chart.CategoryKind, rowAxis, columnAxis, valueAxis string) *Chart {
	c := NewChart(title, subtitle, chart.NewCategoryPlot(dataset, kind))
	c.SetAxes(AxisLabels{X: columnAxis, Y: valueAxis, Z: rowAxis})
	return c
}

// NewScatterPlot returns a chart with a marker for each point of dataset.
func NewScatterPlot(title, subtitle string, dataset *chart.XYZDataset, xAxis, yAxis, zAxis string) *Chart {
	c := NewChart(title, subtitle, chart.NewXYZPlot(dataset, chart.Scatter))
	c.SetAxes(AxisLabels{X: xAxis, Y: yAxis, Z: zAxis})
	return c
}

// NewXYZBarChart returns a chart with a vertical bar at each (x, z)
// position of dataset, reaching up to y.
func NewXYZBarChart(title, subtitle string, dataset *chart.XYZDataset, xAxis, yAxis, zAxis string) *Chart {
	c := NewChart(title, subtitle, chart.NewXYZPlot(dataset, chart.XYZBar))
	c.SetAxes(AxisLabels{X: xAxis, Y: yAxis, Z: zAxis})
	return c
}
