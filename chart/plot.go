// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package chart turns datasets into scene geometry.
//
// Each chart type is a SceneContributor: Compose adds keyed solids to a
// scene.World and nothing else, so the projection pipeline never knows
// which chart populated it. The key of every solid is an ItemKey, and a
// hit-test result can be mapped back to its data with Plot.ToolTipText.
//
// Plots centre their geometry on the origin inside a box of the plot's
// Dimensions. Items that cannot be drawn (NaN, infinite, or negative pie
// values) are skipped with a warning instead of failing the composition.
package chart

import (
	"fmt"
	"math"

	"github.com/gogpu/chart3d/scene"
)

// SceneContributor adds the solids of a chart to a world.
type SceneContributor interface {
	Compose(world *scene.World) error
}

// Plot is a SceneContributor that can describe the items it added.
type Plot interface {
	SceneContributor

	// Dimensions returns the size of the box the plot occupies.
	Dimensions() Dimensions

	// ToolTipText describes the item identified by key. ok is false when
	// the key does not belong to this plot.
	ToolTipText(key any) (text string, ok bool)
}

// Dimensions is the extent of a plot along each world axis.
type Dimensions struct {
	Width, Height, Depth float64
}

// valid reports whether every extent is finite and positive.
func (d Dimensions) valid() bool {
	for _, v := range [3]float64{d.Width, d.Height, d.Depth} {
		if math.IsNaN(v) || math.IsInf(v, 0) || v <= 0 {
			return false
		}
	}
	return true
}

// String implements fmt.Stringer.
func (d Dimensions) String() string {
	return fmt.Sprintf("%gx%gx%g", d.Width, d.Height, d.Depth)
}

func addSolid(world *scene.World, s *scene.Solid, key ItemKey) error {
	if err := world.AddSolid(s.WithKey(key)); err != nil {
		return fmt.Errorf("chart: add %s: %w", key, err)
	}
	return nil
}

func skipItem(key ItemKey, value any) {
	slogger().Warn("chart: item skipped", "key", key.String(), "value", value)
}
