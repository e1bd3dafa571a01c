// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package chart3d renders interactive 3D charts in pure Go.
//
// # Overview
//
// A chart is built by composing simple solids (boxes, pie wedges, ribbons,
// prisms and markers) into a scene, projecting that scene through a camera
// onto a pixel grid, and painting the visible faces back to front. Every
// painted face is also recorded in a hit index, so a pixel position can be
// mapped back to the data item that produced it.
//
// # Quick Start
//
//	data := chart.NewPieDataset()
//	data.Add("United States", 30)
//	data.Add("France", 20)
//
//	c := chart3d.NewPieChart("Sales", "2026", data)
//	p, err := chart3d.NewPanel(c, 640, 480)
//	if err != nil {
//	    return err
//	}
//	frame, err := p.Render()
//	if err != nil {
//	    return err
//	}
//	_ = frame.Pixmap.SavePNG("pie.png")
//	text, ok := p.ToolTipText(320, 240)
//
// # Architecture
//
// The library is organized into:
//   - math3d: points, vectors, affine transforms, look-at
//   - scene: solids with keyed faces, the World that holds them, shape builders
//   - view: the orbit camera (Viewpoint) and auto-fit
//   - render: projection, depth ordering, painting and the RenderingInfo hit index
//   - chart: datasets and the plots that compose them into a World
//   - label: title measurement and drawing
//   - chart3d (this package): Chart, Panel and the factory functions
//
// # Coordinate System
//
// World space is right-handed with +Y up. Screen space has its origin at
// the top-left, X to the right and Y down. Angles are in radians.
package chart3d
