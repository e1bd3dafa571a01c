// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package render projects a scene.World through a view.Viewpoint and paints
// it into a Pixmap, recording what was painted where in a RenderingInfo.
//
// # Pipeline
//
// A render pass runs synchronously in three steps:
//
//   - Project: every face goes object → world → camera → screen. Faces
//     turned away from the camera are culled, perspective faces reaching the
//     near plane are dropped, and faces with no screen area are discarded.
//   - Sequence: the painter's algorithm orders faces farthest first by
//     their mean depth; ties keep insertion order.
//   - Paint: faces are filled in order with an even-odd scanline fill at
//     pixel centres, each one recorded in the RenderingInfo.
//
// # Hit testing
//
// RenderingInfo answers "which data item is at this pixel?" by scanning the
// faces covering a grid cell from the top of the paint order down. It uses
// the same crossing rule as the rasterizer, so ElementAtPixel agrees with
// the painted image exactly.
//
// # Usage
//
//	world := scene.NewWorld()
//	_ = world.AddSolid(scene.NewBox(1, 1, 1, color.NRGBA{R: 200, A: 255}).WithKey("cube"))
//
//	r := render.NewRenderer()
//	pm, info, err := r.Render(world, view.NewOrthographic(), 100, 100)
//	if err != nil {
//	    return err
//	}
//	if e, ok := info.ElementAt(50, 50); ok {
//	    fmt.Println(e.Key) // cube
//	}
//	_ = pm.SavePNG("cube.png")
package render
