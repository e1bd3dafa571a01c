// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package chart3d

import (
	"fmt"

	"github.com/gogpu/chart3d/render"
)

// MouseEvent describes a mouse position over a panel together with the
// chart element found there. Element is nil when the position hits no keyed
// element of the latest frame.
type MouseEvent struct {
	Chart   *Chart
	X, Y    float64
	Element *render.Element
}

// Key returns the data item identity under the mouse, or nil.
func (e MouseEvent) Key() any {
	if e.Element == nil {
		return nil
	}
	return e.Element.Key
}

// String implements fmt.Stringer.
func (e MouseEvent) String() string {
	return fmt.Sprintf("MouseEvent(%.1f, %.1f, %v)", e.X, e.Y, e.Key())
}

// MouseEvent builds the event payload for a click or move at (x, y). The
// caller decides which handlers receive it.
func (p *Panel) MouseEvent(x, y float64) MouseEvent {
	ev := MouseEvent{Chart: p.chart, X: x, Y: y}
	if f := p.Frame(); f != nil {
		if el, ok := f.Info.ElementAt(x, y); ok {
			ev.Element = el
		}
	}
	return ev
}
