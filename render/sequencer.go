// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package render

import (
	"cmp"
	"slices"
)

// Sequencer decides the order in which projected faces are painted. The
// first face returned is painted first and may be overdrawn by later ones.
type Sequencer interface {
	Sequence(faces []ProjectedFace) []ProjectedFace
}

// DepthSequencer is the painter's algorithm: faces are ordered by their mean
// depth, farthest first. Equal depths keep insertion order (solid order,
// then face order), so the result is deterministic.
//
// Faces are never split, so interpenetrating or cyclically overlapping
// faces may be ordered incorrectly. Chart primitives do not intersect.
type DepthSequencer struct{}

// Sequence returns a sorted copy of faces.
func (DepthSequencer) Sequence(faces []ProjectedFace) []ProjectedFace {
	out := slices.Clone(faces)
	slices.SortFunc(out, func(a, b ProjectedFace) int {
		if c := cmp.Compare(b.Depth, a.Depth); c != 0 {
			return c
		}
		return cmp.Compare(a.Seq, b.Seq)
	})
	return out
}

// InsertionSequencer paints faces in the order they were projected.
type InsertionSequencer struct{}

// Sequence returns faces unchanged.
func (InsertionSequencer) Sequence(faces []ProjectedFace) []ProjectedFace {
	return faces
}
