// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package scene

import (
	"slices"
	"sync"

	"github.com/gogpu/chart3d/math3d"
)

// World is an ordered collection of solids. Insertion order is the order in
// which the renderer considers them, which also breaks depth ties.
//
// World is safe for concurrent use. While a render pass holds a Snapshot the
// world is busy and mutations fail with ErrWorldBusy.
type World struct {
	mu      sync.Mutex
	solids  []*Solid
	version uint64
	readers int
}

// NewWorld creates an empty world.
func NewWorld() *World {
	return &World{}
}

// AddSolid appends a solid to the world.
func (w *World) AddSolid(s *Solid) error {
	if s == nil {
		return ErrNilSolid
	}
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.readers > 0 {
		return ErrWorldBusy
	}
	w.solids = append(w.solids, s)
	w.version++
	return nil
}

// Clear removes all solids.
func (w *World) Clear() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.readers > 0 {
		return ErrWorldBusy
	}
	w.solids = nil
	w.version++
	return nil
}

// Solids returns the solids in insertion order.
func (w *World) Solids() []*Solid {
	w.mu.Lock()
	defer w.mu.Unlock()
	return slices.Clone(w.solids)
}

// Len returns the number of solids.
func (w *World) Len() int {
	w.mu.Lock()
	defer w.mu.Unlock()
	return len(w.solids)
}

// Version returns a counter that changes on every mutation.
func (w *World) Version() uint64 {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.version
}

// Busy reports whether a render pass currently holds a snapshot.
func (w *World) Busy() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.readers > 0
}

// CalculateTotalBounds returns the world-space bounding box of all solids.
// The second result is false when the world has no vertices.
func (w *World) CalculateTotalBounds() (math3d.Bounds, bool) {
	b := math3d.EmptyBounds()
	for _, s := range w.Solids() {
		b = b.Union(s.Bounds())
	}
	return b, !b.Empty()
}

// Snapshot is a stable view of a world taken by a render pass.
type Snapshot struct {
	Solids  []*Solid
	Version uint64

	w    *World
	once sync.Once
}

// Acquire marks the world busy and returns its current contents. The
// caller must call Release when it has finished reading.
func (w *World) Acquire() *Snapshot {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.readers++
	return &Snapshot{
		Solids:  slices.Clone(w.solids),
		Version: w.version,
		w:       w,
	}
}

// Release ends the snapshot. Calling it more than once has no effect.
func (s *Snapshot) Release() {
	s.once.Do(func() {
		s.w.mu.Lock()
		s.w.readers--
		s.w.mu.Unlock()
	})
}
