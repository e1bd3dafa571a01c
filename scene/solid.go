// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package scene holds the 3D scene model that charts are composed into:
// polygonal solids built from indexed faces, and the World that collects
// them for rendering.
//
// Solids are immutable once built. Every constructor copies the caller's
// slices, so two solids in a World never share mutable geometry.
//
// # Winding
//
// Face vertices are listed counter-clockwise when seen from outside the
// solid. The outward normal follows the right-hand rule and is what the
// renderer uses for back-face culling.
package scene

import (
	"errors"
	"fmt"
	"image/color"
	"slices"

	"github.com/gogpu/chart3d/math3d"
)

// Errors returned by scene construction and mutation.
var (
	// ErrInvalidFace is returned when a face references a vertex that does
	// not exist or has fewer than three indices.
	ErrInvalidFace = errors.New("scene: invalid face")

	// ErrInvalidVertex is returned for vertices with NaN or infinite coordinates.
	ErrInvalidVertex = errors.New("scene: invalid vertex")

	// ErrWorldBusy is returned when a world is mutated while a render pass
	// is reading it.
	ErrWorldBusy = errors.New("scene: world is busy rendering")

	// ErrNilSolid is returned when adding a nil solid to a world.
	ErrNilSolid = errors.New("scene: nil solid")
)

// Face is a planar polygon of a Solid, given as indices into the solid's
// vertex list.
type Face struct {
	// Indices lists at least three vertex indices, counter-clockwise as
	// seen from outside.
	Indices []int

	// Color is the flat fill colour of the face.
	Color color.NRGBA

	// Key identifies the data item the face represents. When nil the
	// owning solid's key applies.
	Key any
}

func (f Face) clone() Face {
	f.Indices = slices.Clone(f.Indices)
	return f
}

// Solid is a named polygonal object: vertices in object space, faces over
// those vertices, and a placement transform from object to world space.
type Solid struct {
	name      string
	key       any
	vertices  []math3d.Point3D
	faces     []Face
	placement math3d.Transform
}

// NewSolid validates and builds a solid. The vertex and face slices are
// copied. It fails with ErrInvalidFace on the first face that has fewer
// than three indices or an out-of-range index, and with ErrInvalidVertex
// on a non-finite vertex.
func NewSolid(name string, vertices []math3d.Point3D, faces []Face) (*Solid, error) {
	for i, v := range vertices {
		if !v.IsFinite() {
			return nil, fmt.Errorf("%w: solid %q vertex %d is %v", ErrInvalidVertex, name, i, v)
		}
	}
	for i, f := range faces {
		if len(f.Indices) < 3 {
			return nil, fmt.Errorf("%w: solid %q face %d has %d indices", ErrInvalidFace, name, i, len(f.Indices))
		}
		for _, idx := range f.Indices {
			if idx < 0 || idx >= len(vertices) {
				return nil, fmt.Errorf("%w: solid %q face %d index %d out of range [0,%d)",
					ErrInvalidFace, name, i, idx, len(vertices))
			}
		}
	}

	s := &Solid{
		name:      name,
		vertices:  slices.Clone(vertices),
		faces:     make([]Face, len(faces)),
		placement: math3d.Identity(),
	}
	for i, f := range faces {
		s.faces[i] = f.clone()
	}
	return s, nil
}

// Name returns the solid's name.
func (s *Solid) Name() string { return s.name }

// Key returns the data item identity of the solid, or nil.
func (s *Solid) Key() any { return s.key }

// Placement returns the object-to-world transform.
func (s *Solid) Placement() math3d.Transform { return s.placement }

// VertexCount returns the number of vertices.
func (s *Solid) VertexCount() int { return len(s.vertices) }

// FaceCount returns the number of faces.
func (s *Solid) FaceCount() int { return len(s.faces) }

// Vertices returns a copy of the object-space vertices.
func (s *Solid) Vertices() []math3d.Point3D {
	return slices.Clone(s.vertices)
}

// Faces returns a copy of the faces.
func (s *Solid) Faces() []Face {
	out := make([]Face, len(s.faces))
	for i, f := range s.faces {
		out[i] = f.clone()
	}
	return out
}

// Face returns a copy of face i.
func (s *Solid) Face(i int) Face {
	return s.faces[i].clone()
}

// FaceKey returns the identity of face i: the face's own key if set,
// otherwise the solid's key.
func (s *Solid) FaceKey(i int) any {
	if k := s.faces[i].Key; k != nil {
		return k
	}
	return s.key
}

// WorldVertices returns the vertices with the placement transform applied.
func (s *Solid) WorldVertices() []math3d.Point3D {
	out := make([]math3d.Point3D, len(s.vertices))
	for i, v := range s.vertices {
		out[i] = s.placement.Apply(v)
	}
	return out
}

// Bounds returns the world-space bounding box of the solid.
func (s *Solid) Bounds() math3d.Bounds {
	return math3d.BoundsOf(s.WorldVertices()...)
}

// WithKey returns a copy of the solid carrying key as its identity.
func (s *Solid) WithKey(key any) *Solid {
	c := *s
	c.key = key
	return &c
}

// WithPlacement returns a copy of the solid with the given object-to-world
// transform.
func (s *Solid) WithPlacement(t math3d.Transform) *Solid {
	c := *s
	c.placement = t
	return &c
}

// Transformed returns a new solid whose object-space vertices are the
// receiver's vertices transformed by t. Faces that collapse to fewer than
// three distinct vertices are dropped.
func (s *Solid) Transformed(t math3d.Transform) *Solid {
	c := *s
	c.vertices = make([]math3d.Point3D, len(s.vertices))
	for i, v := range s.vertices {
		c.vertices[i] = t.Apply(v)
	}
	c.faces = make([]Face, 0, len(s.faces))
	for _, f := range s.faces {
		if distinctVertices(c.vertices, f.Indices) >= 3 {
			c.faces = append(c.faces, f.clone())
		}
	}
	return &c
}

// distinctVertices counts the distinct positions referenced by indices,
// stopping once three are found.
func distinctVertices(vertices []math3d.Point3D, indices []int) int {
	seen := make([]math3d.Point3D, 0, 3)
	for _, idx := range indices {
		p := vertices[idx]
		dup := false
		for _, q := range seen {
			if p.Approx(q, math3d.Epsilon) {
				dup = true
				break
			}
		}
		if !dup {
			seen = append(seen, p)
			if len(seen) == 3 {
				break
			}
		}
	}
	return len(seen)
}

// String implements fmt.Stringer.
func (s *Solid) String() string {
	return fmt.Sprintf("Solid(%s, %d vertices, %d faces)", s.name, len(s.vertices), len(s.faces))
}
