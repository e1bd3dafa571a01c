// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package render

import (
	"errors"
	"fmt"
	"image/color"
	"math"

	"github.com/gogpu/chart3d/internal/raster"
	"github.com/gogpu/chart3d/math3d"
	"github.com/gogpu/chart3d/scene"
	"github.com/gogpu/chart3d/view"
)

// ErrInvalidViewport is returned for a viewport with non-positive size.
var ErrInvalidViewport = view.ErrInvalidViewport

// ErrNilWorld is returned when rendering without a world.
var ErrNilWorld = errors.New("render: nil world")

// minScreenArea is the smallest |area| in square pixels a projected face may
// have before it is dropped as degenerate.
const minScreenArea = 1e-9

// Point is a position in viewport pixel coordinates, y growing downwards.
type Point = raster.Point

// ProjectedFace is a face that survived culling, in screen space.
type ProjectedFace struct {
	Solid      *scene.Solid
	SolidIndex int // position of Solid in the world
	FaceIndex  int // face index within Solid

	Key   any // face key, or the solid key when the face has none
	Color color.NRGBA

	Points []Point         // screen polygon, same winding as the face
	Normal math3d.Vector3D // unit normal in camera space
	Depth  float64         // mean vertex depth (distance along the view axis)
	Seq    int             // insertion order: solid order, then face order
}

// Stats counts what happened to faces during projection.
type Stats struct {
	Solids     int
	Faces      int // faces considered
	Culled     int // facing away from the camera
	Clipped    int // touching or behind the perspective near plane
	Degenerate int // zero normal, zero screen area or non-finite coordinates
	Visible    int
}

// Project transforms every face of the world through object-to-world,
// world-to-camera and projection, and returns the visible faces in
// insertion order. The world is busy while it is being read.
func Project(world *scene.World, vp view.Viewpoint, width, height int) ([]ProjectedFace, Stats, error) {
	if world == nil {
		return nil, Stats{}, ErrNilWorld
	}
	snap := world.Acquire()
	defer snap.Release()
	return project(snap.Solids, vp, width, height)
}

func project(solids []*scene.Solid, vp view.Viewpoint, width, height int) ([]ProjectedFace, Stats, error) {
	var stats Stats
	if width <= 0 || height <= 0 {
		return nil, stats, fmt.Errorf("%w: %dx%d", ErrInvalidViewport, width, height)
	}
	viewT, err := vp.ViewTransform()
	if err != nil {
		return nil, stats, err
	}

	var out []ProjectedFace
	var cam []math3d.Point3D
	var pts []math3d.Point3D
	seq := 0
	for si, s := range solids {
		stats.Solids++
		toCamera := viewT.Mul(s.Placement())

		verts := s.Vertices()
		cam = cam[:0]
		for _, v := range verts {
			cam = append(cam, toCamera.Apply(v))
		}

		for fi, f := range s.Faces() {
			stats.Faces++
			seq++

			pts = pts[:0]
			for _, idx := range f.Indices {
				pts = append(pts, cam[idx])
			}
			pf, reason := projectFace(pts, vp, width, height)
			switch reason {
			case faceVisible:
				stats.Visible++
			case faceCulled:
				stats.Culled++
				continue
			case faceClipped:
				stats.Clipped++
				continue
			default:
				stats.Degenerate++
				continue
			}

			pf.Solid = s
			pf.SolidIndex = si
			pf.FaceIndex = fi
			pf.Key = s.FaceKey(fi)
			pf.Color = f.Color
			pf.Seq = seq - 1
			out = append(out, pf)
		}
	}
	return out, stats, nil
}

type faceFate int

const (
	faceVisible faceFate = iota
	faceCulled
	faceClipped
	faceDegenerate
)

// projectFace projects one camera-space polygon.
func projectFace(pts []math3d.Point3D, vp view.Viewpoint, width, height int) (ProjectedFace, faceFate) {
	var depth float64
	for _, p := range pts {
		if !p.IsFinite() {
			return ProjectedFace{}, faceDegenerate
		}
		d := -p.Z
		if d <= view.NearPlane {
			return ProjectedFace{}, faceClipped
		}
		depth += d
	}
	depth /= float64(len(pts))

	n := math3d.NewellNormal(pts)
	unit, err := n.Normalize()
	if err != nil {
		return ProjectedFace{}, faceDegenerate
	}

	// Direction from the eye towards the face.
	viewDir := math3d.V3(0, 0, -1)
	if vp.Projection == view.Perspective {
		viewDir = math3d.Centroid(pts).Vector()
	}
	if n.Dot(viewDir) >= 0 {
		return ProjectedFace{}, faceCulled
	}

	screen := make([]Point, len(pts))
	for i, p := range pts {
		x, y, ok := vp.ProjectPoint(p, width, height)
		if !ok {
			return ProjectedFace{}, faceClipped
		}
		screen[i] = Point{X: x, Y: y}
	}
	if a := polygonArea(screen); math.Abs(a) < minScreenArea || math.IsNaN(a) {
		return ProjectedFace{}, faceDegenerate
	}

	return ProjectedFace{
		Points: screen,
		Normal: unit,
		Depth:  depth,
	}, faceVisible
}

// polygonArea returns the signed shoelace area of a screen polygon.
func polygonArea(pts []Point) float64 {
	var a float64
	for i := range pts {
		p := pts[i]
		q := pts[(i+1)%len(pts)]
		a += p.X*q.Y - q.X*p.Y
	}
	return a / 2
}
