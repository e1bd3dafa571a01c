// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package math3d

import "math"

// Point3D represents a position in 3D space.
type Point3D struct {
	X, Y, Z float64
}

// Pt3 is a convenience function to create a Point3D.
func Pt3(x, y, z float64) Point3D {
	return Point3D{X: x, Y: y, Z: z}
}

// Origin is the point (0, 0, 0).
var Origin = Point3D{}

// Add returns the point displaced by v.
func (p Point3D) Add(v Vector3D) Point3D {
	return Point3D{X: p.X + v.X, Y: p.Y + v.Y, Z: p.Z + v.Z}
}

// Sub returns the vector from q to p.
func (p Point3D) Sub(q Point3D) Vector3D {
	return Vector3D{X: p.X - q.X, Y: p.Y - q.Y, Z: p.Z - q.Z}
}

// Distance returns the distance between two points.
func (p Point3D) Distance(q Point3D) float64 {
	return p.Sub(q).Length()
}

// Vector returns the position vector of the point.
func (p Point3D) Vector() Vector3D {
	return Vector3D{X: p.X, Y: p.Y, Z: p.Z}
}

// Lerp performs linear interpolation between two points.
// t=0 returns p, t=1 returns q.
func (p Point3D) Lerp(q Point3D, t float64) Point3D {
	return Point3D{
		X: p.X + (q.X-p.X)*t,
		Y: p.Y + (q.Y-p.Y)*t,
		Z: p.Z + (q.Z-p.Z)*t,
	}
}

// Approx returns true if two points are equal within epsilon per component.
func (p Point3D) Approx(q Point3D, epsilon float64) bool {
	return math.Abs(p.X-q.X) <= epsilon &&
		math.Abs(p.Y-q.Y) <= epsilon &&
		math.Abs(p.Z-q.Z) <= epsilon
}

// IsFinite reports whether no coordinate is NaN or infinite.
func (p Point3D) IsFinite() bool {
	return isFinite(p.X) && isFinite(p.Y) && isFinite(p.Z)
}

// Centroid returns the arithmetic mean of the points.
// It returns Origin for an empty slice.
func Centroid(points []Point3D) Point3D {
	if len(points) == 0 {
		return Origin
	}
	var c Point3D
	for _, p := range points {
		c.X += p.X
		c.Y += p.Y
		c.Z += p.Z
	}
	n := float64(len(points))
	return Point3D{X: c.X / n, Y: c.Y / n, Z: c.Z / n}
}

// NewellNormal returns the (unnormalized) normal of a planar polygon using
// Newell's method. For a counter-clockwise winding seen from the side the
// normal points to, the result follows the right-hand rule. The magnitude is
// twice the polygon area, so a zero result means a degenerate polygon.
func NewellNormal(points []Point3D) Vector3D {
	var n Vector3D
	for i := range points {
		a := points[i]
		b := points[(i+1)%len(points)]
		n.X += (a.Y - b.Y) * (a.Z + b.Z)
		n.Y += (a.Z - b.Z) * (a.X + b.X)
		n.Z += (a.X - b.X) * (a.Y + b.Y)
	}
	return n
}
