// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package math3d provides the 3D value types used by the scene, camera and
// projection packages: points, vectors, 4x4 affine transforms and
// axis-aligned bounds.
//
// All types are plain values and every function is pure. Matrix storage and
// products are delegated to github.com/go-gl/mathgl/mgl64.
//
// # Coordinate System
//
// World space is right-handed with +Y up. Camera space (after a view
// transform) looks down its local -Z axis.
package math3d

import (
	"errors"
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Errors returned by vector and basis operations.
var (
	// ErrZeroVector is returned when normalizing a vector whose length is
	// zero (or not finite).
	ErrZeroVector = errors.New("math3d: cannot normalize zero-length vector")

	// ErrDegenerateBasis is returned when an orthonormal basis cannot be
	// built, e.g. eye and target coincide or forward is parallel to up.
	ErrDegenerateBasis = errors.New("math3d: degenerate basis")
)

// Epsilon is the tolerance used by the approximate comparisons in this package.
const Epsilon = 1e-9

// Vector3D represents a 3D direction and magnitude.
type Vector3D struct {
	X, Y, Z float64
}

// V3 is a convenience function to create a Vector3D.
func V3(x, y, z float64) Vector3D {
	return Vector3D{X: x, Y: y, Z: z}
}

// Unit axis vectors.
var (
	XAxis = Vector3D{X: 1}
	YAxis = Vector3D{Y: 1}
	ZAxis = Vector3D{Z: 1}
)

func (v Vector3D) vec() mgl64.Vec3 {
	return mgl64.Vec3{v.X, v.Y, v.Z}
}

func fromVec(v mgl64.Vec3) Vector3D {
	return Vector3D{X: v[0], Y: v[1], Z: v[2]}
}

// Add returns the sum of two vectors.
func (v Vector3D) Add(w Vector3D) Vector3D {
	return Vector3D{X: v.X + w.X, Y: v.Y + w.Y, Z: v.Z + w.Z}
}

// Sub returns the difference of two vectors.
func (v Vector3D) Sub(w Vector3D) Vector3D {
	return Vector3D{X: v.X - w.X, Y: v.Y - w.Y, Z: v.Z - w.Z}
}

// Mul returns the vector scaled by a scalar.
func (v Vector3D) Mul(s float64) Vector3D {
	return Vector3D{X: v.X * s, Y: v.Y * s, Z: v.Z * s}
}

// Neg returns the negation of the vector.
func (v Vector3D) Neg() Vector3D {
	return Vector3D{X: -v.X, Y: -v.Y, Z: -v.Z}
}

// Dot returns the dot product of two vectors.
func (v Vector3D) Dot(w Vector3D) float64 {
	return v.vec().Dot(w.vec())
}

// Cross returns the cross product v × w (right-hand rule).
func (v Vector3D) Cross(w Vector3D) Vector3D {
	return fromVec(v.vec().Cross(w.vec()))
}

// Length returns the length (magnitude) of the vector.
func (v Vector3D) Length() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y + v.Z*v.Z)
}

// LengthSq returns the squared length of the vector.
func (v Vector3D) LengthSq() float64 {
	return v.X*v.X + v.Y*v.Y + v.Z*v.Z
}

// Normalize returns a unit vector in the same direction.
// It returns ErrZeroVector if the vector has zero or non-finite length;
// the returned vector is then the zero vector, never NaN.
func (v Vector3D) Normalize() (Vector3D, error) {
	length := v.Length()
	if length == 0 || math.IsNaN(length) || math.IsInf(length, 0) {
		return Vector3D{}, ErrZeroVector
	}
	return Vector3D{X: v.X / length, Y: v.Y / length, Z: v.Z / length}, nil
}

// IsZero returns true if the vector is the zero vector.
func (v Vector3D) IsZero() bool {
	return v.X == 0 && v.Y == 0 && v.Z == 0
}

// IsFinite reports whether no component is NaN or infinite.
func (v Vector3D) IsFinite() bool {
	return isFinite(v.X) && isFinite(v.Y) && isFinite(v.Z)
}

// Approx returns true if two vectors are equal within epsilon per component.
func (v Vector3D) Approx(w Vector3D, epsilon float64) bool {
	return math.Abs(v.X-w.X) <= epsilon &&
		math.Abs(v.Y-w.Y) <= epsilon &&
		math.Abs(v.Z-w.Z) <= epsilon
}

func isFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
