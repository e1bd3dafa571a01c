// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package math3d

import (
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Transform represents a 3D affine transformation as a 4x4 matrix
// acting on column vectors:
//
//	| m00 m01 m02 tx |
//	| m10 m11 m12 ty |
//	| m20 m21 m22 tz |
//	|  0   0   0   1 |
//
// The zero value is not a valid transform; use Identity.
type Transform struct {
	m mgl64.Mat4
}

// Identity returns the identity transformation.
func Identity() Transform {
	return Transform{m: mgl64.Ident4()}
}

// Translate creates a translation transform.
func Translate(x, y, z float64) Transform {
	return Transform{m: mgl64.Translate3D(x, y, z)}
}

// Scale creates a scaling transform.
func Scale(x, y, z float64) Transform {
	return Transform{m: mgl64.Scale3D(x, y, z)}
}

// RotateX creates a rotation about the X axis (angle in radians).
func RotateX(angle float64) Transform {
	return Transform{m: mgl64.HomogRotate3DX(angle)}
}

// RotateY creates a rotation about the Y axis (angle in radians).
func RotateY(angle float64) Transform {
	return Transform{m: mgl64.HomogRotate3DY(angle)}
}

// RotateZ creates a rotation about the Z axis (angle in radians).
func RotateZ(angle float64) Transform {
	return Transform{m: mgl64.HomogRotate3DZ(angle)}
}

// Rotate creates a rotation of angle radians about axis, counter-clockwise
// when looking down the axis towards the origin. The axis need not be unit
// length, but it must not be zero.
func Rotate(axis Vector3D, angle float64) (Transform, error) {
	u, err := axis.Normalize()
	if err != nil {
		return Identity(), fmt.Errorf("math3d: rotation axis: %w", err)
	}
	return Transform{m: mgl64.HomogRotate3D(angle, u.vec())}, nil
}

// FromBasis builds the transform whose rows are the given basis vectors
// followed by a translation, i.e. p' = (r·p + tx, u·p + ty, f·p + tz).
func FromBasis(r, u, f Vector3D, t Vector3D) Transform {
	return Transform{m: mgl64.Mat4FromRows(
		mgl64.Vec4{r.X, r.Y, r.Z, t.X},
		mgl64.Vec4{u.X, u.Y, u.Z, t.Y},
		mgl64.Vec4{f.X, f.Y, f.Z, t.Z},
		mgl64.Vec4{0, 0, 0, 1},
	)}
}

// Mul returns the composition t·other: the resulting transform applies
// other first, then t. Composition is associative but not commutative.
func (t Transform) Mul(other Transform) Transform {
	return Transform{m: t.m.Mul4(other.m)}
}

// Apply transforms a point (translation included).
func (t Transform) Apply(p Point3D) Point3D {
	v := t.m.Mul4x1(mgl64.Vec4{p.X, p.Y, p.Z, 1})
	return Point3D{X: v[0], Y: v[1], Z: v[2]}
}

// ApplyVector transforms a direction (translation ignored).
func (t Transform) ApplyVector(v Vector3D) Vector3D {
	r := t.m.Mul4x1(mgl64.Vec4{v.X, v.Y, v.Z, 0})
	return Vector3D{X: r[0], Y: r[1], Z: r[2]}
}

// At returns the matrix element at row, col.
func (t Transform) At(row, col int) float64 {
	return t.m.At(row, col)
}

// Column returns the first three components of column col of the linear part.
func (t Transform) Column(col int) Vector3D {
	c := t.m.Col(col)
	return Vector3D{X: c[0], Y: c[1], Z: c[2]}
}

// Translation returns the translation component.
func (t Transform) Translation() Vector3D {
	return t.Column(3)
}

// IsIdentity returns true if the transform is exactly the identity.
func (t Transform) IsIdentity() bool {
	return t.m == mgl64.Ident4()
}

// Approx returns true if all matrix elements are equal within epsilon.
func (t Transform) Approx(other Transform, epsilon float64) bool {
	return t.m.ApproxEqualThreshold(other.m, epsilon)
}

// IsOrthonormal reports whether the linear part has unit-length, mutually
// perpendicular columns within epsilon.
func (t Transform) IsOrthonormal(epsilon float64) bool {
	cols := [3]Vector3D{t.Column(0), t.Column(1), t.Column(2)}
	for i := range cols {
		if math.Abs(cols[i].Length()-1) > epsilon {
			return false
		}
		for j := i + 1; j < len(cols); j++ {
			if math.Abs(cols[i].Dot(cols[j])) > epsilon {
				return false
			}
		}
	}
	return true
}

// String implements fmt.Stringer.
func (t Transform) String() string {
	return fmt.Sprintf("Transform[%v %v %v]", t.Column(0), t.Column(1), t.Column(2))
}

// LookAt returns the view transform for a camera at eye looking at target
// with the given up hint. In the resulting camera space the camera sits at
// the origin and looks down -Z, with +Y up and +X to the right.
//
// It returns ErrDegenerateBasis when eye equals target, when forward is
// parallel to up, or when any input is not finite.
func LookAt(eye, target Point3D, up Vector3D) (Transform, error) {
	if !eye.IsFinite() || !target.IsFinite() || !up.IsFinite() {
		return Identity(), fmt.Errorf("%w: non-finite input", ErrDegenerateBasis)
	}
	f, err := target.Sub(eye).Normalize()
	if err != nil {
		return Identity(), fmt.Errorf("%w: eye coincides with target", ErrDegenerateBasis)
	}
	side := f.Cross(up)
	if side.Length() < Epsilon*math.Max(1, up.Length()) {
		return Identity(), fmt.Errorf("%w: view direction parallel to up", ErrDegenerateBasis)
	}
	r, err := side.Normalize()
	if err != nil {
		return Identity(), fmt.Errorf("%w: view direction parallel to up", ErrDegenerateBasis)
	}
	u := r.Cross(f)
	e := eye.Vector()
	return FromBasis(r, u, f.Neg(), Vector3D{X: -r.Dot(e), Y: -u.Dot(e), Z: f.Dot(e)}), nil
}
