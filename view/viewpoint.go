// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package view describes where a 3D scene is looked at from and how camera
// space is mapped onto the pixels of a viewport.
//
// A Viewpoint orbits a target point: Theta is the azimuth about the world Y
// axis (0 looks from +Z), Phi is the elevation above the XZ plane and Rho is
// the distance from the target. The view transform maps world space into
// camera space, where the camera sits at the origin, looks down -Z and has
// +Y up. Depth is -Z in camera space.
package view

import (
	"errors"
	"fmt"
	"math"

	"github.com/gogpu/chart3d/math3d"
)

// Errors returned by viewpoint operations.
var (
	// ErrDegenerateCamera is returned when a viewpoint cannot produce a
	// view transform (non-positive or non-finite distance, bad projection
	// parameters, or a degenerate basis).
	ErrDegenerateCamera = errors.New("view: degenerate camera")

	// ErrInvalidViewport is returned for a viewport with non-positive size.
	ErrInvalidViewport = errors.New("view: invalid viewport size")

	// ErrEmptyBounds is returned when fitting to bounds that contain nothing.
	ErrEmptyBounds = errors.New("view: nothing to fit")
)

// Projection selects how camera space is flattened onto the viewport.
type Projection int

const (
	// Perspective divides by depth; far objects appear smaller.
	Perspective Projection = iota
	// Orthographic maps camera X/Y to pixels with a constant scale.
	Orthographic
)

// String returns the projection name.
func (p Projection) String() string {
	switch p {
	case Perspective:
		return "perspective"
	case Orthographic:
		return "orthographic"
	default:
		return fmt.Sprintf("Projection(%d)", int(p))
	}
}

// ParseProjection converts a name produced by Projection.String back into
// a Projection.
func ParseProjection(s string) (Projection, error) {
	switch s {
	case "perspective", "":
		return Perspective, nil
	case "orthographic", "ortho":
		return Orthographic, nil
	}
	return Perspective, fmt.Errorf("view: unknown projection %q", s)
}

// Limits applied by the interaction methods.
const (
	// MaxElevation bounds |Phi| so the view direction never becomes
	// parallel to the world up axis.
	MaxElevation = math.Pi/2 - 1e-3

	MinDistance = 0.5
	MaxDistance = 1e5

	MinScale = 1e-3
	MaxScale = 1e6

	// NearPlane is the smallest depth a perspective vertex may have.
	NearPlane = 1e-3
)

// Viewpoint is an orbiting camera.
type Viewpoint struct {
	Theta float64 // azimuth about world Y, radians
	Phi   float64 // elevation, radians, |Phi| <= MaxElevation
	Rho   float64 // distance from Target

	Target     math3d.Point3D
	Projection Projection

	// ProjDist is the perspective projection distance in pixels.
	ProjDist float64
	// Scale is the orthographic scale in pixels per world unit.
	Scale float64
}

// NewPerspective returns the default perspective viewpoint: slightly to the
// right of and above the target.
func NewPerspective() Viewpoint {
	return Viewpoint{
		Theta:      math.Pi / 6,
		Phi:        math.Pi / 9,
		Rho:        12,
		Projection: Perspective,
		ProjDist:   800,
		Scale:      25,
	}
}

// NewOrthographic returns the default orthographic viewpoint, looking at
// the origin straight down -Z from distance 10 at 25 pixels per unit.
func NewOrthographic() Viewpoint {
	return Viewpoint{
		Rho:        10,
		Projection: Orthographic,
		ProjDist:   800,
		Scale:      25,
	}
}

// Eye returns the camera position in world space.
func (v Viewpoint) Eye() math3d.Point3D {
	cp := math.Cos(v.Phi)
	return v.Target.Add(math3d.V3(
		v.Rho*cp*math.Sin(v.Theta),
		v.Rho*math.Sin(v.Phi),
		v.Rho*cp*math.Cos(v.Theta),
	))
}

// Validate reports whether the viewpoint can produce a view transform.
func (v Viewpoint) Validate() error {
	switch {
	case !finite(v.Theta, v.Phi, v.Rho, v.ProjDist, v.Scale) || !v.Target.IsFinite():
		return fmt.Errorf("%w: non-finite parameter", ErrDegenerateCamera)
	case v.Rho <= 0:
		return fmt.Errorf("%w: distance %v", ErrDegenerateCamera, v.Rho)
	case v.Projection == Perspective && v.ProjDist <= 0:
		return fmt.Errorf("%w: projection distance %v", ErrDegenerateCamera, v.ProjDist)
	case v.Projection == Orthographic && v.Scale <= 0:
		return fmt.Errorf("%w: scale %v", ErrDegenerateCamera, v.Scale)
	case v.Projection != Perspective && v.Projection != Orthographic:
		return fmt.Errorf("%w: %v", ErrDegenerateCamera, v.Projection)
	}
	return nil
}

// ViewTransform returns the world-to-camera transform.
func (v Viewpoint) ViewTransform() (math3d.Transform, error) {
	if err := v.Validate(); err != nil {
		return math3d.Identity(), err
	}
	t, err := math3d.LookAt(v.Eye(), v.Target, math3d.YAxis)
	if err != nil {
		return math3d.Identity(), fmt.Errorf("%w: %w", ErrDegenerateCamera, err)
	}
	return t, nil
}

// ProjectPoint maps a camera-space point to viewport pixel coordinates.
// The viewport centre is at (width/2, height/2) and screen y grows
// downwards. ok is false when a perspective point is not in front of the
// near plane.
func (v Viewpoint) ProjectPoint(p math3d.Point3D, width, height int) (x, y float64, ok bool) {
	cx := float64(width) / 2
	cy := float64(height) / 2
	if v.Projection == Orthographic {
		return cx + v.Scale*p.X, cy - v.Scale*p.Y, true
	}
	depth := -p.Z
	if depth <= NearPlane {
		return 0, 0, false
	}
	return cx + v.ProjDist*p.X/depth, cy - v.ProjDist*p.Y/depth, true
}

// PanLeftRight rotates the camera about the target's vertical axis.
func (v *Viewpoint) PanLeftRight(delta float64) {
	if !finite(delta) {
		return
	}
	v.Theta = math.Remainder(v.Theta+delta, 2*math.Pi)
}

// RotateUp raises (positive delta) or lowers the camera. The elevation is
// clamped to ±MaxElevation.
func (v *Viewpoint) RotateUp(delta float64) {
	if !finite(delta) {
		return
	}
	v.Phi = clamp(v.Phi+delta, -MaxElevation, MaxElevation)
}

// ZoomIn magnifies the view by factor (> 1 zooms in). Perspective views
// move the camera closer; orthographic views increase the scale.
// Non-positive factors are ignored.
func (v *Viewpoint) ZoomIn(factor float64) {
	if !finite(factor) || factor <= 0 {
		return
	}
	if v.Projection == Orthographic {
		v.Scale = clamp(v.Scale*factor, MinScale, MaxScale)
		return
	}
	v.Rho = clamp(v.Rho/factor, MinDistance, MaxDistance)
}

// ZoomOut is the inverse of ZoomIn.
func (v *Viewpoint) ZoomOut(factor float64) {
	if !finite(factor) || factor <= 0 {
		return
	}
	v.ZoomIn(1 / factor)
}

// String implements fmt.Stringer.
func (v Viewpoint) String() string {
	return fmt.Sprintf("Viewpoint(%v θ=%.3f φ=%.3f ρ=%.3f target=%v)",
		v.Projection, v.Theta, v.Phi, v.Rho, v.Target)
}

func finite(vals ...float64) bool {
	for _, f := range vals {
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return false
		}
	}
	return true
}

func clamp(x, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, x))
}
