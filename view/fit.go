// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package view

import (
	"fmt"
	"math"

	"github.com/gogpu/chart3d/math3d"
)

// FitMargin is the fraction of the smaller viewport side kept clear on every
// edge by ComputeToFit.
const FitMargin = 0.05

const fitIterations = 64

// ComputeToFit returns a copy of base, retargeted at the centre of bounds,
// whose distance (perspective) or scale (orthographic) makes every corner of
// bounds project inside the viewport with FitMargin to spare. The base
// angles and projection mode are kept.
func ComputeToFit(bounds math3d.Bounds, width, height int, base Viewpoint) (Viewpoint, error) {
	if width <= 0 || height <= 0 {
		return base, fmt.Errorf("%w: %dx%d", ErrInvalidViewport, width, height)
	}
	if bounds.Empty() || !bounds.Min.IsFinite() || !bounds.Max.IsFinite() {
		return base, ErrEmptyBounds
	}

	vp := base
	vp.Target = bounds.Center()
	if vp.Rho <= 0 || math.IsNaN(vp.Rho) || math.IsInf(vp.Rho, 0) {
		vp.Rho = NewPerspective().Rho
	}
	if err := vp.Validate(); err != nil {
		return base, err
	}

	m := FitMargin * float64(min(width, height))
	halfW := float64(width)/2 - m
	halfH := float64(height)/2 - m

	// Camera-space corners relative to the target. The rotation depends on
	// the angles only, so these do not change with Rho.
	rot, err := vp.ViewTransform()
	if err != nil {
		return base, err
	}
	target := rot.Apply(vp.Target)
	corners := bounds.Corners()
	rel := make([]math3d.Vector3D, len(corners))
	for i, c := range corners {
		rel[i] = rot.Apply(c).Sub(target)
	}

	if vp.Projection == Orthographic {
		var maxX, maxY float64
		for _, r := range rel {
			maxX = math.Max(maxX, math.Abs(r.X))
			maxY = math.Max(maxY, math.Abs(r.Y))
		}
		scale := math.Inf(1)
		if maxX > 0 {
			scale = halfW / maxX
		}
		if maxY > 0 {
			scale = math.Min(scale, halfH/maxY)
		}
		if !math.IsInf(scale, 1) {
			vp.Scale = clamp(scale, MinScale, MaxScale)
		}
		// Keep the camera outside the box so depth ordering stays meaningful.
		vp.Rho = math.Max(vp.Rho, bounds.Diagonal()+MinDistance)
		return vp, nil
	}

	fits := func(rho float64) bool {
		for _, r := range rel {
			// The target sits at depth rho; r.Z is measured towards the camera.
			depth := rho - r.Z
			if depth <= NearPlane {
				return false
			}
			if math.Abs(vp.ProjDist*r.X/depth) > halfW || math.Abs(vp.ProjDist*r.Y/depth) > halfH {
				return false
			}
		}
		return true
	}

	lo, hi := MinDistance, math.Max(MinDistance, bounds.Diagonal())
	if fits(lo) {
		vp.Rho = lo
		return vp, nil
	}
	for !fits(hi) {
		if hi >= MaxDistance {
			vp.Rho = MaxDistance
			return vp, nil
		}
		lo = hi
		hi = math.Min(hi*2, MaxDistance)
	}
	for range fitIterations {
		mid := (lo + hi) / 2
		if fits(mid) {
			hi = mid
		} else {
			lo = mid
		}
	}
	vp.Rho = hi
	return vp, nil
}
