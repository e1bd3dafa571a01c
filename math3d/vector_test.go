// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package math3d

import (
	"errors"
	"math"
	"testing"
)

func TestVectorArithmetic(t *testing.T) {
	a := V3(1, 2, 3)
	b := V3(4, -5, 6)

	if got := a.Add(b); got != V3(5, -3, 9) {
		t.Errorf("Add = %v", got)
	}
	if got := a.Sub(b); got != V3(-3, 7, -3) {
		t.Errorf("Sub = %v", got)
	}
	if got := a.Mul(2); got != V3(2, 4, 6) {
		t.Errorf("Mul = %v", got)
	}
	if got := a.Neg(); got != V3(-1, -2, -3) {
		t.Errorf("Neg = %v", got)
	}
	if got := a.Dot(b); got != 12 {
		t.Errorf("Dot = %v, want 12", got)
	}
}

func TestVectorCross(t *testing.T) {
	tests := []struct {
		a, b, want Vector3D
	}{
		{XAxis, YAxis, ZAxis},
		{YAxis, ZAxis, XAxis},
		{ZAxis, XAxis, YAxis},
		{YAxis, XAxis, ZAxis.Neg()},
		{V3(2, 0, 0), V3(4, 0, 0), Vector3D{}},
	}
	for _, tt := range tests {
		if got := tt.a.Cross(tt.b); !got.Approx(tt.want, tol) {
			t.Errorf("%v x %v = %v, want %v", tt.a, tt.b, got, tt.want)
		}
	}
}

func TestVectorNormalize(t *testing.T) {
	tests := []struct {
		name    string
		v       Vector3D
		want    Vector3D
		wantErr bool
	}{
		{"axis", V3(0, 0, 7), ZAxis, false},
		{"3-4-0", V3(3, 4, 0), V3(0.6, 0.8, 0), false},
		{"zero", Vector3D{}, Vector3D{}, true},
		{"nan", V3(math.NaN(), 1, 0), Vector3D{}, true},
		{"inf", V3(math.Inf(1), 0, 0), Vector3D{}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.v.Normalize()
			if tt.wantErr {
				if !errors.Is(err, ErrZeroVector) {
					t.Errorf("Normalize() error = %v, want ErrZeroVector", err)
				}
				if !got.IsZero() {
					t.Errorf("Normalize() = %v, want zero vector on error", got)
				}
				return
			}
			if err != nil {
				t.Fatalf("Normalize() error = %v", err)
			}
			if !got.Approx(tt.want, tol) {
				t.Errorf("Normalize() = %v, want %v", got, tt.want)
			}
			if math.Abs(got.Length()-1) > tol {
				t.Errorf("Length() = %v, want 1", got.Length())
			}
		})
	}
}

func TestPointOps(t *testing.T) {
	p := Pt3(1, 2, 3)
	q := Pt3(4, 6, 3)

	if got := q.Sub(p); got != V3(3, 4, 0) {
		t.Errorf("Sub = %v", got)
	}
	if got := p.Distance(q); got != 5 {
		t.Errorf("Distance = %v, want 5", got)
	}
	if got := p.Add(V3(1, 1, 1)); got != Pt3(2, 3, 4) {
		t.Errorf("Add = %v", got)
	}
	if got := p.Lerp(q, 0.5); got != Pt3(2.5, 4, 3) {
		t.Errorf("Lerp = %v", got)
	}
	if Pt3(math.Inf(-1), 0, 0).IsFinite() {
		t.Error("IsFinite() = true for infinite point")
	}
}

func TestCentroid(t *testing.T) {
	got := Centroid([]Point3D{Pt3(0, 0, 0), Pt3(2, 0, 0), Pt3(2, 2, 0), Pt3(0, 2, 4)})
	if got != Pt3(1, 1, 1) {
		t.Errorf("Centroid = %v, want (1,1,1)", got)
	}
	if Centroid(nil) != Origin {
		t.Error("Centroid(nil) should be Origin")
	}
}

func TestNewellNormal(t *testing.T) {
	square := []Point3D{Pt3(0, 0, 0), Pt3(2, 0, 0), Pt3(2, 2, 0), Pt3(0, 2, 0)}
	if got := NewellNormal(square); !got.Approx(V3(0, 0, 8), tol) {
		t.Errorf("NewellNormal(ccw square) = %v, want (0,0,8)", got)
	}

	reversed := []Point3D{square[3], square[2], square[1], square[0]}
	if got := NewellNormal(reversed); !got.Approx(V3(0, 0, -8), tol) {
		t.Errorf("NewellNormal(cw square) = %v, want (0,0,-8)", got)
	}

	collinear := []Point3D{Pt3(0, 0, 0), Pt3(1, 1, 1), Pt3(2, 2, 2)}
	if got := NewellNormal(collinear); !got.IsZero() {
		t.Errorf("NewellNormal(collinear) = %v, want zero", got)
	}
}
