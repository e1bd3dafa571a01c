// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package chart

import (
	"errors"
	"math"
	"testing"
)

func TestNewRange(t *testing.T) {
	tests := []struct {
		name    string
		lo, hi  float64
		wantErr bool
	}{
		{"ordered", 0, 10, false},
		{"single value", 3, 3, false},
		{"reversed", 10, 0, true},
		{"NaN min", math.NaN(), 1, true},
		{"NaN max", 0, math.NaN(), true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, err := NewRange(tt.lo, tt.hi)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidRange) {
					t.Errorf("NewRange(%v, %v) error = %v, want ErrInvalidRange", tt.lo, tt.hi, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("NewRange(%v, %v) error = %v", tt.lo, tt.hi, err)
			}
			if r.Min != tt.lo || r.Max != tt.hi {
				t.Errorf("NewRange(%v, %v) = %v", tt.lo, tt.hi, r)
			}
		})
	}
}

func TestRangeContains(t *testing.T) {
	r := Range{Min: 0, Max: 10}
	tests := []struct {
		v    float64
		want bool
	}{
		{-1, false},
		{0, true},
		{5, true},
		{10, true},
		{10.5, false},
		{math.NaN(), false},
	}
	for _, tt := range tests {
		if got := r.Contains(tt.v); got != tt.want {
			t.Errorf("%v.Contains(%v) = %v, want %v", r, tt.v, got, tt.want)
		}
	}
}

func TestRangeIntersects(t *testing.T) {
	r := Range{Min: 0, Max: 10}
	tests := []struct {
		lo, hi float64
		want   bool
	}{
		{-0.5, -0.1, false},
		{-0.5, 0, true},
		{-0.5, 5, true},
		{2, 3, true},
		{-5, 15, true},
		{10, 11, true},
		{10.5, 11, false},
	}
	for _, tt := range tests {
		if got := r.Intersects(tt.lo, tt.hi); got != tt.want {
			t.Errorf("%v.Intersects(%v, %v) = %v, want %v", r, tt.lo, tt.hi, got, tt.want)
		}
	}
}

func TestRangeMapping(t *testing.T) {
	r := Range{Min: 10, Max: 20}
	if got := r.Length(); got != 10 {
		t.Errorf("Length() = %v, want 10", got)
	}
	if got := r.Value(0.25); got != 12.5 {
		t.Errorf("Value(0.25) = %v, want 12.5", got)
	}
	if got := r.Fraction(15); got != 0.5 {
		t.Errorf("Fraction(15) = %v, want 0.5", got)
	}
	if got := r.Fraction(r.Value(0.8)); math.Abs(got-0.8) > 1e-12 {
		t.Errorf("Fraction(Value(0.8)) = %v, want 0.8", got)
	}
	if got := (Range{Min: 3, Max: 3}).Fraction(7); got != 0.5 {
		t.Errorf("zero-length Fraction = %v, want 0.5", got)
	}
}

func TestRangeInclude(t *testing.T) {
	r := Range{Min: 0, Max: 1}
	if got := r.Include(5); got != (Range{Min: 0, Max: 5}) {
		t.Errorf("Include(5) = %v", got)
	}
	if got := r.Include(-2); got != (Range{Min: -2, Max: 1}) {
		t.Errorf("Include(-2) = %v", got)
	}
	if got := r.Include(0.5); got != r {
		t.Errorf("Include(0.5) = %v, want unchanged", got)
	}
	if got := r.Include(math.NaN()); got != r {
		t.Errorf("Include(NaN) = %v, want unchanged", got)
	}
	if got := r.Include(math.Inf(1)); got != r {
		t.Errorf("Include(+Inf) = %v, want unchanged", got)
	}
}
