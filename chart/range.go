// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package chart

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidRange is returned by NewRange when min > max or a bound is NaN.
var ErrInvalidRange = errors.New("chart: invalid range")

// Range is a closed interval of values [Min, Max].
type Range struct {
	Min, Max float64
}

// NewRange returns the range [lo, hi].
func NewRange(lo, hi float64) (Range, error) {
	if math.IsNaN(lo) || math.IsNaN(hi) || lo > hi {
		return Range{}, fmt.Errorf("%w: [%v, %v]", ErrInvalidRange, lo, hi)
	}
	return Range{Min: lo, Max: hi}, nil
}

// Length returns Max - Min.
func (r Range) Length() float64 {
	return r.Max - r.Min
}

// Contains reports whether v lies in the range, bounds included.
func (r Range) Contains(v float64) bool {
	return v >= r.Min && v <= r.Max
}

// Intersects reports whether [lo, hi] overlaps the range. Touching at a
// single bound counts as overlapping.
func (r Range) Intersects(lo, hi float64) bool {
	return lo <= r.Max && hi >= r.Min
}

// Value maps a fraction of the range (0 at Min, 1 at Max) to a value.
func (r Range) Value(fraction float64) float64 {
	return r.Min + fraction*r.Length()
}

// Fraction maps a value to its position in the range, 0 at Min and 1 at
// Max. A zero-length range maps everything to 0.5.
func (r Range) Fraction(v float64) float64 {
	if r.Length() == 0 {
		return 0.5
	}
	return (v - r.Min) / r.Length()
}

// Include returns the smallest range containing both r and v.
func (r Range) Include(v float64) Range {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return r
	}
	return Range{Min: math.Min(r.Min, v), Max: math.Max(r.Max, v)}
}

// String implements fmt.Stringer.
func (r Range) String() string {
	return fmt.Sprintf("[%g, %g]", r.Min, r.Max)
}
