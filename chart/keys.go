// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package chart

import "fmt"

// ItemKey identifies one data item of a dataset. Contributors attach item
// keys to the solids they add so that a RenderingInfo query can be mapped
// back to the data. All implementations are comparable.
type ItemKey interface {
	fmt.Stringer
	itemKey()
}

// PieKey identifies a pie section.
type PieKey struct {
	Section string
}

func (PieKey) itemKey() {}

// String implements fmt.Stringer.
func (k PieKey) String() string {
	return fmt.Sprintf("PieKey[%s]", k.Section)
}

// CategoryKey identifies one value of a category dataset.
type CategoryKey struct {
	Series string
	Row    string
	Column string
}

func (CategoryKey) itemKey() {}

// String implements fmt.Stringer.
func (k CategoryKey) String() string {
	return fmt.Sprintf("CategoryKey[%s, %s, %s]", k.Series, k.Row, k.Column)
}

// XYZKey identifies one point of an XYZ dataset.
type XYZKey struct {
	Series string
	Index  int
}

func (XYZKey) itemKey() {}

// String implements fmt.Stringer.
func (k XYZKey) String() string {
	return fmt.Sprintf("XYZKey[%s, %d]", k.Series, k.Index)
}
