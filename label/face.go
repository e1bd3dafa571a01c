// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package label measures and draws chart titles.
//
// Text is shaped with HarfBuzz (go-text/typesetting) to measure advances,
// which takes kerning into account when centring, and is rasterized with
// golang.org/x/image/font onto any draw.Image, including render.Pixmap.
package label

import (
	"bytes"
	"errors"
	"fmt"
	"sync"

	gtfont "github.com/go-text/typesetting/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
)

// ErrInvalidFont is returned when font data cannot be parsed.
var ErrInvalidFont = errors.New("label: invalid font")

// Face is a parsed font usable for both shaping and drawing. A Face is
// read-only and safe for concurrent use.
type Face struct {
	shaping *gtfont.Font
	outline *opentype.Font
}

// ParseFace parses TrueType or OpenType font data.
func ParseFace(data []byte) (*Face, error) {
	gt, err := gtfont.ParseTTF(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidFont, err)
	}
	ot, err := opentype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidFont, err)
	}
	return &Face{shaping: gt.Font, outline: ot}, nil
}

var defaultFace = sync.OnceValues(func() (*Face, error) {
	return ParseFace(goregular.TTF)
})

// DefaultFace returns the Go Regular face, parsed once.
func DefaultFace() (*Face, error) {
	return defaultFace()
}
