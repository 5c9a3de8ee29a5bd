// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package glyph provides the 5x8 character bitmaps used by ST7066U class
// LCD controllers, the controller's character ROM table, and the CGRAM
// slot allocator for user defined glyphs.
package glyph

import (
	"math/bits"
	"strings"
)

// Width and Height are the dimensions of a character cell in pixels. Each
// row of a Glyph is stored in one byte with only the low Width bits
// meaningful.
const (
	Width  = 5
	Height = 8
)

// rowMask keeps the low 5 bits of a row.
const rowMask = 1<<Width - 1

// Glyph is a 5x8 black-and-white bitmap, one byte per row, most
// significant meaningful bit leftmost. It is an immutable value type and
// can be compared with ==.
type Glyph [Height]byte

// New returns a Glyph from raw row bytes, masking each row to the low 5
// bits.
func New(rows [Height]byte) Glyph {
	var g Glyph
	for i, r := range rows {
		g[i] = r & rowMask
	}
	return g
}

// Render returns the bitmap for ch.
//
// Only characters present in the ST7066U ROM code A repertoire covered by
// the font table are supported: ASCII letters, digits and punctuation,
// '¥', and the '→'/'←' arrows. Any other character renders as a blank
// glyph; rendering never fails.
func Render(ch rune) Glyph {
	return font[ch]
}

// Rows returns the raw row bytes of g.
func (g Glyph) Rows() [Height]byte {
	return [Height]byte(g)
}

// Distance returns the number of pixels at which g and o differ, in the
// range 0 to 40.
func (g Glyph) Distance(o Glyph) int {
	n := 0
	for i := range g {
		n += bits.OnesCount8((g[i] ^ o[i]) & rowMask)
	}
	return n
}

// String renders g as an 8 line block of ':' (off) and '#' (on) runes.
func (g Glyph) String() string {
	var b strings.Builder
	for _, row := range g {
		for bit := Width - 1; bit >= 0; bit-- {
			if row>>bit&1 != 0 {
				b.WriteByte('#')
			} else {
				b.WriteByte(':')
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}
