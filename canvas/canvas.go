// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package canvas implements the application-side text buffer for a
// two-row, eight-column character LCD.
//
// A Canvas holds one bitmap per character cell and renders to a Frame:
// the pair of device memory images (DDRAM and CGRAM) that makes the
// display show the canvas content. Rendering consults the character ROM
// first and allocates CGRAM slots for custom shapes second.
//
// The canvas can also scroll its content one pixel at a time. Scrolling
// treats the 16 cells as a circular shift register: the pixel column that
// leaves a cell on the left is carried into the cell before it, with the
// cell at index 0 wrapping to index 15.
package canvas

import (
	"periph.io/x/st7066u/glyph"
)

// Cells is the number of character cells on the display, laid out as two
// rows of Columns.
const (
	Cells   = 16
	Columns = 8
)

// Gap selects how scrolling treats the column of inactive pixels between
// adjacent character cells.
type Gap int

const (
	// GapSkip scrolls as if the inter-character gap did not exist: the
	// pixel carried across a cell boundary lands directly in the
	// neighbour's last visible column. Any bit parked in a hidden gap
	// position is lost; this is expected, not a defect.
	GapSkip Gap = iota
	// GapHide parks the carried pixel in a hidden sixth row bit for one
	// shift, reproducing the one column delay of the physical gap.
	// Scrolled content circulates without loss.
	GapHide
)

// Frame is the rendered device memory target produced by Render. DDRAM
// holds one character code per cell in cell order; CGRAM holds the
// flattened custom glyph slots, 8 bytes per slot.
type Frame struct {
	DDRAM [Cells]byte
	CGRAM []byte
}

// Canvas is the 16 cell text buffer. Cells hold the bitmap last written
// there, not the source character. The zero value is an empty canvas with
// the GapSkip policy.
type Canvas struct {
	cells [Cells][glyph.Height]byte
	gap   Gap
}

// New returns an empty Canvas with the given default gap policy.
func New(gap Gap) *Canvas {
	return &Canvas{gap: gap}
}

// effective returns the gap policy to use for one operation: the
// override, if given, else the canvas default.
func (c *Canvas) effective(gap []Gap) Gap {
	if len(gap) > 0 {
		return gap[0]
	}
	return c.gap
}

// Write renders text into the canvas starting at cell 0. Writing wraps
// circularly: the 17th character lands in cell 0 again.
//
// Under GapSkip each character is preceded by an internal one pixel shift
// that opens the inter-character gap manually. An optional gap argument
// overrides the canvas policy for this call.
func (c *Canvas) Write(text string, gap ...Gap) {
	eff := c.effective(gap)
	i := 0
	for _, ch := range text {
		if eff == GapSkip {
			c.shiftLeft(GapSkip)
		}
		c.cells[i%Cells] = glyph.Render(ch).Rows()
		i++
	}
}

// Put renders ch directly into the given cell without shifting. The cell
// index wraps modulo Cells.
func (c *Canvas) Put(cell int, ch rune) {
	c.cells[((cell%Cells)+Cells)%Cells] = glyph.Render(ch).Rows()
}

// PutGlyph places a user defined bitmap directly into the given cell
// without shifting. The cell index wraps modulo Cells.
func (c *Canvas) PutGlyph(cell int, g glyph.Glyph) {
	c.cells[((cell%Cells)+Cells)%Cells] = g.Rows()
}

// ShiftLeft scrolls the canvas content one pixel to the left. An optional
// gap argument overrides the canvas policy for this call.
func (c *Canvas) ShiftLeft(gap ...Gap) {
	c.shiftLeft(c.effective(gap))
}

func (c *Canvas) shiftLeft(gap Gap) {
	// Under GapHide the 6th bit of each row stores the hidden gap pixel.
	shift := uint(glyph.Width)
	if gap == GapHide {
		shift++
	}
	mask := byte(1<<shift - 1)

	for x := range c.cells {
		for y := range c.cells[x] {
			c.cells[x][y] <<= 1
		}
	}
	for x := 0; x < Cells; x++ {
		prev := (x + Cells - 1) % Cells
		for y := 0; y < glyph.Height; y++ {
			c.cells[prev][y] |= c.cells[x][y] >> shift
			c.cells[x][y] &= mask
		}
	}
}

// Clear blanks every cell.
func (c *Canvas) Clear() {
	c.cells = [Cells][glyph.Height]byte{}
}

// Cell returns the visible bitmap of cell i. Hidden gap pixels are masked
// off.
func (c *Canvas) Cell(i int) glyph.Glyph {
	return glyph.New(c.cells[((i%Cells)+Cells)%Cells])
}

// Raw returns the raw row bytes of cell i, including any hidden gap bit.
func (c *Canvas) Raw(i int) [glyph.Height]byte {
	return c.cells[((i%Cells)+Cells)%Cells]
}

// Render produces the device memory images for the current content.
//
// The CGRAM allocation is rebuilt from scratch on every call: cells are
// resolved in cell order, so when more than 8 distinct custom glyphs are
// present the leftmost, topmost ones win the slots and the rest render
// blank. Both images are fresh values; callers keep the previous Frame
// themselves to drive incremental updates.
func (c *Canvas) Render() Frame {
	cache := glyph.NewCache()
	var f Frame
	for i, cell := range c.cells {
		f.DDRAM[i] = cache.Resolve(glyph.New(cell), glyph.CodeA)
	}
	f.CGRAM = cache.Bytes()
	return f
}
