// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package canvas

import (
	"testing"

	"periph.io/x/st7066u/glyph"
)

func TestWriteGapHide(t *testing.T) {
	c := New(GapHide)
	c.Write("AB")
	if got := c.Cell(0); got != glyph.Render('A') {
		t.Errorf("cell 0:\n%s\nexpected:\n%s", got, glyph.Render('A'))
	}
	if got := c.Cell(1); got != glyph.Render('B') {
		t.Errorf("cell 1:\n%s\nexpected:\n%s", got, glyph.Render('B'))
	}
	if got := c.Cell(2); got != (glyph.Glyph{}) {
		t.Errorf("cell 2 not blank:\n%s", got)
	}
}

func TestWriteWraps(t *testing.T) {
	c := New(GapHide)
	c.Write("0123456789ABCDEFG")
	// The 17th character overwrote cell 0.
	if got := c.Cell(0); got != glyph.Render('G') {
		t.Errorf("cell 0 after wrap:\n%s\nexpected:\n%s", got, glyph.Render('G'))
	}
	if got := c.Cell(1); got != glyph.Render('1') {
		t.Errorf("cell 1 after wrap:\n%s\nexpected:\n%s", got, glyph.Render('1'))
	}
}

func TestWriteGapOverride(t *testing.T) {
	c := New(GapSkip)
	c.Write("A", GapHide)
	// No pre-shift under the override.
	if got := c.Cell(0); got != glyph.Render('A') {
		t.Errorf("cell 0:\n%s\nexpected:\n%s", got, glyph.Render('A'))
	}
}

func TestPutWraps(t *testing.T) {
	c := New(GapHide)
	c.Put(-1, 'A')
	if got := c.Cell(15); got != glyph.Render('A') {
		t.Errorf("Put(-1) did not land in cell 15:\n%s", got)
	}
	c.Put(16, 'B')
	if got := c.Cell(0); got != glyph.Render('B') {
		t.Errorf("Put(16) did not land in cell 0:\n%s", got)
	}
}

func TestShiftLeftGapSkip(t *testing.T) {
	c := New(GapSkip)
	c.Put(0, 'A')
	c.Put(1, 'B')
	c.ShiftLeft()

	// 'A' shifted one pixel left with B's leftmost column carried in.
	want0 := [glyph.Height]byte{0b11101, 0b00011, 0b00011, 0b00011, 0b11111, 0b00011, 0b00011, 0b00000}
	if got := c.Raw(0); got != want0 {
		t.Errorf("cell 0 = %05b, expected %05b", got, want0)
	}
	want1 := [glyph.Height]byte{0b11100, 0b00010, 0b00010, 0b11100, 0b00010, 0b00010, 0b11100, 0b00000}
	if got := c.Raw(1); got != want1 {
		t.Errorf("cell 1 = %05b, expected %05b", got, want1)
	}
	// A's leftmost column wrapped around into cell 15.
	want15 := [glyph.Height]byte{0, 0b00001, 0b00001, 0b00001, 0b00001, 0b00001, 0b00001, 0}
	if got := c.Raw(15); got != want15 {
		t.Errorf("cell 15 = %05b, expected %05b", got, want15)
	}
}

func TestShiftLeftGapHide(t *testing.T) {
	c := New(GapHide)
	c.Put(0, 'A')
	c.ShiftLeft()

	// The leftmost column of 'A' is not yet visible anywhere: it sits in
	// the hidden 6th bit of cell 0 for one shift.
	wantRaw := [glyph.Height]byte{0b011100, 0b100010, 0b100010, 0b100010, 0b111110, 0b100010, 0b100010, 0}
	if got := c.Raw(0); got != wantRaw {
		t.Errorf("cell 0 raw = %06b, expected %06b", got, wantRaw)
	}
	wantVisible := glyph.New([glyph.Height]byte{0b11100, 0b00010, 0b00010, 0b00010, 0b11110, 0b00010, 0b00010, 0})
	if got := c.Cell(0); got != wantVisible {
		t.Errorf("cell 0 visible:\n%s\nexpected:\n%s", got, wantVisible)
	}
	if got := c.Raw(15); got != ([glyph.Height]byte{}) {
		t.Errorf("cell 15 not empty after one shift: %06b", got)
	}

	// One more shift moves the hidden column into cell 15.
	c.ShiftLeft()
	want15 := [glyph.Height]byte{0, 0b00001, 0b00001, 0b00001, 0b00001, 0b00001, 0b00001, 0}
	if got := c.Raw(15); got != want15 {
		t.Errorf("cell 15 = %06b, expected %06b", got, want15)
	}
}

// A full revolution under GapHide is 16 cells of 6 pixel columns each and
// must restore the content exactly.
func TestShiftLeftGapHideLossless(t *testing.T) {
	c := New(GapHide)
	c.Write("Hello")
	var before [Cells][glyph.Height]byte
	for i := range before {
		before[i] = c.Raw(i)
	}
	for i := 0; i < Cells*(glyph.Width+1); i++ {
		c.ShiftLeft()
	}
	for i := range before {
		if got := c.Raw(i); got != before[i] {
			t.Errorf("cell %d after full revolution = %06b, expected %06b", i, got, before[i])
		}
	}
}

func TestClear(t *testing.T) {
	c := New(GapHide)
	c.Write("Hello")
	c.Clear()
	for i := 0; i < Cells; i++ {
		if got := c.Raw(i); got != ([glyph.Height]byte{}) {
			t.Errorf("cell %d not blank after Clear: %06b", i, got)
		}
	}
}

func TestRenderText(t *testing.T) {
	c := New(GapHide)
	c.Write("Hello World!")
	f := c.Render()
	want := [Cells]byte{
		'H', 'e', 'l', 'l', 'o', 0x83, 'W', 'o',
		'r', 'l', 'd', '!', 0x83, 0x83, 0x83, 0x83,
	}
	if f.DDRAM != want {
		t.Errorf("DDRAM = %#02x, expected %#02x", f.DDRAM, want)
	}
	if len(f.CGRAM) != 0 {
		t.Errorf("text rendering allocated %d CGRAM bytes", len(f.CGRAM))
	}
}

func TestRenderCustom(t *testing.T) {
	c := New(GapHide)
	g := glyph.New([glyph.Height]byte{0b10101, 0b01010, 0b10101, 0b01010, 0b10101, 0b01010, 0b10101, 0b01010})
	c.PutGlyph(3, g)
	c.PutGlyph(5, g)
	f := c.Render()
	if f.DDRAM[3] != 0 || f.DDRAM[5] != 0 {
		t.Errorf("repeated custom glyph did not share slot 0: %#02x %#02x", f.DDRAM[3], f.DDRAM[5])
	}
	rows := g.Rows()
	if len(f.CGRAM) != glyph.Height {
		t.Fatalf("CGRAM length = %d, expected %d", len(f.CGRAM), glyph.Height)
	}
	for i, v := range f.CGRAM {
		if v != rows[i] {
			t.Errorf("CGRAM[%d] = %#02x, expected %#02x", i, v, rows[i])
		}
	}
}

// customGlyph returns the i-th of 16 distinct bitmaps, none of which is a
// ROM shape.
func customGlyph(i int) glyph.Glyph {
	return glyph.New([glyph.Height]byte{
		0b10101, byte(i), 0b01010, byte(i*3) & 0x1f,
		0b10101, byte(i*5) & 0x1f, 0b01010, 0b11111,
	})
}

func TestRenderCacheOverflow(t *testing.T) {
	c := New(GapHide)
	for i := 0; i < Cells; i++ {
		c.PutGlyph(i, customGlyph(i))
	}
	f := c.Render()
	// The first 8 distinct shapes win the slots in cell order, the rest
	// degrade to blanks.
	for i := 0; i < glyph.CacheSlots; i++ {
		if f.DDRAM[i] != byte(i) {
			t.Errorf("DDRAM[%d] = %#02x, expected %#02x", i, f.DDRAM[i], i)
		}
	}
	for i := glyph.CacheSlots; i < Cells; i++ {
		if f.DDRAM[i] != glyph.Blank {
			t.Errorf("DDRAM[%d] = %#02x, expected %#02x", i, f.DDRAM[i], glyph.Blank)
		}
	}
	if len(f.CGRAM) != glyph.CacheSlots*glyph.Height {
		t.Errorf("CGRAM length = %d, expected %d", len(f.CGRAM), glyph.CacheSlots*glyph.Height)
	}
	for i := 0; i < glyph.CacheSlots; i++ {
		rows := customGlyph(i).Rows()
		for y, v := range rows {
			if f.CGRAM[i*glyph.Height+y] != v {
				t.Errorf("CGRAM slot %d row %d = %#02x, expected %#02x", i, y, f.CGRAM[i*glyph.Height+y], v)
			}
		}
	}
}

// Rendering is rebuilt from scratch per call: a slot freed by a content
// change is reusable on the next render.
func TestRenderRebuildsCache(t *testing.T) {
	c := New(GapHide)
	for i := 0; i < glyph.CacheSlots; i++ {
		c.PutGlyph(i, customGlyph(i))
	}
	c.PutGlyph(0, glyph.Render('A'))
	f := c.Render()
	if f.DDRAM[0] != 0x41 {
		t.Errorf("DDRAM[0] = %#02x, expected 0x41", f.DDRAM[0])
	}
	// Cell 1's shape now owns slot 0.
	if f.DDRAM[1] != 0 {
		t.Errorf("DDRAM[1] = %#02x, expected 0x00", f.DDRAM[1])
	}
	if len(f.CGRAM) != (glyph.CacheSlots-1)*glyph.Height {
		t.Errorf("CGRAM length = %d, expected %d", len(f.CGRAM), (glyph.CacheSlots-1)*glyph.Height)
	}
}
