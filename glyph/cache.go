// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package glyph

// CacheSlots is the number of user defined glyphs the controller's CGRAM
// can hold at once.
const CacheSlots = 8

// Blank is the character code written in place of a custom glyph when the
// cache is full.
const Blank = uint8(' ')

// Cache is a content-addressable allocator for CGRAM slots. A slot's
// index is its character code on the display, and slot i occupies CGRAM
// bytes i*8 to i*8+7.
//
// A Cache is filled monotonically during a single rendering pass and then
// discarded; slots are never evicted. No two occupied slots hold equal
// bitmaps.
type Cache struct {
	glyphs []Glyph
}

// NewCache returns an empty Cache.
func NewCache() *Cache {
	return &Cache{glyphs: make([]Glyph, 0, CacheSlots)}
}

// Resolve returns the character code that displays g, trying in order:
//
//  1. An exact match in rom. ROM-resident glyphs never consume a slot.
//  2. An exact match against an occupied slot, deduplicating repeated
//     custom glyphs within the pass.
//  3. A free slot, assigned in allocation order.
//
// When the cache is full and g matches nothing, Resolve returns Blank and
// g is dropped for this pass. Capacity exhaustion is a degraded-rendering
// outcome, not an error.
func (c *Cache) Resolve(g Glyph, rom ROM) uint8 {
	if addr, ok := rom.Search(g); ok {
		return addr
	}
	for i, slot := range c.glyphs {
		if slot == g {
			return uint8(i)
		}
	}
	if len(c.glyphs) < CacheSlots {
		c.glyphs = append(c.glyphs, g)
		return uint8(len(c.glyphs) - 1)
	}
	return Blank
}

// Len returns the number of occupied slots.
func (c *Cache) Len() int {
	return len(c.glyphs)
}

// Bytes flattens the occupied slots into the CGRAM image, 8 bytes per
// slot in slot order.
func (c *Cache) Bytes() []byte {
	b := make([]byte, 0, len(c.glyphs)*Height)
	for _, g := range c.glyphs {
		b = append(b, g[:]...)
	}
	return b
}

// Glyphs returns the occupied slots in slot order.
func (c *Cache) Glyphs() []Glyph {
	return append([]Glyph(nil), c.glyphs...)
}
