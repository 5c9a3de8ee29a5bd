// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package glyph

import (
	"strings"
	"testing"
)

func TestRender(t *testing.T) {
	a := Render('A')
	want := Glyph{0b01110, 0b10001, 0b10001, 0b10001, 0b11111, 0b10001, 0b10001, 0b00000}
	if a != want {
		t.Errorf("Render('A'):\n%s\nexpected:\n%s", a, want)
	}
}

func TestRenderUnknown(t *testing.T) {
	if g := Render('€'); g != (Glyph{}) {
		t.Errorf("Render of an unmapped rune should be blank, got:\n%s", g)
	}
}

func TestNewMasks(t *testing.T) {
	g := New([Height]byte{0xff, 0x20, 0x1f, 0x80, 0, 0, 0, 0})
	want := Glyph{0x1f, 0, 0x1f, 0, 0, 0, 0, 0}
	if g != want {
		t.Errorf("New did not mask rows to %d bits: %v", Width, g)
	}
}

func TestDistance(t *testing.T) {
	minus := Render('-')
	equals := Render('=')
	if d := minus.Distance(minus); d != 0 {
		t.Errorf("Distance to self = %d", d)
	}
	if d := minus.Distance(equals); d != 15 {
		t.Errorf("Distance('-','=') = %d, expected 15", d)
	}
	if d := minus.Distance(equals); d != equals.Distance(minus) {
		t.Errorf("Distance is not symmetric: %d", d)
	}
	all := New([Height]byte{0x1f, 0x1f, 0x1f, 0x1f, 0x1f, 0x1f, 0x1f, 0x1f})
	if d := (Glyph{}).Distance(all); d != Width*Height {
		t.Errorf("Distance(blank, full) = %d, expected %d", d, Width*Height)
	}
}

func TestString(t *testing.T) {
	s := Render('-').String()
	if !strings.Contains(s, "#####") {
		t.Errorf("unexpected rendering of '-':\n%s", s)
	}
	if n := strings.Count(s, "\n"); n != Height {
		t.Errorf("expected %d lines, got %d", Height, n)
	}
}

func TestROMSearch(t *testing.T) {
	for _, tc := range []struct {
		ch   rune
		addr uint8
	}{
		{'A', 0x41},
		{'z', 0x7a},
		{'0', 0x30},
		{'!', 0x21},
		{'→', 0x7e},
		{'←', 0x7f},
		{'¥', 0x5c},
		{' ', 0x83},
	} {
		addr, ok := CodeA.Search(Render(tc.ch))
		if !ok {
			t.Errorf("Search(Render(%q)) not found", tc.ch)
			continue
		}
		if addr != tc.addr {
			t.Errorf("Search(Render(%q)) = %#02x, expected %#02x", tc.ch, addr, tc.addr)
		}
	}
}

// Every font bitmap is a ROM shape: plain text must never consume CGRAM
// slots.
func TestFontSubsetOfROM(t *testing.T) {
	for ch, g := range font {
		if _, ok := CodeA.Search(g); !ok {
			t.Errorf("font glyph %q is not in the ROM:\n%s", ch, g)
		}
	}
}

func TestROMSearchMiss(t *testing.T) {
	custom := New([Height]byte{0b10101, 0b01010, 0b10101, 0b01010, 0b10101, 0b01010, 0b10101, 0b01010})
	if addr, ok := CodeA.Search(custom); ok {
		t.Errorf("custom bitmap unexpectedly found at %#02x", addr)
	}
	// Near miss: one pixel away from 'A' must not match.
	a := Render('A').Rows()
	a[0] ^= 1
	if addr, ok := CodeA.Search(New(a)); ok {
		t.Errorf("near-'A' bitmap unexpectedly found at %#02x", addr)
	}
}

func TestROMSize(t *testing.T) {
	if n := CodeA.Size(); n != 189 {
		t.Errorf("ROM has %d entries, expected 189", n)
	}
}
