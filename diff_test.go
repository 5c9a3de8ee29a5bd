// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package st7066u

import (
	"testing"

	"periph.io/x/st7066u/canvas"
)

func TestDDRAMAddress(t *testing.T) {
	want := []uint8{
		0x00, 0x01, 0x02, 0x03, 0x04, 0x05, 0x06, 0x07,
		0x40, 0x41, 0x42, 0x43, 0x44, 0x45, 0x46, 0x47,
	}
	for cell, addr := range want {
		if got := DDRAMAddress(cell); got != addr {
			t.Errorf("DDRAMAddress(%d) = %#02x, expected %#02x", cell, got, addr)
		}
	}
}

func blankFrame() canvas.Frame {
	var f canvas.Frame
	for i := range f.DDRAM {
		f.DDRAM[i] = ' '
	}
	return f
}

func TestFrameOpsIdentical(t *testing.T) {
	f := blankFrame()
	if ops := frameOps(f, f); len(ops) != 0 {
		t.Fatalf("identical frames produced %d ops", len(ops))
	}
}

func TestFrameOpsSingleCell(t *testing.T) {
	prev := blankFrame()
	next := prev
	next.DDRAM[3] = 'A'
	ops := frameOps(prev, next)
	if len(ops) != 1 {
		t.Fatalf("got %d ops, expected 1", len(ops))
	}
	if ops[0].addr != SetDDRAMAddress(3) || ops[0].data != 'A' {
		t.Fatalf("op = %+v", ops[0])
	}
}

// A contiguous run needs a single address-set; the device auto-increments
// through the rest.
func TestFrameOpsRun(t *testing.T) {
	prev := blankFrame()
	next := prev
	next.DDRAM[2] = 'a'
	next.DDRAM[3] = 'b'
	next.DDRAM[4] = 'c'
	ops := frameOps(prev, next)
	if len(ops) != 3 {
		t.Fatalf("got %d ops, expected 3", len(ops))
	}
	if ops[0].addr != SetDDRAMAddress(2) {
		t.Fatalf("ops[0].addr = %v", ops[0].addr)
	}
	for _, op := range ops[1:] {
		if op.addr != nil {
			t.Fatalf("run interrupted by address-set: %+v", op)
		}
	}
}

// Cells 7 and 8 are adjacent on the canvas but not in DDRAM: the row
// boundary forces a second address-set.
func TestFrameOpsRowBoundary(t *testing.T) {
	prev := blankFrame()
	next := prev
	next.DDRAM[7] = 'x'
	next.DDRAM[8] = 'y'
	ops := frameOps(prev, next)
	if len(ops) != 2 {
		t.Fatalf("got %d ops, expected 2", len(ops))
	}
	if ops[0].addr != SetDDRAMAddress(0x07) {
		t.Fatalf("ops[0].addr = %v", ops[0].addr)
	}
	if ops[1].addr != SetDDRAMAddress(0x40) {
		t.Fatalf("ops[1].addr = %v", ops[1].addr)
	}
}

func TestFrameOpsCGRAMFirst(t *testing.T) {
	prev := blankFrame()
	prev.CGRAM = make([]byte, 16)
	next := prev
	next.CGRAM = append([]byte(nil), prev.CGRAM...)
	next.CGRAM[9] = 0x1f
	next.DDRAM[0] = 0x01
	ops := frameOps(prev, next)
	if len(ops) != 2 {
		t.Fatalf("got %d ops, expected 2", len(ops))
	}
	if ops[0].addr != SetCGRAMAddress(9) || ops[0].data != 0x1f {
		t.Fatalf("ops[0] = %+v, expected the CGRAM write first", ops[0])
	}
	if ops[1].addr != SetDDRAMAddress(0) || ops[1].data != 0x01 {
		t.Fatalf("ops[1] = %+v", ops[1])
	}
}

// CGRAM bytes beyond the previously known extent have an unknown device
// value and must be written even when they look unchanged.
func TestFrameOpsCGRAMExtent(t *testing.T) {
	prev := blankFrame()
	prev.CGRAM = make([]byte, 8)
	next := prev
	next.CGRAM = make([]byte, 16)
	ops := frameOps(prev, next)
	if len(ops) != 8 {
		t.Fatalf("got %d ops, expected 8", len(ops))
	}
	if ops[0].addr != SetCGRAMAddress(8) {
		t.Fatalf("ops[0].addr = %v", ops[0].addr)
	}
	for _, op := range ops[1:] {
		if op.addr != nil {
			t.Fatalf("extent run interrupted: %+v", op)
		}
	}
}

func TestApply(t *testing.T) {
	dev, emu := newTestDev(t)
	prev := blankFrame()
	next := prev
	next.DDRAM[0] = 'H'
	next.DDRAM[1] = 'i'
	next.CGRAM = []byte{1, 2, 3, 4, 5, 6, 7, 8}
	if err := dev.apply(frameOps(prev, next)); err != nil {
		t.Fatal(err)
	}
	if got := emu.Row(0); got[0] != 'H' || got[1] != 'i' {
		t.Fatalf("row 0 = %q", got)
	}
	if got := emu.Slot(0); got != ([8]byte{1, 2, 3, 4, 5, 6, 7, 8}) {
		t.Fatalf("slot 0 = %v", got)
	}
}
