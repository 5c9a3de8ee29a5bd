// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package st7066u

import "periph.io/x/st7066u/canvas"

// DDRAMAddress maps a canvas cell index to its DDRAM address: cells 0-7
// are the first display line at 0x00-0x07, cells 8-15 the second line at
// 0x40-0x47.
func DDRAMAddress(cell int) uint8 {
	if cell < canvas.Columns {
		return uint8(cell)
	}
	return uint8(cell - canvas.Columns + 0x40)
}

// txOp is one queued device write. When addr is non-nil the address
// counter must be repositioned first; otherwise the write continues the
// device's auto-increment run.
type txOp struct {
	addr Command
	data byte
}

// frameOps computes the ordered write stream that moves the device memory
// from prev to next.
//
// CGRAM bytes are processed first, by increasing address, then DDRAM
// cells in cell order. Issuing a DDRAM address-set switches the address
// counter region, so interleaving the two would break the CGRAM
// auto-increment run. Unchanged bytes are skipped; an address-set command
// is emitted only when the next changed byte does not follow the previous
// write. Identical frames produce an empty stream.
//
// prev CGRAM bytes beyond the known extent count as changed: their
// device-side value is unknown.
func frameOps(prev, next canvas.Frame) []txOp {
	var ops []txOp
	at := -1
	for i, v := range next.CGRAM {
		if i < len(prev.CGRAM) && prev.CGRAM[i] == v {
			continue
		}
		op := txOp{data: v}
		if at != i {
			op.addr = SetCGRAMAddress(i)
		}
		ops = append(ops, op)
		at = i + 1
	}
	at = -1
	for i, v := range next.DDRAM {
		if prev.DDRAM[i] == v {
			continue
		}
		addr := DDRAMAddress(i)
		op := txOp{data: v}
		if at != int(addr) {
			op.addr = SetDDRAMAddress(addr)
		}
		ops = append(ops, op)
		at = int(addr) + 1
	}
	return ops
}

// apply replays an op stream on the device. A failed operation aborts the
// update; the error is returned untouched and nothing is retried.
func (d *Dev) apply(ops []txOp) error {
	for _, op := range ops {
		if op.addr != nil {
			if err := d.Exec(op.addr); err != nil {
				return err
			}
		}
		if err := d.Write(op.data); err != nil {
			return err
		}
	}
	return nil
}
