// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package emulcd is an in-memory model of an ST7066U character LCD
// controller exposed behind gpio pins.
//
// It exists so driver code can be exercised against real register
// semantics (address counter auto-increment, CGRAM/DDRAM region
// selection, latch on the enable pulse) without hardware, the same way
// the i2c device drivers in the periph tree test against playback buses.
//
// The emulation is synchronous: the busy flag is never raised and
// commands take effect on the falling edge of the enable line.
package emulcd

import (
	"errors"

	"periph.io/x/conn/v3/gpio"
)

var errNotImplemented = errors.New("emulcd: not implemented")

const (
	ddramSize = 128
	cgramSize = 64
)

// Dev is the emulated controller. Its pins can be handed straight to the
// st7066u driver.
type Dev struct {
	rs *ctrlPin
	rw *ctrlPin
	en *ctrlPin

	data [8]*dataPin

	ddram [ddramSize]byte
	cgram [cgramSize]byte
	ac    uint8

	inCGRAM      bool
	increment    bool
	shiftOnWrite bool
	displayOn    bool
	cursorOn     bool
	blinkOn      bool
	twoLines     bool

	// outByte is what the device drives on the bus while the enable line
	// is high during a read.
	outByte byte

	writes int
	execs  int

	failure error
}

// New returns an emulated controller in its power-on state: DDRAM filled
// with blanks, address counter at 0, incrementing entry mode.
func New() *Dev {
	d := &Dev{increment: true}
	for i := range d.ddram {
		d.ddram[i] = ' '
	}
	d.rs = &ctrlPin{dev: d, name: "EMULCD_RS"}
	d.rw = &ctrlPin{dev: d, name: "EMULCD_RW"}
	d.en = &ctrlPin{dev: d, name: "EMULCD_EN", enable: true}
	for i := range d.data {
		d.data[i] = &dataPin{dev: d, num: i}
	}
	return d
}

// ControlPins returns the register-select, read/write and enable lines.
func (d *Dev) ControlPins() (rs, rw, en gpio.PinOut) {
	return d.rs, d.rw, d.en
}

// DataPins returns the 8 data lines, D0 first.
func (d *Dev) DataPins() [8]gpio.PinIO {
	var pins [8]gpio.PinIO
	for i, p := range d.data {
		pins[i] = p
	}
	return pins
}

// FailWith makes every subsequent pin operation return err, emulating a
// broken line. Pass nil to heal.
func (d *Dev) FailWith(err error) {
	d.failure = err
}

// DDRAM returns a copy of the display data memory.
func (d *Dev) DDRAM() []byte {
	return append([]byte(nil), d.ddram[:]...)
}

// CGRAM returns a copy of the character generator memory.
func (d *Dev) CGRAM() []byte {
	return append([]byte(nil), d.cgram[:]...)
}

// Row returns the 8 character codes of display row n (0 or 1).
func (d *Dev) Row(n int) []byte {
	off := 0
	if n > 0 {
		off = 0x40
	}
	return append([]byte(nil), d.ddram[off:off+8]...)
}

// Slot returns the 8 bitmap rows of CGRAM slot n.
func (d *Dev) Slot(n int) [8]byte {
	var rows [8]byte
	copy(rows[:], d.cgram[n*8:n*8+8])
	return rows
}

// AddressCounter returns the current address counter value.
func (d *Dev) AddressCounter() uint8 {
	return d.ac
}

// DisplayOn reports the display enable flag.
func (d *Dev) DisplayOn() bool {
	return d.displayOn
}

// CursorOn reports the cursor enable flag.
func (d *Dev) CursorOn() bool {
	return d.cursorOn
}

// BlinkOn reports the blink enable flag.
func (d *Dev) BlinkOn() bool {
	return d.blinkOn
}

// DataWrites returns how many data register writes have been latched.
func (d *Dev) DataWrites() int {
	return d.writes
}

// Commands returns how many instruction register writes have been
// latched.
func (d *Dev) Commands() int {
	return d.execs
}

// enableEdge is invoked by the enable pin on every level change.
func (d *Dev) enableEdge(rising bool) {
	if rising {
		if d.rw.level {
			d.outByte = d.deviceOutput()
		}
		return
	}
	if !d.rw.level {
		d.latch(d.busValue())
	} else if d.rs.level {
		// A data read steps the address counter once the pulse ends.
		d.step()
	}
}

// busValue samples the driver-driven levels of the data lines.
func (d *Dev) busValue() byte {
	var v byte
	for i, p := range d.data {
		if p.level {
			v |= 1 << i
		}
	}
	return v
}

// deviceOutput computes the byte the device drives during a read: the
// address counter for the instruction register, memory at the address
// counter for the data register. The busy flag is always clear.
func (d *Dev) deviceOutput() byte {
	if !d.rs.level {
		return d.ac & 0x7f
	}
	if d.inCGRAM {
		return d.cgram[d.ac&(cgramSize-1)]
	}
	return d.ddram[d.ac&(ddramSize-1)]
}

// latch applies a completed write pulse.
func (d *Dev) latch(v byte) {
	if !d.rs.level {
		d.execs++
		d.exec(v)
		return
	}
	d.writes++
	if d.inCGRAM {
		d.cgram[d.ac&(cgramSize-1)] = v
	} else {
		d.ddram[d.ac&(ddramSize-1)] = v
	}
	d.step()
}

func (d *Dev) step() {
	if d.increment {
		d.ac++
	} else {
		d.ac--
	}
	if d.inCGRAM {
		d.ac &= cgramSize - 1
	} else {
		d.ac &= ddramSize - 1
	}
}

// exec decodes an instruction byte by its highest set bit.
func (d *Dev) exec(v byte) {
	switch {
	case v&0x80 != 0:
		d.inCGRAM = false
		d.ac = v & 0x7f
	case v&0x40 != 0:
		d.inCGRAM = true
		d.ac = v & 0x3f
	case v&0x20 != 0:
		d.twoLines = v&0x08 != 0
	case v&0x10 != 0:
		// Cursor/display shift: no visible effect on the memory model.
	case v&0x08 != 0:
		d.displayOn = v&0x04 != 0
		d.cursorOn = v&0x02 != 0
		d.blinkOn = v&0x01 != 0
	case v&0x04 != 0:
		d.increment = v&0x02 != 0
		d.shiftOnWrite = v&0x01 != 0
	case v&0x02 != 0:
		d.ac = 0
		d.inCGRAM = false
	case v&0x01 != 0:
		for i := range d.ddram {
			d.ddram[i] = ' '
		}
		d.ac = 0
		d.inCGRAM = false
		d.increment = true
	}
}
