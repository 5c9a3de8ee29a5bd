// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package st7066u

import "time"

// Settle times per command class, from the ST7066U datasheet. The busy
// flag is not polled; every operation blocks for the full settle time.
const (
	settleShort = 40 * time.Microsecond
	settleLong  = 1600 * time.Microsecond
	settleData  = 37 * time.Microsecond
	settleRead  = 1 * time.Microsecond
)

// Lines selects how many display lines the controller drives.
type Lines int

const (
	OneLine Lines = iota
	TwoLines
)

// Font selects the character cell size.
type Font int

const (
	Font5x8 Font = iota
	Font5x11
)

// Direction is a cursor or display movement direction.
type Direction int

const (
	Left Direction = iota
	Right
)

// ShiftTarget selects what the Shift command moves.
type ShiftTarget int

const (
	ShiftCursor ShiftTarget = iota
	ShiftDisplay
)

// Command is one instruction-register operation. Each command has a fixed
// byte encoding and a fixed settle time; both are part of the wire
// contract with the controller. Commands are plain values, built per call
// and never persisted.
type Command interface {
	// encode returns the instruction byte placed on the data bus.
	encode() byte
	// settle returns how long the caller must block after the enable
	// pulse before the controller accepts the next operation.
	settle() time.Duration
}

// Clear fills the DDRAM with blanks (0x20), resets the address counter to
// 0 and undoes any display shift.
type Clear struct{}

func (Clear) encode() byte { return 0x01 }
func (Clear) settle() time.Duration { return settleLong }

// ReturnHome resets the address counter and display shift without
// touching the DDRAM contents.
type ReturnHome struct{}

func (ReturnHome) encode() byte { return 0x02 }
func (ReturnHome) settle() time.Duration { return settleLong }

// EntryMode sets what happens to the address counter, and optionally the
// display shift, after every read or write.
type EntryMode struct {
	// Cursor is the direction the address counter moves after an access.
	Cursor Direction
	// DisplayShift shifts the whole display along with the cursor on
	// DDRAM writes.
	DisplayShift bool
}

func (c EntryMode) encode() byte {
	b := byte(0x04)
	if c.Cursor == Right {
		b |= 0x02
	}
	if c.DisplayShift {
		b |= 0x01
	}
	return b
}

func (EntryMode) settle() time.Duration { return settleShort }

// OnOff enables or disables the display, the cursor and character
// blinking. Disabling the display does not erase the DDRAM.
type OnOff struct {
	Display bool
	Cursor  bool
	Blink   bool
}

func (c OnOff) encode() byte {
	b := byte(0x08)
	if c.Display {
		b |= 0x04
	}
	if c.Cursor {
		b |= 0x02
	}
	if c.Blink {
		b |= 0x01
	}
	return b
}

func (OnOff) settle() time.Duration { return settleShort }

// Shift moves the cursor or the whole display one position without
// writing data.
type Shift struct {
	Target    ShiftTarget
	Direction Direction
}

func (c Shift) encode() byte {
	b := byte(0x10)
	if c.Target == ShiftDisplay {
		b |= 0x08
	}
	if c.Direction == Right {
		b |= 0x04
	}
	return b
}

func (Shift) settle() time.Duration { return settleShort }

// FunctionSet configures the line count and font. The interface width bit
// is always set: this driver only speaks the 8-bit parallel protocol.
type FunctionSet struct {
	Lines Lines
	Font  Font
}

func (c FunctionSet) encode() byte {
	b := byte(0x30)
	if c.Lines == TwoLines {
		b |= 0x08
	}
	if c.Font == Font5x11 {
		b |= 0x04
	}
	return b
}

func (FunctionSet) settle() time.Duration { return settleShort }

// SetCGRAMAddress points the address counter at a CGRAM byte. Subsequent
// data reads and writes target the CGRAM until a SetDDRAMAddress is
// issued.
type SetCGRAMAddress uint8

func (c SetCGRAMAddress) encode() byte { return 0x40 | byte(c) }
func (SetCGRAMAddress) settle() time.Duration { return settleShort }

// SetDDRAMAddress points the address counter at a DDRAM byte. Subsequent
// data reads and writes target the DDRAM until a SetCGRAMAddress is
// issued.
type SetDDRAMAddress uint8

func (c SetDDRAMAddress) encode() byte { return 0x80 | byte(c) }
func (SetDDRAMAddress) settle() time.Duration { return settleShort }
