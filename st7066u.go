// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package st7066u controls ST7066U (HD44780 compatible) character LCD
// controllers over their 8-bit parallel interface: three control lines
// (register select, read/write, enable) plus eight data lines.
//
// The Dev type is the protocol layer: command encoding, bus direction
// switching and per-operation settle delays. The Display type layered on
// top renders a canvas.Canvas and converges the device memory to it with
// a minimal write stream.
//
// # Datasheet
//
// https://www.sparkfun.com/datasheets/LCD/st7066.pdf
package st7066u

import (
	"fmt"
	"strings"
	"time"

	"periph.io/x/conn/v3/gpio"
)

const packageName = "st7066u"

// enablePulse is how long the enable line is held high. The controller
// latches a write on the falling edge and drives the bus while the line
// is high.
const enablePulse = 2 * time.Microsecond

func wrap(err error) error {
	if err == nil || strings.HasPrefix(err.Error(), packageName) {
		return err
	}
	return fmt.Errorf("%s: %w", packageName, err)
}

// Dev is the ST7066U protocol driver.
//
// Dev is stateless about which of CGRAM or DDRAM the address counter
// points at; that is device-side state. Callers must issue the matching
// address-set command before any data access whose target region differs
// from the last one addressed.
//
// A Dev is owned by a single display session. It is not safe for
// concurrent use; every operation blocks for its full settle time.
type Dev struct {
	rs    gpio.PinOut
	rw    gpio.PinOut
	en    gpio.PinOut
	bus   *dataBus
	sleep func(time.Duration)
}

// New returns a Dev using rs, rw and en as the control lines and data as
// the bus lines D0 (least significant) through D7.
//
// The enable line is forced low and the bus is put in the driving state.
// No initialization commands are sent; see NewDisplay for a fully
// configured display.
func New(rs, rw, en gpio.PinOut, data [8]gpio.PinIO) (*Dev, error) {
	d := &Dev{
		rs:    rs,
		rw:    rw,
		en:    en,
		bus:   newDataBus(data),
		sleep: time.Sleep,
	}
	if err := d.en.Out(gpio.Low); err != nil {
		return nil, wrap(err)
	}
	if err := d.bus.drive(); err != nil {
		return nil, wrap(err)
	}
	return d, nil
}

// Exec executes cmd and blocks for its settle time.
func (d *Dev) Exec(cmd Command) error {
	if err := d.rs.Out(gpio.Low); err != nil {
		return wrap(err)
	}
	if err := d.rw.Out(gpio.Low); err != nil {
		return wrap(err)
	}
	if err := d.bus.write(cmd.encode()); err != nil {
		return wrap(err)
	}
	if err := d.pulseEnable(); err != nil {
		return wrap(err)
	}
	d.sleep(cmd.settle())
	return nil
}

// Write stores value at the device's current address counter, in
// whichever of CGRAM or DDRAM the last address-set command selected, and
// lets the counter auto-step.
func (d *Dev) Write(value byte) error {
	if err := d.rs.Out(gpio.High); err != nil {
		return wrap(err)
	}
	if err := d.rw.Out(gpio.Low); err != nil {
		return wrap(err)
	}
	if err := d.bus.write(value); err != nil {
		return wrap(err)
	}
	if err := d.pulseEnable(); err != nil {
		return wrap(err)
	}
	d.sleep(settleData)
	return nil
}

// Read returns the byte at the device's current address counter, from
// whichever of CGRAM or DDRAM the last address-set command selected, and
// lets the counter auto-step.
func (d *Dev) Read() (byte, error) {
	if err := d.rs.Out(gpio.High); err != nil {
		return 0, wrap(err)
	}
	if err := d.rw.Out(gpio.High); err != nil {
		return 0, wrap(err)
	}
	if err := d.en.Out(gpio.High); err != nil {
		return 0, wrap(err)
	}
	d.sleep(enablePulse)
	value, err := d.bus.read()
	if err != nil {
		return 0, wrap(err)
	}
	if err := d.en.Out(gpio.Low); err != nil {
		return 0, wrap(err)
	}
	d.sleep(settleData)
	return value, nil
}

// ReadAddressCounter returns the current address counter value. The most
// significant bit of the result is the busy flag.
func (d *Dev) ReadAddressCounter() (byte, error) {
	if err := d.rs.Out(gpio.Low); err != nil {
		return 0, wrap(err)
	}
	if err := d.rw.Out(gpio.High); err != nil {
		return 0, wrap(err)
	}
	// Dummy write: leaves the data lines at a known level right before
	// the bus turns around and the device starts driving them.
	if err := d.bus.write(0); err != nil {
		return 0, wrap(err)
	}
	if err := d.en.Out(gpio.High); err != nil {
		return 0, wrap(err)
	}
	d.sleep(enablePulse)
	value, err := d.bus.read()
	if err != nil {
		return 0, wrap(err)
	}
	if err := d.en.Out(gpio.Low); err != nil {
		return 0, wrap(err)
	}
	d.sleep(settleRead)
	return value, nil
}

// IsBusy reports whether the controller is still executing the previous
// command or write.
func (d *Dev) IsBusy() (bool, error) {
	ac, err := d.ReadAddressCounter()
	return ac&0x80 != 0, err
}

// Clear executes the Clear command.
func (d *Dev) Clear() error {
	return d.Exec(Clear{})
}

// Home executes the ReturnHome command.
func (d *Dev) Home() error {
	return d.Exec(ReturnHome{})
}

// SetEntryMode executes the EntryMode command.
func (d *Dev) SetEntryMode(cursor Direction, displayShift bool) error {
	return d.Exec(EntryMode{Cursor: cursor, DisplayShift: displayShift})
}

// SetOnOff executes the OnOff command.
func (d *Dev) SetOnOff(display, cursor, blink bool) error {
	return d.Exec(OnOff{Display: display, Cursor: cursor, Blink: blink})
}

// ShiftContent executes the Shift command.
func (d *Dev) ShiftContent(target ShiftTarget, dir Direction) error {
	return d.Exec(Shift{Target: target, Direction: dir})
}

// SetFunction executes the FunctionSet command.
func (d *Dev) SetFunction(lines Lines, font Font) error {
	return d.Exec(FunctionSet{Lines: lines, Font: font})
}

// SetCGRAMAddr points the address counter at a CGRAM byte.
func (d *Dev) SetCGRAMAddr(addr uint8) error {
	return d.Exec(SetCGRAMAddress(addr))
}

// SetDDRAMAddr points the address counter at a DDRAM byte.
func (d *Dev) SetDDRAMAddr(addr uint8) error {
	return d.Exec(SetDDRAMAddress(addr))
}

// pulseEnable strobes the enable line to start the pending operation.
func (d *Dev) pulseEnable() error {
	if err := d.en.Out(gpio.High); err != nil {
		return err
	}
	d.sleep(enablePulse)
	return d.en.Out(gpio.Low)
}

func (d *Dev) String() string {
	return fmt.Sprintf("%s{%s, %s, %s}", packageName, d.rs, d.rw, d.en)
}
