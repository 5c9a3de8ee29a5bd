// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package st7066u

import "periph.io/x/conn/v3/gpio"

// busState tracks the electrical direction of the 8 data lines. Driving
// and sensing are mutually exclusive; the bus is never left with a mix of
// line directions.
type busState int

const (
	busUninitialized busState = iota
	busDriving
	busSensing
)

// dataBus is the 8-bit parallel data bus of the controller. D0 is the
// least significant bit.
//
// The direction switch is lazy: write forces the driving state and read
// forces the sensing state, reconfiguring all 8 lines in one go. There is
// no way to sample the bus while driving or to set levels while sensing.
type dataBus struct {
	pins  [8]gpio.PinIO
	state busState
}

func newDataBus(pins [8]gpio.PinIO) *dataBus {
	return &dataBus{pins: pins}
}

// drive configures all 8 lines as outputs. A failed line configuration
// leaves the bus uninitialized so the next operation reconfigures every
// line again; a half-switched bus is never a valid state.
func (b *dataBus) drive() error {
	if b.state == busDriving {
		return nil
	}
	b.state = busUninitialized
	for _, p := range b.pins {
		if err := p.Out(gpio.Low); err != nil {
			return err
		}
	}
	b.state = busDriving
	return nil
}

// sense configures all 8 lines as inputs.
func (b *dataBus) sense() error {
	if b.state == busSensing {
		return nil
	}
	b.state = busUninitialized
	for _, p := range b.pins {
		if err := p.In(gpio.Float, gpio.NoEdge); err != nil {
			return err
		}
	}
	b.state = busSensing
	return nil
}

// write switches the bus to driving if needed and sets every line to the
// matching bit of value.
func (b *dataBus) write(value byte) error {
	if err := b.drive(); err != nil {
		return err
	}
	for i, p := range b.pins {
		if err := p.Out(gpio.Level(value>>i&1 != 0)); err != nil {
			return err
		}
	}
	return nil
}

// read switches the bus to sensing if needed and samples every line.
func (b *dataBus) read() (byte, error) {
	if err := b.sense(); err != nil {
		return 0, err
	}
	var value byte
	for i, p := range b.pins {
		if p.Read() {
			value |= 1 << i
		}
	}
	return value, nil
}
