// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package emulcd

import (
	"fmt"
	"time"

	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/physic"
)

// ctrlPin is one of the RS, RW or EN control lines. The enable line
// notifies the device model on every level change.
type ctrlPin struct {
	dev    *Dev
	name   string
	enable bool
	level  gpio.Level
}

func (p *ctrlPin) Out(l gpio.Level) error {
	if err := p.dev.failure; err != nil {
		return err
	}
	changed := p.level != l
	p.level = l
	if p.enable && changed {
		p.dev.enableEdge(bool(l))
	}
	return nil
}

func (p *ctrlPin) Name() string { return p.name }
func (p *ctrlPin) Number() int { return -1 }
func (p *ctrlPin) Function() string { return "Out" }
func (p *ctrlPin) Halt() error { return nil }
func (p *ctrlPin) String() string { return p.name }
func (p *ctrlPin) PWM(gpio.Duty, physic.Frequency) error { return errNotImplemented }

// dataPin is one of the 8 bus lines. It remembers the last driver-driven
// level and whether the driver switched it to input mode.
type dataPin struct {
	dev     *Dev
	num     int
	level   gpio.Level
	sensing bool
}

func (p *dataPin) Out(l gpio.Level) error {
	if err := p.dev.failure; err != nil {
		return err
	}
	p.sensing = false
	p.level = l
	return nil
}

func (p *dataPin) In(pull gpio.Pull, edge gpio.Edge) error {
	if err := p.dev.failure; err != nil {
		return err
	}
	p.sensing = true
	return nil
}

// Read returns the device-driven bit while the device owns the bus (read
// operation in progress with the enable line high), else the last level
// the driver set.
func (p *dataPin) Read() gpio.Level {
	if p.dev.rw.level && p.dev.en.level {
		return p.dev.outByte>>p.num&1 != 0
	}
	return p.level
}

func (p *dataPin) Name() string { return fmt.Sprintf("EMULCD_D%d", p.num) }
func (p *dataPin) Number() int { return p.num }
func (p *dataPin) Function() string { return "In/Out" }
func (p *dataPin) Halt() error { return nil }
func (p *dataPin) String() string { return p.Name() }
func (p *dataPin) Pull() gpio.Pull { return gpio.Float }
func (p *dataPin) DefaultPull() gpio.Pull { return gpio.Float }
func (p *dataPin) WaitForEdge(timeout time.Duration) bool { return false }
func (p *dataPin) PWM(gpio.Duty, physic.Frequency) error { return errNotImplemented }

var (
	_ gpio.PinOut = &ctrlPin{}
	_ gpio.PinIO  = &dataPin{}
)
