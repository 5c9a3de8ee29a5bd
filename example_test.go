// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package st7066u_test

import (
	"fmt"
	"log"
	"time"

	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/gpio/gpioreg"
	"periph.io/x/host/v3"

	"periph.io/x/st7066u"
	"periph.io/x/st7066u/canvas"
	"periph.io/x/st7066u/emulcd"
)

// This example drives a 2x8 ST7066U display wired to the first 11 GPIOs
// of a Raspberry Pi: three control lines plus the 8-bit data bus.
func Example() {
	if _, err := host.Init(); err != nil {
		log.Fatal(err)
	}
	byName := func(name string) gpio.PinIO {
		p := gpioreg.ByName(name)
		if p == nil {
			log.Fatalf("no pin named %q", name)
		}
		return p
	}
	var data [8]gpio.PinIO
	for i, name := range []string{"GPIO6", "GPIO7", "GPIO8", "GPIO9", "GPIO10", "GPIO11", "GPIO12", "GPIO13"} {
		data[i] = byName(name)
	}
	dev, err := st7066u.New(byName("GPIO2"), byName("GPIO3"), byName("GPIO4"), data)
	if err != nil {
		log.Fatal(err)
	}
	d, err := st7066u.NewDisplay(dev, &st7066u.Opts{Gap: canvas.GapHide})
	if err != nil {
		log.Fatal(err)
	}
	defer func() { _ = d.Halt() }()

	if err := d.Print("Hello World!"); err != nil {
		log.Fatal(err)
	}
	// Scroll the text one pixel at a time.
	for i := 0; i < 96; i++ {
		if err := d.Scroll(); err != nil {
			log.Fatal(err)
		}
		time.Sleep(50 * time.Millisecond)
	}
}

// Drive the display session against the in-memory controller model, for
// development without hardware.
func ExampleNewDisplay() {
	emu := emulcd.New()
	rs, rw, en := emu.ControlPins()
	dev, err := st7066u.New(rs, rw, en, emu.DataPins())
	if err != nil {
		log.Fatal(err)
	}
	d, err := st7066u.NewDisplay(dev, nil)
	if err != nil {
		log.Fatal(err)
	}
	if _, err := d.WriteString("Hi"); err != nil {
		log.Fatal(err)
	}
	fmt.Printf("%c%c\n", emu.Row(0)[0], emu.Row(0)[1])
	// Output: Hi
}
