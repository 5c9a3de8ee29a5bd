// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package st7066u

import (
	"fmt"
	"time"

	"periph.io/x/conn/v3"
	"periph.io/x/conn/v3/display"

	"periph.io/x/st7066u/canvas"
)

// timingWindow is how many flush durations the moving average covers.
const timingWindow = 100

// Opts configures a Display.
type Opts struct {
	// Gap is the default gap policy of the canvas.
	Gap canvas.Gap
	// Monotonic, when set, supplies monotonic elapsed-time readings used
	// to measure flush durations. It is used for measurement only and
	// never influences device timing.
	Monotonic func() time.Duration

	_ struct{}
}

// Display is a 2x8 character LCD session: a canvas, the driver and the
// last frame known to be on the device.
//
// Text written through the TextDisplay interface lands in the canvas at
// the cursor position; Print and Scroll use the canvas scrolling
// behavior. Either way Flush converges the device memory with a minimal
// write stream.
//
// Implements conn.Resource and display.TextDisplay.
type Display struct {
	dev *Dev
	c   *canvas.Canvas

	prev   canvas.Frame
	pos    int
	on     bool
	cursor bool
	blink  bool

	now       func() time.Duration
	times     [timingWindow]time.Duration
	count     int
	idx       int
	lastFlush time.Duration
}

// NewDisplay initializes the device for two-line 5x8 operation, clears
// it, enables it with the cursor hidden, sets left-to-right entry and
// reads the device memory back to seed the previous frame.
func NewDisplay(dev *Dev, opts *Opts) (*Display, error) {
	if opts == nil {
		opts = &Opts{}
	}
	d := &Display{
		dev: dev,
		c:   canvas.New(opts.Gap),
		on:  true,
		now: opts.Monotonic,
	}
	if err := dev.SetFunction(TwoLines, Font5x8); err != nil {
		return nil, err
	}
	if err := dev.Clear(); err != nil {
		return nil, err
	}
	if err := dev.SetOnOff(true, false, false); err != nil {
		return nil, err
	}
	if err := dev.SetEntryMode(Right, false); err != nil {
		return nil, err
	}
	if err := d.Sync(); err != nil {
		return nil, err
	}
	return d, nil
}

// Canvas returns the display's canvas. Mutations become visible on the
// next Flush.
func (d *Display) Canvas() *canvas.Canvas {
	return d.c
}

// Sync reads the device DDRAM and CGRAM back into the previous frame so
// that the next Flush only writes actual differences.
func (d *Display) Sync() error {
	if err := d.dev.SetDDRAMAddr(DDRAMAddress(0)); err != nil {
		return err
	}
	for i := 0; i < canvas.Columns; i++ {
		v, err := d.dev.Read()
		if err != nil {
			return err
		}
		d.prev.DDRAM[i] = v
	}
	if err := d.dev.SetDDRAMAddr(DDRAMAddress(canvas.Columns)); err != nil {
		return err
	}
	for i := canvas.Columns; i < canvas.Cells; i++ {
		v, err := d.dev.Read()
		if err != nil {
			return err
		}
		d.prev.DDRAM[i] = v
	}
	if err := d.dev.SetCGRAMAddr(0); err != nil {
		return err
	}
	cgram := make([]byte, 64)
	for i := range cgram {
		v, err := d.dev.Read()
		if err != nil {
			return err
		}
		cgram[i] = v
	}
	d.prev.CGRAM = cgram
	return nil
}

// Flush renders the canvas and writes the changed bytes to the device. A
// hardware error aborts the update mid-stream and is returned unchanged.
func (d *Display) Flush() error {
	var start time.Duration
	if d.now != nil {
		start = d.now()
	}
	next := d.c.Render()
	if err := d.dev.apply(frameOps(d.prev, next)); err != nil {
		return err
	}
	d.prev.DDRAM = next.DDRAM
	if len(d.prev.CGRAM) >= len(next.CGRAM) {
		copy(d.prev.CGRAM, next.CGRAM)
	} else {
		d.prev.CGRAM = append([]byte(nil), next.CGRAM...)
	}
	if d.now != nil {
		d.record(d.now() - start)
	}
	return nil
}

// Print writes text into the canvas with the canvas scrolling semantics
// and flushes.
func (d *Display) Print(text string, gap ...canvas.Gap) error {
	d.c.Write(text, gap...)
	return d.Flush()
}

// Scroll shifts the canvas content one pixel to the left and flushes.
func (d *Display) Scroll(gap ...canvas.Gap) error {
	d.c.ShiftLeft(gap...)
	return d.Flush()
}

func (d *Display) record(elapsed time.Duration) {
	d.lastFlush = elapsed
	d.times[d.idx] = elapsed
	d.idx = (d.idx + 1) % timingWindow
	if d.count < timingWindow {
		d.count++
	}
}

// LastFlushTime returns the duration of the most recent flush, or zero
// when no Monotonic reader is configured.
func (d *Display) LastFlushTime() time.Duration {
	return d.lastFlush
}

// AvgFlushTime returns the average flush duration over the last
// timingWindow flushes.
func (d *Display) AvgFlushTime() time.Duration {
	if d.count == 0 {
		return 0
	}
	var sum time.Duration
	for _, t := range d.times[:d.count] {
		sum += t
	}
	return sum / time.Duration(d.count)
}

// Write renders each byte at the cursor position, advancing and wrapping
// circularly, then flushes.
func (d *Display) Write(p []byte) (int, error) {
	for _, b := range p {
		d.c.Put(d.pos, rune(b))
		d.pos = (d.pos + 1) % canvas.Cells
	}
	if err := d.Flush(); err != nil {
		return 0, err
	}
	return len(p), nil
}

// WriteString renders text at the cursor position and flushes.
func (d *Display) WriteString(text string) (int, error) {
	n := 0
	for _, ch := range text {
		d.c.Put(d.pos, ch)
		d.pos = (d.pos + 1) % canvas.Cells
		n++
	}
	if err := d.Flush(); err != nil {
		return 0, err
	}
	return n, nil
}

// MoveTo moves the cursor to the given 1-based row and column.
func (d *Display) MoveTo(row, col int) error {
	if row < d.MinRow() || row > d.Rows() || col < d.MinCol() || col > d.Cols() {
		return fmt.Errorf("%s.MoveTo(%d,%d) value out of range", packageName, row, col)
	}
	d.pos = (row-1)*canvas.Columns + col - 1
	return nil
}

// Move moves the cursor forward or backward.
func (d *Display) Move(dir display.CursorDirection) error {
	switch dir {
	case display.Forward:
		d.pos = (d.pos + 1) % canvas.Cells
	case display.Backward:
		d.pos = (d.pos + canvas.Cells - 1) % canvas.Cells
	default:
		return fmt.Errorf("%s: %w", packageName, display.ErrNotImplemented)
	}
	return nil
}

// Home moves the cursor to the first cell and resets the device shift.
func (d *Display) Home() error {
	d.pos = 0
	return d.dev.Home()
}

// Clear blanks the canvas and the device.
func (d *Display) Clear() error {
	d.c.Clear()
	d.pos = 0
	if err := d.dev.Clear(); err != nil {
		return err
	}
	// The controller filled the DDRAM with blank spaces.
	for i := range d.prev.DDRAM {
		d.prev.DDRAM[i] = ' '
	}
	return nil
}

// Cursor sets the cursor rendering mode.
func (d *Display) Cursor(modes ...display.CursorMode) error {
	for _, mode := range modes {
		switch mode {
		case display.CursorOff:
			d.cursor = false
			d.blink = false
		case display.CursorUnderline:
			d.cursor = true
		case display.CursorBlink, display.CursorBlock:
			d.cursor = true
			d.blink = true
		default:
			return fmt.Errorf("%s: unexpected cursor mode %d", packageName, mode)
		}
	}
	return d.dev.SetOnOff(d.on, d.cursor, d.blink)
}

// AutoScroll enables shifting the display on every write.
func (d *Display) AutoScroll(enabled bool) error {
	return d.dev.SetEntryMode(Right, enabled)
}

// Rows returns the number of display rows.
func (d *Display) Rows() int {
	return canvas.Cells / canvas.Columns
}

// Cols returns the number of display columns.
func (d *Display) Cols() int {
	return canvas.Columns
}

// MinRow returns the minimum row position.
func (d *Display) MinRow() int {
	return 1
}

// MinCol returns the minimum column position.
func (d *Display) MinCol() int {
	return 1
}

// Halt clears and disables the display.
func (d *Display) Halt() error {
	_ = d.Clear()
	return d.dev.SetOnOff(false, d.cursor, d.blink)
}

func (d *Display) String() string {
	return fmt.Sprintf("%s Rows: %d Cols: %d", packageName, d.Rows(), d.Cols())
}

var _ conn.Resource = &Display{}
var _ display.TextDisplay = &Display{}
