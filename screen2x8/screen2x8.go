// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package screen2x8 renders the canvas of a 2x8 character LCD to the
// terminal using ANSI color codes, or to an image.
//
// Useful for debugging scrolling and CGRAM allocation without wiring up
// a display, in the spirit of screen1d for LED strips.
package screen2x8

import (
	"bytes"
	"image"
	"image/color"
	"io"

	"github.com/fogleman/gg"
	"github.com/maruel/ansi256"
	"github.com/mattn/go-colorable"
	xdraw "golang.org/x/image/draw"

	"periph.io/x/st7066u/canvas"
	"periph.io/x/st7066u/glyph"
)

// Pixel grid geometry: each cell is 5 visible columns plus one gap
// column, with one gap line between the two display rows. The trailing
// gap column is not drawn.
const (
	cellWidth  = glyph.Width + 1
	gridWidth  = canvas.Columns*cellWidth - 1
	gridHeight = 2*glyph.Height + 1
)

// Display colors, approximating a green STN panel.
var (
	pixelOn     = color.NRGBA{0x1a, 0x33, 0x1a, 0xff}
	pixelOff    = color.NRGBA{0x9a, 0xc4, 0x5f, 0xff}
	pixelHidden = color.NRGBA{0x74, 0x9a, 0x48, 0xff}
	background  = color.NRGBA{0x8a, 0xb4, 0x52, 0xff}
)

// Opts represents the options available for this display.
type Opts struct {
	// Palette translates pixel colors to ANSI codes. Defaults to
	// ansi256.Default.
	Palette *ansi256.Palette
	// ShowHidden also renders the pixels hidden in the inter-character
	// gaps under the GapHide scrolling policy.
	ShowHidden bool

	_ struct{}
}

// Dev is a 2x8 LCD emulator that outputs to the console.
type Dev struct {
	w          io.Writer
	palette    ansi256.Palette
	showHidden bool
	buf        bytes.Buffer
}

// New returns a Dev that displays at the console.
func New(opts *Opts) *Dev {
	return NewWriter(colorable.NewColorableStdout(), opts)
}

// NewWriter returns a Dev that writes its output to w.
func NewWriter(w io.Writer, opts *Opts) *Dev {
	if opts == nil {
		opts = &Opts{}
	}
	p := opts.Palette
	if p == nil {
		p = ansi256.Default
	}
	return &Dev{w: w, palette: *p, showHidden: opts.ShowHidden}
}

func (d *Dev) String() string {
	return "Screen2x8"
}

// Halt implements conn.Resource.
//
// It resets the terminal color state.
func (d *Dev) Halt() error {
	_, err := d.w.Write([]byte("\n\033[0m"))
	return err
}

// Draw writes the canvas pixel grid to the terminal, one text line per
// pixel row.
func (d *Dev) Draw(c *canvas.Canvas) error {
	// Minimize allocations per call; the buffer is reused.
	d.buf.Reset()
	img := Image(c, d.showHidden)
	b := img.Bounds()
	for y := 0; y < b.Dy(); y++ {
		_, _ = d.buf.WriteString("\033[0m")
		for x := 0; x < b.Dx(); x++ {
			_, _ = io.WriteString(&d.buf, d.palette.Block(img.NRGBAAt(x, y)))
		}
		_, _ = d.buf.WriteString("\033[0m\n")
	}
	_, err := d.buf.WriteTo(d.w)
	return err
}

// Image renders the canvas pixel grid 1:1 into an image. When showHidden
// is set, pixels stored behind the inter-character gaps are drawn in the
// gap columns.
func Image(c *canvas.Canvas, showHidden bool) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, gridWidth, gridHeight))
	for y := 0; y < gridHeight; y++ {
		for x := 0; x < gridWidth; x++ {
			img.SetNRGBA(x, y, background)
		}
	}
	for row := 0; row < canvas.Cells/canvas.Columns; row++ {
		for col := 0; col < canvas.Columns; col++ {
			rows := c.Raw(row*canvas.Columns + col)
			for y, line := range rows {
				gy := row*(glyph.Height+1) + y
				for bit := 0; bit < glyph.Width; bit++ {
					px := pixelOff
					if line>>(glyph.Width-1-bit)&1 != 0 {
						px = pixelOn
					}
					img.SetNRGBA(col*cellWidth+bit, gy, px)
				}
				// The hidden 6th bit of the next cell lives in this
				// cell's right gap column.
				if showHidden && col < canvas.Columns-1 {
					next := c.Raw(row*canvas.Columns + col + 1)
					if next[y]>>glyph.Width&1 != 0 {
						img.SetNRGBA(col*cellWidth+glyph.Width, gy, pixelHidden)
					}
				}
			}
		}
	}
	return img
}

// Snapshot renders the canvas scaled up by scale with a bezel around the
// pixel grid, suitable for saving with SavePNG.
func Snapshot(c *canvas.Canvas, scale int, opts *Opts) image.Image {
	if opts == nil {
		opts = &Opts{}
	}
	if scale < 1 {
		scale = 1
	}
	const bezel = 4
	src := Image(c, opts.ShowHidden)
	scaled := image.NewNRGBA(image.Rect(0, 0, gridWidth*scale, gridHeight*scale))
	xdraw.NearestNeighbor.Scale(scaled, scaled.Bounds(), src, src.Bounds(), xdraw.Src, nil)
	dc := gg.NewContext(gridWidth*scale+2*bezel, gridHeight*scale+2*bezel)
	dc.SetRGB255(0x4a, 0x64, 0x2e)
	dc.Clear()
	dc.DrawImage(scaled, bezel, bezel)
	return dc.Image()
}

// SavePNG writes a Snapshot of the canvas to path.
func SavePNG(path string, c *canvas.Canvas, scale int, opts *Opts) error {
	return gg.SavePNG(path, Snapshot(c, scale, opts))
}
