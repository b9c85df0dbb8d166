// seehuhn.de/go/gauge - analog gauge rendering
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.


// Package output writes a gauge to PNG or PDF files.
package output

import (
	"bufio"
	"image"
	"image/color"
	"image/png"
	"math"
	"os"

	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/gauge"
	"seehuhn.de/go/gauge/glyph"
	"seehuhn.de/go/gauge/internal/errors"
	"seehuhn.de/go/gauge/paint"
	"seehuhn.de/go/gauge/pdfout"
	"seehuhn.de/go/gauge/raster"
)

// Options controls how a gauge is written.
type Options struct {
	// Scale is the number of pixels per user-space unit, for PNG output.
	Scale float64

	// Background fills the image or page before the gauge is drawn.
	// If nil, PNG images are transparent and PDF pages are left blank.
	Background color.Color

	// Face is used for the tick labels. If nil, Go Regular is used.
	Face *glyph.Face
}

// LoadFace reads the label font from fname.
// The empty string selects the Go Regular font.
func LoadFace(fname string) (*glyph.Face, error) {
	if fname == "" {
		return glyph.Default(), nil
	}
	face, err := glyph.ReadFile(fname)
	if err != nil {
		return nil, errors.Wrap(errors.ErrLoadFont, err).WithData(fname)
	}
	return face, nil
}

// Write renders g to fname. The format is "png" or "pdf".
func Write(fname, format string, g *gauge.Gauge, opt *Options) error {
	switch format {
	case "png":
		return PNG(fname, g, opt)
	case "pdf":
		return PDF(fname, g, opt)
	default:
		return errors.WithData(errors.ErrUnsupportedFormat, format)
	}
}

// Image renders g into a new RGBA image.
func Image(g *gauge.Gauge, opt *Options) (*image.RGBA, error) {
	if !g.Ready() {
		return nil, errors.New(errors.ErrLayoutNotReady)
	}
	width, height := g.Size()
	w := int(math.Ceil(width * opt.Scale))
	h := int(math.Ceil(height * opt.Scale))
	img := image.NewRGBA(image.Rect(0, 0, w, h))

	c := raster.NewImage(img, opt.Scale)
	c.Face = opt.Face
	if opt.Background != nil {
		c.Clear(opt.Background)
	}
	g.Draw(c)
	if err := c.Err(); err != nil {
		return nil, errors.Wrap(errors.ErrRenderFailed, err)
	}
	return img, nil
}

// PNG renders g and writes it as a PNG file.
func PNG(fname string, g *gauge.Gauge, opt *Options) (err error) {
	img, err := Image(g, opt)
	if err != nil {
		return err
	}

	f, err := os.Create(fname)
	if err != nil {
		return errors.Wrap(errors.ErrWriteOutput, err)
	}
	defer func() {
		if cerr := f.Close(); err == nil && cerr != nil {
			err = errors.Wrap(errors.ErrWriteOutput, cerr)
		}
	}()

	w := bufio.NewWriter(f)
	if err := png.Encode(w, img); err != nil {
		return errors.Wrap(errors.ErrWriteOutput, err)
	}
	if err := w.Flush(); err != nil {
		return errors.Wrap(errors.ErrWriteOutput, err)
	}
	return nil
}

// PDF renders g and writes it as a single-page PDF file.
// One user-space unit is one PDF point; opt.Scale is not used.
func PDF(fname string, g *gauge.Gauge, opt *Options) error {
	if !g.Ready() {
		return errors.New(errors.ErrLayoutNotReady)
	}
	width, height := g.Size()

	err := pdfout.Write(fname, width, height, opt.Face, func(c paint.Canvas) {
		if opt.Background != nil {
			page := []vec.Vec2{{X: 0, Y: 0}, {X: width, Y: 0}, {X: width, Y: height}, {X: 0, Y: height}}
			c.DrawPolygon(page, paint.Fill, opt.Background)
		}
		g.Draw(c)
	})
	if err != nil {
		return errors.Wrap(errors.ErrWriteOutput, err)
	}
	return nil
}
